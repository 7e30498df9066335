// Package models defines the data the onboarding client persists and shows.
package models

import "strconv"

// Keys of the persisted state.
const (
	KeySignedIn = "signedIn"
	KeyName     = "name"
	KeyAge      = "age"
	KeyGender   = "gender"
)

// ProfileKeys lists the profile fields in the order they are written.
var ProfileKeys = []string{KeyName, KeyAge, KeyGender}

// Gender choices offered by the wizard.
const (
	GenderMale      = "Male"
	GenderFemale    = "Female"
	GenderNonBinary = "Non-binary"
)

// Genders is the picker order.
var Genders = []string{GenderMale, GenderFemale, GenderNonBinary}

// Profile is a fully collected user profile.
type Profile struct {
	Name   string
	Age    int
	Gender string
}

// Fallbacks shown for fields that are not stored.
const (
	FallbackName   = "Guest"
	FallbackAge    = 18
	FallbackGender = "Unknown"
)

// ProfileView is what the profile screen renders. Each field falls back to
// its default when the key is absent; Complete reports whether all three
// were present.
type ProfileView struct {
	Name     string
	Age      int
	Gender   string
	Complete bool
}

// AgeText is the age as displayed.
func (v ProfileView) AgeText() string {
	return strconv.Itoa(v.Age)
}
