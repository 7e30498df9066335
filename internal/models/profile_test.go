package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileView_AgeText(t *testing.T) {
	assert.Equal(t, "30", ProfileView{Age: 30}.AgeText())
	assert.Equal(t, "18", ProfileView{Age: FallbackAge}.AgeText())
}

func TestProfileKeys_DoNotIncludeFlag(t *testing.T) {
	assert.NotContains(t, ProfileKeys, KeySignedIn)
	assert.Len(t, ProfileKeys, 3)
}
