// Package services contains the application services of the onboarding
// client. This file defines the profile service: committing a finished
// profile, signing out, and reading the stored profile for display.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/onboarding/internal/logging"
	"github.com/dmitrijs2005/onboarding/internal/models"
	"github.com/dmitrijs2005/onboarding/internal/storage"
)

// ProfileService defines profile operations for the CLI.
//
// Contract:
//   - SignIn: store name, age and gender, then set signedIn=true, atomically.
//   - SignOut: remove name, age and gender, then set signedIn=false, atomically.
//   - Load: read the profile, substituting fallbacks for absent fields.
//   - IsSignedIn: read the session flag; absent means false.
type ProfileService interface {
	SignIn(ctx context.Context, p models.Profile) error
	SignOut(ctx context.Context) error
	Load(ctx context.Context) (models.ProfileView, error)
	IsSignedIn(ctx context.Context) (bool, error)
}

type profileService struct {
	store storage.KeyValueStore
	log   logging.Logger
}

// NewProfileService constructs a ProfileService over store.
func NewProfileService(store storage.KeyValueStore, log logging.Logger) ProfileService {
	return &profileService{store: store, log: log}
}

// SignIn commits p. The flag is written last inside the same transaction, so
// signedIn=true is never visible without the three fields.
func (s *profileService) SignIn(ctx context.Context, p models.Profile) error {
	err := s.store.Update(ctx, func(ctx context.Context, w storage.Writer) error {
		if err := w.SetString(ctx, models.KeyName, p.Name); err != nil {
			return err
		}
		if err := w.SetInt(ctx, models.KeyAge, p.Age); err != nil {
			return err
		}
		if err := w.SetString(ctx, models.KeyGender, p.Gender); err != nil {
			return err
		}
		return w.SetBool(ctx, models.KeySignedIn, true)
	})
	if err != nil {
		s.log.Error(ctx, "sign in failed", "error", err)
		return fmt.Errorf("sign in: %w", err)
	}
	s.log.Info(ctx, "signed in")
	return nil
}

// SignOut removes the profile fields (absent, not empty) and clears the flag.
func (s *profileService) SignOut(ctx context.Context) error {
	err := s.store.Update(ctx, func(ctx context.Context, w storage.Writer) error {
		for _, k := range models.ProfileKeys {
			if err := w.Delete(ctx, k); err != nil {
				return err
			}
		}
		return w.SetBool(ctx, models.KeySignedIn, false)
	})
	if err != nil {
		s.log.Error(ctx, "sign out failed", "error", err)
		return fmt.Errorf("sign out: %w", err)
	}
	s.log.Info(ctx, "signed out")
	return nil
}

func (s *profileService) Load(ctx context.Context) (models.ProfileView, error) {
	v := models.ProfileView{
		Name:   models.FallbackName,
		Age:    models.FallbackAge,
		Gender: models.FallbackGender,
	}

	name, okName, err := s.store.GetString(ctx, models.KeyName)
	if err != nil {
		return v, fmt.Errorf("load profile: %w", err)
	}
	age, okAge, err := s.store.GetInt(ctx, models.KeyAge)
	if err != nil {
		return v, fmt.Errorf("load profile: %w", err)
	}
	gender, okGender, err := s.store.GetString(ctx, models.KeyGender)
	if err != nil {
		return v, fmt.Errorf("load profile: %w", err)
	}

	if okName {
		v.Name = name
	}
	if okAge {
		v.Age = age
	}
	if okGender {
		v.Gender = gender
	}
	v.Complete = okName && okAge && okGender

	if !v.Complete {
		s.log.Warn(ctx, "profile incomplete, showing fallbacks", "name", okName, "age", okAge, "gender", okGender)
	}
	return v, nil
}

func (s *profileService) IsSignedIn(ctx context.Context) (bool, error) {
	v, _, err := s.store.GetBool(ctx, models.KeySignedIn)
	if err != nil {
		return false, fmt.Errorf("read session flag: %w", err)
	}
	return v, nil
}
