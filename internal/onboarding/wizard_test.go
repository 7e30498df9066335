package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/onboarding/internal/logging"
	"github.com/dmitrijs2005/onboarding/internal/models"
)

type fakeCommitter struct {
	calls []models.Profile
	err   error
}

func (f *fakeCommitter) SignIn(_ context.Context, p models.Profile) error {
	f.calls = append(f.calls, p)
	return f.err
}

func dispatchAll(t *testing.T, w *Wizard, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		require.NoError(t, w.Dispatch(context.Background(), a))
	}
}

func TestWizard_HappyPath(t *testing.T) {
	fc := &fakeCommitter{}
	w := NewWizard(fc, logging.Discard())

	dispatchAll(t, w,
		Advance{},
		SetName{Name: "Al"}, Advance{},
		SetAge{Age: 30}, Advance{},
		SetGender{Gender: models.GenderFemale}, Advance{},
	)

	assert.True(t, w.Done())
	require.Len(t, fc.calls, 1)
	assert.Equal(t, models.Profile{Name: "Al", Age: 30, Gender: "Female"}, fc.calls[0])
}

func TestWizard_ValidationErrorIsReturnedAndShown(t *testing.T) {
	fc := &fakeCommitter{}
	w := NewWizard(fc, logging.Discard())
	ctx := context.Background()

	require.NoError(t, w.Dispatch(ctx, Advance{}))
	require.NoError(t, w.Dispatch(ctx, SetName{Name: "A"}))

	err := w.Dispatch(ctx, Advance{})
	require.ErrorIs(t, err, ErrNameTooShort)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, TitleNameTooShort, ve.Title)

	assert.Equal(t, StepName, w.Step())
	assert.True(t, w.State().Alert.Visible)
	assert.Empty(t, fc.calls)

	require.NoError(t, w.Dispatch(ctx, DismissAlert{}))
	assert.False(t, w.State().Alert.Visible)
	assert.Equal(t, TitleNameTooShort, w.State().Alert.Title)
}

func TestWizard_CommitFailureStaysOnGender(t *testing.T) {
	boom := errors.New("disk full")
	fc := &fakeCommitter{err: boom}
	w := NewWizard(fc, logging.Discard())
	ctx := context.Background()

	dispatchAll(t, w, Advance{}, SetName{Name: "Al"}, Advance{}, Advance{}, SetGender{Gender: "Male"})

	err := w.Dispatch(ctx, Advance{})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, StepGender, w.Step())
	assert.False(t, w.Done())

	fc.err = nil
	require.NoError(t, w.Dispatch(ctx, Advance{}))
	assert.True(t, w.Done())
	assert.Len(t, fc.calls, 2)
	assert.Equal(t, 50, fc.calls[1].Age, "default age is committed when the slider was not touched")
}

func TestWizard_Reset(t *testing.T) {
	w := NewWizard(&fakeCommitter{}, logging.Discard())
	dispatchAll(t, w, Advance{}, SetName{Name: "Al"}, Advance{})
	require.Equal(t, StepAge, w.Step())

	w.Reset()
	assert.Equal(t, NewState(), w.State())
}
