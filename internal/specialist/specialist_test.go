// ABOUTME: Tests for the specialist roster and dispatch registry
// ABOUTME: The roster, validity check, and descriptions must stay in lockstep

package specialist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_EveryIDIsValidAndDescribed(t *testing.T) {
	for _, id := range All() {
		assert.True(t, Valid(id), "All() contains invalid id %q", id)
		assert.NotEmpty(t, Descriptions[id], "missing description for %q", id)
	}
	assert.Len(t, Descriptions, len(All()))
}

func TestValid_RejectsUnknown(t *testing.T) {
	assert.False(t, Valid("livestock"))
	assert.False(t, Valid(""))
}

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry()
	r.Register(Market, DispatchFunc(func(_ context.Context, id ID, prompt string) (string, error) {
		return "answer for " + prompt, nil
	}))

	answer, err := r.Dispatch(context.Background(), Market, "wheat rate")
	require.NoError(t, err)
	assert.Equal(t, "answer for wheat rate", answer)
}

func TestRegistry_UnknownSpecialist(t *testing.T) {
	r := NewRegistry()
	_, err := r.Dispatch(context.Background(), Weather, "forecast")
	assert.True(t, errors.Is(err, ErrUnknownSpecialist))
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(Soil, DispatchFunc(func(_ context.Context, _ ID, _ string) (string, error) {
		return "old", nil
	}))
	r.Register(Soil, DispatchFunc(func(_ context.Context, _ ID, _ string) (string, error) {
		return "new", nil
	}))

	answer, err := r.Dispatch(context.Background(), Soil, "q")
	require.NoError(t, err)
	assert.Equal(t, "new", answer)
}
