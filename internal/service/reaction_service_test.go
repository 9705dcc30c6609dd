package service

import (
	"context"
	"errors"
	"testing"

	"pulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReactionService_Toggle_Validation(t *testing.T) {
	t.Parallel()

	svc := NewReactionService(noopReactionRepo())
	ctx := context.Background()

	t.Run("missing target type", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Toggle(ctx, ToggleInput{UserID: 1, TargetID: 5})
		assertValidationError(t, err)
	})

	t.Run("missing target id", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Toggle(ctx, ToggleInput{UserID: 1, TargetType: "post"})
		assertValidationError(t, err)
	})

	t.Run("unknown target kind", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Toggle(ctx, ToggleInput{UserID: 1, TargetType: "story", TargetID: 5})
		assertAppErrorCode(t, err, "INVALID_TARGET")
	})
}

func TestReactionService_Toggle_States(t *testing.T) {
	t.Parallel()

	repo := noopReactionRepo()
	liked := true
	repo.toggleFn = func(_ context.Context, userID uint, kind models.TargetKind, targetID uint) (bool, error) {
		require.Equal(t, uint(1), userID)
		require.Equal(t, models.TargetComment, kind)
		require.Equal(t, uint(42), targetID)
		return liked, nil
	}

	svc := NewReactionService(repo)
	in := ToggleInput{UserID: 1, TargetType: "comment", TargetID: 42}

	state, err := svc.Toggle(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, StateLiked, state)

	liked = false
	state, err = svc.Toggle(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, StateUnliked, state)
}

func TestReactionService_Toggle_RepoErrorWrapped(t *testing.T) {
	t.Parallel()

	repo := noopReactionRepo()
	repo.toggleFn = func(_ context.Context, _ uint, _ models.TargetKind, _ uint) (bool, error) {
		return false, errors.New("deadlock detected")
	}

	svc := NewReactionService(repo)
	_, err := svc.Toggle(context.Background(), ToggleInput{UserID: 1, TargetType: "post", TargetID: 1})
	assertAppErrorCode(t, err, "INTERNAL_ERROR")
}
