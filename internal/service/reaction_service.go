package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"
)

// Toggle states reported to clients.
const (
	StateLiked   = "liked"
	StateUnliked = "unliked"
)

// ReactionService validates and executes like toggles against the ledger.
type ReactionService struct {
	reactions repository.ReactionRepository
}

// ToggleInput carries one toggle request. TargetType arrives as the raw
// client string and is validated here.
type ToggleInput struct {
	UserID     uint
	TargetType string
	TargetID   uint
}

// NewReactionService creates a new ReactionService
func NewReactionService(reactions repository.ReactionRepository) *ReactionService {
	return &ReactionService{reactions: reactions}
}

// Toggle flips the like state for (user, target) and returns the resulting
// state. The target is not dereferenced: reactions on since-deleted targets
// are tolerated and simply stop counting.
func (s *ReactionService) Toggle(ctx context.Context, in ToggleInput) (string, error) {
	if in.TargetType == "" || in.TargetID == 0 {
		return "", models.NewValidationError("target_type and target_id are required")
	}

	kind := models.TargetKind(in.TargetType)
	if !kind.Valid() {
		return "", models.NewInvalidTargetError(in.TargetType)
	}

	liked, err := s.reactions.Toggle(ctx, in.UserID, kind, in.TargetID)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	state := StateUnliked
	if liked {
		state = StateLiked
	}
	observability.ReactionToggles.WithLabelValues(string(kind), state).Inc()
	return state, nil
}
