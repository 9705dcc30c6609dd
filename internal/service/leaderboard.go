package service

import (
	"context"
	"sort"
	"time"

	"pulse/internal/cache"
	"pulse/internal/models"
	"pulse/internal/observability"
	"pulse/internal/repository"
)

// Scoring weights: a like on a post is worth five points to the post's
// author, a like on a comment one point to the comment's author.
const (
	WeightPostLike    = 5
	WeightCommentLike = 1
	LeaderboardSize   = 5
)

// LeaderboardService ranks users by weighted engagement received within a
// trailing time window.
type LeaderboardService struct {
	reactions repository.ReactionRepository
	window    time.Duration
	now       func() time.Time
}

// NewLeaderboardService creates a LeaderboardService with the given window.
func NewLeaderboardService(reactions repository.ReactionRepository, window time.Duration) *LeaderboardService {
	return &LeaderboardService{
		reactions: reactions,
		window:    window,
		now:       time.Now,
	}
}

// Leaderboard returns at most LeaderboardSize entries, best score first.
// Results are cached briefly; scores are approximate at display time anyway.
func (s *LeaderboardService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	entries := []models.LeaderboardEntry{}
	key := cache.LeaderboardKey(int(s.window.Hours()))

	err := cache.Aside(ctx, key, &entries, cache.LeaderboardTTL, func() error {
		computed, err := s.compute(ctx)
		if err != nil {
			return err
		}
		entries = computed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// compute runs the two grouped queries and merges them. A user appearing in
// only one source still scores with the other contribution at zero.
func (s *LeaderboardService) compute(ctx context.Context) ([]models.LeaderboardEntry, error) {
	span, ctx := observability.NewSpan(ctx, "leaderboard.compute")
	defer span.End()

	timer := time.Now()
	defer func() {
		observability.LeaderboardComputeLatency.Observe(time.Since(timer).Seconds())
	}()

	cutoff := s.now().Add(-s.window)

	postRows, err := s.reactions.PostLikesByAuthor(ctx, cutoff)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	commentRows, err := s.reactions.CommentLikesByAuthor(ctx, cutoff)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	scores := make(map[uint]*models.LeaderboardEntry)
	add := func(rows []repository.AuthorEngagement, weight int64) {
		for _, row := range rows {
			entry, ok := scores[row.UserID]
			if !ok {
				entry = &models.LeaderboardEntry{UserID: row.UserID, Username: row.Username}
				scores[row.UserID] = entry
			}
			entry.Score += row.Likes * weight
		}
	}
	add(postRows, WeightPostLike)
	add(commentRows, WeightCommentLike)

	entries := make([]models.LeaderboardEntry, 0, len(scores))
	for _, entry := range scores {
		entries = append(entries, *entry)
	}

	// Map iteration order is incidental; the tie break on ascending user id
	// keeps the ranking stable across recomputations.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score == entries[j].Score {
			return entries[i].UserID < entries[j].UserID
		}
		return entries[i].Score > entries[j].Score
	})

	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return entries, nil
}
