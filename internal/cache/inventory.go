package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix        = "post:%d"
	LeaderboardKeyPrefix = "leaderboard:%dh"
)

const (
	PostTTL = 30 * time.Minute
	// LeaderboardTTL is short: scores are approximate at display time and
	// recomputing every request would hammer the grouped-count queries.
	LeaderboardTTL = 30 * time.Second
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func LeaderboardKey(windowHours int) string {
	return fmt.Sprintf(LeaderboardKeyPrefix, windowHours)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}
