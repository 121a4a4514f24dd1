package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%s"
	PostsListKey  = "posts:latest"
)

const (
	UserTTL      = 5 * time.Minute
	PostsListTTL = 1 * time.Minute
)

// UserKey returns the cache key for a user profile, keyed by external id.
func UserKey(externalID string) string {
	return fmt.Sprintf(UserKeyPrefix, externalID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, externalID string) {
	Invalidate(ctx, UserKey(externalID))
}

func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, PostsListKey)
}
