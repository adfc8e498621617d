package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache key prefixes and TTLs. Mutations must invalidate the matching keys.
const (
	UserTTL = 10 * time.Minute
	BlogTTL = 5 * time.Minute
	TagTTL  = 15 * time.Minute
)

// UserKey caches a public user profile by id.
func UserKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// BlogKey caches a single blog post by id, without viewer-specific fields.
func BlogKey(id uint) string {
	return fmt.Sprintf("blog:%d", id)
}

// PopularTagsKey caches the aggregated tag counts across published posts.
const PopularTagsKey = "blog:tags:popular"

// InvalidateUser drops the cached profile for a user.
func InvalidateUser(ctx context.Context, id uint) {
	Delete(ctx, UserKey(id))
}

// InvalidateBlog drops the cached post and the tag aggregate, which may have
// shifted after a create, update or delete.
func InvalidateBlog(ctx context.Context, id uint) {
	Delete(ctx, BlogKey(id), PopularTagsKey)
}
