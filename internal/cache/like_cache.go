// Package cache holds the session-scoped like cache that mirrors the like
// state of the posts a client session has seen. It is a best-effort,
// in-memory structure rebuilt from Post documents on each session start;
// nothing here is correctness-critical.
package cache

import (
	"context"
	"sync"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/services"
)

// Ledger is the like toggle the cache delegates to
type Ledger interface {
	ToggleLike(ctx context.Context, postID, userID string) (models.LikeState, error)
}

// LikeCache tracks, per post, whether the session user liked it and the
// like count. Toggles are reflected optimistically from the ledger's
// returned state; a failed toggle leaves the cache untouched.
type LikeCache struct {
	mu        sync.Mutex
	userID    string
	ledger    Ledger
	likedByMe map[string]bool
	likeCount map[string]int64
}

// NewLikeCache creates an empty cache bound to the session user. userID may
// be empty for a signed-out session; toggles then fail with
// ErrUnauthenticated.
func NewLikeCache(ledger Ledger, userID string) *LikeCache {
	return &LikeCache{
		userID:    userID,
		ledger:    ledger,
		likedByMe: make(map[string]bool),
		likeCount: make(map[string]int64),
	}
}

// Initialize merges like state computed from the given posts into the
// cache. Entries for posts not in the slice are kept as they are.
func (c *LikeCache) Initialize(posts []models.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range posts {
		post := &posts[i]
		if post.ID == "" {
			continue
		}
		c.likedByMe[post.ID] = post.LikedByUser(c.userID)
		c.likeCount[post.ID] = int64(len(post.Likes))
	}
}

// ToggleLike delegates to the ledger and, on success, updates the cached
// state to the returned projection. On failure the cache is left untouched
// and the error propagates.
func (c *LikeCache) ToggleLike(ctx context.Context, postID string) (models.LikeState, error) {
	if c.userID == "" {
		return models.LikeState{}, services.ErrUnauthenticated
	}
	state, err := c.ledger.ToggleLike(ctx, postID, c.userID)
	if err != nil {
		return models.LikeState{}, err
	}
	c.mu.Lock()
	c.likedByMe[postID] = state.Liked
	c.likeCount[postID] = state.Count
	c.mu.Unlock()
	return state, nil
}

// Liked reports the cached "liked by me" flag for a post
func (c *LikeCache) Liked(postID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.likedByMe[postID]
}

// Count reports the cached like count for a post
func (c *LikeCache) Count(postID string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.likeCount[postID]
}
