package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

// ActivityRepository maintains the per-user activity mirror document. The
// mirror is updated by calls parallel to the like ledger, never atomically
// with it.
type ActivityRepository interface {
	Get(ctx context.Context, userID string) (*models.UserActivity, error)
	AddLikedPost(ctx context.Context, userID, postID string) error
	RemoveLikedPost(ctx context.Context, userID, postID string) error
	AddFavoritePost(ctx context.Context, userID, postID string) error
	RemoveFavoritePost(ctx context.Context, userID, postID string) error
}

type activityRepository struct {
	store store.Store
}

// NewActivityRepository creates a store-backed ActivityRepository
func NewActivityRepository(s store.Store) ActivityRepository {
	return &activityRepository{store: s}
}

func (r *activityRepository) Get(ctx context.Context, userID string) (*models.UserActivity, error) {
	var activity models.UserActivity
	if err := r.store.Get(ctx, store.CollectionUserActivities, userID, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) AddLikedPost(ctx context.Context, userID, postID string) error {
	return r.union(ctx, userID, "liked_posts", postID)
}

func (r *activityRepository) RemoveLikedPost(ctx context.Context, userID, postID string) error {
	return r.remove(ctx, userID, "liked_posts", postID)
}

func (r *activityRepository) AddFavoritePost(ctx context.Context, userID, postID string) error {
	return r.union(ctx, userID, "favorite_posts", postID)
}

func (r *activityRepository) RemoveFavoritePost(ctx context.Context, userID, postID string) error {
	return r.remove(ctx, userID, "favorite_posts", postID)
}

// union adds postID to the named set, creating the activity document on the
// user's first recorded action.
func (r *activityRepository) union(ctx context.Context, userID, field, postID string) error {
	err := r.store.ArrayUnion(ctx, store.CollectionUserActivities, userID, field, postID)
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	activity := models.UserActivity{
		ID:            userID,
		LikedPosts:    []string{},
		FavoritePosts: []string{},
		CreatedAt:     time.Now(),
	}
	switch field {
	case "liked_posts":
		activity.LikedPosts = []string{postID}
	case "favorite_posts":
		activity.FavoritePosts = []string{postID}
	}
	_, err = r.store.Insert(ctx, store.CollectionUserActivities, &activity)
	return err
}

func (r *activityRepository) remove(ctx context.Context, userID, field, postID string) error {
	err := r.store.ArrayRemove(ctx, store.CollectionUserActivities, userID, field, postID)
	if errors.Is(err, store.ErrNotFound) {
		// Nothing mirrored for this user yet; removal is a no-op.
		return nil
	}
	return err
}
