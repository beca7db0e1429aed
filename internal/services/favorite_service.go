package services

import (
	"context"
	"errors"
	"log"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

// FavoriteService maintains the per-user favorite_posts set on the activity
// document using atomic array ops.
type FavoriteService struct {
	posts      repositories.PostRepository
	activities repositories.ActivityRepository
	notifier   NotificationSink
}

// NewFavoriteService creates a FavoriteService
func NewFavoriteService(posts repositories.PostRepository, activities repositories.ActivityRepository, notifier NotificationSink) *FavoriteService {
	return &FavoriteService{posts: posts, activities: activities, notifier: notifier}
}

// ToggleFavorite flips postID's membership in the caller's favorites and
// returns the new membership. Adding a favorite notifies the post author,
// best effort.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, postID, userID string) (bool, error) {
	if userID == "" {
		return false, ErrUnauthenticated
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}

	favored := false
	activity, err := s.activities.Get(ctx, userID)
	if err == nil {
		for _, id := range activity.FavoritePosts {
			if id == postID {
				favored = true
				break
			}
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	if favored {
		if err := s.activities.RemoveFavoritePost(ctx, userID, postID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.activities.AddFavoritePost(ctx, userID, postID); err != nil {
		return false, err
	}
	if _, err := s.notifier.Emit(ctx, models.NotificationTypeFavorite, userID, post.AuthorID, postID); err != nil {
		log.Printf("notification: favorite on %s: %v", postID, err)
	}
	return true, nil
}

// Favorites returns the ids of the posts userID has favorited
func (s *FavoriteService) Favorites(ctx context.Context, userID string) ([]string, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	activity, err := s.activities.Get(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return activity.FavoritePosts, nil
}
