package services

import (
	"context"
	"errors"
	"log"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

// LikeService is the like ledger plus its orchestration: the ledger write
// happens first and fails loud; the activity mirror and the notification are
// separate follow-up writes that can fail after the ledger committed, and
// such failures are logged without surfacing to the caller.
type LikeService struct {
	posts      repositories.PostRepository
	activities repositories.ActivityRepository
	notifier   NotificationSink
}

// NewLikeService creates a LikeService
func NewLikeService(posts repositories.PostRepository, activities repositories.ActivityRepository, notifier NotificationSink) *LikeService {
	return &LikeService{posts: posts, activities: activities, notifier: notifier}
}

// ToggleLike flips userID's membership in the post's likes set with an
// atomic array op and returns the new state. The returned count is projected
// from the likes array read before the toggle, not from a fresh read, so
// callers must treat it as optimistic.
func (s *LikeService) ToggleLike(ctx context.Context, postID, userID string) (models.LikeState, error) {
	if userID == "" {
		return models.LikeState{}, ErrUnauthenticated
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return models.LikeState{}, err
	}

	liked := post.LikedByUser(userID)
	count := int64(len(post.Likes))
	if liked {
		if err := s.posts.RemoveLike(ctx, postID, userID); err != nil {
			return models.LikeState{}, err
		}
		count--
	} else {
		if err := s.posts.AddLike(ctx, postID, userID); err != nil {
			return models.LikeState{}, err
		}
		count++
	}
	state := models.LikeState{Liked: !liked, Count: count}

	if state.Liked {
		if err := s.activities.AddLikedPost(ctx, userID, postID); err != nil {
			log.Printf("activity mirror: record like %s by %s: %v", postID, userID, err)
		}
		if _, err := s.notifier.Emit(ctx, models.NotificationTypeLike, userID, post.AuthorID, postID); err != nil {
			log.Printf("notification: like on %s: %v", postID, err)
		}
	} else {
		if err := s.activities.RemoveLikedPost(ctx, userID, postID); err != nil {
			log.Printf("activity mirror: record unlike %s by %s: %v", postID, userID, err)
		}
	}

	return state, nil
}

// LikedPosts returns the ids of the posts userID has liked, per the
// activity mirror.
func (s *LikeService) LikedPosts(ctx context.Context, userID string) ([]string, error) {
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
	return activity.LikedPosts, nil
}
