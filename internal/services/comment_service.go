package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

// CommentService is the comment ledger: comment documents plus the
// denormalized comment_count on the parent post. The insert and the counter
// increment are two separate writes with no transaction around them.
type CommentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
	users    repositories.UserRepository
	notifier NotificationSink
}

// NewCommentService creates a CommentService
func NewCommentService(comments repositories.CommentRepository, posts repositories.PostRepository, users repositories.UserRepository, notifier NotificationSink) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, notifier: notifier}
}

// Add persists a comment, bumps the parent post's comment_count and emits a
// best-effort notification to the post author. fallbackName is the
// auth-provided display name used when the author has no profile document.
func (s *CommentService) Add(ctx context.Context, postID, userID, fallbackName, content string) (*models.Comment, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	username, avatarURL := fallbackName, ""
	if user, err := s.users.GetByID(ctx, userID); err == nil {
		username = user.Username
		avatarURL = user.AvatarURL
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	comment := &models.Comment{
		PostID:        postID,
		UserID:        userID,
		Username:      username,
		UserAvatarURL: avatarURL,
		Content:       content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	// The comment stays committed if the increment fails; comment_count
	// undercounts until someone recounts.
	if err := s.posts.IncrementCommentCount(ctx, postID, 1); err != nil {
		return nil, fmt.Errorf("comment %s stored but comment_count update failed: %w", comment.ID, err)
	}

	if _, err := s.notifier.Emit(ctx, models.NotificationTypeComment, userID, post.AuthorID, postID); err != nil {
		log.Printf("notification: comment on %s: %v", postID, err)
	}

	return comment, nil
}

// Update overwrites a comment's content. Only the comment author may edit.
func (s *CommentService) Update(ctx context.Context, commentID, userID, content string) (*models.Comment, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	existing, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrForbidden
	}
	if err := s.comments.UpdateContent(ctx, commentID, content); err != nil {
		return nil, err
	}
	return s.comments.GetByID(ctx, commentID)
}

// Delete hard-deletes a comment and decrements the parent post's
// comment_count. Only the comment author may delete.
func (s *CommentService) Delete(ctx context.Context, commentID, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	existing, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrForbidden
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}
	if err := s.posts.IncrementCommentCount(ctx, existing.PostID, -1); err != nil {
		return fmt.Errorf("comment %s deleted but comment_count update failed: %w", commentID, err)
	}
	return nil
}

// List returns a post's comments, newest first; limit <= 0 returns all of
// them.
func (s *CommentService) List(ctx context.Context, postID string, limit int64) ([]models.Comment, error) {
	return s.comments.ListByPost(ctx, postID, limit)
}
