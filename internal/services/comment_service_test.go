package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

func TestAddThenDeleteRestoresCommentCount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedUser(t, "u1", "alice")
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	comment, err := env.commentSvc.Add(ctx, "p1", "u1", "", "looks delicious")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if comment.ID == "" {
		t.Fatal("comment id not assigned")
	}
	if got := env.mustGetPost(t, "p1").CommentCount; got != 1 {
		t.Fatalf("comment_count after add = %d, want 1", got)
	}

	if err := env.commentSvc.Delete(ctx, comment.ID, "u1"); err != nil {
		t.Fatalf("delete comment: %v", err)
	}
	if got := env.mustGetPost(t, "p1").CommentCount; got != 0 {
		t.Fatalf("comment_count after delete = %d, want 0", got)
	}
}

func TestAddCommentUnauthenticated(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	_, err := env.commentSvc.Add(ctx, "p1", "", "", "hi")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}

	comments, err := env.commentSvc.List(ctx, "p1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("unauthenticated add stored a comment: %v", comments)
	}
	if got := env.mustGetPost(t, "p1").CommentCount; got != 0 {
		t.Fatalf("comment_count mutated: %d", got)
	}
}

func TestAddCommentProfileFallback(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	// No profile document for u1; the auth display name fills in.
	comment, err := env.commentSvc.Add(ctx, "p1", "u1", "Alice B", "great")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if comment.Username != "Alice B" {
		t.Fatalf("username = %q, want auth display name fallback", comment.Username)
	}
}

func TestAddCommentNotifiesAuthorOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedUser(t, "u1", "alice")
	env.seedUser(t, "author", "bob")
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	if _, err := env.commentSvc.Add(ctx, "p1", "u1", "", "first"); err != nil {
		t.Fatalf("add comment: %v", err)
	}
	notifications, err := env.notifications.ListByReceiver(ctx, "author", 0, 10)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Type != "comment" {
		t.Fatalf("expected one comment notification, got %+v", notifications)
	}

	// Commenting on your own post emits nothing.
	if _, err := env.commentSvc.Add(ctx, "p1", "author", "", "thanks"); err != nil {
		t.Fatalf("self comment: %v", err)
	}
	selfNotifications, err := env.notifications.ListByReceiver(ctx, "author", 0, 10)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(selfNotifications) != 1 {
		t.Fatalf("self comment created a notification: %+v", selfNotifications)
	}
}

func TestUpdateCommentAuthorOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedUser(t, "u1", "alice")
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	comment, err := env.commentSvc.Add(ctx, "p1", "u1", "", "original")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	if _, err := env.commentSvc.Update(ctx, comment.ID, "intruder", "hacked"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-author update: got %v, want ErrForbidden", err)
	}

	updated, err := env.commentSvc.Update(ctx, comment.ID, "u1", "edited")
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("content = %q, want %q", updated.Content, "edited")
	}
	if updated.UpdatedAt == nil {
		t.Fatal("updated_at not set")
	}
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedUser(t, "u1", "alice")
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	comment, err := env.commentSvc.Add(ctx, "p1", "u1", "", "mine")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if err := env.commentSvc.Delete(ctx, comment.ID, "intruder"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-author delete: got %v, want ErrForbidden", err)
	}
}

func TestListCommentsNewestFirst(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"oldest", "middle", "newest"} {
		comment := &models.Comment{
			PostID:    "p1",
			UserID:    "u1",
			Username:  "alice",
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := env.store.Insert(ctx, store.CollectionComments, comment); err != nil {
			t.Fatalf("seed comment: %v", err)
		}
	}

	comments, err := env.commentSvc.List(ctx, "p1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 3 {
		t.Fatalf("got %d comments, want 3", len(comments))
	}
	if comments[0].Content != "newest" || comments[2].Content != "oldest" {
		t.Fatalf("wrong order: %q, %q, %q", comments[0].Content, comments[1].Content, comments[2].Content)
	}

	limited, err := env.commentSvc.List(ctx, "p1", 2)
	if err != nil {
		t.Fatalf("limited list: %v", err)
	}
	if len(limited) != 2 || limited[0].Content != "newest" {
		t.Fatalf("limited list wrong: %+v", limited)
	}
}
