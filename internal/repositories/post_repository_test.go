package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

func seedPostIn(t *testing.T, s *store.Memory, collection, id, authorID string) {
	t.Helper()
	post := &models.Post{
		ID:        id,
		AuthorID:  authorID,
		Caption:   "seeded",
		Likes:     []string{},
		PostType:  models.PostTypeGeneral,
		CreatedAt: time.Now(),
	}
	if _, err := s.Insert(context.Background(), collection, post); err != nil {
		t.Fatalf("seed post %s in %s: %v", id, collection, err)
	}
}

func TestGetByIDFallsBackToLegacyCollection(t *testing.T) {
	s := store.NewMemory()
	repo := NewPostRepository(s)
	ctx := context.Background()
	seedPostIn(t, s, store.CollectionPostsLegacy, "old1", "author")

	post, err := repo.GetByID(ctx, "old1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.ID != "old1" || post.AuthorID != "author" {
		t.Fatalf("wrong document: %+v", post)
	}
}

func TestGetByIDPrefersPrimaryCollection(t *testing.T) {
	s := store.NewMemory()
	repo := NewPostRepository(s)
	ctx := context.Background()
	seedPostIn(t, s, store.CollectionPosts, "p1", "primary-author")
	seedPostIn(t, s, store.CollectionPostsLegacy, "p1", "legacy-author")

	post, err := repo.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.AuthorID != "primary-author" {
		t.Fatalf("legacy document shadowed the primary: %+v", post)
	}
}

func TestGetByIDMissingEverywhere(t *testing.T) {
	s := store.NewMemory()
	repo := NewPostRepository(s)

	_, err := repo.GetByID(context.Background(), "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want store.ErrNotFound", err)
	}
}

func TestIncrementCommentCountOnLegacyDocument(t *testing.T) {
	s := store.NewMemory()
	repo := NewPostRepository(s)
	ctx := context.Background()
	seedPostIn(t, s, store.CollectionPostsLegacy, "old1", "author")

	if err := repo.IncrementCommentCount(ctx, "old1", 1); err != nil {
		t.Fatalf("increment: %v", err)
	}
	post, err := repo.GetByID(ctx, "old1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if post.CommentCount != 1 {
		t.Fatalf("comment_count = %d, want 1", post.CommentCount)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	s := store.NewMemory()
	repo := NewPostRepository(s)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"p1", "p2", "p3"} {
		post := &models.Post{
			ID:        id,
			AuthorID:  "author",
			Likes:     []string{},
			PostType:  models.PostTypeGeneral,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := s.Insert(ctx, store.CollectionPosts, post); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}

	posts, err := repo.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posts) != 3 || posts[0].ID != "p3" || posts[2].ID != "p1" {
		t.Fatalf("wrong order: %+v", posts)
	}
}
