package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

func TestCreatePostSnapshotsAuthorProfile(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedUser(t, "u1", "alice")

	post, err := env.postSvc.Create(ctx, "u1", "", &models.CreatePostRequest{
		Caption:   "dinner",
		MediaURLs: []string{"https://cdn.example.com/dinner.jpg"},
		MediaType: models.MediaTypeImage,
		PostType:  models.PostTypeGeneral,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if post.ID == "" {
		t.Fatal("post id not assigned")
	}
	if post.AuthorUsername != "alice" {
		t.Fatalf("author username = %q, want snapshot from profile", post.AuthorUsername)
	}
	if post.Likes == nil || len(post.Likes) != 0 {
		t.Fatalf("likes not initialized empty: %v", post.Likes)
	}
	if post.CommentCount != 0 {
		t.Fatalf("comment_count = %d, want 0", post.CommentCount)
	}
}

func TestCreateRecipePostRequiresDetails(t *testing.T) {
	env := newTestEnv()

	_, err := env.postSvc.Create(context.Background(), "u1", "alice", &models.CreatePostRequest{
		Caption:   "pho",
		MediaURLs: []string{"https://cdn.example.com/pho.jpg"},
		MediaType: models.MediaTypeImage,
		PostType:  models.PostTypeRecipe,
	})
	if err == nil {
		t.Fatal("recipe post without details accepted")
	}
}

func TestDeletePostAuthorOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	if err := env.postSvc.Delete(ctx, "p1", "intruder"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-author delete: got %v, want ErrForbidden", err)
	}
	if err := env.postSvc.Delete(ctx, "p1", "author"); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, err := env.postSvc.Get(ctx, "p1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("post still present after delete: %v", err)
	}
}

func TestDeletePostCleansUpComments(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedUser(t, "u1", "alice")
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	if _, err := env.commentSvc.Add(ctx, "p1", "u1", "", "tasty"); err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if err := env.postSvc.Delete(ctx, "p1", "author"); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	comments, err := env.commentSvc.List(ctx, "p1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 0 {
		t.Fatalf("orphan comments remain: %+v", comments)
	}
}

func TestFeedByCategoryAndHashtag(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedUser(t, "u1", "alice")

	if _, err := env.postSvc.Create(ctx, "u1", "", &models.CreatePostRequest{
		Caption:     "pho night",
		MediaURLs:   []string{"https://cdn.example.com/pho.jpg"},
		MediaType:   models.MediaTypeImage,
		PostType:    models.PostTypeGeneral,
		Hashtags:    []string{"pho", "vietnamese"},
		CategoryIDs: []string{"cat-soup"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := env.postSvc.Create(ctx, "u1", "", &models.CreatePostRequest{
		Caption:   "pizza",
		MediaURLs: []string{"https://cdn.example.com/pizza.jpg"},
		MediaType: models.MediaTypeImage,
		PostType:  models.PostTypeGeneral,
		Hashtags:  []string{"pizza"},
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	byCategory, err := env.postSvc.ByCategory(ctx, "cat-soup", 0, 10)
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Caption != "pho night" {
		t.Fatalf("by category = %+v", byCategory)
	}

	byHashtag, err := env.postSvc.ByHashtag(ctx, "pho", 0, 10)
	if err != nil {
		t.Fatalf("by hashtag: %v", err)
	}
	if len(byHashtag) != 1 || byHashtag[0].Caption != "pho night" {
		t.Fatalf("by hashtag = %+v", byHashtag)
	}

	feed, err := env.postSvc.Feed(ctx, 0, 10)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("feed size = %d, want 2", len(feed))
	}
}
