package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// PostRepository defines the interface for post data operations. Lookups by
// id fall back to the legacy lower-cased posts collection when the primary
// collection misses, so likes and counter updates land on the document that
// actually exists.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, skip, limit int64) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID string, skip, limit int64) ([]models.Post, error)
	ListByCategory(ctx context.Context, categoryID string, skip, limit int64) ([]models.Post, error)
	ListByHashtag(ctx context.Context, hashtag string, skip, limit int64) ([]models.Post, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	IncrementCommentCount(ctx context.Context, postID string, delta int64) error
}

type postRepository struct {
	store store.Store
}

// NewPostRepository creates a store-backed PostRepository
func NewPostRepository(s store.Store) PostRepository {
	return &postRepository{store: s}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	post.CreatedAt = time.Now()
	if post.Likes == nil {
		post.Likes = []string{}
	}
	id, err := r.store.Insert(ctx, store.CollectionPosts, post)
	if err != nil {
		return err
	}
	post.ID = id
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.withFallback(func(collection string) error {
		return r.store.Get(ctx, collection, id, &post)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, skip, limit int64) ([]models.Post, error) {
	return r.query(ctx, bson.M{}, skip, limit)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, skip, limit int64) ([]models.Post, error) {
	return r.query(ctx, bson.M{"author_id": authorID}, skip, limit)
}

func (r *postRepository) ListByCategory(ctx context.Context, categoryID string, skip, limit int64) ([]models.Post, error) {
	return r.query(ctx, bson.M{"category_ids": categoryID}, skip, limit)
}

func (r *postRepository) ListByHashtag(ctx context.Context, hashtag string, skip, limit int64) ([]models.Post, error) {
	return r.query(ctx, bson.M{"hashtags": hashtag}, skip, limit)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.withFallback(func(collection string) error {
		return r.store.Delete(ctx, collection, id)
	})
}

func (r *postRepository) AddLike(ctx context.Context, postID, userID string) error {
	return r.withFallback(func(collection string) error {
		return r.store.ArrayUnion(ctx, collection, postID, "likes", userID)
	})
}

func (r *postRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	return r.withFallback(func(collection string) error {
		return r.store.ArrayRemove(ctx, collection, postID, "likes", userID)
	})
}

func (r *postRepository) IncrementCommentCount(ctx context.Context, postID string, delta int64) error {
	return r.withFallback(func(collection string) error {
		return r.store.Increment(ctx, collection, postID, "comment_count", delta)
	})
}

func (r *postRepository) query(ctx context.Context, filter bson.M, skip, limit int64) ([]models.Post, error) {
	var posts []models.Post
	opts := &store.QueryOptions{OrderBy: "created_at", Descending: true, Skip: skip, Limit: limit}
	if err := r.store.Query(ctx, store.CollectionPosts, filter, opts, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// withFallback runs op against the primary posts collection and retries
// against the legacy collection only when the primary reports a miss.
func (r *postRepository) withFallback(op func(collection string) error) error {
	err := op(store.CollectionPosts)
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if legacyErr := op(store.CollectionPostsLegacy); !errors.Is(legacyErr, store.ErrNotFound) {
		return legacyErr
	}
	return store.ErrNotFound
}
