package repositories

import (
	"context"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	// ListByPost returns comments newest first; limit <= 0 means unbounded.
	ListByPost(ctx context.Context, postID string, limit int64) ([]models.Comment, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}

type commentRepository struct {
	store store.Store
}

// NewCommentRepository creates a store-backed CommentRepository
func NewCommentRepository(s store.Store) CommentRepository {
	return &commentRepository{store: s}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.CreatedAt = time.Now()
	id, err := r.store.Insert(ctx, store.CollectionComments, comment)
	if err != nil {
		return err
	}
	comment.ID = id
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.store.Get(ctx, store.CollectionComments, id, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string, limit int64) ([]models.Comment, error) {
	var comments []models.Comment
	opts := &store.QueryOptions{OrderBy: "created_at", Descending: true, Limit: limit}
	err := r.store.Query(ctx, store.CollectionComments, bson.M{"post_id": postID}, opts, &comments)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id, content string) error {
	return r.store.Update(ctx, store.CollectionComments, id, bson.M{
		"content":    content,
		"updated_at": time.Now(),
	})
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionComments, id)
}
