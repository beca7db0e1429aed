package repositories

import (
	"context"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// CategoryRepository defines the interface for category operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	store store.Store
}

// NewCategoryRepository creates a store-backed CategoryRepository
func NewCategoryRepository(s store.Store) CategoryRepository {
	return &categoryRepository{store: s}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	category.CreatedAt = time.Now()
	id, err := r.store.Insert(ctx, store.CollectionCategories, category)
	if err != nil {
		return err
	}
	category.ID = id
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := r.store.Get(ctx, store.CollectionCategories, id, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	opts := &store.QueryOptions{OrderBy: "name"}
	if err := r.store.Query(ctx, store.CollectionCategories, bson.M{}, opts, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, id string, fields bson.M) error {
	if len(fields) == 0 {
		return nil
	}
	return r.store.Update(ctx, store.CollectionCategories, id, fields)
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionCategories, id)
}
