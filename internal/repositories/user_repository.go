package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines the interface for user profile operations. Profile
// documents are keyed by the Firebase UID.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, id string, fields bson.M) error
	List(ctx context.Context, skip, limit int64) ([]models.User, error)
}

type userRepository struct {
	store store.Store
}

// NewUserRepository creates a store-backed UserRepository
func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.store.Get(ctx, store.CollectionUsers, id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Upsert(ctx context.Context, user *models.User) error {
	existing, err := r.GetByID(ctx, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		user.CreatedAt = time.Now()
		_, err = r.store.Insert(ctx, store.CollectionUsers, user)
		return err
	}
	if err != nil {
		return err
	}
	user.CreatedAt = existing.CreatedAt
	user.IsAdmin = existing.IsAdmin
	return r.store.Update(ctx, store.CollectionUsers, user.ID, bson.M{
		"username":     user.Username,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"avatar_url":   user.AvatarURL,
	})
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, fields bson.M) error {
	if len(fields) == 0 {
		return nil
	}
	return r.store.Update(ctx, store.CollectionUsers, id, fields)
}

func (r *userRepository) List(ctx context.Context, skip, limit int64) ([]models.User, error) {
	var users []models.User
	opts := &store.QueryOptions{OrderBy: "created_at", Descending: true, Skip: skip, Limit: limit}
	if err := r.store.Query(ctx, store.CollectionUsers, bson.M{}, opts, &users); err != nil {
		return nil, err
	}
	return users, nil
}
