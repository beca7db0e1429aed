package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpsertInsertsThenUpdates(t *testing.T) {
	s := store.NewMemory()
	repo := NewUserRepository(s)
	ctx := context.Background()

	first := &models.User{ID: "uid-1", Username: "alice", Email: "alice@example.com"}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("insert upsert: %v", err)
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("created_at not set on first upsert")
	}

	// Mark admin out of band; a later sync must not clear it.
	if err := s.Update(ctx, store.CollectionUsers, "uid-1", bson.M{"is_admin": true}); err != nil {
		t.Fatalf("mark admin: %v", err)
	}

	second := &models.User{ID: "uid-1", Username: "alice2", Email: "alice@example.com"}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("update upsert: %v", err)
	}

	got, err := repo.GetByID(ctx, "uid-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Username != "alice2" {
		t.Fatalf("username = %q, want alice2", got.Username)
	}
	if !got.IsAdmin {
		t.Fatal("upsert cleared is_admin")
	}
	if got.CreatedAt.Sub(first.CreatedAt) > time.Second || first.CreatedAt.Sub(got.CreatedAt) > time.Second {
		t.Fatalf("created_at changed on re-sync: %v vs %v", got.CreatedAt, first.CreatedAt)
	}
}
