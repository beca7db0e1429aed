package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

func TestToggleFavoriteRoundTrip(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	env.seedUser(t, "u1", "alice")
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	favored, err := env.favoriteSvc.ToggleFavorite(ctx, "p1", "u1")
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !favored {
		t.Fatal("first toggle should favorite")
	}

	favorites, err := env.favoriteSvc.Favorites(ctx, "u1")
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0] != "p1" {
		t.Fatalf("favorites = %v, want [p1]", favorites)
	}

	notifications, err := env.notifications.ListByReceiver(ctx, "author", 0, 10)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Type != "favorite" {
		t.Fatalf("expected one favorite notification, got %+v", notifications)
	}

	favored, err = env.favoriteSvc.ToggleFavorite(ctx, "p1", "u1")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if favored {
		t.Fatal("second toggle should unfavorite")
	}
	favorites, err = env.favoriteSvc.Favorites(ctx, "u1")
	if err != nil {
		t.Fatalf("favorites: %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("favorites after unfavorite = %v, want empty", favorites)
	}
}

func TestToggleFavoriteUnauthenticated(t *testing.T) {
	env := newTestEnv()
	env.seedPost(t, store.CollectionPosts, "p1", "author", nil)

	_, err := env.favoriteSvc.ToggleFavorite(context.Background(), "p1", "")
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}
}

func TestToggleFavoriteMissingPost(t *testing.T) {
	env := newTestEnv()

	_, err := env.favoriteSvc.ToggleFavorite(context.Background(), "missing", "u1")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want store.ErrNotFound", err)
	}
}
