package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/services"
)

// fakeLedger records toggle calls and returns a scripted result
type fakeLedger struct {
	calls int
	state models.LikeState
	err   error
}

func (f *fakeLedger) ToggleLike(ctx context.Context, postID, userID string) (models.LikeState, error) {
	f.calls++
	if f.err != nil {
		return models.LikeState{}, f.err
	}
	return f.state, nil
}

func TestInitializeComputesStateFromLikes(t *testing.T) {
	c := NewLikeCache(&fakeLedger{}, "u1")
	c.Initialize([]models.Post{
		{ID: "p1", Likes: []string{"u1", "u2"}},
		{ID: "p2", Likes: []string{"u2"}},
	})

	if !c.Liked("p1") {
		t.Fatal("p1 should be liked by u1")
	}
	if c.Count("p1") != 2 {
		t.Fatalf("p1 count = %d, want 2", c.Count("p1"))
	}
	if c.Liked("p2") {
		t.Fatal("p2 should not be liked by u1")
	}
	if c.Count("p2") != 1 {
		t.Fatalf("p2 count = %d, want 1", c.Count("p2"))
	}
}

func TestInitializeMergesWithoutClearing(t *testing.T) {
	c := NewLikeCache(&fakeLedger{}, "u1")
	c.Initialize([]models.Post{{ID: "p1", Likes: []string{"u1"}}})
	c.Initialize([]models.Post{{ID: "p2", Likes: []string{}}})

	if !c.Liked("p1") || c.Count("p1") != 1 {
		t.Fatal("initialize with new posts dropped existing entries")
	}
	if c.Liked("p2") || c.Count("p2") != 0 {
		t.Fatal("p2 state wrong after merge")
	}
}

func TestToggleLikeUnauthenticatedSession(t *testing.T) {
	ledger := &fakeLedger{}
	c := NewLikeCache(ledger, "")

	_, err := c.ToggleLike(context.Background(), "p1")
	if !errors.Is(err, services.ErrUnauthenticated) {
		t.Fatalf("got %v, want ErrUnauthenticated", err)
	}
	if ledger.calls != 0 {
		t.Fatal("ledger called for a signed-out session")
	}
}

func TestToggleLikeUpdatesCacheOnSuccess(t *testing.T) {
	ledger := &fakeLedger{state: models.LikeState{Liked: true, Count: 5}}
	c := NewLikeCache(ledger, "u1")
	c.Initialize([]models.Post{{ID: "p1", Likes: []string{"a", "b", "c", "d"}}})

	state, err := c.ToggleLike(context.Background(), "p1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !state.Liked || state.Count != 5 {
		t.Fatalf("state = %+v", state)
	}
	if !c.Liked("p1") || c.Count("p1") != 5 {
		t.Fatal("cache does not reflect the returned state")
	}
}

func TestToggleLikeLeavesCacheUntouchedOnFailure(t *testing.T) {
	ledger := &fakeLedger{err: errors.New("store unavailable")}
	c := NewLikeCache(ledger, "u1")
	c.Initialize([]models.Post{{ID: "p1", Likes: []string{"u1", "u2"}}})

	if _, err := c.ToggleLike(context.Background(), "p1"); err == nil {
		t.Fatal("expected error from ledger")
	}
	if !c.Liked("p1") || c.Count("p1") != 2 {
		t.Fatal("failed toggle mutated the cache")
	}
}
