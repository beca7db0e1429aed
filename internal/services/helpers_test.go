package services

import (
	"context"
	"testing"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

// testEnv wires the full service stack onto an in-memory store
type testEnv struct {
	store         *store.Memory
	posts         repositories.PostRepository
	comments      repositories.CommentRepository
	users         repositories.UserRepository
	activities    repositories.ActivityRepository
	notifications repositories.NotificationRepository

	notificationSvc *NotificationService
	likeSvc         *LikeService
	commentSvc      *CommentService
	favoriteSvc     *FavoriteService
	postSvc         *PostService
}

func newTestEnv() *testEnv {
	s := store.NewMemory()
	env := &testEnv{
		store:         s,
		posts:         repositories.NewPostRepository(s),
		comments:      repositories.NewCommentRepository(s),
		users:         repositories.NewUserRepository(s),
		activities:    repositories.NewActivityRepository(s),
		notifications: repositories.NewNotificationRepository(s),
	}
	env.notificationSvc = NewNotificationService(env.notifications, env.users, env.posts)
	env.likeSvc = NewLikeService(env.posts, env.activities, env.notificationSvc)
	env.commentSvc = NewCommentService(env.comments, env.posts, env.users, env.notificationSvc)
	env.favoriteSvc = NewFavoriteService(env.posts, env.activities, env.notificationSvc)
	env.postSvc = NewPostService(env.posts, env.comments, env.users)
	return env
}

// seedPost inserts a post document directly into the given collection
func (e *testEnv) seedPost(t *testing.T, collection, id, authorID string, likes []string) *models.Post {
	t.Helper()
	if likes == nil {
		likes = []string{}
	}
	post := &models.Post{
		ID:             id,
		AuthorID:       authorID,
		AuthorUsername: authorID,
		Caption:        "seeded",
		MediaURLs:      []string{"https://cdn.example.com/" + id + ".jpg"},
		MediaType:      models.MediaTypeImage,
		Likes:          likes,
		PostType:       models.PostTypeGeneral,
		CreatedAt:      time.Now(),
	}
	if _, err := e.store.Insert(context.Background(), collection, post); err != nil {
		t.Fatalf("seed post %s: %v", id, err)
	}
	return post
}

// seedUser inserts a profile document keyed by uid
func (e *testEnv) seedUser(t *testing.T, uid, username string) {
	t.Helper()
	user := &models.User{
		ID:        uid,
		Username:  username,
		Email:     username + "@example.com",
		AvatarURL: "https://cdn.example.com/avatars/" + uid + ".png",
		CreatedAt: time.Now(),
	}
	if _, err := e.store.Insert(context.Background(), store.CollectionUsers, user); err != nil {
		t.Fatalf("seed user %s: %v", uid, err)
	}
}

func (e *testEnv) mustGetPost(t *testing.T, id string) *models.Post {
	t.Helper()
	post, err := e.posts.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get post %s: %v", id, err)
	}
	return post
}
