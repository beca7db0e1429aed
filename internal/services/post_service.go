package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

// PostService handles post creation and feed queries. Author username and
// avatar are snapshotted onto the post document at creation time.
type PostService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	users    repositories.UserRepository
}

// NewPostService creates a PostService
func NewPostService(posts repositories.PostRepository, comments repositories.CommentRepository, users repositories.UserRepository) *PostService {
	return &PostService{posts: posts, comments: comments, users: users}
}

// Create persists a new post for userID. fallbackName is the auth-provided
// display name used when the author has no profile document.
func (s *PostService) Create(ctx context.Context, userID, fallbackName string, req *models.CreatePostRequest) (*models.Post, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if req.PostType == models.PostTypeRecipe && req.RecipeDetails == nil {
		return nil, fmt.Errorf("recipe post requires recipe details")
	}
	if req.PostType == models.PostTypeReview && req.ReviewDetails == nil {
		return nil, fmt.Errorf("review post requires review details")
	}

	username, avatarURL := fallbackName, ""
	if user, err := s.users.GetByID(ctx, userID); err == nil {
		username = user.Username
		avatarURL = user.AvatarURL
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	post := &models.Post{
		AuthorID:        userID,
		AuthorUsername:  username,
		AuthorAvatarURL: avatarURL,
		Caption:         req.Caption,
		MediaURLs:       req.MediaURLs,
		MediaType:       req.MediaType,
		Likes:           []string{},
		Hashtags:        req.Hashtags,
		CategoryIDs:     req.CategoryIDs,
		PostType:        req.PostType,
		Location:        req.Location,
	}
	switch req.PostType {
	case models.PostTypeRecipe:
		post.RecipeDetails = req.RecipeDetails
	case models.PostTypeReview:
		post.ReviewDetails = req.ReviewDetails
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get returns a single post by id
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Feed returns posts newest first with skip/limit pagination
func (s *PostService) Feed(ctx context.Context, skip, limit int64) ([]models.Post, error) {
	return s.posts.List(ctx, skip, limit)
}

// ByAuthor returns a user's posts, newest first
func (s *PostService) ByAuthor(ctx context.Context, authorID string, skip, limit int64) ([]models.Post, error) {
	return s.posts.ListByAuthor(ctx, authorID, skip, limit)
}

// ByCategory returns the posts tagged with a category, newest first
func (s *PostService) ByCategory(ctx context.Context, categoryID string, skip, limit int64) ([]models.Post, error) {
	return s.posts.ListByCategory(ctx, categoryID, skip, limit)
}

// ByHashtag returns the posts carrying a hashtag, newest first
func (s *PostService) ByHashtag(ctx context.Context, hashtag string, skip, limit int64) ([]models.Post, error) {
	return s.posts.ListByHashtag(ctx, hashtag, skip, limit)
}

// Delete removes a post. Only the author may delete; the post's comments
// are cleaned up best effort afterwards.
func (s *PostService) Delete(ctx context.Context, postID, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return ErrForbidden
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	comments, err := s.comments.ListByPost(ctx, postID, 0)
	if err != nil {
		log.Printf("post %s deleted, comment cleanup listing failed: %v", postID, err)
		return nil
	}
	for _, c := range comments {
		if err := s.comments.Delete(ctx, c.ID); err != nil {
			log.Printf("post %s deleted, orphan comment %s not removed: %v", postID, c.ID, err)
		}
	}
	return nil
}
