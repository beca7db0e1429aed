package models

import "time"

// Post media types
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Post variants
const (
	PostTypeRecipe  = "recipe"
	PostTypeReview  = "review"
	PostTypeGeneral = "general"
)

// Post represents a feed post. The likes array is the source of truth for
// "who liked"; comment_count is a denormalized cache maintained by atomic
// increments on comment create/delete, never by recount.
type Post struct {
	ID              string         `json:"id,omitempty" bson:"_id,omitempty"`
	AuthorID        string         `json:"author_id" bson:"author_id"`
	AuthorUsername  string         `json:"author_username" bson:"author_username"`
	AuthorAvatarURL string         `json:"author_avatar_url,omitempty" bson:"author_avatar_url,omitempty"`
	Caption         string         `json:"caption" bson:"caption"`
	MediaURLs       []string       `json:"media_urls" bson:"media_urls"`
	MediaType       string         `json:"media_type" bson:"media_type"`
	Likes           []string       `json:"likes" bson:"likes"`
	CommentCount    int64          `json:"comment_count" bson:"comment_count"`
	Hashtags        []string       `json:"hashtags,omitempty" bson:"hashtags,omitempty"`
	CategoryIDs     []string       `json:"category_ids,omitempty" bson:"category_ids,omitempty"`
	PostType        string         `json:"post_type" bson:"post_type"`
	RecipeDetails   *RecipeDetails `json:"recipe_details,omitempty" bson:"recipe_details,omitempty"`
	ReviewDetails   *ReviewDetails `json:"review_details,omitempty" bson:"review_details,omitempty"`
	Location        string         `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
}

// RecipeDetails carries the recipe-specific payload of a recipe post
type RecipeDetails struct {
	Ingredients  []string `json:"ingredients" bson:"ingredients"`
	Instructions []string `json:"instructions" bson:"instructions"`
	CookTime     string   `json:"cook_time,omitempty" bson:"cook_time,omitempty"`
	Servings     int      `json:"servings,omitempty" bson:"servings,omitempty"`
}

// ReviewDetails carries the review-specific payload of a review post
type ReviewDetails struct {
	Rating            float64  `json:"rating" bson:"rating"`
	Pros              []string `json:"pros,omitempty" bson:"pros,omitempty"`
	Cons              []string `json:"cons,omitempty" bson:"cons,omitempty"`
	RestaurantName    string   `json:"restaurant_name,omitempty" bson:"restaurant_name,omitempty"`
	RestaurantAddress string   `json:"restaurant_address,omitempty" bson:"restaurant_address,omitempty"`
}

// LikedByUser reports whether userID appears in the post's likes array
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// FirstMediaURL returns the post's first media URL, or "" when it has none
func (p *Post) FirstMediaURL() string {
	if len(p.MediaURLs) == 0 {
		return ""
	}
	return p.MediaURLs[0]
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Caption       string         `json:"caption" validate:"required,min=1,max=2200"`
	MediaURLs     []string       `json:"media_urls" validate:"required,min=1,dive,url"`
	MediaType     string         `json:"media_type" validate:"required,oneof=image video"`
	Hashtags      []string       `json:"hashtags,omitempty" validate:"omitempty,dive,min=1,max=50"`
	CategoryIDs   []string       `json:"category_ids,omitempty"`
	PostType      string         `json:"post_type" validate:"required,oneof=recipe review general"`
	RecipeDetails *RecipeDetails `json:"recipe_details,omitempty"`
	ReviewDetails *ReviewDetails `json:"review_details,omitempty"`
	Location      string         `json:"location,omitempty" validate:"omitempty,max=200"`
}

// LikeState is the optimistic projection returned by a like toggle: the
// flipped membership plus a count derived from the previously read likes
// array, not from a fresh read.
type LikeState struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}
