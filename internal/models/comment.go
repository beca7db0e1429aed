package models

import "time"

// Comment represents a comment on a post. Username and avatar are a snapshot
// of the author's profile at write time.
type Comment struct {
	ID            string     `json:"id,omitempty" bson:"_id,omitempty"`
	PostID        string     `json:"post_id" bson:"post_id"`
	UserID        string     `json:"user_id" bson:"user_id"`
	Username      string     `json:"username" bson:"username"`
	UserAvatarURL string     `json:"user_avatar_url,omitempty" bson:"user_avatar_url,omitempty"`
	Content       string     `json:"content" bson:"content"`
	CreatedAt     time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
