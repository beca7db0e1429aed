package models

import "time"

// User represents a user profile document. The document id is the Firebase
// UID of the account.
type User struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	Username    string    `json:"username" bson:"username"`
	Email       string    `json:"email" bson:"email"`
	DisplayName string    `json:"display_name,omitempty" bson:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Bio         string    `json:"bio,omitempty" bson:"bio,omitempty"`
	IsAdmin     bool      `json:"is_admin" bson:"is_admin"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// UserCompact is the reduced user shape embedded in enriched responses
type UserCompact struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ToCompact converts a User to its compact representation
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Username: u.Username, AvatarURL: u.AvatarURL}
}

// SyncProfileRequest defines the request body for the post-sign-in profile sync
type SyncProfileRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=30"`
	Email     string `json:"email" validate:"required,email"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// UpdateProfileRequest defines the request body for updating the caller's profile
type UpdateProfileRequest struct {
	Username  string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=300"`
}
