package models

import "time"

// UserActivity is the per-user activity mirror, one document per user with
// the user's Firebase UID as the document id. liked_posts mirrors the subset
// of post likes attributable to this user; it is maintained by explicit
// union/remove calls parallel to (not atomic with) the like ledger update,
// so it can drift after a partial failure.
type UserActivity struct {
	ID            string    `json:"user_id,omitempty" bson:"_id,omitempty"`
	LikedPosts    []string  `json:"liked_posts" bson:"liked_posts"`
	FavoritePosts []string  `json:"favorite_posts" bson:"favorite_posts"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
