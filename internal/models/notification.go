package models

import "time"

// Notification types
const (
	NotificationTypeLike     = "like"
	NotificationTypeFavorite = "favorite"
	NotificationTypeComment  = "comment"
	NotificationTypeFollow   = "follow"
	NotificationTypeMention  = "mention"
)

// Notification represents a best-effort fan-out event delivered to a content
// owner. At most one fresh (< 1 hour old) notification exists per
// (sender, receiver, type, post) tuple; a repeat event within the window
// refreshes created_at and resets read instead of inserting a new document.
type Notification struct {
	ID              string    `json:"id,omitempty" bson:"_id,omitempty"`
	Type            string    `json:"type" bson:"type"`
	SenderID        string    `json:"sender_id" bson:"sender_id"`
	SenderUsername  string    `json:"sender_username" bson:"sender_username"`
	SenderAvatarURL string    `json:"sender_avatar_url,omitempty" bson:"sender_avatar_url,omitempty"`
	ReceiverID      string    `json:"receiver_id" bson:"receiver_id"`
	PostID          string    `json:"post_id,omitempty" bson:"post_id,omitempty"`
	PostImageURL    string    `json:"post_image_url,omitempty" bson:"post_image_url,omitempty"`
	Read            bool      `json:"read" bson:"read"`
	Message         string    `json:"message" bson:"message"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}
