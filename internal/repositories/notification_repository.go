package repositories

import (
	"context"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	// FindNewest returns the most recent notification for the given
	// (sender, receiver, type, post) tuple, or store.ErrNotFound.
	FindNewest(ctx context.Context, senderID, receiverID, typ, postID string) (*models.Notification, error)
	// Refresh re-dates an existing notification and marks it unread.
	Refresh(ctx context.Context, id string, at time.Time) error
	ListByReceiver(ctx context.Context, receiverID string, skip, limit int64) ([]models.Notification, error)
	ListUnread(ctx context.Context, receiverID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, receiverID string) error
	Delete(ctx context.Context, id string) error
}

type notificationRepository struct {
	store store.Store
}

// NewNotificationRepository creates a store-backed NotificationRepository
func NewNotificationRepository(s store.Store) NotificationRepository {
	return &notificationRepository{store: s}
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	id, err := r.store.Insert(ctx, store.CollectionNotifications, notification)
	if err != nil {
		return err
	}
	notification.ID = id
	return nil
}

func (r *notificationRepository) FindNewest(ctx context.Context, senderID, receiverID, typ, postID string) (*models.Notification, error) {
	filter := bson.M{
		"sender_id":   senderID,
		"receiver_id": receiverID,
		"type":        typ,
	}
	if postID != "" {
		filter["post_id"] = postID
	}
	var matches []models.Notification
	opts := &store.QueryOptions{OrderBy: "created_at", Descending: true, Limit: 1}
	if err := r.store.Query(ctx, store.CollectionNotifications, filter, opts, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, store.ErrNotFound
	}
	return &matches[0], nil
}

func (r *notificationRepository) Refresh(ctx context.Context, id string, at time.Time) error {
	return r.store.Update(ctx, store.CollectionNotifications, id, bson.M{
		"created_at": at,
		"read":       false,
	})
}

func (r *notificationRepository) ListByReceiver(ctx context.Context, receiverID string, skip, limit int64) ([]models.Notification, error) {
	var notifications []models.Notification
	opts := &store.QueryOptions{OrderBy: "created_at", Descending: true, Skip: skip, Limit: limit}
	err := r.store.Query(ctx, store.CollectionNotifications, bson.M{"receiver_id": receiverID}, opts, &notifications)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) ListUnread(ctx context.Context, receiverID string) ([]models.Notification, error) {
	var notifications []models.Notification
	filter := bson.M{"receiver_id": receiverID, "read": false}
	err := r.store.Query(ctx, store.CollectionNotifications, filter, nil, &notifications)
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) error {
	return r.store.Update(ctx, store.CollectionNotifications, id, bson.M{"read": true})
}

// MarkAllRead batches one update per document in the unread query result.
func (r *notificationRepository) MarkAllRead(ctx context.Context, receiverID string) error {
	unread, err := r.ListUnread(ctx, receiverID)
	if err != nil {
		return err
	}
	if len(unread) == 0 {
		return nil
	}
	updates := make([]store.FieldUpdate, 0, len(unread))
	for _, n := range unread {
		updates = append(updates, store.FieldUpdate{
			Collection: store.CollectionNotifications,
			ID:         n.ID,
			Fields:     bson.M{"read": true},
		})
	}
	return r.store.BatchUpdate(ctx, updates)
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollectionNotifications, id)
}
