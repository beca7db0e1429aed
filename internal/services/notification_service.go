package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Cuogma12/instaFood-sub000/internal/models"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
)

// NotificationSink receives interaction events destined for a content owner.
// The interaction services depend on this interface rather than on the
// notification service directly; emission is always best-effort and callers
// log failures instead of propagating them.
type NotificationSink interface {
	Emit(ctx context.Context, typ, senderID, receiverID, postID string) (string, error)
}

// dedupWindow is the age under which a repeat event refreshes the existing
// notification instead of inserting a new one.
const dedupWindow = time.Hour

// NotificationService implements the best-effort, deduplicated notification
// fan-out plus the read-state operations behind the notification screen.
type NotificationService struct {
	notifications repositories.NotificationRepository
	users         repositories.UserRepository
	posts         repositories.PostRepository
	now           func() time.Time
}

var _ NotificationSink = (*NotificationService)(nil)

// NewNotificationService creates a NotificationService
func NewNotificationService(notifications repositories.NotificationRepository, users repositories.UserRepository, posts repositories.PostRepository) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		users:         users,
		posts:         posts,
		now:           time.Now,
	}
}

// Emit records an interaction notification for receiverID. Self-directed
// events are suppressed and return an empty id. A repeat event for the same
// (sender, receiver, type, post) tuple within the dedup window re-dates the
// existing document and marks it unread rather than inserting a new one.
func (s *NotificationService) Emit(ctx context.Context, typ, senderID, receiverID, postID string) (string, error) {
	if senderID == receiverID || receiverID == "" {
		return "", nil
	}

	now := s.now()
	existing, err := s.notifications.FindNewest(ctx, senderID, receiverID, typ, postID)
	if err == nil && now.Sub(existing.CreatedAt) < dedupWindow {
		if err := s.notifications.Refresh(ctx, existing.ID, now); err != nil {
			return "", err
		}
		return existing.ID, nil
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	notification := &models.Notification{
		Type:       typ,
		SenderID:   senderID,
		ReceiverID: receiverID,
		PostID:     postID,
		CreatedAt:  now,
	}
	if sender, err := s.users.GetByID(ctx, senderID); err == nil {
		notification.SenderUsername = sender.Username
		notification.SenderAvatarURL = sender.AvatarURL
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}
	if postID != "" {
		if post, err := s.posts.GetByID(ctx, postID); err == nil {
			notification.PostImageURL = post.FirstMediaURL()
		} else if !errors.Is(err, store.ErrNotFound) {
			return "", err
		}
	}
	notification.Message = defaultMessage(typ, notification.SenderUsername)

	if err := s.notifications.Create(ctx, notification); err != nil {
		return "", err
	}
	return notification.ID, nil
}

// List returns the receiver's notifications, newest first
func (s *NotificationService) List(ctx context.Context, userID string, skip, limit int64) ([]models.Notification, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	return s.notifications.ListByReceiver(ctx, userID, skip, limit)
}

// CountUnread returns the number of unread notifications for userID
func (s *NotificationService) CountUnread(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, ErrUnauthenticated
	}
	unread, err := s.notifications.ListUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(unread)), nil
}

// MarkRead marks a single notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	return s.notifications.MarkRead(ctx, id)
}

// MarkAllRead marks every unread notification of userID as read
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return s.notifications.MarkAllRead(ctx, userID)
}

// Remove deletes a notification
func (s *NotificationService) Remove(ctx context.Context, id string) error {
	return s.notifications.Delete(ctx, id)
}

func defaultMessage(typ, senderUsername string) string {
	name := senderUsername
	if name == "" {
		name = "Someone"
	}
	switch typ {
	case models.NotificationTypeLike:
		return fmt.Sprintf("%s liked your post", name)
	case models.NotificationTypeFavorite:
		return fmt.Sprintf("%s added your post to favorites", name)
	case models.NotificationTypeComment:
		return fmt.Sprintf("%s commented on your post", name)
	case models.NotificationTypeFollow:
		return fmt.Sprintf("%s started following you", name)
	case models.NotificationTypeMention:
		return fmt.Sprintf("%s mentioned you in a post", name)
	}
	return fmt.Sprintf("%s interacted with your post", name)
}
