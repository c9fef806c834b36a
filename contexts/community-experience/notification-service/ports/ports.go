package ports

import (
	"context"

	"newsdesk/contexts/community-experience/notification-service/domain/entities"
)

// Repository is the persistence boundary of the notification service.
type Repository interface {
	// ListNotifications returns a user's inbox newest first.
	ListNotifications(ctx context.Context, userID string) ([]entities.Notification, error)
	GetNotification(ctx context.Context, notificationID string) (entities.Notification, bool, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
}
