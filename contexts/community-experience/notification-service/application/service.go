package application

import (
	"context"
	"log/slog"
	"strings"

	"newsdesk/contexts/community-experience/notification-service/domain/entities"
	domainerrors "newsdesk/contexts/community-experience/notification-service/domain/errors"
	"newsdesk/contexts/community-experience/notification-service/ports"
)

// Service exposes the per-user inbox. Every operation is scoped to the
// caller's own rows; there is no cross-user access, not even for admins.
type Service struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

func (s Service) List(ctx context.Context, actorID string) ([]entities.Notification, error) {
	if strings.TrimSpace(actorID) == "" {
		return nil, domainerrors.ErrForbidden
	}
	return s.Repo.ListNotifications(ctx, actorID)
}

// MarkRead flips one notification to read. Marking an already-read row is
// a no-op, not an error.
func (s Service) MarkRead(ctx context.Context, actorID string, notificationID string) error {
	if strings.TrimSpace(actorID) == "" {
		return domainerrors.ErrForbidden
	}
	notification, found, err := s.Repo.GetNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if !found {
		return domainerrors.ErrNotificationNotFound
	}
	if notification.UserID != actorID {
		return domainerrors.ErrForbidden
	}
	if notification.Read {
		return nil
	}
	return s.Repo.MarkNotificationRead(ctx, notificationID)
}

func (s Service) MarkAllRead(ctx context.Context, actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return domainerrors.ErrForbidden
	}
	if err := s.Repo.MarkAllNotificationsRead(ctx, actorID); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("inbox cleared",
		"event", "notifications_marked_all_read",
		"module", "community-experience/notification-service",
		"layer", "application",
		"user_id", actorID,
	)
	return nil
}
