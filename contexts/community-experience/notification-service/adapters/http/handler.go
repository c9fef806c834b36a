package httpadapter

import (
	"context"
	"log/slog"

	"newsdesk/contexts/community-experience/notification-service/application"
	"newsdesk/contexts/community-experience/notification-service/domain/entities"
	domainerrors "newsdesk/contexts/community-experience/notification-service/domain/errors"
	httptransport "newsdesk/contexts/community-experience/notification-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListNotificationsHandler godoc
// @Summary List a user's notifications
// @Description Newest first. The path user must match the caller; there is no cross-user access.
// @Tags notifications
// @Produce json
// @Param X-User-Id header string true "Caller"
// @Param userID path string true "User id"
// @Success 200 {object} httptransport.ListNotificationsResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /notifications/{userID} [get]
func (h Handler) ListNotificationsHandler(ctx context.Context, actorID string, userID string) (httptransport.ListNotificationsResponse, error) {
	if actorID == "" || actorID != userID {
		return httptransport.ListNotificationsResponse{}, domainerrors.ErrForbidden
	}
	notifications, err := h.Service.List(ctx, actorID)
	if err != nil {
		return httptransport.ListNotificationsResponse{}, err
	}
	items := make([]httptransport.NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, mapNotification(n))
	}
	return httptransport.ListNotificationsResponse{Items: items}, nil
}

// MarkReadHandler godoc
// @Summary Mark one notification read
// @Tags notifications
// @Param X-User-Id header string true "Caller"
// @Param id path string true "Notification id"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /notifications/{id}/read [put]
func (h Handler) MarkReadHandler(ctx context.Context, actorID string, notificationID string) error {
	return h.Service.MarkRead(ctx, actorID, notificationID)
}

// MarkAllReadHandler godoc
// @Summary Mark every notification read
// @Tags notifications
// @Param X-User-Id header string true "Caller"
// @Success 204
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /notifications/read-all [put]
func (h Handler) MarkAllReadHandler(ctx context.Context, actorID string) error {
	return h.Service.MarkAllRead(ctx, actorID)
}

func mapNotification(n entities.Notification) httptransport.NotificationDTO {
	return httptransport.NotificationDTO{
		ID:        n.ID,
		Type:      n.Type,
		Message:   n.Message,
		ArticleID: n.ArticleID,
		Read:      n.Read,
		Timestamp: n.Timestamp,
	}
}
