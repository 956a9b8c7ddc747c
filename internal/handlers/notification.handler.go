package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/oscahub/benefits-gateway/internal/model"
	xhttp "github.com/oscahub/benefits-gateway/pkg/http"
)

type NotificationService interface {
	List(ctx context.Context, userID int64) ([]*model.Notification, error)
	MarkAsRead(ctx context.Context, userID int64, notificationID string) error
	MarkAllAsRead(ctx context.Context, userID int64) error
}

type NotificationHandler struct {
	svc NotificationService
}

func NewNotificationHandler(notificationService NotificationService) *NotificationHandler {
	return &NotificationHandler{
		svc: notificationService,
	}
}

func RegisterNotificationRoutes(e *router.Group, h *NotificationHandler) {
	e.GET("/notifications/status", h.ListNotifications)
	e.POST("/notifications/status", h.MarkNotificationRead)
	e.PUT("/notifications/status", h.MarkAllNotificationsRead)
}

func (h *NotificationHandler) ListNotifications(ctx *xhttp.RequestCtx) {
	userID, err := queryInt64(ctx, "user_id")
	if err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid user_id")
		return
	}
	items, err := h.svc.List(ctx, userID)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, items)
}

func (h *NotificationHandler) MarkNotificationRead(ctx *xhttp.RequestCtx) {
	var req struct {
		UserID         int64  `json:"user_id"`
		NotificationID string `json:"notification_id"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := h.svc.MarkAsRead(ctx, req.UserID, req.NotificationID); err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, map[string]string{"notification_id": req.NotificationID})
}

func (h *NotificationHandler) MarkAllNotificationsRead(ctx *xhttp.RequestCtx) {
	var req struct {
		UserID int64 `json:"user_id"`
	}
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := h.svc.MarkAllAsRead(ctx, req.UserID); err != nil {
		writeServiceError(ctx, err)
		return
	}
	xhttp.WriteData(ctx, xhttp.StatusOK, map[string]int64{"user_id": req.UserID})
}
