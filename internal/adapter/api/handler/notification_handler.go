package handler

import (
	"github.com/labstack/echo/v4"

	"mados/internal/usecase"
	"mados/pkg/response"
	"mados/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	notifications, total, err := h.notificationUseCase.List(c.Request().Context(), currentUserID(c), params)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, notifications, total, params.Page, params.PageSize)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.notificationUseCase.UnreadCount(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{"unread": count})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkAllRead(c.Request().Context(), currentUserID(c)); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"read": true})
}
