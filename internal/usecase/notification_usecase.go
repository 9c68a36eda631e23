package usecase

import (
	"context"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/pkg/utils"
)

type NotificationUseCase struct {
	state *appstate.State
}

func NewNotificationUseCase(state *appstate.State) *NotificationUseCase {
	return &NotificationUseCase{state: state}
}

// List pages through the notifications visible to the user, newest first.
func (uc *NotificationUseCase) List(ctx context.Context, userID string, params utils.PaginationParams) ([]entity.Notification, int64, error) {
	ss, _, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, 0, err
	}

	all := ss.Notifications()
	start, end := params.Window(len(all))
	page := make([]entity.Notification, end-start)
	copy(page, all[start:end])
	return page, int64(len(all)), nil
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	ss, _, err := currentSession(uc.state, userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range ss.Notifications() {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkAllRead marks every notification in the state read, as opening the
// notifications page always did.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	if _, _, err := currentSession(uc.state, userID); err != nil {
		return err
	}
	uc.state.MarkNotificationsAsRead()
	return nil
}
