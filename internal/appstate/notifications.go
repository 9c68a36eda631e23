package appstate

import (
	"mados/internal/domain/entity"
)

// AddNotification prepends n. Empty id and timestamp are filled in.
func (s *State) AddNotification(n entity.Notification) entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == "" {
		n.ID = s.newID("notif")
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = s.now()
	}
	s.notifications = prependTo(s.notifications, n)
	return n
}

// MarkNotificationsAsRead marks every notification read, whoever it is
// addressed to.
func (s *State) MarkNotificationsAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Notification, len(s.notifications))
	for i, n := range s.notifications {
		n.Read = true
		out[i] = n
	}
	s.notifications = out
}

// Notifications lists what the current user may see, newest first.
func (ss *Session) Notifications() []entity.Notification {
	s := ss.state
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entity.Notification
	for _, n := range s.notifications {
		if n.VisibleTo(ss.userID) {
			out = append(out, n)
		}
	}
	return out
}
