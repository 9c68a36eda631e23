package service

// Notifier pushes live events to a user's open connections. Delivery is best
// effort.
type Notifier interface {
	Notify(userID, eventType string, payload interface{})
}

// Event types a Notifier delivers.
const (
	EventMessage      = "message"
	EventNotification = "notification"
)
