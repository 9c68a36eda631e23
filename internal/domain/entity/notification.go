package entity

import "time"

type NotificationType string

const (
	NotificationFollow  NotificationType = "follow"
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationMessage NotificationType = "message"
)

// Notification is addressed to RecipientID. An empty recipient is shown to
// every user, which is how the seed notifications behave.
type Notification struct {
	ID            string           `json:"id" firestore:"id"`
	RecipientID   string           `json:"recipient_id,omitempty" firestore:"recipientId,omitempty"`
	Type          NotificationType `json:"type" firestore:"type"`
	FromUserID    string           `json:"from_user_id" firestore:"fromUserId"`
	FromUserName  string           `json:"from_user_name" firestore:"fromUserName"`
	Read          bool             `json:"read" firestore:"read"`
	Timestamp     time.Time        `json:"timestamp" firestore:"timestamp"`
	TargetSummary string           `json:"target_summary,omitempty" firestore:"targetSummary,omitempty"`
}

func (n Notification) VisibleTo(userID string) bool {
	return n.RecipientID == "" || n.RecipientID == userID
}
