package entity

import (
	"time"
)

// Review is immutable once created. UserName is the author's display name at
// submission time.
type Review struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	UserName  string    `json:"user_name" firestore:"userName"`
	Rating    int       `json:"rating" firestore:"rating"` // 1-5
	Comment   string    `json:"comment" firestore:"comment"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// HasReviewFrom reports whether userID already reviewed the target owning reviews.
func HasReviewFrom(reviews []Review, userID string) bool {
	for _, r := range reviews {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

func cloneReviews(reviews []Review) []Review {
	if reviews == nil {
		return nil
	}
	out := make([]Review, len(reviews))
	copy(out, reviews)
	return out
}
