package entity

import (
	"time"
)

type CommunityPostComment struct {
	ID         string                 `json:"id" firestore:"id"`
	UserID     string                 `json:"user_id" firestore:"userId"`
	UserName   string                 `json:"user_name" firestore:"userName"`
	Text       string                 `json:"text" firestore:"text"`
	ImageURL   string                 `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	Timestamp  time.Time              `json:"timestamp" firestore:"timestamp"`
	ReplyingTo string                 `json:"replying_to,omitempty" firestore:"replyingTo,omitempty"`
	Replies    []CommunityPostComment `json:"replies,omitempty" firestore:"replies,omitempty"`
}

func (c CommunityPostComment) Clone() CommunityPostComment {
	c.Replies = cloneComments(c.Replies)
	return c
}

type CommunityPost struct {
	ID          string                 `json:"id" firestore:"id"`
	UserID      string                 `json:"user_id" firestore:"userId"`
	UserName    string                 `json:"user_name" firestore:"userName"`
	Title       string                 `json:"title" firestore:"title"`
	Description string                 `json:"description" firestore:"description"`
	Price       int64                  `json:"price" firestore:"price"`
	ImageURL    string                 `json:"image_url" firestore:"imageUrl"`
	Timestamp   time.Time              `json:"timestamp" firestore:"timestamp"`
	Likes       []string               `json:"likes" firestore:"likes"`
	Comments    []CommunityPostComment `json:"comments" firestore:"comments"`
}

func (p CommunityPost) LikedBy(userID string) bool {
	return containsID(p.Likes, userID)
}

func (p CommunityPost) Clone() CommunityPost {
	p.Likes = cloneStrings(p.Likes)
	p.Comments = cloneComments(p.Comments)
	return p
}

// FindComment searches the comment tree depth first.
func FindComment(comments []CommunityPostComment, id string) (CommunityPostComment, bool) {
	for _, c := range comments {
		if c.ID == id {
			return c.Clone(), true
		}
		if found, ok := FindComment(c.Replies, id); ok {
			return found, true
		}
	}
	return CommunityPostComment{}, false
}

func cloneComments(comments []CommunityPostComment) []CommunityPostComment {
	if comments == nil {
		return nil
	}
	out := make([]CommunityPostComment, len(comments))
	for i, c := range comments {
		out[i] = c.Clone()
	}
	return out
}
