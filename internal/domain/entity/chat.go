package entity

import "time"

type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

type ProductContextKind string

const (
	ContextItem          ProductContextKind = "item"
	ContextCommunityPost ProductContextKind = "community_post"
)

// ProductContext is the snapshot of an Item or CommunityPost a message was
// sent about. Exactly one of Item and Post is set, matching Kind.
type ProductContext struct {
	Kind ProductContextKind `json:"kind" firestore:"kind"`
	Item *Item              `json:"item,omitempty" firestore:"item,omitempty"`
	Post *CommunityPost     `json:"post,omitempty" firestore:"post,omitempty"`
}

func ItemContext(item Item) *ProductContext {
	snapshot := item.Clone()
	return &ProductContext{Kind: ContextItem, Item: &snapshot}
}

func PostContext(post CommunityPost) *ProductContext {
	snapshot := post.Clone()
	return &ProductContext{Kind: ContextCommunityPost, Post: &snapshot}
}

func (p *ProductContext) Clone() *ProductContext {
	if p == nil {
		return nil
	}
	out := &ProductContext{Kind: p.Kind}
	if p.Item != nil {
		item := p.Item.Clone()
		out.Item = &item
	}
	if p.Post != nil {
		post := p.Post.Clone()
		out.Post = &post
	}
	return out
}

type ChatMessage struct {
	ID             string          `json:"id" firestore:"id"`
	SenderID       string          `json:"sender_id" firestore:"senderId"`
	Text           string          `json:"text" firestore:"text"`
	Timestamp      time.Time       `json:"timestamp" firestore:"timestamp"`
	Status         MessageStatus   `json:"status" firestore:"status"`
	ProductContext *ProductContext `json:"product_context,omitempty" firestore:"productContext,omitempty"`
}

// ChatSession is a direct conversation between exactly two users.
type ChatSession struct {
	ID             string        `json:"id" firestore:"id"`
	ParticipantIDs []string      `json:"participant_ids" firestore:"participantIds"`
	Messages       []ChatMessage `json:"messages" firestore:"messages"`
}

// Between reports whether the session belongs to the unordered pair (a, b).
func (c ChatSession) Between(a, b string) bool {
	return containsID(c.ParticipantIDs, a) && containsID(c.ParticipantIDs, b)
}

func (c ChatSession) Partner(userID string) string {
	for _, id := range c.ParticipantIDs {
		if id != userID {
			return id
		}
	}
	return ""
}

func (c ChatSession) LastMessage() (ChatMessage, bool) {
	if len(c.Messages) == 0 {
		return ChatMessage{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

func (c ChatSession) Clone() ChatSession {
	c.ParticipantIDs = cloneStrings(c.ParticipantIDs)
	if c.Messages != nil {
		msgs := make([]ChatMessage, len(c.Messages))
		for i, m := range c.Messages {
			m.ProductContext = m.ProductContext.Clone()
			msgs[i] = m
		}
		c.Messages = msgs
	}
	return c
}
