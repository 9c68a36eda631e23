package usecase

import (
	"context"
	"sort"
	"strings"

	"mados/internal/appstate"
	"mados/internal/domain/entity"
	"mados/internal/domain/service"
	"mados/internal/infrastructure/ratelimit"
	"mados/pkg/errors"
	"mados/pkg/logger"
)

type ChatUseCase struct {
	state    *appstate.State
	limiter  RateLimiter
	notifier service.Notifier
	notify   notificationEmitter
}

func NewChatUseCase(state *appstate.State, limiter RateLimiter, notifier service.Notifier) *ChatUseCase {
	return &ChatUseCase{
		state:    state,
		limiter:  limiter,
		notifier: notifier,
		notify:   notificationEmitter{state: state, notifier: notifier},
	}
}

// ProductRef points at the item or community post a message is about.
type ProductRef struct {
	Kind    entity.ProductContextKind
	StoreID string
	ItemID  string
	PostID  string
}

type SendMessageInput struct {
	Text    string
	Product *ProductRef
}

type ChatThread struct {
	Chat            entity.ChatSession `json:"chat"`
	Partner         entity.User        `json:"partner"`
	PartnerActivity string             `json:"partner_activity"`
}

type ChatSummary struct {
	ChatID      string              `json:"chat_id"`
	Partner     entity.User         `json:"partner"`
	LastMessage *entity.ChatMessage `json:"last_message,omitempty"`
	Unread      int                 `json:"unread"`
}

// MessageEvent is pushed to both participants when a message is sent.
type MessageEvent struct {
	ChatID  string             `json:"chat_id"`
	Message entity.ChatMessage `json:"message"`
}

func (uc *ChatUseCase) Send(ctx context.Context, userID, partnerID string, input SendMessageInput) (*entity.ChatMessage, error) {
	ss, me, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, errors.Validation("Pesan tidak boleh kosong.")
	}
	if partnerID == me.ID {
		return nil, errors.BadRequest("Anda tidak bisa mengirim pesan ke diri sendiri.", nil)
	}
	if _, ok := uc.state.User(partnerID); !ok {
		return nil, errors.NotFound("User", nil)
	}

	var productContext *entity.ProductContext
	if input.Product != nil {
		productContext, err = uc.resolveProduct(*input.Product)
		if err != nil {
			return nil, err
		}
	}

	if err := allow(uc.limiter, me.ID, ratelimit.ActionSendMessage); err != nil {
		return nil, err
	}

	msg, ok := ss.SendMessage(partnerID, text, productContext)
	if !ok {
		return nil, errors.Internal("Failed to send message", nil)
	}
	ss.Touch()

	if chat, ok := ss.ChatWith(partnerID); ok && uc.notifier != nil {
		event := MessageEvent{ChatID: chat.ID, Message: msg}
		uc.notifier.Notify(partnerID, service.EventMessage, event)
		uc.notifier.Notify(me.ID, service.EventMessage, event)
	}
	uc.notify.emit(entity.Notification{
		Type:          entity.NotificationMessage,
		RecipientID:   partnerID,
		FromUserID:    me.ID,
		FromUserName:  me.Name,
		TargetSummary: summarize(text, 60),
	})

	return &msg, nil
}

// Open returns the conversation with partnerID and marks what the partner
// sent as read. The chat is empty when the two never talked.
func (uc *ChatUseCase) Open(ctx context.Context, userID, partnerID string) (*ChatThread, error) {
	ss, _, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}
	partner, ok := uc.state.User(partnerID)
	if !ok {
		return nil, errors.NotFound("User", nil)
	}

	ss.MarkMessagesAsRead(partnerID)

	chat, ok := ss.ChatWith(partnerID)
	if !ok {
		chat = entity.ChatSession{
			ParticipantIDs: []string{userID, partnerID},
			Messages:       []entity.ChatMessage{},
		}
	}
	return &ChatThread{
		Chat:            chat,
		Partner:         partner,
		PartnerActivity: LastActiveLabel(partner.LastActive, uc.state.Now()),
	}, nil
}

// MarkRead marks the partner's messages read.
func (uc *ChatUseCase) MarkRead(userID, partnerID string) error {
	ss, _, err := currentSession(uc.state, userID)
	if err != nil {
		return err
	}
	if _, ok := ss.ChatWith(partnerID); !ok {
		return errors.NotFound("Chat", nil)
	}
	ss.MarkMessagesAsRead(partnerID)
	logger.Debug("messages from %s marked read by %s", partnerID, userID)
	return nil
}

// ListChats orders the user's chats by their last message, newest first.
func (uc *ChatUseCase) ListChats(ctx context.Context, userID string) ([]ChatSummary, error) {
	ss, _, err := currentSession(uc.state, userID)
	if err != nil {
		return nil, err
	}

	chats := ss.Chats()
	summaries := make([]ChatSummary, 0, len(chats))
	for _, chat := range chats {
		partner, _ := uc.state.User(chat.Partner(userID))
		summary := ChatSummary{ChatID: chat.ID, Partner: partner}
		if last, ok := chat.LastMessage(); ok {
			summary.LastMessage = &last
		}
		for _, m := range chat.Messages {
			if m.SenderID != userID && m.Status != entity.MessageRead {
				summary.Unread++
			}
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.Timestamp.After(b.Timestamp)
	})
	return summaries, nil
}

func (uc *ChatUseCase) resolveProduct(ref ProductRef) (*entity.ProductContext, error) {
	switch ref.Kind {
	case entity.ContextItem:
		item, ok := uc.state.Item(ref.StoreID, ref.ItemID)
		if !ok {
			return nil, errors.NotFound("Item", nil)
		}
		return entity.ItemContext(item), nil
	case entity.ContextCommunityPost:
		post, ok := uc.state.CommunityPost(ref.PostID)
		if !ok {
			return nil, errors.NotFound("Post", nil)
		}
		return entity.PostContext(post), nil
	default:
		return nil, errors.Validation("Jenis konteks produk tidak dikenal.")
	}
}
