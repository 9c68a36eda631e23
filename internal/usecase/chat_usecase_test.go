package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mados/internal/domain/entity"
	"mados/pkg/errors"
)

func TestSendCreatesOneChatPerPair(t *testing.T) {
	state := newState(t)
	notifier := &fakeNotifier{}
	uc := NewChatUseCase(state, nil, notifier)
	ctx := context.Background()

	_, err := uc.Send(ctx, "user-3", "user-1", SendMessageInput{Text: "Halo kak"})
	require.NoError(t, err)
	_, err = uc.Send(ctx, "user-1", "user-3", SendMessageInput{Text: "Halo juga"})
	require.NoError(t, err)

	assert.Len(t, state.Chats(), 2)
	thread, err := uc.Open(ctx, "user-3", "user-1")
	require.NoError(t, err)
	require.Len(t, thread.Chat.Messages, 2)
	assert.Equal(t, "Halo kak", thread.Chat.Messages[0].Text)
	assert.Equal(t, entity.MessageRead, thread.Chat.Messages[1].Status)
	assert.Equal(t, entity.MessageSent, thread.Chat.Messages[0].Status)

	assert.Equal(t, 2, notifier.count("user-1", "message"))
	assert.Equal(t, 1, notifier.count("user-1", "notification"))
}

func TestSendWithProductContext(t *testing.T) {
	state := newState(t)
	uc := NewChatUseCase(state, nil, nil)

	msg, err := uc.Send(context.Background(), "user-2", "user-1", SendMessageInput{
		Text:    "Masih ada?",
		Product: &ProductRef{Kind: entity.ContextItem, StoreID: "store-1", ItemID: "item-1"},
	})
	require.NoError(t, err)
	require.NotNil(t, msg.ProductContext)
	assert.Equal(t, "Kopi Susu Gula Aren", msg.ProductContext.Item.Name)

	_, err = uc.Send(context.Background(), "user-2", "user-1", SendMessageInput{
		Text:    "Ini?",
		Product: &ProductRef{Kind: entity.ContextCommunityPost, PostID: "cp-404"},
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSendValidation(t *testing.T) {
	uc := NewChatUseCase(newState(t), nil, nil)
	ctx := context.Background()

	_, err := uc.Send(ctx, "user-1", "user-2", SendMessageInput{Text: "   "})
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	_, err = uc.Send(ctx, "user-1", "user-1", SendMessageInput{Text: "hi"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	_, err = uc.Send(ctx, "user-1", "user-404", SendMessageInput{Text: "hi"})
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	limited := NewChatUseCase(newState(t), denyLimiter{}, nil)
	_, err = limited.Send(ctx, "user-1", "user-2", SendMessageInput{Text: "hi"})
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))
}

func TestOpenMarksPartnerMessagesRead(t *testing.T) {
	state := newState(t)
	uc := NewChatUseCase(state, nil, nil)

	thread, err := uc.Open(context.Background(), "user-1", "user-2")
	require.NoError(t, err)
	assert.Equal(t, "chat-1", thread.Chat.ID)
	assert.Equal(t, entity.MessageRead, thread.Chat.Messages[0].Status)
	assert.Equal(t, "Online", thread.PartnerActivity)

	empty, err := uc.Open(context.Background(), "user-3", "user-2")
	require.NoError(t, err)
	assert.Empty(t, empty.Chat.ID)
	assert.Empty(t, empty.Chat.Messages)
	assert.Len(t, state.Chats(), 1)
}

func TestListChatsNewestFirst(t *testing.T) {
	state := newState(t)
	uc := NewChatUseCase(state, nil, nil)

	_, err := uc.Send(context.Background(), "user-3", "user-1", SendMessageInput{Text: "baru"})
	require.NoError(t, err)

	chats, err := uc.ListChats(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, chats, 2)
	assert.Equal(t, "user-3", chats[0].Partner.ID)
	assert.Equal(t, "user-2", chats[1].Partner.ID)
	assert.Equal(t, 1, chats[0].Unread)
	assert.Equal(t, 1, chats[1].Unread)

	require.NoError(t, uc.MarkRead("user-1", "user-2"))
	chats, _ = uc.ListChats(context.Background(), "user-1")
	assert.Equal(t, 0, chats[1].Unread)

	assert.True(t, errors.Is(uc.MarkRead("user-3", "user-2"), "NOT_FOUND"))
	assert.True(t, chats[0].LastMessage.Timestamp.After(testNow.Add(-time.Minute)))
}
