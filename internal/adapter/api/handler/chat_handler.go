package handler

import (
	"github.com/labstack/echo/v4"

	"mados/internal/domain/entity"
	"mados/internal/usecase"
	"mados/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type productRefRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=item community_post"`
	StoreID string `json:"store_id" validate:"required_if=Kind item"`
	ItemID  string `json:"item_id" validate:"required_if=Kind item"`
	PostID  string `json:"post_id" validate:"required_if=Kind community_post"`
}

type sendMessageRequest struct {
	Text    string             `json:"text"`
	Product *productRefRequest `json:"product" validate:"omitempty"`
}

func (h *ChatHandler) ListChats(c echo.Context) error {
	chats, err := h.chatUseCase.ListChats(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, chats)
}

// OpenChat returns the conversation with a partner and marks what they sent
// as read.
func (h *ChatHandler) OpenChat(c echo.Context) error {
	thread, err := h.chatUseCase.Open(c.Request().Context(), currentUserID(c), c.Param("partnerId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, thread)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.SendMessageInput{Text: req.Text}
	if req.Product != nil {
		input.Product = &usecase.ProductRef{
			Kind:    entity.ProductContextKind(req.Product.Kind),
			StoreID: req.Product.StoreID,
			ItemID:  req.Product.ItemID,
			PostID:  req.Product.PostID,
		}
	}

	msg, err := h.chatUseCase.Send(c.Request().Context(), currentUserID(c), c.Param("partnerId"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, msg)
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	if err := h.chatUseCase.MarkRead(currentUserID(c), c.Param("partnerId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"read": true})
}
