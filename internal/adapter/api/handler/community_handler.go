package handler

import (
	"github.com/labstack/echo/v4"

	"mados/internal/usecase"
	"mados/pkg/response"
	"mados/pkg/utils"
)

type CommunityHandler struct {
	communityUseCase *usecase.CommunityUseCase
}

func NewCommunityHandler(communityUseCase *usecase.CommunityUseCase) *CommunityHandler {
	return &CommunityHandler{
		communityUseCase: communityUseCase,
	}
}

type createPostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"image_url"`
}

type commentRequest struct {
	Text     string `json:"text"`
	ImageURL string `json:"image_url"`
}

func (h *CommunityHandler) ListPosts(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	posts, total := h.communityUseCase.ListPosts(c.Request().Context(), params)
	return response.Paginated(c, posts, total, params.Page, params.PageSize)
}

func (h *CommunityHandler) GetPost(c echo.Context) error {
	post, err := h.communityUseCase.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, post)
}

func (h *CommunityHandler) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.communityUseCase.CreatePost(c.Request().Context(), currentUserID(c), usecase.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *CommunityHandler) ToggleLike(c echo.Context) error {
	result, err := h.communityUseCase.ToggleLike(c.Request().Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *CommunityHandler) Comment(c echo.Context) error {
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	comment, err := h.communityUseCase.Comment(c.Request().Context(), currentUserID(c), c.Param("id"), usecase.CommentInput{
		Text:     req.Text,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, comment)
}

func (h *CommunityHandler) Reply(c echo.Context) error {
	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.communityUseCase.Reply(c.Request().Context(), currentUserID(c), c.Param("id"), c.Param("commentId"), usecase.CommentInput{
		Text:     req.Text,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, reply)
}
