package handler

import (
	"github.com/labstack/echo/v4"

	"mados/internal/usecase"
	"mados/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	Rating      int                 `json:"rating"`
	Comment     string              `json:"comment"`
	Coordinates *coordinatesRequest `json:"coordinates" validate:"omitempty"`
}

func (r createReviewRequest) toInput() usecase.ReviewInput {
	return usecase.ReviewInput{
		Rating:      r.Rating,
		Comment:     r.Comment,
		Coordinates: r.Coordinates.toEntity(),
	}
}

func (h *ReviewHandler) ReviewStore(c echo.Context) error {
	var req createReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.ReviewStore(c.Request().Context(), currentUserID(c), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ReviewItem(c echo.Context) error {
	var req createReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.ReviewItem(c.Request().Context(), currentUserID(c), c.Param("id"), c.Param("itemId"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) ReviewPublicService(c echo.Context) error {
	var req createReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.ReviewPublicService(c.Request().Context(), currentUserID(c), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}
