package handler

import (
	"github.com/labstack/echo/v4"

	"mados/internal/domain/entity"
	"mados/internal/usecase"
	"mados/pkg/response"
)

type OnboardingHandler struct {
	onboardingUseCase *usecase.OnboardingUseCase
}

func NewOnboardingHandler(onboardingUseCase *usecase.OnboardingUseCase) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUseCase: onboardingUseCase,
	}
}

// coordinatesRequest is optional on forms; without it the last tracked
// position of the user is used.
type coordinatesRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

func (r *coordinatesRequest) toEntity() *entity.Coordinates {
	if r == nil {
		return nil
	}
	return &entity.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude}
}

type sellerRegistrationRequest struct {
	StoreName   string              `json:"store_name"`
	Address     string              `json:"address"`
	Coordinates *coordinatesRequest `json:"coordinates" validate:"omitempty"`
}

type publicServiceRegistrationRequest struct {
	ServiceName string              `json:"service_name"`
	ServiceType string              `json:"service_type"`
	Address     string              `json:"address"`
	Coordinates *coordinatesRequest `json:"coordinates" validate:"omitempty"`
}

func (h *OnboardingHandler) GetStatus(c echo.Context) error {
	status, err := h.onboardingUseCase.Status(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, status)
}

func (h *OnboardingHandler) SubmitSeller(c echo.Context) error {
	var req sellerRegistrationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.onboardingUseCase.SubmitSeller(c.Request().Context(), currentUserID(c), usecase.SellerRegistrationInput{
		StoreName:   req.StoreName,
		Address:     req.Address,
		Coordinates: req.Coordinates.toEntity(),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

func (h *OnboardingHandler) ApproveSeller(c echo.Context) error {
	store, err := h.onboardingUseCase.ApproveSeller(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, store)
}

func (h *OnboardingHandler) SubmitPublicService(c echo.Context) error {
	var req publicServiceRegistrationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.onboardingUseCase.SubmitPublicService(c.Request().Context(), currentUserID(c), usecase.PublicServiceRegistrationInput{
		ServiceName: req.ServiceName,
		ServiceType: req.ServiceType,
		Address:     req.Address,
		Coordinates: req.Coordinates.toEntity(),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, user)
}

func (h *OnboardingHandler) ApprovePublicService(c echo.Context) error {
	ps, err := h.onboardingUseCase.ApprovePublicService(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ps)
}

// GetOptions lists the fixed choices the onboarding and profile forms offer.
func (h *OnboardingHandler) GetOptions(c echo.Context) error {
	return response.Success(c, map[string][]string{
		"interests":            entity.InterestCategories,
		"genders":              entity.Genders,
		"public_service_types": entity.PublicServiceTypes,
	})
}
