package handler

import (
	"github.com/labstack/echo/v4"

	"mados/internal/domain/entity"
	"mados/internal/geo"
	"mados/internal/usecase"
	"mados/pkg/response"
)

type LocationHandler struct {
	locationUseCase *usecase.LocationUseCase
}

func NewLocationHandler(locationUseCase *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
	}
}

type locationErrorRequest struct {
	Code    int    `json:"code" validate:"min=0,max=3"`
	Message string `json:"message"`
}

func (h *LocationHandler) GetLocation(c echo.Context) error {
	return response.Success(c, h.locationUseCase.State(currentUserID(c)))
}

// UpdateLocation records a position fix reported by the client. The tracker
// picks it up asynchronously.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	var req coordinatesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	coords := entity.Coordinates{Latitude: req.Latitude, Longitude: req.Longitude}
	h.locationUseCase.UpdateLocation(currentUserID(c), coords)
	return response.Success(c, coords)
}

// ReportError records that the client could not get a fix. Codes follow the
// browser geolocation API, with 0 for an unsupported device.
func (h *LocationHandler) ReportError(c echo.Context) error {
	var req locationErrorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	h.locationUseCase.ReportError(currentUserID(c), geo.PositionErrorCode(req.Code), req.Message)
	return response.Success(c, map[string]bool{"recorded": true})
}
