package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mados/internal/domain/entity"
	"mados/internal/usecase"
	"mados/pkg/errors"
	"mados/pkg/response"
)

const maxImageSize = 5 << 20

type DiscoveryHandler struct {
	discoveryUseCase *usecase.DiscoveryUseCase
	positions        usecase.PositionSource
}

func NewDiscoveryHandler(discoveryUseCase *usecase.DiscoveryUseCase, positions usecase.PositionSource) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
		positions:        positions,
	}
}

// here reads lat and lon from the query, falling back to the position the
// user last reported. Both missing yields nil.
func (h *DiscoveryHandler) here(c echo.Context) (*entity.Coordinates, error) {
	latParam, lonParam := c.QueryParam("lat"), c.QueryParam("lon")
	if latParam != "" || lonParam != "" {
		lat, errLat := strconv.ParseFloat(latParam, 64)
		lon, errLon := strconv.ParseFloat(lonParam, 64)
		if errLat != nil || errLon != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return nil, errors.BadRequest("lat and lon must be valid coordinates", nil)
		}
		return &entity.Coordinates{Latitude: lat, Longitude: lon}, nil
	}

	if h.positions != nil {
		if userID := currentUserID(c); userID != "" {
			if coords, ok := h.positions.Position(userID); ok {
				return &coords, nil
			}
		}
	}
	return nil, nil
}

func (h *DiscoveryHandler) requireHere(c echo.Context) (entity.Coordinates, error) {
	here, err := h.here(c)
	if err != nil {
		return entity.Coordinates{}, err
	}
	if here == nil {
		return entity.Coordinates{}, errors.BadRequest("Tidak bisa mendapatkan lokasi Anda. Pastikan izin lokasi diberikan dan aktif.", nil)
	}
	return *here, nil
}

func (h *DiscoveryHandler) NearbyStores(c echo.Context) error {
	here, err := h.requireHere(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, h.discoveryUseCase.NearbyStores(c.Request().Context(), here))
}

func (h *DiscoveryHandler) PopularNearby(c echo.Context) error {
	here, err := h.requireHere(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, h.discoveryUseCase.PopularNearby(c.Request().Context(), here))
}

// MapPoints works without a position; distances are then omitted.
func (h *DiscoveryHandler) MapPoints(c echo.Context) error {
	here, err := h.here(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, h.discoveryUseCase.MapPoints(c.Request().Context(), here, c.QueryParam("q")))
}

func (h *DiscoveryHandler) SearchItems(c echo.Context) error {
	here, err := h.requireHere(c)
	if err != nil {
		return response.Error(c, err)
	}

	items, err := h.discoveryUseCase.SearchItems(c.Request().Context(), here, c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, items)
}

// SearchByImage expects a multipart form with the photo in the image field.
func (h *DiscoveryHandler) SearchByImage(c echo.Context) error {
	here, err := h.requireHere(c)
	if err != nil {
		return response.Error(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("image file is required", err))
	}
	if file.Size > maxImageSize {
		return response.Error(c, errors.BadRequest("image must be at most 5 MB", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read image", err))
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImageSize))
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read image", err))
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	result, err := h.discoveryUseCase.SearchByImage(c.Request().Context(), currentUserID(c), here, data, mimeType)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}
