package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mados/internal/domain/entity"
	"mados/internal/usecase"
	"mados/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

type itemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

func (r itemRequest) toInput() usecase.ItemInput {
	return usecase.ItemInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    entity.ItemCategory(r.Category),
		ImageURL:    r.ImageURL,
	}
}

func (h *CatalogHandler) ListStores(c echo.Context) error {
	return response.Success(c, h.catalogUseCase.ListStores(c.Request().Context()))
}

func (h *CatalogHandler) GetStore(c echo.Context) error {
	detail, err := h.catalogUseCase.StoreDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, detail)
}

func (h *CatalogHandler) GetItem(c echo.Context) error {
	detail, err := h.catalogUseCase.ItemDetail(c.Request().Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, detail)
}

func (h *CatalogHandler) GetMyStore(c echo.Context) error {
	store, err := h.catalogUseCase.MyStore(c.Request().Context(), currentUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, store)
}

func (h *CatalogHandler) AddItem(c echo.Context) error {
	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.catalogUseCase.AddItem(c.Request().Context(), currentUserID(c), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *CatalogHandler) UpdateItem(c echo.Context) error {
	var req itemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.catalogUseCase.UpdateItem(c.Request().Context(), currentUserID(c), c.Param("itemId"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *CatalogHandler) DeleteItem(c echo.Context) error {
	if err := h.catalogUseCase.DeleteItem(c.Request().Context(), currentUserID(c), c.Param("itemId")); err != nil {
		return response.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
