package handler

import (
	"net/http"

	"github.com/Tinaglini/RV-Project/internal/service"
	"github.com/Tinaglini/RV-Project/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ItemHandler struct {
	items *service.ItemService
}

func NewItemHandler(items *service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.items.List(c.Request().Context())
	return respond(c, http.StatusOK, items, err)
}

func (h *ItemHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	item, err := h.items.Get(c.Request().Context(), id)
	return respond(c, http.StatusOK, item, err)
}

// Create adds an item to a contract; its final value is computed server side
func (h *ItemHandler) Create(c echo.Context) error {
	var req service.ItemInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := h.items.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	logger.FromContext(c).Info("Item created",
		zap.Uint("item_id", item.ID),
		zap.Uint("contract_id", item.ContractID),
		zap.Float64("final_value", item.FinalValue))
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req service.ItemInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	item, err := h.items.Update(c.Request().Context(), id, req)
	return respond(c, http.StatusOK, item, err)
}

func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.items.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ItemHandler) ListByContract(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.items.ListByContract(c.Request().Context(), id)
	return respond(c, http.StatusOK, items, err)
}

func (h *ItemHandler) ListByService(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	items, err := h.items.ListByService(c.Request().Context(), id)
	return respond(c, http.StatusOK, items, err)
}
