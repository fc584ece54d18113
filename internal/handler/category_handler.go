package handler

import (
	"net/http"

	"github.com/Tinaglini/RV-Project/internal/service"
	"github.com/Tinaglini/RV-Project/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	return respond(c, http.StatusOK, categories, err)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	category, err := h.categories.Get(c.Request().Context(), id)
	return respond(c, http.StatusOK, category, err)
}

// Create adds a new client category
func (h *CategoryHandler) Create(c echo.Context) error {
	var req service.CategoryInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	category, err := h.categories.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	logger.FromContext(c).Info("Category created",
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name))
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req service.CategoryInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	category, err := h.categories.Update(c.Request().Context(), id, req)
	return respond(c, http.StatusOK, category, err)
}

// Delete removes a category that no client is assigned to
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	logger.FromContext(c).Info("Category deleted", zap.Uint("category_id", id))
	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) ListActive(c echo.Context) error {
	categories, err := h.categories.ListActive(c.Request().Context())
	return respond(c, http.StatusOK, categories, err)
}

func (h *CategoryHandler) SearchByName(c echo.Context) error {
	categories, err := h.categories.SearchByName(c.Request().Context(), c.QueryParam("nome"))
	return respond(c, http.StatusOK, categories, err)
}
