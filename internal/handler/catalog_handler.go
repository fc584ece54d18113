package handler

import (
	"net/http"

	"github.com/Tinaglini/RV-Project/internal/service"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the services catalog
type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	return respond(c, http.StatusOK, services, err)
}

func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	svc, err := h.catalog.Get(c.Request().Context(), id)
	return respond(c, http.StatusOK, svc, err)
}

func (h *CatalogHandler) Create(c echo.Context) error {
	var req service.ServiceInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	svc, err := h.catalog.Create(c.Request().Context(), req)
	return respond(c, http.StatusCreated, svc, err)
}

func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req service.ServiceInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	svc, err := h.catalog.Update(c.Request().Context(), id, req)
	return respond(c, http.StatusOK, svc, err)
}

// Delete removes a service that no contract item bills
func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.catalog.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) ListActive(c echo.Context) error {
	services, err := h.catalog.ListActive(c.Request().Context())
	return respond(c, http.StatusOK, services, err)
}

func (h *CatalogHandler) SearchByName(c echo.Context) error {
	services, err := h.catalog.SearchByName(c.Request().Context(), c.QueryParam("nome"))
	return respond(c, http.StatusOK, services, err)
}

func (h *CatalogHandler) ListByCategory(c echo.Context) error {
	services, err := h.catalog.ListByCategory(c.Request().Context(), c.Param("categoria"))
	return respond(c, http.StatusOK, services, err)
}
