package handler

import (
	"net/http"

	"github.com/Tinaglini/RV-Project/internal/service"
	"github.com/labstack/echo/v4"
)

type AddressHandler struct {
	addresses *service.AddressService
}

func NewAddressHandler(addresses *service.AddressService) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

func (h *AddressHandler) List(c echo.Context) error {
	addresses, err := h.addresses.List(c.Request().Context())
	return respond(c, http.StatusOK, addresses, err)
}

func (h *AddressHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	address, err := h.addresses.Get(c.Request().Context(), id)
	return respond(c, http.StatusOK, address, err)
}

func (h *AddressHandler) Create(c echo.Context) error {
	var req service.AddressInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}
	address, err := h.addresses.Create(c.Request().Context(), req)
	return respond(c, http.StatusCreated, address, err)
}

func (h *AddressHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req service.AddressInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	address, err := h.addresses.Update(c.Request().Context(), id, req)
	return respond(c, http.StatusOK, address, err)
}

func (h *AddressHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.addresses.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AddressHandler) ListByClient(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	addresses, err := h.addresses.ListByClient(c.Request().Context(), id)
	return respond(c, http.StatusOK, addresses, err)
}

// SearchByCity lists addresses whose city contains ?cidade=
func (h *AddressHandler) SearchByCity(c echo.Context) error {
	addresses, err := h.addresses.SearchByCity(c.Request().Context(), c.QueryParam("cidade"))
	return respond(c, http.StatusOK, addresses, err)
}
