package handler

import (
	"net/http"

	"github.com/Tinaglini/RV-Project/internal/service"
	"github.com/Tinaglini/RV-Project/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ContractHandler struct {
	contracts *service.ContractService
}

func NewContractHandler(contracts *service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

func (h *ContractHandler) List(c echo.Context) error {
	contracts, err := h.contracts.List(c.Request().Context())
	return respond(c, http.StatusOK, contracts, err)
}

func (h *ContractHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	contract, err := h.contracts.Get(c.Request().Context(), id)
	return respond(c, http.StatusOK, contract, err)
}

func (h *ContractHandler) Create(c echo.Context) error {
	var req service.ContractInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	contract, err := h.contracts.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	logger.FromContext(c).Info("Contract created",
		zap.Uint("contract_id", contract.ID),
		zap.Uint("client_id", contract.ClientID))
	return c.JSON(http.StatusCreated, contract)
}

func (h *ContractHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req service.ContractInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	contract, err := h.contracts.Update(c.Request().Context(), id, req)
	return respond(c, http.StatusOK, contract, err)
}

// Delete removes a contract and its items
func (h *ContractHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.contracts.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	logger.FromContext(c).Info("Contract deleted", zap.Uint("contract_id", id))
	return c.NoContent(http.StatusNoContent)
}

func (h *ContractHandler) ListByClient(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	contracts, err := h.contracts.ListByClient(c.Request().Context(), id)
	return respond(c, http.StatusOK, contracts, err)
}

func (h *ContractHandler) ListByStatus(c echo.Context) error {
	contracts, err := h.contracts.ListByStatus(c.Request().Context(), c.Param("status"))
	return respond(c, http.StatusOK, contracts, err)
}
