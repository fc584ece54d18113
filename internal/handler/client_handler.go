package handler

import (
	"net/http"

	"github.com/Tinaglini/RV-Project/internal/service"
	"github.com/Tinaglini/RV-Project/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LoginRequest carries a tax id or email and the raw password
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// ChangePasswordRequest defines the structure for password change requests
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ExistenceRequest asks whether a tax id or email is registered
type ExistenceRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

type ClientHandler struct {
	clients *service.ClientService
}

func NewClientHandler(clients *service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// List retrieves every client
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, clients)
}

// Get retrieves a client by id
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	client, err := h.clients.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, client)
}

// Create registers a new client
func (h *ClientHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req service.ClientInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	client, err := h.clients.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Client created",
		zap.Uint("client_id", client.ID),
		zap.String("registration_status", string(client.RegistrationStatus)))
	return c.JSON(http.StatusCreated, client)
}

// Update replaces a client's profile
func (h *ClientHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req service.ClientInput
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	client, err := h.clients.Update(c.Request().Context(), id, req)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Client updated", zap.Uint("client_id", id))
	return c.JSON(http.StatusOK, client)
}

// Delete removes a client with its addresses, contracts and items
func (h *ClientHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.clients.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	log.Info("Client deleted", zap.Uint("client_id", id))
	return c.NoContent(http.StatusNoContent)
}

// SearchByName lists clients whose name contains ?nome=
func (h *ClientHandler) SearchByName(c echo.Context) error {
	clients, err := h.clients.SearchByName(c.Request().Context(), c.QueryParam("nome"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) ListByCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	clients, err := h.clients.ListByCategory(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, clients)
}

// GetByTaxID looks a client up by ?cpf=
func (h *ClientHandler) GetByTaxID(c echo.Context) error {
	client, err := h.clients.GetByTaxID(c.Request().Context(), c.QueryParam("cpf"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, client)
}

// GetByEmail looks a client up by ?email=
func (h *ClientHandler) GetByEmail(c echo.Context) error {
	client, err := h.clients.GetByEmail(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, client)
}

// Login authenticates a client by tax id or email and returns the client record
func (h *ClientHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)

	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	client, err := h.clients.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Client logged in", zap.Uint("client_id", client.ID))
	return c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) ChangePassword(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	if err := h.clients.ChangePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}

	log.Info("Password changed", zap.Uint("client_id", id))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Password changed successfully",
	})
}

// Unlock clears the lock state of an account
func (h *ClientHandler) Unlock(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	client, err := h.clients.Unlock(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Account unlocked", zap.Uint("client_id", id))
	return c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) ListLocked(c echo.Context) error {
	clients, err := h.clients.ListLocked(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, clients)
}

// CheckExistence reports whether a tax id or email is already registered
func (h *ClientHandler) CheckExistence(c echo.Context) error {
	var req ExistenceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respondError(c, err)
	}

	existence, err := h.clients.CheckExistence(c.Request().Context(), req.Identifier)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, existence)
}
