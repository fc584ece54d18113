package handler

import (
	"github.com/Tinaglini/RV-Project/prometheus"
	"github.com/labstack/echo/v4"
)

// Handlers groups the handlers mounted by RegisterRoutes
type Handlers struct {
	Health     *HealthHandler
	Clients    *ClientHandler
	Categories *CategoryHandler
	Addresses  *AddressHandler
	Contracts  *ContractHandler
	Catalog    *CatalogHandler
	Items      *ItemHandler
}

// RegisterRoutes mounts every endpoint on e. adminGuard wraps the operator
// routes that unlock and list locked accounts.
func RegisterRoutes(e *echo.Echo, h Handlers, adminGuard echo.MiddlewareFunc) {
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	clients := e.Group("/clientes")
	clients.GET("", h.Clients.List)
	clients.POST("", h.Clients.Create)
	clients.GET("/buscar", h.Clients.SearchByName)
	clients.GET("/categoria/:id", h.Clients.ListByCategory)
	clients.GET("/cpf", h.Clients.GetByTaxID)
	clients.GET("/email", h.Clients.GetByEmail)
	clients.POST("/login", h.Clients.Login)
	clients.POST("/verificar-cpf-email", h.Clients.CheckExistence)
	clients.GET("/bloqueados", h.Clients.ListLocked, adminGuard)
	clients.GET("/:id", h.Clients.Get)
	clients.PUT("/:id", h.Clients.Update)
	clients.DELETE("/:id", h.Clients.Delete)
	clients.PUT("/:id/alterar-senha", h.Clients.ChangePassword)
	clients.PUT("/:id/desbloquear", h.Clients.Unlock, adminGuard)

	categories := e.Group("/categorias")
	categories.GET("", h.Categories.List)
	categories.POST("", h.Categories.Create)
	categories.GET("/ativas", h.Categories.ListActive)
	categories.GET("/buscar", h.Categories.SearchByName)
	categories.GET("/:id", h.Categories.Get)
	categories.PUT("/:id", h.Categories.Update)
	categories.DELETE("/:id", h.Categories.Delete)

	addresses := e.Group("/enderecos")
	addresses.GET("", h.Addresses.List)
	addresses.POST("", h.Addresses.Create)
	addresses.GET("/buscar", h.Addresses.SearchByCity)
	addresses.GET("/cliente/:id", h.Addresses.ListByClient)
	addresses.GET("/:id", h.Addresses.Get)
	addresses.PUT("/:id", h.Addresses.Update)
	addresses.DELETE("/:id", h.Addresses.Delete)

	contracts := e.Group("/contratos")
	contracts.GET("", h.Contracts.List)
	contracts.POST("", h.Contracts.Create)
	contracts.GET("/cliente/:id", h.Contracts.ListByClient)
	contracts.GET("/status/:status", h.Contracts.ListByStatus)
	contracts.GET("/:id", h.Contracts.Get)
	contracts.PUT("/:id", h.Contracts.Update)
	contracts.DELETE("/:id", h.Contracts.Delete)

	items := e.Group("/itens")
	items.GET("", h.Items.List)
	items.POST("", h.Items.Create)
	items.GET("/contrato/:id", h.Items.ListByContract)
	items.GET("/servico/:id", h.Items.ListByService)
	items.GET("/:id", h.Items.Get)
	items.PUT("/:id", h.Items.Update)
	items.DELETE("/:id", h.Items.Delete)

	catalog := e.Group("/servicos")
	catalog.GET("", h.Catalog.List)
	catalog.POST("", h.Catalog.Create)
	catalog.GET("/ativos", h.Catalog.ListActive)
	catalog.GET("/buscar", h.Catalog.SearchByName)
	catalog.GET("/categoria/:categoria", h.Catalog.ListByCategory)
	catalog.GET("/:id", h.Catalog.Get)
	catalog.PUT("/:id", h.Catalog.Update)
	catalog.DELETE("/:id", h.Catalog.Delete)
}
