// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopapi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	ClientHandler   *handler.ClientHandler
	SupplierHandler *handler.SupplierHandler
	ProductHandler  *handler.ProductHandler
	ImageHandler    *handler.ImageHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	clientHandler   *handler.ClientHandler
	supplierHandler *handler.SupplierHandler
	productHandler  *handler.ProductHandler
	imageHandler    *handler.ImageHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		clientHandler:   params.ClientHandler,
		supplierHandler: params.SupplierHandler,
		productHandler:  params.ProductHandler,
		imageHandler:    params.ImageHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	api := e.Group("/api/v1")

	clientGroup := api.Group("/client")
	{
		clientGroup.POST("", r.clientHandler.CreateClient)
		clientGroup.GET("/all", r.clientHandler.ListClients)
		clientGroup.GET("/:id", r.clientHandler.GetClient)
		clientGroup.PATCH("/:id", r.clientHandler.UpdateClient)
		clientGroup.DELETE("/:id", r.clientHandler.DeleteClient)
	}

	supplierGroup := api.Group("/supplier")
	{
		supplierGroup.POST("", r.supplierHandler.CreateSupplier)
		supplierGroup.GET("/all", r.supplierHandler.ListSuppliers)
		supplierGroup.GET("/:id", r.supplierHandler.GetSupplier)
		supplierGroup.PATCH("/:id", r.supplierHandler.UpdateSupplier)
		supplierGroup.DELETE("/:id", r.supplierHandler.DeleteSupplier)
	}

	productGroup := api.Group("/product")
	{
		productGroup.POST("", r.productHandler.CreateProduct)
		productGroup.GET("/all", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.PATCH("/:id", r.productHandler.UpdateProduct)
		productGroup.PATCH("/:id/stock", r.productHandler.ReduceStock)
		productGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	imageGroup := api.Group("/image")
	{
		imageGroup.POST("", r.imageHandler.CreateImage)
		imageGroup.GET("/all/:product_id", r.imageHandler.GetProductImages)
		imageGroup.GET("/:id", r.imageHandler.GetImage)
		imageGroup.PATCH("/:id", r.imageHandler.UpdateImage)
		imageGroup.DELETE("/:id", r.imageHandler.DeleteImage)
	}
}
