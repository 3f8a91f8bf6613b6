package handler

import (
	"log/slog"
	"net/http"
	"time"

	"shopapi/internal/delivery/http/response"
	"shopapi/internal/domain/entity"
	"shopapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type createProductRequest struct {
	Name           string    `json:"name" validate:"required"`
	Category       string    `json:"category" validate:"required"`
	Price          float64   `json:"price" validate:"gte=0"`
	AvailableStock int       `json:"available_stock" validate:"gte=0"`
	SupplierID     uuid.UUID `json:"supplier_id" validate:"required"`
}

type updateProductRequest struct {
	Name           *string    `json:"name" validate:"omitempty,min=1"`
	Category       *string    `json:"category" validate:"omitempty,min=1"`
	Price          *float64   `json:"price" validate:"omitempty,gte=0"`
	AvailableStock *int       `json:"available_stock" validate:"omitempty,gte=0"`
	SupplierID     *uuid.UUID `json:"supplier_id" validate:"omitempty"`
}

type reduceStockRequest struct {
	AmountToReduce int `json:"amount_to_reduce" validate:"required,gt=0"`
}

type productResponse struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Price          float64           `json:"price"`
	AvailableStock int               `json:"available_stock"`
	LastUpdateDate time.Time         `json:"last_update_date"`
	SupplierID     uuid.UUID         `json:"supplier_id"`
	Supplier       *supplierResponse `json:"supplier,omitempty"`
}

// CreateProduct handles the product registration request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateProductInput{
		Name:           req.Name,
		Category:       req.Category,
		Price:          req.Price,
		AvailableStock: req.AvailableStock,
		SupplierID:     req.SupplierID,
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// GetProduct handles the single-product read request.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// ListProducts handles the paginated product listing request.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	offset, limit, err := parsePagination(c)
	if err != nil {
		return errors.WithStack(err)
	}

	products, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsQuery{
		Name:   c.QueryParam("name"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*productResponse, 0, len(products))
	for _, product := range products {
		items = append(items, toProductResponse(product))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// UpdateProduct handles the partial product update request.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateProductInput{
		Name:           req.Name,
		Category:       req.Category,
		Price:          req.Price,
		AvailableStock: req.AvailableStock,
		SupplierID:     req.SupplierID,
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Product updated successfully")
}

// ReduceStock handles the stock reduction request.
func (h *ProductHandler) ReduceStock(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req reduceStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock reduction input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.ReduceStock(c.Request().Context(), id, req.AmountToReduce)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "Stock reduced successfully")
}

// DeleteProduct handles the product deletion request.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

func toProductResponse(product *entity.Product) *productResponse {
	if product == nil {
		return nil
	}

	return &productResponse{
		ID:             product.ID,
		Name:           product.Name,
		Category:       product.Category,
		Price:          product.Price,
		AvailableStock: product.AvailableStock,
		LastUpdateDate: product.LastUpdateDate,
		SupplierID:     product.SupplierID,
		Supplier:       toSupplierResponse(product.Supplier),
	}
}
