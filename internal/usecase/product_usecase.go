package usecase

import (
	"context"

	"shopapi/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput carries the fields for registering a new product.
type CreateProductInput struct {
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	AvailableStock int       `json:"available_stock"`
	SupplierID     uuid.UUID `json:"supplier_id"`
}

// UpdateProductInput carries a partial product update. Nil fields were absent
// from the request and keep their stored value.
type UpdateProductInput struct {
	Name           *string    `json:"name,omitempty"`
	Category       *string    `json:"category,omitempty"`
	Price          *float64   `json:"price,omitempty"`
	AvailableStock *int       `json:"available_stock,omitempty"`
	SupplierID     *uuid.UUID `json:"supplier_id,omitempty"`
}

// ListProductsQuery narrows and pages a product listing.
type ListProductsQuery struct {
	Name   string
	Offset int
	Limit  int
}

// ProductUsecase defines the product management use cases.
type ProductUsecase interface {
	// CreateProduct registers a new product. The supplier is resolved first;
	// a missing supplier fails before any product row is staged.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetProduct retrieves a product by id with its supplier loaded.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns products in creation order, optionally filtered by
	// exact name.
	ListProducts(ctx context.Context, query ListProductsQuery) ([]*entity.Product, error)

	// UpdateProduct applies a partial update; fields absent from the input
	// keep their stored value. A changed supplier reference is resolved before
	// the row is staged.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// ReduceStock atomically subtracts amount units from the product's
	// available stock. The product row stays locked until commit, so
	// concurrent reductions serialize and stock never goes negative.
	ReduceStock(ctx context.Context, id uuid.UUID, amount int) (*entity.Product, error)

	// DeleteProduct removes the product row.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
