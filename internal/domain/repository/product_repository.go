package repository

import (
	"context"

	"shopapi/internal/domain/entity"
	"shopapi/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product row matches the requested id.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a product listing. A zero-value Name means "match all".
type ProductFilter struct {
	Name string
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// Create persists a new product. The supplier reference must already exist;
	// callers resolve it before staging the row.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by id with its supplier eagerly loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product by id under a row-level write lock
	// (SELECT ... FOR UPDATE) held until the enclosing transaction ends. No
	// relations are loaded; this is the entry point of the stock-reduction
	// protocol and must run inside TransactionManager.Execute.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindAll returns products in creation order with suppliers eagerly loaded.
	FindAll(ctx context.Context, filter ProductFilter, offset, limit int) ([]*entity.Product, error)

	// Update persists the current state of an already-merged product entity.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product row.
	Delete(ctx context.Context, product *entity.Product) error
}
