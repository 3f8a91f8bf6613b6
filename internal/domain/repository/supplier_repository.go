package repository

import (
	"context"

	"shopapi/internal/domain/entity"
	"shopapi/internal/errors"

	"github.com/google/uuid"
)

// ErrSupplierNotFound is returned when no supplier row matches the requested id.
var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierFilter narrows a supplier listing. A zero-value Name means "match all".
type SupplierFilter struct {
	Name string
}

// SupplierRepository defines the standard operations for supplier persistence.
type SupplierRepository interface {
	// Create persists a new supplier, together with its owned address when present.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// FindByID retrieves a single supplier by id with its address eagerly loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindAll returns suppliers in creation order with addresses eagerly loaded.
	FindAll(ctx context.Context, filter SupplierFilter, offset, limit int) ([]*entity.Supplier, error)

	// Update persists the current state of an already-merged supplier entity.
	Update(ctx context.Context, supplier *entity.Supplier) error

	// Delete removes the supplier row and its owned address.
	Delete(ctx context.Context, supplier *entity.Supplier) error
}
