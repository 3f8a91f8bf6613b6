package usecase

import (
	"context"

	"shopapi/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSupplierInput carries the fields for registering a new supplier.
type CreateSupplierInput struct {
	Name        string        `json:"name"`
	PhoneNumber string        `json:"phone_number"`
	Address     *AddressInput `json:"address,omitempty"`
}

// UpdateSupplierInput carries a partial supplier update. Nil fields were
// absent from the request and keep their stored value.
type UpdateSupplierInput struct {
	Name        *string       `json:"name,omitempty"`
	PhoneNumber *string       `json:"phone_number,omitempty"`
	Address     *AddressInput `json:"address,omitempty"`
}

// ListSuppliersQuery narrows and pages a supplier listing.
type ListSuppliersQuery struct {
	Name   string
	Offset int
	Limit  int
}

// SupplierUsecase defines the supplier management use cases.
type SupplierUsecase interface {
	// CreateSupplier registers a new supplier, together with its owned address
	// when one is given.
	CreateSupplier(ctx context.Context, input *CreateSupplierInput) (*entity.Supplier, error)

	// GetSupplier retrieves a supplier by id with its address loaded.
	GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// ListSuppliers returns suppliers in creation order, optionally filtered
	// by exact name.
	ListSuppliers(ctx context.Context, query ListSuppliersQuery) ([]*entity.Supplier, error)

	// UpdateSupplier applies a partial update; fields absent from the input
	// keep their stored value.
	UpdateSupplier(ctx context.Context, id uuid.UUID, input *UpdateSupplierInput) (*entity.Supplier, error)

	// DeleteSupplier removes the supplier and its owned address. A supplier
	// that still owns products cannot be deleted.
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
}
