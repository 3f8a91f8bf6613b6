package repository

import (
	"context"

	"shopapi/internal/domain/entity"
	"shopapi/internal/errors"

	"github.com/google/uuid"
)

// ErrImageNotFound is returned when no image row matches the requested id.
var ErrImageNotFound = errors.New("image not found")

// ImageRepository defines the standard operations for product image persistence.
type ImageRepository interface {
	// Create persists a new image. The product reference must already exist;
	// callers resolve it before staging the row.
	Create(ctx context.Context, image *entity.Image) error

	// FindByID retrieves a single image by id, payload included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Image, error)

	// FindAllByProductID returns a product's images in creation order.
	FindAllByProductID(ctx context.Context, productID uuid.UUID, offset, limit int) ([]*entity.Image, error)

	// Update persists the current state of an already-merged image entity.
	Update(ctx context.Context, image *entity.Image) error

	// Delete removes the image row.
	Delete(ctx context.Context, image *entity.Image) error
}
