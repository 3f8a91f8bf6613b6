package usecase

import (
	"context"

	"shopapi/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateImageInput carries a new image upload. The extension is detected from
// the payload bytes, never taken from the request.
type CreateImageInput struct {
	ProductID uuid.UUID
	Payload   []byte
}

// UpdateImageInput carries a replacement payload for an existing image.
type UpdateImageInput struct {
	Payload []byte
}

// ImageUsecase defines the product image use cases.
type ImageUsecase interface {
	// CreateImage attaches an uploaded image to a product. The product is
	// resolved first; then the payload must sniff as a decodable image.
	CreateImage(ctx context.Context, input *CreateImageInput) (*entity.Image, error)

	// GetImage retrieves an image by id, payload included.
	GetImage(ctx context.Context, id uuid.UUID) (*entity.Image, error)

	// GetProductImagesArchive confirms the product exists, pages its images in
	// creation order and packages them into a single zip blob with one entry
	// per image named "{id}.{extension}".
	GetProductImagesArchive(ctx context.Context, productID uuid.UUID, offset, limit int) ([]byte, error)

	// UpdateImage replaces the image's payload, re-detecting the extension.
	UpdateImage(ctx context.Context, id uuid.UUID, input *UpdateImageInput) (*entity.Image, error)

	// DeleteImage removes the image row.
	DeleteImage(ctx context.Context, id uuid.UUID) error
}
