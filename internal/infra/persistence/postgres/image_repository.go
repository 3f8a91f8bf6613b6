package postgres

import (
	"context"

	"shopapi/internal/domain/entity"
	domainerrors "shopapi/internal/domain/errors"
	"shopapi/internal/domain/repository"
	"shopapi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// imageRepository implements the repository.ImageRepository interface.
type imageRepository struct {
	store *store[model.ImageModel]
}

// NewImageRepository is the constructor for imageRepository.
// Images register no relations; the payload is the interesting part and the
// owning product is resolved by the usecase, not joined.
func NewImageRepository(db *gorm.DB) repository.ImageRepository {
	return &imageRepository{
		store: newStore[model.ImageModel](db, nil),
	}
}

// Create persists a new image row.
func (repo *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	imageM := fromImageDomain(image)

	if err := repo.store.create(ctx, imageM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required image information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create image")
	}

	image.ID = imageM.ID

	return nil
}

// FindByID retrieves a single image by id, payload included.
func (repo *imageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	imageM, err := repo.store.findBy(ctx, "id", id, findOptions{})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find image by id")
	}

	return toImageDomain(imageM), nil
}

// FindAllByProductID returns a product's images in creation order.
func (repo *imageRepository) FindAllByProductID(ctx context.Context, productID uuid.UUID, offset, limit int) ([]*entity.Image, error) {
	imageModels, err := repo.store.findAll(ctx, listQuery{
		offset: offset,
		limit:  limit,
		conds:  map[string]any{"product_id": productID},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list images by product")
	}

	images := make([]*entity.Image, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toImageDomain(imageM))
	}

	return images, nil
}

// Update persists the full state of an already-merged image.
func (repo *imageRepository) Update(ctx context.Context, image *entity.Image) error {
	imageM := fromImageDomain(image)

	if err := repo.store.save(ctx, imageM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required image information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update image")
	}

	return nil
}

// Delete removes the image row.
func (repo *imageRepository) Delete(ctx context.Context, image *entity.Image) error {
	imageM := fromImageDomain(image)

	if err := repo.store.delete(ctx, imageM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete image")
	}

	return nil
}

// --- Mapper Functions ---

// toImageDomain converts a GORM ImageModel to a domain Image entity.
func toImageDomain(data *model.ImageModel) *entity.Image {
	if data == nil {
		return nil
	}

	return &entity.Image{
		ID:        data.ID,
		ProductID: data.ProductID,
		Extension: data.Extension,
		Payload:   data.Payload,
	}
}

// fromImageDomain converts a domain Image entity to a GORM ImageModel.
func fromImageDomain(data *entity.Image) *model.ImageModel {
	if data == nil {
		return nil
	}

	return &model.ImageModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		Extension: data.Extension,
		Payload:   data.Payload,
	}
}
