package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopapi/internal/delivery/context"
	"shopapi/internal/domain/entity"
	domainerrors "shopapi/internal/domain/errors"
	"shopapi/internal/domain/repository"
	"shopapi/internal/domain/service"
	"shopapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// imageService implements the ImageUsecase interface.
type imageService struct {
	txManager   repository.TransactionManager
	imageRepo   repository.ImageRepository
	productRepo repository.ProductRepository
	decoder     service.ImageDecoder
	archiver    service.ImageArchiver
	logger      *slog.Logger
}

// ImageServiceParams holds dependencies for ImageService, injected by Fx.
type ImageServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ImageRepo   repository.ImageRepository
	ProductRepo repository.ProductRepository
	Decoder     service.ImageDecoder
	Archiver    service.ImageArchiver
	Logger      *slog.Logger
}

// NewImageService is the constructor for imageService.
func NewImageService(params ImageServiceParams) usecase.ImageUsecase {
	return &imageService{
		txManager:   params.TxManager,
		imageRepo:   params.ImageRepo,
		productRepo: params.ProductRepo,
		decoder:     params.Decoder,
		archiver:    params.Archiver,
		logger:      params.Logger,
	}
}

func (srv *imageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateImage attaches an uploaded image to a product. The product reference
// is resolved first, then the payload must sniff as a decodable image; only
// then is the row staged.
func (srv *imageService) CreateImage(ctx context.Context, input *usecase.CreateImageInput) (*entity.Image, error) {
	var image *entity.Image

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ProductRepo().FindByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to resolve product reference")
		}

		extension, err := srv.decoder.Sniff(input.Payload)
		if err != nil {
			return err
		}

		image = &entity.Image{
			ProductID: input.ProductID,
			Extension: extension,
			Payload:   input.Payload,
		}

		return repoFactory.ImageRepo().Create(ctx, image)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create image", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Image created", slog.Any("imageID", image.ID), slog.Any("productID", input.ProductID))

	return image, nil
}

// GetImage retrieves an image by id, payload included.
func (srv *imageService) GetImage(ctx context.Context, id uuid.UUID) (*entity.Image, error) {
	image, err := srv.imageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to get image")
	}

	return image, nil
}

// GetProductImagesArchive packages a page of the product's images into one
// zip blob with entries named by the images' canonical file names.
func (srv *imageService) GetProductImagesArchive(ctx context.Context, productID uuid.UUID, offset, limit int) ([]byte, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve product reference")
	}

	images, err := srv.imageRepo.FindAllByProductID(ctx, productID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product images")
	}

	archive, err := srv.archiver.Archive(images)
	if err != nil {
		return nil, errors.Wrap(err, "failed to archive product images")
	}

	return archive, nil
}

// UpdateImage replaces the image's payload, re-detecting the extension from
// the new bytes.
func (srv *imageService) UpdateImage(ctx context.Context, id uuid.UUID, input *usecase.UpdateImageInput) (*entity.Image, error) {
	var updated *entity.Image

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		imageRepo := repoFactory.ImageRepo()

		image, err := imageRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrImageNotFound) {
				return domainerrors.ErrImageNotFound
			}

			return errors.Wrap(err, "failed to find image for update")
		}

		extension, err := srv.decoder.Sniff(input.Payload)
		if err != nil {
			return err
		}

		image.Extension = extension
		image.Payload = input.Payload

		if err := imageRepo.Update(ctx, image); err != nil {
			return errors.Wrap(err, "failed to update image")
		}

		updated = image

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update image", slog.Any("imageID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Image updated", slog.Any("imageID", id))

	return updated, nil
}

// DeleteImage removes the image row.
func (srv *imageService) DeleteImage(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		imageRepo := repoFactory.ImageRepo()

		image, err := imageRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrImageNotFound) {
				return domainerrors.ErrImageNotFound
			}

			return errors.Wrap(err, "failed to find image for deletion")
		}

		return imageRepo.Delete(ctx, image)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete image", slog.Any("imageID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Image deleted", slog.Any("imageID", id))

	return nil
}
