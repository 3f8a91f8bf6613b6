package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"shopapi/internal/domain/entity"
	domainerrors "shopapi/internal/domain/errors"
	"shopapi/internal/domain/repository"
	mockRepo "shopapi/internal/mocks/repository"
	mockSvc "shopapi/internal/mocks/service"
	"shopapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// imageServiceFixtures holds all test dependencies for image service tests.
type imageServiceFixtures struct {
	service     usecase.ImageUsecase
	txManager   *mockRepo.MockTransactionManager
	imageRepo   *mockRepo.MockImageRepository
	productRepo *mockRepo.MockProductRepository
	decoder     *mockSvc.MockImageDecoder
	archiver    *mockSvc.MockImageArchiver
}

func createTestImageService(t *testing.T) imageServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	imageRepo := mockRepo.NewMockImageRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	decoder := mockSvc.NewMockImageDecoder(t)
	archiver := mockSvc.NewMockImageArchiver(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewImageService(ImageServiceParams{
		TxManager:   txManager,
		ImageRepo:   imageRepo,
		ProductRepo: productRepo,
		Decoder:     decoder,
		Archiver:    archiver,
		Logger:      logger,
	})

	return imageServiceFixtures{
		service:     service,
		txManager:   txManager,
		imageRepo:   imageRepo,
		productRepo: productRepo,
		decoder:     decoder,
		archiver:    archiver,
	}
}

func TestImageService_CreateImage_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())
	payload := []byte{0x89, 'P', 'N', 'G'}

	fx.decoder.EXPECT().Sniff(payload).Return("png", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txImageRepo := mockRepo.NewMockImageRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().ImageRepo().Return(txImageRepo)

			txProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(&entity.Product{ID: productID}, nil)

			txImageRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Image")).
				Run(func(_ context.Context, image *entity.Image) {
					image.ID = uuid.Must(uuid.NewV7())
				}).
				Return(nil)

			return fn(factory)
		})

	image, err := fx.service.CreateImage(ctx, &usecase.CreateImageInput{ProductID: productID, Payload: payload})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, image.ID)
	assert.Equal(t, productID, image.ProductID)
	assert.Equal(t, "png", image.Extension)
	assert.Equal(t, payload, image.Payload)
}

func TestImageService_CreateImage_ProductMissing(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			// The payload is never sniffed and no image row is staged.
			txProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(nil, repository.ErrProductNotFound)

			return fn(factory)
		})

	image, err := fx.service.CreateImage(ctx, &usecase.CreateImageInput{ProductID: productID, Payload: []byte("x")})
	assert.Nil(t, image)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestImageService_CreateImage_InvalidPayload(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())
	payload := []byte("not an image")

	fx.decoder.EXPECT().Sniff(payload).Return("", domainerrors.ErrInvalidImage)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(&entity.Product{ID: productID}, nil)

			return fn(factory)
		})

	image, err := fx.service.CreateImage(ctx, &usecase.CreateImageInput{ProductID: productID, Payload: payload})
	assert.Nil(t, image)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestImageService_GetImage_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	imageID := uuid.Must(uuid.NewV7())
	expected := &entity.Image{ID: imageID, Extension: "png", Payload: []byte("bytes")}

	fx.imageRepo.EXPECT().
		FindByID(ctx, imageID).
		Return(expected, nil)

	image, err := fx.service.GetImage(ctx, imageID)
	require.NoError(t, err)
	assert.Equal(t, expected, image)
}

func TestImageService_GetProductImagesArchive_Success(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())
	images := []*entity.Image{
		{ID: uuid.Must(uuid.NewV7()), ProductID: productID, Extension: "png"},
		{ID: uuid.Must(uuid.NewV7()), ProductID: productID, Extension: "jpg"},
	}
	blob := []byte("zip-bytes")

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)

	fx.imageRepo.EXPECT().
		FindAllByProductID(ctx, productID, 0, 100).
		Return(images, nil)

	fx.archiver.EXPECT().Archive(images).Return(blob, nil)

	archive, err := fx.service.GetProductImagesArchive(ctx, productID, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, blob, archive)
}

func TestImageService_GetProductImagesArchive_ProductMissing(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	archive, err := fx.service.GetProductImagesArchive(ctx, productID, 0, 100)
	assert.Nil(t, archive)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestImageService_UpdateImage_ReplacesPayload(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	imageID := uuid.Must(uuid.NewV7())
	stored := &entity.Image{ID: imageID, Extension: "png", Payload: []byte("old")}
	newPayload := []byte{0xFF, 0xD8, 0xFF}

	fx.decoder.EXPECT().Sniff(newPayload).Return("jpg", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txImageRepo := mockRepo.NewMockImageRepository(t)

			factory.EXPECT().ImageRepo().Return(txImageRepo)

			txImageRepo.EXPECT().
				FindByID(ctx, imageID).
				Return(stored, nil)

			txImageRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Image")).
				Return(nil)

			return fn(factory)
		})

	image, err := fx.service.UpdateImage(ctx, imageID, &usecase.UpdateImageInput{Payload: newPayload})
	require.NoError(t, err)
	assert.Equal(t, "jpg", image.Extension)
	assert.Equal(t, newPayload, image.Payload)
}

func TestImageService_DeleteImage_NotFound(t *testing.T) {
	fx := createTestImageService(t)

	ctx := context.Background()
	imageID := uuid.Must(uuid.NewV7())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txImageRepo := mockRepo.NewMockImageRepository(t)

			factory.EXPECT().ImageRepo().Return(txImageRepo)

			txImageRepo.EXPECT().
				FindByID(ctx, imageID).
				Return(nil, repository.ErrImageNotFound)

			return fn(factory)
		})

	err := fx.service.DeleteImage(ctx, imageID)
	assert.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}
