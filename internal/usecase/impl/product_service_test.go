package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shopapi/internal/domain/entity"
	domainerrors "shopapi/internal/domain/errors"
	"shopapi/internal/domain/repository"
	mockRepo "shopapi/internal/mocks/repository"
	"shopapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: productRepo,
		Logger:      logger,
	})

	return productServiceFixtures{
		service:     service,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.Must(uuid.NewV7())
	input := &usecase.CreateProductInput{
		Name:           "Espresso beans",
		Category:       "coffee",
		Price:          12.5,
		AvailableStock: 40,
		SupplierID:     supplierID,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txSupplierRepo := mockRepo.NewMockSupplierRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().SupplierRepo().Return(txSupplierRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txSupplierRepo.EXPECT().
				FindByID(ctx, supplierID).
				Return(&entity.Supplier{ID: supplierID, Name: "Acme Ltd"}, nil)

			txProductRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(_ context.Context, product *entity.Product) {
					product.ID = uuid.Must(uuid.NewV7())
				}).
				Return(nil)

			return fn(factory)
		})

	product, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, supplierID, product.SupplierID)
	assert.Equal(t, 40, product.AvailableStock)
	assert.False(t, product.LastUpdateDate.IsZero())
}

func TestProductService_CreateProduct_SupplierMissing(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.Must(uuid.NewV7())
	input := &usecase.CreateProductInput{Name: "Espresso beans", SupplierID: supplierID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txSupplierRepo := mockRepo.NewMockSupplierRepository(t)

			factory.EXPECT().SupplierRepo().Return(txSupplierRepo)

			// The product repository is never touched when the supplier
			// reference fails to resolve.
			txSupplierRepo.EXPECT().
				FindByID(ctx, supplierID).
				Return(nil, repository.ErrSupplierNotFound)

			return fn(factory)
		})

	product, err := fx.service.CreateProduct(ctx, input)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())

	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, productID)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_UpdateProduct_ChangedSupplierResolved(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())
	oldSupplierID := uuid.Must(uuid.NewV7())
	newSupplierID := uuid.Must(uuid.NewV7())
	stored := &entity.Product{
		ID:             productID,
		Name:           "Espresso beans",
		SupplierID:     oldSupplierID,
		Supplier:       &entity.Supplier{ID: oldSupplierID},
		AvailableStock: 10,
	}

	input := &usecase.UpdateProductInput{SupplierID: &newSupplierID}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txSupplierRepo := mockRepo.NewMockSupplierRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().SupplierRepo().Return(txSupplierRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(stored, nil)

			txSupplierRepo.EXPECT().
				FindByID(ctx, newSupplierID).
				Return(&entity.Supplier{ID: newSupplierID}, nil)

			txProductRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Product")).
				Return(nil)

			return fn(factory)
		})

	product, err := fx.service.UpdateProduct(ctx, productID, input)
	require.NoError(t, err)
	assert.Equal(t, newSupplierID, product.SupplierID)
	// The stale preloaded supplier is dropped with the reference change.
	assert.Nil(t, product.Supplier)
}

func TestProductService_ReduceStock_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())
	before := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stored := &entity.Product{ID: productID, AvailableStock: 10, LastUpdateDate: before}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByIDForUpdate(ctx, productID).
				Return(stored, nil)

			txProductRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Product")).
				Return(nil)

			return fn(factory)
		})

	product, err := fx.service.ReduceStock(ctx, productID, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, product.AvailableStock)
	assert.True(t, product.LastUpdateDate.After(before))
}

func TestProductService_ReduceStock_Insufficient(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())
	stored := &entity.Product{ID: productID, AvailableStock: 3}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			// Update is never called; the check fails before anything is staged.
			txProductRepo.EXPECT().
				FindByIDForUpdate(ctx, productID).
				Return(stored, nil)

			return fn(factory)
		})

	product, err := fx.service.ReduceStock(ctx, productID, 5)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	// The stored stock stays untouched.
	assert.Equal(t, 3, stored.AvailableStock)

	// The quantities are carried as details for the error response body.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "requested 5, only 3 available", appErr.Details())
}

func TestProductService_ReduceStock_ExactBalance(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())
	stored := &entity.Product{ID: productID, AvailableStock: 5}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByIDForUpdate(ctx, productID).
				Return(stored, nil)

			txProductRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Product")).
				Return(nil)

			return fn(factory)
		})

	product, err := fx.service.ReduceStock(ctx, productID, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, product.AvailableStock)
}

func TestProductService_ReduceStock_NonPositiveAmount(t *testing.T) {
	fx := createTestProductService(t)

	product, err := fx.service.ReduceStock(context.Background(), uuid.Must(uuid.NewV7()), 0)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestProductService_ReduceStock_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByIDForUpdate(ctx, productID).
				Return(nil, repository.ErrProductNotFound)

			return fn(factory)
		})

	product, err := fx.service.ReduceStock(ctx, productID, 1)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.Must(uuid.NewV7())
	stored := &entity.Product{ID: productID, Name: "Espresso beans"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByID(ctx, productID).
				Return(stored, nil)

			txProductRepo.EXPECT().
				Delete(ctx, stored).
				Return(nil)

			return fn(factory)
		})

	require.NoError(t, fx.service.DeleteProduct(ctx, productID))
}
