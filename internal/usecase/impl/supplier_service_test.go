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
	"shopapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// supplierServiceFixtures holds all test dependencies for supplier service tests.
type supplierServiceFixtures struct {
	service      usecase.SupplierUsecase
	txManager    *mockRepo.MockTransactionManager
	supplierRepo *mockRepo.MockSupplierRepository
}

func createTestSupplierService(t *testing.T) supplierServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	supplierRepo := mockRepo.NewMockSupplierRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSupplierService(SupplierServiceParams{
		TxManager:    txManager,
		SupplierRepo: supplierRepo,
		Logger:       logger,
	})

	return supplierServiceFixtures{
		service:      service,
		txManager:    txManager,
		supplierRepo: supplierRepo,
	}
}

func expectSupplierTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, supplierRepo repository.SupplierRepository) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().SupplierRepo().Return(supplierRepo)

			return fn(factory)
		})
}

func TestSupplierService_CreateSupplier_Success(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	input := &usecase.CreateSupplierInput{
		Name:        "Acme Ltd",
		PhoneNumber: "+14155550132",
		Address:     &usecase.AddressInput{Country: "USA", City: "San Francisco", Street: "Market 10"},
	}

	txSupplierRepo := mockRepo.NewMockSupplierRepository(t)
	txSupplierRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Supplier")).
		Run(func(_ context.Context, supplier *entity.Supplier) {
			supplier.ID = uuid.Must(uuid.NewV7())
		}).
		Return(nil)

	expectSupplierTransaction(t, fx.txManager, ctx, txSupplierRepo)

	supplier, err := fx.service.CreateSupplier(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, supplier.ID)
	assert.Equal(t, "Acme Ltd", supplier.Name)
	assert.Equal(t, "+14155550132", supplier.PhoneNumber)
	require.NotNil(t, supplier.Address)
	assert.Equal(t, "San Francisco", supplier.Address.City)
}

func TestSupplierService_GetSupplier_NotFound(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	supplierID := uuid.Must(uuid.NewV7())

	fx.supplierRepo.EXPECT().
		FindByID(ctx, supplierID).
		Return(nil, repository.ErrSupplierNotFound)

	supplier, err := fx.service.GetSupplier(ctx, supplierID)
	assert.Nil(t, supplier)
	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}

func TestSupplierService_ListSuppliers_PassesFilter(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	expected := []*entity.Supplier{{ID: uuid.Must(uuid.NewV7()), Name: "Acme Ltd"}}

	fx.supplierRepo.EXPECT().
		FindAll(ctx, repository.SupplierFilter{Name: "Acme Ltd"}, 0, 100).
		Return(expected, nil)

	suppliers, err := fx.service.ListSuppliers(ctx, usecase.ListSuppliersQuery{Name: "Acme Ltd", Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, expected, suppliers)
}

func TestSupplierService_UpdateSupplier_PartialMerge(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	supplierID := uuid.Must(uuid.NewV7())
	stored := &entity.Supplier{ID: supplierID, Name: "Acme Ltd", PhoneNumber: "+14155550132"}

	newPhone := "+14155550199"
	input := &usecase.UpdateSupplierInput{PhoneNumber: &newPhone}

	txSupplierRepo := mockRepo.NewMockSupplierRepository(t)
	txSupplierRepo.EXPECT().
		FindByID(ctx, supplierID).
		Return(stored, nil)
	txSupplierRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Supplier")).
		Return(nil)

	expectSupplierTransaction(t, fx.txManager, ctx, txSupplierRepo)

	supplier, err := fx.service.UpdateSupplier(ctx, supplierID, input)
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", supplier.Name)
	assert.Equal(t, newPhone, supplier.PhoneNumber)
}

func TestSupplierService_DeleteSupplier_StillOwnsProducts(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	supplierID := uuid.Must(uuid.NewV7())
	stored := &entity.Supplier{ID: supplierID, Name: "Acme Ltd"}

	txSupplierRepo := mockRepo.NewMockSupplierRepository(t)
	txSupplierRepo.EXPECT().
		FindByID(ctx, supplierID).
		Return(stored, nil)
	txSupplierRepo.EXPECT().
		Delete(ctx, stored).
		Return(domainerrors.ErrConflict)

	expectSupplierTransaction(t, fx.txManager, ctx, txSupplierRepo)

	err := fx.service.DeleteSupplier(ctx, supplierID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestSupplierService_DeleteSupplier_Success(t *testing.T) {
	fx := createTestSupplierService(t)

	ctx := context.Background()
	supplierID := uuid.Must(uuid.NewV7())
	stored := &entity.Supplier{ID: supplierID, Name: "Acme Ltd"}

	txSupplierRepo := mockRepo.NewMockSupplierRepository(t)
	txSupplierRepo.EXPECT().
		FindByID(ctx, supplierID).
		Return(stored, nil)
	txSupplierRepo.EXPECT().
		Delete(ctx, stored).
		Return(nil)

	expectSupplierTransaction(t, fx.txManager, ctx, txSupplierRepo)

	require.NoError(t, fx.service.DeleteSupplier(ctx, supplierID))
}
