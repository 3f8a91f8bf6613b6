package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopapi/internal/delivery/context"
	"shopapi/internal/domain/entity"
	domainerrors "shopapi/internal/domain/errors"
	"shopapi/internal/domain/repository"
	"shopapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// supplierService implements the SupplierUsecase interface.
type supplierService struct {
	txManager    repository.TransactionManager
	supplierRepo repository.SupplierRepository
	logger       *slog.Logger
}

// SupplierServiceParams holds dependencies for SupplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SupplierRepo repository.SupplierRepository
	Logger       *slog.Logger
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(params SupplierServiceParams) usecase.SupplierUsecase {
	return &supplierService{
		txManager:    params.TxManager,
		supplierRepo: params.SupplierRepo,
		logger:       params.Logger,
	}
}

func (srv *supplierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSupplier registers a new supplier together with its owned address, if any.
func (srv *supplierService) CreateSupplier(ctx context.Context, input *usecase.CreateSupplierInput) (*entity.Supplier, error) {
	supplier := &entity.Supplier{
		Name:        input.Name,
		PhoneNumber: input.PhoneNumber,
		Address:     addressFromInput(input.Address),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SupplierRepo().Create(ctx, supplier)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create supplier", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute supplier creation transaction")
	}

	srv.log(ctx).Debug("Supplier created", slog.Any("supplierID", supplier.ID))

	return supplier, nil
}

// GetSupplier retrieves a supplier by id with its address loaded.
func (srv *supplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := srv.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to get supplier")
	}

	return supplier, nil
}

// ListSuppliers returns suppliers in creation order with an optional exact name filter.
func (srv *supplierService) ListSuppliers(ctx context.Context, query usecase.ListSuppliersQuery) ([]*entity.Supplier, error) {
	suppliers, err := srv.supplierRepo.FindAll(ctx, repository.SupplierFilter{Name: query.Name}, query.Offset, query.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	return suppliers, nil
}

// UpdateSupplier applies a partial update. Fields absent from the input keep
// their stored value.
func (srv *supplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *usecase.UpdateSupplierInput) (*entity.Supplier, error) {
	var updated *entity.Supplier

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.SupplierRepo()

		supplier, err := supplierRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound
			}

			return errors.Wrap(err, "failed to find supplier for update")
		}

		if input.Name != nil {
			supplier.Name = *input.Name
		}
		if input.PhoneNumber != nil {
			supplier.PhoneNumber = *input.PhoneNumber
		}
		if input.Address != nil {
			mergeOwnedAddress(&supplier.Address, input.Address)
		}

		if err := supplierRepo.Update(ctx, supplier); err != nil {
			return errors.Wrap(err, "failed to update supplier")
		}

		updated = supplier

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update supplier", slog.Any("supplierID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Supplier updated", slog.Any("supplierID", id))

	return updated, nil
}

// DeleteSupplier removes the supplier and its owned address. A supplier that
// still owns products fails with a conflict instead of cascading.
func (srv *supplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.SupplierRepo()

		supplier, err := supplierRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrSupplierNotFound) {
				return domainerrors.ErrSupplierNotFound
			}

			return errors.Wrap(err, "failed to find supplier for deletion")
		}

		return supplierRepo.Delete(ctx, supplier)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete supplier", slog.Any("supplierID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Supplier deleted", slog.Any("supplierID", id))

	return nil
}
