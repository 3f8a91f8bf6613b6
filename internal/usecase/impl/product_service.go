package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "shopapi/internal/delivery/context"
	"shopapi/internal/domain/entity"
	domainerrors "shopapi/internal/domain/errors"
	"shopapi/internal/domain/repository"
	"shopapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct registers a new product. The supplier reference is resolved
// inside the same transaction before the product row is staged, so a missing
// supplier fails with supplier-not-found rather than a raw constraint error.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:           input.Name,
		Category:       input.Category,
		Price:          input.Price,
		AvailableStock: input.AvailableStock,
		LastUpdateDate: time.Now().UTC(),
		SupplierID:     input.SupplierID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := resolveSupplier(ctx, repoFactory, input.SupplierID); err != nil {
			return err
		}

		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// GetProduct retrieves a product by id with its supplier loaded.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// ListProducts returns products in creation order with an optional exact name filter.
func (srv *productService) ListProducts(ctx context.Context, query usecase.ListProductsQuery) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx, repository.ProductFilter{Name: query.Name}, query.Offset, query.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct applies a partial update. A changed supplier reference is
// resolved before the row is staged; every successful update refreshes the
// last update date.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product for update")
		}

		if input.SupplierID != nil && *input.SupplierID != product.SupplierID {
			if err := resolveSupplier(ctx, repoFactory, *input.SupplierID); err != nil {
				return err
			}
			product.SupplierID = *input.SupplierID
			// The preloaded supplier no longer matches the new reference.
			product.Supplier = nil
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.AvailableStock != nil {
			product.AvailableStock = *input.AvailableStock
		}
		product.LastUpdateDate = time.Now().UTC()

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Product updated", slog.Any("productID", id))

	return updated, nil
}

// ReduceStock atomically subtracts amount units from the product's stock.
// The row is read under a FOR UPDATE lock held to the end of the transaction,
// so concurrent reductions serialize and the check below cannot race. An
// insufficient balance fails before anything is staged, leaving the
// transaction valid.
func (srv *productService) ReduceStock(ctx context.Context, id uuid.UUID, amount int) (*entity.Product, error) {
	if amount <= 0 {
		return nil, domainerrors.ErrValidation.WrapMessage("amount to reduce must be positive")
	}

	var updated *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to lock product row")
		}

		if product.AvailableStock < amount {
			// WithDetails so the quantities reach the client in the error body.
			return domainerrors.ErrInsufficientStock.WithDetails(
				fmt.Sprintf("requested %d, only %d available", amount, product.AvailableStock))
		}

		product.AvailableStock -= amount
		product.LastUpdateDate = time.Now().UTC()

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to persist stock reduction")
		}

		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to reduce stock", slog.Any("productID", id), slog.Int("amount", amount), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Stock reduced", slog.Any("productID", id), slog.Int("amount", amount), slog.Int("remaining", updated.AvailableStock))

	return updated, nil
}

// DeleteProduct removes the product row.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product for deletion")
		}

		return productRepo.Delete(ctx, product)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Product deleted", slog.Any("productID", id))

	return nil
}

// resolveSupplier confirms the supplier reference exists within the current
// transaction.
func resolveSupplier(ctx context.Context, repoFactory repository.RepositoryFactory, supplierID uuid.UUID) error {
	if _, err := repoFactory.SupplierRepo().FindByID(ctx, supplierID); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return domainerrors.ErrSupplierNotFound
		}

		return errors.Wrap(err, "failed to resolve supplier reference")
	}

	return nil
}
