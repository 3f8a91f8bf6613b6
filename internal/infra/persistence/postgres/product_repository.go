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

// relationSupplier is the registered name for the owning-supplier eager load.
const relationSupplier = "supplier"

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	store *store[model.ProductModel]
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		store: newStore[model.ProductModel](db, map[string]relationJoin{
			relationSupplier: func(tx *gorm.DB) *gorm.DB { return tx.Preload("Supplier").Preload("Supplier.Address") },
		}),
	}
}

// Create persists a new product. The usecase resolves the supplier reference
// first; a foreign-key violation here means the supplier vanished in between.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.store.create(ctx, productM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required product information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("product stock cannot be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// FindByID retrieves a single product by id with its supplier eagerly loaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	productM, err := repo.store.findBy(ctx, "id", id, findOptions{relations: []string{relationSupplier}})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(productM), nil
}

// FindByIDForUpdate retrieves the bare product row under a FOR UPDATE lock.
// No relations are joined; the lock is held until the enclosing transaction
// resolves, which serializes concurrent stock reductions on the row.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	productM, err := repo.store.findBy(ctx, "id", id, findOptions{forUpdate: true})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to lock product for update")
	}

	return toProductDomain(productM), nil
}

// FindAll returns products in creation order with an optional equality filter on name.
func (repo *productRepository) FindAll(ctx context.Context, filter repository.ProductFilter, offset, limit int) ([]*entity.Product, error) {
	conds := map[string]any{}
	if filter.Name != "" {
		conds["name"] = filter.Name
	}

	productModels, err := repo.store.findAll(ctx, listQuery{
		offset:    offset,
		limit:     limit,
		relations: []string{relationSupplier},
		conds:     conds,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update persists the full state of an already-merged product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.store.save(ctx, productM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInsufficientStock.WrapMessage("stock update went negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return nil
}

// Delete removes the product row. Its images are dropped by the cascade on
// image.product_id.
func (repo *productRepository) Delete(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.store.delete(ctx, productM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Category:       data.Category,
		Price:          data.Price,
		AvailableStock: data.AvailableStock,
		LastUpdateDate: data.LastUpdateDate,
		SupplierID:     data.SupplierID,
		Supplier:       toSupplierDomain(data.Supplier),
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
// The Supplier association is deliberately left nil so saves never touch the
// supplier row; only supplier_id is written.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		Category:       data.Category,
		Price:          data.Price,
		AvailableStock: data.AvailableStock,
		LastUpdateDate: data.LastUpdateDate,
		SupplierID:     data.SupplierID,
	}
}
