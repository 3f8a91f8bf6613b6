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

// supplierRepository implements the repository.SupplierRepository interface.
type supplierRepository struct {
	store *store[model.SupplierModel]
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{
		store: newStore[model.SupplierModel](db, map[string]relationJoin{
			relationAddress: func(tx *gorm.DB) *gorm.DB { return tx.Preload("Address") },
		}),
	}
}

// Create persists a new supplier together with its owned address, if any.
func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.store.create(ctx, supplierM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required supplier information")
		}
		if isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("supplier creation conflicts with existing data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	supplier.ID = supplierM.ID
	if supplier.Address != nil && supplierM.Address != nil {
		supplier.Address.ID = supplierM.Address.ID
	}

	return nil
}

// FindByID retrieves a single supplier by id with its address eagerly loaded.
func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplierM, err := repo.store.findBy(ctx, "id", id, findOptions{relations: []string{relationAddress}})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by id")
	}

	return toSupplierDomain(supplierM), nil
}

// FindAll returns suppliers in creation order with an optional equality filter on name.
func (repo *supplierRepository) FindAll(ctx context.Context, filter repository.SupplierFilter, offset, limit int) ([]*entity.Supplier, error) {
	conds := map[string]any{}
	if filter.Name != "" {
		conds["name"] = filter.Name
	}

	supplierModels, err := repo.store.findAll(ctx, listQuery{
		offset:    offset,
		limit:     limit,
		relations: []string{relationAddress},
		conds:     conds,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, nil
}

// Update persists the full state of an already-merged supplier, address included.
func (repo *supplierRepository) Update(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.store.save(ctx, supplierM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required supplier information")
		}
		if isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("supplier update conflicts with existing data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update supplier")
	}

	if supplier.Address != nil && supplierM.Address != nil {
		supplier.Address.ID = supplierM.Address.ID
	}

	return nil
}

// Delete removes the supplier row and, when present, its owned address row.
// Products referencing the supplier are protected by the foreign key; the
// database rejects the delete while any remain.
func (repo *supplierRepository) Delete(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.store.delete(ctx, supplierM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("supplier still owns products")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete supplier")
	}

	if supplier.Address != nil && supplier.Address.ID != uuid.Nil {
		addressM := fromAddressDomain(supplier.Address)
		if err := repo.store.db.WithContext(ctx).Delete(addressM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete supplier address")
		}
	}

	return nil
}

// --- Mapper Functions ---

// toSupplierDomain converts a GORM SupplierModel to a domain Supplier entity.
func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		ID:          data.ID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		Address:     toAddressDomain(data.Address),
	}
}

// fromSupplierDomain converts a domain Supplier entity to a GORM SupplierModel.
func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	supplierM := &model.SupplierModel{
		ID:          data.ID,
		Name:        data.Name,
		PhoneNumber: data.PhoneNumber,
		Address:     fromAddressDomain(data.Address),
	}
	if supplierM.Address != nil && supplierM.Address.ID != uuid.Nil {
		addressID := supplierM.Address.ID
		supplierM.AddressID = &addressID
	}

	return supplierM
}
