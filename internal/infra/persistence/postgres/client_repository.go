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

// relationAddress is the registered name for the 1:1 owned address eager load.
const relationAddress = "address"

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	store *store[model.ClientModel]
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		store: newStore[model.ClientModel](db, map[string]relationJoin{
			relationAddress: func(tx *gorm.DB) *gorm.DB { return tx.Preload("Address") },
		}),
	}
}

// Create persists a new client together with its owned address, if any.
// GORM inserts the address first and wires address_id on the client row.
func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.store.create(ctx, clientM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required client information")
		}
		if isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("client creation conflicts with existing data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	// Surface the server-assigned ids on the entity the caller holds.
	client.ID = clientM.ID
	if client.Address != nil && clientM.Address != nil {
		client.Address.ID = clientM.Address.ID
	}

	return nil
}

// FindByID retrieves a single client by id with its address eagerly loaded.
func (repo *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	clientM, err := repo.store.findBy(ctx, "id", id, findOptions{relations: []string{relationAddress}})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by id")
	}

	return toClientDomain(clientM), nil
}

// FindAll returns clients in creation order with optional equality filters on
// name and surname. An empty filter field matches all rows.
func (repo *clientRepository) FindAll(ctx context.Context, filter repository.ClientFilter, offset, limit int) ([]*entity.Client, error) {
	conds := map[string]any{}
	if filter.Name != "" {
		conds["client_name"] = filter.Name
	}
	if filter.Surname != "" {
		conds["client_surname"] = filter.Surname
	}

	clientModels, err := repo.store.findAll(ctx, listQuery{
		offset:    offset,
		limit:     limit,
		relations: []string{relationAddress},
		conds:     conds,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

// Update persists the full state of an already-merged client, address included.
func (repo *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.store.save(ctx, clientM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required client information")
		}
		if isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("client update conflicts with existing data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update client")
	}

	if client.Address != nil && clientM.Address != nil {
		client.Address.ID = clientM.Address.ID
	}

	return nil
}

// Delete removes the client row and, when present, its owned address row.
func (repo *clientRepository) Delete(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.store.delete(ctx, clientM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete client")
	}

	if client.Address != nil && client.Address.ID != uuid.Nil {
		addressM := fromAddressDomain(client.Address)
		if err := repo.store.db.WithContext(ctx).Delete(addressM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to delete client address")
		}
	}

	return nil
}

// --- Mapper Functions ---

// toClientDomain converts a GORM ClientModel to a domain Client entity.
func toClientDomain(data *model.ClientModel) *entity.Client {
	if data == nil {
		return nil
	}

	return &entity.Client{
		ID:               data.ID,
		Name:             data.Name,
		Surname:          data.Surname,
		Birthday:         data.Birthday,
		Gender:           entity.Gender(data.Gender),
		RegistrationDate: data.RegistrationDate,
		Address:          toAddressDomain(data.Address),
	}
}

// fromClientDomain converts a domain Client entity to a GORM ClientModel.
func fromClientDomain(data *entity.Client) *model.ClientModel {
	if data == nil {
		return nil
	}

	clientM := &model.ClientModel{
		ID:               data.ID,
		Name:             data.Name,
		Surname:          data.Surname,
		Birthday:         data.Birthday,
		Gender:           data.Gender.String(),
		RegistrationDate: data.RegistrationDate,
		Address:          fromAddressDomain(data.Address),
	}
	if clientM.Address != nil && clientM.Address.ID != uuid.Nil {
		addressID := clientM.Address.ID
		clientM.AddressID = &addressID
	}

	return clientM
}

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:      data.ID,
		Country: data.Country,
		City:    data.City,
		Street:  data.Street,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:      data.ID,
		Country: data.Country,
		City:    data.City,
		Street:  data.Street,
	}
}
