// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
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

// clientService implements the ClientUsecase interface.
type clientService struct {
	txManager  repository.TransactionManager
	clientRepo repository.ClientRepository
	logger     *slog.Logger
}

// ClientServiceParams holds dependencies for ClientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ClientRepo repository.ClientRepository
	Logger     *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		txManager:  params.TxManager,
		clientRepo: params.ClientRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateClient registers a new client together with its owned address, if any.
// The registration date is assigned here and never changes afterwards.
func (srv *clientService) CreateClient(ctx context.Context, input *usecase.CreateClientInput) (*entity.Client, error) {
	client := &entity.Client{
		Name:             input.Name,
		Surname:          input.Surname,
		Birthday:         input.Birthday,
		Gender:           input.Gender,
		RegistrationDate: time.Now().UTC(),
		Address:          addressFromInput(input.Address),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ClientRepo().Create(ctx, client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create client", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute client creation transaction")
	}

	srv.log(ctx).Debug("Client created", slog.Any("clientID", client.ID))

	return client, nil
}

// GetClient retrieves a client by id with its address loaded.
func (srv *clientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := srv.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to get client")
	}

	return client, nil
}

// ListClients returns clients in creation order with optional exact filters.
func (srv *clientService) ListClients(ctx context.Context, query usecase.ListClientsQuery) ([]*entity.Client, error) {
	filter := repository.ClientFilter{Name: query.Name, Surname: query.Surname}

	clients, err := srv.clientRepo.FindAll(ctx, filter, query.Offset, query.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	return clients, nil
}

// UpdateClient applies a partial update. Fields absent from the input keep
// their stored value; the registration date is never touched.
func (srv *clientService) UpdateClient(ctx context.Context, id uuid.UUID, input *usecase.UpdateClientInput) (*entity.Client, error) {
	var updated *entity.Client

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		client, err := clientRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to find client for update")
		}

		mergeClientUpdate(client, input)

		if err := clientRepo.Update(ctx, client); err != nil {
			return errors.Wrap(err, "failed to update client")
		}

		updated = client

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update client", slog.Any("clientID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Client updated", slog.Any("clientID", id))

	return updated, nil
}

// DeleteClient removes the client and its owned address.
func (srv *clientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		clientRepo := repoFactory.ClientRepo()

		client, err := clientRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to find client for deletion")
		}

		return clientRepo.Delete(ctx, client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete client", slog.Any("clientID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Client deleted", slog.Any("clientID", id))

	return nil
}

// mergeClientUpdate copies the set fields of the input onto the stored client.
func mergeClientUpdate(client *entity.Client, input *usecase.UpdateClientInput) {
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Surname != nil {
		client.Surname = *input.Surname
	}
	if input.Birthday != nil {
		client.Birthday = *input.Birthday
	}
	if input.Gender != nil {
		client.Gender = *input.Gender
	}
	if input.Address != nil {
		mergeOwnedAddress(&client.Address, input.Address)
	}
}

// mergeOwnedAddress overwrites the owned address fields, creating the address
// when the owner had none. The existing address row keeps its id.
func mergeOwnedAddress(target **entity.Address, input *usecase.AddressInput) {
	if *target == nil {
		*target = &entity.Address{}
	}
	(*target).Country = input.Country
	(*target).City = input.City
	(*target).Street = input.Street
}

// addressFromInput builds an owned address entity from its input, nil-safe.
func addressFromInput(input *usecase.AddressInput) *entity.Address {
	if input == nil {
		return nil
	}

	return &entity.Address{
		Country: input.Country,
		City:    input.City,
		Street:  input.Street,
	}
}
