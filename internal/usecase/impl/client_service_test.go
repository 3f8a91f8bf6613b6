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

// clientServiceFixtures holds all test dependencies for client service tests.
type clientServiceFixtures struct {
	service    usecase.ClientUsecase
	txManager  *mockRepo.MockTransactionManager
	clientRepo *mockRepo.MockClientRepository
}

func createTestClientService(t *testing.T) clientServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	clientRepo := mockRepo.NewMockClientRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewClientService(ClientServiceParams{
		TxManager:  txManager,
		ClientRepo: clientRepo,
		Logger:     logger,
	})

	return clientServiceFixtures{
		service:    service,
		txManager:  txManager,
		clientRepo: clientRepo,
	}
}

// expectTransaction makes the transaction manager run the closure against a
// factory handing out the given client repository.
func expectClientTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, clientRepo repository.ClientRepository) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().ClientRepo().Return(clientRepo)

			return fn(factory)
		})
}

func TestClientService_CreateClient_WithAddress(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	input := &usecase.CreateClientInput{
		Name:     "Anna",
		Surname:  "Kovacs",
		Birthday: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:   entity.GenderFemale,
		Address: &usecase.AddressInput{
			Country: "Hungary",
			City:    "Budapest",
			Street:  "Main street 1",
		},
	}

	txClientRepo := mockRepo.NewMockClientRepository(t)
	txClientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Client")).
		Run(func(_ context.Context, client *entity.Client) {
			client.ID = uuid.Must(uuid.NewV7())
			client.Address.ID = uuid.Must(uuid.NewV7())
		}).
		Return(nil)

	expectClientTransaction(t, fx.txManager, ctx, txClientRepo)

	client, err := fx.service.CreateClient(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NotEqual(t, uuid.Nil, client.ID)
	assert.Equal(t, "Anna", client.Name)
	assert.Equal(t, entity.GenderFemale, client.Gender)
	assert.False(t, client.RegistrationDate.IsZero())
	require.NotNil(t, client.Address)
	assert.NotEqual(t, uuid.Nil, client.Address.ID)
	assert.Equal(t, "Budapest", client.Address.City)
}

func TestClientService_CreateClient_WithoutAddress(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	input := &usecase.CreateClientInput{
		Name:     "Peter",
		Surname:  "Nagy",
		Birthday: time.Date(1985, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:   entity.GenderMale,
	}

	txClientRepo := mockRepo.NewMockClientRepository(t)
	txClientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Client")).
		Return(nil)

	expectClientTransaction(t, fx.txManager, ctx, txClientRepo)

	client, err := fx.service.CreateClient(ctx, input)
	require.NoError(t, err)
	assert.Nil(t, client.Address)
}

func TestClientService_GetClient_Success(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.Must(uuid.NewV7())
	expected := &entity.Client{ID: clientID, Name: "Anna", Surname: "Kovacs"}

	fx.clientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(expected, nil)

	client, err := fx.service.GetClient(ctx, clientID)
	require.NoError(t, err)
	assert.Equal(t, expected, client)
}

func TestClientService_GetClient_NotFound(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.Must(uuid.NewV7())

	fx.clientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(nil, repository.ErrClientNotFound)

	client, err := fx.service.GetClient(ctx, clientID)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
}

func TestClientService_ListClients_PassesFilter(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	expected := []*entity.Client{{ID: uuid.Must(uuid.NewV7()), Name: "Anna"}}

	fx.clientRepo.EXPECT().
		FindAll(ctx, repository.ClientFilter{Name: "Anna", Surname: "Kovacs"}, 10, 50).
		Return(expected, nil)

	clients, err := fx.service.ListClients(ctx, usecase.ListClientsQuery{
		Name:    "Anna",
		Surname: "Kovacs",
		Offset:  10,
		Limit:   50,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, clients)
}

func TestClientService_UpdateClient_PartialMerge(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.Must(uuid.NewV7())
	registered := time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)
	stored := &entity.Client{
		ID:               clientID,
		Name:             "Anna",
		Surname:          "Kovacs",
		Birthday:         time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:           entity.GenderFemale,
		RegistrationDate: registered,
	}

	newSurname := "Szabo"
	input := &usecase.UpdateClientInput{Surname: &newSurname}

	txClientRepo := mockRepo.NewMockClientRepository(t)
	txClientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(stored, nil)
	txClientRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Client")).
		Return(nil)

	expectClientTransaction(t, fx.txManager, ctx, txClientRepo)

	client, err := fx.service.UpdateClient(ctx, clientID, input)
	require.NoError(t, err)
	// Only the surname changes; everything else keeps its stored value.
	assert.Equal(t, "Anna", client.Name)
	assert.Equal(t, "Szabo", client.Surname)
	assert.Equal(t, entity.GenderFemale, client.Gender)
	assert.Equal(t, registered, client.RegistrationDate)
	assert.Nil(t, client.Address)
}

func TestClientService_UpdateClient_AddsAddress(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.Must(uuid.NewV7())
	stored := &entity.Client{ID: clientID, Name: "Anna", Surname: "Kovacs"}

	input := &usecase.UpdateClientInput{
		Address: &usecase.AddressInput{Country: "Hungary", City: "Szeged", Street: "Side street 2"},
	}

	txClientRepo := mockRepo.NewMockClientRepository(t)
	txClientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(stored, nil)
	txClientRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Client")).
		Return(nil)

	expectClientTransaction(t, fx.txManager, ctx, txClientRepo)

	client, err := fx.service.UpdateClient(ctx, clientID, input)
	require.NoError(t, err)
	require.NotNil(t, client.Address)
	assert.Equal(t, "Szeged", client.Address.City)
}

func TestClientService_UpdateClient_OverwritesExistingAddressKeepingID(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.Must(uuid.NewV7())
	addressID := uuid.Must(uuid.NewV7())
	stored := &entity.Client{
		ID:      clientID,
		Name:    "Anna",
		Address: &entity.Address{ID: addressID, Country: "Hungary", City: "Budapest", Street: "Main street 1"},
	}

	input := &usecase.UpdateClientInput{
		Address: &usecase.AddressInput{Country: "Hungary", City: "Debrecen", Street: "Other street 3"},
	}

	txClientRepo := mockRepo.NewMockClientRepository(t)
	txClientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(stored, nil)
	txClientRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Client")).
		Return(nil)

	expectClientTransaction(t, fx.txManager, ctx, txClientRepo)

	client, err := fx.service.UpdateClient(ctx, clientID, input)
	require.NoError(t, err)
	require.NotNil(t, client.Address)
	assert.Equal(t, addressID, client.Address.ID)
	assert.Equal(t, "Debrecen", client.Address.City)
}

func TestClientService_UpdateClient_NotFound(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.Must(uuid.NewV7())

	txClientRepo := mockRepo.NewMockClientRepository(t)
	txClientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(nil, repository.ErrClientNotFound)

	expectClientTransaction(t, fx.txManager, ctx, txClientRepo)

	client, err := fx.service.UpdateClient(ctx, clientID, &usecase.UpdateClientInput{})
	assert.Nil(t, client)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
}

func TestClientService_DeleteClient_Success(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.Must(uuid.NewV7())
	stored := &entity.Client{ID: clientID, Name: "Anna"}

	txClientRepo := mockRepo.NewMockClientRepository(t)
	txClientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(stored, nil)
	txClientRepo.EXPECT().
		Delete(ctx, stored).
		Return(nil)

	expectClientTransaction(t, fx.txManager, ctx, txClientRepo)

	err := fx.service.DeleteClient(ctx, clientID)
	require.NoError(t, err)
}

func TestClientService_DeleteClient_NotFound(t *testing.T) {
	fx := createTestClientService(t)

	ctx := context.Background()
	clientID := uuid.Must(uuid.NewV7())

	txClientRepo := mockRepo.NewMockClientRepository(t)
	txClientRepo.EXPECT().
		FindByID(ctx, clientID).
		Return(nil, repository.ErrClientNotFound)

	expectClientTransaction(t, fx.txManager, ctx, txClientRepo)

	err := fx.service.DeleteClient(ctx, clientID)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
}
