// Package usecase defines the application's use case interfaces and their
// input/output types. Handlers depend on these interfaces, never on the
// concrete services in impl.
package usecase

import (
	"context"
	"time"

	"shopapi/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput carries the fields of an owned address. It is shared by the
// client and supplier use cases because both own addresses the same way.
type AddressInput struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Street  string `json:"street"`
}

// CreateClientInput carries the fields for registering a new client.
type CreateClientInput struct {
	Name     string        `json:"client_name"`
	Surname  string        `json:"client_surname"`
	Birthday time.Time     `json:"birthday"`
	Gender   entity.Gender `json:"gender"`
	Address  *AddressInput `json:"address,omitempty"`
}

// UpdateClientInput carries a partial client update. Nil fields were absent
// from the request and keep their stored value.
type UpdateClientInput struct {
	Name     *string        `json:"client_name,omitempty"`
	Surname  *string        `json:"client_surname,omitempty"`
	Birthday *time.Time     `json:"birthday,omitempty"`
	Gender   *entity.Gender `json:"gender,omitempty"`
	Address  *AddressInput  `json:"address,omitempty"`
}

// ListClientsQuery narrows and pages a client listing.
type ListClientsQuery struct {
	Name    string
	Surname string
	Offset  int
	Limit   int
}

// ClientUsecase defines the client management use cases.
type ClientUsecase interface {
	// CreateClient registers a new client, together with its owned address
	// when one is given. The registration date is set here and never changes.
	CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error)

	// GetClient retrieves a client by id with its address loaded.
	GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// ListClients returns clients in creation order, optionally filtered by
	// exact name and surname.
	ListClients(ctx context.Context, query ListClientsQuery) ([]*entity.Client, error)

	// UpdateClient applies a partial update; fields absent from the input keep
	// their stored value.
	UpdateClient(ctx context.Context, id uuid.UUID, input *UpdateClientInput) (*entity.Client, error)

	// DeleteClient removes the client and its owned address.
	DeleteClient(ctx context.Context, id uuid.UUID) error
}
