// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shopapi/internal/domain/entity"
	"shopapi/internal/errors"

	"github.com/google/uuid"
)

// ErrClientNotFound is returned when no client row matches the requested id.
var ErrClientNotFound = errors.New("client not found")

// ClientFilter narrows a client listing. Zero-value fields mean "match all".
type ClientFilter struct {
	Name    string
	Surname string
}

// ClientRepository defines the standard operations for client persistence.
// The application layer depends on this interface, not the concrete implementation.
type ClientRepository interface {
	// Create persists a new client, together with its owned address when present.
	// The client's id and registration date are written back onto the entity.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a single client by id with its address eagerly loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindAll returns clients in creation order, skipping offset rows and
	// returning at most limit, with addresses eagerly loaded.
	FindAll(ctx context.Context, filter ClientFilter, offset, limit int) ([]*entity.Client, error)

	// Update persists the current state of an already-merged client entity,
	// including its owned address.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes the client row and its owned address.
	Delete(ctx context.Context, client *entity.Client) error
}
