// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is a registered customer of the shop.
type Client struct {
	ID               uuid.UUID // Time-ordered UUID assigned at creation, never client-supplied.
	Name             string    // Given name.
	Surname          string    // Family name.
	Birthday         time.Time // Date of birth; only the date part is significant.
	Gender           Gender    // Enumerated gender declaration.
	RegistrationDate time.Time // Set once at creation and immutable afterwards.
	Address          *Address  // Optional owned address. Nil when the client has none.
}
