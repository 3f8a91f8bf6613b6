// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// Address is a value-like sub-entity describing a physical location.
// It is always owned by a Client or a Supplier and is created, updated and
// deleted together with its owner; it is never addressed on its own through
// the public contract.
type Address struct {
	ID      uuid.UUID // The unique identifier for the address row.
	Country string    // Country name.
	City    string    // City name.
	Street  string    // Street line, including the house number.
}
