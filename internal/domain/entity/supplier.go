// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// Supplier is a vendor that owns zero or more products.
type Supplier struct {
	ID          uuid.UUID // Time-ordered UUID assigned at creation.
	Name        string    // Company or trading name.
	PhoneNumber string    // Contact number in E.164 format, e.g. "+14155550132".
	Address     *Address  // Optional owned address. Nil when the supplier has none.
}
