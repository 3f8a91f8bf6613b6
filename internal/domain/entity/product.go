// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item of stock offered by exactly one supplier.
type Product struct {
	ID             uuid.UUID // Time-ordered UUID assigned at creation.
	Name           string    // Product name.
	Category       string    // Free-form category label.
	Price          float64   // Unit price in the shop currency.
	AvailableStock int       // Units on hand; never negative.
	LastUpdateDate time.Time // Refreshed on every successful mutation of the product.
	SupplierID     uuid.UUID // The supplier that owns this product; must reference an existing supplier.
	Supplier       *Supplier // Loaded when the "supplier" relation is requested, nil otherwise.
}
