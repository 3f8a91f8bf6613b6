package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'product' table. The check constraint backs up the
// application-level stock invariant; available_stock can never go negative.
type ProductModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Category       string    `gorm:"type:varchar(100);not null"`
	Price          float64   `gorm:"type:numeric(12,2);not null"`
	AvailableStock int       `gorm:"not null;check:available_stock >= 0"`
	LastUpdateDate time.Time `gorm:"not null"`
	SupplierID     uuid.UUID `gorm:"type:uuid;not null"`

	Supplier *SupplierModel `gorm:"foreignKey:SupplierID"`
	Images   []*ImageModel  `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "product"
}

// BeforeCreate assigns a time-ordered UUID so the id exists before the row is flushed.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}

	return nil
}
