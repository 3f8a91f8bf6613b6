package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierModel mirrors the 'supplier' table.
type SupplierModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(100);not null"`
	PhoneNumber string     `gorm:"type:varchar(16);not null"`
	AddressID   *uuid.UUID `gorm:"type:uuid"`

	Address  *AddressModel   `gorm:"foreignKey:AddressID"`
	Products []*ProductModel `gorm:"foreignKey:SupplierID"`
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "supplier"
}

// BeforeCreate assigns a time-ordered UUID so the id exists before the row is flushed.
func (m *SupplierModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}

	return nil
}
