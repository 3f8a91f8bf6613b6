// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddressModel mirrors the 'address' table. Rows are owned 1:1 by a client or
// a supplier through their address_id columns and never live on their own.
type AddressModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Country string    `gorm:"type:varchar(100);not null"`
	City    string    `gorm:"type:varchar(100);not null"`
	Street  string    `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "address"
}

// BeforeCreate assigns a time-ordered UUID so the id exists before the row is flushed.
func (m *AddressModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}

	return nil
}
