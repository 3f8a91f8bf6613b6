package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientModel mirrors the 'client' table. The primary key is a UUIDv7, so
// primary-key order equals creation order and listings paginate deterministically.
type ClientModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name             string     `gorm:"column:client_name;type:varchar(100);not null"`
	Surname          string     `gorm:"column:client_surname;type:varchar(100);not null"`
	Birthday         time.Time  `gorm:"type:date;not null"`
	Gender           string     `gorm:"type:gender;not null"`
	RegistrationDate time.Time  `gorm:"not null"`
	AddressID        *uuid.UUID `gorm:"type:uuid"`

	Address *AddressModel `gorm:"foreignKey:AddressID"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "client"
}

// BeforeCreate assigns a time-ordered UUID so the id exists before the row is flushed.
func (m *ClientModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}

	return nil
}
