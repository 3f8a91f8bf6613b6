package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageModel mirrors the 'image' table. The payload is stored inline as bytea;
// images are admin-scale uploads, not a blob store.
type ImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Extension string    `gorm:"type:varchar(10);not null"`
	Payload   []byte    `gorm:"column:image;type:bytea;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ImageModel) TableName() string {
	return "image"
}

// BeforeCreate assigns a time-ordered UUID so the id exists before the row is flushed.
func (m *ImageModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		m.ID = id
	}

	return nil
}
