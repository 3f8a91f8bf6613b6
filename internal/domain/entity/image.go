// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// Image is a binary picture attached to exactly one product.
type Image struct {
	ID        uuid.UUID // Time-ordered UUID assigned at creation.
	ProductID uuid.UUID // The product this image belongs to; must reference an existing product.
	Extension string    // Lower-case file extension without the dot, e.g. "png".
	Payload   []byte    // Raw image bytes as uploaded.
}

// FileName returns the canonical download name for the image, "{id}.{extension}".
func (i *Image) FileName() string {
	return i.ID.String() + "." + i.Extension
}
