package service

import "shopapi/internal/domain/entity"

// ImageArchiver packages a set of product images into a single archive blob
// whose entries are keyed by the images' canonical file names.
type ImageArchiver interface {
	// Archive returns the archive bytes for the given images.
	Archive(images []*entity.Image) ([]byte, error)
}
