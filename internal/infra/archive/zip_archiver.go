// Package archive packages product images into downloadable zip blobs.
package archive

import (
	"archive/zip"
	"bytes"

	"shopapi/internal/domain/entity"
	"shopapi/internal/domain/service"

	"github.com/pkg/errors"
)

// zipArchiver implements service.ImageArchiver with the standard zip format.
type zipArchiver struct{}

// NewZipArchiver is the constructor for zipArchiver.
func NewZipArchiver() service.ImageArchiver {
	return &zipArchiver{}
}

// Archive writes one entry per image, named by the image's canonical file
// name. Images arrive in creation order and keep that order in the archive.
func (*zipArchiver) Archive(images []*entity.Image) ([]byte, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	for _, image := range images {
		entry, err := writer.Create(image.FileName())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create zip entry %s", image.FileName())
		}
		if _, err := entry.Write(image.Payload); err != nil {
			return nil, errors.Wrapf(err, "failed to write zip entry %s", image.FileName())
		}
	}

	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize zip archive")
	}

	return buf.Bytes(), nil
}
