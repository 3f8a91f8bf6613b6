// Package imaging implements content sniffing for uploaded image payloads.
package imaging

import (
	"strings"

	domainerrors "shopapi/internal/domain/errors"
	"shopapi/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
)

// mimetypeDecoder implements service.ImageDecoder by magic-number detection.
// The claimed file name or content type of the upload is never trusted; only
// the payload bytes decide.
type mimetypeDecoder struct{}

// NewDecoder is the constructor for mimetypeDecoder.
func NewDecoder() service.ImageDecoder {
	return &mimetypeDecoder{}
}

// Sniff detects the payload's media type and returns its canonical extension.
func (*mimetypeDecoder) Sniff(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", domainerrors.ErrInvalidImage.WrapMessage("empty payload")
	}

	detected := mimetype.Detect(payload)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", domainerrors.ErrInvalidImage.WrapMessage("payload is not an image: detected " + detected.String())
	}

	ext := strings.TrimPrefix(detected.Extension(), ".")
	if ext == "" {
		return "", domainerrors.ErrInvalidImage.WrapMessage("image format has no known extension")
	}

	return strings.ToLower(ext), nil
}
