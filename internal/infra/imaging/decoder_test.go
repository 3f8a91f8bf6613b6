package imaging

import (
	"testing"

	domainerrors "shopapi/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniff_DetectsPNG(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

	ext, err := NewDecoder().Sniff(payload)

	require.NoError(t, err)
	assert.Equal(t, "png", ext)
}

func TestSniff_DetectsJPEG(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

	ext, err := NewDecoder().Sniff(payload)

	require.NoError(t, err)
	assert.Equal(t, "jpg", ext)
}

func TestSniff_RejectsNonImagePayload(t *testing.T) {
	_, err := NewDecoder().Sniff([]byte("definitely not an image"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestSniff_RejectsEmptyPayload(t *testing.T) {
	_, err := NewDecoder().Sniff(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}
