package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"shopapi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_WritesOneEntryPerImage(t *testing.T) {
	first := &entity.Image{ID: uuid.Must(uuid.NewV7()), Extension: "png", Payload: []byte("png-bytes")}
	second := &entity.Image{ID: uuid.Must(uuid.NewV7()), Extension: "jpg", Payload: []byte("jpg-bytes")}

	blob, err := NewZipArchiver().Archive([]*entity.Image{first, second})
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)

	assert.Equal(t, first.FileName(), reader.File[0].Name)
	assert.Equal(t, second.FileName(), reader.File[1].Name)

	entry, err := reader.File[0].Open()
	require.NoError(t, err)
	defer entry.Close()

	content, err := io.ReadAll(entry)
	require.NoError(t, err)
	assert.Equal(t, first.Payload, content)
}

func TestArchive_EmptyInputYieldsValidEmptyArchive(t *testing.T) {
	blob, err := NewZipArchiver().Archive(nil)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)
	assert.Empty(t, reader.File)
}
