package file_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sillynames/pkg/file"
)

func TestContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected string
	}{
		{"rides.csv", "text/csv"},
		{"rides.JSON", "application/json"},
		{"data/rides.yaml", "application/yaml"},
		{"rides.yml", "application/yaml"},
		{"resources/animals.txt", "text/plain"},
		{"blob.bin", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, file.ContentType(tt.path))
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("local driver", func(t *testing.T) {
		t.Parallel()
		storage, err := file.New(context.Background(), file.Config{Driver: file.DriverLocal, BaseDir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &file.LocalStorage{}, storage)
	})

	t.Run("s3 driver with mock client", func(t *testing.T) {
		t.Parallel()
		storage, err := file.New(context.Background(), file.Config{
			Driver: file.DriverS3,
			S3:     file.S3Config{Bucket: "b", Region: "us-east-1"},
		}, file.WithS3Client(new(MockS3Client)))
		require.NoError(t, err)
		assert.IsType(t, &file.S3Storage{}, storage)
	})

	t.Run("s3 driver without bucket", func(t *testing.T) {
		t.Parallel()
		storage, err := file.New(context.Background(), file.Config{Driver: file.DriverS3})
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
		assert.Nil(t, storage)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Parallel()
		storage, err := file.New(context.Background(), file.Config{Driver: "ftp"})
		assert.ErrorIs(t, err, file.ErrUnknownDriver)
		assert.Nil(t, storage)
	})
}
