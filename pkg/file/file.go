package file

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// File describes a stored object.
type File struct {
	Path        string
	Size        int64
	ContentType string
}

// Entry represents a file or directory entry.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// Reader is the read side of a storage backend. Word lists and input datasets
// are loaded through it.
type Reader interface {
	// Open returns the object content. The caller must close it.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Exists checks if a file or directory exists.
	Exists(ctx context.Context, path string) bool
}

// Storage interface for different backends.
type Storage interface {
	Reader
	// Put stores r under path, replacing any existing object.
	Put(ctx context.Context, path string, r io.Reader) (*File, error)
	// Delete removes a single file.
	Delete(ctx context.Context, path string) error
	// List returns all entries in a directory (non-recursive).
	List(ctx context.Context, dir string) ([]Entry, error)
}

var contentTypes = map[string]string{
	".csv":  "text/csv",
	".json": "application/json",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
	".txt":  "text/plain",
}

// ContentType guesses the content type from the path extension.
// Unknown extensions map to application/octet-stream.
func ContentType(path string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// cleanKey normalizes an object key and rejects traversal attempts.
func cleanKey(path string) (string, bool) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "/")
	if strings.Contains(path, "..") {
		return "", false
	}
	return path, true
}
