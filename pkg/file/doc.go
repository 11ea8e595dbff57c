// Package file provides the storage layer word lists and datasets are read
// from and written to.
//
// Two backends implement the Storage interface:
//   - LocalStorage: filesystem storage confined to a base directory
//   - S3Storage: AWS S3 and S3-compatible services (MinIO, Wasabi, etc.)
//
// Callers that only read (the word list loader) depend on the narrower Reader
// interface.
//
// # Usage
//
//	storage, err := file.New(ctx, file.Config{Driver: file.DriverLocal, BaseDir: "."})
//	if err != nil {
//	    return err
//	}
//
//	rc, err := storage.Open(ctx, "resources/animals.txt")
//	if err != nil {
//	    return err // wraps file.ErrFileNotFound when missing
//	}
//	defer rc.Close()
//
// # Security
//
// Paths are cleaned before use. Any path that would escape the base directory
// (LocalStorage) or contains ".." (S3Storage) fails with ErrInvalidPath.
//
// # Errors
//
// S3 errors are classified into the sentinel errors in errors.go, so callers
// can use errors.Is(err, file.ErrFileNotFound) regardless of the backend.
package file
