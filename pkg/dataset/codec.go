package dataset

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format names a dataset serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts a format name case-insensitively; "yml" is an alias of yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension in %q", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Decode reads a whole dataset from r.
func Decode(r io.Reader, format Format) (*Dataset, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Encode writes d to w.
func Encode(w io.Writer, format Format, d *Dataset) error {
	switch format {
	case FormatCSV:
		return encodeCSV(w, d)
	case FormatJSON:
		return encodeJSON(w, d)
	case FormatYAML:
		return encodeYAML(w, d)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
