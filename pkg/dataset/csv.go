package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

func decodeCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 0 // every record must match the header width

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing csv header", ErrMalformedInput)
		}
		return nil, errors.Join(ErrMalformedInput, err)
	}

	seen := make(map[string]struct{}, len(header))
	for _, col := range header {
		if _, dup := seen[col]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col)
		}
		seen[col] = struct{}{}
	}

	d := New(header...)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrMalformedInput, err)
		}

		row := make(Row, len(record))
		for i, col := range header {
			row[col] = record[i]
		}
		d.Rows = append(d.Rows, row)
	}

	return d, nil
}

func encodeCSV(w io.Writer, d *Dataset) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(d.Columns); err != nil {
		return errors.Join(ErrFailedToEncode, err)
	}

	record := make([]string, len(d.Columns))
	for _, row := range d.Rows {
		for i, col := range d.Columns {
			record[i] = formatCell(row[col])
		}
		if err := writer.Write(record); err != nil {
			return errors.Join(ErrFailedToEncode, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Join(ErrFailedToEncode, err)
	}
	return nil
}

// formatCell renders a cell for text output. nil becomes an empty field.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
