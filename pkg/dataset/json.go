package dataset

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// decodeJSON reads an array of objects. The decoder is driven token by token
// so columns keep the key order of the input.
func decodeJSON(r io.Reader) (*Dataset, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}

	d := New()
	seen := make(map[string]struct{})
	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}

		row := make(Row)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, errors.Join(ErrMalformedInput, err)
			}
			key, ok := tok.(string)
			if !ok {
				return nil, fmt.Errorf("%w: object key %v", ErrMalformedInput, tok)
			}

			var value any
			if err := dec.Decode(&value); err != nil {
				return nil, errors.Join(ErrMalformedInput, err)
			}
			row[key] = value

			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				d.Columns = append(d.Columns, key)
			}
		}

		if err := expectDelim(dec, '}'); err != nil {
			return nil, err
		}
		d.Rows = append(d.Rows, row)
	}

	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return d, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return errors.Join(ErrMalformedInput, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrMalformedInput, want, tok)
	}
	return nil
}

// encodeJSON writes one object per line, keys in column order.
func encodeJSON(w io.Writer, d *Dataset) error {
	bw := bufio.NewWriter(w)

	_, _ = bw.WriteString("[")
	for i, row := range d.Rows {
		if i > 0 {
			_, _ = bw.WriteString(",")
		}
		_, _ = bw.WriteString("\n  {")
		for j, col := range d.Columns {
			if j > 0 {
				_, _ = bw.WriteString(",")
			}
			key, err := json.Marshal(col)
			if err != nil {
				return errors.Join(ErrFailedToEncode, err)
			}
			value, err := json.Marshal(row[col])
			if err != nil {
				return errors.Join(ErrFailedToEncode, err)
			}
			_, _ = bw.Write(key)
			_, _ = bw.WriteString(":")
			_, _ = bw.Write(value)
		}
		_, _ = bw.WriteString("}")
	}
	if len(d.Rows) > 0 {
		_, _ = bw.WriteString("\n")
	}
	_, _ = bw.WriteString("]\n")

	if err := bw.Flush(); err != nil {
		return errors.Join(ErrFailedToEncode, err)
	}
	return nil
}
