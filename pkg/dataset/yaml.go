package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// decodeYAML reads a sequence of mappings. Working on yaml.Node keeps the key
// order of the input.
func decodeYAML(r io.Reader) (*Dataset, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty yaml document", ErrMalformedInput)
		}
		return nil, errors.Join(ErrMalformedInput, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: yaml root must be a sequence, line %d", ErrMalformedInput, root.Line)
	}

	d := New()
	seen := make(map[string]struct{})
	for _, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: yaml row must be a mapping, line %d", ErrMalformedInput, item.Line)
		}

		row := make(Row, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			key := item.Content[i].Value

			var value any
			if err := item.Content[i+1].Decode(&value); err != nil {
				return nil, errors.Join(ErrMalformedInput, err)
			}
			row[key] = value

			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				d.Columns = append(d.Columns, key)
			}
		}
		d.Rows = append(d.Rows, row)
	}

	return d, nil
}

func encodeYAML(w io.Writer, d *Dataset) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range d.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, col := range d.Columns {
			value := &yaml.Node{}
			if err := value.Encode(yamlValue(row[col])); err != nil {
				return errors.Join(ErrFailedToEncode, err)
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: col},
				value,
			)
		}
		seq.Content = append(seq.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return errors.Join(ErrFailedToEncode, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(ErrFailedToEncode, err)
	}
	return nil
}

// yamlValue turns json.Number into a real number so JSON input re-encodes as
// YAML numbers instead of quoted strings.
func yamlValue(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}
