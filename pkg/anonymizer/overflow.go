package anonymizer

import (
	"fmt"
	"strings"
)

// Overflow decides what happens to distinct values left over once every
// placeholder has been assigned.
type Overflow int

const (
	// OverflowError fails the whole substitution.
	OverflowError Overflow = iota
	// OverflowWrap reuses placeholders from the start of the sequence.
	OverflowWrap
	// OverflowPassthrough keeps the leftover values unchanged.
	OverflowPassthrough
)

var overflowNames = map[Overflow]string{
	OverflowError:       "error",
	OverflowWrap:        "wrap",
	OverflowPassthrough: "passthrough",
}

func (o Overflow) String() string {
	if name, ok := overflowNames[o]; ok {
		return name
	}
	return fmt.Sprintf("overflow(%d)", int(o))
}

// ParseOverflow parses "error", "wrap" or "passthrough".
func ParseOverflow(s string) (Overflow, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for o, name := range overflowNames {
		if name == s {
			return o, nil
		}
	}
	return OverflowError, fmt.Errorf("%w: %q", ErrInvalidOverflow, s)
}

// UnmarshalText lets env and flag parsers fill an Overflow directly.
func (o *Overflow) UnmarshalText(text []byte) error {
	parsed, err := ParseOverflow(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o Overflow) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
