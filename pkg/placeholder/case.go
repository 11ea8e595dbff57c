package placeholder

import (
	"fmt"
	"strings"
)

var caseNames = map[Case]string{
	AsIs:  "asis",
	Title: "title",
	Lower: "lower",
}

func (c Case) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("case(%d)", int(c))
}

// ParseCase parses "asis", "title" or "lower". An empty string means AsIs.
func ParseCase(s string) (Case, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "as-is" {
		return AsIs, nil
	}
	for c, name := range caseNames {
		if name == s {
			return c, nil
		}
	}
	return AsIs, fmt.Errorf("%w: %q", ErrInvalidCase, s)
}

func (c *Case) UnmarshalText(text []byte) error {
	parsed, err := ParseCase(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Case) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
