package style

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Case is a casing mode for keywords or identifiers. The numeric values match
// the codes accepted in style files.
type Case int

const (
	Unchanged Case = iota
	Lower
	Capitalize
	Upper
)

var caseNames = []string{"unchanged", "lower", "capitalize", "upper"}

// ParseCase parses a case name (any letter case) or numeric code.
func ParseCase(s string) (Case, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if c := Case(n); c.valid() {
			return c, nil
		}

		return 0, errors.Errorf("case code %d out of range [0, 3]", n)
	}

	for i, name := range caseNames {
		if strings.EqualFold(s, name) {
			return Case(i), nil
		}
	}

	return 0, errors.Errorf("unknown case %q, expected one of %s", s, strings.Join(caseNames, ", "))
}

func (c Case) valid() bool {
	return c >= Unchanged && c <= Upper
}

func (c Case) String() string {
	if !c.valid() {
		return "Case(" + strconv.Itoa(int(c)) + ")"
	}

	return caseNames[c]
}

func (c Case) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Case) UnmarshalText(text []byte) error {
	v, err := ParseCase(string(text))
	if err != nil {
		return err
	}

	*c = v
	return nil
}

// UnmarshalJSON accepts both names and numeric codes.
func (c *Case) UnmarshalJSON(b []byte) error {
	return c.UnmarshalText([]byte(strings.Trim(string(b), `"`)))
}

func (c *Case) UnmarshalYAML(value *yaml.Node) error {
	return c.UnmarshalText([]byte(value.Value))
}

// Spacing is the spacing policy around a class of tokens.
type Spacing int

const (
	// None puts no space on either side: a,b  a=b  f(a)
	None Spacing = iota
	// After puts one space after: a, b  a= b  f( a )
	After
	// Around puts one space on each side: a , b  a = b  f ( a )
	Around
)

var spacingNames = []string{"none", "after", "around"}

// ParseSpacing parses a spacing name. Legacy names such as
// "oneSpaceAroundEqual", "noSpacesAroundBracket" or "oneSpaceAfterComma" are
// accepted too.
func ParseSpacing(s string) (Spacing, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for i, name := range spacingNames {
		if lower == name {
			return Spacing(i), nil
		}
	}

	switch {
	case strings.HasPrefix(lower, "nospace"):
		return None, nil
	case strings.HasPrefix(lower, "onespaceafter"):
		return After, nil
	case strings.HasPrefix(lower, "onespacearound"):
		return Around, nil
	}

	return 0, errors.Errorf("unknown spacing %q, expected one of %s", s, strings.Join(spacingNames, ", "))
}

func (s Spacing) valid() bool {
	return s >= None && s <= Around
}

func (s Spacing) String() string {
	if !s.valid() {
		return "Spacing(" + strconv.Itoa(int(s)) + ")"
	}

	return spacingNames[s]
}

func (s Spacing) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Spacing) UnmarshalText(text []byte) error {
	v, err := ParseSpacing(string(text))
	if err != nil {
		return err
	}

	*s = v
	return nil
}

func (s *Spacing) UnmarshalYAML(value *yaml.Node) error {
	return s.UnmarshalText([]byte(value.Value))
}
