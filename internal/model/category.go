package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Category is the classification bucket for a file name.
type Category int

const (
	// PrimaryTest is a top-level test file named test_{module}_{submodule}.hpp.
	PrimaryTest Category = iota
	// SubmoduleTest is a file named {module}_{feature}_test.hpp/cpp.
	SubmoduleTest
	// Other is any other source file in the test tree.
	Other
)

// Categories lists every category in display order.
var Categories = []Category{PrimaryTest, SubmoduleTest, Other}

func (c Category) String() string {
	switch c {
	case PrimaryTest:
		return "primary"
	case SubmoduleTest:
		return "submodule"
	case Other:
		return "other"
	}

	return fmt.Sprintf("category(%d)", int(c))
}

// Label returns the human-readable name used in reports.
func (c Category) Label() string {
	switch c {
	case PrimaryTest:
		return "Primary test files"
	case SubmoduleTest:
		return "Submodule test files"
	case Other:
		return "Other files"
	}

	return c.String()
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("unknown category %q", s)
}

// MarshalYAML encodes the category by name.
func (c Category) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes a category name.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
