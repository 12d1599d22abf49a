// Package domain implements the naming checker: classification, validation,
// scanning and the report workflow.
package domain

import (
	"strings"

	m "namelint.dev/pkg/namelint/internal/model"
)

const (
	primaryPrefix    = "test_"
	submoduleHPPTail = "_test.hpp"
	submoduleCPPTail = "_test.cpp"
)

// Classify returns the category of a file name. The first matching rule wins
// and matching is case-sensitive.
func Classify(name string) m.Category {
	switch {
	case strings.HasPrefix(name, primaryPrefix):
		return m.PrimaryTest
	case strings.HasSuffix(name, submoduleHPPTail), strings.HasSuffix(name, submoduleCPPTail):
		return m.SubmoduleTest
	default:
		return m.Other
	}
}
