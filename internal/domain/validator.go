package domain

import (
	"path/filepath"

	m "namelint.dev/pkg/namelint/internal/model"
)

// Validator checks file names against a RuleSet.
type Validator struct {
	rules *RuleSet
}

// NewValidator returns a Validator for the given strictness.
func NewValidator(strictness Strictness) *Validator {
	return &Validator{rules: RulesFor(strictness)}
}

// Validate returns nil when name satisfies the rule of its category.
// The returned violation carries no File; callers fill it in.
func (v *Validator) Validate(name string, category m.Category) *m.Violation {
	switch category {
	case m.PrimaryTest:
		if filepath.Ext(name) != ExpectedPrimaryExt {
			return violation(category, m.ReasonExtension, ExpectedPrimaryExt, name)
		}

		if !v.rules.primary.MatchString(name) {
			return violation(category, m.ReasonFormat, ExpectedPrimary, name)
		}

	case m.SubmoduleTest:
		pattern := v.rules.submoduleCPP
		if filepath.Ext(name) == ".hpp" {
			pattern = v.rules.submoduleHPP
		}

		if !pattern.MatchString(name) {
			return violation(category, m.ReasonFormat, ExpectedSubmodule, name)
		}

	case m.Other:
		if v.rules.otherInvalid.MatchString(name) {
			return violation(category, m.ReasonInvalidCharset, ExpectedOther, name)
		}
	}

	return nil
}

func violation(category m.Category, reason, expected, actual string) *m.Violation {
	return &m.Violation{
		Category: category,
		Reason:   reason,
		Expected: expected,
		Actual:   actual,
	}
}
