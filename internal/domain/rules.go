package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	m "namelint.dev/pkg/namelint/internal/model"
)

// Strictness selects how many segments a primary test name needs.
type Strictness string

const (
	// Strict requires a module and a submodule segment after "test_".
	Strict Strictness = "strict"
	// Lenient accepts a single segment after "test_".
	Lenient Strictness = "lenient"
)

// ErrInvalidStrictness is returned by ParseStrictness for unknown values.
var ErrInvalidStrictness = errors.New("invalid strictness")

// ParseStrictness converts a config or flag value into a Strictness.
// An empty value selects Strict.
func ParseStrictness(value string) (Strictness, error) {
	switch Strictness(strings.ToLower(strings.TrimSpace(value))) {
	case Strict, "":
		return Strict, nil
	case Lenient:
		return Lenient, nil
	}

	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidStrictness, value, Strict, Lenient)
}

// Expected patterns shown to users.
const (
	ExpectedPrimary    = "test_{module}_{submodule}.hpp"
	ExpectedSubmodule  = "{module}_{feature}_test.hpp/cpp"
	ExpectedOther      = "lowercase letters, digits and underscores only"
	ExpectedPrimaryExt = ".hpp"
)

const (
	strictPrimaryPattern  = `^test_[a-z]+_[a-z]+(_[a-z]+)*\.hpp$`
	lenientPrimaryPattern = `^test_[a-z]+(_[a-z]+)*\.hpp$`
	submoduleHPPPattern   = `^[a-z]+(_[a-z]+)*_test\.hpp$`
	submoduleCPPPattern   = `^[a-z]+(_[a-z]+)*_test\.cpp$`
	otherInvalidPattern   = `[^a-z0-9_.]`
)

// RuleSet is the compiled, immutable set of naming rules for one strictness.
type RuleSet struct {
	strictness   Strictness
	primary      *regexp.Regexp
	submoduleHPP *regexp.Regexp
	submoduleCPP *regexp.Regexp
	otherInvalid *regexp.Regexp
}

var (
	strictRules  = newRuleSet(Strict, strictPrimaryPattern)
	lenientRules = newRuleSet(Lenient, lenientPrimaryPattern)
)

func newRuleSet(strictness Strictness, primary string) *RuleSet {
	return &RuleSet{
		strictness:   strictness,
		primary:      regexp.MustCompile(primary),
		submoduleHPP: regexp.MustCompile(submoduleHPPPattern),
		submoduleCPP: regexp.MustCompile(submoduleCPPPattern),
		otherInvalid: regexp.MustCompile(otherInvalidPattern),
	}
}

// RulesFor returns the shared rule set for strictness.
func RulesFor(strictness Strictness) *RuleSet {
	if strictness == Lenient {
		return lenientRules
	}

	return strictRules
}

// Strictness reports which variant the rule set implements.
func (r *RuleSet) Strictness() Strictness {
	return r.strictness
}

// Describe lists the rules in category order.
func (r *RuleSet) Describe() []m.NamingRule {
	return []m.NamingRule{
		{Category: m.PrimaryTest, Pattern: r.primary.String(), Expected: ExpectedPrimary},
		{Category: m.SubmoduleTest, Pattern: submoduleHPPPattern + " | " + submoduleCPPPattern, Expected: ExpectedSubmodule},
		{Category: m.Other, Pattern: "^[a-z0-9_.]+$", Expected: ExpectedOther},
	}
}
