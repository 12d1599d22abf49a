package domain

import (
	"path"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "namelint.dev/pkg/namelint/internal/model"
)

const submoduleStemTail = "_test"

// Suggest computes an advisory rename for a violation. Files are never
// renamed; when no purely textual fix satisfies the rule the suggestion only
// carries a hint.
func (v *Validator) Suggest(violation m.Violation) m.Suggestion {
	name := path.Base(string(violation.File))
	suggestion := m.Suggestion{File: violation.File, Current: name}

	var proposed string

	switch violation.Category {
	case m.PrimaryTest:
		if violation.Reason == m.ReasonExtension {
			proposed = strings.TrimSuffix(name, path.Ext(name)) + ExpectedPrimaryExt
			break
		}

		// Only a case or charset problem can be repaired textually; a
		// missing segment cannot.
		proposed = sanitize(name)
		if v.Validate(proposed, m.PrimaryTest) != nil {
			proposed = ""
		}
	case m.SubmoduleTest:
		ext := path.Ext(name)
		stem := sanitize(strings.TrimSuffix(name, ext))

		if !strings.HasSuffix(stem, submoduleStemTail) {
			stem += submoduleStemTail
		}

		proposed = stem + ext
	case m.Other:
		proposed = sanitize(name)
	}

	if proposed == "" || proposed == name {
		suggestion.Hint = "use format " + expectedFor(violation)
		return suggestion
	}

	suggestion.Proposed = proposed

	return suggestion
}

// SuggestAll returns one suggestion per violation, in order.
func (v *Validator) SuggestAll(violations []m.Violation) []m.Suggestion {
	suggestions := make([]m.Suggestion, 0, len(violations))
	for _, violation := range violations {
		suggestions = append(suggestions, v.Suggest(violation))
	}

	return suggestions
}

// RenamePlanDiff renders the proposed renames as a unified diff of paths.
// Suggestions without a proposal are left out; an empty plan yields "".
func RenamePlanDiff(suggestions []m.Suggestion) (string, error) {
	var current, proposed []string

	for _, s := range suggestions {
		if s.Proposed == "" {
			continue
		}

		current = append(current, string(s.File)+"\n")
		proposed = append(proposed, path.Join(path.Dir(string(s.File)), s.Proposed)+"\n")
	}

	if len(current) == 0 {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        current,
		B:        proposed,
		FromFile: "current",
		ToFile:   "suggested",
		Context:  0,
	})
}

// GroupByCategory groups violations in category order, keeping the relative
// order within each group. Empty groups are omitted.
func GroupByCategory(violations []m.Violation) []m.ViolationGroup {
	byCategory := make(map[m.Category][]m.Violation, len(m.Categories))
	for _, violation := range violations {
		byCategory[violation.Category] = append(byCategory[violation.Category], violation)
	}

	groups := make([]m.ViolationGroup, 0, len(byCategory))

	for _, category := range m.Categories {
		if list := byCategory[category]; len(list) > 0 {
			groups = append(groups, m.ViolationGroup{Category: category, Violations: list})
		}
	}

	return groups
}

// sanitize lower-cases ASCII letters and replaces every character outside
// [a-z0-9_.] with an underscore.
func sanitize(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	return b.String()
}

func expectedFor(violation m.Violation) string {
	switch violation.Category {
	case m.PrimaryTest:
		return ExpectedPrimary
	case m.SubmoduleTest:
		return ExpectedSubmodule
	}

	return ExpectedOther
}
