package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	m "namelint.dev/pkg/namelint/internal/model"
)

type paint func(string) string

func noPaint(s string) string { return s }

// palette styles the pieces of a report.
type palette struct {
	title paint
	ok    paint
	bad   paint
	warn  paint
	dim   paint
}

func plainPalette() palette {
	return palette{title: noPaint, ok: noPaint, bad: noPaint, warn: noPaint, dim: noPaint}
}

func stylePaint(style lipgloss.Style) paint {
	return func(s string) string { return style.Render(s) }
}

func colorPalette() palette {
	return palette{
		title: stylePaint(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))),
		ok:    stylePaint(lipgloss.NewStyle().Foreground(lipgloss.Color("10"))),
		bad:   stylePaint(lipgloss.NewStyle().Foreground(lipgloss.Color("9"))),
		warn:  stylePaint(lipgloss.NewStyle().Foreground(lipgloss.Color("11"))),
		dim:   stylePaint(lipgloss.NewStyle().Faint(true)),
	}
}

// renderer writes report sections; SimpleUI and TUI differ only in palette
// and destination.
type renderer struct {
	out    io.Writer
	style  palette
	format Format
}

func (r *renderer) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r *renderer) scanStart(root m.Path) {
	r.printf("%s\n", r.style.title(fmt.Sprintf("Checking directory: %s", root)))
	r.printf("%s\n", r.style.dim(strings.Repeat("-", 50)))
}

func fileLabel(category m.Category) string {
	switch category {
	case m.PrimaryTest:
		return "primary test file"
	case m.SubmoduleTest:
		return "submodule test file"
	}

	return "other file"
}

func (r *renderer) fileResults(results []m.FileResult) {
	for _, result := range results {
		if result.OK() {
			r.printf("%s %s: %s\n", r.style.ok("✓"), fileLabel(result.Category), result.File.RelPath)
			continue
		}

		r.printf("%s %s: %s\n", r.style.bad("✗"), fileLabel(result.Category), result.File.RelPath)
	}
}

func (r *renderer) warnings(warnings []m.Warning) {
	for _, w := range warnings {
		r.printf("%s\n", r.style.warn(fmt.Sprintf("warning: cannot read %s: %s", w.Path, w.Message)))
	}
}

func countViolations(groups []m.ViolationGroup) int {
	total := 0
	for _, g := range groups {
		total += len(g.Violations)
	}

	return total
}

func (r *renderer) violations(groups []m.ViolationGroup) {
	total := countViolations(groups)
	if total == 0 {
		r.printf("\n%s\n", r.style.ok("All files follow the naming conventions"))
		return
	}

	r.printf("\n%s\n", r.style.bad(fmt.Sprintf("Found %d naming issue(s):", total)))

	if r.format == FormatTable {
		r.printf("%s", renderViolationTable(groups))
	} else {
		r.printf("%s\n", r.style.dim(strings.Repeat("=", 60)))

		for _, group := range groups {
			r.printf("\n%s\n", r.style.title(fmt.Sprintf("%s (%d issue(s)):", group.Category.Label(), len(group.Violations))))

			for _, v := range group.Violations {
				r.printf("  %s %s\n", r.style.bad("✗"), v.File)
				r.printf("     reason:   %s\n", v.Reason)
				r.printf("     expected: %s\n", v.Expected)
				r.printf("     actual:   %s\n\n", v.Actual)
			}
		}
	}

	r.printf("%s\n", r.style.title("Naming conventions:"))
	r.printf("  - primary test files:   test_{module}_{submodule}.hpp\n")
	r.printf("  - submodule test files: {module}_{feature}_test.hpp/cpp\n")
	r.printf("  - all files:            lowercase letters, digits and underscores only\n")
}

func renderViolationTable(groups []m.ViolationGroup) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Category", "Reason", "Expected", "Actual"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, group := range groups {
		for _, v := range group.Violations {
			table.Append([]string{string(v.File), v.Category.String(), v.Reason, v.Expected, v.Actual})
		}
	}

	table.Render()

	return buf.String()
}

func (r *renderer) suggestions(suggestions []m.Suggestion, diff string) {
	if len(suggestions) == 0 {
		return
	}

	r.printf("\n%s\n", r.style.title("Suggested fixes:"))
	r.printf("%s\n", r.style.dim(strings.Repeat("-", 30)))

	for _, s := range suggestions {
		if s.Proposed != "" {
			r.printf("- %s -> %s\n", s.Current, r.style.ok(s.Proposed))
			continue
		}

		r.printf("- %s -> %s\n", s.Current, r.style.warn(s.Hint))
	}

	if diff != "" {
		r.printf("\n%s", diff)
	}
}

func (r *renderer) statistics(stats m.RunStatistics) {
	rate := "n/a"
	if value, ok := stats.ComplianceRate(); ok {
		rate = fmt.Sprintf("%.1f%%", value)
	}

	rows := [][]string{
		{"Total files", fmt.Sprintf("%d", stats.TotalFiles)},
		{"Primary test files", fmt.Sprintf("%d", stats.PrimaryTestFiles)},
		{"Submodule test files", fmt.Sprintf("%d", stats.SubmoduleTestFiles)},
		{"Other files", fmt.Sprintf("%d", stats.OtherFiles)},
		{"Files with issues", fmt.Sprintf("%d", stats.Issues)},
		{"Compliance rate", rate},
	}

	r.printf("\n%s\n", r.style.title("Statistics:"))

	if r.format == FormatTable {
		var buf bytes.Buffer

		table := tablewriter.NewWriter(&buf)
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
		table.AppendBulk(rows)
		table.Render()
		r.printf("%s", buf.String())

		return
	}

	r.printf("%s\n", r.style.dim(strings.Repeat("-", 30)))

	for _, row := range rows {
		r.printf("%-22s%s\n", row[0]+":", row[1])
	}
}

func (r *renderer) fileTable(results []m.FileResult) {
	if len(results) == 0 {
		r.printf("No candidate files found\n")
		return
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Category", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	issues := 0

	for _, result := range results {
		status := "ok"
		if !result.OK() {
			status = result.Violation.Reason
			issues++
		}

		table.Append([]string{string(result.File.RelPath), result.Category.String(), status})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		"",
		fmt.Sprintf("%d issue(s)", issues),
	})
	table.Render()

	r.printf("%s", buf.String())
}

func (r *renderer) rules(strictness string, rules []m.NamingRule) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Category", "Expected", "Pattern"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, rule := range rules {
		table.Append([]string{rule.Category.String(), rule.Expected, rule.Pattern})
	}

	table.Render()

	r.printf("%s\n", r.style.title(fmt.Sprintf("Naming rules (%s):", strictness)))
	r.printf("%s", buf.String())
}
