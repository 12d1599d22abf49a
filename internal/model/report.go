package model

// Reasons attached to violations.
const (
	ReasonFormat         = "naming format incorrect"
	ReasonExtension      = "wrong extension"
	ReasonInvalidCharset = "contains uppercase or special characters"
)

// Violation is a recorded naming-rule failure for one candidate file.
type Violation struct {
	File     Path     `yaml:"file"`
	Category Category `yaml:"category"`
	Reason   string   `yaml:"reason"`
	Expected string   `yaml:"expected"`
	Actual   string   `yaml:"actual"`
}

// ViolationGroup collects the violations of one category.
type ViolationGroup struct {
	Category   Category
	Violations []Violation
}

// Suggestion is an advisory rename for a violating file. Proposed is empty
// when no textual fix exists, in which case Hint explains what to do.
type Suggestion struct {
	File     Path
	Current  string
	Proposed string
	Hint     string
}

// RunStatistics holds the aggregate counters of a single run.
type RunStatistics struct {
	TotalFiles         int `yaml:"total_files"`
	PrimaryTestFiles   int `yaml:"primary_test_files"`
	SubmoduleTestFiles int `yaml:"submodule_test_files"`
	OtherFiles         int `yaml:"other_files"`
	Issues             int `yaml:"issues"`
}

// Record counts one checked file.
func (s *RunStatistics) Record(category Category, violated bool) {
	s.TotalFiles++

	switch category {
	case PrimaryTest:
		s.PrimaryTestFiles++
	case SubmoduleTest:
		s.SubmoduleTestFiles++
	case Other:
		s.OtherFiles++
	}

	if violated {
		s.Issues++
	}
}

// ComplianceRate returns the percentage of files without violations.
// The second value is false when no files were checked.
func (s RunStatistics) ComplianceRate() (float64, bool) {
	if s.TotalFiles == 0 {
		return 0, false
	}

	return float64(s.TotalFiles-s.Issues) / float64(s.TotalFiles) * 100, true
}

// Report is the result of one checker run.
type Report struct {
	Root       Path          `yaml:"root"`
	Strictness string        `yaml:"strictness"`
	Files      []FileResult  `yaml:"-"`
	Violations []Violation   `yaml:"violations"`
	Warnings   []Warning     `yaml:"warnings,omitempty"`
	Stats      RunStatistics `yaml:"stats"`
}
