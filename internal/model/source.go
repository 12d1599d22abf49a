// Package model defines the data structures shared by the naming checker.
package model

// Path represents a file system path.
type Path string

// CandidateFile is a file discovered under the scan root whose extension is
// eligible for naming-rule evaluation.
type CandidateFile struct {
	// RelPath is slash-separated and relative to the scan root.
	RelPath Path
	Name    string
	Ext     string
}

// FileResult is the outcome of checking a single candidate file.
type FileResult struct {
	File      CandidateFile
	Category  Category
	Violation *Violation
}

// OK reports whether the file passed its naming rule.
func (r FileResult) OK() bool {
	return r.Violation == nil
}

// Warning describes an entry that could not be read during the walk.
type Warning struct {
	Path    Path   `yaml:"path"`
	Message string `yaml:"message"`
}
