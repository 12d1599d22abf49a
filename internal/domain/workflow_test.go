package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelint.dev/pkg/namelint/internal/adapter"
	"namelint.dev/pkg/namelint/internal/controller"
	m "namelint.dev/pkg/namelint/internal/model"
)

// recordingUI captures what the workflow asks the UI to display.
type recordingUI struct {
	started     bool
	closed      bool
	waited      bool
	options     controller.StartConfig
	calls       []string
	root        m.Path
	files       []m.FileResult
	warnings    []m.Warning
	groups      []m.ViolationGroup
	suggestions []m.Suggestion
	diff        string
	stats       *m.RunStatistics
	table       []m.FileResult
	rules       []m.NamingRule
	strictness  string
}

func (r *recordingUI) Start(_ context.Context, options ...controller.StartOption) error {
	r.started = true
	for _, opt := range options {
		opt(&r.options)
	}

	return nil
}

func (r *recordingUI) Close(context.Context) { r.closed = true }
func (r *recordingUI) Wait(context.Context)  { r.waited = true }

func (r *recordingUI) DisplayScanStart(_ context.Context, root m.Path) {
	r.calls = append(r.calls, "start")
	r.root = root
}

func (r *recordingUI) DisplayFileResults(_ context.Context, results []m.FileResult) {
	r.calls = append(r.calls, "files")
	r.files = results
}

func (r *recordingUI) DisplayWarnings(_ context.Context, warnings []m.Warning) {
	r.calls = append(r.calls, "warnings")
	r.warnings = warnings
}

func (r *recordingUI) DisplayViolations(_ context.Context, groups []m.ViolationGroup) {
	r.calls = append(r.calls, "violations")
	r.groups = groups
}

func (r *recordingUI) DisplaySuggestions(_ context.Context, suggestions []m.Suggestion, diff string) {
	r.calls = append(r.calls, "suggestions")
	r.suggestions = suggestions
	r.diff = diff
}

func (r *recordingUI) DisplayStatistics(_ context.Context, stats m.RunStatistics) {
	r.calls = append(r.calls, "stats")
	r.stats = &stats
}

func (r *recordingUI) DisplayFileTable(_ context.Context, results []m.FileResult) {
	r.calls = append(r.calls, "table")
	r.table = results
}

func (r *recordingUI) DisplayRules(_ context.Context, strictness string, rules []m.NamingRule) {
	r.calls = append(r.calls, "rules")
	r.strictness = strictness
	r.rules = rules
}

func newTestWorkflow() (Workflow, *recordingUI) {
	ui := &recordingUI{}
	return NewWorkflow(adapter.NewLocalSourceFSAdapter(), adapter.NewReportStore(), ui), ui
}

func checkArgs(root string) CheckArgs {
	return CheckArgs{ScanArgs: defaultScanArgs(root), Format: controller.FormatText}
}

func TestWorkflow_Check_CleanTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "test_string_lib.hpp"))

	wf, ui := newTestWorkflow()
	err := wf.Check(context.Background(), checkArgs(root))
	require.NoError(t, err)

	assert.True(t, ui.started)
	assert.True(t, ui.waited)
	assert.True(t, ui.closed)
	assert.Equal(t, []string{"start", "warnings", "violations", "stats"}, ui.calls)
	assert.Empty(t, ui.groups)
	require.NotNil(t, ui.stats)
	assert.Equal(t, 1, ui.stats.PrimaryTestFiles)
}

func TestWorkflow_Check_Violations(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "test_math.hpp"))

	wf, ui := newTestWorkflow()
	err := wf.Check(context.Background(), checkArgs(root))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrViolationsFound))

	require.Len(t, ui.groups, 1)
	violation := ui.groups[0].Violations[0]
	assert.Equal(t, m.PrimaryTest, violation.Category)
	assert.Equal(t, "naming format incorrect", violation.Reason)
	assert.Equal(t, "test_{module}_{submodule}.hpp", violation.Expected)
}

func TestWorkflow_Check_MissingRootDisplaysNothing(t *testing.T) {
	wf, ui := newTestWorkflow()

	err := wf.Check(context.Background(), checkArgs(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, adapter.ErrRootNotFound))
	assert.False(t, errors.Is(err, ErrViolationsFound))

	assert.False(t, ui.started)
	assert.Empty(t, ui.calls)
}

func TestWorkflow_Check_Options(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Table_Lib_Test.hpp"))

	args := checkArgs(root)
	args.Verbose = true
	args.StatsOnly = true
	args.SuggestFixes = true
	args.ShowDiff = true
	args.Interactive = true
	args.Format = controller.FormatTable

	wf, ui := newTestWorkflow()
	err := wf.Check(context.Background(), args)
	require.ErrorIs(t, err, ErrViolationsFound)

	assert.Equal(t, []string{"start", "files", "warnings", "suggestions", "stats"}, ui.calls)
	require.Len(t, ui.suggestions, 1)
	assert.Equal(t, "table_lib_test.hpp", ui.suggestions[0].Proposed)
	assert.Contains(t, ui.diff, "+table_lib_test.hpp")
	assert.Equal(t, controller.FormatTable, ui.options.Format())
	assert.True(t, ui.options.Pager())
}

func TestWorkflow_Check_NoSuggestionsWithoutViolations(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "helpers.hpp"))

	args := checkArgs(root)
	args.SuggestFixes = true

	wf, ui := newTestWorkflow()
	require.NoError(t, wf.Check(context.Background(), args))
	assert.NotContains(t, ui.calls, "suggestions")
}

func TestWorkflow_Check_SavesReportAndView(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "lib", "Table_Lib_Test.hpp"))
	writeFile(t, filepath.Join(root, "lib", "string_find_test.cpp"))

	reportPath := m.Path(filepath.Join(t.TempDir(), "naming.yaml"))

	args := checkArgs(root)
	args.ReportPath = reportPath

	wf, _ := newTestWorkflow()
	require.ErrorIs(t, wf.Check(context.Background(), args), ErrViolationsFound)

	viewer, ui := newTestWorkflow()
	err := viewer.View(context.Background(), ViewArgs{Report: reportPath, SuggestFixes: true})
	require.NoError(t, err)

	assert.Equal(t, m.Path(root), ui.root)
	require.Len(t, ui.groups, 1)
	assert.Equal(t, m.Path("lib/Table_Lib_Test.hpp"), ui.groups[0].Violations[0].File)
	require.NotNil(t, ui.stats)
	assert.Equal(t, 2, ui.stats.TotalFiles)
	require.Len(t, ui.suggestions, 1)
}

func TestWorkflow_View_MissingReport(t *testing.T) {
	wf, ui := newTestWorkflow()

	err := wf.View(context.Background(), ViewArgs{Report: m.Path(filepath.Join(t.TempDir(), "none.yaml"))})
	require.Error(t, err)
	assert.False(t, ui.started)
}

func TestWorkflow_List(t *testing.T) {
	root := fixtureTree(t)

	wf, ui := newTestWorkflow()
	require.NoError(t, wf.List(context.Background(), defaultScanArgs(root)))

	assert.Len(t, ui.table, 5)
	assert.Contains(t, ui.calls, "table")
}

func TestWorkflow_Rules(t *testing.T) {
	wf, ui := newTestWorkflow()
	require.NoError(t, wf.Rules(context.Background(), Lenient))

	assert.Equal(t, "lenient", ui.strictness)
	assert.Len(t, ui.rules, 3)
}

func TestWorkflow_Check_DisplaysWarnings(t *testing.T) {
	fsys := newFakeSourceFS(t)
	fsys.warnings = []m.Warning{{Path: "lib/private", Message: "permission denied"}}
	fsys.files = []m.CandidateFile{{RelPath: "lib/Bad.cpp", Name: "Bad.cpp", Ext: ".cpp"}}

	ui := &recordingUI{}
	wf := NewWorkflow(fsys, adapter.NewReportStore(), ui)

	err := wf.Check(context.Background(), checkArgs("src/tests"))
	require.ErrorIs(t, err, ErrViolationsFound)

	assert.Equal(t, fsys.warnings, ui.warnings)
	assert.Equal(t, []string{"start", "warnings", "violations", "stats"}, ui.calls)
}
