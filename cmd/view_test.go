package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namelint.dev/pkg/namelint/internal/domain"
)

func TestViewCmd_ShowsSavedReport(t *testing.T) {
	root := writeTree(t, "test_math.hpp", "lib/string_find_test.cpp")
	reportPath := filepath.Join(t.TempDir(), "reports", "naming.yaml")

	_, _, err := executeRoot(t, "--report", reportPath, root)
	require.ErrorIs(t, err, domain.ErrViolationsFound)

	_, err = os.Stat(reportPath)
	require.NoError(t, err)

	out, _, err := executeRoot(t, "view", "--suggest-fixes", reportPath)

	require.NoError(t, err)
	assert.Contains(t, out, "Checking directory: "+root)
	assert.Contains(t, out, "Found 1 naming issue(s)")
	assert.Contains(t, out, "test_math.hpp -> use format test_{module}_{submodule}.hpp")
	assert.Contains(t, out, "Compliance rate:      50.0%")
}

func TestViewCmd_MissingReport(t *testing.T) {
	_, _, err := executeRoot(t, "view", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestViewCmd_RequiresReportArg(t *testing.T) {
	_, _, err := executeRoot(t, "view")
	require.Error(t, err)
}
