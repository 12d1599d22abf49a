package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCmd_Strict(t *testing.T) {
	out, _, err := executeRoot(t, "rules")

	require.NoError(t, err)
	assert.Contains(t, out, "Naming rules (strict):")
	assert.Contains(t, out, "test_{module}_{submodule}.hpp")
	assert.Contains(t, out, "{module}_{feature}_test.hpp/cpp")
	assert.Contains(t, out, "lowercase letters, digits and underscores only")
}

func TestRulesCmd_Lenient(t *testing.T) {
	out, _, err := executeRoot(t, "rules", "--strictness", "lenient")

	require.NoError(t, err)
	assert.Contains(t, out, "Naming rules (lenient):")
}

func TestRulesCmd_RejectsArgs(t *testing.T) {
	_, _, err := executeRoot(t, "rules", "extra")
	require.Error(t, err)
}
