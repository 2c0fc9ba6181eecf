package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/goldbach/internal/verify"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVerify_DefaultSuiteText(t *testing.T) {
	out, err := execute(t, "verify")
	require.NoError(t, err)

	assert.Contains(t, out, "Theorem suite: chen-theorems")
	assert.Contains(t, out, "Discriminant formula")
	assert.Contains(t, out, "Conduit uniformity")
	assert.Contains(t, out, "PASS: 14 passed, 0 failed, 0 skipped")
}

func TestVerify_DefaultSuiteJSON(t *testing.T) {
	out, err := execute(t, "verify", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   *verify.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Data)
	assert.True(t, resp.Data.Pass)
	assert.Equal(t, 14, resp.Data.Passed)
	assert.Equal(t, "chen-theorems", resp.Data.Suite)
}

func TestVerify_CustomSuiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	content := `
name: custom
description: "one vector"
discriminant:
  - {n: 21, p: 5}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, "verify", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Theorem suite: custom")
	assert.Contains(t, out, "PASS: 1 passed, 0 failed, 0 skipped")
}

func TestVerify_MissingSuiteFileIsCommandError(t *testing.T) {
	_, err := execute(t, "verify", "/nonexistent/suite.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load suite")
}

func TestVerify_MalformedSuiteIsCommandError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [broken\n"), 0644))

	_, err := execute(t, "verify", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
