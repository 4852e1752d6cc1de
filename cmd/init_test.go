package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// inTempDir runs the test from an empty working directory, where init
// writes its file.
func inTempDir(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func runInit(args ...string) error {
	cmd := newRootCmd()
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"init"}, args...))

	return cmd.Execute()
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	useTempLog(t)
	tempDir := inTempDir(t)

	require.NoError(t, runInit())

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)

	var config map[string]any
	require.NoError(t, yaml.Unmarshal(contents, &config))

	assert.Contains(t, config, "paths")
	assert.Contains(t, config, "compare")
	assert.Contains(t, config, "output")
	assert.Contains(t, config, "log")
	assert.EqualValues(t, currentConfigVersion, config[configVersionKey])
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	useTempLog(t)
	tempDir := inTempDir(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	require.Error(t, runInit())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}

func TestInitCmd_RejectsArguments(t *testing.T) {
	useTempLog(t)
	inTempDir(t)

	require.Error(t, runInit("extra"))
}
