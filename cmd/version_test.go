package cmd

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Run("version command shows version info", func(t *testing.T) {
		out, err := execute(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "Segment Editor API")
		assert.Contains(t, out, "Version:      v"+Version)
		assert.Contains(t, out, "OS/Arch:")
	})

	t.Run("version command with --short flag", func(t *testing.T) {
		out, err := execute(t, "version", "--short")
		require.NoError(t, err)
		assert.Equal(t, "v"+Version+"\n", out)
	})

	t.Run("version command with --json flag", func(t *testing.T) {
		out, err := execute(t, "version", "--json")
		require.NoError(t, err)

		var info map[string]string
		require.NoError(t, json.Unmarshal([]byte(out), &info))
		assert.Equal(t, "v"+Version, info["version"])
		assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info["platform"])
		assert.Equal(t, GitCommit, info["git_commit"])
	})
}

func TestVersionFlags(t *testing.T) {
	assert.NotNil(t, versionCmd.Flags().Lookup("short"), "Expected short flag to be registered")
	assert.NotNil(t, versionCmd.Flags().Lookup("json"), "Expected json flag to be registered")
}
