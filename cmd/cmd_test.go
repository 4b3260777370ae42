package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of cmd and its children to its default, so
// that one test's flags never leak into the next on the shared root command.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// execute runs the root command with args and returns its output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	resetFlags(cmd)
	serverHost, serverPort = "", 0

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// isolate points the database and draft storage at a temporary directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SEGEDIT_DATABASE_PATH", filepath.Join(dir, "segments.db"))
	t.Setenv("SEGEDIT_STORAGE_FILE_DIR", filepath.Join(dir, "drafts"))
	t.Setenv("SEGEDIT_LOGGING_OUTPUT", "stderr")
	t.Setenv("SEGEDIT_LOGGING_LEVEL", "error")
	return dir
}
