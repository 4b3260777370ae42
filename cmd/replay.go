package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/killallgit/segment-editor/internal/models"
	"github.com/killallgit/segment-editor/internal/services/interaction"
	"github.com/killallgit/segment-editor/pkg/config"
	"github.com/killallgit/segment-editor/pkg/logger"
)

// replayCmd runs a recorded gesture script offline
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a recorded gesture script",
	Long: `Run a gesture script through the timeline interpreter and print every
emitted event as one JSON object per line.

A script holds the timeline snapshot, the track width in pixels and the
list of pointer and key messages, in the same format the gestures endpoint
accepts. Use "-" to read the script from stdin.

Example:
  segment-editor replay --file drag.json
  segment-editor replay --file - --width 800 < drag.json`,
	Annotations: map[string]string{annotationOutput: "stdout"},
	RunE:        runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringP("file", "f", "", "script file, - for stdin")
	replayCmd.Flags().Float64("width", 0, "track width in pixels (overrides the script)")
	replayCmd.Flags().Bool("selection-mode", false, "start in range selection mode")
	replayCmd.Flags().Float64("handle-px", interaction.DefaultHandlePx, "resize handle width in pixels")
	replayCmd.Flags().Float64("min-segment-px", interaction.DefaultMinSegmentPx, "narrowest segment a resize may produce, in pixels")
	_ = replayCmd.MarkFlagRequired("file")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if err := initLogging(cmd, config.LoggingConfig{Output: "stderr"}); err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("file")
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	script, err := interaction.LoadScript(r)
	if err != nil {
		return err
	}
	if width, _ := cmd.Flags().GetFloat64("width"); width > 0 {
		script.Width = width
	}

	opts := interaction.Options{Logger: logger.Named("replay")}
	opts.SelectionMode, _ = cmd.Flags().GetBool("selection-mode")
	opts.HandlePx, _ = cmd.Flags().GetFloat64("handle-px")
	opts.MinSegmentPx, _ = cmd.Flags().GetFloat64("min-segment-px")

	events, runErr := script.Run(opts)

	out := cmd.OutOrStdout()
	for _, ev := range events {
		data, err := models.MarshalEvent(ev)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	}
	return runErr
}
