package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/killallgit/segment-editor/pkg/config"
	"github.com/killallgit/segment-editor/pkg/logger"
)

// appConfig is the loaded configuration, set by loadConfig
var appConfig *config.Config

// annotationOutput marks commands that write their results to stdout
const annotationOutput = "output"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "segment-editor",
	Short: "Segment Editor API server",
	Long: `Segment Editor API - timeline segment editing for annotated video

The server keeps labeled time segments per media item, renders them as
timeline rows, turns pointer gestures into seek, selection, move and
resize edits, and buffers annotation drafts in a write-through store.

Features:
  • Segment storage on SQLite or MySQL
  • Timeline layout with zoom-dependent time markers
  • Gesture replay over HTTP and live editing over WebSocket
  • Draft buffering on memory, file, database, Redis or MinIO storage`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig loads the configuration and installs the process logger.
// Only commands that need configuration call it. Commands that print results
// on stdout keep their logs on stderr.
func loadConfig(cmd *cobra.Command) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("error initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	logging := cfg.Logging
	if cmd.Annotations[annotationOutput] == "stdout" && (logging.Output == "" || logging.Output == "stdout") {
		logging.Output = "stderr"
	}
	return initLogging(cmd, logging)
}

// initLogging builds the process logger from config, with the command line
// flags taking precedence.
func initLogging(cmd *cobra.Command, cfg config.LoggingConfig) error {
	lc := logger.Config{
		Level:            cfg.Level,
		Format:           cfg.Format,
		Output:           cfg.Output,
		FilePath:         cfg.FilePath,
		MaxSize:          cfg.MaxSize,
		MaxBackups:       cfg.MaxBackups,
		MaxAge:           cfg.MaxAge,
		Compress:         cfg.Compress,
		EnableCaller:     cfg.EnableCaller,
		EnableStacktrace: cfg.EnableStacktrace,
	}
	if f := cmd.Flag("log-level"); f != nil && (f.Changed || lc.Level == "") {
		lc.Level = f.Value.String()
	}
	if f := cmd.Flag("json-logs"); f != nil && f.Value.String() == "true" {
		lc.Format = "json"
	} else if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stderr"
	}

	if err := logger.Init(lc); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
