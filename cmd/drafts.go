package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/killallgit/segment-editor/internal/database"
	"github.com/killallgit/segment-editor/internal/services/blobstore"
	"github.com/killallgit/segment-editor/internal/services/drafts"
	"github.com/killallgit/segment-editor/pkg/logger"
	"github.com/killallgit/segment-editor/pkg/timescale"
)

// draftsCmd groups draft maintenance commands
var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "Inspect and clear buffered annotation drafts",
	Long: `Inspect and clear the annotation drafts held in the configured draft
storage backend.

Available subcommands:
  list    - Print drafts per media item
  clear   - Remove drafts of one media item, or all drafts
  export  - Print the stored record exactly as persisted`,
}

var draftsListCmd = &cobra.Command{
	Use:         "list",
	Short:       "Print drafts per media item",
	Annotations: map[string]string{annotationOutput: "stdout"},
	RunE:        runDraftsList,
}

var draftsClearCmd = &cobra.Command{
	Use:         "clear",
	Short:       "Remove drafts",
	Long:        `Remove the drafts of the media item given by --media, or every draft when --media is omitted.`,
	Annotations: map[string]string{annotationOutput: "stdout"},
	RunE:        runDraftsClear,
}

var draftsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the stored draft record",
	Long: `Print the draft record exactly as persisted, without validation. A
record that fails to load is still exported, which makes this the way to
recover drafts the server discarded as malformed.`,
	Annotations: map[string]string{annotationOutput: "stdout"},
	RunE:        runDraftsExport,
}

func init() {
	rootCmd.AddCommand(draftsCmd)
	draftsCmd.AddCommand(draftsListCmd)
	draftsCmd.AddCommand(draftsClearCmd)
	draftsCmd.AddCommand(draftsExportCmd)

	draftsListCmd.Flags().String("media", "", "only this media id")
	draftsClearCmd.Flags().String("media", "", "only this media id")
}

// openDrafts opens the configured draft backend and loads the store
func openDrafts(cmd *cobra.Command) (*drafts.Store, *drafts.BlobPersister, func(), error) {
	if err := loadConfig(cmd); err != nil {
		return nil, nil, nil, err
	}
	ctx := commandContext(cmd)

	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	storage := appConfig.Storage
	var blobs blobstore.Store
	var err error
	if storage.Backend == "gorm" {
		db, dbErr := database.InitializeWithMigrations(appConfig.Database)
		if dbErr != nil {
			return nil, nil, nil, fmt.Errorf("failed to open database: %w", dbErr)
		}
		closers = append(closers, db.Close)
		if err := db.HealthCheck(); err != nil {
			cleanup()
			return nil, nil, nil, err
		}
		blobs, err = blobstore.New(ctx, storage, db.DB)
	} else {
		blobs, err = blobstore.New(ctx, storage, nil)
	}
	if err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("failed to open draft storage: %w", err)
	}
	closers = append(closers, blobs.Close)

	persister := drafts.NewBlobPersister(blobs, storage.Key)
	store := drafts.NewStore(persister, drafts.WithLogger(logger.L()))
	store.Init(ctx)
	return store, persister, cleanup, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runDraftsList(cmd *cobra.Command, args []string) error {
	store, _, cleanup, err := openDrafts(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	only, _ := cmd.Flags().GetString("media")
	ids := store.MediaIDs()
	if only != "" {
		ids = []string{only}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MEDIA\tID\tLABEL\tSTART\tEND\tUPDATED")
	total := 0
	for _, mediaID := range ids {
		for _, d := range store.GetDraftsForVideo(mediaID) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				mediaID, d.ID, d.Label,
				timescale.FormatTime(d.Start), timescale.FormatTime(d.End), d.UpdatedAt)
			total++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d drafts\n", total)
	return nil
}

func runDraftsClear(cmd *cobra.Command, args []string) error {
	store, _, cleanup, err := openDrafts(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := commandContext(cmd)
	only, _ := cmd.Flags().GetString("media")
	if only != "" {
		n := len(store.GetDraftsForVideo(only))
		store.ClearDraftsForVideo(ctx, only)
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d drafts of %s\n", n, only)
		return nil
	}

	n := store.DraftAnnotations().Count()
	store.ClearAllDrafts(ctx)
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d drafts\n", n)
	return nil
}

func runDraftsExport(cmd *cobra.Command, args []string) error {
	_, persister, cleanup, err := openDrafts(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	raw, ok, err := persister.Raw(commandContext(cmd))
	if err != nil {
		return err
	}
	if !ok || len(raw) == 0 {
		raw = []byte("{}")
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(raw))
	return nil
}
