package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/killallgit/segment-editor/internal/database"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema of the Segment Editor API.

The schema is derived from the application models: media, segments and
the blob table used by the database draft storage backend.

Available subcommands:
  up      - Create or update all tables
  down    - Drop all application tables
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update all tables",
	Long: `Create missing tables and add missing columns and indexes.

Existing data is kept; columns are never dropped.`,
	Annotations: map[string]string{annotationOutput: "stdout"},
	RunE:        runMigrateUp,
}

// migrateDownCmd drops the schema
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop all application tables",
	Long: `Drop every application table, deleting all stored media, segments
and database-backed drafts. Requires --yes.`,
	Annotations: map[string]string{annotationOutput: "stdout"},
	RunE:        runMigrateDown,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

This command lists every application table and whether it exists.`,
	Annotations: map[string]string{annotationOutput: "stdout"},
	RunE:        runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateDownCmd.Flags().Bool("yes", false, "confirm dropping all tables")
	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func openDatabase(cmd *cobra.Command) (*database.DB, error) {
	if err := loadConfig(cmd); err != nil {
		return nil, err
	}
	db, err := database.Open(appConfig.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func tableName(db *database.DB, model any) string {
	stmt := &gorm.Statement{DB: db.DB}
	if err := stmt.Parse(model); err != nil || stmt.Schema == nil {
		return fmt.Sprintf("%T", model)
	}
	return stmt.Schema.Table
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	out := cmd.OutOrStdout()

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		for _, model := range database.Models() {
			fmt.Fprintf(out, "  would migrate %s\n", tableName(db, model))
		}
		return nil
	}

	if err := db.AutoMigrate(database.Models()...); err != nil {
		return err
	}
	fmt.Fprintf(out, "Migrated %d tables\n", len(database.Models()))
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	out := cmd.OutOrStdout()

	if !dryRun && !yes {
		return fmt.Errorf("refusing to drop tables without --yes")
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	// reverse order so dependents go first
	models := slices.Clone(database.Models())
	slices.Reverse(models)

	for _, model := range models {
		name := tableName(db, model)
		if dryRun {
			fmt.Fprintf(out, "  would drop %s\n", name)
			continue
		}
		if err := db.Migrator().DropTable(model); err != nil {
			return fmt.Errorf("failed to drop %s: %w", name, err)
		}
		fmt.Fprintf(out, "Dropped %s\n", name)
	}
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintf(out, "Driver: %s\n", appConfig.Database.Driver)
	for _, model := range database.Models() {
		state := "missing"
		if db.Migrator().HasTable(model) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-12s %s\n", tableName(db, model), state)
	}
	return nil
}
