package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/api"
	"github.com/killallgit/segment-editor/api/types"
	"github.com/killallgit/segment-editor/internal/database"
	"github.com/killallgit/segment-editor/internal/services/blobstore"
	"github.com/killallgit/segment-editor/internal/services/drafts"
	"github.com/killallgit/segment-editor/internal/services/segments"
	"github.com/killallgit/segment-editor/pkg/config"
	"github.com/killallgit/segment-editor/pkg/logger"
)

// application bundles the long-lived services built from configuration
type application struct {
	cfg       *config.Config
	db        *database.DB
	blobs     blobstore.Store
	persister *drafts.BlobPersister
	drafts    *drafts.Store
	segments  segments.Service
	log       *zap.Logger
}

// openApplication connects the database, migrates it, opens the draft
// storage backend and loads the persisted drafts.
func openApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	log := logger.L()

	db, err := database.InitializeWithMigrations(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	blobs, err := blobstore.New(ctx, cfg.Storage, db.DB)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open draft storage: %w", err)
	}

	persister := drafts.NewBlobPersister(blobs, cfg.Storage.Key)
	store := drafts.NewStore(persister, drafts.WithLogger(log))
	store.Init(ctx)

	log.Info("application ready",
		zap.String("database_driver", cfg.Database.Driver),
		zap.String("storage_backend", cfg.Storage.Backend),
		zap.String("draft_key", cfg.Storage.Key),
		zap.Int("drafts", store.DraftAnnotations().Count()))

	return &application{
		cfg:       cfg,
		db:        db,
		blobs:     blobs,
		persister: persister,
		drafts:    store,
		segments:  segments.NewService(segments.NewRepository(db.DB), log),
		log:       log,
	}, nil
}

// server builds the HTTP server over the application services
func (a *application) server() (*api.Server, error) {
	srv := api.NewServer(*a.cfg)
	srv.SetDependencies(&types.Dependencies{
		DB:             a.db,
		SegmentService: a.segments,
		Drafts:         types.NewDraftStore(a.drafts),
		Timeline:       a.cfg.Timeline,
		WebSocket:      a.cfg.WebSocket,
		Logger:         a.log.Named("api"),
		Version:        Version,
	})
	if err := srv.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}
	return srv, nil
}

// Close releases the storage backend and the database
func (a *application) Close() {
	if err := a.blobs.Close(); err != nil {
		a.log.Warn("failed to close draft storage", zap.Error(err))
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn("failed to close database", zap.Error(err))
	}
}
