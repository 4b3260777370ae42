package segments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/killallgit/segment-editor/internal/models"
	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Media{}, &models.SegmentRecord{}))
	return db
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(setupTestDB(t))

	t.Run("media upsert", func(t *testing.T) {
		require.NoError(t, repo.SaveMedia(ctx, &models.Media{ID: "42", Title: "first", Duration: 60}))
		require.NoError(t, repo.SaveMedia(ctx, &models.Media{ID: "42", Title: "second", Duration: 90}))

		m, err := repo.GetMedia(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, "second", m.Title)
		assert.Equal(t, 90.0, m.Duration)

		all, err := repo.ListMedia(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		_, err = repo.GetMedia(ctx, "missing")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})

	t.Run("segments are listed by start time", func(t *testing.T) {
		late := &models.SegmentRecord{MediaID: "42", Label: "polyp", StartTime: 30, EndTime: models.Float(40)}
		early := &models.SegmentRecord{MediaID: "42", Label: "blood", StartTime: 5, EndTime: models.Float(8)}
		open := &models.SegmentRecord{MediaID: "42", Label: "polyp", StartTime: 50}
		other := &models.SegmentRecord{MediaID: "7", Label: "polyp", StartTime: 1, EndTime: models.Float(2)}
		for _, r := range []*models.SegmentRecord{late, early, open, other} {
			require.NoError(t, repo.CreateSegment(ctx, r))
			assert.NotZero(t, r.ID)
		}

		list, err := repo.ListSegments(ctx, "42")
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, early.ID, list[0].ID)
		assert.Equal(t, late.ID, list[1].ID)
		assert.Nil(t, list[2].EndTime)
	})

	t.Run("update and delete", func(t *testing.T) {
		r := &models.SegmentRecord{MediaID: "42", Label: "polyp", StartTime: 60, EndTime: models.Float(70)}
		require.NoError(t, repo.CreateSegment(ctx, r))

		r.StartTime = 61
		require.NoError(t, repo.UpdateSegment(ctx, r))

		got, err := repo.GetSegment(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, 61.0, got.StartTime)

		require.NoError(t, repo.DeleteSegment(ctx, r.ID))
		_, err = repo.GetSegment(ctx, r.ID)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

		err = repo.DeleteSegment(ctx, r.ID)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})
}

func TestServiceWithRepository(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewRepository(setupTestDB(t)), nil)

	require.NoError(t, service.RegisterMedia(ctx, &models.Media{ID: "v1", Duration: 100}))
	seg, err := service.CreateSegment(ctx, "v1", CreateInput{Label: "polyp", StartTime: 10, EndTime: models.Float(20)})
	require.NoError(t, err)

	applied, err := service.Apply(ctx, "v1", models.SegmentMove{ID: seg.ID, Start: 50, End: 60, Final: true})
	require.NoError(t, err)
	require.True(t, applied)

	snap, err := service.Snapshot(ctx, "v1")
	require.NoError(t, err)
	require.Len(t, snap.Segments, 1)
	assert.Equal(t, 50.0, snap.Segments[0].StartTime)
	assert.Equal(t, 60.0, *snap.Segments[0].EndTime)

	applied, err = service.Apply(ctx, "v1", models.SegmentDelete{Segment: snap.Segments[0]})
	require.NoError(t, err)
	require.True(t, applied)

	snap, err = service.Snapshot(ctx, "v1")
	require.NoError(t, err)
	assert.Empty(t, snap.Segments)
}
