package segments

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/killallgit/segment-editor/internal/models"
	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new segment repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// SaveMedia creates a media item or updates its metadata
func (r *RepositoryImpl) SaveMedia(ctx context.Context, media *models.Media) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "duration", "frame_rate"}),
	}).Create(media).Error
	if err != nil {
		return apperrors.DatabaseError("save media", err)
	}
	return nil
}

// GetMedia retrieves a media item by its ID
func (r *RepositoryImpl) GetMedia(ctx context.Context, id string) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("media", id)
		}
		return nil, apperrors.DatabaseError("get media", err)
	}
	return &media, nil
}

// ListMedia returns all media items ordered by id
func (r *RepositoryImpl) ListMedia(ctx context.Context) ([]models.Media, error) {
	var media []models.Media
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&media).Error; err != nil {
		return nil, apperrors.DatabaseError("list media", err)
	}
	return media, nil
}

// CreateSegment inserts a new segment
func (r *RepositoryImpl) CreateSegment(ctx context.Context, record *models.SegmentRecord) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return apperrors.DatabaseError("create segment", err)
	}
	return nil
}

// GetSegment retrieves a segment by its ID
func (r *RepositoryImpl) GetSegment(ctx context.Context, id uint) (*models.SegmentRecord, error) {
	var record models.SegmentRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("segment", id)
		}
		return nil, apperrors.DatabaseError("get segment", err)
	}
	return &record, nil
}

// ListSegments retrieves the segments of one media item ordered by start time
func (r *RepositoryImpl) ListSegments(ctx context.Context, mediaID string) ([]models.SegmentRecord, error) {
	var records []models.SegmentRecord
	if err := r.db.WithContext(ctx).
		Where("media_id = ?", mediaID).
		Order("start_time ASC").
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, apperrors.DatabaseError("list segments", err)
	}
	return records, nil
}

// UpdateSegment saves an existing segment
func (r *RepositoryImpl) UpdateSegment(ctx context.Context, record *models.SegmentRecord) error {
	result := r.db.WithContext(ctx).Save(record)
	if result.Error != nil {
		return apperrors.DatabaseError("update segment", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("segment", record.ID)
	}
	return nil
}

// DeleteSegment deletes a segment by its ID
func (r *RepositoryImpl) DeleteSegment(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SegmentRecord{}, id)
	if result.Error != nil {
		return apperrors.DatabaseError("delete segment", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("segment", id)
	}
	return nil
}
