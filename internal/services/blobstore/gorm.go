package blobstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/killallgit/segment-editor/internal/models"
	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// GormStore keeps values in the blobs table of the application database
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a database-backed store. The blobs table must exist;
// see database.AutoMigrate.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get retrieves the value for key
func (gs *GormStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec models.BlobRecord
	err := gs.db.WithContext(ctx).Where("name = ?", key).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.DatabaseError("get blob", err)
	}
	return rec.Value, true, nil
}

// Set upserts the value for key
func (gs *GormStore) Set(ctx context.Context, key string, value []byte) error {
	rec := models.BlobRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	err := gs.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return apperrors.DatabaseError("set blob", err)
	}
	return nil
}

// Delete removes the value for key
func (gs *GormStore) Delete(ctx context.Context, key string) error {
	if err := gs.db.WithContext(ctx).Where("name = ?", key).Delete(&models.BlobRecord{}).Error; err != nil {
		return apperrors.DatabaseError("delete blob", err)
	}
	return nil
}

// Close is a no-op; the database is owned by the caller
func (gs *GormStore) Close() error {
	return nil
}
