package models

import "time"

// BlobRecord is a named opaque value stored in the database.
type BlobRecord struct {
	Key       string    `gorm:"column:name;primaryKey;size:191"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for the BlobRecord model
func (BlobRecord) TableName() string {
	return "blobs"
}
