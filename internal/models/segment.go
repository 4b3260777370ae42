package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TempIDPrefix marks identifiers that were issued on the client and never persisted.
const TempIDPrefix = "draft-"

// SegmentID identifies a segment. Persisted segments carry a numeric id,
// segments that only exist locally carry a temporary string id. The two forms
// never compare equal, even when the string spells the same number.
type SegmentID struct {
	num  int64
	temp string
}

// PersistedID returns the id of a segment stored by the backend.
func PersistedID(n int64) SegmentID {
	return SegmentID{num: n}
}

// TempID returns a temporary id. An empty string yields the zero SegmentID.
func TempID(s string) SegmentID {
	return SegmentID{temp: s}
}

// NewTempID issues a fresh temporary id.
func NewTempID() SegmentID {
	return TempID(TempIDPrefix + uuid.New().String())
}

// IsZero reports whether the id is unset.
func (id SegmentID) IsZero() bool {
	return id.num == 0 && id.temp == ""
}

// IsPersisted reports whether the id came from the backend.
func (id SegmentID) IsPersisted() bool {
	return id.temp == "" && id.num != 0
}

// Num returns the numeric id and whether the id is persisted.
func (id SegmentID) Num() (int64, bool) {
	return id.num, id.IsPersisted()
}

func (id SegmentID) String() string {
	if id.temp != "" {
		return id.temp
	}
	return strconv.FormatInt(id.num, 10)
}

// MarshalJSON encodes persisted ids as numbers and temporary ids as strings.
func (id SegmentID) MarshalJSON() ([]byte, error) {
	if id.temp != "" {
		return json.Marshal(id.temp)
	}
	return []byte(strconv.FormatInt(id.num, 10)), nil
}

// UnmarshalJSON accepts a JSON number or a non-empty JSON string.
func (id *SegmentID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("segment id must not be null")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("segment id must not be empty")
		}
		*id = TempID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("segment id must be a number or string: %w", err)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("segment id must be an integer: %w", err)
	}
	*id = PersistedID(v)
	return nil
}

// ParseSegmentID interprets a path or form value. Integers become persisted
// ids, anything else a temporary id.
func ParseSegmentID(s string) (SegmentID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SegmentID{}, fmt.Errorf("empty segment id")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return PersistedID(n), nil
	}
	return TempID(s), nil
}

// Segment is a labeled time interval on a media timeline. EndTime is nil only
// while the segment is still being recorded.
type Segment struct {
	ID         SegmentID `json:"id"`
	MediaID    string    `json:"video_id"`
	Label      string    `json:"label"`
	StartTime  float64   `json:"start_time"`
	EndTime    *float64  `json:"end_time"`
	Confidence *float64  `json:"confidence,omitempty"`
}

// Complete reports whether the segment has an end time.
func (s Segment) Complete() bool {
	return s.EndTime != nil
}

// End returns the end time, or now while the segment is incomplete.
func (s Segment) End(now float64) float64 {
	if s.EndTime == nil {
		return now
	}
	return *s.EndTime
}

// Float returns a pointer to v, for optional fields.
func Float(v float64) *float64 {
	return &v
}

// Media is a reviewable media item with a known duration.
type Media struct {
	ID        string  `json:"id" gorm:"primaryKey;size:128"`
	Title     string  `json:"title"`
	Duration  float64 `json:"duration"` // seconds
	FrameRate float64 `json:"frame_rate"`
}

// TableName returns the table name for the Media model
func (Media) TableName() string {
	return "media"
}

// SegmentRecord is the stored form of a Segment.
type SegmentRecord struct {
	gorm.Model
	MediaID    string   `json:"video_id" gorm:"not null;index;size:128"`
	Label      string   `json:"label" gorm:"not null"`
	StartTime  float64  `json:"start_time" gorm:"not null"` // Time in seconds
	EndTime    *float64 `json:"end_time"`                   // nil while recording
	Confidence *float64 `json:"confidence"`
}

// TableName returns the table name for the SegmentRecord model
func (SegmentRecord) TableName() string {
	return "segments"
}

// ToSegment converts the stored record into the domain value.
func (r SegmentRecord) ToSegment() Segment {
	return Segment{
		ID:         PersistedID(int64(r.ID)),
		MediaID:    r.MediaID,
		Label:      r.Label,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Confidence: r.Confidence,
	}
}

// Snapshot is the read-only view of one media item the timeline renders from.
type Snapshot struct {
	MediaID  string    `json:"video_id"`
	Duration float64   `json:"duration"`
	Segments []Segment `json:"segments"`
}

// HasMedia reports whether a media item is loaded.
func (s Snapshot) HasMedia() bool {
	return s.MediaID != ""
}

// Find returns the segment with the given id.
func (s Snapshot) Find(id SegmentID) (Segment, bool) {
	for _, seg := range s.Segments {
		if seg.ID == id {
			return seg, true
		}
	}
	return Segment{}, false
}
