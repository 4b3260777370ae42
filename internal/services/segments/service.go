package segments

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/killallgit/segment-editor/internal/models"
	apperrors "github.com/killallgit/segment-editor/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	log        *zap.Logger
}

// NewService creates a new segment service
func NewService(repository Repository, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &ServiceImpl{
		repository: repository,
		log:        log.Named("segments"),
	}
}

// RegisterMedia creates or updates a media item
func (s *ServiceImpl) RegisterMedia(ctx context.Context, media *models.Media) error {
	if strings.TrimSpace(media.ID) == "" {
		return apperrors.MissingFieldError("id")
	}
	if !finite(media.Duration) || media.Duration <= 0 {
		return apperrors.ValidationError("duration", "must be a positive number of seconds")
	}
	if media.FrameRate < 0 || !finite(media.FrameRate) {
		return apperrors.ValidationError("frame_rate", "must not be negative")
	}
	return s.repository.SaveMedia(ctx, media)
}

// ListMedia returns all registered media
func (s *ServiceImpl) ListMedia(ctx context.Context) ([]models.Media, error) {
	return s.repository.ListMedia(ctx)
}

// Snapshot loads the media duration and its segments
func (s *ServiceImpl) Snapshot(ctx context.Context, mediaID string) (models.Snapshot, error) {
	media, err := s.repository.GetMedia(ctx, mediaID)
	if err != nil {
		return models.Snapshot{}, err
	}
	records, err := s.repository.ListSegments(ctx, mediaID)
	if err != nil {
		return models.Snapshot{}, err
	}

	segs := make([]models.Segment, len(records))
	for i, r := range records {
		segs[i] = r.ToSegment()
	}
	return models.Snapshot{
		MediaID:  media.ID,
		Duration: media.Duration,
		Segments: segs,
	}, nil
}

// CreateSegment validates and stores a new segment
func (s *ServiceImpl) CreateSegment(ctx context.Context, mediaID string, in CreateInput) (models.Segment, error) {
	media, err := s.repository.GetMedia(ctx, mediaID)
	if err != nil {
		return models.Segment{}, err
	}
	if err := validateInterval(media.Duration, in.StartTime, in.EndTime); err != nil {
		return models.Segment{}, err
	}
	if strings.TrimSpace(in.Label) == "" {
		return models.Segment{}, apperrors.MissingFieldError("label")
	}

	record := &models.SegmentRecord{
		MediaID:    mediaID,
		Label:      in.Label,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		Confidence: in.Confidence,
	}
	if err := s.repository.CreateSegment(ctx, record); err != nil {
		return models.Segment{}, err
	}
	return record.ToSegment(), nil
}

// Apply persists the edits carried by final timeline events
func (s *ServiceImpl) Apply(ctx context.Context, mediaID string, event models.Event) (bool, error) {
	switch e := event.(type) {
	case models.SegmentMove:
		if !e.Final {
			return false, nil
		}
		return s.updateInterval(ctx, mediaID, e.ID, e.Start, e.End)
	case models.SegmentResize:
		if !e.Final {
			return false, nil
		}
		return s.updateInterval(ctx, mediaID, e.ID, e.Start, e.End)
	case models.SegmentDelete:
		record, ok, err := s.lookup(ctx, mediaID, e.Segment.ID)
		if err != nil || !ok {
			return false, err
		}
		if err := s.repository.DeleteSegment(ctx, record.ID); err != nil {
			return false, err
		}
		s.log.Info("segment deleted",
			zap.String("media_id", mediaID),
			zap.Uint("segment_id", record.ID))
		return true, nil
	default:
		return false, nil
	}
}

func (s *ServiceImpl) updateInterval(ctx context.Context, mediaID string, id models.SegmentID, start, end float64) (bool, error) {
	record, ok, err := s.lookup(ctx, mediaID, id)
	if err != nil || !ok {
		return false, err
	}
	media, err := s.repository.GetMedia(ctx, mediaID)
	if err != nil {
		return false, err
	}
	if err := validateInterval(media.Duration, start, &end); err != nil {
		return false, err
	}

	record.StartTime = start
	record.EndTime = models.Float(end)
	if err := s.repository.UpdateSegment(ctx, record); err != nil {
		return false, err
	}
	s.log.Debug("segment interval updated",
		zap.String("media_id", mediaID),
		zap.Uint("segment_id", record.ID),
		zap.Float64("start", start),
		zap.Float64("end", end))
	return true, nil
}

// lookup resolves a timeline id to a stored segment of mediaID. Temporary ids
// have no stored segment and report false without error.
func (s *ServiceImpl) lookup(ctx context.Context, mediaID string, id models.SegmentID) (*models.SegmentRecord, bool, error) {
	n, ok := id.Num()
	if !ok || n <= 0 {
		s.log.Debug("ignoring edit of unsaved segment",
			zap.String("media_id", mediaID),
			zap.String("segment_id", id.String()))
		return nil, false, nil
	}
	record, err := s.repository.GetSegment(ctx, uint(n))
	if err != nil {
		return nil, false, err
	}
	if record.MediaID != mediaID {
		return nil, false, apperrors.NotFound("segment", n).WithDetail("media_id", mediaID)
	}
	return record, true, nil
}

func validateInterval(duration, start float64, end *float64) error {
	if !finite(start) || start < 0 {
		return apperrors.ValidationError("start_time", "must be a non-negative number")
	}
	if end == nil {
		return nil
	}
	if !finite(*end) || start >= *end {
		return apperrors.ValidationError("end_time", "must be after start_time")
	}
	if duration > 0 && *end > duration {
		return apperrors.ValidationError("end_time", "must not exceed the media duration")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
