package drafts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/killallgit/segment-editor/internal/models"
)

// TimestampLayout renders draft timestamps as UTC ISO-8601 with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var validate = validator.New()

// Encode serializes a bucket into the persisted blob format.
func Encode(bucket models.DraftBucket) ([]byte, error) {
	if bucket == nil {
		bucket = models.DraftBucket{}
	}
	return json.Marshal(bucket)
}

// Decode parses and validates a persisted blob. Any structural or value
// error rejects the whole blob.
func Decode(data []byte) (models.DraftBucket, error) {
	if kind(data) != '{' {
		return nil, fmt.Errorf("top level must be an object")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	bucket := make(models.DraftBucket, len(raw))
	for mediaID, listRaw := range raw {
		if kind(listRaw) != '[' {
			return nil, fmt.Errorf("drafts for %q must be an array", mediaID)
		}
		var entries []map[string]json.RawMessage
		if err := json.Unmarshal(listRaw, &entries); err != nil {
			return nil, fmt.Errorf("drafts for %q: %w", mediaID, err)
		}

		list := make([]models.AnnotationDraft, 0, len(entries))
		seen := make(map[models.SegmentID]struct{}, len(entries))
		for i, fields := range entries {
			d, err := decodeEntry(fields)
			if err != nil {
				return nil, fmt.Errorf("draft %d for %q: %w", i, mediaID, err)
			}
			if _, dup := seen[d.ID]; dup {
				return nil, fmt.Errorf("draft %d for %q: duplicate id %s", i, mediaID, d.ID)
			}
			seen[d.ID] = struct{}{}
			list = append(list, d)
		}
		bucket[mediaID] = list
	}
	return bucket, nil
}

// decodeEntry checks the JSON type of every field before decoding, so a
// number where a string belongs is rejected rather than coerced.
func decodeEntry(fields map[string]json.RawMessage) (models.AnnotationDraft, error) {
	var d models.AnnotationDraft
	if fields == nil {
		return d, fmt.Errorf("entry must be an object")
	}

	required := map[string]byte{
		"label":     '"',
		"start":     '0',
		"end":       '0',
		"isDraft":   't',
		"createdAt": '"',
		"updatedAt": '"',
	}
	for name, want := range required {
		raw, ok := fields[name]
		if !ok {
			return d, fmt.Errorf("missing field %q", name)
		}
		if got := kind(raw); got != want {
			return d, fmt.Errorf("field %q has the wrong type", name)
		}
	}

	idRaw, ok := fields["id"]
	if !ok {
		return d, fmt.Errorf("missing field %q", "id")
	}
	if k := kind(idRaw); k != '"' && k != '0' {
		return d, fmt.Errorf("field %q must be a number or string", "id")
	}
	if note, ok := fields["note"]; ok {
		if k := kind(note); k != '"' && k != 'n' {
			return d, fmt.Errorf("field %q must be a string", "note")
		}
	}
	if !bytes.Equal(bytes.TrimSpace(fields["isDraft"]), []byte("true")) {
		return d, fmt.Errorf("field %q must be true", "isDraft")
	}

	obj, err := json.Marshal(fields)
	if err != nil {
		return d, err
	}
	if err := json.Unmarshal(obj, &d); err != nil {
		return d, err
	}

	for name, ts := range map[string]string{"createdAt": d.CreatedAt, "updatedAt": d.UpdatedAt} {
		if _, err := time.Parse(time.RFC3339, ts); err != nil {
			return d, fmt.Errorf("field %q is not an ISO-8601 timestamp", name)
		}
	}
	if err := validate.Struct(d); err != nil {
		return d, err
	}
	return d, nil
}

// kind classifies a JSON value by its first byte: '{', '[', '"', 't' (true
// or false), 'n' (null) or '0' (number). Empty input yields 0.
func kind(raw []byte) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	switch c := raw[0]; c {
	case '{', '[', '"', 'n':
		return c
	case 't', 'f':
		return 't'
	default:
		return '0'
	}
}
