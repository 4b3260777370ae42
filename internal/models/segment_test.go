package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentID(t *testing.T) {
	t.Run("persisted and temporary ids never compare equal", func(t *testing.T) {
		assert.NotEqual(t, PersistedID(7), TempID("7"))
		assert.Equal(t, PersistedID(7), PersistedID(7))
		assert.Equal(t, TempID("draft-a"), TempID("draft-a"))
	})

	t.Run("new temp ids are unique and prefixed", func(t *testing.T) {
		a, b := NewTempID(), NewTempID()
		assert.NotEqual(t, a, b)
		assert.True(t, strings.HasPrefix(a.String(), TempIDPrefix))
		assert.False(t, a.IsPersisted())
	})

	t.Run("zero value", func(t *testing.T) {
		var id SegmentID
		assert.True(t, id.IsZero())
		assert.False(t, id.IsPersisted())
		assert.False(t, PersistedID(3).IsZero())
	})

	t.Run("json round trip keeps the form", func(t *testing.T) {
		data, err := json.Marshal([]SegmentID{PersistedID(12), TempID("draft-x")})
		require.NoError(t, err)
		assert.JSONEq(t, `[12, "draft-x"]`, string(data))

		var ids []SegmentID
		require.NoError(t, json.Unmarshal(data, &ids))
		assert.Equal(t, []SegmentID{PersistedID(12), TempID("draft-x")}, ids)
	})

	t.Run("json rejects null, empty, fractional and boolean ids", func(t *testing.T) {
		for _, raw := range []string{`null`, `""`, `1.5`, `true`} {
			var id SegmentID
			assert.Error(t, json.Unmarshal([]byte(raw), &id), raw)
		}
	})

	t.Run("parse path values", func(t *testing.T) {
		id, err := ParseSegmentID("42")
		require.NoError(t, err)
		n, ok := id.Num()
		assert.True(t, ok)
		assert.Equal(t, int64(42), n)

		id, err = ParseSegmentID("draft-abc")
		require.NoError(t, err)
		assert.Equal(t, TempID("draft-abc"), id)

		_, err = ParseSegmentID("  ")
		assert.Error(t, err)
	})
}

func TestSegment(t *testing.T) {
	recording := Segment{Label: "polyp", StartTime: 5}
	assert.False(t, recording.Complete())
	assert.Equal(t, 9.0, recording.End(9))

	done := Segment{Label: "polyp", StartTime: 5, EndTime: Float(8)}
	assert.True(t, done.Complete())
	assert.Equal(t, 8.0, done.End(9))
}

func TestSnapshot(t *testing.T) {
	snap := Snapshot{
		MediaID:  "v1",
		Duration: 100,
		Segments: []Segment{
			{ID: PersistedID(1), Label: "a", StartTime: 1, EndTime: Float(2)},
			{ID: TempID("1"), Label: "b", StartTime: 3, EndTime: Float(4)},
		},
	}

	seg, ok := snap.Find(TempID("1"))
	require.True(t, ok)
	assert.Equal(t, "b", seg.Label)

	_, ok = snap.Find(PersistedID(99))
	assert.False(t, ok)

	assert.True(t, snap.HasMedia())
	assert.False(t, Snapshot{}.HasMedia())
}

func TestSegmentRecord_ToSegment(t *testing.T) {
	rec := SegmentRecord{MediaID: "v1", Label: "blood", StartTime: 3, EndTime: Float(9)}
	rec.ID = 17

	seg := rec.ToSegment()
	assert.Equal(t, PersistedID(17), seg.ID)
	assert.Equal(t, "v1", seg.MediaID)
	assert.Equal(t, 9.0, *seg.EndTime)
}

func TestDraftSegment_Interval(t *testing.T) {
	_, _, ok := DraftSegment{Label: "x", Start: 3}.Interval()
	assert.False(t, ok)

	s, e, ok := DraftSegment{Label: "x", Start: 30, End: Float(10)}.Interval()
	require.True(t, ok)
	assert.Equal(t, 10.0, s)
	assert.Equal(t, 30.0, e)
}

func TestDraftBucket_Clone(t *testing.T) {
	note := "check margin"
	b := DraftBucket{"v1": {{ID: TempID("a"), Label: "polyp", Note: &note}}}

	cp := b.Clone()
	cp["v1"][0].Label = "changed"
	*cp["v1"][0].Note = "changed"
	cp["v2"] = nil

	assert.Equal(t, "polyp", b["v1"][0].Label)
	assert.Equal(t, "check margin", *b["v1"][0].Note)
	assert.Len(t, b, 1)
	assert.Equal(t, 1, b.Count())

	var nilBucket DraftBucket
	assert.NotNil(t, nilBucket.Clone())
}
