package segments

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/forPelevin/segview/internal/types"
)

const compactLen = 4

// MalformedEntryError reports a compact entry that cannot be mapped onto a Segment.
type MalformedEntryError struct {
	Index  int
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("compact entry %d: %s", e.Index, e.Reason)
}

// InvalidTimeError reports a segment time that has no int64 rounding.
type InvalidTimeError struct {
	Index int
	Field string
	Value float64
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("segment %d: %s has no integer rounding (%v)", e.Index, e.Field, e.Value)
}

// FromCompact maps [name, videoId, startTime, endTime] entries onto Segments,
// preserving order. Times are taken as-is. Any malformed entry rejects the
// whole input.
func FromCompact(entries []types.Compact) ([]types.Segment, error) {
	out := make([]types.Segment, 0, len(entries))
	for i, e := range entries {
		if len(e) != compactLen {
			return nil, &MalformedEntryError{Index: i, Reason: fmt.Sprintf("expected %d elements, got %d", compactLen, len(e))}
		}
		name, ok := e[0].(string)
		if !ok {
			return nil, &MalformedEntryError{Index: i, Reason: fmt.Sprintf("name must be a string, got %T", e[0])}
		}
		videoID, ok := e[1].(string)
		if !ok {
			return nil, &MalformedEntryError{Index: i, Reason: fmt.Sprintf("videoId must be a string, got %T", e[1])}
		}
		start, err := number(e[2])
		if err != nil {
			return nil, &MalformedEntryError{Index: i, Reason: "startTime " + err.Error()}
		}
		end, err := number(e[3])
		if err != nil {
			return nil, &MalformedEntryError{Index: i, Reason: "endTime " + err.Error()}
		}
		out = append(out, types.Segment{Name: name, VideoID: videoID, StartTime: start, EndTime: end})
	}
	return out, nil
}

// ToCompact maps Segments onto compact entries, rounding both times to the
// nearest integer (half away from zero).
func ToCompact(segs []types.Segment) ([]types.Compact, error) {
	out := make([]types.Compact, 0, len(segs))
	for i, s := range segs {
		start, err := roundTime(i, "startTime", s.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := roundTime(i, "endTime", s.EndTime)
		if err != nil {
			return nil, err
		}
		out = append(out, types.Compact{s.Name, s.VideoID, start, end})
	}
	return out, nil
}

// roundTime rejects values whose rounding does not fit in an int64.
func roundTime(i int, field string, v float64) (int64, error) {
	r := math.Round(v)
	if math.IsNaN(r) || r < -(1<<63) || r >= 1<<63 {
		return 0, &InvalidTimeError{Index: i, Field: field, Value: v}
	}
	return int64(r), nil
}

func number(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		p, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("must be a number: %w", err)
		}
		f = p
	default:
		return 0, fmt.Errorf("must be a number, got %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("must be finite, got %v", f)
	}
	return f, nil
}
