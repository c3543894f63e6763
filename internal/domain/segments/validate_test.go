package segments

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forPelevin/segview/internal/types"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		segs    []types.Segment
		wantErr string
	}{
		{name: "empty"},
		{name: "ok", segs: []types.Segment{{Name: "Intro", VideoID: "abc123", StartTime: 10.7, EndTime: 20.3}}},
		{name: "zero length", segs: []types.Segment{{VideoID: "abc123", StartTime: 5, EndTime: 5}}},
		{
			name:    "missing video",
			segs:    []types.Segment{{Name: "x", StartTime: 1, EndTime: 2}},
			wantErr: `validation error: segment 0: videoId failed "required"`,
		},
		{
			name:    "negative start",
			segs:    []types.Segment{{VideoID: "v", StartTime: 0, EndTime: 1}, {VideoID: "v", StartTime: -1, EndTime: 2}},
			wantErr: `validation error: segment 1: startTime failed "gte"`,
		},
		{
			name:    "end before start",
			segs:    []types.Segment{{VideoID: "v", StartTime: 9, EndTime: 3}},
			wantErr: `validation error: segment 0: endTime failed "gtefield"`,
		},
		{
			name:    "nan start",
			segs:    []types.Segment{{VideoID: "v", StartTime: math.NaN(), EndTime: 3}},
			wantErr: `validation error: segment 0: startTime failed "gte"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.segs)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.True(t, IsValidationError(err))
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(errors.New("boom")))
}
