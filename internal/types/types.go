package types

// Segment is one labeled clip region of a video. Times are seconds.
type Segment struct {
	Name      string  `json:"name"`
	VideoID   string  `json:"videoId" validate:"required"`
	StartTime float64 `json:"startTime" validate:"gte=0"`
	EndTime   float64 `json:"endTime" validate:"gte=0,gtefield=StartTime"`
}

// Compact is the positional form of a Segment: [name, videoId, startTime, endTime].
type Compact []any

// Collection is a named list of segments as kept by a SegmentStore.
type Collection struct {
	Name     string    `json:"name"`
	Segments []Compact `json:"segments"`
}

// View is what a viewer link resolves to.
type View struct {
	Name     string    `json:"view"`
	Path     string    `json:"path"`
	Header   string    `json:"header,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}
