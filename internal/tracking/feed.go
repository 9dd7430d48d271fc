package tracking

import (
	"sync"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
)

type Mode string

const (
	ModeLive   Mode = "live"
	ModeRecord Mode = "record"
)

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Snapshot is what the dashboard renders: the path polyline, the newest
// point, and the map center target.
type Snapshot struct {
	Mode   Mode    `json:"mode"`
	Follow bool    `json:"follow"`
	Path   []Point `json:"path"`
	Latest *Point  `json:"latest,omitempty"`
	Center *Point  `json:"center,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Feed accumulates a bounded, ordered sequence of position samples for one
// driver. In live mode samples arrive from the pub/sub subscriber while the
// dashboard reads snapshots, so the feed is safe for concurrent use.
type Feed struct {
	mu       sync.Mutex
	mode     Mode
	capacity int
	follow   bool
	path     []Point
	anchor   *Point // first sample since subscribing; live center when not following
	failure  *model.SensorFailure
}

func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = 500
	}
	return &Feed{
		mode:     ModeLive,
		capacity: capacity,
		follow:   true,
	}
}

// Append adds a live sample, keeping only the most recent capacity points.
// Ignored outside live mode and while the feed is in a failure state.
func (f *Feed) Append(lat, lon float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mode != ModeLive || f.failure != nil {
		return
	}

	p := Point{Latitude: lat, Longitude: lon}
	if f.anchor == nil {
		anchor := p
		f.anchor = &anchor
	}

	f.path = append(f.path, p)
	if len(f.path) > f.capacity {
		// Drop the oldest in place so the backing array stays bounded.
		copy(f.path, f.path[1:])
		f.path = f.path[:f.capacity]
	}
}

// Replace swaps the path wholesale with a replayed day of samples and
// recenters to the first point. Used when entering record mode or when the
// selected day changes.
func (f *Feed) Replace(points []Point) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.path = make([]Point, len(points))
	copy(f.path, points)
	f.anchor = nil
	if len(f.path) > 0 {
		anchor := f.path[0]
		f.anchor = &anchor
	}
	f.failure = nil
}

// SetMode switches between live and record. Switching discards the buffer
// and the center anchor and clears any latched failure.
func (f *Feed) SetMode(mode Mode) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mode == mode {
		return
	}
	f.mode = mode
	f.path = nil
	f.anchor = nil
	f.failure = nil
}

func (f *Feed) SetFollow(follow bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.follow = follow
}

func (f *Feed) Mode() Mode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

// Fail latches a sensor failure. The feed stays in this state, appending
// nothing, until the mode is switched or the feed is replaced.
func (f *Feed) Fail(reason model.SensorFailure) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failure = &reason
}

func (f *Feed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		Mode:   f.mode,
		Follow: f.follow,
	}

	if f.failure != nil {
		// Error state renders no path.
		snap.Path = []Point{}
		snap.Error = f.failure.Message()
		return snap
	}

	snap.Path = make([]Point, len(f.path))
	copy(snap.Path, f.path)

	if len(snap.Path) > 0 {
		latest := snap.Path[len(snap.Path)-1]
		snap.Latest = &latest
	}

	switch {
	case f.mode == ModeRecord && f.anchor != nil:
		center := *f.anchor
		snap.Center = &center
	case f.follow && snap.Latest != nil:
		center := *snap.Latest
		snap.Center = &center
	case f.anchor != nil:
		center := *f.anchor
		snap.Center = &center
	}

	return snap
}
