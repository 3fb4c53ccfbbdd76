// Package touch resolves concurrent touch and mouse pointers into the
// actions of a single input frame.
package touch

import (
	"sort"

	"github.com/vovakirdan/biketrail/internal/core"
)

// EdgeFraction is the share of the view width, on each side, that acts
// as a lateral hold zone.
const EdgeFraction = 0.25

// Zone is the part of the view a pointer went down in.
type Zone int

const (
	ZoneCenter Zone = iota
	ZoneLeft
	ZoneRight
)

// Point is a pointer that is down this frame, in view coordinates.
type Point struct {
	ID   int
	X, Y float64
}

// ZoneOf returns the zone x falls in for a view of the given width.
func ZoneOf(x, viewW float64) Zone {
	switch {
	case x < viewW*EdgeFraction:
		return ZoneLeft
	case x >= viewW*(1-EdgeFraction):
		return ZoneRight
	default:
		return ZoneCenter
	}
}

// Tracker remembers where each pointer went down. A pointer that starts
// in an edge zone holds lateral input for as long as it stays down, even
// if it slides out of the zone; one that starts in the centre is a tap.
type Tracker struct {
	zones map[int]Zone
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{zones: make(map[int]Zone)}
}

// Apply records the pointers that are down this frame into frame and
// returns the centre taps that began this frame. Only the first
// core.MaxPointers pointers, by ID, are considered.
func (t *Tracker) Apply(points []Point, viewW float64, frame *core.InputFrame) []Point {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	if len(sorted) > core.MaxPointers {
		sorted = sorted[:core.MaxPointers]
	}

	down := make(map[int]bool, len(sorted))
	var taps []Point
	for _, p := range sorted {
		down[p.ID] = true

		zone, seen := t.zones[p.ID]
		if !seen {
			zone = ZoneOf(p.X, viewW)
			t.zones[p.ID] = zone
		}

		switch zone {
		case ZoneLeft:
			frame.Set(core.ActionLeft)
		case ZoneRight:
			frame.Set(core.ActionRight)
		default:
			if !seen && frame.Tap(p.ID) {
				taps = append(taps, p)
			}
		}
	}

	// Forget released pointers so their IDs can be reused
	for id := range t.zones {
		if !down[id] {
			delete(t.zones, id)
		}
	}

	return taps
}

// Active returns how many pointers are currently tracked.
func (t *Tracker) Active() int {
	return len(t.zones)
}
