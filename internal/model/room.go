package model

import (
	"fmt"
	"sort"
)

// Room is the rectangular envelope everything is placed into.
// All dimensions are internal clear dimensions in mm.
type Room struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height,omitempty"` // optional, only used by 3D consumers
}

// Envelope returns the room interior as a rectangle with origin 0,0.
func (r Room) Envelope() Rect {
	return Rect{X: 0, Y: 0, W: r.Width, D: r.Depth}
}

// WallLength returns the usable length of a wall: room width for the
// horizontal walls, room depth for the vertical ones.
func (r Room) WallLength(w Wall) float64 {
	if w.Horizontal() {
		return r.Width
	}
	return r.Depth
}

// Area returns the floor area in square meters.
func (r Room) Area() float64 {
	return r.Width * r.Depth / 1e6
}

// Validate checks the room dimensions.
func (r Room) Validate() error {
	if r.Width <= 0 || r.Depth <= 0 {
		return fmt.Errorf("room dimensions must be positive, got %.0fx%.0f", r.Width, r.Depth)
	}
	if r.Height < 0 {
		return fmt.Errorf("room height must not be negative, got %.0f", r.Height)
	}
	return nil
}

// PlaceOnWall converts a wall-relative placement into an axis-aligned
// rectangle. along is the dimension running along the wall, into the
// dimension perpendicular into the room, offset the distance from the
// wall start. On vertical walls the stored width/depth are swapped so
// that rectangles stay axis-aligned in global coordinates.
func (r Room) PlaceOnWall(w Wall, along, into, offset float64) Rect {
	switch w {
	case WallTop:
		return Rect{X: offset, Y: 0, W: along, D: into}
	case WallBottom:
		return Rect{X: offset, Y: r.Depth - into, W: along, D: into}
	case WallLeft:
		return Rect{X: 0, Y: offset, W: into, D: along}
	default: // right
		return Rect{X: r.Width - into, Y: offset, W: into, D: along}
	}
}

// CenterOnWall places an item flush against a wall, centered along it.
func (r Room) CenterOnWall(w Wall, along, into float64) Rect {
	return r.PlaceOnWall(w, along, into, (r.WallLength(w)-along)/2)
}

// OpeningKind distinguishes doors from windows.
type OpeningKind string

const (
	OpeningDoor   OpeningKind = "door"
	OpeningWindow OpeningKind = "window"
)

// HingeSide is the door hinge position seen from inside the room,
// looking at the door wall.
type HingeSide string

const (
	HingeLeft  HingeSide = "left"
	HingeRight HingeSide = "right"
)

// Opening is a door or window pinned to a wall. Openings are immutable
// for the lifetime of a solve.
type Opening struct {
	Kind        OpeningKind `json:"kind"`
	Wall        Wall        `json:"wall"`
	Offset      float64     `json:"offset"` // along the wall from its start, mm
	Width       float64     `json:"width"`
	Hinge       HingeSide   `json:"hinge,omitempty"`        // doors only
	SwingRadius float64     `json:"swing_radius,omitempty"` // doors only, defaults to leaf width
}

// Span returns the opening footprint along its host wall.
func (o Opening) Span() Span {
	return Span{Start: o.Offset, End: o.Offset + o.Width}
}

// ClearanceSpan returns the opening span grown by the clearance buffer on
// both sides, clamped to the wall.
func (o Opening) ClearanceSpan(room Room, clearance float64) Span {
	length := room.WallLength(o.Wall)
	s := Span{Start: o.Offset - clearance, End: o.Offset + o.Width + clearance}
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > length {
		s.End = length
	}
	return s
}

// KeepClearDepth returns how far the exclusion zone reaches into the room:
// the swing radius for doors (the leaf must be able to open), a fixed
// keep-clear strip for windows.
func (o Opening) KeepClearDepth(windowKeepClear float64) float64 {
	if o.Kind == OpeningDoor {
		if o.SwingRadius > 0 {
			return o.SwingRadius
		}
		return o.Width
	}
	return windowKeepClear
}

// ExclusionZone returns the rectangle around the opening that anchored
// furniture on the same wall must stay out of.
func (o Opening) ExclusionZone(room Room, clearance, windowKeepClear float64) Rect {
	s := o.ClearanceSpan(room, clearance)
	return room.PlaceOnWall(o.Wall, s.Length(), o.KeepClearDepth(windowKeepClear), s.Start)
}

// ValidateOpenings checks every opening against the room and against the
// other openings on the same wall. The opening set is rejected as a whole
// on the first violation.
func ValidateOpenings(room Room, openings []Opening) error {
	byWall := map[Wall][]Opening{}
	for i, o := range openings {
		if o.Kind != OpeningDoor && o.Kind != OpeningWindow {
			return fmt.Errorf("opening %d: unknown kind %q", i, o.Kind)
		}
		if !o.Wall.Valid() {
			return fmt.Errorf("opening %d: unknown wall %q", i, o.Wall)
		}
		if o.Width <= 0 {
			return fmt.Errorf("opening %d: width must be positive, got %.0f", i, o.Width)
		}
		if o.Offset < 0 {
			return fmt.Errorf("opening %d: offset must not be negative, got %.0f", i, o.Offset)
		}
		if length := room.WallLength(o.Wall); o.Offset+o.Width > length {
			return fmt.Errorf("opening %d: extends past %s wall (%.0f+%.0f > %.0f)",
				i, o.Wall, o.Offset, o.Width, length)
		}
		byWall[o.Wall] = append(byWall[o.Wall], o)
	}
	for _, w := range Walls() {
		hosted := byWall[w]
		sort.Slice(hosted, func(i, j int) bool { return hosted[i].Offset < hosted[j].Offset })
		for i := 1; i < len(hosted); i++ {
			if hosted[i-1].Span().Overlaps(hosted[i].Span()) {
				return fmt.Errorf("openings overlap on %s wall", w)
			}
		}
	}
	return nil
}
