package model

import "math"

// Rect is an axis-aligned rectangle in room coordinates, in mm.
// X,Y is the top-left corner; Y grows toward the bottom wall.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	D float64 `json:"d"`
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.D }

// Intersects reports whether r and o overlap on both axes.
// The test is strict: rectangles that merely share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() && r.Y < o.MaxY() && o.Y < r.MaxY()
}

// ContainedIn reports whether r lies entirely inside o.
func (r Rect) ContainedIn(o Rect) bool {
	return r.X >= o.X && r.Y >= o.Y && r.MaxX() <= o.MaxX() && r.MaxY() <= o.MaxY()
}

// Expand grows the rectangle outward by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, D: r.D + 2*m}
}

// Distance returns the minimum distance between two rectangles,
// or 0 when they intersect or touch.
func (r Rect) Distance(o Rect) float64 {
	dx := math.Max(math.Max(o.X-r.MaxX(), r.X-o.MaxX()), 0)
	dy := math.Max(math.Max(o.Y-r.MaxY(), r.Y-o.MaxY()), 0)
	return math.Hypot(dx, dy)
}

// Span is a 1D interval along a wall, measured in mm from the wall start.
type Span struct {
	Start float64
	End   float64
}

// Length returns the span length, never negative.
func (s Span) Length() float64 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Overlaps reports whether two spans share a section of positive length.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// SubtractSpans removes the blocked spans from the free list and returns the
// remaining free spans in ascending order. Used to find wall sections clear
// of opening exclusion zones.
func SubtractSpans(free []Span, blocked []Span) []Span {
	out := free
	for _, b := range blocked {
		var next []Span
		for _, f := range out {
			if b.End <= f.Start || b.Start >= f.End {
				next = append(next, f)
				continue
			}
			if b.Start > f.Start {
				next = append(next, Span{Start: f.Start, End: b.Start})
			}
			if b.End < f.End {
				next = append(next, Span{Start: b.End, End: f.End})
			}
		}
		out = next
	}
	return out
}

// LargestSpan returns the longest span that can host required length.
// Ties are broken by the earliest start so results stay deterministic.
// ok is false when no span is long enough.
func LargestSpan(spans []Span, required float64) (Span, bool) {
	best := Span{}
	found := false
	for _, s := range spans {
		if s.Length() < required {
			continue
		}
		if !found || s.Length() > best.Length() {
			best = s
			found = true
		}
	}
	return best, found
}
