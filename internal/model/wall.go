package model

// Wall identifies one of the four room walls. Walls are computed views over
// the room envelope, not stored objects: a wall's geometry is derived from
// the room dimensions whenever it is needed.
type Wall string

const (
	WallTop    Wall = "top"
	WallBottom Wall = "bottom"
	WallLeft   Wall = "left"
	WallRight  Wall = "right"
)

// Walls returns the four walls in their canonical enumeration order.
// Scoring ties and iteration everywhere follow this order so that solves
// are reproducible.
func Walls() [4]Wall {
	return [4]Wall{WallTop, WallBottom, WallLeft, WallRight}
}

// Valid reports whether w is one of the four named walls.
func (w Wall) Valid() bool {
	switch w {
	case WallTop, WallBottom, WallLeft, WallRight:
		return true
	}
	return false
}

// Horizontal reports whether the wall runs along the X axis.
func (w Wall) Horizontal() bool {
	return w == WallTop || w == WallBottom
}

// Opposite returns the wall facing w.
func (w Wall) Opposite() Wall {
	switch w {
	case WallTop:
		return WallBottom
	case WallBottom:
		return WallTop
	case WallLeft:
		return WallRight
	default:
		return WallLeft
	}
}

// Adjacent returns the two walls perpendicular to w, in enumeration order.
func (w Wall) Adjacent() [2]Wall {
	if w.Horizontal() {
		return [2]Wall{WallLeft, WallRight}
	}
	return [2]Wall{WallTop, WallBottom}
}

// index returns the position of w in the canonical enumeration,
// used as a deterministic tie-breaker.
func (w Wall) index() int {
	for i, c := range Walls() {
		if c == w {
			return i
		}
	}
	return len(Walls())
}

// TieBreak returns a stable ordering key for w.
func (w Wall) TieBreak() int { return w.index() }
