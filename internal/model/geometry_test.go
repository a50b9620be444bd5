package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectIntersects_TouchingEdgesDoNotOverlap(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, D: 100}
	b := Rect{X: 100, Y: 0, W: 100, D: 100}

	assert.False(t, a.Intersects(b))
	assert.False(t, b.Intersects(a))
}

func TestRectIntersects_OverlapIsSymmetric(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, D: 100}
	b := Rect{X: 99, Y: 99, W: 100, D: 100}

	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
}

func TestRectContainedIn(t *testing.T) {
	room := Rect{X: 0, Y: 0, W: 3000, D: 2700}

	assert.True(t, Rect{X: 0, Y: 0, W: 3000, D: 2700}.ContainedIn(room))
	assert.True(t, Rect{X: 100, Y: 100, W: 500, D: 500}.ContainedIn(room))
	assert.False(t, Rect{X: 2600, Y: 0, W: 500, D: 500}.ContainedIn(room))
	assert.False(t, Rect{X: -1, Y: 0, W: 100, D: 100}.ContainedIn(room))
}

func TestRectExpand(t *testing.T) {
	r := Rect{X: 100, Y: 200, W: 300, D: 400}.Expand(50)

	assert.Equal(t, Rect{X: 50, Y: 150, W: 400, D: 500}, r)
}

func TestRectDistance(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 100, D: 100}

	assert.Equal(t, 0.0, a.Distance(Rect{X: 100, Y: 0, W: 100, D: 100}))
	assert.Equal(t, 50.0, a.Distance(Rect{X: 150, Y: 0, W: 100, D: 100}))
	assert.InDelta(t, 70.71, a.Distance(Rect{X: 150, Y: 150, W: 10, D: 10}), 0.01)
}

func TestSpanOverlaps(t *testing.T) {
	assert.True(t, Span{Start: 0, End: 100}.Overlaps(Span{Start: 50, End: 150}))
	assert.False(t, Span{Start: 0, End: 100}.Overlaps(Span{Start: 100, End: 200}))
}

func TestSubtractSpans_SplitsAroundBlocked(t *testing.T) {
	free := []Span{{Start: 0, End: 3000}}
	blocked := []Span{{Start: 800, End: 1200}, {Start: 2000, End: 2200}}

	out := SubtractSpans(free, blocked)

	require.Len(t, out, 3)
	assert.Equal(t, Span{Start: 0, End: 800}, out[0])
	assert.Equal(t, Span{Start: 1200, End: 2000}, out[1])
	assert.Equal(t, Span{Start: 2200, End: 3000}, out[2])
}

func TestSubtractSpans_BlockedSwallowsFree(t *testing.T) {
	out := SubtractSpans([]Span{{Start: 100, End: 200}}, []Span{{Start: 0, End: 300}})
	assert.Empty(t, out)
}

func TestLargestSpan_PrefersLongest(t *testing.T) {
	spans := []Span{{Start: 0, End: 500}, {Start: 600, End: 1800}, {Start: 2000, End: 2400}}

	best, ok := LargestSpan(spans, 400)
	require.True(t, ok)
	assert.Equal(t, Span{Start: 600, End: 1800}, best)
}

func TestLargestSpan_TieKeepsFirstListed(t *testing.T) {
	spans := []Span{{Start: 1000, End: 1500}, {Start: 0, End: 500}}

	best, ok := LargestSpan(spans, 500)
	require.True(t, ok)
	assert.Equal(t, Span{Start: 1000, End: 1500}, best)
}

func TestLargestSpan_NoneLongEnough(t *testing.T) {
	_, ok := LargestSpan([]Span{{Start: 0, End: 500}}, 600)
	assert.False(t, ok)
}
