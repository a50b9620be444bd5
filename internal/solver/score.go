package solver

import (
	"sort"

	"github.com/planwise/roomplan/internal/model"
)

// Scoring weights. The score is additive per candidate wall; walls that
// fail basic eligibility or a hard topology constraint are never returned.
const (
	scoreNoOpening   = 100.0 // wall hosts no opening
	scoreBesideOpen  = 50.0  // wall hosts an opening but the item fits beside it
	scorePerSlackMM  = 10.0  // per mm of wall length beyond the minimum
	scoreTopologyHit = -500.0
)

// WallConstraint forbids a wall for an item. Hard constraints exclude the
// wall outright; soft constraints only apply the topology penalty.
type WallConstraint struct {
	Wall model.Wall
	Hard bool
}

// WallScore is one ranked candidate wall.
type WallScore struct {
	Wall  model.Wall
	Score float64
}

// ScoreWalls ranks the four walls for a footprint whose along dimension
// runs along the candidate wall. The result is strictly descending by
// score; ties fall back to the wall enumeration order so identical input
// always produces identical ranking.
func ScoreWalls(room model.Room, openings []model.Opening, along float64, constraints []WallConstraint, set Settings) []WallScore {
	var out []WallScore

	for _, w := range model.Walls() {
		length := room.WallLength(w)
		required := along + 2*set.EdgeClearance
		if length < required {
			continue
		}

		score := 0.0
		excluded := false
		for _, c := range constraints {
			if c.Wall != w {
				continue
			}
			if c.Hard {
				excluded = true
				break
			}
			score += scoreTopologyHit
		}
		if excluded {
			continue
		}

		hosted := openingsOn(openings, w)
		if len(hosted) == 0 {
			score += scoreNoOpening
		} else if _, ok := model.LargestSpan(freeSpans(room, hosted, w, set), along); ok {
			score += scoreBesideOpen
		}

		score += scorePerSlackMM * (length - required)
		out = append(out, WallScore{Wall: w, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Wall.TieBreak() < out[j].Wall.TieBreak()
	})
	return out
}

// openingsOn returns the openings hosted by wall w, in input order.
func openingsOn(openings []model.Opening, w model.Wall) []model.Opening {
	var out []model.Opening
	for _, o := range openings {
		if o.Wall == w {
			out = append(out, o)
		}
	}
	return out
}

// freeSpans returns the sections of wall w clear of opening clearance
// zones, after reserving the edge clearance at both wall ends.
func freeSpans(room model.Room, hosted []model.Opening, w model.Wall, set Settings) []model.Span {
	length := room.WallLength(w)
	free := []model.Span{{Start: set.EdgeClearance, End: length - set.EdgeClearance}}
	var blocked []model.Span
	for _, o := range hosted {
		blocked = append(blocked, o.ClearanceSpan(room, set.OpeningBuffer))
	}
	return model.SubtractSpans(free, blocked)
}
