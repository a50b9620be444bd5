package solver

import (
	"fmt"
	"math"

	"github.com/planwise/roomplan/internal/model"
)

// Validate re-checks the frozen layout against every placement rule,
// independent of the order the pipeline committed items in. It never
// mutates the layout; a non-empty result means the layout is degraded
// but still usable.
func Validate(room model.Room, openings []model.Opening, layout *model.Layout, cat model.Catalog, set Settings) []model.Issue {
	var issues []model.Issue
	envelope := room.Envelope()

	for i, a := range layout.Items {
		if !a.Rect().ContainedIn(envelope) {
			issues = append(issues, model.Issue{
				Kind: a.Kind, Rule: model.RuleOutOfBounds,
				Detail: fmt.Sprintf("%s at %.0f,%.0f leaves the room envelope", a.Kind, a.X, a.Y),
			})
		}

		for _, b := range layout.Items[i+1:] {
			if a.AttachedTo == b.ID || b.AttachedTo == a.ID {
				continue
			}
			margin := math.Max(a.Clearance, b.Clearance) / 2
			if a.Rect().Expand(margin).Intersects(b.Rect().Expand(margin)) {
				issues = append(issues, model.Issue{
					Kind: a.Kind, Rule: model.RuleOverlap,
					Detail: fmt.Sprintf("%s and %s closer than %.0fmm", a.Kind, b.Kind, 2*margin),
				})
			}
		}

		for _, n := range layout.NicheWalls {
			if a.Kind != model.KindWardrobe && a.Rect().Intersects(n.Rect()) {
				issues = append(issues, model.Issue{
					Kind: a.Kind, Rule: model.RuleOverlap,
					Detail: fmt.Sprintf("%s overlaps niche partition %s", a.Kind, n.ID),
				})
			}
		}

		if a.Wall != "" {
			for _, o := range openingsOn(openings, a.Wall) {
				zone := o.ExclusionZone(room, set.OpeningBuffer, set.WindowKeepClear)
				if a.Rect().Intersects(zone) {
					issues = append(issues, model.Issue{
						Kind: a.Kind, Rule: model.RuleOpeningZone,
						Detail: fmt.Sprintf("%s enters %s exclusion zone on %s wall", a.Kind, o.Kind, o.Wall),
					})
				}
			}
			if !flushWith(room, a.Rect(), a.Wall, set.AnchorTolerance) {
				issues = append(issues, model.Issue{
					Kind: a.Kind, Rule: model.RuleAnchorLoose,
					Detail: fmt.Sprintf("%s anchored to %s wall but not flush", a.Kind, a.Wall),
				})
			}
		}

		if spec, ok := cat.Spec(a.Kind); ok && spec.RequiresAnchor && a.Wall == "" {
			issues = append(issues, model.Issue{
				Kind: a.Kind, Rule: model.RuleAnchorMissing,
				Detail: fmt.Sprintf("%s requires a wall anchor but has none", a.Kind),
			})
		}
	}

	return issues
}

// flushWith reports whether one edge of rect coincides with the wall's
// inner face within tol.
func flushWith(room model.Room, rect model.Rect, w model.Wall, tol float64) bool {
	switch w {
	case model.WallTop:
		return math.Abs(rect.Y) <= tol
	case model.WallBottom:
		return math.Abs(rect.MaxY()-room.Depth) <= tol
	case model.WallLeft:
		return math.Abs(rect.X) <= tol
	default:
		return math.Abs(rect.MaxX()-room.Width) <= tol
	}
}
