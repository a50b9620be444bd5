package solver

import (
	"fmt"
	"math"

	"github.com/planwise/roomplan/internal/model"
)

// failKind classifies why a placement attempt was rejected. The pipeline
// pattern-matches on it to pick the next fallback rung: a pure clearance
// failure can be retried with degraded clearance, a raw overlap cannot.
type failKind int

const (
	failNone      failKind = iota
	failBounds             // footprint leaves the room envelope
	failOverlap            // raw footprints intersect
	failClearance          // only the clearance-expanded footprints intersect
	failObstacle           // footprint hits a niche partition
	failOpening            // footprint enters an opening exclusion zone
	failAnchor             // declared anchor edge is not flush with its wall
)

// Checker validates candidate placements against the room bounds, the
// already committed items, niche partitions, and opening exclusion zones.
// It owns the growing obstacle set for one solve.
type Checker struct {
	room     model.Room
	openings []model.Opening
	set      Settings

	placed []model.PlacedItem
	niches []model.NicheWall
	reason string
}

// NewChecker creates a checker for an empty room.
func NewChecker(room model.Room, openings []model.Opening, set Settings) *Checker {
	return &Checker{room: room, openings: openings, set: set}
}

// Commit registers an item as a permanent obstacle.
func (c *Checker) Commit(item model.PlacedItem) {
	c.placed = append(c.placed, item)
}

// CommitNiche registers a niche partition as a permanent obstacle.
func (c *Checker) CommitNiche(n model.NicheWall) {
	c.niches = append(c.niches, n)
}

// Placed returns the committed items.
func (c *Checker) Placed() []model.PlacedItem { return c.placed }

// Niches returns the committed niche partitions.
func (c *Checker) Niches() []model.NicheWall { return c.niches }

// CanPlace reports whether the candidate passes every rule. exempt lists
// IDs of committed items the candidate is attached to; those pairs bypass
// the pairwise overlap and clearance rules entirely, so an attached piece
// may overlay its host (a headboard sits on the bed head).
func (c *Checker) CanPlace(item model.PlacedItem, exempt map[string]bool) bool {
	kind, reason := c.check(item, exempt)
	c.reason = reason
	return kind == failNone
}

// Reason describes the most recent CanPlace rejection.
func (c *Checker) Reason() string { return c.reason }

// check runs all placement rules and returns the first violation.
func (c *Checker) check(item model.PlacedItem, exempt map[string]bool) (failKind, string) {
	rect := item.Rect()

	if !rect.ContainedIn(c.room.Envelope()) {
		return failBounds, fmt.Sprintf("%s footprint leaves the room envelope", item.Kind)
	}

	for _, p := range c.placed {
		// Flush-attached pairs (bedside table to bed, headboard over the
		// bed head) are exempt from the pairwise rule; their geometry is
		// fixed by construction.
		if exempt[p.ID] || p.AttachedTo == item.ID || item.AttachedTo == p.ID {
			continue
		}
		margin := math.Max(item.Clearance, p.Clearance) / 2
		if rect.Expand(margin).Intersects(p.Rect().Expand(margin)) {
			if rect.Intersects(p.Rect()) {
				return failOverlap, fmt.Sprintf("%s overlaps %s", item.Kind, p.Kind)
			}
			return failClearance, fmt.Sprintf("%s too close to %s (need %.0fmm)", item.Kind, p.Kind, 2*margin)
		}
	}

	for _, n := range c.niches {
		if rect.Intersects(n.Rect()) {
			return failObstacle, fmt.Sprintf("%s overlaps niche partition", item.Kind)
		}
	}

	if item.Wall != "" {
		for _, o := range openingsOn(c.openings, item.Wall) {
			zone := o.ExclusionZone(c.room, c.set.OpeningBuffer, c.set.WindowKeepClear)
			if rect.Intersects(zone) {
				return failOpening, fmt.Sprintf("%s enters %s exclusion zone on %s wall", item.Kind, o.Kind, o.Wall)
			}
		}
		if !flushWith(c.room, rect, item.Wall, c.set.AnchorTolerance) {
			return failAnchor, fmt.Sprintf("%s not flush with %s wall", item.Kind, item.Wall)
		}
	}

	return failNone, ""
}

// CanPlaceNiche checks a niche partition: bounds plus rigid overlap
// against everything committed. Partitions are not furniture, so the
// clearance rule does not apply.
func (c *Checker) CanPlaceNiche(n model.NicheWall) bool {
	rect := n.Rect()
	if !rect.ContainedIn(c.room.Envelope()) {
		c.reason = "niche partition leaves the room envelope"
		return false
	}
	for _, p := range c.placed {
		if rect.Intersects(p.Rect()) {
			c.reason = fmt.Sprintf("niche partition overlaps %s", p.Kind)
			return false
		}
	}
	for _, o := range c.niches {
		if rect.Intersects(o.Rect()) {
			c.reason = "niche partitions overlap"
			return false
		}
	}
	c.reason = ""
	return true
}
