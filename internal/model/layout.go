package model

import "github.com/google/uuid"

// PlacedItem is one committed furniture placement. Width and Depth are the
// axis-aligned extents in room coordinates (already swapped for vertical
// walls), X,Y the top-left corner.
type PlacedItem struct {
	ID         string  `json:"id"`
	Kind       Kind    `json:"kind"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Depth      float64 `json:"depth"`
	Height     float64 `json:"height,omitempty"`
	Wall       Wall    `json:"wall,omitempty"`        // empty for free-standing items
	Clearance  float64 `json:"clearance"`             // clearance the item was committed with
	AttachedTo string  `json:"attached_to,omitempty"` // ID of the item this one sits flush against
	Material   string  `json:"material,omitempty"`
	UnitCost   float64 `json:"unit_cost,omitempty"`
}

// Rect returns the item footprint.
func (p PlacedItem) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, D: p.Depth}
}

// NicheWall is a derived partition framing a wardrobe. It is an obstacle
// for collision checks but is not furniture, so the clearance rule does
// not apply to it.
type NicheWall struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
}

// Rect returns the partition footprint.
func (n NicheWall) Rect() Rect {
	return Rect{X: n.X, Y: n.Y, W: n.Width, D: n.Depth}
}

// Issue rule identifiers reported by the pipeline and validator.
const (
	RuleOmitted       = "omitted"        // item could not be placed anywhere
	RuleDeviation     = "deviation"      // item placed via a fallback tier
	RuleOverlap       = "overlap"        // clearance-expanded footprints intersect
	RuleOutOfBounds   = "out_of_bounds"  // footprint leaves the room envelope
	RuleOpeningZone   = "opening_zone"   // footprint enters an opening exclusion zone
	RuleAnchorMissing = "anchor_missing" // anchor-required item has no wall anchor
	RuleAnchorLoose   = "anchor_loose"   // anchored item is not flush with its wall
)

// Issue records one soft deviation or residual rule violation.
type Issue struct {
	Kind   Kind   `json:"kind"`
	Rule   string `json:"rule"`
	Detail string `json:"detail"`
}

// Layout is the solver output: the room, its openings, and every committed
// placement. The collection is frozen once the validator has run.
type Layout struct {
	ID         string       `json:"id"`
	Room       Room         `json:"room"`
	Openings   []Opening    `json:"openings"`
	Items      []PlacedItem `json:"items"`
	NicheWalls []NicheWall  `json:"niche_walls,omitempty"`
	Issues     []Issue      `json:"issues,omitempty"`
}

// Item returns the placed item of the given kind, or nil when absent.
func (l *Layout) Item(k Kind) *PlacedItem {
	for i := range l.Items {
		if l.Items[i].Kind == k {
			return &l.Items[i]
		}
	}
	return nil
}

// NewID returns a short unique identifier in the FUR-xxxxxxxx style used
// for items, layouts and derived records.
func NewID(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}
