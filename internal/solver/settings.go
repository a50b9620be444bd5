// Package solver computes a deterministic furniture layout for a
// rectangular room: wall scoring, collision and clearance checking, the
// tiered placement pipeline with its fallback ladder, and the post-pass
// layout validator.
package solver

// Settings holds the clearance and niche configuration for one solve.
// The zero value is not usable; start from DefaultSettings.
type Settings struct {
	EdgeClearance   float64 `json:"edge_clearance" yaml:"edge_clearance"`       // wall-end margin required around an item, mm
	OpeningBuffer   float64 `json:"opening_buffer" yaml:"opening_buffer"`       // keep-away from opening edges along the wall, mm
	WindowKeepClear float64 `json:"window_keep_clear" yaml:"window_keep_clear"` // depth of the window keep-clear strip, mm
	ClearanceFloor  float64 `json:"clearance_floor" yaml:"clearance_floor"`     // absolute minimum an item clearance may degrade to, mm
	AnchorTolerance float64 `json:"anchor_tolerance" yaml:"anchor_tolerance"`   // flush tolerance for wall anchors, mm
	NicheDepth      float64 `json:"niche_depth" yaml:"niche_depth"`             // wardrobe niche partition depth, mm
	NicheThickness  float64 `json:"niche_thickness" yaml:"niche_thickness"`     // wardrobe niche partition thickness, mm
	BedsideGap      float64 `json:"bedside_gap" yaml:"bedside_gap"`             // gap between bed side and bedside table, mm
}

// DefaultSettings returns the reference configuration.
func DefaultSettings() Settings {
	return Settings{
		EdgeClearance:   200,
		OpeningBuffer:   200,
		WindowKeepClear: 300,
		ClearanceFloor:  50,
		AnchorTolerance: 1,
		NicheDepth:      600,
		NicheThickness:  120,
		BedsideGap:      50,
	}
}

// clearanceSteps returns the degradation ladder for an item clearance:
// full value, half way to the floor, then the floor itself. Values never
// drop below the floor and duplicates are removed.
func (s Settings) clearanceSteps(full float64) []float64 {
	if full <= s.ClearanceFloor {
		return []float64{full}
	}
	mid := (full + s.ClearanceFloor) / 2
	steps := []float64{full, mid, s.ClearanceFloor}
	out := steps[:1]
	for _, v := range steps[1:] {
		if v < out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
