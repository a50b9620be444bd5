package model

// Kind identifies a furniture catalog entry.
type Kind string

const (
	KindBed           Kind = "bed"
	KindHeadboard     Kind = "headboard"
	KindWardrobe      Kind = "wardrobe"
	KindBedsideLeft   Kind = "bedside_table_left"
	KindBedsideRight  Kind = "bedside_table_right"
	KindTVUnit        Kind = "tv_unit"
	KindDressingTable Kind = "dressing_table"
	KindBanquet       Kind = "banquet"
)

// PlacementOrder is the fixed tier order the pipeline commits items in:
// the anchor item first, then items that depend on its position, then
// flexible items.
var PlacementOrder = []Kind{
	KindBed,
	KindHeadboard,
	KindBedsideLeft,
	KindBedsideRight,
	KindWardrobe,
	KindTVUnit,
	KindDressingTable,
	KindBanquet,
}

// Size is a width x depth footprint in mm.
type Size struct {
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
}

// FurnitureSpec is a catalog entry. Width runs along the anchor wall,
// Depth perpendicular into the room.
type FurnitureSpec struct {
	Kind           Kind    `json:"kind"`
	Width          float64 `json:"width"`
	Depth          float64 `json:"depth"`
	Height         float64 `json:"height"`
	Clearance      float64 `json:"clearance"`       // minimum empty gap around the footprint
	RequiresAnchor bool    `json:"requires_anchor"` // must end up flush against a wall
	Material       string  `json:"material"`
	UnitCost       float64 `json:"unit_cost"`
	Variants       []Size  `json:"variants,omitempty"` // degraded sizes, largest first
}

// Footprint returns the primary size of the spec.
func (s FurnitureSpec) Footprint() Size {
	return Size{Width: s.Width, Depth: s.Depth}
}

// Sizes returns the primary footprint followed by the fallback variants.
func (s FurnitureSpec) Sizes() []Size {
	return append([]Size{s.Footprint()}, s.Variants...)
}

// SpecOverride carries optional per-solve adjustments to a catalog entry.
// Nil fields leave the catalog value untouched.
type SpecOverride struct {
	Width     *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Depth     *float64 `json:"depth,omitempty" yaml:"depth,omitempty"`
	Clearance *float64 `json:"clearance,omitempty" yaml:"clearance,omitempty"`
}

// Merge returns a copy of the spec with the override applied. The catalog
// entry itself is never mutated.
func (s FurnitureSpec) Merge(o SpecOverride) FurnitureSpec {
	out := s
	if o.Width != nil {
		out.Width = *o.Width
		out.Variants = nil // an explicit size replaces the degradation ladder
	}
	if o.Depth != nil {
		out.Depth = *o.Depth
	}
	if o.Clearance != nil {
		out.Clearance = *o.Clearance
	}
	return out
}

// BedType selects one of the standard mattress sizes.
type BedType string

const (
	BedSingle BedType = "single"
	BedDouble BedType = "double"
	BedQueen  BedType = "queen"
	BedKing   BedType = "king"
)

// BedSize returns the footprint for a bed type, and false for unknown types.
func BedSize(t BedType) (Size, bool) {
	switch t {
	case BedSingle:
		return Size{Width: 1200, Depth: 1900}, true
	case BedDouble:
		return Size{Width: 1400, Depth: 1900}, true
	case BedQueen:
		return Size{Width: 1600, Depth: 2000}, true
	case BedKing:
		return Size{Width: 1800, Depth: 2000}, true
	}
	return Size{}, false
}

// bedVariants returns the bed sizes smaller than t, largest first.
// These are the size rungs of the bed's fallback ladder.
func bedVariants(t BedType) []Size {
	order := []BedType{BedKing, BedQueen, BedDouble, BedSingle}
	var out []Size
	seen := false
	for _, bt := range order {
		if bt == t {
			seen = true
			continue
		}
		if seen {
			sz, _ := BedSize(bt)
			out = append(out, sz)
		}
	}
	return out
}

// wardrobeVariants returns degraded wardrobe widths in 100mm steps down
// to 1200mm, matching the designer fallback behavior.
func wardrobeVariants(width, depth float64) []Size {
	var out []Size
	for w := width - 100; w >= 1200; w -= 100 {
		out = append(out, Size{Width: w, Depth: depth})
	}
	return out
}

// Catalog is the immutable furniture specification set for one solve.
type Catalog struct {
	specs map[Kind]FurnitureSpec
}

// Spec looks up the catalog entry for a kind.
func (c Catalog) Spec(k Kind) (FurnitureSpec, bool) {
	s, ok := c.specs[k]
	return s, ok
}

// Kinds returns the cataloged kinds in placement order.
func (c Catalog) Kinds() []Kind {
	var out []Kind
	for _, k := range PlacementOrder {
		if _, ok := c.specs[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// WithOverrides returns a new catalog with per-kind overrides applied.
func (c Catalog) WithOverrides(overrides map[Kind]SpecOverride) Catalog {
	out := Catalog{specs: make(map[Kind]FurnitureSpec, len(c.specs))}
	for k, s := range c.specs {
		if o, ok := overrides[k]; ok {
			s = s.Merge(o)
		}
		out.specs[k] = s
	}
	return out
}

// DefaultCatalog builds the standard bedroom catalog for a bed type.
// Unknown bed types fall back to queen.
func DefaultCatalog(bed BedType) Catalog {
	bedSize, ok := BedSize(bed)
	if !ok {
		bed = BedQueen
		bedSize, _ = BedSize(bed)
	}
	specs := map[Kind]FurnitureSpec{
		KindBed: {
			Kind: KindBed, Width: bedSize.Width, Depth: bedSize.Depth, Height: 500,
			Clearance: 100, RequiresAnchor: true,
			Material: "Upholstered", UnitCost: 1500,
			Variants: bedVariants(bed),
		},
		KindHeadboard: {
			Kind: KindHeadboard, Width: bedSize.Width, Depth: 50, Height: 1000,
			Clearance: 0, RequiresAnchor: true,
			Material: "Fabric", UnitCost: 300,
		},
		KindWardrobe: {
			Kind: KindWardrobe, Width: 1800, Depth: 600, Height: 2200,
			Clearance: 200, RequiresAnchor: true,
			Material: "Engineered Wood", UnitCost: 800,
			Variants: wardrobeVariants(1800, 600),
		},
		KindBedsideLeft: {
			Kind: KindBedsideLeft, Width: 500, Depth: 400, Height: 600,
			Clearance: 0, RequiresAnchor: true,
			Material: "Wood", UnitCost: 150,
		},
		KindBedsideRight: {
			Kind: KindBedsideRight, Width: 500, Depth: 400, Height: 600,
			Clearance: 0, RequiresAnchor: true,
			Material: "Wood", UnitCost: 150,
		},
		KindTVUnit: {
			Kind: KindTVUnit, Width: 1200, Depth: 400, Height: 500,
			Clearance: 100, RequiresAnchor: true,
			Material: "MDF", UnitCost: 400,
		},
		KindDressingTable: {
			Kind: KindDressingTable, Width: 1200, Depth: 450, Height: 800,
			Clearance: 100, RequiresAnchor: false,
			Material: "Engineered Wood", UnitCost: 350,
		},
		KindBanquet: {
			Kind: KindBanquet, Width: 1400, Depth: 500, Height: 400,
			Clearance: 0, RequiresAnchor: false,
			Material: "Upholstered", UnitCost: 200,
		},
	}
	return Catalog{specs: specs}
}
