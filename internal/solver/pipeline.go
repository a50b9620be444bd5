package solver

import (
	"fmt"

	"github.com/planwise/roomplan/internal/model"
)

// Selection chooses the optional items for one solve and carries per-kind
// size overrides. The bed, headboard and wardrobe are always attempted.
type Selection struct {
	BedType       model.BedType                     `json:"bed_type" yaml:"bed_type"`
	BedsideTables bool                              `json:"bedside_tables" yaml:"bedside_tables"`
	TVUnit        bool                              `json:"tv_unit" yaml:"tv_unit"`
	DressingTable bool                              `json:"dressing_table" yaml:"dressing_table"`
	Banquet       bool                              `json:"banquet" yaml:"banquet"`
	Overrides     map[model.Kind]model.SpecOverride `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// DefaultSelection returns a queen bed with every optional item included.
func DefaultSelection() Selection {
	return Selection{
		BedType:       model.BedQueen,
		BedsideTables: true,
		TVUnit:        true,
		DressingTable: true,
		Banquet:       true,
	}
}

// Solver runs the placement pipeline. One Solver may be reused across
// solves; each Solve call allocates its own working state.
type Solver struct {
	Settings Settings
}

// New creates a solver with the given settings.
func New(set Settings) *Solver {
	return &Solver{Settings: set}
}

// Solve computes a layout for the room. The returned layout may carry
// issues for omitted or degraded optional items; only configuration errors
// and a bed that fits nowhere abort the solve.
func (s *Solver) Solve(room model.Room, openings []model.Opening, sel Selection) (*model.Layout, error) {
	if err := room.Validate(); err != nil {
		return nil, &ConfigurationError{Reason: err}
	}
	if err := model.ValidateOpenings(room, openings); err != nil {
		return nil, &ConfigurationError{Reason: err}
	}

	cat := model.DefaultCatalog(sel.BedType).WithOverrides(sel.Overrides)
	st := &solve{
		room:     room,
		openings: openings,
		set:      s.Settings,
		cat:      cat,
		checker:  NewChecker(room, openings, s.Settings),
	}

	bed, err := st.placeBed()
	if err != nil {
		return nil, err
	}
	st.placeHeadboard(bed)
	if sel.BedsideTables {
		st.placeBedside(model.KindBedsideLeft, bed)
		st.placeBedside(model.KindBedsideRight, bed)
	}
	st.placeWardrobe(bed)
	var tv *model.PlacedItem
	if sel.TVUnit {
		tv = st.placeTV(bed)
	}
	if sel.DressingTable {
		st.placeDressingTable(bed, tv)
	}
	if sel.Banquet {
		st.placeBanquet(bed)
	}

	layout := &model.Layout{
		ID:         model.NewID("ROOM"),
		Room:       room,
		Openings:   openings,
		Items:      st.checker.Placed(),
		NicheWalls: st.checker.Niches(),
		Issues:     st.issues,
	}
	layout.Issues = append(layout.Issues, Validate(room, openings, layout, cat, s.Settings)...)
	return layout, nil
}

// solve is the working state of one pipeline run.
type solve struct {
	room     model.Room
	openings []model.Opening
	set      Settings
	cat      model.Catalog
	checker  *Checker
	issues   []model.Issue
	nextID   int
}

// attempt is the outcome of one placement try: either a committable item
// or a typed failure the fallback ladder dispatches on.
type attempt struct {
	item model.PlacedItem
	fail failKind
	why  string
}

func (s *solve) try(item model.PlacedItem, exempt map[string]bool) attempt {
	kind, why := s.checker.check(item, exempt)
	return attempt{item: item, fail: kind, why: why}
}

func (s *solve) commit(item model.PlacedItem) model.PlacedItem {
	s.checker.Commit(item)
	return item
}

func (s *solve) issue(kind model.Kind, rule, detail string) {
	s.issues = append(s.issues, model.Issue{Kind: kind, Rule: rule, Detail: detail})
}

// itemID hands out sequential item IDs so identical input yields an
// identical layout.
func (s *solve) itemID() string {
	s.nextID++
	return fmt.Sprintf("FUR-%03d", s.nextID)
}

// wallItem builds an anchored candidate at offset along the wall.
func (s *solve) wallItem(spec model.FurnitureSpec, size model.Size, w model.Wall, offset, clearance float64) model.PlacedItem {
	rect := s.room.PlaceOnWall(w, size.Width, size.Depth, offset)
	return model.PlacedItem{
		ID: s.itemID(), Kind: spec.Kind,
		X: rect.X, Y: rect.Y, Width: rect.W, Depth: rect.D,
		Height: spec.Height, Wall: w, Clearance: clearance,
		Material: spec.Material, UnitCost: spec.UnitCost,
	}
}

// freeItem builds a free-standing candidate from an explicit rectangle.
func (s *solve) freeItem(spec model.FurnitureSpec, rect model.Rect, clearance float64) model.PlacedItem {
	return model.PlacedItem{
		ID: s.itemID(), Kind: spec.Kind,
		X: rect.X, Y: rect.Y, Width: rect.W, Depth: rect.D,
		Height: spec.Height, Clearance: clearance,
		Material: spec.Material, UnitCost: spec.UnitCost,
	}
}

// placeBed places the sole fully mandatory item. The fallback ladder runs
// walls in scored order, then degraded clearance, then the next-smaller
// bed size. Exhausting the ladder aborts the solve.
func (s *solve) placeBed() (model.PlacedItem, error) {
	spec, _ := s.cat.Spec(model.KindBed)
	lastWhy := "no wall long enough"

	for sizeIdx, size := range spec.Sizes() {
		scored := ScoreWalls(s.room, s.openings, size.Width, nil, s.set)
		clearanceHit := true // first pass always runs at full clearance
		for _, clr := range s.set.clearanceSteps(spec.Clearance) {
			if !clearanceHit {
				break // reduce clearance only when clearance is what failed
			}
			clearanceHit = false
			for _, ws := range scored {
				offset := (s.room.WallLength(ws.Wall) - size.Width) / 2
				a := s.try(s.wallItem(spec, size, ws.Wall, offset, clr), nil)
				if a.fail == failNone {
					if sizeIdx > 0 {
						s.issue(model.KindBed, model.RuleDeviation,
							fmt.Sprintf("bed reduced to %.0fx%.0fmm to fit", size.Width, size.Depth))
					}
					return s.commit(a.item), nil
				}
				if a.fail == failClearance {
					clearanceHit = true
				}
				lastWhy = a.why
			}
		}
	}
	return model.PlacedItem{}, &MandatoryPlacementFailure{Kind: model.KindBed, Reason: lastWhy}
}

// placeHeadboard puts the decorative headboard flush behind the bed on the
// bed's anchor wall. It inherits the bed's wall and is exempt from the
// clearance rule against the bed; there is no independent scoring.
func (s *solve) placeHeadboard(bed model.PlacedItem) {
	spec, ok := s.cat.Spec(model.KindHeadboard)
	if !ok {
		return
	}
	along := alongExtent(bed)
	size := model.Size{Width: spec.Width, Depth: spec.Depth}
	if size.Width > along {
		size.Width = along
	}
	offset := alongStart(bed, bed.Wall) + (along-size.Width)/2
	item := s.wallItem(spec, size, bed.Wall, offset, spec.Clearance)
	item.AttachedTo = bed.ID

	a := s.try(item, map[string]bool{bed.ID: true})
	if a.fail != failNone {
		s.issue(model.KindHeadboard, model.RuleOmitted, a.why)
		return
	}
	s.commit(a.item)
}

// placeBedside puts one table next to the bed end, flush against the
// bed's wall with the configured gap off the bed's side edge. Bedside
// tables have no fallback wall: a side that does not fit is dropped and
// reported.
func (s *solve) placeBedside(kind model.Kind, bed model.PlacedItem) {
	spec, ok := s.cat.Spec(kind)
	if !ok {
		return
	}
	size := model.Size{Width: spec.Width, Depth: spec.Depth}

	var offset float64
	if kind == model.KindBedsideLeft {
		offset = alongStart(bed, bed.Wall) - s.set.BedsideGap - size.Width
	} else {
		offset = alongStart(bed, bed.Wall) + alongExtent(bed) + s.set.BedsideGap
	}

	item := s.wallItem(spec, size, bed.Wall, offset, spec.Clearance)
	item.AttachedTo = bed.ID
	a := s.try(item, map[string]bool{bed.ID: true})
	if a.fail != failNone {
		s.issue(kind, model.RuleOmitted, a.why)
		return
	}
	s.commit(a.item)
}

// placeWardrobe places the wardrobe inside a synthesized niche. Topology:
// never the bed's wall, never a window wall; the bed's opposite wall is
// hard in the first pass and relaxed to a soft penalty only when no other
// wall works; door walls are penalized but allowed.
func (s *solve) placeWardrobe(bed model.PlacedItem) {
	spec, ok := s.cat.Spec(model.KindWardrobe)
	if !ok {
		return
	}

	base := []WallConstraint{{Wall: bed.Wall, Hard: true}}
	for _, o := range s.openings {
		if o.Kind == model.OpeningWindow {
			base = append(base, WallConstraint{Wall: o.Wall, Hard: true})
		} else {
			base = append(base, WallConstraint{Wall: o.Wall, Hard: false})
		}
	}

	passes := [][]WallConstraint{
		append([]WallConstraint{{Wall: bed.Wall.Opposite(), Hard: true}}, base...),
		append([]WallConstraint{{Wall: bed.Wall.Opposite(), Hard: false}}, base...),
	}

	lastWhy := "no eligible wall"
	for passIdx, constraints := range passes {
		for sizeIdx, size := range spec.Sizes() {
			scored := ScoreWalls(s.room, s.openings, size.Width, constraints, s.set)
			clearanceHit := true // first pass always runs at full clearance
			for _, clr := range s.set.clearanceSteps(spec.Clearance) {
				if !clearanceHit {
					break
				}
				clearanceHit = false
				for _, ws := range scored {
					item, niches, fail, why := s.tryWardrobeOn(spec, size, ws.Wall, clr)
					if fail != failNone {
						if fail == failClearance {
							clearanceHit = true
						}
						lastWhy = why
						continue
					}
					s.commit(item)
					for _, n := range niches {
						s.checker.CommitNiche(n)
					}
					if sizeIdx > 0 {
						s.issue(model.KindWardrobe, model.RuleDeviation,
							fmt.Sprintf("wardrobe width reduced from %.0fmm to %.0fmm", spec.Width, size.Width))
					}
					if passIdx > 0 {
						s.issue(model.KindWardrobe, model.RuleDeviation, "wardrobe placed opposite the bed")
					}
					return
				}
			}
		}
	}
	s.issue(model.KindWardrobe, model.RuleOmitted, lastWhy)
}

// tryWardrobeOn attempts one wall: the wardrobe is centered in the largest
// wall section clear of opening zones, and both niche partitions must pass
// the checker alongside the wardrobe footprint.
func (s *solve) tryWardrobeOn(spec model.FurnitureSpec, size model.Size, w model.Wall, clr float64) (model.PlacedItem, []model.NicheWall, failKind, string) {
	hosted := openingsOn(s.openings, w)
	seg, ok := model.LargestSpan(freeSpans(s.room, hosted, w, s.set), size.Width)
	if !ok {
		return model.PlacedItem{}, nil, failBounds, fmt.Sprintf("no clear section on %s wall", w)
	}
	offset := seg.Start + (seg.Length()-size.Width)/2

	item := s.wallItem(spec, size, w, offset, clr)
	a := s.try(item, nil)
	if a.fail != failNone {
		return model.PlacedItem{}, nil, a.fail, a.why
	}

	niches := s.nicheFor(item.Rect(), w)
	for _, n := range niches {
		if !s.checker.CanPlaceNiche(n) {
			return model.PlacedItem{}, nil, failObstacle, s.checker.Reason()
		}
	}
	return a.item, niches, failNone, ""
}

// nicheFor builds the partition pair framing a wardrobe footprint. The
// niche is centered on the wardrobe: one partition flush against each end.
func (s *solve) nicheFor(rect model.Rect, w model.Wall) []model.NicheWall {
	thk, depth := s.set.NicheThickness, s.set.NicheDepth
	var a, b model.Rect
	if w.Horizontal() {
		y := 0.0
		if w == model.WallBottom {
			y = s.room.Depth - depth
		}
		a = model.Rect{X: rect.X - thk, Y: y, W: thk, D: depth}
		b = model.Rect{X: rect.MaxX(), Y: y, W: thk, D: depth}
	} else {
		x := 0.0
		if w == model.WallRight {
			x = s.room.Width - depth
		}
		a = model.Rect{X: x, Y: rect.Y - thk, W: depth, D: thk}
		b = model.Rect{X: x, Y: rect.MaxY(), W: depth, D: thk}
	}
	id1, id2 := s.nicheID(), s.nicheID()
	return []model.NicheWall{
		{ID: id1, X: a.X, Y: a.Y, Width: a.W, Depth: a.D},
		{ID: id2, X: b.X, Y: b.Y, Width: b.W, Depth: b.D},
	}
}

func (s *solve) nicheID() string {
	s.nextID++
	return fmt.Sprintf("NW-%03d", s.nextID)
}

// placeTV forces the TV unit onto the wall opposite the bed, centered.
// When an opening blocks the center it shifts into the largest clear
// section of the same wall; only leaving the forced wall entirely is
// flagged as a deviation.
func (s *solve) placeTV(bed model.PlacedItem) *model.PlacedItem {
	spec, ok := s.cat.Spec(model.KindTVUnit)
	if !ok {
		return nil
	}
	size := spec.Footprint()
	forced := bed.Wall.Opposite()
	lastWhy := "no eligible wall"

	for _, clr := range s.set.clearanceSteps(spec.Clearance) {
		if s.room.WallLength(forced) < size.Width {
			break
		}
		offset := (s.room.WallLength(forced) - size.Width) / 2
		a := s.try(s.wallItem(spec, size, forced, offset, clr), nil)
		if a.fail == failNone {
			item := s.commit(a.item)
			return &item
		}
		lastWhy = a.why

		if a.fail == failOpening {
			if seg, ok := model.LargestSpan(freeSpans(s.room, openingsOn(s.openings, forced), forced, s.set), size.Width); ok {
				offset = seg.Start + (seg.Length()-size.Width)/2
				a = s.try(s.wallItem(spec, size, forced, offset, clr), nil)
				if a.fail == failNone {
					item := s.commit(a.item)
					return &item
				}
				lastWhy = a.why
			}
		}
		if a.fail != failClearance {
			break
		}
	}

	// Deviation: best remaining wall instead of the visual axis.
	constraints := []WallConstraint{{Wall: bed.Wall, Hard: true}, {Wall: forced, Hard: true}}
	for _, ws := range ScoreWalls(s.room, s.openings, size.Width, constraints, s.set) {
		seg, ok := model.LargestSpan(freeSpans(s.room, openingsOn(s.openings, ws.Wall), ws.Wall, s.set), size.Width)
		if !ok {
			continue
		}
		offset := seg.Start + (seg.Length()-size.Width)/2
		a := s.try(s.wallItem(spec, size, ws.Wall, offset, spec.Clearance), nil)
		if a.fail != failNone {
			lastWhy = a.why
			continue
		}
		item := s.commit(a.item)
		s.issue(model.KindTVUnit, model.RuleDeviation,
			fmt.Sprintf("tv unit moved to %s wall, %s wall unavailable", ws.Wall, forced))
		return &item
	}

	s.issue(model.KindTVUnit, model.RuleOmitted, lastWhy)
	return nil
}

// placeDressingTable sits next to the TV unit on the same wall when space
// allows, otherwise lands free-standing against the next-best scored wall.
func (s *solve) placeDressingTable(bed model.PlacedItem, tv *model.PlacedItem) {
	spec, ok := s.cat.Spec(model.KindDressingTable)
	if !ok {
		return
	}
	size := spec.Footprint()

	if tv != nil {
		exempt := map[string]bool{tv.ID: true}
		start := alongStart(*tv, tv.Wall)
		for _, offset := range []float64{start + alongExtent(*tv), start - size.Width} {
			item := s.wallItem(spec, size, tv.Wall, offset, spec.Clearance)
			item.AttachedTo = tv.ID
			if a := s.try(item, exempt); a.fail == failNone {
				s.commit(a.item)
				return
			}
		}
	}

	constraints := []WallConstraint{{Wall: bed.Wall, Hard: true}}
	lastWhy := "no eligible wall"
	for _, ws := range ScoreWalls(s.room, s.openings, size.Width, constraints, s.set) {
		seg, ok := model.LargestSpan(freeSpans(s.room, openingsOn(s.openings, ws.Wall), ws.Wall, s.set), size.Width)
		if !ok {
			continue
		}
		offset := seg.Start + (seg.Length()-size.Width)/2
		rect := s.room.PlaceOnWall(ws.Wall, size.Width, size.Depth, offset)
		a := s.try(s.freeItem(spec, rect, spec.Clearance), nil)
		if a.fail != failNone {
			lastWhy = a.why
			continue
		}
		s.commit(a.item)
		return
	}
	s.issue(model.KindDressingTable, model.RuleOmitted, lastWhy)
}

// placeBanquet sits at the foot of the bed, centered on the bed's width
// and touching it. There is no fallback position: it either fits there or
// is omitted.
func (s *solve) placeBanquet(bed model.PlacedItem) {
	spec, ok := s.cat.Spec(model.KindBanquet)
	if !ok {
		return
	}
	size := spec.Footprint()

	var rect model.Rect
	switch bed.Wall {
	case model.WallTop:
		rect = model.Rect{X: bed.X + (bed.Width-size.Width)/2, Y: bed.Y + bed.Depth, W: size.Width, D: size.Depth}
	case model.WallBottom:
		rect = model.Rect{X: bed.X + (bed.Width-size.Width)/2, Y: bed.Y - size.Depth, W: size.Width, D: size.Depth}
	case model.WallLeft:
		rect = model.Rect{X: bed.X + bed.Width, Y: bed.Y + (bed.Depth-size.Width)/2, W: size.Depth, D: size.Width}
	default:
		rect = model.Rect{X: bed.X - size.Depth, Y: bed.Y + (bed.Depth-size.Width)/2, W: size.Depth, D: size.Width}
	}

	item := s.freeItem(spec, rect, spec.Clearance)
	item.AttachedTo = bed.ID
	a := s.try(item, map[string]bool{bed.ID: true})
	if a.fail != failNone {
		s.issue(model.KindBanquet, model.RuleOmitted, a.why)
		return
	}
	s.commit(a.item)
}

// alongStart returns the coordinate where an item starts along its wall.
func alongStart(item model.PlacedItem, w model.Wall) float64 {
	if w.Horizontal() {
		return item.X
	}
	return item.Y
}

// alongExtent returns the extent of an item along its anchor wall.
func alongExtent(item model.PlacedItem) float64 {
	if item.Wall.Horizontal() {
		return item.Width
	}
	return item.Depth
}
