// Package systems derives electrical, lighting, and AC requirements from a
// solved layout. It reads furniture kinds for the bill of quantities and
// item positions for socket and light coordinates; it never changes the
// layout itself.
package systems

import (
	"fmt"
	"math"

	"github.com/planwise/roomplan/internal/model"
)

// Socket is one wall socket with its room coordinates and mounting height.
type Socket struct {
	ID       string  `json:"id"`
	Location string  `json:"location"` // which furniture it serves
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Height   float64 `json:"height"` // mounting height above floor, mm
	Quantity int     `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// Light is one ceiling light position.
type Light struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"` // recessed (area >= 10 m2) or pendant
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Wattage  int     `json:"wattage"`
	UnitCost float64 `json:"unit_cost"`
}

// ACUnit is the recommended split unit for the room.
type ACUnit struct {
	ID         string  `json:"id"`
	CapacityHP float64 `json:"capacity_hp"`
	CapacityBT int     `json:"capacity_btu"`
	UnitCost   float64 `json:"unit_cost"`
}

// Plan is the full derived systems set for one layout.
type Plan struct {
	Sockets  []Socket `json:"sockets"`
	Lights   []Light  `json:"lights"`
	AC       *ACUnit  `json:"ac,omitempty"`
	TVInches int      `json:"tv_inches"` // recommended screen size for the room area
}

// standard split-unit capacities in HP
var acSteps = []float64{1.5, 2.25, 3, 4, 5}

// TVSize recommends a screen diagonal in inches from the floor area.
func TVSize(room model.Room) int {
	switch area := room.Area(); {
	case area < 12:
		return 32
	case area < 15:
		return 43
	case area < 20:
		return 55
	default:
		return 65
	}
}

// ACCapacity sizes the split unit at one HP per 10 square meters, rounded
// up to the next standard capacity.
func ACCapacity(room model.Room) float64 {
	needed := room.Area() / 10
	for _, hp := range acSteps {
		if hp >= needed {
			return hp
		}
	}
	return acSteps[len(acSteps)-1]
}

// Derive computes the systems plan. Sockets are positioned relative to the
// furniture they serve: centered on bedside tables at 300mm, behind the TV
// unit at 400mm, above the dressing table at 900mm.
func Derive(layout *model.Layout) Plan {
	plan := Plan{TVInches: TVSize(layout.Room)}
	next := 0
	socketID := func() string {
		next++
		return fmt.Sprintf("ELEC-%03d", next)
	}

	addSocket := func(item *model.PlacedItem, location string, height float64, qty int) {
		if item == nil {
			return
		}
		plan.Sockets = append(plan.Sockets, Socket{
			ID:       socketID(),
			Location: location,
			X:        item.X + item.Width/2,
			Y:        item.Y + item.Depth/2,
			Height:   height,
			Quantity: qty,
			UnitCost: 25,
		})
	}

	addSocket(layout.Item(model.KindTVUnit), "tv_wall", 400, 2)
	addSocket(layout.Item(model.KindBedsideLeft), "bedside_left", 300, 1)
	addSocket(layout.Item(model.KindBedsideRight), "bedside_right", 300, 1)
	addSocket(layout.Item(model.KindDressingTable), "dressing_table", 900, 1)

	plan.Lights = lightGrid(layout.Room)

	hp := ACCapacity(layout.Room)
	plan.AC = &ACUnit{
		ID:         "AC-001",
		CapacityHP: hp,
		CapacityBT: int(hp * 12000 / 1.5),
		UnitCost:   hp * 500,
	}
	return plan
}

// rooms below this floor area get a single pendant instead of a grid
const pendantAreaLimit = 10.0

// lightGrid picks the lighting scheme by floor area: small rooms get one
// pendant over the room center, larger rooms an even grid of recessed
// downlights at one fixture per ~4 square meters with a minimum of two.
func lightGrid(room model.Room) []Light {
	if room.Area() < pendantAreaLimit {
		return []Light{{
			ID:       "LIGHT-001",
			Type:     "pendant",
			X:        room.Width / 2,
			Y:        room.Depth / 2,
			Wattage:  40,
			UnitCost: 120,
		}}
	}

	count := int(room.Width*room.Depth/4e6) + 2
	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := (count + cols - 1) / cols

	var lights []Light
	n := 0
	for r := 0; r < rows && n < count; r++ {
		for c := 0; c < cols && n < count; c++ {
			n++
			lights = append(lights, Light{
				ID:       fmt.Sprintf("LIGHT-%03d", n),
				Type:     "recessed",
				X:        room.Width * (float64(c) + 0.5) / float64(cols),
				Y:        room.Depth * (float64(r) + 0.5) / float64(rows),
				Wattage:  15,
				UnitCost: 50,
			})
		}
	}
	return lights
}
