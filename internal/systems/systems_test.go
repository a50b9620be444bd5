package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/roomplan/internal/model"
)

func TestTVSize_ScalesWithFloorArea(t *testing.T) {
	tests := []struct {
		width, depth float64
		inches       int
	}{
		{3000, 2700, 32},  // 8.1 m2
		{4000, 3200, 43},  // 12.8 m2
		{4500, 3600, 55},  // 16.2 m2
		{5000, 4500, 65},  // 22.5 m2
	}
	for _, tt := range tests {
		room := model.Room{Width: tt.width, Depth: tt.depth}
		assert.Equal(t, tt.inches, TVSize(room))
	}
}

func TestACCapacity_RoundsUpToStandardStep(t *testing.T) {
	assert.Equal(t, 1.5, ACCapacity(model.Room{Width: 3000, Depth: 2700}))  // 0.81 HP needed
	assert.Equal(t, 2.25, ACCapacity(model.Room{Width: 5000, Depth: 4000})) // 2.0 HP needed
	assert.Equal(t, 5.0, ACCapacity(model.Room{Width: 10000, Depth: 8000}), "caps at the largest standard unit")
}

func TestDerive_SocketsFollowFurniture(t *testing.T) {
	layout := &model.Layout{
		Room: model.Room{Width: 4000, Depth: 3500},
		Items: []model.PlacedItem{
			{ID: "FUR-001", Kind: model.KindTVUnit, X: 1400, Y: 3100, Width: 1200, Depth: 400},
			{ID: "FUR-002", Kind: model.KindBedsideLeft, X: 650, Y: 0, Width: 500, Depth: 400},
			{ID: "FUR-003", Kind: model.KindDressingTable, X: 2600, Y: 3050, Width: 1200, Depth: 450},
		},
	}

	plan := Derive(layout)

	require.Len(t, plan.Sockets, 3)

	tvSock := plan.Sockets[0]
	assert.Equal(t, "ELEC-001", tvSock.ID)
	assert.Equal(t, "tv_wall", tvSock.Location)
	assert.Equal(t, 2, tvSock.Quantity)
	assert.Equal(t, 400.0, tvSock.Height)
	assert.Equal(t, 2000.0, tvSock.X, "socket centered behind the tv unit")

	assert.Equal(t, "bedside_left", plan.Sockets[1].Location)
	assert.Equal(t, 300.0, plan.Sockets[1].Height)
	assert.Equal(t, "dressing_table", plan.Sockets[2].Location)
	assert.Equal(t, 900.0, plan.Sockets[2].Height)
}

func TestDerive_LightGridCoversTheRoom(t *testing.T) {
	layout := &model.Layout{Room: model.Room{Width: 4000, Depth: 3500}} // 14 m2

	plan := Derive(layout)

	require.Len(t, plan.Lights, 5, "one light per ~4 m2 plus two")
	for _, l := range plan.Lights {
		assert.Equal(t, "recessed", l.Type)
		assert.Equal(t, 15, l.Wattage)
		assert.Greater(t, l.X, 0.0)
		assert.Less(t, l.X, 4000.0)
		assert.Greater(t, l.Y, 0.0)
		assert.Less(t, l.Y, 3500.0)
	}
}

func TestDerive_SmallRoomGetsSinglePendant(t *testing.T) {
	layout := &model.Layout{Room: model.Room{Width: 3000, Depth: 2700}} // 8.1 m2

	plan := Derive(layout)

	require.Len(t, plan.Lights, 1)
	pendant := plan.Lights[0]
	assert.Equal(t, "pendant", pendant.Type)
	assert.Equal(t, 1500.0, pendant.X, "centered on the room")
	assert.Equal(t, 1350.0, pendant.Y)
	assert.Equal(t, 40, pendant.Wattage)
}

func TestDerive_ACFromFloorArea(t *testing.T) {
	layout := &model.Layout{Room: model.Room{Width: 4000, Depth: 3500}} // 14 m2 -> 1.5 HP

	plan := Derive(layout)

	require.NotNil(t, plan.AC)
	assert.Equal(t, 1.5, plan.AC.CapacityHP)
	assert.Equal(t, 12000, plan.AC.CapacityBT)
	assert.Equal(t, 750.0, plan.AC.UnitCost)
	assert.Equal(t, 43, plan.TVInches)
}

func TestDerive_MinimalLayoutStillGetsLightsAndAC(t *testing.T) {
	layout := &model.Layout{Room: model.Room{Width: 3000, Depth: 2700}}

	plan := Derive(layout)

	assert.Empty(t, plan.Sockets)
	assert.Len(t, plan.Lights, 1, "8.1 m2 is below the recessed-grid threshold")
	require.NotNil(t, plan.AC)
	assert.Equal(t, 1.5, plan.AC.CapacityHP)
}
