package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoom() Room {
	return Room{Width: 3000, Depth: 2700, Height: 2800}
}

func TestRoomWallLength(t *testing.T) {
	room := testRoom()

	assert.Equal(t, 3000.0, room.WallLength(WallTop))
	assert.Equal(t, 3000.0, room.WallLength(WallBottom))
	assert.Equal(t, 2700.0, room.WallLength(WallLeft))
	assert.Equal(t, 2700.0, room.WallLength(WallRight))
}

func TestRoomArea(t *testing.T) {
	assert.InDelta(t, 8.1, testRoom().Area(), 1e-9)
}

func TestRoomValidate(t *testing.T) {
	assert.NoError(t, testRoom().Validate())
	assert.Error(t, Room{Width: 0, Depth: 2700}.Validate())
	assert.Error(t, Room{Width: 3000, Depth: -1}.Validate())
	assert.Error(t, Room{Width: 3000, Depth: 2700, Height: -1}.Validate())
}

func TestPlaceOnWall_AllWalls(t *testing.T) {
	room := testRoom()

	// Horizontal walls keep along as width.
	assert.Equal(t, Rect{X: 700, Y: 0, W: 1600, D: 2000}, room.PlaceOnWall(WallTop, 1600, 2000, 700))
	assert.Equal(t, Rect{X: 700, Y: 700, W: 1600, D: 2000}, room.PlaceOnWall(WallBottom, 1600, 2000, 700))

	// Vertical walls swap the stored extents so rectangles stay axis-aligned.
	assert.Equal(t, Rect{X: 0, Y: 500, W: 600, D: 1800}, room.PlaceOnWall(WallLeft, 1800, 600, 500))
	assert.Equal(t, Rect{X: 2400, Y: 500, W: 600, D: 1800}, room.PlaceOnWall(WallRight, 1800, 600, 500))
}

func TestCenterOnWall(t *testing.T) {
	room := testRoom()

	assert.Equal(t, Rect{X: 700, Y: 0, W: 1600, D: 2000}, room.CenterOnWall(WallTop, 1600, 2000))
	assert.Equal(t, Rect{X: 0, Y: 450, W: 600, D: 1800}, room.CenterOnWall(WallLeft, 1800, 600))
}

func TestWallOppositeAndAdjacent(t *testing.T) {
	assert.Equal(t, WallBottom, WallTop.Opposite())
	assert.Equal(t, WallLeft, WallRight.Opposite())
	assert.Equal(t, [2]Wall{WallLeft, WallRight}, WallTop.Adjacent())
	assert.Equal(t, [2]Wall{WallTop, WallBottom}, WallLeft.Adjacent())
}

func TestOpeningClearanceSpan_ClampsToWall(t *testing.T) {
	room := testRoom()
	door := Opening{Kind: OpeningDoor, Wall: WallLeft, Offset: 100, Width: 900}

	s := door.ClearanceSpan(room, 200)
	assert.Equal(t, Span{Start: 0, End: 1200}, s)
}

func TestOpeningKeepClearDepth(t *testing.T) {
	door := Opening{Kind: OpeningDoor, Wall: WallLeft, Offset: 200, Width: 900}
	assert.Equal(t, 900.0, door.KeepClearDepth(300), "door swing defaults to the leaf width")

	door.SwingRadius = 750
	assert.Equal(t, 750.0, door.KeepClearDepth(300))

	window := Opening{Kind: OpeningWindow, Wall: WallRight, Offset: 450, Width: 1800}
	assert.Equal(t, 300.0, window.KeepClearDepth(300))
}

func TestOpeningExclusionZone_DoorOnLeftWall(t *testing.T) {
	room := testRoom()
	door := Opening{Kind: OpeningDoor, Wall: WallLeft, Offset: 200, Width: 900}

	zone := door.ExclusionZone(room, 200, 300)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 900, D: 1300}, zone)
}

func TestValidateOpenings(t *testing.T) {
	room := testRoom()

	valid := []Opening{
		{Kind: OpeningDoor, Wall: WallLeft, Offset: 200, Width: 900, Hinge: HingeLeft},
		{Kind: OpeningWindow, Wall: WallRight, Offset: 450, Width: 1800},
	}
	require.NoError(t, ValidateOpenings(room, valid))

	tests := []struct {
		name     string
		openings []Opening
	}{
		{"unknown kind", []Opening{{Kind: "hatch", Wall: WallTop, Width: 500}}},
		{"unknown wall", []Opening{{Kind: OpeningDoor, Wall: "ceiling", Width: 900}}},
		{"zero width", []Opening{{Kind: OpeningDoor, Wall: WallTop, Width: 0}}},
		{"negative offset", []Opening{{Kind: OpeningDoor, Wall: WallTop, Offset: -10, Width: 900}}},
		{"past wall end", []Opening{{Kind: OpeningWindow, Wall: WallLeft, Offset: 2000, Width: 900}}},
		{"overlap on same wall", []Opening{
			{Kind: OpeningDoor, Wall: WallTop, Offset: 200, Width: 900},
			{Kind: OpeningWindow, Wall: WallTop, Offset: 800, Width: 600},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateOpenings(room, tt.openings))
		})
	}
}
