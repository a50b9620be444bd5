package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/roomplan/internal/model"
	"github.com/planwise/roomplan/internal/systems"
)

func buildExportTestLayout() model.Layout {
	return model.Layout{
		ID:   "ROOM-a1b2c3d4",
		Room: model.Room{Width: 3000, Depth: 2700, Height: 2800},
		Openings: []model.Opening{
			{Kind: model.OpeningDoor, Wall: model.WallLeft, Offset: 200, Width: 900, Hinge: model.HingeLeft},
			{Kind: model.OpeningWindow, Wall: model.WallRight, Offset: 450, Width: 1800},
		},
		Items: []model.PlacedItem{
			{
				ID: "FUR-001", Kind: model.KindBed,
				X: 700, Y: 0, Width: 1600, Depth: 2000, Height: 500,
				Wall: model.WallTop, Clearance: 100,
				Material: "Upholstered", UnitCost: 1500,
			},
			{
				ID: "FUR-002", Kind: model.KindWardrobe,
				X: 0, Y: 1300, Width: 600, Depth: 1200, Height: 2200,
				Wall: model.WallLeft, Clearance: 50,
				Material: "Engineered Wood", UnitCost: 800,
			},
			{
				ID: "FUR-003", Kind: model.KindTVUnit,
				X: 900, Y: 2300, Width: 1200, Depth: 400, Height: 500,
				Wall: model.WallBottom, Clearance: 100,
				Material: "MDF", UnitCost: 400,
			},
		},
		NicheWalls: []model.NicheWall{
			{ID: "NW-004", X: 0, Y: 1180, Width: 600, Depth: 120},
			{ID: "NW-005", X: 0, Y: 2500, Width: 600, Depth: 120},
		},
		Issues: []model.Issue{
			{Kind: model.KindBanquet, Rule: model.RuleOmitted, Detail: "no space at the foot of the bed"},
		},
	}
}

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportDXF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.dxf")

	require.NoError(t, ExportDXF(path, buildExportTestLayout()))
	requireNonEmptyFile(t, path)
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")

	require.NoError(t, ExportPDF(path, buildExportTestLayout()))
	requireNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportPDF_RejectsEmptyRoom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")
	assert.Error(t, ExportPDF(path, model.Layout{}))
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	require.NoError(t, ExportLabels(path, buildExportTestLayout()))
	requireNonEmptyFile(t, path)
}

func TestExportLabels_EmptyLayoutFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	layout := model.Layout{Room: model.Room{Width: 3000, Depth: 2700}}

	assert.Error(t, ExportLabels(path, layout))
}

func TestCollectLabelInfos(t *testing.T) {
	layout := buildExportTestLayout()

	labels := CollectLabelInfos(layout)

	require.Len(t, labels, 3)
	assert.Equal(t, "FUR-001", labels[0].ItemID)
	assert.Equal(t, "bed", labels[0].Kind)
	assert.Equal(t, "top", labels[0].Wall)
	assert.Equal(t, 700.0, labels[0].X)
	assert.Equal(t, layout.ID, labels[0].LayoutID)
}

func TestExportBOQ_CreatesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boq.xlsx")
	layout := buildExportTestLayout()
	plan := systems.Derive(&layout)

	require.NoError(t, ExportBOQ(path, layout, plan))
	requireNonEmptyFile(t, path)
}

func TestFurnitureLayer(t *testing.T) {
	assert.Equal(t, "A-FURN-BED", furnitureLayer(model.KindBed))
	assert.Equal(t, "A-FURN-BED", furnitureLayer(model.KindHeadboard))
	assert.Equal(t, "A-FURN-STORAGE", furnitureLayer(model.KindWardrobe))
	assert.Equal(t, "A-FURNITURE", furnitureLayer(model.KindBanquet))
}

func TestSwingFrame_LeftWallLeftHinge(t *testing.T) {
	room := model.Room{Width: 3000, Depth: 2700}
	door := model.Opening{Kind: model.OpeningDoor, Wall: model.WallLeft, Offset: 200, Width: 900, Hinge: model.HingeLeft}
	leaf := room.PlaceOnWall(door.Wall, door.Width, 0, door.Offset)

	hx, hy, ax, ay, ix, iy := swingFrame(room, door, leaf)

	assert.Equal(t, 0.0, hx)
	assert.Equal(t, 200.0, hy, "hinge sits at the jamb nearer the wall start")
	assert.Equal(t, 0.0, ax)
	assert.Equal(t, 1.0, ay, "toward the opposite jamb")
	assert.Equal(t, 1.0, ix)
	assert.Equal(t, 0.0, iy, "into the room")
}
