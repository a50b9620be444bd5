package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planwise/roomplan/internal/model"
)

func sampleLayout() *model.Layout {
	return &model.Layout{
		ID:   "ROOM-a1b2c3d4",
		Room: model.Room{Width: 3000, Depth: 2700, Height: 2800},
		Openings: []model.Opening{
			{Kind: model.OpeningDoor, Wall: model.WallLeft, Offset: 200, Width: 900, Hinge: model.HingeLeft},
		},
		Items: []model.PlacedItem{
			{
				ID: "FUR-001", Kind: model.KindBed,
				X: 700, Y: 0, Width: 1600, Depth: 2000, Height: 500,
				Wall: model.WallTop, Clearance: 100,
				Material: "Upholstered", UnitCost: 1500,
			},
			{
				ID: "FUR-002", Kind: model.KindHeadboard,
				X: 700, Y: 0, Width: 1600, Depth: 50, Height: 1000,
				Wall: model.WallTop, AttachedTo: "FUR-001",
				Material: "Fabric", UnitCost: 300,
			},
		},
		NicheWalls: []model.NicheWall{{ID: "NW-003", X: 0, Y: 1180, Width: 600, Depth: 120}},
		Issues:     []model.Issue{{Kind: model.KindBanquet, Rule: model.RuleOmitted, Detail: "no space"}},
	}
}

func TestSaveAndLoadLayout_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "room.layout.json")
	original := sampleLayout()

	require.NoError(t, SaveLayout(path, original))

	loaded, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestSaveLayout_WritesVersionedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.layout.json")
	require.NoError(t, SaveLayout(path, sampleLayout()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "1.0.0", doc.Version)
	assert.NotEmpty(t, doc.CreatedAt)
	assert.Equal(t, "ROOM-a1b2c3d4", doc.Layout.ID)
}

func TestSaveLayout_BacksUpPreviousRevision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.layout.json")
	first := sampleLayout()
	require.NoError(t, SaveLayout(path, first))

	second := sampleLayout()
	second.ID = "ROOM-e5f6a7b8"
	require.NoError(t, SaveLayout(path, second))

	loaded, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, "ROOM-e5f6a7b8", loaded.ID)

	backed, err := LoadLayout(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "ROOM-a1b2c3d4", backed.ID)
}

func TestLoadLayout_MissingFile(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadLayout_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadLayout(path)
	assert.Error(t, err)
}
