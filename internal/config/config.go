// Package config loads solve requests from YAML files. A request bundles
// the room shell, its openings, the furniture selection and optional
// solver setting overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/planwise/roomplan/internal/model"
	"github.com/planwise/roomplan/internal/solver"
)

// RoomSpec is the YAML shape of the room shell.
type RoomSpec struct {
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
	Height float64 `yaml:"height,omitempty"`
}

// OpeningSpec is the YAML shape of one door or window.
type OpeningSpec struct {
	Kind        string  `yaml:"kind"`
	Wall        string  `yaml:"wall"`
	Offset      float64 `yaml:"offset"`
	Width       float64 `yaml:"width"`
	Hinge       string  `yaml:"hinge,omitempty"`
	SwingRadius float64 `yaml:"swing_radius,omitempty"`
}

// Request is one complete solve request as read from disk.
type Request struct {
	Room      RoomSpec          `yaml:"room"`
	Openings  []OpeningSpec     `yaml:"openings"`
	Selection *solver.Selection `yaml:"selection,omitempty"`
	Settings  *solver.Settings  `yaml:"settings,omitempty"`
}

// LoadRequest loads a solve request from a YAML file.
func LoadRequest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("request file not found: %s", path)
		}
		return nil, fmt.Errorf("reading request file: %w", err)
	}

	var req Request
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request YAML: %w", err)
	}

	// Validate required fields
	if req.Room.Width <= 0 || req.Room.Depth <= 0 {
		return nil, fmt.Errorf("room.width and room.depth are required and must be positive")
	}
	for i, o := range req.Openings {
		if o.Kind == "" {
			return nil, fmt.Errorf("openings[%d].kind is required", i)
		}
		if o.Wall == "" {
			return nil, fmt.Errorf("openings[%d].wall is required", i)
		}
		if o.Width <= 0 {
			return nil, fmt.Errorf("openings[%d].width must be positive", i)
		}
	}
	if req.Selection != nil && req.Selection.BedType == "" {
		return nil, fmt.Errorf("selection.bed_type is required when a selection is given")
	}

	return &req, nil
}

// SaveRequest writes a request back to a YAML file.
func SaveRequest(path string, req *Request) error {
	data, err := yaml.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshaling request YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing request file: %w", err)
	}
	return nil
}

// RoomModel converts the YAML room to the solver model.
func (r *Request) RoomModel() model.Room {
	return model.Room{Width: r.Room.Width, Depth: r.Room.Depth, Height: r.Room.Height}
}

// OpeningModels converts the YAML openings to the solver model. Values
// are passed through untouched; the solver validates them in depth.
func (r *Request) OpeningModels() []model.Opening {
	out := make([]model.Opening, 0, len(r.Openings))
	for _, o := range r.Openings {
		out = append(out, model.Opening{
			Kind:        model.OpeningKind(o.Kind),
			Wall:        model.Wall(o.Wall),
			Offset:      o.Offset,
			Width:       o.Width,
			Hinge:       model.HingeSide(o.Hinge),
			SwingRadius: o.SwingRadius,
		})
	}
	return out
}

// SelectionOrDefault returns the request selection, falling back to the
// default selection when none was given.
func (r *Request) SelectionOrDefault() solver.Selection {
	if r.Selection != nil {
		return *r.Selection
	}
	return solver.DefaultSelection()
}

// SettingsOrDefault returns the reference settings with any request
// overrides applied. Keys left out of the YAML keep their defaults, so a
// request can override a single clearance without restating the rest.
func (r *Request) SettingsOrDefault() solver.Settings {
	set := solver.DefaultSettings()
	if r.Settings == nil {
		return set
	}
	o := *r.Settings
	if o.EdgeClearance > 0 {
		set.EdgeClearance = o.EdgeClearance
	}
	if o.OpeningBuffer > 0 {
		set.OpeningBuffer = o.OpeningBuffer
	}
	if o.WindowKeepClear > 0 {
		set.WindowKeepClear = o.WindowKeepClear
	}
	if o.ClearanceFloor > 0 {
		set.ClearanceFloor = o.ClearanceFloor
	}
	if o.AnchorTolerance > 0 {
		set.AnchorTolerance = o.AnchorTolerance
	}
	if o.NicheDepth > 0 {
		set.NicheDepth = o.NicheDepth
	}
	if o.NicheThickness > 0 {
		set.NicheThickness = o.NicheThickness
	}
	if o.BedsideGap > 0 {
		set.BedsideGap = o.BedsideGap
	}
	return set
}
