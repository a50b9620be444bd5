package export

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/planwise/roomplan/internal/model"
)

// Number of line segments used to approximate a door swing arc.
const swingArcSegments = 16

// dxfLayers defines the CAD layer scheme for floor plan exports. Names
// follow the AIA layer naming convention so the file drops cleanly into
// architectural drawing sets.
var dxfLayers = []struct {
	name string
	col  color.ColorNumber
}{
	{"A-WALL", color.White},
	{"A-WALL-INT", color.Red},
	{"A-DOOR", color.Yellow},
	{"A-DOOR-SWING", color.Yellow},
	{"A-WINDOW", color.Cyan},
	{"A-FURN-BED", color.Green},
	{"A-FURN-STORAGE", color.Blue},
	{"A-FURNITURE", color.Magenta},
}

// ExportDXF writes the layout as a 2D DXF floor plan in millimetres.
// Model coordinates grow downward from the top-left corner; DXF Y grows
// upward, so everything is mirrored about the horizontal room axis.
func ExportDXF(path string, layout model.Layout) error {
	d := dxf.NewDrawing()

	for _, l := range dxfLayers {
		if _, err := d.AddLayer(l.name, l.col, table.LT_CONTINUOUS, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	room := layout.Room
	fy := func(y float64) float64 { return room.Depth - y }

	line := func(x1, y1, x2, y2 float64) {
		d.Line(x1, fy(y1), 0, x2, fy(y2), 0)
	}
	rect := func(r model.Rect) {
		line(r.X, r.Y, r.MaxX(), r.Y)
		line(r.MaxX(), r.Y, r.MaxX(), r.MaxY())
		line(r.MaxX(), r.MaxY(), r.X, r.MaxY())
		line(r.X, r.MaxY(), r.X, r.Y)
	}

	if err := d.ChangeLayer("A-WALL"); err != nil {
		return err
	}
	rect(layout.Room.Envelope())

	for _, niche := range layout.NicheWalls {
		if err := d.ChangeLayer("A-WALL-INT"); err != nil {
			return err
		}
		rect(niche.Rect())
	}

	for _, o := range layout.Openings {
		if err := drawOpening(d, room, o, line); err != nil {
			return err
		}
	}

	for _, item := range layout.Items {
		if err := d.ChangeLayer(furnitureLayer(item.Kind)); err != nil {
			return err
		}
		rect(item.Rect())
	}

	return d.SaveAs(path)
}

// furnitureLayer maps a furniture kind to its drawing layer.
func furnitureLayer(kind model.Kind) string {
	switch kind {
	case model.KindBed, model.KindHeadboard:
		return "A-FURN-BED"
	case model.KindWardrobe:
		return "A-FURN-STORAGE"
	default:
		return "A-FURNITURE"
	}
}

// drawOpening renders the opening leaf line on the wall face and, for
// doors, the quarter-circle swing arc from the hinge jamb.
func drawOpening(d *drawing.Drawing, room model.Room, o model.Opening, line func(x1, y1, x2, y2 float64)) error {
	layer := "A-WINDOW"
	if o.Kind == model.OpeningDoor {
		layer = "A-DOOR"
	}
	if err := d.ChangeLayer(layer); err != nil {
		return err
	}

	leaf := room.PlaceOnWall(o.Wall, o.Width, 0, o.Offset)
	line(leaf.X, leaf.Y, leaf.MaxX(), leaf.MaxY())

	if o.Kind != model.OpeningDoor {
		return nil
	}
	if err := d.ChangeLayer("A-DOOR-SWING"); err != nil {
		return err
	}

	hx, hy, ax, ay, ix, iy := swingFrame(room, o, leaf)
	radius := o.KeepClearDepth(0)

	// Quarter arc from the closed leaf position to fully open,
	// approximated with straight segments.
	px, py := hx+radius*ax, hy+radius*ay
	for i := 1; i <= swingArcSegments; i++ {
		theta := float64(i) / swingArcSegments * math.Pi / 2
		nx := hx + radius*(math.Cos(theta)*ax+math.Sin(theta)*ix)
		ny := hy + radius*(math.Cos(theta)*ay+math.Sin(theta)*iy)
		line(px, py, nx, ny)
		px, py = nx, ny
	}
	// Leaf in the open position.
	line(hx, hy, hx+radius*ix, hy+radius*iy)
	return nil
}

// swingFrame returns the hinge point plus two unit vectors in model
// coordinates: one toward the opposite jamb, one into the room.
func swingFrame(room model.Room, o model.Opening, leaf model.Rect) (hx, hy, ax, ay, ix, iy float64) {
	switch o.Wall {
	case model.WallTop:
		ix, iy = 0, 1
	case model.WallBottom:
		ix, iy = 0, -1
	case model.WallLeft:
		ix, iy = 1, 0
	case model.WallRight:
		ix, iy = -1, 0
	}

	sx, sy := leaf.X, leaf.Y
	ex, ey := leaf.MaxX(), leaf.MaxY()
	if o.Hinge == model.HingeRight {
		sx, sy, ex, ey = ex, ey, sx, sy
	}
	hx, hy = sx, sy

	span := math.Hypot(ex-sx, ey-sy)
	if span > 0 {
		ax, ay = (ex-sx)/span, (ey-sy)/span
	}
	return hx, hy, ax, ay, ix, iy
}
