// Package export writes finished room layouts to exchange formats:
// DXF floor plans, PDF plan sheets, QR installation labels and
// bill-of-quantities workbooks.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/planwise/roomplan/internal/model"
)

// itemColor represents an RGB fill color for a placed furniture item.
type itemColor struct {
	R, G, B int
}

// itemColors assigns a stable fill per furniture kind so repeated exports
// of the same layout look identical.
var itemColors = map[model.Kind]itemColor{
	model.KindBed:           {R: 76, G: 175, B: 80},  // green
	model.KindHeadboard:     {R: 56, G: 142, B: 60},  // dark green
	model.KindWardrobe:      {R: 33, G: 150, B: 243}, // blue
	model.KindBedsideLeft:   {R: 255, G: 152, B: 0},  // orange
	model.KindBedsideRight:  {R: 255, G: 152, B: 0},  // orange
	model.KindTVUnit:        {R: 156, G: 39, B: 176}, // purple
	model.KindDressingTable: {R: 0, G: 188, B: 212},  // cyan
	model.KindBanquet:       {R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a plan sheet for the layout: a scaled floor plan
// page followed by a furniture schedule page.
func ExportPDF(path string, layout model.Layout) error {
	if layout.Room.Width <= 0 || layout.Room.Depth <= 0 {
		return fmt.Errorf("layout has no room to draw")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderPlanPage(pdf, layout)

	pdf.AddPage()
	renderSchedulePage(pdf, layout)

	return pdf.OutputFileAndClose(path)
}

// renderPlanPage draws the scaled floor plan on the current page.
func renderPlanPage(pdf *fpdf.Fpdf, layout model.Layout) {
	room := layout.Room

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Floor Plan %s (%.0f x %.0f mm)", layout.ID, room.Width, room.Depth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Area: %.1f m2 | Items: %d | Openings: %d | Issues: %d",
		room.Area(), len(layout.Items), len(layout.Openings), len(layout.Issues))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	scale := math.Min(drawWidth/room.Width, drawHeight/room.Depth)
	canvasW := room.Width * scale
	canvasH := room.Depth * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Room envelope
	pdf.SetFillColor(250, 248, 240)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.6)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Niche walls render as solid construction
	for _, niche := range layout.NicheWalls {
		r := niche.Rect()
		pdf.SetFillColor(120, 120, 120)
		pdf.SetDrawColor(60, 60, 60)
		pdf.SetLineWidth(0.3)
		pdf.Rect(offsetX+r.X*scale, offsetY+r.Y*scale, r.W*scale, r.D*scale, "FD")
	}

	for _, o := range layout.Openings {
		drawOpeningMark(pdf, room, o, scale, offsetX, offsetY)
	}

	for _, item := range layout.Items {
		col, ok := itemColors[item.Kind]
		if !ok {
			col = itemColor{R: 158, G: 158, B: 158}
		}
		r := item.Rect()
		pw := r.W * scale
		ph := r.D * scale
		px := offsetX + r.X*scale
		py := offsetY + r.Y*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", 7)
			pdf.SetTextColor(0, 0, 0)

			label := string(item.Kind)
			dims := fmt.Sprintf("%.0fx%.0f", item.Width, item.Depth)

			if labelW := pdf.GetStringWidth(label); labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
			if dimsW := pdf.GetStringWidth(dims); ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	drawIssueList(pdf, layout, offsetY+canvasH+5)
}

// drawOpeningMark renders a door or window as a gap in the wall stroke.
func drawOpeningMark(pdf *fpdf.Fpdf, room model.Room, o model.Opening, scale, offsetX, offsetY float64) {
	const wallGap = 1.2 // drawn wall thickness in page mm

	leaf := room.PlaceOnWall(o.Wall, o.Width, 0, o.Offset)
	x := offsetX + leaf.X*scale
	y := offsetY + leaf.Y*scale
	w := leaf.W * scale
	d := leaf.D * scale

	pdf.SetFillColor(255, 255, 255)
	if o.Wall.Horizontal() {
		pdf.Rect(x, y-wallGap/2, w, wallGap, "F")
	} else {
		pdf.Rect(x-wallGap/2, y, wallGap, d, "F")
	}

	if o.Kind == model.OpeningWindow {
		pdf.SetDrawColor(41, 128, 185)
		pdf.SetLineWidth(0.4)
		if o.Wall.Horizontal() {
			pdf.Line(x, y, x+w, y)
		} else {
			pdf.Line(x, y, x, y+d)
		}
		return
	}

	// Door leaf drawn perpendicular to the wall in the open position.
	radius := o.KeepClearDepth(0) * scale
	hx, hy, _, _, ix, iy := swingFrame(room, o, leaf)
	px := offsetX + hx*scale
	py := offsetY + hy*scale
	pdf.SetDrawColor(230, 126, 34)
	pdf.SetLineWidth(0.4)
	pdf.Line(px, py, px+radius*ix, py+radius*iy)
}

// drawIssueList prints the layout issues under the plan, if any.
func drawIssueList(pdf *fpdf.Fpdf, layout model.Layout, startY float64) {
	pdf.SetXY(marginLeft, startY)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)

	if len(layout.Issues) == 0 {
		pdf.SetTextColor(46, 125, 50)
		pdf.CellFormat(100, 4, "No placement issues", "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		return
	}

	pdf.CellFormat(100, 4, "Issues:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(180, 60, 40)
	for _, issue := range layout.Issues {
		pdf.SetX(marginLeft + 2)
		text := fmt.Sprintf("%s (%s): %s", issue.Kind, issue.Rule, issue.Detail)
		pdf.CellFormat(pageWidth-marginLeft-marginRight-2, 3.5, text, "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderSchedulePage prints the furniture schedule as a table.
func renderSchedulePage(pdf *fpdf.Fpdf, layout model.Layout) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Furniture Schedule", "", 1, "L", false, 0, "")

	headers := []string{"ID", "Item", "W (mm)", "D (mm)", "H (mm)", "Wall", "Material"}
	widths := []float64{25, 45, 25, 25, 25, 25, 60}

	pdf.SetXY(marginLeft, marginTop+headerHeight+2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range layout.Items {
		pdf.SetX(marginLeft)
		wall := string(item.Wall)
		if wall == "" {
			wall = "-"
		}
		cells := []string{
			item.ID,
			string(item.Kind),
			fmt.Sprintf("%.0f", item.Width),
			fmt.Sprintf("%.0f", item.Depth),
			fmt.Sprintf("%.0f", item.Height),
			wall,
			item.Material,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
