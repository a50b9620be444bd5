package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/planwise/roomplan/internal/model"
	"github.com/planwise/roomplan/internal/systems"
)

const (
	boqFurnitureSheet = "Furniture"
	boqSystemsSheet   = "Systems"
	boqSummarySheet   = "Summary"
)

// ExportBOQ writes the bill of quantities as an Excel workbook with one
// sheet for furniture, one for electrical and mechanical systems, and a
// cost summary.
func ExportBOQ(path string, layout model.Layout, plan systems.Plan) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	furnitureTotal, err := writeFurnitureSheet(f, layout, headerStyle)
	if err != nil {
		return err
	}
	systemsTotal, err := writeSystemsSheet(f, plan, headerStyle)
	if err != nil {
		return err
	}
	if err := writeSummarySheet(f, layout, plan, furnitureTotal, systemsTotal, headerStyle); err != nil {
		return err
	}

	// The default sheet excelize creates is not part of the workbook.
	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex(boqSummarySheet); err == nil {
		f.SetActiveSheet(idx)
	}

	return f.SaveAs(path)
}

func writeFurnitureSheet(f *excelize.File, layout model.Layout, headerStyle int) (float64, error) {
	if _, err := f.NewSheet(boqFurnitureSheet); err != nil {
		return 0, fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"ID", "Item", "Width (mm)", "Depth (mm)", "Height (mm)", "Material", "Qty", "Unit Cost", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(boqFurnitureSheet, cell, h)
		f.SetCellStyle(boqFurnitureSheet, cell, cell, headerStyle)
	}
	f.SetColWidth(boqFurnitureSheet, "A", "B", 18)
	f.SetColWidth(boqFurnitureSheet, "F", "F", 24)

	var total float64
	row := 2
	for _, item := range layout.Items {
		values := []interface{}{
			item.ID,
			string(item.Kind),
			item.Width,
			item.Depth,
			item.Height,
			item.Material,
			1,
			item.UnitCost,
			item.UnitCost,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(boqFurnitureSheet, cell, v)
		}
		total += item.UnitCost
		row++
	}

	f.SetCellValue(boqFurnitureSheet, fmt.Sprintf("H%d", row), "Subtotal")
	f.SetCellValue(boqFurnitureSheet, fmt.Sprintf("I%d", row), total)
	return total, nil
}

func writeSystemsSheet(f *excelize.File, plan systems.Plan, headerStyle int) (float64, error) {
	if _, err := f.NewSheet(boqSystemsSheet); err != nil {
		return 0, fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"ID", "Item", "Detail", "Qty", "Unit Cost", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(boqSystemsSheet, cell, h)
		f.SetCellStyle(boqSystemsSheet, cell, cell, headerStyle)
	}
	f.SetColWidth(boqSystemsSheet, "B", "C", 28)

	var total float64
	row := 2
	addRow := func(id, item, detail string, qty int, unitCost float64) {
		lineTotal := float64(qty) * unitCost
		values := []interface{}{id, item, detail, qty, unitCost, lineTotal}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(boqSystemsSheet, cell, v)
		}
		total += lineTotal
		row++
	}

	for _, s := range plan.Sockets {
		detail := fmt.Sprintf("%s at (%.0f, %.0f), %.0fmm AFF", s.Location, s.X, s.Y, s.Height)
		addRow(s.ID, "Wall socket", detail, s.Quantity, s.UnitCost)
	}
	for _, l := range plan.Lights {
		detail := fmt.Sprintf("%dW at (%.0f, %.0f)", l.Wattage, l.X, l.Y)
		addRow(l.ID, fmt.Sprintf("Ceiling light (%s)", l.Type), detail, 1, l.UnitCost)
	}
	if plan.AC != nil {
		detail := fmt.Sprintf("%.2f HP / %d BTU split unit", plan.AC.CapacityHP, plan.AC.CapacityBT)
		addRow(plan.AC.ID, "Air conditioner", detail, 1, plan.AC.UnitCost)
	}

	f.SetCellValue(boqSystemsSheet, fmt.Sprintf("E%d", row), "Subtotal")
	f.SetCellValue(boqSystemsSheet, fmt.Sprintf("F%d", row), total)
	return total, nil
}

func writeSummarySheet(f *excelize.File, layout model.Layout, plan systems.Plan, furnitureTotal, systemsTotal float64, headerStyle int) error {
	if _, err := f.NewSheet(boqSummarySheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetCellValue(boqSummarySheet, "A1", "Bill of Quantities")
	f.SetCellStyle(boqSummarySheet, "A1", "A1", headerStyle)
	f.SetColWidth(boqSummarySheet, "A", "A", 28)

	rows := [][]interface{}{
		{"Layout", layout.ID},
		{"Room (mm)", fmt.Sprintf("%.0f x %.0f x %.0f", layout.Room.Width, layout.Room.Depth, layout.Room.Height)},
		{"Floor area (m2)", layout.Room.Area()},
		{"Recommended TV size (in)", plan.TVInches},
		{"Furniture items", len(layout.Items)},
		{"Furniture subtotal", furnitureTotal},
		{"Systems subtotal", systemsTotal},
		{"Grand total", furnitureTotal + systemsTotal},
	}
	for i, r := range rows {
		f.SetCellValue(boqSummarySheet, fmt.Sprintf("A%d", i+2), r[0])
		f.SetCellValue(boqSummarySheet, fmt.Sprintf("B%d", i+2), r[1])
	}
	return nil
}
