package export

import (
	"fmt"

	"github.com/IJOL/greedypacker/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the packing result as an Excel workbook with one
// "Cut List" sheet listing every placement and a "Summary" sheet with
// per-bin statistics. The cut list round-trips through the importer.
func ExportXLSX(path string, result model.PackResult) error {
	if len(result.Bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	cutList := f.GetSheetName(0)
	if err := f.SetSheetName(cutList, "Cut List"); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	cutList = "Cut List"

	headers := []string{"Bin", "Label", "Width", "Height", "X", "Y", "Rotated"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(cutList, cell, h); err != nil {
			return err
		}
	}

	rowNum := 2
	for binIdx, bin := range result.Bins {
		for _, it := range bin.Items {
			values := []interface{}{binIdx + 1, it.Label, it.Width, it.Height, it.X, it.Y, it.Rotated}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(cutList, cell, v); err != nil {
					return err
				}
			}
			rowNum++
		}
	}

	if _, err := f.NewSheet("Summary"); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Bin", "Width", "Height", "Items", "Used Area", "Total Area", "Efficiency"},
	}
	for binIdx, bin := range result.Bins {
		summaryRows = append(summaryRows, []interface{}{
			binIdx + 1, bin.Width, bin.Height, len(bin.Items),
			bin.UsedArea(), bin.TotalArea(),
			fmt.Sprintf("%.1f%%", bin.Efficiency()*100),
		})
	}
	summaryRows = append(summaryRows,
		[]interface{}{},
		[]interface{}{"Total bins", len(result.Bins)},
		[]interface{}{"Items placed", result.PlacedCount()},
		[]interface{}{"Items unplaced", len(result.Unplaced)},
		[]interface{}{"Overall efficiency", fmt.Sprintf("%.1f%%", result.TotalEfficiency()*100)},
	)

	for i, row := range summaryRows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue("Summary", cell, v); err != nil {
				return err
			}
		}
	}

	if len(result.Unplaced) > 0 {
		if _, err := f.NewSheet("Unplaced"); err != nil {
			return fmt.Errorf("failed to create unplaced sheet: %w", err)
		}
		unplacedRows := [][]interface{}{{"Label", "Width", "Height", "Quantity"}}
		for _, it := range result.Unplaced {
			unplacedRows = append(unplacedRows, []interface{}{it.Label, it.Width, it.Height, it.Quantity})
		}
		for i, row := range unplacedRows {
			for j, v := range row {
				cell, err := excelize.CoordinatesToCellName(j+1, i+1)
				if err != nil {
					return err
				}
				if err := f.SetCellValue("Unplaced", cell, v); err != nil {
					return err
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
