package export

import (
	"fmt"

	"github.com/IJOL/greedypacker/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// Bins are laid out left to right in a single DXF model space, separated
// by a fixed gap so the drawing stays readable in CAD viewers.
const dxfBinGap = 100.0

// ExportDXF writes the packing result as a DXF drawing. Bin outlines go
// on the BINS layer and item rectangles on the ITEMS layer, so CAM tools
// can select cut geometry separately from stock outlines.
func ExportDXF(path string, result model.PackResult) error {
	if len(result.Bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("BINS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add BINS layer: %w", err)
	}
	if _, err := d.AddLayer("ITEMS", dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add ITEMS layer: %w", err)
	}

	offsetX := 0.0
	for _, bin := range result.Bins {
		if err := d.ChangeLayer("BINS"); err != nil {
			return err
		}
		drawRect(d, offsetX, 0, float64(bin.Width), float64(bin.Height))

		if err := d.ChangeLayer("ITEMS"); err != nil {
			return err
		}
		for _, it := range bin.Items {
			drawRect(d, offsetX+float64(it.X), float64(it.Y), float64(it.Width), float64(it.Height))
		}

		offsetX += float64(bin.Width) + dxfBinGap
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// drawRect emits the four edges of an axis-aligned rectangle.
func drawRect(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
