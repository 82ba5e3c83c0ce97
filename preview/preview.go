// Package preview renders finalized zone geometry to SVG for visual
// inspection before the zones are committed to the host document.
package preview

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/pcbkit/zoneforge"
)

// fill colors per zone kind, loosely matching copper-layer renderings.
var kindFill = map[zoneforge.ZoneKind]string{
	zoneforge.ZoneSimple:    "#c87137",
	zoneforge.ZoneRing:      "#b8860b",
	zoneforge.ZoneMultiHole: "#8b4513",
}

// WriteSVG renders the zones into an SVG canvas of the given pixel size.
// Board millimeters are scaled uniformly to fit with a small margin; holes
// are cut out with the even-odd fill rule. Zones with empty outlines are
// ignored.
func WriteSVG(w io.Writer, zones []zoneforge.FinalizedZone, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("preview: invalid canvas size %dx%d", width, height)
	}

	bounds, ok := zoneBounds(zones)
	if !ok {
		return fmt.Errorf("preview: no zone geometry to render")
	}

	// Uniform mm→px scale with a 5% margin on the larger axis.
	margin := 0.05 * float64(min(width, height))
	sx := (float64(width) - 2*margin) / nonZero(bounds.Width())
	sy := (float64(height) - 2*margin) / nonZero(bounds.Height())
	scale := sx
	if sy < scale {
		scale = sy
	}
	toPx := func(p zoneforge.Point) (float64, float64) {
		return margin + (p.X-bounds.Min.X)*scale, margin + (p.Y-bounds.Min.Y)*scale
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, `fill="#1a3a1a"`)
	for _, z := range zones {
		if len(z.Outline) < 3 {
			continue
		}
		var d strings.Builder
		appendRing(&d, z.Outline, toPx)
		for _, hole := range z.Holes {
			appendRing(&d, hole, toPx)
		}
		fill := kindFill[z.Kind]
		if fill == "" {
			fill = "#c87137"
		}
		canvas.Path(d.String(),
			fmt.Sprintf(`fill="%s" fill-rule="evenodd" fill-opacity="0.85" stroke="#ffffff" stroke-width="1"`, fill))
	}
	canvas.End()
	return nil
}

// appendRing writes one closed subpath in SVG path syntax.
func appendRing(d *strings.Builder, ring []zoneforge.Point, toPx func(zoneforge.Point) (float64, float64)) {
	for i, p := range ring {
		x, y := toPx(p)
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(d, "%s%.2f %.2f ", cmd, x, y)
	}
	d.WriteString("Z ")
}

// zoneBounds returns the bounding box of all outline points.
func zoneBounds(zones []zoneforge.FinalizedZone) (zoneforge.Rect, bool) {
	var bounds zoneforge.Rect
	found := false
	for _, z := range zones {
		for _, p := range z.Outline {
			r := zoneforge.NewRect(p, p)
			if !found {
				bounds = r
				found = true
			} else {
				bounds = bounds.Union(r)
			}
		}
	}
	return bounds, found
}

// nonZero guards divisions for degenerate (single-point) extents.
func nonZero(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v
}
