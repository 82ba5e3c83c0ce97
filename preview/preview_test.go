package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcbkit/zoneforge"
)

func ringZones(t *testing.T) []zoneforge.FinalizedZone {
	t.Helper()
	prims := zoneforge.RectangleSegments(zoneforge.Pt(0, 0), zoneforge.Pt(10, 10))
	prims = append(prims, zoneforge.RectangleSegments(zoneforge.Pt(2.5, 2.5), zoneforge.Pt(7.5, 7.5))...)
	zones, report := zoneforge.CreateZones(prims, zoneforge.DefaultSettings())
	require.Equal(t, 1, report.Ring)
	return zones
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, ringZones(t), 800, 600)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, `fill-rule="evenodd"`)
	// One path per zone.
	assert.Equal(t, 1, strings.Count(out, "<path"))
}

func TestWriteSVG_MultipleZones(t *testing.T) {
	prims := zoneforge.RectangleSegments(zoneforge.Pt(0, 0), zoneforge.Pt(10, 10))
	prims = append(prims, zoneforge.RectangleSegments(zoneforge.Pt(20, 0), zoneforge.Pt(30, 10))...)
	zones, report := zoneforge.CreateZones(prims, zoneforge.DefaultSettings())
	require.Equal(t, 2, report.Simple)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, zones, 400, 400))
	assert.Equal(t, 2, strings.Count(buf.String(), "<path"))
}

func TestWriteSVG_NoGeometry(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, nil, 800, 600)
	assert.Error(t, err)
}

func TestWriteSVG_InvalidCanvas(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSVG(&buf, ringZones(t), 0, 600)
	assert.Error(t, err)
}
