// Command zoneforge runs the zone detection pipeline on a JSON primitive
// dump and writes the resulting zone geometry as JSON, optionally with an
// SVG preview. It exists for debugging and for driving the core without a
// host CAD document.
//
// Usage:
//
//	zoneforge -in selection.json -out zones.json -svg preview.svg
//
// The input is a JSON array of primitive records in millimeters:
//
//	[
//	  {"type": "line",    "start": {"x":0,"y":0}, "end": {"x":10,"y":0}},
//	  {"type": "arc",     "start": {...}, "mid": {...}, "end": {...}},
//	  {"type": "circle",  "center": {...}, "radius": 2.5},
//	  {"type": "bezier",  "start": {...}, "c1": {...}, "c2": {...}, "end": {...}},
//	  {"type": "rect",    "top_left": {...}, "bottom_right": {...}},
//	  {"type": "polygon", "points": [{...}, {...}, {...}]}
//	]
//
// Defaults for resolution and zone settings can be placed in a .env file
// (ZONEFORGE_ARC_SEGMENTS, ZONEFORGE_LAYER, ZONEFORGE_CLEARANCE_MM,
// ZONEFORGE_MIN_THICKNESS_MM); flags override the environment.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pcbkit/zoneforge"
	"github.com/pcbkit/zoneforge/preview"
)

type pointRec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p pointRec) point() zoneforge.Point { return zoneforge.Pt(p.X, p.Y) }

func fromPoint(p zoneforge.Point) pointRec { return pointRec{X: p.X, Y: p.Y} }

type primitiveRec struct {
	Type        string     `json:"type"`
	Start       *pointRec  `json:"start,omitempty"`
	Mid         *pointRec  `json:"mid,omitempty"`
	End         *pointRec  `json:"end,omitempty"`
	C1          *pointRec  `json:"c1,omitempty"`
	C2          *pointRec  `json:"c2,omitempty"`
	Center      *pointRec  `json:"center,omitempty"`
	Radius      float64    `json:"radius,omitempty"`
	TopLeft     *pointRec  `json:"top_left,omitempty"`
	BottomRight *pointRec  `json:"bottom_right,omitempty"`
	Points      []pointRec `json:"points,omitempty"`
}

type zoneRec struct {
	Kind    string       `json:"kind"`
	Outline []pointRec   `json:"outline"`
	Holes   [][]pointRec `json:"holes,omitempty"`
	Layer   string       `json:"layer"`
}

type reportRec struct {
	Simple    int      `json:"simple"`
	Ring      int      `json:"ring"`
	MultiHole int      `json:"multi_hole"`
	Skipped   int      `json:"skipped"`
	Discards  []string `json:"diagnostics,omitempty"`
}

type outputRec struct {
	Zones  []zoneRec `json:"zones"`
	Report reportRec `json:"report"`
}

func main() {
	// Optional .env with defaults; absence is fine.
	_ = godotenv.Load()

	var (
		inPath    = flag.String("in", "-", "input primitives JSON file, or - for stdin")
		outPath   = flag.String("out", "-", "output zones JSON file, or - for stdout")
		svgPath   = flag.String("svg", "", "optional SVG preview output file")
		segments  = flag.Int("segments", envInt("ZONEFORGE_ARC_SEGMENTS", zoneforge.DefaultArcSegments), "arc resolution, chord segments per 360 degrees")
		layer     = flag.String("layer", envStr("ZONEFORGE_LAYER", zoneforge.DefaultLayer), "zone copper layer")
		clearance = flag.Float64("clearance", envFloat("ZONEFORGE_CLEARANCE_MM", zoneforge.DefaultClearanceMM), "zone clearance in mm")
		thickness = flag.Float64("thickness", envFloat("ZONEFORGE_MIN_THICKNESS_MM", zoneforge.DefaultMinThicknessMM), "minimum copper thickness in mm")
		verbose   = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	zoneforge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*inPath, *outPath, *svgPath, *segments, zoneforge.Settings{
		Layer:          *layer,
		ClearanceMM:    *clearance,
		MinThicknessMM: *thickness,
	}); err != nil {
		fmt.Fprintln(os.Stderr, "zoneforge:", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, svgPath string, segments int, settings zoneforge.Settings) error {
	primitives, err := readPrimitives(inPath)
	if err != nil {
		return err
	}

	var diag zoneforge.Diagnostics
	zones, report := zoneforge.CreateZones(primitives, settings,
		zoneforge.WithArcResolution(segments),
		zoneforge.WithDiagnostics(&diag))

	if err := writeOutput(outPath, zones, report, &diag); err != nil {
		return err
	}

	if svgPath != "" && len(zones) > 0 {
		f, err := os.Create(svgPath)
		if err != nil {
			return fmt.Errorf("create svg: %w", err)
		}
		defer f.Close()
		if err := preview.WriteSVG(f, zones, 800, 800); err != nil {
			return fmt.Errorf("render svg: %w", err)
		}
	}
	return nil
}

func readPrimitives(path string) ([]zoneforge.Primitive, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var recs []primitiveRec
	if err := json.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	var prims []zoneforge.Primitive
	for i, rec := range recs {
		p, err := rec.primitives()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		prims = append(prims, p...)
	}
	return prims, nil
}

// primitives converts one record to canonical primitives. Composite records
// (rect, polygon) expand to several line segments.
func (rec primitiveRec) primitives() ([]zoneforge.Primitive, error) {
	need := func(fields ...*pointRec) error {
		for _, f := range fields {
			if f == nil {
				return fmt.Errorf("%q record is missing a point field", rec.Type)
			}
		}
		return nil
	}

	switch rec.Type {
	case "line":
		if err := need(rec.Start, rec.End); err != nil {
			return nil, err
		}
		return []zoneforge.Primitive{zoneforge.LineSegment{
			Start: rec.Start.point(), End: rec.End.point(),
		}}, nil
	case "arc":
		if err := need(rec.Start, rec.Mid, rec.End); err != nil {
			return nil, err
		}
		return []zoneforge.Primitive{zoneforge.Arc{
			Start: rec.Start.point(), Mid: rec.Mid.point(), End: rec.End.point(),
		}}, nil
	case "circle":
		if err := need(rec.Center); err != nil {
			return nil, err
		}
		if rec.Radius <= 0 {
			return nil, fmt.Errorf("circle radius %v must be positive", rec.Radius)
		}
		return []zoneforge.Primitive{zoneforge.Circle{
			Center: rec.Center.point(), Radius: rec.Radius,
		}}, nil
	case "bezier":
		if err := need(rec.Start, rec.C1, rec.C2, rec.End); err != nil {
			return nil, err
		}
		return []zoneforge.Primitive{zoneforge.Bezier{
			Start: rec.Start.point(), C1: rec.C1.point(), C2: rec.C2.point(), End: rec.End.point(),
		}}, nil
	case "rect":
		if err := need(rec.TopLeft, rec.BottomRight); err != nil {
			return nil, err
		}
		return zoneforge.RectangleSegments(rec.TopLeft.point(), rec.BottomRight.point()), nil
	case "polygon":
		pts := make([]zoneforge.Point, len(rec.Points))
		for i, p := range rec.Points {
			pts[i] = p.point()
		}
		segs := zoneforge.PolygonSegments(pts)
		if len(segs) == 0 {
			return nil, fmt.Errorf("polygon needs at least 3 distinct points, got %d", len(rec.Points))
		}
		return segs, nil
	default:
		return nil, fmt.Errorf("unknown primitive type %q", rec.Type)
	}
}

func writeOutput(path string, zones []zoneforge.FinalizedZone, report zoneforge.Report, diag *zoneforge.Diagnostics) error {
	out := outputRec{
		Report: reportRec{
			Simple:    report.Simple,
			Ring:      report.Ring,
			MultiHole: report.MultiHole,
			Skipped:   report.Skipped,
		},
	}
	for _, z := range zones {
		zr := zoneRec{
			Kind:    z.Kind.String(),
			Outline: make([]pointRec, len(z.Outline)),
			Layer:   z.Settings.Layer,
		}
		for i, p := range z.Outline {
			zr.Outline[i] = fromPoint(p)
		}
		for _, hole := range z.Holes {
			hr := make([]pointRec, len(hole))
			for i, p := range hole {
				hr[i] = fromPoint(p)
			}
			zr.Holes = append(zr.Holes, hr)
		}
		out.Zones = append(out.Zones, zr)
	}
	for _, ev := range diag.Events() {
		out.Report.Discards = append(out.Report.Discards,
			fmt.Sprintf("%s: %s", ev.Kind, ev.Detail))
	}

	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
