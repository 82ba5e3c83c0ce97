// Package zoneforge reconstructs copper-zone geometry from loose 2D graphic
// primitives selected in a PCB design tool.
//
// # Overview
//
// Given an unordered collection of line segments, three-point arcs, circles
// and cubic Bezier curves (all in millimeter coordinates), zoneforge finds
// the closed boundary loops they form, classifies each loop hierarchy into a
// fillable region (a plain outline, an outline with one hole, or an outline
// with several holes) and produces polygon approximations of the curved
// primitives ready for zone filling.
//
// # Quick Start
//
//	import "github.com/pcbkit/zoneforge"
//
//	prims := []zoneforge.Primitive{
//	    zoneforge.LineSegment{Start: zoneforge.Pt(0, 0), End: zoneforge.Pt(10, 0)},
//	    zoneforge.LineSegment{Start: zoneforge.Pt(10, 0), End: zoneforge.Pt(10, 10)},
//	    zoneforge.LineSegment{Start: zoneforge.Pt(10, 10), End: zoneforge.Pt(0, 10)},
//	    zoneforge.LineSegment{Start: zoneforge.Pt(0, 10), End: zoneforge.Pt(0, 0)},
//	}
//
//	zones, report := zoneforge.CreateZones(prims, zoneforge.DefaultSettings())
//	fmt.Println(report.Simple, "simple zone(s)") // 1
//	_ = zones[0].Outline                          // the 4 corner points
//
// # Pipeline
//
// The pipeline runs in three phases, matching the order a user action flows
// through the tool:
//
//   - DetectLoops builds a connectivity graph from snapped primitive
//     endpoints and walks it for closed cycles.
//   - Classify flattens every loop to a polygon, builds a containment forest
//     and labels each root Simple, Ring or MultiHole.
//   - Build re-approximates each zone at the commit resolution, attaches the
//     user settings and runs final sanity checks.
//
// Each phase is pure and stateless: loops and zones are recomputed from
// scratch on every call and the input primitives are never mutated.
//
// # Error Handling
//
// Bad input never aborts a batch. Degenerate arcs, unmatched endpoints,
// zero-area loops and unsupported nesting are reported through a Diagnostics
// recorder (see WithDiagnostics) and reflected in the returned Report; the
// pipeline always produces the best achievable partial result.
//
// # Coordinate System
//
// Coordinates are millimeters with X increasing right and Y increasing down,
// matching PCB board space. Winding direction of detected loops is whatever
// the traversal produced; classification never assumes an orientation.
//
// # Logging
//
// zoneforge is silent by default. Call SetLogger with a *slog.Logger to see
// phase summaries (Info), discarded geometry (Warn) and per-walk detail
// (Debug).
package zoneforge
