// Package geometry provides the value types and pure functions the tiling
// engine is built on: points, bounds, polygons, unit conversion and the
// polygon validity checks used by the drawing surface.
//
// # Coordinate Spaces
//
// [Point] is a real-world coordinate in millimetres, the base unit of the
// engine. [CanvasPoint] is a pixel coordinate on the drawing surface. The two
// are related by a pixels-per-unit scalar:
//
//	c := geometry.ToCanvas(p, 0.05)   // 0.05 px per mm
//	p2 := geometry.FromCanvas(c, 0.05) // p2 ≈ p
//
// # Degenerate Input
//
// Functions never fail on short vertex lists. An area needs three vertices, a
// perimeter two, and a centroid one; below that they return zero values so
// that an in-progress outline can be displayed without special-casing.
//
// # Polygons
//
// [Polygon] wraps a vertex list and caches its area and perimeter. All
// editing methods return a new Polygon with the cached values recomputed, so
// the cache can never disagree with the vertices.
package geometry
