package shape_test

import (
	"fmt"

	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/shape"
)

func ExampleValidateLayoutShape() {
	nodes := []shape.Node{
		{ID: "a", Position: geometry.CanvasPoint{X: 0, Y: 0}},
		{ID: "b", Position: geometry.CanvasPoint{X: 400, Y: 0}},
		{ID: "c", Position: geometry.CanvasPoint{X: 400, Y: 300}},
		{ID: "d", Position: geometry.CanvasPoint{X: 0, Y: 300}},
	}
	edges := []shape.Edge{
		{ID: "ab", Source: "a", Target: "b", Dimension: &shape.Dimension{Length: 4, Unit: geometry.Meters}},
		{ID: "bc", Source: "b", Target: "c", Dimension: &shape.Dimension{Length: 3, Unit: geometry.Meters}},
		{ID: "cd", Source: "c", Target: "d", Dimension: &shape.Dimension{Length: 4, Unit: geometry.Meters}},
		{ID: "da", Source: "d", Target: "a", Dimension: &shape.Dimension{Length: 3, Unit: geometry.Meters}},
	}

	r := shape.ValidateLayoutShape(nodes, edges)
	fmt.Println("valid:", r.IsValid, "closed:", r.IsClosed)

	res, _ := shape.ResolveScale(nodes, edges)
	fmt.Printf("area: %.1f m², perimeter: %.1f m\n", res.AreaM2, res.PerimeterM)
	// Output:
	// valid: true closed: true
	// area: 12.0 m², perimeter: 14.0 m
}
