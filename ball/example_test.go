package ball_test

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/msakai/hgeometry/ball"
)

// ExampleFromBoundaryPoints builds the circumdisk of a right triangle and
// classifies a few query points against it.
func ExampleFromBoundaryPoints() {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 6, Y: 0}
	c := r2.Point{X: 0, Y: 8}

	disk, err := ball.FromBoundaryPoints(a, b, c)
	if err != nil {
		fmt.Println("no circumdisk:", err)
		return
	}

	fmt.Println("center:", disk.Center)
	fmt.Println("radius:", disk.Radius())
	fmt.Println("origin:", disk.Locate(a, 0))
	fmt.Println("center point:", disk.Locate(disk.Center, 0))
	fmt.Println("far away:", disk.Locate(r2.Point{X: 100, Y: 0}, 0))
	// Output:
	// center: (3.000000000000, 4.000000000000)
	// radius: 5
	// origin: on boundary
	// center point: inside
	// far away: outside
}

// ExampleBall_IntersectSegment clips a segment against the unit circle.
func ExampleBall_IntersectSegment() {
	disk, err := ball.New(r2.Point{X: 0, Y: 0}, 1)
	if err != nil {
		fmt.Println("bad disk:", err)
		return
	}

	for _, p := range disk.IntersectSegment(r2.Point{X: -2, Y: 0}, r2.Point{X: 2, Y: 0}) {
		fmt.Println(p)
	}
	// Output:
	// (-1.000000000000, 0.000000000000)
	// (1.000000000000, 0.000000000000)
}
