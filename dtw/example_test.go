package dtw_test

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/msakai/hgeometry/dtw"
)

// ExampleDTW aligns a chain against a copy that repeats one vertex: the
// echo is absorbed by a single horizontal step, free of charge at the
// default slope penalty.
func ExampleDTW() {
	a := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	b := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}

	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	dist, path, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("dtw:", err)
		return
	}

	fmt.Printf("distance: %.1f\n", dist)
	fmt.Println("path:", path)
	// Output:
	// distance: 0.0
	// path: [{0 0} {1 1} {1 2} {2 3}]
}

// ExampleFrechet measures the leash needed when one walker detours through
// (5,3) while the other goes straight: the bottleneck is an endpoint
// against the detour vertex, sqrt(34) away.
func ExampleFrechet() {
	straight := []r2.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	detour := []r2.Point{{X: 0, Y: 0}, {X: 5, Y: 3}, {X: 10, Y: 0}}

	dist, _, err := dtw.Frechet(straight, detour, nil)
	if err != nil {
		fmt.Println("frechet:", err)
		return
	}

	fmt.Printf("leash: %.3f\n", dist)
	// Output:
	// leash: 5.831
}
