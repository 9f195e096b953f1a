package frame_test

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/geomech/spatial/frame"
	"github.com/geomech/spatial/rigid"
)

// ExampleRegistry builds a tiny linkage — world → base → arm — where
// the arm slides along the base's X axis, runs one update cycle and
// reads the arm origin expressed in world coordinates.
func ExampleRegistry() {
	reg := frame.NewRegistry()
	world, _ := reg.NewRootFrame("world")

	// The base sits 1m above the world origin, rigidly.
	base, _ := reg.NewFixedFrame("base", world, rigid.Transform{
		Rot:   rigid.Identity3(),
		Trans: r3.Vector{Z: 1},
	})

	// The arm's offset comes from a (simulated) joint encoder.
	jointPos := 0.0
	arm, _ := reg.NewFrame("arm", base, func(rigid.Transform) (rigid.Transform, error) {
		return rigid.Transform{Rot: rigid.Identity3(), Trans: r3.Vector{X: jointPos}}, nil
	})

	// One control cycle: write the joint, update, read.
	jointPos = 0.5
	_ = arm.Update()

	toWorld, _ := arm.TransformTo(world)
	origin := toWorld.ApplyPoint(r3.Vector{})
	fmt.Printf("arm origin in world: (%.1f, %.1f, %.1f)\n", origin.X, origin.Y, origin.Z)

	// Output:
	// arm origin in world: (0.5, 0.0, 1.0)
}
