package frame_test

import (
	"math/rand"
	"testing"

	"github.com/geomech/spatial/frame"
	"github.com/geomech/spatial/rigid"
)

// benchChain builds a linear chain of the given depth with random
// fixed poses and returns the leaf.
func benchChain(b *testing.B, depth int) *frame.Frame {
	b.Helper()
	rng := rand.New(rand.NewSource(8))
	reg := frame.NewRegistry()
	parent, err := reg.NewRootFrame("root")
	if err != nil {
		b.Fatalf("NewRootFrame: %v", err)
	}
	for i := 0; i < depth; i++ {
		parent, err = reg.NewFixedFrame(string(rune('a'+i%26))+string(rune('a'+i/26)), parent, randomPose(rng))
		if err != nil {
			b.Fatalf("NewFixedFrame: %v", err)
		}
	}
	return parent
}

// BenchmarkTransformToRootCached measures the hot path of a control
// cycle: repeated reads with no intervening updates (snapshot check
// only, no recomposition).
func BenchmarkTransformToRootCached(b *testing.B) {
	leaf := benchChain(b, 32)
	leaf.TransformToRoot() // warm the cache
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		leaf.TransformToRoot()
	}
}

// BenchmarkTransformToRootRecompute measures a full recomposition of a
// 32-deep chain after the root-adjacent frame changes every read.
func BenchmarkTransformToRootRecompute(b *testing.B) {
	rng := rand.New(rand.NewSource(9))
	reg := frame.NewRegistry()
	root, _ := reg.NewRootFrame("root")
	pose := randomPose(rng)
	top, _ := reg.NewFrame("top", root, func(rigid.Transform) (rigid.Transform, error) {
		return pose, nil
	})
	parent := top
	for i := 0; i < 31; i++ {
		parent, _ = reg.NewFixedFrame(string(rune('a'+i%26))+string(rune('a'+i/26)), parent, randomPose(rng))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = top.Update()
		parent.TransformToRoot()
	}
}
