package frame

import (
	"fmt"

	"github.com/geomech/spatial/rigid"
)

// UpdateFunc recomputes a frame's transform-to-parent from external
// state the caller controls (a joint encoder, a tracked marker, ...).
// It receives the current transform and returns the next one. An error
// aborts the update; nothing is committed.
type UpdateFunc func(current rigid.Transform) (rigid.Transform, error)

// Frame is a single coordinate frame in a registry-owned tree.
//
// Identity is the Frame pointer (and its stable ID), never the name:
// two frames with equal names are distinct entities. A frame holds at
// most one parent; root frames have none.
type Frame struct {
	id     uint64
	name   string
	reg    *Registry
	parent *Frame
	depth  int

	toParent rigid.Transform
	update   UpdateFunc

	// gen increments on every committed Update. Caches anywhere in
	// the tree compare recorded generations against it to detect
	// staleness without any top-down invalidation pass.
	gen     uint64
	removed bool

	cacheValid   bool
	cachedToRoot rigid.Transform
	cachedGens   []uint64 // self first, then each ancestor up to the root
}

// ID returns the frame's stable numeric identifier, unique within its
// registry for the registry's lifetime.
func (f *Frame) ID() uint64 { return f.id }

// Name returns the frame's diagnostic name.
func (f *Frame) Name() string { return f.name }

// Parent returns the parent frame, or nil for a root.
func (f *Frame) Parent() *Frame { return f.parent }

// IsRoot reports whether the frame has no parent.
func (f *Frame) IsRoot() bool { return f.parent == nil }

// Root returns the root of the frame's tree (itself for a root).
func (f *Frame) Root() *Frame {
	n := f
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Generation returns the frame's update counter.
func (f *Frame) Generation() uint64 { return f.gen }

// Removed reports whether the frame was removed from its registry.
func (f *Frame) Removed() bool { return f.removed }

// TransformToParent returns the current transform mapping this frame's
// coordinates to its parent's. Roots return the identity.
func (f *Frame) TransformToParent() rigid.Transform { return f.toParent }

// Update invokes the frame's update rule, commits the resulting
// transform-to-parent and increments the generation counter. If the
// rule fails, the error propagates and neither the transform nor the
// generation changes. Roots and fixed frames have no rule; Update on
// them is a no-op.
func (f *Frame) Update() error {
	if f.removed {
		return fmt.Errorf("%w: %q", ErrRemoved, f.name)
	}
	if f.update == nil {
		return nil
	}
	next, err := f.update(f.toParent)
	if err != nil {
		return fmt.Errorf("frame: update rule of %q: %w", f.name, err)
	}
	f.toParent = next
	f.gen++
	return nil
}

// TransformToRoot returns the transform mapping this frame's
// coordinates to root coordinates, recomputing and re-caching only
// when some chain generation moved since the cache was filled.
func (f *Frame) TransformToRoot() rigid.Transform {
	if f.parent == nil {
		return rigid.Identity()
	}
	if f.cacheFresh() {
		return f.cachedToRoot
	}
	// Parent-to-child application order: this frame's transform first,
	// then the parent chain (which caches its own composition).
	tr := f.parent.TransformToRoot().Compose(f.toParent)
	f.cachedToRoot = tr
	f.snapshotChain()
	return tr
}

// TransformTo returns the transform taking coordinates expressed in f
// to coordinates expressed in target. Both frames must share a root.
func (f *Frame) TransformTo(target *Frame) (rigid.Transform, error) {
	if err := VerifySameRoot(f, target); err != nil {
		return rigid.Transform{}, err
	}
	if f == target {
		return rigid.Identity(), nil
	}
	return target.TransformToRoot().Inverse().Compose(f.TransformToRoot()), nil
}

// VerifySameRoot fails with ErrRootMismatch unless a and b belong to
// the same tree — root object identity, not name equality.
func VerifySameRoot(a, b *Frame) error {
	if a == nil || b == nil {
		return ErrNilFrame
	}
	if a.removed {
		return fmt.Errorf("%w: %q", ErrRemoved, a.name)
	}
	if b.removed {
		return fmt.Errorf("%w: %q", ErrRemoved, b.name)
	}
	if a.Root() != b.Root() {
		return fmt.Errorf("%w: %q (root %q) vs %q (root %q)",
			ErrRootMismatch, a.name, a.Root().name, b.name, b.Root().name)
	}
	return nil
}

// cacheFresh reports whether every generation recorded when the cache
// was computed still matches the live chain.
func (f *Frame) cacheFresh() bool {
	if !f.cacheValid {
		return false
	}
	i := 0
	for n := f; n != nil; n = n.parent {
		if n.gen != f.cachedGens[i] {
			return false
		}
		i++
	}
	return true
}

// snapshotChain records the current generation of this frame and each
// ancestor. The chain shape never changes after registration, so the
// snapshot length is stable.
func (f *Frame) snapshotChain() {
	if f.cachedGens == nil {
		f.cachedGens = make([]uint64, 0, f.depth+1)
	}
	f.cachedGens = f.cachedGens[:0]
	for n := f; n != nil; n = n.parent {
		f.cachedGens = append(f.cachedGens, n.gen)
	}
	f.cacheValid = true
}
