package frame

import (
	"fmt"
	"sort"

	"github.com/geomech/spatial/rigid"
)

// Registry owns frames. It may hold several independent trees; frames
// of different trees are never transformable into each other.
//
// Every registration validates its arguments before mutating anything,
// so a failed call leaves the registry exactly as it was.
type Registry struct {
	frames map[uint64]*Frame
	byName map[string]*Frame
	nextID uint64
}

// NewRegistry returns an empty frame registry.
func NewRegistry() *Registry {
	return &Registry{
		frames: make(map[uint64]*Frame),
		byName: make(map[string]*Frame),
	}
}

// NewRootFrame registers a frame with no parent, starting a new tree.
// Returns ErrDuplicateName if the name is taken.
func (r *Registry) NewRootFrame(name string) (*Frame, error) {
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	f := &Frame{
		id:       r.nextID,
		name:     name,
		reg:      r,
		toParent: rigid.Identity(),
	}
	r.nextID++
	r.frames[f.id] = f
	r.byName[name] = f
	return f, nil
}

// NewFrame registers a child frame whose transform-to-parent is
// recomputed on Update by fn.
func (r *Registry) NewFrame(name string, parent *Frame, fn UpdateFunc) (*Frame, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: %q", ErrNilUpdate, name)
	}
	return r.newChild(name, parent, fn, rigid.Identity())
}

// NewFixedFrame registers a child frame rigidly attached to its parent
// by a constant transform. Fixed frames have no update rule; Update on
// them is a no-op.
func (r *Registry) NewFixedFrame(name string, parent *Frame, toParent rigid.Transform) (*Frame, error) {
	return r.newChild(name, parent, nil, toParent)
}

func (r *Registry) newChild(name string, parent *Frame, fn UpdateFunc, toParent rigid.Transform) (*Frame, error) {
	if parent == nil {
		return nil, fmt.Errorf("%w: registering %q", ErrNilParent, name)
	}
	if parent.reg != r {
		return nil, fmt.Errorf("%w: parent %q", ErrForeignFrame, parent.name)
	}
	if parent.removed {
		return nil, fmt.Errorf("%w: parent %q", ErrRemoved, parent.name)
	}
	if _, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	f := &Frame{
		id:       r.nextID,
		name:     name,
		reg:      r,
		parent:   parent,
		depth:    parent.depth + 1,
		toParent: toParent,
		update:   fn,
	}
	r.nextID++
	r.frames[f.id] = f
	r.byName[name] = f
	return f, nil
}

// Remove unregisters f together with every transitive descendant
// currently registered; all of them are marked removed and become
// unusable. Removing a leaf (zero descendants) is valid.
func (r *Registry) Remove(f *Frame) error {
	if f == nil {
		return ErrNilFrame
	}
	if f.reg != r {
		return fmt.Errorf("%w: %q", ErrForeignFrame, f.name)
	}
	if f.removed {
		return fmt.Errorf("%w: %q", ErrRemoved, f.name)
	}
	for _, g := range r.frames {
		if g == f || descendsFrom(g, f) {
			g.removed = true
			delete(r.frames, g.id)
			delete(r.byName, g.name)
		}
	}
	return nil
}

// Contains reports whether f is currently registered in r.
func (r *Registry) Contains(f *Frame) bool {
	if f == nil {
		return false
	}
	g, ok := r.frames[f.id]
	return ok && g == f
}

// Lookup returns the registered frame with the given name, or nil.
// Names identify frames only within one registry and only while
// registered; identity comparisons must use the frames themselves.
func (r *Registry) Lookup(name string) *Frame {
	return r.byName[name]
}

// Len returns the number of registered frames.
func (r *Registry) Len() int { return len(r.frames) }

// Frames returns all registered frames in registration order.
func (r *Registry) Frames() []*Frame {
	out := make([]*Frame, 0, len(r.frames))
	for _, f := range r.frames {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// descendsFrom reports whether ancestor appears in g's parent chain.
func descendsFrom(g, ancestor *Frame) bool {
	for n := g.parent; n != nil; n = n.parent {
		if n == ancestor {
			return true
		}
	}
	return false
}
