// Package frame implements reference-frame trees: named coordinate
// frames linked to a parent, updated per control cycle, with lazily
// cached transforms to the root of their tree.
//
// What:
//
//   - Registry owns every Frame it creates. NewRootFrame starts a new
//     tree; NewFrame attaches a child whose transform-to-parent is
//     recomputed by a caller-supplied update rule; NewFixedFrame
//     attaches a child with a constant transform.
//   - Update invokes the rule and bumps the frame's generation
//     counter. It is the only mutator of a transform-to-parent.
//   - TransformToRoot composes transform-to-parent up the ancestor
//     chain, caching the result together with a snapshot of every
//     chain generation. The cache is valid only while the snapshot
//     matches the live generations, so staleness is detected lazily
//     and correctly regardless of the order frames were updated in.
//   - TransformTo returns the transform taking coordinates expressed
//     in one frame to another frame of the same tree, failing fast
//     with ErrRootMismatch otherwise.
//   - Remove unregisters a frame and every transitive descendant.
//
// Why:
//
//   - Robot controllers mirror a physical linkage as a frame tree and
//     update joints in arbitrary order each cycle; a single dirty bit
//     cannot track that, a per-frame generation snapshot can.
//   - Cross-tree transform requests are programming errors; they
//     surface as typed errors, never as a silently wrong identity.
//
// Concurrency: a frame tree is NOT internally synchronized. The
// intended usage is single-writer-per-cycle: one goroutine performs
// all Update calls for a cycle, readers call TransformToRoot and
// TransformTo only after those updates complete. Concurrent updates,
// or a read racing a write, are undefined behavior.
//
// Errors:
//
//   - ErrDuplicateName: registry already has a frame with that name.
//   - ErrNilParent, ErrNilUpdate: invalid registration arguments.
//   - ErrForeignFrame: the given parent belongs to another registry.
//   - ErrRemoved: the frame was removed from its registry.
//   - ErrRootMismatch: the two frames do not share a root.
//
// Complexity: Update is O(1); TransformToRoot is O(depth) worst case
// and a snapshot comparison when nothing above the frame has changed.
package frame
