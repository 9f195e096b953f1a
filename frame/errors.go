package frame

import "errors"

var (
	// ErrDuplicateName indicates the registry already holds a frame
	// with the requested name.
	ErrDuplicateName = errors.New("frame: name already registered")
	// ErrNilParent indicates a child registration without a parent.
	ErrNilParent = errors.New("frame: parent frame is nil")
	// ErrNilUpdate indicates a child registration without an update rule.
	ErrNilUpdate = errors.New("frame: update rule is nil")
	// ErrNilFrame indicates a nil frame argument.
	ErrNilFrame = errors.New("frame: frame is nil")
	// ErrForeignFrame indicates a frame owned by a different registry.
	ErrForeignFrame = errors.New("frame: frame belongs to a different registry")
	// ErrRemoved indicates the frame was removed from its registry.
	ErrRemoved = errors.New("frame: frame has been removed")
	// ErrRootMismatch indicates two frames that do not share a root.
	ErrRootMismatch = errors.New("frame: frames do not share a root")
)
