package backend

import (
	"errors"
	"io"

	"github.com/gogpu/gg3d"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested target is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Target is a drawing backend that owns its output and can serialize it.
//
// Every target satisfies gg3d.Backend. Raster-style targets usually also
// implement gg3d.Clearer and gg3d.TextBackend.
type Target interface {
	gg3d.Backend

	// Name returns the target identifier (e.g., "png", "svg").
	Name() string

	// Encode writes the finished drawing to w in the target's format.
	Encode(w io.Writer) error
}
