package dvdbind

import (
	"errors"
	"fmt"
)

// Bind-time defects. Encountering one of these means the binding layer
// itself cannot produce a correct layout or call surface on this host,
// so nothing useful can proceed.
var (
	ErrUnsupportedPlatform  = errors.New("dvdbind: unsupported platform")
	ErrUnrepresentableField = errors.New("dvdbind: field has no host representation")
	ErrIrreducibleCycle     = errors.New("dvdbind: irreducible by-value struct cycle")
	ErrLayoutSize           = errors.New("dvdbind: computed layout size mismatch")
)

// Lifecycle violations. These are local to a single handle and never
// reach the native libraries.
var (
	ErrOpenFailed         = errors.New("dvdbind: native open failed")
	ErrAlreadyClosed      = errors.New("dvdbind: handle already closed")
	ErrInvalidHandleState = errors.New("dvdbind: handle not open")
)

// ErrNative wraps a nonzero status from a native call. The status and
// message are passed through unchanged from the library.
var ErrNative = errors.New("dvdbind: native call failed")

// nativeError builds the pass-through error for a failed native call.
// msg is the library's own error string when one is available.
func nativeError(op string, status int32, msg string) error {
	if msg != "" {
		return fmt.Errorf("%w: %s: %s (status %d)", ErrNative, op, msg, status)
	}
	return fmt.Errorf("%w: %s (status %d)", ErrNative, op, status)
}
