package dvdbind

import "sync"

type handleState int32

const (
	stateUnopened handleState = iota
	stateOpen
	stateClosed
)

// handle is the shared lifecycle core of every native context wrapper.
// State transitions are Unopened -> Open -> Closed, checked locally so
// misuse never reaches native code. A handle with open dependents
// (title files on a reader, IFO handles on a reader) refuses to close
// until they are gone; the native library would free memory those
// dependents still point into.
type handle struct {
	mu         sync.Mutex
	state      handleState
	ptr        uintptr
	dependents int
}

// markOpen records a successful native open.
func (h *handle) markOpen(ptr uintptr) {
	h.mu.Lock()
	h.state = stateOpen
	h.ptr = ptr
	h.mu.Unlock()
}

// acquire returns the native pointer for one call. It fails without
// any native interaction when the handle is not open. Both the
// Unopened and Closed states report an invalid state; AlreadyClosed is
// reserved for a second close.
func (h *handle) acquire() (uintptr, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != stateOpen {
		return 0, ErrInvalidHandleState
	}
	return h.ptr, nil
}

// beginClose transitions to Closed and returns the native pointer the
// caller must release. Double close and close of a handle that still
// has dependents fail before any native call.
func (h *handle) beginClose() (uintptr, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	switch h.state {
	case stateClosed:
		return 0, ErrAlreadyClosed
	case stateUnopened:
		return 0, ErrInvalidHandleState
	}
	if h.dependents > 0 {
		return 0, ErrInvalidHandleState
	}
	h.state = stateClosed
	ptr := h.ptr
	h.ptr = 0
	return ptr, nil
}

// retain registers a dependent wrapper whose native memory lives
// inside this handle.
func (h *handle) retain() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != stateOpen {
		return ErrInvalidHandleState
	}
	h.dependents++
	return nil
}

func (h *handle) releaseDependent() {
	h.mu.Lock()
	if h.dependents > 0 {
		h.dependents--
	}
	h.mu.Unlock()
}
