package dvdbind

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// libraryPathEnv overrides the directory the shared objects are
// loaded from. Without it the platform default search order applies.
const libraryPathEnv = "DVDBIND_LIBRARY_PATH"

func librarySearchName(name string) string {
	if name == "" {
		return ""
	}
	if dir := os.Getenv(libraryPathEnv); dir != "" && !filepath.IsAbs(name) {
		return filepath.Join(dir, name)
	}
	return name
}

// nativeLibrary is one shared object, opened at most once per process.
type nativeLibrary struct {
	name string
	once sync.Once
	addr uintptr
	err  error
}

func (l *nativeLibrary) open(path string, prerequisites []string, register func(uintptr)) {
	l.once.Do(func() {
		if activeVariantErr != nil {
			l.err = activeVariantErr
			return
		}
		if path == "" {
			l.err = fmt.Errorf("%w: %s has no %s build", ErrUnsupportedPlatform, l.name, activeVariant.name)
			return
		}
		for _, p := range prerequisites {
			if _, err := purego.Dlopen(p, purego.RTLD_LAZY|purego.RTLD_GLOBAL); err != nil {
				l.err = fmt.Errorf("could not load %s prerequisite %s: %w", l.name, p, err)
				return
			}
		}
		addr, err := purego.Dlopen(librarySearchName(path), purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			l.err = fmt.Errorf("could not load %s: %w", l.name, err)
			return
		}
		l.addr = addr
		register(addr)
	})
}

var (
	cssLibrary  = &nativeLibrary{name: "libdvdcss"}
	readLibrary = &nativeLibrary{name: "libdvdread"}
	navLibrary  = &nativeLibrary{name: "libdvdnav"}
)

// loadCSS binds the descrambling library symbols once.
func loadCSS() error {
	cssLibrary.open(variantCSSPath(), variantPrerequisites(), registerCSSProcs)
	return cssLibrary.err
}

// loadRead binds the reader library symbols once.
func loadRead() error {
	readLibrary.open(variantReadPath(), variantPrerequisites(), registerReadProcs)
	return readLibrary.err
}

// loadNav binds the navigation library symbols once. The navigation
// library links the reader library, so the same prerequisites apply.
func loadNav() error {
	navLibrary.open(variantNavPath(), variantPrerequisites(), registerNavProcs)
	return navLibrary.err
}

func variantCSSPath() string {
	if activeVariant == nil {
		return ""
	}
	return activeVariant.cssLibrary
}

func variantReadPath() string {
	if activeVariant == nil {
		return ""
	}
	return activeVariant.readLibrary
}

func variantNavPath() string {
	if activeVariant == nil {
		return ""
	}
	return activeVariant.navLibrary
}

func variantPrerequisites() []string {
	if activeVariant == nil {
		return nil
	}
	return activeVariant.prerequisites
}

// goString copies a NUL terminated native string. A zero pointer
// yields the empty string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// cString returns a NUL terminated copy of s and the backing slice
// that must stay reachable for the duration of the native call.
func cString(s string) (uintptr, []byte) {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return uintptr(unsafe.Pointer(&buf[0])), buf
}

// readPointer loads a native pointer value at addr.
func readPointer(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}
