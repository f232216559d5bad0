package dvdbind

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// layoutVariant names one platform's complete set of layout and
// loading decisions. Exactly one variant is active per process.
type layoutVariant struct {
	name string

	// Library search names or paths, in required load order.
	// Prerequisites precede the libraries whose imports they satisfy.
	prerequisites []string
	cssLibrary    string
	readLibrary   string
	navLibrary    string

	// Word model for fields typed off_t/size_t in native headers.
	offTSize  int
	sizeTSize int

	// The descrambling context carries extra buffered-I/O fields on
	// Windows builds.
	cssContextWindowsFields bool
}

const (
	posixCSSLibrary  = "libdvdcss.so.2"
	posixReadLibrary = "libdvdread.so.8"
	posixNavLibrary  = "libdvdnav.so.4"

	windowsCoreLibrary = `%PROGRAMFILES%/VideoLAN/VLC/libvlccore.dll`
	windowsReadLibrary = `%PROGRAMFILES%/VideoLAN/VLC/plugins/access/libdvdread_plugin.dll`
	windowsNavLibrary  = `%PROGRAMFILES%/VideoLAN/VLC/plugins/access/libdvdnav_plugin.dll`
)

// selectVariant resolves the layout variant for a host operating
// system. It performs no symbol lookup; an unknown OS fails here,
// before any library is touched.
func selectVariant(goos string) (*layoutVariant, error) {
	switch goos {
	case "linux", "freebsd", "netbsd", "openbsd", "darwin", "solaris":
		return &layoutVariant{
			name:        "posix",
			cssLibrary:  posixCSSLibrary,
			readLibrary: posixReadLibrary,
			navLibrary:  posixNavLibrary,
			offTSize:    8,
			sizeTSize:   8,
		}, nil
	case "windows":
		return &layoutVariant{
			name:                    "windows",
			prerequisites:           []string{expandWindowsPath(windowsCoreLibrary)},
			readLibrary:             expandWindowsPath(windowsReadLibrary),
			navLibrary:              expandWindowsPath(windowsNavLibrary),
			offTSize:                8,
			sizeTSize:               8,
			cssContextWindowsFields: true,
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
}

// expandWindowsPath substitutes %VAR% style environment references.
func expandWindowsPath(p string) string {
	for {
		start := strings.Index(p, "%")
		if start < 0 {
			return filepath.FromSlash(p)
		}
		end := strings.Index(p[start+1:], "%")
		if end < 0 {
			return filepath.FromSlash(p)
		}
		name := p[start+1 : start+1+end]
		p = p[:start] + os.Getenv(name) + p[start+2+end:]
	}
}

// activeVariant is resolved once for the running process.
var activeVariant, activeVariantErr = selectVariant(runtime.GOOS)

// Variant reports the active platform layout variant name, or an
// UnsupportedPlatform error on hosts with no variant.
func Variant() (string, error) {
	if activeVariantErr != nil {
		return "", activeVariantErr
	}
	return activeVariant.name, nil
}
