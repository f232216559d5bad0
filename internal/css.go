package dvdbind

import (
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Public constants of the descrambling library.
const (
	BlockSize = 2048

	SeekNoFlags = 0
	SeekMPEG    = 1 << 0
	SeekKey     = 1 << 1

	ReadNoFlags = 0
	ReadDecrypt = 1 << 0

	KeySize = 5
	pathMax = 4096
)

// registerCSSStructs describes the descrambling library's native
// structs. The context struct and the title-key list are forward
// declared in the native headers; their field lists are applied
// through the registry so the pointer cycles resolve the same way.
func registerCSSStructs(r *Registry) error {
	title := r.Declare("dvd_title")

	// Self-referential list node: the next pointer targets the shell
	// being defined.
	if err := r.Define("dvd_title", false,
		FieldInt("i_startlb"),
		Array(FieldU8("p_key"), KeySize),
		FieldPtr("p_next", title),
	); err != nil {
		return err
	}

	if err := r.Define("css", false,
		FieldInt("i_agid"),
		Array(FieldU8("p_bus_key"), KeySize),
		Array(FieldU8("p_disc_key"), KeySize),
		Array(FieldU8("p_title_key"), KeySize),
	); err != nil {
		return err
	}

	css, _ := r.Struct("css")
	fields := []Field{
		FieldOpaquePtr("psz_device"),
		FieldInt("i_fd"),
		FieldInt("i_pos"),
		FieldFuncPtr("pf_seek"),
		FieldFuncPtr("pf_read"),
		FieldFuncPtr("pf_readv"),
		FieldInt("i_method"),
		FieldStruct("css", css),
		FieldInt("b_ioctls"),
		FieldInt("b_scrambled"),
		FieldPtr("p_titles", title),
		Array(FieldU8("psz_cachefile"), pathMax),
		FieldOpaquePtr("psz_block"),
		FieldOpaquePtr("psz_error"),
		FieldInt("b_errors"),
		FieldInt("b_debug"),
	}
	if activeVariant != nil && activeVariant.cssContextWindowsFields {
		fields = append(fields,
			FieldInt("b_file"),
			FieldOpaquePtr("p_readv_buffer"),
			FieldInt("i_readv_buf_size"),
		)
	}
	fields = append(fields,
		FieldOpaquePtr("p_stream"),
		FieldPtr("p_stream_cb", descStreamCallbackRecord),
	)
	return r.Define("dvdcss_s", false, fields...)
}

// cssProcs holds the bound entry points. Tests substitute stubs here
// to drive handles without a native library.
var cssProcs struct {
	open        func(string) uintptr
	openStream  func(uintptr, uintptr) uintptr
	close       func(uintptr) int32
	seek        func(uintptr, int32, int32) int32
	read        func(uintptr, uintptr, int32, int32) int32
	readv       func(uintptr, uintptr, int32, int32) int32
	errorString func(uintptr) string
	isScrambled func(uintptr) int32
}

func registerCSSProcs(lib uintptr) {
	purego.RegisterLibFunc(&cssProcs.open, lib, "dvdcss_open")
	purego.RegisterLibFunc(&cssProcs.openStream, lib, "dvdcss_open_stream")
	purego.RegisterLibFunc(&cssProcs.close, lib, "dvdcss_close")
	purego.RegisterLibFunc(&cssProcs.seek, lib, "dvdcss_seek")
	purego.RegisterLibFunc(&cssProcs.read, lib, "dvdcss_read")
	purego.RegisterLibFunc(&cssProcs.readv, lib, "dvdcss_readv")
	purego.RegisterLibFunc(&cssProcs.errorString, lib, "dvdcss_error")
	purego.RegisterLibFunc(&cssProcs.isScrambled, lib, "dvdcss_is_scrambled")
}

// CSS is a descrambling context over a device, image file or caller
// supplied stream.
type CSS struct {
	handle
	token uintptr
	reg   *callbackRegistration
}

// OpenCSS opens a descrambling context on a device path or image
// file.
func OpenCSS(target string) (*CSS, error) {
	if err := loadCSS(); err != nil {
		return nil, err
	}
	ptr := cssProcs.open(target)
	if ptr == 0 {
		return nil, fmt.Errorf("%w: dvdcss_open %q", ErrOpenFailed, target)
	}
	c := &CSS{}
	c.markOpen(ptr)
	return c, nil
}

// OpenCSSStream opens a descrambling context over caller supplied
// stream callbacks.
func OpenCSSStream(cb *StreamCallbacks, logger *slog.Logger) (*CSS, error) {
	if err := loadCSS(); err != nil {
		return nil, err
	}
	if cb == nil || cb.Read == nil {
		return nil, fmt.Errorf("%w: stream callbacks require at least a read function", ErrOpenFailed)
	}
	if logger == nil {
		logger = slog.Default()
	}
	token, reg := registerStream(cb, logger)
	ptr := cssProcs.openStream(token, uintptr(unsafe.Pointer(reg.streamRec)))
	runtime.KeepAlive(reg.streamRec)
	if ptr == 0 {
		callbacks.release(token)
		return nil, fmt.Errorf("%w: dvdcss_open_stream", ErrOpenFailed)
	}
	c := &CSS{token: token, reg: reg}
	c.markOpen(ptr)
	return c, nil
}

// Close releases the native context. The callback registration is
// retired only after the native close returns.
func (c *CSS) Close() error {
	ptr, err := c.beginClose()
	if err != nil {
		return err
	}
	status := cssProcs.close(ptr)
	if c.token != 0 {
		callbacks.release(c.token)
		c.token = 0
	}
	if status < 0 {
		return nativeError("dvdcss_close", status, "")
	}
	return nil
}

// Seek positions the context at a logical block. With SeekKey the
// title key for the new position is negotiated during the seek.
func (c *CSS) Seek(block int32, flags int32) (int32, error) {
	ptr, err := c.acquire()
	if err != nil {
		return 0, err
	}
	pos := cssProcs.seek(ptr, block, flags)
	if pos < 0 {
		return 0, nativeError("dvdcss_seek", pos, c.lastError(ptr))
	}
	return pos, nil
}

// ReadBlocks reads whole 2048 byte blocks into buf, descrambling when
// ReadDecrypt is set. It returns the block count actually read.
func (c *CSS) ReadBlocks(buf []byte, flags int32) (int32, error) {
	ptr, err := c.acquire()
	if err != nil {
		return 0, err
	}
	blocks := int32(len(buf) / BlockSize)
	if blocks == 0 {
		return 0, nil
	}
	n := cssProcs.read(ptr, uintptr(unsafe.Pointer(&buf[0])), blocks, flags)
	runtime.KeepAlive(buf)
	if n < 0 {
		return 0, nativeError("dvdcss_read", n, c.lastError(ptr))
	}
	return n, nil
}

// ReadV reads into multiple buffers with one native call. Every
// buffer length must be a multiple of the block size.
func (c *CSS) ReadV(bufs [][]byte, flags int32) (int32, error) {
	ptr, err := c.acquire()
	if err != nil {
		return 0, err
	}
	blocks := int32(0)
	vecs := make([]iovec, len(bufs))
	for i, b := range bufs {
		if len(b)%BlockSize != 0 {
			return 0, fmt.Errorf("%w: buffer %d is not block aligned", ErrNative, i)
		}
		if len(b) == 0 {
			continue
		}
		vecs[i] = iovec{base: uintptr(unsafe.Pointer(&b[0])), length: uintptr(len(b))}
		blocks += int32(len(b) / BlockSize)
	}
	if blocks == 0 {
		return 0, nil
	}
	n := cssProcs.readv(ptr, uintptr(unsafe.Pointer(&vecs[0])), blocks, flags)
	runtime.KeepAlive(vecs)
	runtime.KeepAlive(bufs)
	if n < 0 {
		return 0, nativeError("dvdcss_readv", n, c.lastError(ptr))
	}
	return n, nil
}

// Error returns the library's last error string for this context.
func (c *CSS) Error() (string, error) {
	ptr, err := c.acquire()
	if err != nil {
		return "", err
	}
	return c.lastError(ptr), nil
}

// IsScrambled reports whether the medium is CSS scrambled.
func (c *CSS) IsScrambled() (bool, error) {
	ptr, err := c.acquire()
	if err != nil {
		return false, err
	}
	return cssProcs.isScrambled(ptr) != 0, nil
}

func (c *CSS) lastError(ptr uintptr) string {
	if cssProcs.errorString == nil {
		return ""
	}
	return cssProcs.errorString(ptr)
}
