package dvdbind

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// StreamCallbacks supplies host I/O for handles opened over an
// external stream instead of a device path. Read and ReadV report the
// byte count consumed, or a negative value on failure. ReadV may be
// nil when the native library is allowed to fall back on Read.
type StreamCallbacks struct {
	Seek  func(position uint64) int32
	Read  func(buffer []byte) int32
	ReadV func(buffers [][]byte) int32
}

// LogLevel mirrors the native logger levels, shared by the reader and
// navigation libraries.
type LogLevel int32

const (
	LogInfo LogLevel = iota
	LogError
	LogWarn
	LogDebug
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogError:
		return slog.LevelError
	case LogWarn:
		return slog.LevelWarn
	case LogDebug:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// streamCallbackRecord is the native-visible callback table handed to
// the stream open entry points. Field order matches the native
// dvdcss_stream_cb / dvd_reader_stream_cb structs.
type streamCallbackRecord struct {
	pfSeek  uintptr
	pfRead  uintptr
	pfReadv uintptr
}

// loggerCallbackRecord is the native-visible logger table.
type loggerCallbackRecord struct {
	pfLog uintptr
}

// iovec mirrors struct iovec for the vectored read callback.
type iovec struct {
	base   uintptr
	length uintptr
}

var (
	descStreamCallbackRecord = NewStruct("dvdcss_stream_cb", false,
		FieldFuncPtr("pf_seek"),
		FieldFuncPtr("pf_read"),
		FieldFuncPtr("pf_readv"),
	)
	descLoggerCallbackRecord = NewStruct("dvd_logger_cb", false,
		FieldFuncPtr("pf_log"),
	)
	descIOVec = NewStruct("iovec", false,
		FieldOpaquePtr("iov_base"),
		FieldSizeT("iov_len"),
	)
)

func init() {
	if descStreamCallbackRecord.Size() != int(unsafe.Sizeof(streamCallbackRecord{})) {
		panic(fmt.Errorf("%w: stream callback record", ErrLayoutSize))
	}
	if descLoggerCallbackRecord.Size() != int(unsafe.Sizeof(loggerCallbackRecord{})) {
		panic(fmt.Errorf("%w: logger callback record", ErrLayoutSize))
	}
	if descIOVec.Size() != int(unsafe.Sizeof(iovec{})) {
		panic(fmt.Errorf("%w: iovec record", ErrLayoutSize))
	}
}

// callbackRegistration pins one handle's callback state. The native
// side never receives a Go pointer; it gets the slot index as its
// opaque stream/private token and the trampolines route back here.
type callbackRegistration struct {
	stream    *StreamCallbacks
	logger    *slog.Logger
	streamRec *streamCallbackRecord
	loggerRec *loggerCallbackRecord
	inUse     bool
}

// callbackTable allocates registration slots. Slot 0 stays reserved so
// a zero token is never valid.
type callbackTable struct {
	mu       sync.Mutex
	slots    []*callbackRegistration
	freelist []int
}

var callbacks = &callbackTable{slots: []*callbackRegistration{nil}}

func (t *callbackTable) allocate(reg *callbackRegistration) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()
	reg.inUse = true
	if n := len(t.freelist); n > 0 {
		id := t.freelist[n-1]
		t.freelist = t.freelist[:n-1]
		t.slots[id] = reg
		return uintptr(id)
	}
	t.slots = append(t.slots, reg)
	return uintptr(len(t.slots) - 1)
}

func (t *callbackTable) get(token uintptr) *callbackRegistration {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := int(token)
	if id <= 0 || id >= len(t.slots) || t.slots[id] == nil || !t.slots[id].inUse {
		return nil
	}
	return t.slots[id]
}

// release retires a slot. Safe only after the owning handle closed;
// the native side holds the token until then.
func (t *callbackTable) release(token uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := int(token)
	if id <= 0 || id >= len(t.slots) || t.slots[id] == nil {
		return
	}
	t.slots[id].inUse = false
	t.slots[id] = nil
	t.freelist = append(t.freelist, id)
}

// The dispatch functions carry the callback shapes the native side
// invokes; the trampolines below wrap them once per shape at bind time
// and stay alive for the process. Per-handle state lives in the table.

func dispatchCSSSeek(token uintptr, position uint64) int32 {
	reg := callbacks.get(token)
	if reg == nil || reg.stream == nil || reg.stream.Seek == nil {
		return -1
	}
	return reg.stream.Seek(position)
}

func dispatchReaderSeek(token uintptr, position int64) int32 {
	reg := callbacks.get(token)
	if reg == nil || reg.stream == nil || reg.stream.Seek == nil {
		return -1
	}
	if position < 0 {
		return -1
	}
	return reg.stream.Seek(uint64(position))
}

func dispatchRead(token uintptr, buffer uintptr, count int32) int32 {
	reg := callbacks.get(token)
	if reg == nil || reg.stream == nil || reg.stream.Read == nil {
		return -1
	}
	if buffer == 0 || count <= 0 {
		return -1
	}
	return reg.stream.Read(unsafe.Slice((*byte)(unsafe.Pointer(buffer)), int(count)))
}

func dispatchReadv(token uintptr, vectors uintptr, count int32) int32 {
	reg := callbacks.get(token)
	if reg == nil || reg.stream == nil {
		return -1
	}
	if vectors == 0 || count <= 0 {
		return -1
	}
	views := make([][]byte, 0, count)
	vecs := unsafe.Slice((*iovec)(unsafe.Pointer(vectors)), int(count))
	for _, v := range vecs {
		if v.base == 0 || v.length == 0 {
			views = append(views, nil)
			continue
		}
		views = append(views, unsafe.Slice((*byte)(unsafe.Pointer(v.base)), int(v.length)))
	}
	if reg.stream.ReadV != nil {
		return reg.stream.ReadV(views)
	}
	if reg.stream.Read == nil {
		return -1
	}
	total := int32(0)
	for _, view := range views {
		if len(view) == 0 {
			continue
		}
		n := reg.stream.Read(view)
		if n < 0 {
			return n
		}
		total += n
		if int(n) < len(view) {
			break
		}
	}
	return total
}

func dispatchLog(token uintptr, level int32, message uintptr) uintptr {
	reg := callbacks.get(token)
	if reg == nil || reg.logger == nil {
		return 0
	}
	// The native side formats with a va_list no host ABI lets us
	// re-expand, so the format string travels as the message.
	reg.logger.Log(context.Background(), LogLevel(level).slogLevel(), goString(message), "library", "dvd")
	return 0
}

var (
	cssSeekTrampoline  = purego.NewCallback(dispatchCSSSeek)
	readSeekTrampoline = purego.NewCallback(dispatchReaderSeek)
	readTrampoline     = purego.NewCallback(dispatchRead)
	readvTrampoline    = purego.NewCallback(dispatchReadv)
	logTrampoline      = purego.NewCallback(dispatchLog)
)

// registerStream pins stream callbacks and returns the native token
// plus the callback record to hand to the open call.
func registerStream(cb *StreamCallbacks, logger *slog.Logger) (uintptr, *callbackRegistration) {
	reg := &callbackRegistration{
		stream: cb,
		logger: logger,
		streamRec: &streamCallbackRecord{
			pfSeek:  cssSeekTrampoline,
			pfRead:  readTrampoline,
			pfReadv: readvTrampoline,
		},
		loggerRec: &loggerCallbackRecord{pfLog: logTrampoline},
	}
	token := callbacks.allocate(reg)
	return token, reg
}

// registerReaderStream is registerStream with the reader library's
// signed seek shape.
func registerReaderStream(cb *StreamCallbacks, logger *slog.Logger) (uintptr, *callbackRegistration) {
	token, reg := registerStream(cb, logger)
	reg.streamRec.pfSeek = readSeekTrampoline
	return token, reg
}

// registerLogger pins a logger-only registration for path based opens
// that still want native log output.
func registerLogger(logger *slog.Logger) (uintptr, *callbackRegistration) {
	reg := &callbackRegistration{
		logger:    logger,
		loggerRec: &loggerCallbackRecord{pfLog: logTrampoline},
	}
	token := callbacks.allocate(reg)
	return token, reg
}
