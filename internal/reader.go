package dvdbind

import (
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ReadDomain selects which part of a title set a file open refers to.
type ReadDomain int32

const (
	ReadInfoFile ReadDomain = iota
	ReadInfoBackupFile
	ReadMenuVOBs
	ReadTitleVOBs
)

const (
	// TitlesMax is the native bound on VOB parts per title file.
	TitlesMax = 9

	maxUDFFileNameLen = 2048
	discIDLen         = 16
	volumeIDLen       = 32
	volumeSetIDLen    = 128
)

// registerReaderStructs describes the reader library's native
// structs. The input struct and the descrambling context reference
// each other across libraries; both sides see only shells, which is
// exactly what pointer fields tolerate.
func registerReaderStructs(r *Registry) error {
	css := r.Declare("dvdcss_s")
	input := r.Declare("dvd_input_s")
	reader := r.Declare("dvd_reader_s")

	if err := r.Define("dvd_input_s", false,
		FieldPtr("dvdcss", css),
		FieldOpaquePtr("priv"),
		FieldPtr("logcb", descLoggerCallbackRecord),
		FieldOffT("ipos"),
		FieldInt("fd"),
		FieldPtr("stream_cb", descStreamCallbackRecord),
	); err != nil {
		return err
	}

	if err := r.Define("dvd_reader_device_s", false,
		FieldInt("isImageFile"),
		FieldInt("css_state"),
		FieldInt("css_title"),
		FieldPtr("dev", input),
		FieldOpaquePtr("path_root"),
		FieldInt("udfcache_level"),
		FieldOpaquePtr("udfcache"),
	); err != nil {
		return err
	}

	if err := r.Define("dvd_file_s", false,
		FieldPtr("ctx", reader),
		FieldInt("css_title"),
		FieldU32("lb_start"),
		FieldU32("seek_pos"),
		Array(FieldSizeT("title_sizes"), TitlesMax),
		Array(FieldPtr("title_devs", input), TitlesMax),
		FieldSizeT("filesize"),
		FieldOpaquePtr("cache"),
	); err != nil {
		return err
	}

	device, _ := r.Struct("dvd_reader_device_s")
	if err := r.Define("dvd_reader_s", false,
		FieldPtr("rd", device),
		FieldOpaquePtr("priv"),
		FieldStruct("logcb", descLoggerCallbackRecord),
		Array(FieldU64("ifoBUPflags"), 2),
	); err != nil {
		return err
	}

	if err := r.Define("getbits_state_t", false,
		FieldOpaquePtr("start"),
		FieldU32("byte_position"),
		FieldU32("bit_position"),
	); err != nil {
		return err
	}

	return r.Define("dvd_stat_t", false,
		FieldOffT("size"),
		FieldInt("nr_parts"),
		Array(FieldOffT("parts_size"), TitlesMax),
	)
}

// Stat mirrors the native file stat record.
type Stat struct {
	Size      int64
	NrParts   int32
	_         [4]byte
	PartsSize [TitlesMax]int64
}

var readProcs struct {
	open            func(string) uintptr
	openStream      func(uintptr, uintptr) uintptr
	open2           func(uintptr, uintptr, string) uintptr
	openStream2     func(uintptr, uintptr, uintptr) uintptr
	close           func(uintptr)
	fileStat        func(uintptr, int32, int32, uintptr) int32
	openFile        func(uintptr, int32, int32) uintptr
	closeFile       func(uintptr)
	readBlocks      func(uintptr, int32, uint64, uintptr) int64
	fileSeek        func(uintptr, int32) int32
	fileSeekForce   func(uintptr, int32, int32) int32
	readBytes       func(uintptr, uintptr, uint64) int64
	fileSize        func(uintptr) int64
	discID          func(uintptr, uintptr) int32
	udfVolumeInfo   func(uintptr, uintptr, uint32, uintptr, uint32) int32
	isoVolumeInfo   func(uintptr, uintptr, uint32, uintptr, uint32) int32
	udfCacheLevel   func(uintptr, int32) int32
	udfFindFile     func(uintptr, string, uintptr) uint32
	udfVolumeID     func(uintptr, uintptr, uint32) int32
	udfVolumeSetID  func(uintptr, uintptr, uint32) int32
	getbitsInit     func(uintptr, uintptr) int32
	getbits         func(uintptr, uint32) uint32
	ifoPrint        func(uintptr, int32)
	printTime       func(uintptr)
}

func registerReadProcs(lib uintptr) {
	purego.RegisterLibFunc(&readProcs.open, lib, "DVDOpen")
	purego.RegisterLibFunc(&readProcs.openStream, lib, "DVDOpenStream")
	purego.RegisterLibFunc(&readProcs.open2, lib, "DVDOpen2")
	purego.RegisterLibFunc(&readProcs.openStream2, lib, "DVDOpenStream2")
	purego.RegisterLibFunc(&readProcs.close, lib, "DVDClose")
	purego.RegisterLibFunc(&readProcs.fileStat, lib, "DVDFileStat")
	purego.RegisterLibFunc(&readProcs.openFile, lib, "DVDOpenFile")
	purego.RegisterLibFunc(&readProcs.closeFile, lib, "DVDCloseFile")
	purego.RegisterLibFunc(&readProcs.readBlocks, lib, "DVDReadBlocks")
	purego.RegisterLibFunc(&readProcs.fileSeek, lib, "DVDFileSeek")
	purego.RegisterLibFunc(&readProcs.fileSeekForce, lib, "DVDFileSeekForce")
	purego.RegisterLibFunc(&readProcs.readBytes, lib, "DVDReadBytes")
	purego.RegisterLibFunc(&readProcs.fileSize, lib, "DVDFileSize")
	purego.RegisterLibFunc(&readProcs.discID, lib, "DVDDiscID")
	purego.RegisterLibFunc(&readProcs.udfVolumeInfo, lib, "DVDUDFVolumeInfo")
	purego.RegisterLibFunc(&readProcs.isoVolumeInfo, lib, "DVDISOVolumeInfo")
	purego.RegisterLibFunc(&readProcs.udfCacheLevel, lib, "DVDUDFCacheLevel")
	purego.RegisterLibFunc(&readProcs.udfFindFile, lib, "UDFFindFile")
	purego.RegisterLibFunc(&readProcs.udfVolumeID, lib, "UDFGetVolumeIdentifier")
	purego.RegisterLibFunc(&readProcs.udfVolumeSetID, lib, "UDFGetVolumeSetIdentifier")
	purego.RegisterLibFunc(&readProcs.getbitsInit, lib, "dvdread_getbits_init")
	purego.RegisterLibFunc(&readProcs.getbits, lib, "dvdread_getbits")
	purego.RegisterLibFunc(&readProcs.ifoPrint, lib, "ifo_print")
	purego.RegisterLibFunc(&readProcs.printTime, lib, "dvdread_print_time")
	registerIFOProcs(lib)
	registerNavReadProcs(lib)
}

// Reader is an open disc, image file or directory tree.
type Reader struct {
	handle
	token uintptr
	reg   *callbackRegistration
}

// OpenReader opens a disc device, image file or directory.
func OpenReader(path string) (*Reader, error) {
	if err := loadRead(); err != nil {
		return nil, err
	}
	ptr := readProcs.open(path)
	if ptr == 0 {
		return nil, fmt.Errorf("%w: DVDOpen %q", ErrOpenFailed, path)
	}
	r := &Reader{}
	r.markOpen(ptr)
	return r, nil
}

// OpenReader2 opens a path with native log output routed to logger.
func OpenReader2(path string, logger *slog.Logger) (*Reader, error) {
	if err := loadRead(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	token, reg := registerLogger(logger)
	ptr := readProcs.open2(token, uintptr(unsafe.Pointer(reg.loggerRec)), path)
	runtime.KeepAlive(reg.loggerRec)
	if ptr == 0 {
		callbacks.release(token)
		return nil, fmt.Errorf("%w: DVDOpen2 %q", ErrOpenFailed, path)
	}
	r := &Reader{token: token, reg: reg}
	r.markOpen(ptr)
	return r, nil
}

// OpenReaderStream opens a reader over caller supplied stream
// callbacks.
func OpenReaderStream(cb *StreamCallbacks, logger *slog.Logger) (*Reader, error) {
	return openReaderStream(cb, logger, false)
}

// OpenReaderStream2 is OpenReaderStream with native log output routed
// through the logger callback as well.
func OpenReaderStream2(cb *StreamCallbacks, logger *slog.Logger) (*Reader, error) {
	return openReaderStream(cb, logger, true)
}

func openReaderStream(cb *StreamCallbacks, logger *slog.Logger, withLogCB bool) (*Reader, error) {
	if err := loadRead(); err != nil {
		return nil, err
	}
	if cb == nil || cb.Read == nil {
		return nil, fmt.Errorf("%w: stream callbacks require at least a read function", ErrOpenFailed)
	}
	if logger == nil {
		logger = slog.Default()
	}
	token, reg := registerReaderStream(cb, logger)
	var ptr uintptr
	if withLogCB {
		ptr = readProcs.openStream2(token, uintptr(unsafe.Pointer(reg.loggerRec)), uintptr(unsafe.Pointer(reg.streamRec)))
	} else {
		ptr = readProcs.openStream(token, uintptr(unsafe.Pointer(reg.streamRec)))
	}
	runtime.KeepAlive(reg)
	if ptr == 0 {
		callbacks.release(token)
		return nil, fmt.Errorf("%w: stream open", ErrOpenFailed)
	}
	r := &Reader{token: token, reg: reg}
	r.markOpen(ptr)
	return r, nil
}

// Close releases the reader. It refuses while title files or IFO
// handles opened from it are still open.
func (r *Reader) Close() error {
	ptr, err := r.beginClose()
	if err != nil {
		return err
	}
	readProcs.close(ptr)
	if r.token != 0 {
		callbacks.release(r.token)
		r.token = 0
	}
	return nil
}

// FileStat reports the size layout of one title's files without
// opening them.
func (r *Reader) FileStat(title int32, domain ReadDomain) (*Stat, error) {
	ptr, err := r.acquire()
	if err != nil {
		return nil, err
	}
	var st Stat
	status := readProcs.fileStat(ptr, title, int32(domain), uintptr(unsafe.Pointer(&st)))
	runtime.KeepAlive(&st)
	if status < 0 {
		return nil, nativeError("DVDFileStat", status, "")
	}
	return &st, nil
}

// OpenFile opens one title domain as a File. The reader stays
// retained until the file closes.
func (r *Reader) OpenFile(title int32, domain ReadDomain) (*File, error) {
	ptr, err := r.acquire()
	if err != nil {
		return nil, err
	}
	if err := r.retain(); err != nil {
		return nil, err
	}
	fptr := readProcs.openFile(ptr, title, int32(domain))
	if fptr == 0 {
		r.releaseDependent()
		return nil, fmt.Errorf("%w: DVDOpenFile title %d domain %d", ErrOpenFailed, title, domain)
	}
	f := &File{reader: r}
	f.markOpen(fptr)
	return f, nil
}

// DiscID computes the 16 byte disc fingerprint.
func (r *Reader) DiscID() ([discIDLen]byte, error) {
	var id [discIDLen]byte
	ptr, err := r.acquire()
	if err != nil {
		return id, err
	}
	status := readProcs.discID(ptr, uintptr(unsafe.Pointer(&id[0])))
	runtime.KeepAlive(&id)
	if status < 0 {
		return id, nativeError("DVDDiscID", status, "")
	}
	return id, nil
}

// UDFVolumeInfo returns the UDF volume identifier and volume set
// identifier.
func (r *Reader) UDFVolumeInfo() (string, []byte, error) {
	return r.volumeInfo(readProcs.udfVolumeInfo, "DVDUDFVolumeInfo")
}

// ISOVolumeInfo returns the ISO9660 volume identifier and volume set
// identifier.
func (r *Reader) ISOVolumeInfo() (string, []byte, error) {
	return r.volumeInfo(readProcs.isoVolumeInfo, "DVDISOVolumeInfo")
}

func (r *Reader) volumeInfo(proc func(uintptr, uintptr, uint32, uintptr, uint32) int32, op string) (string, []byte, error) {
	ptr, err := r.acquire()
	if err != nil {
		return "", nil, err
	}
	volID := make([]byte, volumeIDLen)
	volSetID := make([]byte, volumeSetIDLen)
	status := proc(ptr,
		uintptr(unsafe.Pointer(&volID[0])), volumeIDLen,
		uintptr(unsafe.Pointer(&volSetID[0])), volumeSetIDLen)
	runtime.KeepAlive(volID)
	runtime.KeepAlive(volSetID)
	if status < 0 {
		return "", nil, nativeError(op, status, "")
	}
	return cStringField(volID), volSetID, nil
}

// SetUDFCacheLevel adjusts metadata caching; level -1 queries the
// current level without changing it.
func (r *Reader) SetUDFCacheLevel(level int32) (int32, error) {
	ptr, err := r.acquire()
	if err != nil {
		return 0, err
	}
	current := readProcs.udfCacheLevel(ptr, level)
	if current < 0 {
		return 0, nativeError("DVDUDFCacheLevel", current, "")
	}
	return current, nil
}

// UDFFindFile locates a file on the UDF filesystem, returning its
// start block and byte length. A zero block means not found.
func (r *Reader) UDFFindFile(name string) (uint32, uint32, error) {
	ptr, err := r.acquire()
	if err != nil {
		return 0, 0, err
	}
	var size uint32
	lbn := readProcs.udfFindFile(ptr, name, uintptr(unsafe.Pointer(&size)))
	runtime.KeepAlive(&size)
	return lbn, size, nil
}

// UDFVolumeIdentifier returns the raw UDF volume identifier.
func (r *Reader) UDFVolumeIdentifier() (string, error) {
	ptr, err := r.acquire()
	if err != nil {
		return "", err
	}
	buf := make([]byte, volumeIDLen)
	n := readProcs.udfVolumeID(ptr, uintptr(unsafe.Pointer(&buf[0])), volumeIDLen)
	runtime.KeepAlive(buf)
	if n < 0 {
		return "", nativeError("UDFGetVolumeIdentifier", n, "")
	}
	return cStringField(buf), nil
}

// UDFVolumeSetIdentifier returns the raw UDF volume set identifier.
func (r *Reader) UDFVolumeSetIdentifier() ([]byte, error) {
	ptr, err := r.acquire()
	if err != nil {
		return nil, err
	}
	buf := make([]byte, volumeSetIDLen)
	n := readProcs.udfVolumeSetID(ptr, uintptr(unsafe.Pointer(&buf[0])), volumeSetIDLen)
	runtime.KeepAlive(buf)
	if n < 0 {
		return nil, nativeError("UDFGetVolumeSetIdentifier", n, "")
	}
	return buf, nil
}

// IFOPrint dumps a title's IFO structures through the native pretty
// printer.
func (r *Reader) IFOPrint(title int32) error {
	ptr, err := r.acquire()
	if err != nil {
		return err
	}
	readProcs.ifoPrint(ptr, title)
	return nil
}

// File is one open title domain.
type File struct {
	handle
	reader *Reader
}

// Close releases the file and lets the owning reader close again.
func (f *File) Close() error {
	ptr, err := f.beginClose()
	if err != nil {
		return err
	}
	readProcs.closeFile(ptr)
	f.reader.releaseDependent()
	return nil
}

// ReadBlocks reads whole blocks starting at a block offset. The
// buffer length decides the block count.
func (f *File) ReadBlocks(offset int32, buf []byte) (int64, error) {
	ptr, err := f.acquire()
	if err != nil {
		return 0, err
	}
	blocks := uint64(len(buf) / BlockSize)
	if blocks == 0 {
		return 0, nil
	}
	n := readProcs.readBlocks(ptr, offset, blocks, uintptr(unsafe.Pointer(&buf[0])))
	runtime.KeepAlive(buf)
	if n < 0 {
		return 0, nativeError("DVDReadBlocks", int32(n), "")
	}
	return n, nil
}

// Seek positions the byte cursor for ReadBytes.
func (f *File) Seek(offset int32) (int32, error) {
	ptr, err := f.acquire()
	if err != nil {
		return 0, err
	}
	pos := readProcs.fileSeek(ptr, offset)
	if pos < 0 {
		return 0, nativeError("DVDFileSeek", pos, "")
	}
	return pos, nil
}

// SeekForce seeks and forces a title key renegotiation for the given
// VOB part.
func (f *File) SeekForce(offset int32, titleNr int32) (int32, error) {
	ptr, err := f.acquire()
	if err != nil {
		return 0, err
	}
	pos := readProcs.fileSeekForce(ptr, offset, titleNr)
	if pos < 0 {
		return 0, nativeError("DVDFileSeekForce", pos, "")
	}
	return pos, nil
}

// ReadBytes reads from the current byte cursor, for the info file
// domains that allow byte granular access.
func (f *File) ReadBytes(buf []byte) (int64, error) {
	ptr, err := f.acquire()
	if err != nil {
		return 0, err
	}
	if len(buf) == 0 {
		return 0, nil
	}
	n := readProcs.readBytes(ptr, uintptr(unsafe.Pointer(&buf[0])), uint64(len(buf)))
	runtime.KeepAlive(buf)
	if n < 0 {
		return 0, nativeError("DVDReadBytes", int32(n), "")
	}
	return n, nil
}

// Size returns the file length in blocks.
func (f *File) Size() (int64, error) {
	ptr, err := f.acquire()
	if err != nil {
		return 0, err
	}
	n := readProcs.fileSize(ptr)
	if n < 0 {
		return 0, nativeError("DVDFileSize", int32(n), "")
	}
	return n, nil
}

// BitReader wraps the native MSB first bit reader over a host buffer.
type BitReader struct {
	state struct {
		start        uintptr
		bytePosition uint32
		bitPosition  uint32
	}
	data []byte
}

// NewBitReader initializes the native bit reader over data, which
// must stay unchanged while the reader is used.
func NewBitReader(data []byte) (*BitReader, error) {
	if err := loadRead(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty bit reader buffer", ErrNative)
	}
	b := &BitReader{data: data}
	status := readProcs.getbitsInit(uintptr(unsafe.Pointer(&b.state)), uintptr(unsafe.Pointer(&data[0])))
	runtime.KeepAlive(data)
	if status < 0 {
		return nil, nativeError("dvdread_getbits_init", status, "")
	}
	return b, nil
}

// Get consumes up to 32 bits.
func (b *BitReader) Get(bits uint32) uint32 {
	v := readProcs.getbits(uintptr(unsafe.Pointer(&b.state)), bits)
	runtime.KeepAlive(b.data)
	return v
}

// cStringField trims a fixed native char field at its NUL.
func cStringField(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
