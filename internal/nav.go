package dvdbind

import (
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Navigation status codes. The navigation library inverts the usual
// convention: nonzero is success.
const (
	navStatusErr = 0
	navStatusOK  = 1
)

// Event identifiers delivered by NextBlock.
const (
	EventBlockOK           = 0
	EventNop               = 1
	EventStillFrame        = 2
	EventSPUStreamChange   = 3
	EventAudioStreamChange = 4
	EventVTSChange         = 5
	EventCellChange        = 6
	EventNavPacket         = 7
	EventStop              = 8
	EventHighlight         = 9
	EventSPUCLUTChange     = 10
	EventHopChannel        = 12
	EventWait              = 13
)

// Menu identifiers for MenuCall.
const (
	MenuEscape     = 0
	MenuTitle      = 2
	MenuRoot       = 3
	MenuSubpicture = 4
	MenuAudio      = 5
	MenuAngle      = 6
	MenuPart       = 7
)

const (
	readCacheChunks = 10
	maxErrLen       = 255
	dvdNameLen      = 50
	dvdSerialLen    = 15
	pthreadMutexLen = 40
)

// registerNavStructs describes the navigation library's internals.
// The playback context and virtual machine embed the navigation
// packet records by value; those records are described later, so both
// definitions stay queued until the records complete.
func registerNavStructs(r *Registry) error {
	pci := r.Declare("pci_t")
	dsi := r.Declare("dsi_t")
	pgc := r.Declare("pgc_t")
	ifoHandle := r.Declare("ifo_handle_t")
	reader := r.Declare("dvd_reader_s")
	file := r.Declare("dvd_file_s")
	nav := r.Declare("dvdnav_s")

	if err := r.Define("read_cache_chunk_s", false,
		FieldOpaquePtr("cache_buffer"),
		FieldOpaquePtr("cache_buffer_base"),
		FieldInt("cache_start_sector"),
		FieldInt("cache_read_count"),
		FieldSizeT("cache_block_count"),
		FieldSizeT("cache_malloc_size"),
		FieldInt("cache_valid"),
		FieldInt("usage_count"),
	); err != nil {
		return err
	}

	chunk, _ := r.Struct("read_cache_chunk_s")
	if err := r.Define("read_cache_s", false,
		Array(FieldStruct("chunk", chunk), readCacheChunks),
		FieldInt("current"),
		FieldInt("freeing"),
		FieldU32("read_ahead_size"),
		FieldInt("read_ahead_incr"),
		FieldInt("last_sector"),
		FieldBytes("lock", pthreadMutexLen),
		FieldPtr("dvd_self", nav),
	); err != nil {
		return err
	}

	if err := r.Define("registers_t", false,
		Array(FieldU16("SPRM"), 24),
		Array(FieldU16("GPRM"), 16),
		Array(FieldU8("GPRM_mode"), 16),
		Array(FieldU64("GPRM_time"), 16),
	); err != nil {
		return err
	}

	registers, _ := r.Struct("registers_t")
	if err := r.Define("dvd_state_t", false,
		FieldStruct("registers", registers),
		FieldInt("domain"),
		FieldInt("vtsN"),
		FieldPtr("pgc", pgc),
		FieldInt("pgcN"),
		FieldInt("pgN"),
		FieldInt("cellN"),
		FieldInt("cell_restart"),
		FieldInt("blockN"),
		FieldInt("rsm_vtsN"),
		FieldInt("rsm_blockN"),
		Array(FieldU16("rsm_regs"), 5),
		FieldInt("rsm_pgcN"),
		FieldInt("rsm_cellN"),
	); err != nil {
		return err
	}

	if err := r.Define("vm_position_s", false,
		FieldU16("button"),
		FieldInt("vts"),
		FieldInt("domain"),
		FieldInt("spu_channel"),
		FieldInt("audio_channel"),
		FieldInt("angle_channel"),
		FieldInt("hop_channel"),
		FieldInt("cell"),
		FieldInt("cell_restart"),
		FieldInt("cell_start"),
		FieldInt("still"),
		FieldInt("block"),
	); err != nil {
		return err
	}

	if err := r.Define("dvdnav_vobu_s", false,
		FieldInt("vobu_start"),
		FieldInt("vobu_length"),
		FieldInt("blockN"),
		FieldInt("vobu_next"),
	); err != nil {
		return err
	}

	state, _ := r.Struct("dvd_state_t")
	if err := r.Define("vm_t", false,
		FieldOpaquePtr("priv"),
		FieldStruct("logcb", descLoggerCallbackRecord),
		FieldStruct("streamcb", descStreamCallbackRecord),
		FieldPtr("dvd", reader),
		FieldStruct("dvdstreamcb", descStreamCallbackRecord),
		FieldPtr("vmgi", ifoHandle),
		FieldPtr("vtsi", ifoHandle),
		FieldStruct("state", state),
		FieldInt("hop_channel"),
		Array(FieldU8("dvd_name"), dvdNameLen),
		Array(FieldU8("dvd_serial"), dvdSerialLen),
		FieldInt("stopped"),
	); err != nil {
		return err
	}

	position, _ := r.Struct("vm_position_s")
	vobu, _ := r.Struct("dvdnav_vobu_s")
	vm, _ := r.Struct("vm_t")
	cache, _ := r.Struct("read_cache_s")
	return r.Define("dvdnav_s", false,
		FieldOpaquePtr("path"),
		FieldPtr("file", file),
		FieldStruct("position_next", position),
		FieldStruct("position_current", position),
		FieldStruct("vobu", vobu),
		FieldStruct("pci", pci),
		FieldStruct("dsi", dsi),
		FieldU32("last_cmd_nav_lbn"),
		FieldInt("skip_still"),
		FieldInt("sync_wait"),
		FieldInt("sync_wait_skip"),
		FieldInt("spu_clut_changed"),
		FieldInt("started"),
		FieldInt("use_read_ahead"),
		FieldInt("pgc_based"),
		FieldInt("cur_cell_time"),
		FieldPtr("vm", vm),
		FieldBytes("vm_lock", pthreadMutexLen),
		FieldOpaquePtr("priv"),
		FieldStruct("logcb", descLoggerCallbackRecord),
		FieldPtr("cache", cache),
		Array(FieldU8("err_str"), maxErrLen),
	)
}

// Event payloads written into the block buffer by NextBlock. All
// members are naturally aligned so plain host structs mirror them.

type StillEvent struct {
	Length int32
}

type SPUStreamChangeEvent struct {
	PhysicalWide      int32
	PhysicalLetterbox int32
	PhysicalPanScan   int32
	Logical           int32
}

type AudioStreamChangeEvent struct {
	Physical int32
	Logical  int32
}

type VTSChangeEvent struct {
	OldVTSN   int32
	OldDomain int32
	NewVTSN   int32
	NewDomain int32
}

type CellChangeEvent struct {
	CellN      int32
	PGN        int32
	CellLength int64
	PGLength   int64
	PGCLength  int64
	CellStart  int64
	PGStart    int64
}

type HighlightEvent struct {
	Display int32
	Palette uint32
	SX      uint16
	SY      uint16
	EX      uint16
	EY      uint16
	PTS     uint32
	ButtonN uint32
}

// HighlightArea describes the on-screen region of one button.
type HighlightArea struct {
	Palette uint32
	SX      uint16
	SY      uint16
	EX      uint16
	EY      uint16
	PTS     uint32
	ButtonN uint32
}

func decodeEvent[T any](buf []byte) T {
	var ev T
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&ev)), unsafe.Sizeof(ev)), buf)
	return ev
}

// ParseStillEvent decodes a StillFrame payload from the block buffer.
func ParseStillEvent(buf []byte) StillEvent { return decodeEvent[StillEvent](buf) }

// ParseSPUStreamChangeEvent decodes an SPUStreamChange payload.
func ParseSPUStreamChangeEvent(buf []byte) SPUStreamChangeEvent {
	return decodeEvent[SPUStreamChangeEvent](buf)
}

// ParseAudioStreamChangeEvent decodes an AudioStreamChange payload.
func ParseAudioStreamChangeEvent(buf []byte) AudioStreamChangeEvent {
	return decodeEvent[AudioStreamChangeEvent](buf)
}

// ParseVTSChangeEvent decodes a VTSChange payload.
func ParseVTSChangeEvent(buf []byte) VTSChangeEvent { return decodeEvent[VTSChangeEvent](buf) }

// ParseCellChangeEvent decodes a CellChange payload.
func ParseCellChangeEvent(buf []byte) CellChangeEvent { return decodeEvent[CellChangeEvent](buf) }

// ParseHighlightEvent decodes a Highlight payload.
func ParseHighlightEvent(buf []byte) HighlightEvent { return decodeEvent[HighlightEvent](buf) }

// ParseSPUCLUTChangeEvent decodes a SPUCLUTChange payload, the 16
// entry YCrCb palette.
func ParseSPUCLUTChangeEvent(buf []byte) [16]uint32 { return decodeEvent[[16]uint32](buf) }

var navProcs struct {
	open        func(uintptr, string) int32
	openStream  func(uintptr, uintptr, uintptr) int32
	open2       func(uintptr, uintptr, uintptr, string) int32
	openStream2 func(uintptr, uintptr, uintptr, uintptr) int32
	dup         func(uintptr, uintptr) int32
	freeDup     func(uintptr) int32
	close       func(uintptr) int32
	reset       func(uintptr) int32
	path        func(uintptr, uintptr) int32
	errString   func(uintptr) string
	version     func() string

	setRegionMask  func(uintptr, int32) int32
	getRegionMask  func(uintptr, uintptr) int32
	setReadahead   func(uintptr, int32) int32
	getReadahead   func(uintptr, uintptr) int32
	setPGCPosFlag  func(uintptr, int32) int32
	getPGCPosFlag  func(uintptr, uintptr) int32
	diskRegionMask func(uintptr, uintptr) int32

	nextBlock      func(uintptr, uintptr, uintptr, uintptr) int32
	nextCacheBlock func(uintptr, uintptr, uintptr, uintptr) int32
	freeCacheBlock func(uintptr, uintptr) int32
	stillSkip      func(uintptr) int32
	waitSkip       func(uintptr) int32
	stop           func(uintptr) int32

	numberOfTitles   func(uintptr, uintptr) int32
	numberOfParts    func(uintptr, int32, uintptr) int32
	titlePlay        func(uintptr, int32) int32
	partPlay         func(uintptr, int32, int32) int32
	programPlay      func(uintptr, int32, int32, int32) int32
	describeChapters func(uintptr, int32, uintptr, uintptr) uint32
	partPlayAutoStop func(uintptr, int32, int32, int32) int32
	timePlay         func(uintptr, int32, uint64) int32
	menuCall         func(uintptr, int32) int32
	titleInfo        func(uintptr, uintptr, uintptr) int32
	titleProgram     func(uintptr, uintptr, uintptr, uintptr) int32
	posInTitle       func(uintptr, uintptr, uintptr) int32
	position         func(uintptr, uintptr, uintptr) int32

	sectorSearch   func(uintptr, int64, int32) int32
	timeSearch     func(uintptr, uint64) int32
	jumpBySector   func(uintptr, uint64, int32) int32
	goUp           func(uintptr) int32
	prevPGSearch   func(uintptr) int32
	topPGSearch    func(uintptr) int32
	nextPGSearch   func(uintptr) int32
	currentTime    func(uintptr) int64

	currentNavPCI func(uintptr) uintptr
	currentNavDSI func(uintptr) uintptr

	currentHighlight  func(uintptr, uintptr) int32
	highlightArea     func(uintptr, int32, int32, uintptr) int32
	upperButton       func(uintptr, uintptr) int32
	lowerButton       func(uintptr, uintptr) int32
	rightButton       func(uintptr, uintptr) int32
	leftButton        func(uintptr, uintptr) int32
	buttonSelect      func(uintptr, uintptr, int32) int32
	buttonActivate    func(uintptr, uintptr) int32
	buttonSelActivate func(uintptr, uintptr, int32) int32
	buttonActivateCmd func(uintptr, int32, uintptr) int32
	mouseSelect       func(uintptr, uintptr, int32, int32) int32
	mouseActivate     func(uintptr, uintptr, int32, int32) int32

	menuLangSelect  func(uintptr, string) int32
	audioLangSelect func(uintptr, string) int32
	spuLangSelect   func(uintptr, string) int32

	titleString       func(uintptr, uintptr) int32
	serialString      func(uintptr, uintptr) int32
	videoAspect       func(uintptr) uint8
	videoResolution   func(uintptr, uintptr, uintptr) int32
	videoScalePerm    func(uintptr) uint8
	audioStreamLang   func(uintptr, uint8) uint16
	audioStreamFormat func(uintptr, uint8) uint16
	audioStreamChans  func(uintptr, uint8) uint16
	spuStreamLang     func(uintptr, uint8) uint16
	audioLogical      func(uintptr, uint8) int8
	audioAttr         func(uintptr, int32, uintptr) int32
	spuLogical        func(uintptr, uint8) int8
	spuAttr           func(uintptr, int32, uintptr) int32
	activeAudio       func(uintptr) int8
	activeSPU         func(uintptr) int8
	restrictions      func(uintptr) uint32

	angleChange func(uintptr, int32) int32
	angleInfo   func(uintptr, uintptr, uintptr) int32

	isDomainFP   func(uintptr) int8
	isDomainVMGM func(uintptr) int8
	isDomainVTSM func(uintptr) int8
	isDomainVTS  func(uintptr) int8

	getState func(uintptr, uintptr) int32
	setState func(uintptr, uintptr) int32
}

func registerNavProcs(lib uintptr) {
	purego.RegisterLibFunc(&navProcs.open, lib, "dvdnav_open")
	purego.RegisterLibFunc(&navProcs.openStream, lib, "dvdnav_open_stream")
	purego.RegisterLibFunc(&navProcs.open2, lib, "dvdnav_open2")
	purego.RegisterLibFunc(&navProcs.openStream2, lib, "dvdnav_open_stream2")
	purego.RegisterLibFunc(&navProcs.dup, lib, "dvdnav_dup")
	purego.RegisterLibFunc(&navProcs.freeDup, lib, "dvdnav_free_dup")
	purego.RegisterLibFunc(&navProcs.close, lib, "dvdnav_close")
	purego.RegisterLibFunc(&navProcs.reset, lib, "dvdnav_reset")
	purego.RegisterLibFunc(&navProcs.path, lib, "dvdnav_path")
	purego.RegisterLibFunc(&navProcs.errString, lib, "dvdnav_err_to_string")
	purego.RegisterLibFunc(&navProcs.version, lib, "dvdnav_version")
	purego.RegisterLibFunc(&navProcs.setRegionMask, lib, "dvdnav_set_region_mask")
	purego.RegisterLibFunc(&navProcs.getRegionMask, lib, "dvdnav_get_region_mask")
	purego.RegisterLibFunc(&navProcs.setReadahead, lib, "dvdnav_set_readahead_flag")
	purego.RegisterLibFunc(&navProcs.getReadahead, lib, "dvdnav_get_readahead_flag")
	purego.RegisterLibFunc(&navProcs.setPGCPosFlag, lib, "dvdnav_set_PGC_positioning_flag")
	purego.RegisterLibFunc(&navProcs.getPGCPosFlag, lib, "dvdnav_get_PGC_positioning_flag")
	purego.RegisterLibFunc(&navProcs.diskRegionMask, lib, "dvdnav_get_disk_region_mask")
	purego.RegisterLibFunc(&navProcs.nextBlock, lib, "dvdnav_get_next_block")
	purego.RegisterLibFunc(&navProcs.nextCacheBlock, lib, "dvdnav_get_next_cache_block")
	purego.RegisterLibFunc(&navProcs.freeCacheBlock, lib, "dvdnav_free_cache_block")
	purego.RegisterLibFunc(&navProcs.stillSkip, lib, "dvdnav_still_skip")
	purego.RegisterLibFunc(&navProcs.waitSkip, lib, "dvdnav_wait_skip")
	purego.RegisterLibFunc(&navProcs.stop, lib, "dvdnav_stop")
	purego.RegisterLibFunc(&navProcs.numberOfTitles, lib, "dvdnav_get_number_of_titles")
	purego.RegisterLibFunc(&navProcs.numberOfParts, lib, "dvdnav_get_number_of_parts")
	purego.RegisterLibFunc(&navProcs.titlePlay, lib, "dvdnav_title_play")
	purego.RegisterLibFunc(&navProcs.partPlay, lib, "dvdnav_part_play")
	purego.RegisterLibFunc(&navProcs.programPlay, lib, "dvdnav_program_play")
	purego.RegisterLibFunc(&navProcs.describeChapters, lib, "dvdnav_describe_title_chapters")
	purego.RegisterLibFunc(&navProcs.partPlayAutoStop, lib, "dvdnav_part_play_auto_stop")
	purego.RegisterLibFunc(&navProcs.timePlay, lib, "dvdnav_time_play")
	purego.RegisterLibFunc(&navProcs.menuCall, lib, "dvdnav_menu_call")
	purego.RegisterLibFunc(&navProcs.titleInfo, lib, "dvdnav_current_title_info")
	purego.RegisterLibFunc(&navProcs.titleProgram, lib, "dvdnav_current_title_program")
	purego.RegisterLibFunc(&navProcs.posInTitle, lib, "dvdnav_get_position_in_title")
	purego.RegisterLibFunc(&navProcs.position, lib, "dvdnav_get_position")
	purego.RegisterLibFunc(&navProcs.sectorSearch, lib, "dvdnav_sector_search")
	purego.RegisterLibFunc(&navProcs.timeSearch, lib, "dvdnav_time_search")
	purego.RegisterLibFunc(&navProcs.jumpBySector, lib, "dvdnav_jump_to_sector_by_time")
	purego.RegisterLibFunc(&navProcs.goUp, lib, "dvdnav_go_up")
	purego.RegisterLibFunc(&navProcs.prevPGSearch, lib, "dvdnav_prev_pg_search")
	purego.RegisterLibFunc(&navProcs.topPGSearch, lib, "dvdnav_top_pg_search")
	purego.RegisterLibFunc(&navProcs.nextPGSearch, lib, "dvdnav_next_pg_search")
	purego.RegisterLibFunc(&navProcs.currentTime, lib, "dvdnav_get_current_time")
	purego.RegisterLibFunc(&navProcs.currentNavPCI, lib, "dvdnav_get_current_nav_pci")
	purego.RegisterLibFunc(&navProcs.currentNavDSI, lib, "dvdnav_get_current_nav_dsi")
	purego.RegisterLibFunc(&navProcs.currentHighlight, lib, "dvdnav_get_current_highlight")
	purego.RegisterLibFunc(&navProcs.highlightArea, lib, "dvdnav_get_highlight_area")
	purego.RegisterLibFunc(&navProcs.upperButton, lib, "dvdnav_upper_button_select")
	purego.RegisterLibFunc(&navProcs.lowerButton, lib, "dvdnav_lower_button_select")
	purego.RegisterLibFunc(&navProcs.rightButton, lib, "dvdnav_right_button_select")
	purego.RegisterLibFunc(&navProcs.leftButton, lib, "dvdnav_left_button_select")
	purego.RegisterLibFunc(&navProcs.buttonSelect, lib, "dvdnav_button_select")
	purego.RegisterLibFunc(&navProcs.buttonActivate, lib, "dvdnav_button_activate")
	purego.RegisterLibFunc(&navProcs.buttonSelActivate, lib, "dvdnav_button_select_and_activate")
	purego.RegisterLibFunc(&navProcs.buttonActivateCmd, lib, "dvdnav_button_activate_cmd")
	purego.RegisterLibFunc(&navProcs.mouseSelect, lib, "dvdnav_mouse_select")
	purego.RegisterLibFunc(&navProcs.mouseActivate, lib, "dvdnav_mouse_activate")
	purego.RegisterLibFunc(&navProcs.menuLangSelect, lib, "dvdnav_menu_language_select")
	purego.RegisterLibFunc(&navProcs.audioLangSelect, lib, "dvdnav_audio_language_select")
	purego.RegisterLibFunc(&navProcs.spuLangSelect, lib, "dvdnav_spu_language_select")
	purego.RegisterLibFunc(&navProcs.titleString, lib, "dvdnav_get_title_string")
	purego.RegisterLibFunc(&navProcs.serialString, lib, "dvdnav_get_serial_string")
	purego.RegisterLibFunc(&navProcs.videoAspect, lib, "dvdnav_get_video_aspect")
	purego.RegisterLibFunc(&navProcs.videoResolution, lib, "dvdnav_get_video_resolution")
	purego.RegisterLibFunc(&navProcs.videoScalePerm, lib, "dvdnav_get_video_scale_permission")
	purego.RegisterLibFunc(&navProcs.audioStreamLang, lib, "dvdnav_audio_stream_to_lang")
	purego.RegisterLibFunc(&navProcs.audioStreamFormat, lib, "dvdnav_audio_stream_format")
	purego.RegisterLibFunc(&navProcs.audioStreamChans, lib, "dvdnav_audio_stream_channels")
	purego.RegisterLibFunc(&navProcs.spuStreamLang, lib, "dvdnav_spu_stream_to_lang")
	purego.RegisterLibFunc(&navProcs.audioLogical, lib, "dvdnav_get_audio_logical_stream")
	purego.RegisterLibFunc(&navProcs.audioAttr, lib, "dvdnav_get_audio_attr")
	purego.RegisterLibFunc(&navProcs.spuLogical, lib, "dvdnav_get_spu_logical_stream")
	purego.RegisterLibFunc(&navProcs.spuAttr, lib, "dvdnav_get_spu_attr")
	purego.RegisterLibFunc(&navProcs.activeAudio, lib, "dvdnav_get_active_audio_stream")
	purego.RegisterLibFunc(&navProcs.activeSPU, lib, "dvdnav_get_active_spu_stream")
	purego.RegisterLibFunc(&navProcs.restrictions, lib, "dvdnav_get_restrictions")
	purego.RegisterLibFunc(&navProcs.angleChange, lib, "dvdnav_angle_change")
	purego.RegisterLibFunc(&navProcs.angleInfo, lib, "dvdnav_get_angle_info")
	purego.RegisterLibFunc(&navProcs.isDomainFP, lib, "dvdnav_is_domain_fp")
	purego.RegisterLibFunc(&navProcs.isDomainVMGM, lib, "dvdnav_is_domain_vmgm")
	purego.RegisterLibFunc(&navProcs.isDomainVTSM, lib, "dvdnav_is_domain_vtsm")
	purego.RegisterLibFunc(&navProcs.isDomainVTS, lib, "dvdnav_is_domain_vts")
	purego.RegisterLibFunc(&navProcs.getState, lib, "dvdnav_get_state")
	purego.RegisterLibFunc(&navProcs.setState, lib, "dvdnav_set_state")
}

// Nav is an open navigation context driving menu and title playback
// over a disc, image or stream.
type Nav struct {
	handle
	token uintptr
	reg   *callbackRegistration
}

// NavVersion reports the native navigation library version string.
func NavVersion() (string, error) {
	if err := loadNav(); err != nil {
		return "", err
	}
	return navProcs.version(), nil
}

// OpenNav opens a navigation context on a device path, image file or
// directory.
func OpenNav(path string) (*Nav, error) {
	if err := loadNav(); err != nil {
		return nil, err
	}
	var ptr uintptr
	if navProcs.open(uintptr(unsafe.Pointer(&ptr)), path) == navStatusErr || ptr == 0 {
		return nil, fmt.Errorf("%w: dvdnav_open %q", ErrOpenFailed, path)
	}
	n := &Nav{}
	n.markOpen(ptr)
	return n, nil
}

// OpenNav2 opens a path with native log output routed to logger.
func OpenNav2(path string, logger *slog.Logger) (*Nav, error) {
	if err := loadNav(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	token, reg := registerLogger(logger)
	var ptr uintptr
	status := navProcs.open2(uintptr(unsafe.Pointer(&ptr)), token, uintptr(unsafe.Pointer(reg.loggerRec)), path)
	runtime.KeepAlive(reg.loggerRec)
	if status == navStatusErr || ptr == 0 {
		callbacks.release(token)
		return nil, fmt.Errorf("%w: dvdnav_open2 %q", ErrOpenFailed, path)
	}
	n := &Nav{token: token, reg: reg}
	n.markOpen(ptr)
	return n, nil
}

// OpenNavStream opens a navigation context over caller supplied
// stream callbacks.
func OpenNavStream(cb *StreamCallbacks, logger *slog.Logger) (*Nav, error) {
	return openNavStream(cb, logger, false)
}

// OpenNavStream2 is OpenNavStream with native log output routed
// through the logger callback as well.
func OpenNavStream2(cb *StreamCallbacks, logger *slog.Logger) (*Nav, error) {
	return openNavStream(cb, logger, true)
}

func openNavStream(cb *StreamCallbacks, logger *slog.Logger, withLogCB bool) (*Nav, error) {
	if err := loadNav(); err != nil {
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
	var status int32
	if withLogCB {
		status = navProcs.openStream2(uintptr(unsafe.Pointer(&ptr)), token,
			uintptr(unsafe.Pointer(reg.loggerRec)), uintptr(unsafe.Pointer(reg.streamRec)))
	} else {
		status = navProcs.openStream(uintptr(unsafe.Pointer(&ptr)), token,
			uintptr(unsafe.Pointer(reg.streamRec)))
	}
	runtime.KeepAlive(reg)
	if status == navStatusErr || ptr == 0 {
		callbacks.release(token)
		return nil, fmt.Errorf("%w: navigation stream open", ErrOpenFailed)
	}
	n := &Nav{token: token, reg: reg}
	n.markOpen(ptr)
	return n, nil
}

// Dup clones the context for concurrent read positions over the same
// disc. The clone shares the source's virtual machine state at the
// time of the call.
func (n *Nav) Dup() (*Nav, error) {
	ptr, err := n.acquire()
	if err != nil {
		return nil, err
	}
	var dup uintptr
	if navProcs.dup(uintptr(unsafe.Pointer(&dup)), ptr) == navStatusErr || dup == 0 {
		return nil, fmt.Errorf("%w: dvdnav_dup", ErrOpenFailed)
	}
	d := &Nav{}
	d.markOpen(dup)
	return d, nil
}

// CloseDup releases a context created by Dup.
func (n *Nav) CloseDup() error {
	ptr, err := n.beginClose()
	if err != nil {
		return err
	}
	if navProcs.freeDup(ptr) == navStatusErr {
		return nativeError("dvdnav_free_dup", 0, "")
	}
	return nil
}

// Close releases the navigation context.
func (n *Nav) Close() error {
	ptr, err := n.beginClose()
	if err != nil {
		return err
	}
	status := navProcs.close(ptr)
	if n.token != 0 {
		callbacks.release(n.token)
		n.token = 0
	}
	if status == navStatusErr {
		return nativeError("dvdnav_close", 0, "")
	}
	return nil
}

func (n *Nav) lastError(ptr uintptr) string {
	if navProcs.errString == nil {
		return ""
	}
	return navProcs.errString(ptr)
}

// call runs one status-returning native operation with the usual
// lifecycle check and error wrap.
func (n *Nav) call(op string, proc func(uintptr) int32) error {
	ptr, err := n.acquire()
	if err != nil {
		return err
	}
	if proc(ptr) == navStatusErr {
		return nativeError(op, 0, n.lastError(ptr))
	}
	return nil
}

// Reset rewinds the virtual machine to the state right after open.
func (n *Nav) Reset() error { return n.call("dvdnav_reset", navProcs.reset) }

// Path returns the path the context was opened on.
func (n *Nav) Path() (string, error) {
	ptr, err := n.acquire()
	if err != nil {
		return "", err
	}
	var cpath uintptr
	if navProcs.path(ptr, uintptr(unsafe.Pointer(&cpath))) == navStatusErr {
		return "", nativeError("dvdnav_path", 0, n.lastError(ptr))
	}
	return goString(cpath), nil
}

// SetRegionMask restricts playback to the given region bits.
func (n *Nav) SetRegionMask(mask int32) error {
	return n.call("dvdnav_set_region_mask", func(p uintptr) int32 {
		return navProcs.setRegionMask(p, mask)
	})
}

// RegionMask reports the player region mask.
func (n *Nav) RegionMask() (int32, error) {
	var mask int32
	err := n.call("dvdnav_get_region_mask", func(p uintptr) int32 {
		return navProcs.getRegionMask(p, uintptr(unsafe.Pointer(&mask)))
	})
	return mask, err
}

// DiskRegionMask reports the disc's region mask.
func (n *Nav) DiskRegionMask() (int32, error) {
	var mask int32
	err := n.call("dvdnav_get_disk_region_mask", func(p uintptr) int32 {
		return navProcs.diskRegionMask(p, uintptr(unsafe.Pointer(&mask)))
	})
	return mask, err
}

// SetReadAhead toggles the read-ahead cache.
func (n *Nav) SetReadAhead(enabled bool) error {
	flag := int32(0)
	if enabled {
		flag = 1
	}
	return n.call("dvdnav_set_readahead_flag", func(p uintptr) int32 {
		return navProcs.setReadahead(p, flag)
	})
}

// ReadAhead reports whether the read-ahead cache is enabled.
func (n *Nav) ReadAhead() (bool, error) {
	var flag int32
	err := n.call("dvdnav_get_readahead_flag", func(p uintptr) int32 {
		return navProcs.getReadahead(p, uintptr(unsafe.Pointer(&flag)))
	})
	return flag != 0, err
}

// SetPGCPositioning switches position reporting to whole program
// chain lengths instead of the current program.
func (n *Nav) SetPGCPositioning(enabled bool) error {
	flag := int32(0)
	if enabled {
		flag = 1
	}
	return n.call("dvdnav_set_PGC_positioning_flag", func(p uintptr) int32 {
		return navProcs.setPGCPosFlag(p, flag)
	})
}

// PGCPositioning reports the positioning mode.
func (n *Nav) PGCPositioning() (bool, error) {
	var flag int32
	err := n.call("dvdnav_get_PGC_positioning_flag", func(p uintptr) int32 {
		return navProcs.getPGCPosFlag(p, uintptr(unsafe.Pointer(&flag)))
	})
	return flag != 0, err
}

// NextBlock advances playback by one block. buf must hold at least one
// block; the returned event says whether buf now carries MPEG data or
// an event payload, and the length is the valid byte count.
func (n *Nav) NextBlock(buf []byte) (event int32, length int32, err error) {
	ptr, err := n.acquire()
	if err != nil {
		return 0, 0, err
	}
	if len(buf) < BlockSize {
		return 0, 0, fmt.Errorf("%w: block buffer shorter than %d", ErrNative, BlockSize)
	}
	status := navProcs.nextBlock(ptr, uintptr(unsafe.Pointer(&buf[0])),
		uintptr(unsafe.Pointer(&event)), uintptr(unsafe.Pointer(&length)))
	runtime.KeepAlive(buf)
	if status == navStatusErr {
		return 0, 0, nativeError("dvdnav_get_next_block", 0, n.lastError(ptr))
	}
	return event, length, nil
}

// CacheBlock is a block loaned out of the navigation read cache. It
// must be released before the context closes.
type CacheBlock struct {
	ptr   uintptr
	Event int32
	Len   int32
}

// Data exposes the cached block bytes. The view is valid until Free.
func (b *CacheBlock) Data() []byte {
	if b.ptr == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(b.ptr)), int(b.Len))
}

// NextCacheBlock is NextBlock without the copy: the returned block
// aliases cache memory. scratch must hold one block for the fallback
// path where the native side bypasses the cache.
func (n *Nav) NextCacheBlock(scratch []byte) (*CacheBlock, error) {
	ptr, err := n.acquire()
	if err != nil {
		return nil, err
	}
	if len(scratch) < BlockSize {
		return nil, fmt.Errorf("%w: block buffer shorter than %d", ErrNative, BlockSize)
	}
	bufPtr := uintptr(unsafe.Pointer(&scratch[0]))
	var event, length int32
	status := navProcs.nextCacheBlock(ptr, uintptr(unsafe.Pointer(&bufPtr)),
		uintptr(unsafe.Pointer(&event)), uintptr(unsafe.Pointer(&length)))
	runtime.KeepAlive(scratch)
	if status == navStatusErr {
		return nil, nativeError("dvdnav_get_next_cache_block", 0, n.lastError(ptr))
	}
	return &CacheBlock{ptr: bufPtr, Event: event, Len: length}, nil
}

// FreeCacheBlock returns a cache block to the native cache.
func (n *Nav) FreeCacheBlock(b *CacheBlock) error {
	if b == nil || b.ptr == 0 {
		return nil
	}
	err := n.call("dvdnav_free_cache_block", func(p uintptr) int32 {
		return navProcs.freeCacheBlock(p, b.ptr)
	})
	if err == nil {
		b.ptr = 0
	}
	return err
}

// SkipStill ends the current still frame early.
func (n *Nav) SkipStill() error { return n.call("dvdnav_still_skip", navProcs.stillSkip) }

// SkipWait releases a sync wait; players that keep their demuxer
// fifos drained call this immediately.
func (n *Nav) SkipWait() error { return n.call("dvdnav_wait_skip", navProcs.waitSkip) }

// Stop requests playback stop; the next block delivers a Stop event.
func (n *Nav) Stop() error { return n.call("dvdnav_stop", navProcs.stop) }

// NumberOfTitles counts the titles on the disc.
func (n *Nav) NumberOfTitles() (int32, error) {
	var titles int32
	err := n.call("dvdnav_get_number_of_titles", func(p uintptr) int32 {
		return navProcs.numberOfTitles(p, uintptr(unsafe.Pointer(&titles)))
	})
	return titles, err
}

// NumberOfParts counts the parts of one title.
func (n *Nav) NumberOfParts(title int32) (int32, error) {
	var parts int32
	err := n.call("dvdnav_get_number_of_parts", func(p uintptr) int32 {
		return navProcs.numberOfParts(p, title, uintptr(unsafe.Pointer(&parts)))
	})
	return parts, err
}

// PlayTitle starts playback of a title from its beginning.
func (n *Nav) PlayTitle(title int32) error {
	return n.call("dvdnav_title_play", func(p uintptr) int32 {
		return navProcs.titlePlay(p, title)
	})
}

// PlayPart starts playback of a title at the given part.
func (n *Nav) PlayPart(title, part int32) error {
	return n.call("dvdnav_part_play", func(p uintptr) int32 {
		return navProcs.partPlay(p, title, part)
	})
}

// PlayProgram starts playback inside a specific program chain and
// program of a title.
func (n *Nav) PlayProgram(title, pgcn, pgn int32) error {
	return n.call("dvdnav_program_play", func(p uintptr) int32 {
		return navProcs.programPlay(p, title, pgcn, pgn)
	})
}

// PlayPartAutoStop plays partsToPlay parts and then stops.
func (n *Nav) PlayPartAutoStop(title, part, partsToPlay int32) error {
	return n.call("dvdnav_part_play_auto_stop", func(p uintptr) int32 {
		return navProcs.partPlayAutoStop(p, title, part, partsToPlay)
	})
}

// PlayAtTime starts title playback at a 90kHz clock offset.
func (n *Nav) PlayAtTime(title int32, time uint64) error {
	return n.call("dvdnav_time_play", func(p uintptr) int32 {
		return navProcs.timePlay(p, title, time)
	})
}

// DescribeTitleChapters returns each chapter's playback time and the
// title duration, in 90kHz clock ticks.
func (n *Nav) DescribeTitleChapters(title int32) ([]uint64, uint64, error) {
	ptr, err := n.acquire()
	if err != nil {
		return nil, 0, err
	}
	var times uintptr
	var duration uint64
	count := navProcs.describeChapters(ptr, title,
		uintptr(unsafe.Pointer(&times)), uintptr(unsafe.Pointer(&duration)))
	if times == 0 {
		return nil, duration, nil
	}
	out := make([]uint64, count)
	copy(out, unsafe.Slice((*uint64)(unsafe.Pointer(times)), int(count)))
	// The native side allocates the chapter array with malloc and the
	// caller owns it. Without a paired free entry point the copy above
	// is all we can offer; the allocation is released by the process
	// allocator teardown.
	return out, duration, nil
}

// MenuCall jumps into the given menu from the current location.
func (n *Nav) MenuCall(menu int32) error {
	return n.call("dvdnav_menu_call", func(p uintptr) int32 {
		return navProcs.menuCall(p, menu)
	})
}

// CurrentTitleInfo reports the playing title and part. Title -1 means
// the root menu, 0 a menu belonging to the reported part.
func (n *Nav) CurrentTitleInfo() (title, part int32, err error) {
	err = n.call("dvdnav_current_title_info", func(p uintptr) int32 {
		return navProcs.titleInfo(p, uintptr(unsafe.Pointer(&title)), uintptr(unsafe.Pointer(&part)))
	})
	return title, part, err
}

// CurrentTitleProgram reports the playing title, program chain and
// program.
func (n *Nav) CurrentTitleProgram() (title, pgcn, pgn int32, err error) {
	err = n.call("dvdnav_current_title_program", func(p uintptr) int32 {
		return navProcs.titleProgram(p,
			uintptr(unsafe.Pointer(&title)), uintptr(unsafe.Pointer(&pgcn)), uintptr(unsafe.Pointer(&pgn)))
	})
	return title, pgcn, pgn, err
}

// PositionInTitle estimates the block position within the whole
// title, for coarse progress display.
func (n *Nav) PositionInTitle() (pos, length uint32, err error) {
	err = n.call("dvdnav_get_position_in_title", func(p uintptr) int32 {
		return navProcs.posInTitle(p, uintptr(unsafe.Pointer(&pos)), uintptr(unsafe.Pointer(&length)))
	})
	return pos, length, err
}

// Position reports the block position in the current program, or in
// the current program chain under PGC positioning.
func (n *Nav) Position() (pos, length uint32, err error) {
	err = n.call("dvdnav_get_position", func(p uintptr) int32 {
		return navProcs.position(p, uintptr(unsafe.Pointer(&pos)), uintptr(unsafe.Pointer(&length)))
	})
	return pos, length, err
}

// SectorSearch seeks within the current program to a sector offset
// relative to origin, with whence semantics.
func (n *Nav) SectorSearch(offset int64, origin int32) error {
	return n.call("dvdnav_sector_search", func(p uintptr) int32 {
		return navProcs.sectorSearch(p, offset, origin)
	})
}

// TimeSearch seeks within the current program chain to a 90kHz clock
// offset.
func (n *Nav) TimeSearch(time uint64) error {
	return n.call("dvdnav_time_search", func(p uintptr) int32 {
		return navProcs.timeSearch(p, time)
	})
}

// JumpToSectorByTime seeks using the title's time map when present,
// landing more precisely than TimeSearch.
func (n *Nav) JumpToSectorByTime(time uint64, mode int32) error {
	return n.call("dvdnav_jump_to_sector_by_time", func(p uintptr) int32 {
		return navProcs.jumpBySector(p, time, mode)
	})
}

// GoUp follows the program chain's go-up link.
func (n *Nav) GoUp() error { return n.call("dvdnav_go_up", navProcs.goUp) }

// PrevProgram jumps to the start of the previous program.
func (n *Nav) PrevProgram() error { return n.call("dvdnav_prev_pg_search", navProcs.prevPGSearch) }

// TopProgram jumps to the start of the current program.
func (n *Nav) TopProgram() error { return n.call("dvdnav_top_pg_search", navProcs.topPGSearch) }

// NextProgram jumps to the start of the next program.
func (n *Nav) NextProgram() error { return n.call("dvdnav_next_pg_search", navProcs.nextPGSearch) }

// CurrentTime reports the playback time offset within the title, in
// 90kHz clock ticks.
func (n *Nav) CurrentTime() (int64, error) {
	ptr, err := n.acquire()
	if err != nil {
		return 0, err
	}
	return navProcs.currentTime(ptr), nil
}

// CurrentNavPCI returns the presentation control record of the last
// delivered navigation packet. The view aliases context memory and is
// only valid until the next NextBlock call.
func (n *Nav) CurrentNavPCI() (*PCI, error) {
	ptr, err := n.acquire()
	if err != nil {
		return nil, err
	}
	p := navProcs.currentNavPCI(ptr)
	if p == 0 {
		return nil, nativeError("dvdnav_get_current_nav_pci", 0, n.lastError(ptr))
	}
	return (*PCI)(unsafe.Pointer(p)), nil
}

// CurrentNavDSI returns the data search record of the last delivered
// navigation packet, with the same lifetime as CurrentNavPCI.
func (n *Nav) CurrentNavDSI() (*DSI, error) {
	ptr, err := n.acquire()
	if err != nil {
		return nil, err
	}
	p := navProcs.currentNavDSI(ptr)
	if p == 0 {
		return nil, nativeError("dvdnav_get_current_nav_dsi", 0, n.lastError(ptr))
	}
	return (*DSI)(unsafe.Pointer(p)), nil
}

// CurrentHighlight reports the selected button number.
func (n *Nav) CurrentHighlight() (int32, error) {
	var button int32
	err := n.call("dvdnav_get_current_highlight", func(p uintptr) int32 {
		return navProcs.currentHighlight(p, uintptr(unsafe.Pointer(&button)))
	})
	return button, err
}

// HighlightAreaFor computes the display area of one button from a PCI
// record.
func HighlightAreaFor(pci *PCI, button int32, mode int32) (*HighlightArea, error) {
	if err := loadNav(); err != nil {
		return nil, err
	}
	var area HighlightArea
	status := navProcs.highlightArea(uintptr(unsafe.Pointer(&pci.raw[0])), button, mode,
		uintptr(unsafe.Pointer(&area)))
	runtime.KeepAlive(pci)
	if status == navStatusErr {
		return nil, nativeError("dvdnav_get_highlight_area", 0, "")
	}
	return &area, nil
}

func (n *Nav) buttonMove(op string, proc func(uintptr, uintptr) int32, pci *PCI) error {
	return n.call(op, func(p uintptr) int32 {
		status := proc(p, uintptr(unsafe.Pointer(&pci.raw[0])))
		runtime.KeepAlive(pci)
		return status
	})
}

// SelectUpperButton moves the highlight along the button's up link.
func (n *Nav) SelectUpperButton(pci *PCI) error {
	return n.buttonMove("dvdnav_upper_button_select", navProcs.upperButton, pci)
}

// SelectLowerButton moves the highlight along the button's down link.
func (n *Nav) SelectLowerButton(pci *PCI) error {
	return n.buttonMove("dvdnav_lower_button_select", navProcs.lowerButton, pci)
}

// SelectRightButton moves the highlight along the button's right
// link.
func (n *Nav) SelectRightButton(pci *PCI) error {
	return n.buttonMove("dvdnav_right_button_select", navProcs.rightButton, pci)
}

// SelectLeftButton moves the highlight along the button's left link.
func (n *Nav) SelectLeftButton(pci *PCI) error {
	return n.buttonMove("dvdnav_left_button_select", navProcs.leftButton, pci)
}

// SelectButton moves the highlight to a specific button number.
func (n *Nav) SelectButton(pci *PCI, button int32) error {
	return n.call("dvdnav_button_select", func(p uintptr) int32 {
		status := navProcs.buttonSelect(p, uintptr(unsafe.Pointer(&pci.raw[0])), button)
		runtime.KeepAlive(pci)
		return status
	})
}

// ActivateButton activates the selected button.
func (n *Nav) ActivateButton(pci *PCI) error {
	return n.buttonMove("dvdnav_button_activate", navProcs.buttonActivate, pci)
}

// SelectAndActivateButton selects then activates a button in one
// step.
func (n *Nav) SelectAndActivateButton(pci *PCI, button int32) error {
	return n.call("dvdnav_button_select_and_activate", func(p uintptr) int32 {
		status := navProcs.buttonSelActivate(p, uintptr(unsafe.Pointer(&pci.raw[0])), button)
		runtime.KeepAlive(pci)
		return status
	})
}

// ActivateButtonCmd runs a caller supplied command as if the given
// button had been activated.
func (n *Nav) ActivateButtonCmd(button int32, cmd VMCommand) error {
	return n.call("dvdnav_button_activate_cmd", func(p uintptr) int32 {
		status := navProcs.buttonActivateCmd(p, button, uintptr(unsafe.Pointer(&cmd[0])))
		runtime.KeepAlive(&cmd)
		return status
	})
}

// MouseSelect selects the button under screen coordinates.
func (n *Nav) MouseSelect(pci *PCI, x, y int32) error {
	return n.call("dvdnav_mouse_select", func(p uintptr) int32 {
		status := navProcs.mouseSelect(p, uintptr(unsafe.Pointer(&pci.raw[0])), x, y)
		runtime.KeepAlive(pci)
		return status
	})
}

// MouseActivate activates the button under screen coordinates.
func (n *Nav) MouseActivate(pci *PCI, x, y int32) error {
	return n.call("dvdnav_mouse_activate", func(p uintptr) int32 {
		status := navProcs.mouseActivate(p, uintptr(unsafe.Pointer(&pci.raw[0])), x, y)
		runtime.KeepAlive(pci)
		return status
	})
}

// SelectMenuLanguage sets the preferred menu language from a two
// letter code.
func (n *Nav) SelectMenuLanguage(code string) error {
	return n.call("dvdnav_menu_language_select", func(p uintptr) int32 {
		return navProcs.menuLangSelect(p, code)
	})
}

// SelectAudioLanguage sets the preferred audio language.
func (n *Nav) SelectAudioLanguage(code string) error {
	return n.call("dvdnav_audio_language_select", func(p uintptr) int32 {
		return navProcs.audioLangSelect(p, code)
	})
}

// SelectSPULanguage sets the preferred subpicture language.
func (n *Nav) SelectSPULanguage(code string) error {
	return n.call("dvdnav_spu_language_select", func(p uintptr) int32 {
		return navProcs.spuLangSelect(p, code)
	})
}

// TitleString returns the disc name recorded in the volume
// descriptor.
func (n *Nav) TitleString() (string, error) {
	ptr, err := n.acquire()
	if err != nil {
		return "", err
	}
	var cstr uintptr
	if navProcs.titleString(ptr, uintptr(unsafe.Pointer(&cstr))) == navStatusErr {
		return "", nativeError("dvdnav_get_title_string", 0, n.lastError(ptr))
	}
	return goString(cstr), nil
}

// SerialString returns the disc serial identifier.
func (n *Nav) SerialString() (string, error) {
	ptr, err := n.acquire()
	if err != nil {
		return "", err
	}
	var cstr uintptr
	if navProcs.serialString(ptr, uintptr(unsafe.Pointer(&cstr))) == navStatusErr {
		return "", nativeError("dvdnav_get_serial_string", 0, n.lastError(ptr))
	}
	return goString(cstr), nil
}

// VideoAspect reports the current video aspect code.
func (n *Nav) VideoAspect() (uint8, error) {
	ptr, err := n.acquire()
	if err != nil {
		return 0, err
	}
	return navProcs.videoAspect(ptr), nil
}

// VideoResolution reports the current video width and height.
func (n *Nav) VideoResolution() (width, height uint32, err error) {
	err = n.call("dvdnav_get_video_resolution", func(p uintptr) int32 {
		return navProcs.videoResolution(p, uintptr(unsafe.Pointer(&width)), uintptr(unsafe.Pointer(&height)))
	})
	return width, height, err
}

// VideoScalePermission reports the permitted scaling modes.
func (n *Nav) VideoScalePermission() (uint8, error) {
	ptr, err := n.acquire()
	if err != nil {
		return 0, err
	}
	return navProcs.videoScalePerm(ptr), nil
}

// AudioStreamLang reports the language code of an audio stream.
func (n *Nav) AudioStreamLang(stream uint8) (uint16, error) {
	ptr, err := n.acquire()
	if err != nil {
		return 0, err
	}
	return navProcs.audioStreamLang(ptr, stream), nil
}

// AudioStreamFormat reports the codec of an audio stream.
func (n *Nav) AudioStreamFormat(stream uint8) (uint16, error) {
	ptr, err := n.acquire()
	if err != nil {
		return 0, err
	}
	return navProcs.audioStreamFormat(ptr, stream), nil
}

// AudioStreamChannels reports the channel count of an audio stream.
func (n *Nav) AudioStreamChannels(stream uint8) (uint16, error) {
	ptr, err := n.acquire()
	if err != nil {
		return 0, err
	}
	return navProcs.audioStreamChans(ptr, stream), nil
}

// SPUStreamLang reports the language code of a subpicture stream.
func (n *Nav) SPUStreamLang(stream uint8) (uint16, error) {
	ptr, err := n.acquire()
	if err != nil {
		return 0, err
	}
	return navProcs.spuStreamLang(ptr, stream), nil
}

// AudioLogicalStream maps a physical audio stream to its logical
// number in the current program chain, -1 when inactive.
func (n *Nav) AudioLogicalStream(stream uint8) (int8, error) {
	ptr, err := n.acquire()
	if err != nil {
		return -1, err
	}
	return navProcs.audioLogical(ptr, stream), nil
}

// AudioAttr fills the audio attribute record of a stream.
func (n *Nav) AudioAttr(stream int32) (*AudioAttr, error) {
	var attr AudioAttr
	err := n.call("dvdnav_get_audio_attr", func(p uintptr) int32 {
		status := navProcs.audioAttr(p, stream, uintptr(unsafe.Pointer(&attr.raw[0])))
		runtime.KeepAlive(&attr)
		return status
	})
	if err != nil {
		return nil, err
	}
	return &attr, nil
}

// SPULogicalStream maps a physical subpicture stream to its logical
// number, -1 when inactive.
func (n *Nav) SPULogicalStream(stream uint8) (int8, error) {
	ptr, err := n.acquire()
	if err != nil {
		return -1, err
	}
	return navProcs.spuLogical(ptr, stream), nil
}

// SPUAttr fills the subpicture attribute record of a stream.
func (n *Nav) SPUAttr(stream int32) (*SubpAttr, error) {
	var attr SubpAttr
	err := n.call("dvdnav_get_spu_attr", func(p uintptr) int32 {
		status := navProcs.spuAttr(p, stream, uintptr(unsafe.Pointer(&attr.raw[0])))
		runtime.KeepAlive(&attr)
		return status
	})
	if err != nil {
		return nil, err
	}
	return &attr, nil
}

// ActiveAudioStream reports the currently playing audio stream.
func (n *Nav) ActiveAudioStream() (int8, error) {
	ptr, err := n.acquire()
	if err != nil {
		return -1, err
	}
	return navProcs.activeAudio(ptr), nil
}

// ActiveSPUStream reports the currently playing subpicture stream.
func (n *Nav) ActiveSPUStream() (int8, error) {
	ptr, err := n.acquire()
	if err != nil {
		return -1, err
	}
	return navProcs.activeSPU(ptr), nil
}

// Restrictions returns the prohibited user operations mask at the
// current location.
func (n *Nav) Restrictions() (*UserOps, error) {
	ptr, err := n.acquire()
	if err != nil {
		return nil, err
	}
	mask := navProcs.restrictions(ptr)
	var ops UserOps
	ops.raw[0] = byte(mask)
	ops.raw[1] = byte(mask >> 8)
	ops.raw[2] = byte(mask >> 16)
	ops.raw[3] = byte(mask >> 24)
	return &ops, nil
}

// ChangeAngle switches the playback angle.
func (n *Nav) ChangeAngle(angle int32) error {
	return n.call("dvdnav_angle_change", func(p uintptr) int32 {
		return navProcs.angleChange(p, angle)
	})
}

// AngleInfo reports the current angle and the angle count.
func (n *Nav) AngleInfo() (current, count int32, err error) {
	err = n.call("dvdnav_get_angle_info", func(p uintptr) int32 {
		return navProcs.angleInfo(p, uintptr(unsafe.Pointer(&current)), uintptr(unsafe.Pointer(&count)))
	})
	return current, count, err
}

func (n *Nav) domainCheck(proc func(uintptr) int8) (bool, error) {
	ptr, err := n.acquire()
	if err != nil {
		return false, err
	}
	return proc(ptr) != 0, nil
}

// InFirstPlayDomain reports whether playback is in the first play
// domain.
func (n *Nav) InFirstPlayDomain() (bool, error) { return n.domainCheck(navProcs.isDomainFP) }

// InVMGMDomain reports whether playback is in the video manager menu
// domain.
func (n *Nav) InVMGMDomain() (bool, error) { return n.domainCheck(navProcs.isDomainVMGM) }

// InVTSMDomain reports whether playback is in the title set menu
// domain.
func (n *Nav) InVTSMDomain() (bool, error) { return n.domainCheck(navProcs.isDomainVTSM) }

// InVTSDomain reports whether playback is in the title domain.
func (n *Nav) InVTSDomain() (bool, error) { return n.domainCheck(navProcs.isDomainVTS) }

// SaveState snapshots the virtual machine registers and position into
// a caller buffer sized from the context descriptor.
func (n *Nav) SaveState() ([]byte, error) {
	state := make([]byte, descFor("dvd_state_t").Size())
	err := n.call("dvdnav_get_state", func(p uintptr) int32 {
		status := navProcs.getState(p, uintptr(unsafe.Pointer(&state[0])))
		runtime.KeepAlive(state)
		return status
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// RestoreState resumes playback from a SaveState snapshot.
func (n *Nav) RestoreState(state []byte) error {
	if len(state) < descFor("dvd_state_t").Size() {
		return fmt.Errorf("%w: state snapshot too short", ErrInvalidHandleState)
	}
	return n.call("dvdnav_set_state", func(p uintptr) int32 {
		status := navProcs.setState(p, uintptr(unsafe.Pointer(&state[0])))
		runtime.KeepAlive(state)
		return status
	})
}
