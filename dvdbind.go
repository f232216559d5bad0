// Package dvdbind is a typed binding layer over the native DVD
// descrambling, disc reading and menu navigation libraries. The
// libraries are loaded at runtime; no cgo is involved. All types and
// operations live in the internal package and are re-exported here.
package dvdbind

import (
	"log/slog"

	internal "github.com/go-disc/dvdbind/internal"
)

// Shared block and flag constants.
const (
	BlockSize = internal.BlockSize

	SeekNoFlags = internal.SeekNoFlags
	SeekMPEG    = internal.SeekMPEG
	SeekKey     = internal.SeekKey

	ReadNoFlags = internal.ReadNoFlags
	ReadDecrypt = internal.ReadDecrypt

	KeySize   = internal.KeySize
	TitlesMax = internal.TitlesMax

	PCIBytes     = internal.PCIBytes
	DSIBytes     = internal.DSIBytes
	DSIStartByte = internal.DSIStartByte
	SRIEndOfCell = internal.SRIEndOfCell
)

// File domains for Reader.OpenFile and Reader.FileStat.
type ReadDomain = internal.ReadDomain

const (
	ReadInfoFile       = internal.ReadInfoFile
	ReadInfoBackupFile = internal.ReadInfoBackupFile
	ReadMenuVOBs       = internal.ReadMenuVOBs
	ReadTitleVOBs      = internal.ReadTitleVOBs
)

// Navigation events and menus.
const (
	EventBlockOK           = internal.EventBlockOK
	EventNop               = internal.EventNop
	EventStillFrame        = internal.EventStillFrame
	EventSPUStreamChange   = internal.EventSPUStreamChange
	EventAudioStreamChange = internal.EventAudioStreamChange
	EventVTSChange         = internal.EventVTSChange
	EventCellChange        = internal.EventCellChange
	EventNavPacket         = internal.EventNavPacket
	EventStop              = internal.EventStop
	EventHighlight         = internal.EventHighlight
	EventSPUCLUTChange     = internal.EventSPUCLUTChange
	EventHopChannel        = internal.EventHopChannel
	EventWait              = internal.EventWait

	MenuEscape     = internal.MenuEscape
	MenuTitle      = internal.MenuTitle
	MenuRoot       = internal.MenuRoot
	MenuSubpicture = internal.MenuSubpicture
	MenuAudio      = internal.MenuAudio
	MenuAngle      = internal.MenuAngle
	MenuPart       = internal.MenuPart
)

// Errors.
var (
	ErrUnsupportedPlatform  = internal.ErrUnsupportedPlatform
	ErrUnrepresentableField = internal.ErrUnrepresentableField
	ErrIrreducibleCycle     = internal.ErrIrreducibleCycle
	ErrLayoutSize           = internal.ErrLayoutSize
	ErrOpenFailed           = internal.ErrOpenFailed
	ErrAlreadyClosed        = internal.ErrAlreadyClosed
	ErrInvalidHandleState   = internal.ErrInvalidHandleState
	ErrNative               = internal.ErrNative
)

// Handle and callback types.
type (
	CSS             = internal.CSS
	Reader          = internal.Reader
	File            = internal.File
	IFO             = internal.IFO
	Nav             = internal.Nav
	Stat            = internal.Stat
	BitReader       = internal.BitReader
	CacheBlock      = internal.CacheBlock
	StreamCallbacks = internal.StreamCallbacks
	LogLevel        = internal.LogLevel
)

// IFO and attribute record types.
type (
	DVDTime         = internal.DVDTime
	VMCommand       = internal.VMCommand
	VideoAttr       = internal.VideoAttr
	AudioAttr       = internal.AudioAttr
	SubpAttr        = internal.SubpAttr
	MultichannelExt = internal.MultichannelExt
	UserOps         = internal.UserOps
	CellPlayback    = internal.CellPlayback
	CellPosition    = internal.CellPosition
	PlaybackType    = internal.PlaybackType
	TitleInfo       = internal.TitleInfo
	PTTInfo         = internal.PTTInfo
	PGC             = internal.PGC
	PGCCommandTbl   = internal.PGCCommandTbl
	PGCISRP         = internal.PGCISRP
	PGCIT           = internal.PGCIT
	PGCILU          = internal.PGCILU
	PGCIUT          = internal.PGCIUT
	CellAdr         = internal.CellAdr
	CAdT            = internal.CAdT
	VOBUAdMap       = internal.VOBUAdMap
	TTSRPT          = internal.TTSRPT
	PTLMAITCountry  = internal.PTLMAITCountry
	PTLMAIT         = internal.PTLMAIT
	VTSAttributes   = internal.VTSAttributes
	VTSAtrT         = internal.VTSAtrT
	TxtDt           = internal.TxtDt
	TxtDtLU         = internal.TxtDtLU
	TxtDtMgI        = internal.TxtDtMgI
	TTU             = internal.TTU
	VTSPTTSrPT      = internal.VTSPTTSrPT
	VTSTMap         = internal.VTSTMap
	VTSTMapT        = internal.VTSTMapT
	VMGIMat         = internal.VMGIMat
	VTSIMat         = internal.VTSIMat
)

// Navigation packet record types.
type (
	PCI    = internal.PCI
	PCIGI  = internal.PCIGI
	HLI    = internal.HLI
	HLGI   = internal.HLGI
	Button = internal.Button
	DSI    = internal.DSI
	DSIGI  = internal.DSIGI
	SMLPBI = internal.SMLPBI
)

// Navigation event payloads.
type (
	StillEvent             = internal.StillEvent
	SPUStreamChangeEvent   = internal.SPUStreamChangeEvent
	AudioStreamChangeEvent = internal.AudioStreamChangeEvent
	VTSChangeEvent         = internal.VTSChangeEvent
	CellChangeEvent        = internal.CellChangeEvent
	HighlightEvent         = internal.HighlightEvent
	HighlightArea          = internal.HighlightArea
)

// LangCode is a packed two letter language code.
type LangCode = internal.LangCode

// Variant reports the active platform layout variant.
func Variant() (string, error) { return internal.Variant() }

// OpenCSS opens a descrambling context on a device or image path.
func OpenCSS(target string) (*CSS, error) { return internal.OpenCSS(target) }

// OpenCSSStream opens a descrambling context over stream callbacks.
func OpenCSSStream(cb *StreamCallbacks, logger *slog.Logger) (*CSS, error) {
	return internal.OpenCSSStream(cb, logger)
}

// OpenReader opens a disc device, image file or directory for
// reading.
func OpenReader(path string) (*Reader, error) { return internal.OpenReader(path) }

// OpenReader2 is OpenReader with native log output routed to logger.
func OpenReader2(path string, logger *slog.Logger) (*Reader, error) {
	return internal.OpenReader2(path, logger)
}

// OpenReaderStream opens a reader over stream callbacks.
func OpenReaderStream(cb *StreamCallbacks, logger *slog.Logger) (*Reader, error) {
	return internal.OpenReaderStream(cb, logger)
}

// OpenReaderStream2 is OpenReaderStream with native log output routed
// through the logger callback as well.
func OpenReaderStream2(cb *StreamCallbacks, logger *slog.Logger) (*Reader, error) {
	return internal.OpenReaderStream2(cb, logger)
}

// OpenNav opens a navigation context on a device, image or directory.
func OpenNav(path string) (*Nav, error) { return internal.OpenNav(path) }

// OpenNav2 is OpenNav with native log output routed to logger.
func OpenNav2(path string, logger *slog.Logger) (*Nav, error) {
	return internal.OpenNav2(path, logger)
}

// OpenNavStream opens a navigation context over stream callbacks.
func OpenNavStream(cb *StreamCallbacks, logger *slog.Logger) (*Nav, error) {
	return internal.OpenNavStream(cb, logger)
}

// OpenNavStream2 is OpenNavStream with native log output routed
// through the logger callback as well.
func OpenNavStream2(cb *StreamCallbacks, logger *slog.Logger) (*Nav, error) {
	return internal.OpenNavStream2(cb, logger)
}

// NavVersion reports the navigation library version string.
func NavVersion() (string, error) { return internal.NavVersion() }

// NewBitReader wraps the native MSB first bit reader over data.
func NewBitReader(data []byte) (*BitReader, error) { return internal.NewBitReader(data) }

// UnpackPCI parses a navigation packet's PCI substream.
func UnpackPCI(pci *PCI, wire []byte) error { return internal.UnpackPCI(pci, wire) }

// UnpackDSI parses a navigation packet's DSI substream.
func UnpackDSI(dsi *DSI, wire []byte) error { return internal.UnpackDSI(dsi, wire) }

// PrintPCI dumps a parsed PCI record on the native side's stdout.
func PrintPCI(pci *PCI) error { return internal.PrintPCI(pci) }

// PrintDSI dumps a parsed DSI record on the native side's stdout.
func PrintDSI(dsi *DSI) error { return internal.PrintDSI(dsi) }

// HighlightAreaFor computes the display area of a button from a PCI
// record.
func HighlightAreaFor(pci *PCI, button int32, mode int32) (*HighlightArea, error) {
	return internal.HighlightAreaFor(pci, button, mode)
}

// Event payload decoders for NextBlock buffers.
func ParseStillEvent(buf []byte) StillEvent { return internal.ParseStillEvent(buf) }

func ParseSPUStreamChangeEvent(buf []byte) SPUStreamChangeEvent {
	return internal.ParseSPUStreamChangeEvent(buf)
}

func ParseAudioStreamChangeEvent(buf []byte) AudioStreamChangeEvent {
	return internal.ParseAudioStreamChangeEvent(buf)
}

func ParseVTSChangeEvent(buf []byte) VTSChangeEvent { return internal.ParseVTSChangeEvent(buf) }

func ParseCellChangeEvent(buf []byte) CellChangeEvent { return internal.ParseCellChangeEvent(buf) }

func ParseHighlightEvent(buf []byte) HighlightEvent { return internal.ParseHighlightEvent(buf) }

func ParseSPUCLUTChangeEvent(buf []byte) [16]uint32 {
	return internal.ParseSPUCLUTChangeEvent(buf)
}

// LangCodeOf packs a two letter language code.
func LangCodeOf(code string) LangCode { return internal.LangCodeOf(code) }
