package dvdbind

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Navigation packet constants. The wire constants count the packet
// payload including its substream framing, so they run two bytes past
// the in-memory record sizes.
const (
	PCIBytes     = 0x3d4
	DSIBytes     = 0x3fa
	DSIStartByte = 1031

	SRIEndOfCell = 0x3fffffff

	pciGISize    = 60
	nsmlAGLISize = 36
	hlGISize     = 22
	btnColITSize = 24
	btniSize     = 18
	hliSize      = 694
	pciSize      = 979

	dsiGISize   = 32
	smlPBISize  = 148
	smlAGLISize = 54
	vobuSRISize = 168
	synciSize   = 144
	dsiSize     = 1017

	btnsMax       = 36
	btnGroupsMax  = 3
	angleInfoMax  = 9
	audioSynciMax = 8
	spuSynciMax   = 32
)

// registerNavRecordStructs describes the PCI and DSI packet records.
// They reuse the prohibited ops mask and BCD time records and complete
// the navigation context definitions queued earlier.
func registerNavRecordStructs(r *Registry) error {
	userOps, _ := r.Struct("user_ops_t")
	dvdTime, _ := r.Struct("dvd_time_t")
	vmCmd, _ := r.Struct("vm_cmd_t")

	if err := r.Define("pci_gi_t", true,
		FieldU32("nv_pck_lbn"),
		FieldU16("vobu_cat"),
		FieldU16("zero1"),
		FieldStruct("vobu_uop_ctl", userOps),
		FieldU32("vobu_s_ptm"),
		FieldU32("vobu_e_ptm"),
		FieldU32("vobu_se_e_ptm"),
		FieldStruct("e_eltm", dvdTime),
		Array(FieldU8("vobu_isrc"), 32),
	); err != nil {
		return err
	}

	if err := r.Define("nsml_agli_t", true,
		Array(FieldU32("nsml_agl_dsta"), angleInfoMax),
	); err != nil {
		return err
	}

	if err := r.Define("hl_gi_t", true,
		FieldU16("hli_ss"),
		FieldU32("hli_s_ptm"),
		FieldU32("hli_e_ptm"),
		FieldU32("btn_se_e_ptm"),
		FieldBits("zero1", 1, 2),
		FieldBits("btngr_ns", 1, 2),
		FieldBits("zero2", 1, 1),
		FieldBits("btngr1_dsp_ty", 1, 3),
		FieldBits("zero3", 1, 1),
		FieldBits("btngr2_dsp_ty", 1, 3),
		FieldBits("zero4", 1, 1),
		FieldBits("btngr3_dsp_ty", 1, 3),
		FieldU8("btn_ofn"),
		FieldU8("btn_ns"),
		FieldU8("nsl_btn_ns"),
		FieldU8("zero5"),
		FieldU8("fosl_btnn"),
		FieldU8("foac_btnn"),
	); err != nil {
		return err
	}

	if err := r.Define("btn_colit_t", true,
		Array(FieldU32("btn_coli"), btnGroupsMax*2),
	); err != nil {
		return err
	}

	// Packed bitfields cross byte boundaries here; the 10 bit
	// coordinates spill mid-byte and only bit-contiguous allocation
	// reproduces the 18 byte native record.
	if err := r.Define("btni_t", true,
		FieldBits("btn_coln", 1, 2),
		FieldBits("x_start", 1, 10),
		FieldBits("zero1", 1, 2),
		FieldBits("x_end", 1, 10),
		FieldBits("auto_action_mode", 1, 2),
		FieldBits("y_start", 1, 10),
		FieldBits("zero2", 1, 2),
		FieldBits("y_end", 1, 10),
		FieldBits("zero3", 1, 2),
		FieldBits("up", 1, 6),
		FieldBits("zero4", 1, 2),
		FieldBits("down", 1, 6),
		FieldBits("zero5", 1, 2),
		FieldBits("left", 1, 6),
		FieldBits("zero6", 1, 2),
		FieldBits("right", 1, 6),
		FieldStruct("cmd", vmCmd),
	); err != nil {
		return err
	}

	hlGI, _ := r.Struct("hl_gi_t")
	btnColIT, _ := r.Struct("btn_colit_t")
	btni, _ := r.Struct("btni_t")
	if err := r.Define("hli_t", true,
		FieldStruct("hl_gi", hlGI),
		FieldStruct("btn_colit", btnColIT),
		Array(FieldStruct("btnit", btni), btnsMax),
	); err != nil {
		return err
	}

	pciGI, _ := r.Struct("pci_gi_t")
	nsmlAGLI, _ := r.Struct("nsml_agli_t")
	hli, _ := r.Struct("hli_t")
	if err := r.Define("pci_t", true,
		FieldStruct("pci_gi", pciGI),
		FieldStruct("nsml_agli", nsmlAGLI),
		FieldStruct("hli", hli),
		Array(FieldU8("zero1"), 189),
	); err != nil {
		return err
	}

	if err := r.Define("dsi_gi_t", true,
		FieldU32("nv_pck_scr"),
		FieldU32("nv_pck_lbn"),
		FieldU32("vobu_ea"),
		FieldU32("vobu_1stref_ea"),
		FieldU32("vobu_2ndref_ea"),
		FieldU32("vobu_3rdref_ea"),
		FieldU16("vobu_vob_idn"),
		FieldU8("zero1"),
		FieldU8("vobu_c_idn"),
		FieldStruct("c_eltm", dvdTime),
	); err != nil {
		return err
	}

	vobA := NewStruct("sml_pbi_vob_a", true,
		FieldU32("stp_ptm1"),
		FieldU32("stp_ptm2"),
		FieldU32("gap_len1"),
		FieldU32("gap_len2"),
	)
	if err := r.Define("sml_pbi_t", true,
		FieldU16("category"),
		FieldU32("ilvu_ea"),
		FieldU32("ilvu_sa"),
		FieldU16("size"),
		FieldU32("vob_v_s_s_ptm"),
		FieldU32("vob_v_e_s_ptm"),
		Array(FieldStruct("vob_a", vobA), 8),
	); err != nil {
		return err
	}

	if err := r.Define("sml_agl_data_t", true,
		FieldU32("address"),
		FieldU16("size"),
	); err != nil {
		return err
	}

	smlAGLData, _ := r.Struct("sml_agl_data_t")
	if err := r.Define("sml_agli_t", true,
		Array(FieldStruct("data", smlAGLData), angleInfoMax),
	); err != nil {
		return err
	}

	if err := r.Define("vobu_sri_t", true,
		FieldU32("next_video"),
		Array(FieldU32("fwda"), 19),
		FieldU32("next_vobu"),
		FieldU32("prev_vobu"),
		Array(FieldU32("bwda"), 19),
		FieldU32("prev_video"),
	); err != nil {
		return err
	}

	if err := r.Define("synci_t", true,
		Array(FieldU16("a_synca"), audioSynciMax),
		Array(FieldU32("sp_synca"), spuSynciMax),
	); err != nil {
		return err
	}

	dsiGI, _ := r.Struct("dsi_gi_t")
	smlPBI, _ := r.Struct("sml_pbi_t")
	smlAGLI, _ := r.Struct("sml_agli_t")
	vobuSRI, _ := r.Struct("vobu_sri_t")
	synci, _ := r.Struct("synci_t")
	return r.Define("dsi_t", true,
		FieldStruct("dsi_gi", dsiGI),
		FieldStruct("sml_pbi", smlPBI),
		FieldStruct("sml_agli", smlAGLI),
		FieldStruct("vobu_sri", vobuSRI),
		FieldStruct("synci", synci),
		Array(FieldU8("zero1"), 471),
	)
}

var navReadProcs struct {
	readPCI  func(uintptr, uintptr)
	readDSI  func(uintptr, uintptr)
	printPCI func(uintptr)
	printDSI func(uintptr)
}

func registerNavReadProcs(lib uintptr) {
	purego.RegisterLibFunc(&navReadProcs.readPCI, lib, "navRead_PCI")
	purego.RegisterLibFunc(&navReadProcs.readDSI, lib, "navRead_DSI")
	purego.RegisterLibFunc(&navReadProcs.printPCI, lib, "navPrint_PCI")
	purego.RegisterLibFunc(&navReadProcs.printDSI, lib, "navPrint_DSI")
}

func nestedOffset(outer *StructDesc, member string, inner *StructDesc, field string) int {
	base, err := outer.OffsetOf(member)
	if err != nil {
		panic(err)
	}
	off, err := inner.OffsetOf(field)
	if err != nil {
		panic(err)
	}
	return base + off
}

// PCIGI is the presentation control general information record.
type PCIGI struct{ raw [pciGISize]byte }

func (g *PCIGI) field(name string) uint64 {
	return mirrorUint(descFor("pci_gi_t"), g.raw[:], name)
}

func (g *PCIGI) NVPckLBN() uint32   { return uint32(g.field("nv_pck_lbn")) }
func (g *PCIGI) VOBUCat() uint16    { return uint16(g.field("vobu_cat")) }
func (g *PCIGI) VOBUSPtm() uint32   { return uint32(g.field("vobu_s_ptm")) }
func (g *PCIGI) VOBUEPtm() uint32   { return uint32(g.field("vobu_e_ptm")) }
func (g *PCIGI) VOBUSeEPtm() uint32 { return uint32(g.field("vobu_se_e_ptm")) }

func (g *PCIGI) UOPCtl() *UserOps {
	off, err := descFor("pci_gi_t").OffsetOf("vobu_uop_ctl")
	if err != nil {
		panic(err)
	}
	return (*UserOps)(unsafe.Pointer(&g.raw[off]))
}

func (g *PCIGI) ElapsedTime() DVDTime {
	off, err := descFor("pci_gi_t").OffsetOf("e_eltm")
	if err != nil {
		panic(err)
	}
	return DVDTime{g.raw[off], g.raw[off+1], g.raw[off+2], g.raw[off+3]}
}

func (g *PCIGI) ISRC() []byte {
	off, err := descFor("pci_gi_t").OffsetOf("vobu_isrc")
	if err != nil {
		panic(err)
	}
	return g.raw[off : off+32]
}

// HLGI is the highlight general information record.
type HLGI struct{ raw [hlGISize]byte }

func (h *HLGI) field(name string) uint64 {
	return mirrorUint(descFor("hl_gi_t"), h.raw[:], name)
}

func (h *HLGI) HLISS() uint16       { return uint16(h.field("hli_ss")) }
func (h *HLGI) HLISPtm() uint32     { return uint32(h.field("hli_s_ptm")) }
func (h *HLGI) HLIEPtm() uint32     { return uint32(h.field("hli_e_ptm")) }
func (h *HLGI) BtnSeEPtm() uint32   { return uint32(h.field("btn_se_e_ptm")) }
func (h *HLGI) BtnGroups() uint8    { return uint8(h.field("btngr_ns")) }
func (h *HLGI) BtnOffset() uint8    { return uint8(h.field("btn_ofn")) }
func (h *HLGI) BtnCount() uint8     { return uint8(h.field("btn_ns")) }
func (h *HLGI) NslBtnCount() uint8  { return uint8(h.field("nsl_btn_ns")) }
func (h *HLGI) ForcedSelect() uint8 { return uint8(h.field("fosl_btnn")) }
func (h *HLGI) ForcedAction() uint8 { return uint8(h.field("foac_btnn")) }

func (h *HLGI) GroupDisplayType(group int) uint8 {
	switch group {
	case 0:
		return uint8(h.field("btngr1_dsp_ty"))
	case 1:
		return uint8(h.field("btngr2_dsp_ty"))
	case 2:
		return uint8(h.field("btngr3_dsp_ty"))
	}
	return 0
}

// Button is one highlight button record.
type Button struct{ raw [btniSize]byte }

func (b *Button) field(name string) uint64 {
	return mirrorUint(descFor("btni_t"), b.raw[:], name)
}

func (b *Button) ColorNr() uint8         { return uint8(b.field("btn_coln")) }
func (b *Button) XStart() uint16         { return uint16(b.field("x_start")) }
func (b *Button) XEnd() uint16           { return uint16(b.field("x_end")) }
func (b *Button) YStart() uint16         { return uint16(b.field("y_start")) }
func (b *Button) YEnd() uint16           { return uint16(b.field("y_end")) }
func (b *Button) AutoActionMode() uint8  { return uint8(b.field("auto_action_mode")) }
func (b *Button) Up() uint8              { return uint8(b.field("up")) }
func (b *Button) Down() uint8            { return uint8(b.field("down")) }
func (b *Button) Left() uint8            { return uint8(b.field("left")) }
func (b *Button) Right() uint8           { return uint8(b.field("right")) }

func (b *Button) Cmd() VMCommand {
	off, err := descFor("btni_t").OffsetOf("cmd")
	if err != nil {
		panic(err)
	}
	var cmd VMCommand
	copy(cmd[:], b.raw[off:off+commandDataSize])
	return cmd
}

// HLI is the highlight information record.
type HLI struct{ raw [hliSize]byte }

func (h *HLI) GI() *HLGI {
	off, err := descFor("hli_t").OffsetOf("hl_gi")
	if err != nil {
		panic(err)
	}
	return (*HLGI)(unsafe.Pointer(&h.raw[off]))
}

// ButtonColor returns one button color lookup entry. Groups carry a
// selected and an action entry each.
func (h *HLI) ButtonColor(group int, action bool) uint32 {
	off := nestedOffset(descFor("hli_t"), "btn_colit", descFor("btn_colit_t"), "btn_coli")
	i := group * 2
	if action {
		i++
	}
	return uint32(readUint(h.raw[off+i*4:], 4))
}

func (h *HLI) Button(i int) *Button {
	off, err := descFor("hli_t").OffsetOf("btnit")
	if err != nil {
		panic(err)
	}
	return (*Button)(unsafe.Pointer(&h.raw[off+i*btniSize]))
}

// PCI is one parsed presentation control packet.
type PCI struct{ raw [pciSize]byte }

func (p *PCI) GI() *PCIGI {
	off, err := descFor("pci_t").OffsetOf("pci_gi")
	if err != nil {
		panic(err)
	}
	return (*PCIGI)(unsafe.Pointer(&p.raw[off]))
}

func (p *PCI) HLI() *HLI {
	off, err := descFor("pci_t").OffsetOf("hli")
	if err != nil {
		panic(err)
	}
	return (*HLI)(unsafe.Pointer(&p.raw[off]))
}

// AngleAddress returns the non seamless angle destination for one of
// the nine angles, 1 based.
func (p *PCI) AngleAddress(angle int) uint32 {
	off := nestedOffset(descFor("pci_t"), "nsml_agli", descFor("nsml_agli_t"), "nsml_agl_dsta")
	return uint32(readUint(p.raw[off+(angle-1)*4:], 4))
}

// DSIGI is the data search general information record.
type DSIGI struct{ raw [dsiGISize]byte }

func (g *DSIGI) field(name string) uint64 {
	return mirrorUint(descFor("dsi_gi_t"), g.raw[:], name)
}

func (g *DSIGI) NVPckSCR() uint32     { return uint32(g.field("nv_pck_scr")) }
func (g *DSIGI) NVPckLBN() uint32     { return uint32(g.field("nv_pck_lbn")) }
func (g *DSIGI) VOBUEA() uint32       { return uint32(g.field("vobu_ea")) }
func (g *DSIGI) VOBU1stRefEA() uint32 { return uint32(g.field("vobu_1stref_ea")) }
func (g *DSIGI) VOBU2ndRefEA() uint32 { return uint32(g.field("vobu_2ndref_ea")) }
func (g *DSIGI) VOBU3rdRefEA() uint32 { return uint32(g.field("vobu_3rdref_ea")) }
func (g *DSIGI) VOBIDN() uint16       { return uint16(g.field("vobu_vob_idn")) }
func (g *DSIGI) CellIDN() uint8       { return uint8(g.field("vobu_c_idn")) }

func (g *DSIGI) CellElapsedTime() DVDTime {
	off, err := descFor("dsi_gi_t").OffsetOf("c_eltm")
	if err != nil {
		panic(err)
	}
	return DVDTime{g.raw[off], g.raw[off+1], g.raw[off+2], g.raw[off+3]}
}

// SMLPBI is the seamless playback information record.
type SMLPBI struct{ raw [smlPBISize]byte }

func (s *SMLPBI) field(name string) uint64 {
	return mirrorUint(descFor("sml_pbi_t"), s.raw[:], name)
}

func (s *SMLPBI) Category() uint16 { return uint16(s.field("category")) }
func (s *SMLPBI) ILVUEA() uint32   { return uint32(s.field("ilvu_ea")) }
func (s *SMLPBI) ILVUSA() uint32   { return uint32(s.field("ilvu_sa")) }
func (s *SMLPBI) Size() uint16     { return uint16(s.field("size")) }

// DSI is one parsed data search packet.
type DSI struct{ raw [dsiSize]byte }

func (d *DSI) GI() *DSIGI {
	off, err := descFor("dsi_t").OffsetOf("dsi_gi")
	if err != nil {
		panic(err)
	}
	return (*DSIGI)(unsafe.Pointer(&d.raw[off]))
}

func (d *DSI) SMLPBI() *SMLPBI {
	off, err := descFor("dsi_t").OffsetOf("sml_pbi")
	if err != nil {
		panic(err)
	}
	return (*SMLPBI)(unsafe.Pointer(&d.raw[off]))
}

// SeamlessAngleAddress returns the seamless angle destination and
// size for one of the nine angles, 1 based.
func (d *DSI) SeamlessAngleAddress(angle int) (address uint32, size uint16) {
	off := nestedOffset(descFor("dsi_t"), "sml_agli", descFor("sml_agli_t"), "data")
	stride := descFor("sml_agl_data_t").Size()
	base := off + (angle-1)*stride
	return uint32(readUint(d.raw[base:], 4)), uint16(readUint(d.raw[base+4:], 2))
}

// NextVOBU returns the sector offset of the next VOBU, SRIEndOfCell at
// the end of a cell.
func (d *DSI) NextVOBU() uint32 {
	off := nestedOffset(descFor("dsi_t"), "vobu_sri", descFor("vobu_sri_t"), "next_vobu")
	return uint32(readUint(d.raw[off:], 4))
}

func (d *DSI) PrevVOBU() uint32 {
	off := nestedOffset(descFor("dsi_t"), "vobu_sri", descFor("vobu_sri_t"), "prev_vobu")
	return uint32(readUint(d.raw[off:], 4))
}

// UnpackPCI parses a navigation packet's PCI substream into pci. The
// buffer must hold the full wire payload.
func UnpackPCI(pci *PCI, wire []byte) error {
	if err := loadRead(); err != nil {
		return err
	}
	navReadProcs.readPCI(uintptr(unsafe.Pointer(&pci.raw[0])), uintptr(unsafe.Pointer(&wire[0])))
	return nil
}

// UnpackDSI parses a navigation packet's DSI substream into dsi.
func UnpackDSI(dsi *DSI, wire []byte) error {
	if err := loadRead(); err != nil {
		return err
	}
	navReadProcs.readDSI(uintptr(unsafe.Pointer(&dsi.raw[0])), uintptr(unsafe.Pointer(&wire[0])))
	return nil
}

// PrintPCI dumps a parsed PCI record on the native side's stdout.
func PrintPCI(pci *PCI) error {
	if err := loadRead(); err != nil {
		return err
	}
	navReadProcs.printPCI(uintptr(unsafe.Pointer(&pci.raw[0])))
	return nil
}

// PrintDSI dumps a parsed DSI record on the native side's stdout.
func PrintDSI(dsi *DSI) error {
	if err := loadRead(); err != nil {
		return err
	}
	navReadProcs.printDSI(uintptr(unsafe.Pointer(&dsi.raw[0])))
	return nil
}
