package dvdbind

import (
	"unsafe"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("struct layout", func() {
	It("matches the published record sizes", func() {
		Expect(descFor("dvd_time_t").Size()).To(Equal(4))
		Expect(descFor("video_attr_t").Size()).To(Equal(2))
		Expect(descFor("audio_attr_t").Size()).To(Equal(8))
		Expect(descFor("subp_attr_t").Size()).To(Equal(6))
		Expect(descFor("multichannel_ext_t").Size()).To(Equal(24))
		Expect(descFor("user_ops_t").Size()).To(Equal(4))
		Expect(descFor("cell_playback_t").Size()).To(Equal(24))
		Expect(descFor("cell_position_t").Size()).To(Equal(4))
		Expect(descFor("vts_attributes_t").Size()).To(Equal(vtsAttributesSize))
		Expect(descFor("vmgi_mat_t").Size()).To(Equal(vmgiMatSize))
		Expect(descFor("vtsi_mat_t").Size()).To(Equal(vtsiMatSize))
		Expect(descFor("btni_t").Size()).To(Equal(18))
		Expect(descFor("hl_gi_t").Size()).To(Equal(hlGISize))
		Expect(descFor("hli_t").Size()).To(Equal(hliSize))
		Expect(descFor("pci_t").Size()).To(Equal(pciSize))
		Expect(descFor("dsi_t").Size()).To(Equal(dsiSize))
	})

	It("places the program chain pointer block after the packed fixed region", func() {
		off, err := descFor("pgc_t").OffsetOf("command_tbl")
		Expect(err).To(BeNil())
		Expect(off).To(Equal(pgcFixedSize))
	})

	It("carries the owned stream callback table inside the session state", func() {
		d := descFor("vm_t")
		dvdOff, err := d.OffsetOf("dvd")
		Expect(err).To(BeNil())
		cbOff, err := d.OffsetOf("dvdstreamcb")
		Expect(err).To(BeNil())
		vmgiOff, err := d.OffsetOf("vmgi")
		Expect(err).To(BeNil())
		Expect(cbOff).To(Equal(dvdOff + pointerSize))
		Expect(vmgiOff).To(Equal(cbOff + descStreamCallbackRecord.Size()))
	})

	It("agrees with the host mirror of the stat record", func() {
		Expect(descFor("dvd_stat_t").Size()).To(Equal(int(unsafe.Sizeof(Stat{}))))
	})

	It("reads and writes bitfields LSB first", func() {
		d := NewStruct("bitprobe", false,
			FieldBits("lo", 1, 3),
			FieldBits("hi", 1, 5),
		)
		raw := make([]byte, d.Size())
		Expect(d.PutUint(raw, "lo", 0b101)).To(Succeed())
		Expect(d.PutUint(raw, "hi", 0b10011)).To(Succeed())
		Expect(raw[0]).To(Equal(byte(0b10011_101)))

		lo, err := d.Uint(raw, "lo")
		Expect(err).To(BeNil())
		Expect(lo).To(Equal(uint64(0b101)))
		hi, err := d.Uint(raw, "hi")
		Expect(err).To(BeNil())
		Expect(hi).To(Equal(uint64(0b10011)))
	})

	It("moves an overflowing bitfield to the next storage unit when unpacked", func() {
		d := NewStruct("unitprobe", false,
			FieldBits("a", 1, 6),
			FieldBits("b", 1, 6),
		)
		Expect(d.Size()).To(Equal(2))
		byteOff, bitOff, width, err := d.BitRange("b")
		Expect(err).To(BeNil())
		Expect(byteOff).To(Equal(1))
		Expect(bitOff).To(Equal(0))
		Expect(width).To(Equal(6))
	})

	It("allocates packed bitfields bit-contiguously across bytes", func() {
		d := NewStruct("packprobe", true,
			FieldBits("a", 1, 6),
			FieldBits("b", 1, 6),
		)
		Expect(d.Size()).To(Equal(2))
		byteOff, bitOff, _, err := d.BitRange("b")
		Expect(err).To(BeNil())
		Expect(byteOff).To(Equal(0))
		Expect(bitOff).To(Equal(6))

		raw := make([]byte, d.Size())
		Expect(d.PutUint(raw, "b", 0b111111)).To(Succeed())
		Expect(d.PutUint(raw, "a", 0)).To(Succeed())
		v, err := d.Uint(raw, "b")
		Expect(err).To(BeNil())
		Expect(v).To(Equal(uint64(0b111111)))
	})

	It("sizes unions to their widest arm", func() {
		d := NewStruct("unionprobe", false,
			FieldU8("tag"),
			FieldUnion("body",
				FieldU16("short"),
				Array(FieldU8("bytes"), 7),
			),
		)
		off, err := d.OffsetOf("body")
		Expect(err).To(BeNil())
		Expect(off).To(Equal(2))
		Expect(d.Size()).To(Equal(10))
	})

	It("pads a struct tail to its alignment", func() {
		d := NewStruct("tailprobe", false,
			FieldU32("word"),
			FieldU8("byte"),
		)
		Expect(d.Size()).To(Equal(8))
		Expect(d.Align()).To(Equal(4))
	})

	It("drops padding under packing", func() {
		d := NewStruct("packedtail", true,
			FieldU8("byte"),
			FieldU32("word"),
		)
		off, err := d.OffsetOf("word")
		Expect(err).To(BeNil())
		Expect(off).To(Equal(1))
		Expect(d.Size()).To(Equal(5))
	})

	It("panics on a size assertion mismatch", func() {
		d := NewStruct("assertprobe", false, FieldU32("word"))
		Expect(func() { d.AssertSize(8) }).To(PanicWith(MatchError(ErrLayoutSize)))
	})
})

var _ = Describe("packed record mirrors", func() {
	It("exposes video attributes through the descriptor", func() {
		var attr VideoAttr
		d := descFor("video_attr_t")
		Expect(d.PutUint(attr.raw[:], "mpeg_version", 1)).To(Succeed())
		Expect(d.PutUint(attr.raw[:], "display_aspect_ratio", 3)).To(Succeed())
		Expect(d.PutUint(attr.raw[:], "letterboxed", 1)).To(Succeed())
		Expect(attr.MPEGVersion()).To(Equal(uint8(1)))
		Expect(attr.DisplayAspectRatio()).To(Equal(uint8(3)))
		Expect(attr.Letterboxed()).To(BeTrue())
		Expect(attr.FilmMode()).To(BeFalse())
	})

	It("exposes cell playback fields at their packed offsets", func() {
		var cell CellPlayback
		d := descFor("cell_playback_t")
		Expect(d.PutUint(cell.raw[:], "block_type", uint64(BlockTypeAngleBlock))).To(Succeed())
		Expect(d.PutUint(cell.raw[:], "still_time", 30)).To(Succeed())
		Expect(d.PutUint(cell.raw[:], "first_sector", 0xdeadbe)).To(Succeed())
		Expect(d.PutUint(cell.raw[:], "last_sector", 0xfeedbe)).To(Succeed())
		Expect(cell.BlockType()).To(Equal(uint8(BlockTypeAngleBlock)))
		Expect(cell.StillTime()).To(Equal(uint8(30)))
		Expect(cell.FirstSector()).To(Equal(uint32(0xdeadbe)))
		Expect(cell.LastSector()).To(Equal(uint32(0xfeedbe)))
	})

	It("round-trips button coordinates through split bitfields", func() {
		var btn Button
		d := descFor("btni_t")
		Expect(d.PutUint(btn.raw[:], "x_start", 719)).To(Succeed())
		Expect(d.PutUint(btn.raw[:], "y_end", 479)).To(Succeed())
		Expect(d.PutUint(btn.raw[:], "right", 12)).To(Succeed())
		Expect(btn.XStart()).To(Equal(uint16(719)))
		Expect(btn.YEnd()).To(Equal(uint16(479)))
		Expect(btn.Right()).To(Equal(uint8(12)))
	})

	It("reports prohibited operations by name", func() {
		var ops UserOps
		d := descFor("user_ops_t")
		Expect(d.PutUint(ops.raw[:], "title_play", 1)).To(Succeed())
		Expect(ops.TitlePlay()).To(BeTrue())
		Expect(ops.Stop()).To(BeFalse())
		Expect(ops.Prohibited("no_such_operation")).To(BeFalse())
	})
})
