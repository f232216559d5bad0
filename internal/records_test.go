package dvdbind

import (
	"unsafe"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("native record views", func() {
	It("walks a program chain through descriptor offsets", func() {
		pgcDesc := descFor("pgc_t")
		pgcBuf := make([]byte, pgcDesc.Size())
		cells := make([]byte, 2*cellPlaybackSize)

		Expect(pgcDesc.PutUint(pgcBuf, "nr_of_programs", 4)).To(Succeed())
		Expect(pgcDesc.PutUint(pgcBuf, "nr_of_cells", 2)).To(Succeed())
		Expect(pgcDesc.PutUint(pgcBuf, "still_time", 15)).To(Succeed())
		Expect(pgcDesc.PutUint(pgcBuf, "cell_playback",
			uint64(uintptr(unsafe.Pointer(&cells[0]))))).To(Succeed())

		cellDesc := descFor("cell_playback_t")
		Expect(cellDesc.PutUint(cells[cellPlaybackSize:], "first_sector", 1234)).To(Succeed())

		pgc := newPGC(uintptr(unsafe.Pointer(&pgcBuf[0])))
		Expect(pgc.NrOfPrograms()).To(Equal(uint8(4)))
		Expect(pgc.NrOfCells()).To(Equal(uint8(2)))
		Expect(pgc.StillTime()).To(Equal(uint8(15)))
		Expect(pgc.CellPlayback(1).FirstSector()).To(Equal(uint32(1234)))
		Expect(pgc.CellPosition(0)).To(BeNil())
	})

	It("indexes search pointer tables by element stride", func() {
		srptDesc := descFor("tt_srpt_t")
		titleDesc := descFor("title_info_t")
		titles := make([]byte, 3*titleInfoSize)
		Expect(titleDesc.PutUint(titles[2*titleInfoSize:], "nr_of_ptts", 12)).To(Succeed())
		Expect(titleDesc.PutUint(titles[2*titleInfoSize:], "title_set_nr", 2)).To(Succeed())

		srptBuf := make([]byte, srptDesc.Size())
		Expect(srptDesc.PutUint(srptBuf, "nr_of_srpts", 3)).To(Succeed())
		Expect(srptDesc.PutUint(srptBuf, "title",
			uint64(uintptr(unsafe.Pointer(&titles[0]))))).To(Succeed())

		srpt := TTSRPT{rec{ptr: uintptr(unsafe.Pointer(&srptBuf[0])), desc: srptDesc}}
		Expect(srpt.NrOfSRPTs()).To(Equal(uint16(3)))
		Expect(srpt.Title(2).NrOfPTTs()).To(Equal(uint16(12)))
		Expect(srpt.Title(2).TitleSetNr()).To(Equal(uint8(2)))
	})

	It("resolves management tables from an information handle", func() {
		ifoDesc := descFor("ifo_handle_t")
		handleBuf := make([]byte, ifoDesc.Size())
		matBuf := make([]byte, vmgiMatSize)

		matDesc := descFor("vmgi_mat_t")
		copy(matBuf[:12], "DVDVIDEO-VMG")
		Expect(matDesc.PutUint(matBuf, "vmg_nr_of_title_sets", 5)).To(Succeed())
		Expect(ifoDesc.PutUint(handleBuf, "vmgi_mat",
			uint64(uintptr(unsafe.Pointer(&matBuf[0]))))).To(Succeed())

		ifoProcs.open = func(ptr uintptr, title int32) uintptr {
			return uintptr(unsafe.Pointer(&handleBuf[0]))
		}
		ifoProcs.close = func(ptr uintptr) {}
		readProcs.close = func(ptr uintptr) {}

		r := &Reader{}
		r.markOpen(3)
		i, err := r.OpenIFO(0)
		Expect(err).To(BeNil())
		defer i.Close()

		mat, err := i.VMGIMat()
		Expect(err).To(BeNil())
		Expect(mat).NotTo(BeNil())
		Expect(mat.Identifier()).To(Equal("DVDVIDEO-VMG"))
		Expect(mat.NrOfTitleSets()).To(Equal(uint16(5)))

		vtsi, err := i.VTSIMat()
		Expect(err).To(BeNil())
		Expect(vtsi).To(BeNil())
	})

	It("reads audio language codes in disc byte order", func() {
		var attr AudioAttr
		off, err := descFor("audio_attr_t").OffsetOf("lang_code")
		Expect(err).To(BeNil())
		attr.raw[off] = 'd'
		attr.raw[off+1] = 'e'
		Expect(attr.Lang().String()).To(Equal("de"))
		Expect(attr.Lang().DisplayName()).To(Equal("German"))
	})
})

var _ = Describe("language codes", func() {
	It("packs and unpacks two letter codes", func() {
		Expect(LangCodeOf("en").String()).To(Equal("en"))
		Expect(LangCodeOf("japanese")).To(Equal(LangCode(0)))
		Expect(LangCode(0).String()).To(Equal(""))
		Expect(LangCode(0xffff).String()).To(Equal(""))
	})

	It("names known languages in English", func() {
		Expect(LangCodeOf("fr").DisplayName()).To(Equal("French"))
		Expect(LangCodeOf("ja").DisplayName()).To(Equal("Japanese"))
	})
})

var _ = Describe("navigation events", func() {
	It("decodes a highlight payload from the block buffer", func() {
		ev := HighlightEvent{
			Display: 1,
			Palette: 0x00112233,
			SX:      64, SY: 48, EX: 640, EY: 400,
			PTS:     90000,
			ButtonN: 3,
		}
		buf := make([]byte, BlockSize)
		copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(&ev)), unsafe.Sizeof(ev)))

		got := ParseHighlightEvent(buf)
		Expect(got).To(Equal(ev))
	})

	It("decodes a cell change payload with its wide fields", func() {
		ev := CellChangeEvent{
			CellN:      2,
			PGN:        1,
			CellLength: 90000 * 30,
			PGCLength:  90000 * 3600,
		}
		buf := make([]byte, BlockSize)
		copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(&ev)), unsafe.Sizeof(ev)))
		Expect(ParseCellChangeEvent(buf)).To(Equal(ev))
	})
})

var _ = Describe("platform selection", func() {
	It("selects the posix variant for the unix family", func() {
		for _, goos := range []string{"linux", "darwin", "freebsd"} {
			v, err := selectVariant(goos)
			Expect(err).To(BeNil())
			Expect(v.name).To(Equal("posix"))
			Expect(v.cssLibrary).NotTo(BeEmpty())
		}
	})

	It("selects the windows variant without a descrambling build", func() {
		v, err := selectVariant("windows")
		Expect(err).To(BeNil())
		Expect(v.name).To(Equal("windows"))
		Expect(v.cssLibrary).To(BeEmpty())
		Expect(v.cssContextWindowsFields).To(BeTrue())
	})

	It("fails closed on an unknown operating system", func() {
		_, err := selectVariant("plan9")
		Expect(err).To(MatchError(ErrUnsupportedPlatform))
	})

	It("sizes the descrambling context for the active variant", func() {
		css, ok := nativeStructs.Struct("dvdcss_s")
		Expect(ok).To(BeTrue())
		Expect(css.Complete()).To(BeTrue())

		off, err := css.OffsetOf("psz_cachefile")
		Expect(err).To(BeNil())
		Expect(off).To(BeNumerically(">", 0))
	})
})
