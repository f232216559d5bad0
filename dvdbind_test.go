package dvdbind_test

import (
	"runtime"
	"testing"
	"unsafe"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	dvdbind "github.com/go-disc/dvdbind"
)

func TestDVDBindPublic(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "DVD Binding Public API Suite")
}

var _ = Describe("public surface", func() {
	It("publishes the wire geometry of a disc", func() {
		Expect(dvdbind.BlockSize).To(Equal(2048))
		Expect(dvdbind.KeySize).To(Equal(5))
		Expect(dvdbind.PCIBytes).To(Equal(0x3d4))
		Expect(dvdbind.DSIBytes).To(Equal(0x3fa))
		Expect(dvdbind.DSIStartByte).To(Equal(1031))
	})

	It("reports a variant for the host", func() {
		switch runtime.GOOS {
		case "linux", "darwin", "freebsd", "netbsd", "openbsd", "solaris":
			v, err := dvdbind.Variant()
			Expect(err).To(BeNil())
			Expect(v).To(Equal("posix"))
		case "windows":
			v, err := dvdbind.Variant()
			Expect(err).To(BeNil())
			Expect(v).To(Equal("windows"))
		}
	})

	It("keeps zero-value handles inert", func() {
		var css dvdbind.CSS
		_, err := css.Seek(0, dvdbind.SeekNoFlags)
		Expect(err).To(MatchError(dvdbind.ErrInvalidHandleState))

		var nav dvdbind.Nav
		Expect(nav.Stop()).To(MatchError(dvdbind.ErrInvalidHandleState))
	})

	It("packs language codes both ways", func() {
		Expect(dvdbind.LangCodeOf("en").String()).To(Equal("en"))
		Expect(dvdbind.LangCodeOf("en").DisplayName()).To(Equal("English"))
		Expect(dvdbind.LangCode(0).String()).To(Equal(""))
	})

	It("decodes event payloads from raw block buffers", func() {
		ev := dvdbind.StillEvent{Length: 0xff}
		buf := make([]byte, dvdbind.BlockSize)
		copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(&ev)), unsafe.Sizeof(ev)))
		Expect(dvdbind.ParseStillEvent(buf).Length).To(Equal(int32(0xff)))

		clut := [16]uint32{0: 0x00108080, 15: 0x00eb8080}
		copy(buf, unsafe.Slice((*byte)(unsafe.Pointer(&clut)), unsafe.Sizeof(clut)))
		Expect(dvdbind.ParseSPUCLUTChangeEvent(buf)).To(Equal(clut))
	})

	It("keeps event and menu identifiers on their documented values", func() {
		Expect(dvdbind.EventBlockOK).To(Equal(0))
		Expect(dvdbind.EventNavPacket).To(Equal(7))
		Expect(dvdbind.EventWait).To(Equal(13))
		Expect(dvdbind.MenuRoot).To(Equal(3))
		Expect(dvdbind.MenuPart).To(Equal(7))
	})
})
