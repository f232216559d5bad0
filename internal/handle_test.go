package dvdbind

import (
	"unsafe"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("handle lifecycle", func() {
	It("refuses operations before open", func() {
		c := &CSS{}
		_, err := c.Seek(0, SeekNoFlags)
		Expect(err).To(MatchError(ErrInvalidHandleState))
	})

	It("refuses operations after close without a native call", func() {
		closed := 0
		cssProcs.close = func(ptr uintptr) int32 { closed++; return 0 }
		cssProcs.seek = func(ptr uintptr, block, flags int32) int32 {
			Fail("seek must not reach native code on a closed handle")
			return -1
		}

		c := &CSS{}
		c.markOpen(1)
		Expect(c.Close()).To(Succeed())
		Expect(closed).To(Equal(1))

		_, err := c.Seek(0, SeekNoFlags)
		Expect(err).To(MatchError(ErrInvalidHandleState))
		Expect(err).NotTo(MatchError(ErrAlreadyClosed))
	})

	It("fails a double close locally", func() {
		cssProcs.close = func(ptr uintptr) int32 { return 0 }
		c := &CSS{}
		c.markOpen(1)
		Expect(c.Close()).To(Succeed())
		Expect(c.Close()).To(MatchError(ErrAlreadyClosed))
	})

	It("keeps a reader open while a title file depends on it", func() {
		readProcs.openFile = func(ptr uintptr, title, domain int32) uintptr { return 7 }
		readProcs.closeFile = func(ptr uintptr) {}
		readProcs.close = func(ptr uintptr) {}

		r := &Reader{}
		r.markOpen(3)
		f, err := r.OpenFile(1, ReadTitleVOBs)
		Expect(err).To(BeNil())

		Expect(r.Close()).To(MatchError(ErrInvalidHandleState))
		Expect(f.Close()).To(Succeed())
		Expect(r.Close()).To(Succeed())
	})

	It("keeps a reader open while an information file depends on it", func() {
		ifoProcs.open = func(ptr uintptr, title int32) uintptr { return 9 }
		ifoProcs.close = func(ptr uintptr) {}
		readProcs.close = func(ptr uintptr) {}

		r := &Reader{}
		r.markOpen(3)
		i, err := r.OpenIFO(0)
		Expect(err).To(BeNil())

		Expect(r.Close()).To(MatchError(ErrInvalidHandleState))
		Expect(i.Close()).To(Succeed())
		Expect(r.Close()).To(Succeed())
	})

	It("releases the retain when a native open fails", func() {
		ifoProcs.open = func(ptr uintptr, title int32) uintptr { return 0 }
		readProcs.close = func(ptr uintptr) {}

		r := &Reader{}
		r.markOpen(3)
		_, err := r.OpenIFO(1)
		Expect(err).To(MatchError(ErrOpenFailed))
		Expect(r.Close()).To(Succeed())
	})

	It("wraps navigation failures with the context error string", func() {
		navProcs.titlePlay = func(ptr uintptr, title int32) int32 { return navStatusErr }
		navProcs.errString = func(ptr uintptr) string { return "called out of order" }

		n := &Nav{}
		n.markOpen(5)
		err := n.PlayTitle(1)
		Expect(err).To(MatchError(ErrNative))
		Expect(err.Error()).To(ContainSubstring("called out of order"))
	})

	It("passes navigation success through untouched", func() {
		navProcs.stillSkip = func(ptr uintptr) int32 { return navStatusOK }
		n := &Nav{}
		n.markOpen(5)
		Expect(n.SkipStill()).To(Succeed())
	})
})

var _ = Describe("callback registration", func() {
	It("never hands out slot zero", func() {
		token, _ := registerLogger(nil)
		defer callbacks.release(token)
		Expect(token).NotTo(BeZero())
		Expect(callbacks.get(0)).To(BeNil())
	})

	It("routes tokens back to their registration", func() {
		cb := &StreamCallbacks{Read: func(buf []byte) int32 { return int32(len(buf)) }}
		token, reg := registerStream(cb, nil)
		defer callbacks.release(token)

		Expect(callbacks.get(token)).To(BeIdenticalTo(reg))
		Expect(reg.streamRec.pfSeek).To(Equal(cssSeekTrampoline))
		Expect(reg.streamRec.pfRead).To(Equal(readTrampoline))
	})

	It("uses the signed seek shape for reader streams", func() {
		cb := &StreamCallbacks{Read: func(buf []byte) int32 { return 0 }}
		token, reg := registerReaderStream(cb, nil)
		defer callbacks.release(token)
		Expect(reg.streamRec.pfSeek).To(Equal(readSeekTrampoline))
	})

	It("invalidates a token on release and reuses the slot", func() {
		token, _ := registerLogger(nil)
		callbacks.release(token)
		Expect(callbacks.get(token)).To(BeNil())

		again, _ := registerLogger(nil)
		defer callbacks.release(again)
		Expect(again).To(Equal(token))
	})
})

var _ = Describe("reader calls", func() {
	It("derives the block count from the buffer length", func() {
		var gotBlocks uint64
		readProcs.readBlocks = func(ptr uintptr, offset int32, blocks uint64, buf uintptr) int64 {
			gotBlocks = blocks
			return int64(blocks)
		}
		readProcs.closeFile = func(ptr uintptr) {}

		r := &Reader{}
		r.markOpen(3)
		readProcs.openFile = func(ptr uintptr, title, domain int32) uintptr { return 7 }
		f, err := r.OpenFile(1, ReadTitleVOBs)
		Expect(err).To(BeNil())
		defer f.Close()

		buf := make([]byte, 3*BlockSize)
		n, err := f.ReadBlocks(0, buf)
		Expect(err).To(BeNil())
		Expect(n).To(Equal(int64(3)))
		Expect(gotBlocks).To(Equal(uint64(3)))
	})

	It("copies the stat record out of the native call", func() {
		readProcs.fileStat = func(ptr uintptr, title, domain int32, statPtr uintptr) int32 {
			st := (*Stat)(unsafe.Pointer(statPtr))
			st.Size = 4 * BlockSize
			st.NrParts = 2
			st.PartsSize[0] = 3 * BlockSize
			st.PartsSize[1] = BlockSize
			return 0
		}

		r := &Reader{}
		r.markOpen(3)
		st, err := r.FileStat(1, ReadTitleVOBs)
		Expect(err).To(BeNil())
		Expect(st.Size).To(Equal(int64(4 * BlockSize)))
		Expect(st.NrParts).To(Equal(int32(2)))
		Expect(st.PartsSize[0]).To(Equal(int64(3 * BlockSize)))
	})
})
