package dvdbind

import (
	"unsafe"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("stream dispatch", func() {
	It("hands the read callback exactly the requested byte count", func() {
		var gotLen int
		cb := &StreamCallbacks{Read: func(buf []byte) int32 {
			gotLen = len(buf)
			for i := range buf {
				buf[i] = 0xaa
			}
			return int32(len(buf))
		}}
		token, _ := registerStream(cb, nil)
		defer callbacks.release(token)

		buf := make([]byte, BlockSize)
		n := dispatchRead(token, uintptr(unsafe.Pointer(&buf[0])), int32(len(buf)))
		Expect(gotLen).To(Equal(BlockSize))
		Expect(n).To(Equal(int32(BlockSize)))
		Expect(buf[0]).To(Equal(byte(0xaa)))
		Expect(buf[BlockSize-1]).To(Equal(byte(0xaa)))
	})

	It("propagates a short read count unchanged", func() {
		cb := &StreamCallbacks{Read: func(buf []byte) int32 { return 512 }}
		token, _ := registerStream(cb, nil)
		defer callbacks.release(token)

		buf := make([]byte, BlockSize)
		Expect(dispatchRead(token, uintptr(unsafe.Pointer(&buf[0])), int32(len(buf)))).To(Equal(int32(512)))
	})

	It("fails a read on an unregistered token without touching the buffer", func() {
		buf := make([]byte, 8)
		Expect(dispatchRead(0, uintptr(unsafe.Pointer(&buf[0])), 8)).To(Equal(int32(-1)))
		Expect(dispatchRead(^uintptr(0)>>1, uintptr(unsafe.Pointer(&buf[0])), 8)).To(Equal(int32(-1)))
	})

	It("maps iovec entries onto the vectored read callback", func() {
		var gotLens []int
		cb := &StreamCallbacks{ReadV: func(bufs [][]byte) int32 {
			total := int32(0)
			for _, b := range bufs {
				gotLens = append(gotLens, len(b))
				total += int32(len(b))
			}
			return total
		}}
		token, _ := registerStream(cb, nil)
		defer callbacks.release(token)

		a := make([]byte, 16)
		b := make([]byte, 32)
		vecs := []iovec{
			{base: uintptr(unsafe.Pointer(&a[0])), length: uintptr(len(a))},
			{base: uintptr(unsafe.Pointer(&b[0])), length: uintptr(len(b))},
		}
		n := dispatchReadv(token, uintptr(unsafe.Pointer(&vecs[0])), int32(len(vecs)))
		Expect(n).To(Equal(int32(48)))
		Expect(gotLens).To(Equal([]int{16, 32}))
	})

	It("falls back on the plain read callback and stops at a short read", func() {
		var calls int
		cb := &StreamCallbacks{Read: func(buf []byte) int32 {
			calls++
			if calls == 2 {
				return int32(len(buf)) / 2
			}
			return int32(len(buf))
		}}
		token, _ := registerStream(cb, nil)
		defer callbacks.release(token)

		a := make([]byte, 8)
		b := make([]byte, 8)
		c := make([]byte, 8)
		vecs := []iovec{
			{base: uintptr(unsafe.Pointer(&a[0])), length: uintptr(len(a))},
			{base: uintptr(unsafe.Pointer(&b[0])), length: uintptr(len(b))},
			{base: uintptr(unsafe.Pointer(&c[0])), length: uintptr(len(c))},
		}
		n := dispatchReadv(token, uintptr(unsafe.Pointer(&vecs[0])), int32(len(vecs)))
		Expect(n).To(Equal(int32(12)))
		Expect(calls).To(Equal(2))
	})

	It("translates the signed reader seek and rejects negative offsets", func() {
		var gotPos uint64
		cb := &StreamCallbacks{Seek: func(position uint64) int32 {
			gotPos = position
			return 0
		}}
		token, _ := registerReaderStream(cb, nil)
		defer callbacks.release(token)

		Expect(dispatchReaderSeek(token, 3*BlockSize)).To(Equal(int32(0)))
		Expect(gotPos).To(Equal(uint64(3 * BlockSize)))
		Expect(dispatchReaderSeek(token, -1)).To(Equal(int32(-1)))
	})
})
