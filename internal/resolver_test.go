package dvdbind

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("forward declaration registry", func() {
	It("lays out a self referential list node through its shell", func() {
		r := NewRegistry()
		node := r.Declare("node")
		Expect(r.Define("node", false,
			FieldU32("value"),
			FieldPtr("next", node),
		)).To(Succeed())
		Expect(r.Finalize()).To(Succeed())

		d, ok := r.Struct("node")
		Expect(ok).To(BeTrue())
		Expect(d.Size()).To(Equal(16))
		off, err := d.OffsetOf("next")
		Expect(err).To(BeNil())
		Expect(off).To(Equal(8))
	})

	It("defers a definition until its by-value dependency completes", func() {
		r := NewRegistry()
		inner := r.Declare("inner")
		Expect(r.Define("outer", false,
			FieldU8("tag"),
			FieldStruct("body", inner),
		)).To(Succeed())

		outer, _ := r.Struct("outer")
		Expect(outer.Complete()).To(BeFalse())

		Expect(r.Define("inner", false, FieldU32("word"))).To(Succeed())
		Expect(outer.Complete()).To(BeTrue())
		Expect(r.Finalize()).To(Succeed())
		Expect(outer.Size()).To(Equal(8))
	})

	It("cascades through a chain of deferred definitions", func() {
		r := NewRegistry()
		b := r.Declare("b")
		c := r.Declare("c")
		Expect(r.Define("a", false, FieldStruct("b", b))).To(Succeed())
		Expect(r.Define("b", false, FieldStruct("c", c))).To(Succeed())

		a, _ := r.Struct("a")
		Expect(a.Complete()).To(BeFalse())

		Expect(r.Define("c", false, FieldU16("leaf"))).To(Succeed())
		Expect(a.Complete()).To(BeTrue())
		Expect(r.Finalize()).To(Succeed())
		Expect(a.Size()).To(Equal(2))
	})

	It("rejects a second definition of the same struct", func() {
		r := NewRegistry()
		Expect(r.Define("once", false, FieldU8("x"))).To(Succeed())
		Expect(r.Define("once", false, FieldU8("y"))).To(MatchError(ContainSubstring("defined twice")))
	})

	It("reports a by-value cycle at finalize", func() {
		r := NewRegistry()
		a := r.Declare("a")
		b := r.Declare("b")
		Expect(r.Define("a", false, FieldStruct("b", b))).To(Succeed())
		Expect(r.Define("b", false, FieldStruct("a", a))).To(Succeed())

		err := r.Finalize()
		Expect(err).To(MatchError(ErrIrreducibleCycle))
		Expect(err.Error()).To(ContainSubstring("a"))
		Expect(err.Error()).To(ContainSubstring("b"))
	})

	It("tolerates shells that are only ever pointer targets", func() {
		r := NewRegistry()
		opaque := r.Declare("opaque")
		Expect(r.Define("holder", false, FieldPtr("p", opaque))).To(Succeed())
		Expect(r.Finalize()).To(Succeed())

		holder, _ := r.Struct("holder")
		Expect(holder.Size()).To(Equal(8))
		Expect(opaque.Complete()).To(BeFalse())
	})

	It("completes the navigation context only after the packet records", func() {
		nav, ok := nativeStructs.Struct("dvdnav_s")
		Expect(ok).To(BeTrue())
		Expect(nav.Complete()).To(BeTrue())

		pciOff, err := nav.OffsetOf("pci")
		Expect(err).To(BeNil())
		dsiOff, err := nav.OffsetOf("dsi")
		Expect(err).To(BeNil())
		Expect(dsiOff - pciOff).To(BeNumerically(">=", pciSize))
	})
})
