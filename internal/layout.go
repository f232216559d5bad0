package dvdbind

import (
	"encoding/binary"
	"fmt"
)

// FieldKind classifies how a native struct field occupies memory.
type FieldKind int

const (
	KindInteger FieldKind = iota
	KindPointer
	KindOpaquePointer
	KindFuncPointer
	KindBitfield
	KindStruct
	KindUnion
	KindOpaque
)

// pointerSize is the data/function pointer width of every supported
// variant. The bound libraries only ship 64-bit on the supported
// platforms.
const pointerSize = 8

// Field describes one member of a native struct.
//
// Size is the byte width of an integer, the storage-unit width of a
// bitfield, or the byte length of an opaque run. Bits is the bitfield
// width. Count > 1 declares a fixed array of the field. Elem carries
// the nested descriptor for struct members and the (possibly still
// shell) target for typed pointers. Variants carries the arms of a
// union member.
type Field struct {
	Name     string
	Kind     FieldKind
	Size     int
	Bits     int
	Count    int
	Elem     *StructDesc
	Variants []Field
}

func FieldU8(name string) Field  { return Field{Name: name, Kind: KindInteger, Size: 1} }
func FieldU16(name string) Field { return Field{Name: name, Kind: KindInteger, Size: 2} }
func FieldU32(name string) Field { return Field{Name: name, Kind: KindInteger, Size: 4} }
func FieldU64(name string) Field { return Field{Name: name, Kind: KindInteger, Size: 8} }
func FieldInt(name string) Field { return Field{Name: name, Kind: KindInteger, Size: 4} }

// FieldOffT is an off_t sized integer on the active variant.
func FieldOffT(name string) Field {
	size := 8
	if activeVariant != nil {
		size = activeVariant.offTSize
	}
	return Field{Name: name, Kind: KindInteger, Size: size}
}

// FieldSizeT is a size_t sized integer on the active variant.
func FieldSizeT(name string) Field {
	size := 8
	if activeVariant != nil {
		size = activeVariant.sizeTSize
	}
	return Field{Name: name, Kind: KindInteger, Size: size}
}

// FieldPtr is a typed pointer to another described struct. The target
// may still be a shell; pointers never require a complete target.
func FieldPtr(name string, elem *StructDesc) Field {
	return Field{Name: name, Kind: KindPointer, Size: pointerSize, Elem: elem}
}

// FieldOpaquePtr is a pointer whose target is never described.
func FieldOpaquePtr(name string) Field {
	return Field{Name: name, Kind: KindOpaquePointer, Size: pointerSize}
}

// FieldFuncPtr is a native function pointer slot.
func FieldFuncPtr(name string) Field {
	return Field{Name: name, Kind: KindFuncPointer, Size: pointerSize}
}

// FieldBits is a bitfield of the given width inside a storage unit of
// unitSize bytes.
func FieldBits(name string, unitSize, bits int) Field {
	return Field{Name: name, Kind: KindBitfield, Size: unitSize, Bits: bits}
}

// FieldStruct embeds another described struct by value. The element
// must be complete before this struct can be laid out.
func FieldStruct(name string, elem *StructDesc) Field {
	return Field{Name: name, Kind: KindStruct, Elem: elem}
}

// FieldUnion overlays the given variant fields at one offset.
func FieldUnion(name string, variants ...Field) Field {
	return Field{Name: name, Kind: KindUnion, Variants: variants}
}

// FieldBytes is an opaque run used where a member has no safe host
// representation but its size is known.
func FieldBytes(name string, n int) Field {
	return Field{Name: name, Kind: KindOpaque, Size: n}
}

// Array repeats f count times.
func Array(f Field, count int) Field {
	f.Count = count
	return f
}

// fieldLayout is the frozen placement of one field.
type fieldLayout struct {
	field      Field
	byteOffset int
	bitOffset  int // bit position within the bytes at byteOffset, bitfields only
	totalSize  int // bytes spanned, including array repetition
}

// StructDesc is the layout descriptor for one native struct. A
// descriptor starts as a shell (name only, usable as a pointer
// target) and becomes complete when its field list is applied. Offsets
// are computed once and frozen at first use.
type StructDesc struct {
	name     string
	packed   bool
	fields   []Field
	complete bool
	laid     bool
	size     int
	align    int
	byName   map[string]*fieldLayout
	ordered  []*fieldLayout
}

// NewShell declares a struct by name only. A shell satisfies pointer
// fields but cannot be embedded by value until completed.
func NewShell(name string) *StructDesc {
	return &StructDesc{name: name}
}

// NewStruct declares and immediately completes a struct.
func NewStruct(name string, packed bool, fields ...Field) *StructDesc {
	d := NewShell(name)
	if err := d.setFields(packed, fields); err != nil {
		panic(err)
	}
	return d
}

func (d *StructDesc) Name() string { return d.name }

// Complete reports whether the field list has been applied.
func (d *StructDesc) Complete() bool { return d.complete }

// setFields applies the field list. It is the single patch point for
// shells; applying twice is a defect.
func (d *StructDesc) setFields(packed bool, fields []Field) error {
	if d.complete {
		return fmt.Errorf("struct %s: fields already applied", d.name)
	}
	d.packed = packed
	d.fields = fields
	d.complete = true
	return nil
}

// valueDeps returns the names of structs this descriptor embeds by
// value that are still shells. Pointer fields never contribute.
func (d *StructDesc) valueDeps() []string {
	var deps []string
	for _, f := range d.fields {
		if f.Kind == KindStruct && f.Elem != nil && !f.Elem.complete {
			deps = append(deps, f.Elem.name)
		}
	}
	return deps
}

func alignUp(n, a int) int {
	if a <= 1 {
		return n
	}
	return (n + a - 1) / a * a
}

func (d *StructDesc) fieldAlign(f Field) (int, error) {
	if d.packed {
		return 1, nil
	}
	switch f.Kind {
	case KindInteger, KindBitfield:
		return f.Size, nil
	case KindPointer, KindOpaquePointer, KindFuncPointer:
		return pointerSize, nil
	case KindOpaque:
		return 1, nil
	case KindStruct:
		if err := f.Elem.ensureLayout(); err != nil {
			return 0, err
		}
		return f.Elem.align, nil
	case KindUnion:
		a := 1
		for _, v := range f.Variants {
			va, err := d.fieldAlign(v)
			if err != nil {
				return 0, err
			}
			if va > a {
				a = va
			}
		}
		return a, nil
	}
	return 0, fmt.Errorf("%w: %s.%s", ErrUnrepresentableField, d.name, f.Name)
}

func (d *StructDesc) fieldSize(f Field) (int, error) {
	switch f.Kind {
	case KindInteger, KindOpaque:
		return f.Size, nil
	case KindPointer, KindOpaquePointer, KindFuncPointer:
		return pointerSize, nil
	case KindStruct:
		if err := f.Elem.ensureLayout(); err != nil {
			return 0, err
		}
		return f.Elem.size, nil
	case KindUnion:
		s := 0
		for _, v := range f.Variants {
			vs, err := d.unionArmSize(v)
			if err != nil {
				return 0, err
			}
			if vs > s {
				s = vs
			}
		}
		return s, nil
	}
	return 0, fmt.Errorf("%w: %s.%s", ErrUnrepresentableField, d.name, f.Name)
}

// unionArmSize sizes one union arm, where a bitfield arm occupies its
// storage unit.
func (d *StructDesc) unionArmSize(f Field) (int, error) {
	if f.Kind == KindBitfield {
		n := f.Size
		if f.Count > 1 {
			n *= f.Count
		}
		return n, nil
	}
	n, err := d.fieldSize(f)
	if err != nil {
		return 0, err
	}
	if f.Count > 1 {
		n *= f.Count
	}
	return n, nil
}

// ensureLayout computes and freezes offsets. The walk reproduces the
// native compiler's rules: natural alignment or packed(1); bitfields
// LSB-first within their storage unit, with unit-boundary placement
// when unpacked and bit-contiguous allocation when packed; unions
// sized to their widest arm.
func (d *StructDesc) ensureLayout() error {
	if d.laid {
		return nil
	}
	if !d.complete {
		return fmt.Errorf("struct %s: layout of incomplete shell", d.name)
	}
	d.byName = make(map[string]*fieldLayout, len(d.fields))
	d.align = 1

	bitCursor := 0 // absolute position in bits from struct start
	inBitRun := false

	for i := range d.fields {
		f := d.fields[i]
		if f.Kind == KindBitfield {
			unitBits := f.Size * 8
			count := f.Count
			if count < 1 {
				count = 1
			}
			for rep := 0; rep < count; rep++ {
				if !d.packed {
					if bitCursor%unitBits+f.Bits > unitBits {
						bitCursor = alignUp(bitCursor, unitBits)
					}
				}
				if rep == 0 {
					fl := &fieldLayout{
						field:      f,
						byteOffset: bitCursor / 8,
						bitOffset:  bitCursor % 8,
						totalSize:  (f.Bits*count + 7) / 8,
					}
					d.byName[f.Name] = fl
					d.ordered = append(d.ordered, fl)
				}
				bitCursor += f.Bits
			}
			if !d.packed && f.Size > d.align {
				d.align = f.Size
			}
			inBitRun = true
			continue
		}

		// A non-bitfield member closes any open bit run.
		if inBitRun {
			bitCursor = alignUp(bitCursor, 8)
			inBitRun = false
		}
		a, err := d.fieldAlign(f)
		if err != nil {
			return err
		}
		s, err := d.fieldSize(f)
		if err != nil {
			return err
		}
		count := f.Count
		if count < 1 {
			count = 1
		}
		off := alignUp(bitCursor/8, a)
		fl := &fieldLayout{field: f, byteOffset: off, bitOffset: -1, totalSize: s * count}
		d.byName[f.Name] = fl
		d.ordered = append(d.ordered, fl)
		bitCursor = (off + s*count) * 8
		if a > d.align {
			d.align = a
		}
	}

	d.size = alignUp(alignUp(bitCursor, 8)/8, d.align)
	d.laid = true
	return nil
}

// Size returns the computed byte size, laying the struct out on first
// use.
func (d *StructDesc) Size() int {
	if err := d.ensureLayout(); err != nil {
		panic(err)
	}
	return d.size
}

// Align returns the computed alignment.
func (d *StructDesc) Align() int {
	if err := d.ensureLayout(); err != nil {
		panic(err)
	}
	return d.align
}

// AssertSize checks the computed size against a published constant.
// A mismatch is a bind-time defect.
func (d *StructDesc) AssertSize(want int) {
	if got := d.Size(); got != want {
		panic(fmt.Errorf("%w: %s is %d bytes, want %d", ErrLayoutSize, d.name, got, want))
	}
}

// AssertOffset checks a member's computed offset against a published
// constant.
func (d *StructDesc) AssertOffset(name string, want int) {
	got, err := d.OffsetOf(name)
	if err != nil {
		panic(err)
	}
	if got != want {
		panic(fmt.Errorf("%w: %s.%s at offset %d, want %d", ErrLayoutSize, d.name, name, got, want))
	}
}

func (d *StructDesc) lookup(name string) (*fieldLayout, error) {
	if err := d.ensureLayout(); err != nil {
		return nil, err
	}
	fl, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("struct %s: no field %s", d.name, name)
	}
	return fl, nil
}

// OffsetOf returns the byte offset of a member. For bitfields this is
// the byte holding the field's least significant bit.
func (d *StructDesc) OffsetOf(name string) (int, error) {
	fl, err := d.lookup(name)
	if err != nil {
		return 0, err
	}
	return fl.byteOffset, nil
}

// BitRange returns the placement of a bitfield member as byte offset,
// bit offset within that byte (LSB first) and width in bits.
func (d *StructDesc) BitRange(name string) (byteOff, bitOff, width int, err error) {
	fl, err := d.lookup(name)
	if err != nil {
		return 0, 0, 0, err
	}
	if fl.field.Kind != KindBitfield {
		return 0, 0, 0, fmt.Errorf("struct %s: field %s is not a bitfield", d.name, name)
	}
	return fl.byteOffset, fl.bitOffset, fl.field.Bits, nil
}

// Uint reads an integer or bitfield member from raw struct bytes,
// little-endian.
func (d *StructDesc) Uint(raw []byte, name string) (uint64, error) {
	fl, err := d.lookup(name)
	if err != nil {
		return 0, err
	}
	switch fl.field.Kind {
	case KindBitfield:
		return readBits(raw, fl.byteOffset*8+fl.bitOffset, fl.field.Bits), nil
	case KindInteger, KindPointer, KindOpaquePointer, KindFuncPointer:
		return readUint(raw[fl.byteOffset:], fl.field.Size), nil
	}
	return 0, fmt.Errorf("struct %s: field %s is not scalar", d.name, name)
}

// PutUint writes an integer or bitfield member into raw struct bytes,
// little-endian.
func (d *StructDesc) PutUint(raw []byte, name string, v uint64) error {
	fl, err := d.lookup(name)
	if err != nil {
		return err
	}
	switch fl.field.Kind {
	case KindBitfield:
		writeBits(raw, fl.byteOffset*8+fl.bitOffset, fl.field.Bits, v)
		return nil
	case KindInteger, KindPointer, KindOpaquePointer, KindFuncPointer:
		writeUint(raw[fl.byteOffset:], fl.field.Size, v)
		return nil
	}
	return fmt.Errorf("struct %s: field %s is not scalar", d.name, name)
}

func readUint(b []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}

func writeUint(b []byte, size int, v uint64) {
	switch size {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, v)
	}
}

// readBits extracts width bits starting at an absolute bit position,
// LSB first within each byte.
func readBits(raw []byte, bitPos, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		p := bitPos + i
		if raw[p/8]&(1<<(p%8)) != 0 {
			v |= 1 << i
		}
	}
	return v
}

func writeBits(raw []byte, bitPos, width int, v uint64) {
	for i := 0; i < width; i++ {
		p := bitPos + i
		if v&(1<<i) != 0 {
			raw[p/8] |= 1 << (p % 8)
		} else {
			raw[p/8] &^= 1 << (p % 8)
		}
	}
}
