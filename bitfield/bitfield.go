// Package bitfield packs and unpacks named bit spans inside 8-bit device
// registers.
//
// Fields are addressed most-significant-bit first, matching the layout used
// by register tables in sensor datasheets: Offset 0 is bit 7, so
// Field{Offset: 0, Width: 4} covers bits 7..4. The same Field value is used
// for both directions, which makes a mismatched bit order between encode and
// decode impossible.
package bitfield

import (
	"errors"
	"fmt"
)

// ErrInvalidField is returned when a value does not fit the declared width
// of a field.
var ErrInvalidField = errors.New("bitfield: value does not fit field width")

// Field is a bit span inside an 8-bit register. Offset counts from the
// most-significant bit.
type Field struct {
	Offset uint
	Width  uint
}

// Flag returns a single-bit field at the given MSB-first offset.
func Flag(offset uint) Field {
	return Field{Offset: offset, Width: 1}
}

// shift is the distance of the field's least-significant bit from bit 0.
func (f Field) shift() uint {
	return 8 - f.Offset - f.Width
}

// Mask returns the bits of the register covered by the field.
func (f Field) Mask() uint8 {
	return f.Max() << f.shift()
}

// Max returns the largest value the field can hold.
func (f Field) Max() uint8 {
	return 1<<f.Width - 1
}

// Get extracts the field's value from a register byte.
func (f Field) Get(bits uint8) uint8 {
	return (bits >> f.shift()) & f.Max()
}

// IsSet reports whether a single-bit field is set.
func (f Field) IsSet(bits uint8) bool {
	return f.Get(bits) != 0
}

// Put stores v in the field and returns the updated register byte. Bits of v
// beyond the field width are discarded; callers that cannot guarantee the
// value fits should call Check first.
func (f Field) Put(bits, v uint8) uint8 {
	return bits&^f.Mask() | (v&f.Max())<<f.shift()
}

// PutBool stores a single-bit field.
func (f Field) PutBool(bits uint8, v bool) uint8 {
	if v {
		return f.Put(bits, 1)
	}
	return f.Put(bits, 0)
}

// Check returns ErrInvalidField if v does not fit the field width.
func (f Field) Check(v uint8) error {
	if v > f.Max() {
		return fmt.Errorf("%w: %#02x exceeds %d bit(s)", ErrInvalidField, v, f.Width)
	}
	return nil
}
