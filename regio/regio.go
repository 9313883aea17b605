// Package regio implements the register transaction protocol shared by both
// LSM303DLHC sub-devices.
//
// Registers are typed bytes that carry their own bus location, so a read or
// write is fully described by the register type alone. Errors from the
// underlying transport are wrapped for context and otherwise passed through
// unchanged: no retries, no timeouts, no translation. Use errors.Is or
// errors.As to reach the transport's error.
package regio

import (
	"fmt"

	"periph.io/x/periph/conn/i2c"
)

// Register is an 8-bit device register with a fixed bus location.
type Register interface {
	~uint8

	// DevAddr returns the 7-bit address of the device the register
	// belongs to.
	DevAddr() uint16

	// Addr returns the register's sub-address within the device.
	Addr() byte
}

// Writable marks registers the device accepts writes to. Read-only registers
// do not implement it, so writing one does not compile.
type Writable interface {
	Register

	// Writable is a marker; it does nothing.
	Writable()
}

// Read reads register R over the bus.
func Read[R Register](bus i2c.Bus) (R, error) {
	var r R
	buf := make([]byte, 1)
	if err := bus.Tx(r.DevAddr(), []byte{r.Addr()}, buf); err != nil {
		return 0, fmt.Errorf("regio: could not read register %#02x: %w", r.Addr(), err)
	}
	return R(buf[0]), nil
}

// Write writes r to its register over the bus.
func Write[R Writable](bus i2c.Bus, r R) error {
	if err := bus.Tx(r.DevAddr(), []byte{r.Addr(), byte(r)}, nil); err != nil {
		return fmt.Errorf("regio: could not write register %#02x: %w", r.Addr(), err)
	}
	return nil
}

// Modify reads register R, applies f and writes the result back, returning
// the written value.
//
// The read and the write are two separate bus transactions. If the device or
// another bus master changes the register in between, that change is lost.
// Callers that need atomicity must serialize access themselves.
func Modify[R Writable](bus i2c.Bus, f func(R) R) (R, error) {
	r, err := Read[R](bus)
	if err != nil {
		return 0, err
	}
	r = f(r)
	if err := Write(bus, r); err != nil {
		return 0, err
	}
	return r, nil
}

// ReadBytes reads n consecutive register bytes starting at sub-address
// start. Address-increment behavior is device specific: the accelerometer
// requires bit 7 of the sub-address to be set, while the magnetometer
// increments implicitly but wraps within fixed segments. The sub-device
// packages apply their own quirk before calling this.
func ReadBytes(bus i2c.Bus, devAddr uint16, start byte, n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := bus.Tx(devAddr, []byte{start}, buf); err != nil {
		return nil, fmt.Errorf("regio: could not read %d bytes at %#02x: %w", n, start, err)
	}
	return buf, nil
}

// Combine forms a signed 16-bit two's-complement value from a register pair.
func Combine(lo, hi byte) int16 {
	return int16(uint16(hi)<<8 | uint16(lo))
}
