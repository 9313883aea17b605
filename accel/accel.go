// Package accel maps the accelerometer half of the LSM303DLHC: its register
// catalog at device address 0b0011001 (registers 20h..3Dh) and a session for
// reading acceleration samples.
//
// Register values are typed bytes. Decoding is a conversion and accepts any
// byte; encoding is the inverse conversion, so reserved bits survive
// read-modify-write untouched. Registers the device does not accept writes
// to carry no Writable marker and cannot be passed to regio.Write.
package accel

import (
	"fmt"

	"periph.io/x/periph/conn/i2c"

	"github.com/sunsided/lsm303dlhc/regio"
)

// Dev is a session with the accelerometer on a shared or exclusive bus.
type Dev struct {
	bus i2c.Bus
}

// New returns an accelerometer session on the given bus. The bus must
// already serialize concurrent access if it is shared; see regio.Share.
func New(bus i2c.Bus) *Dev {
	return &Dev{bus: bus}
}

// Bus returns the underlying bus, for use with the generic register
// operations in package regio.
func (d *Dev) Bus() i2c.Bus {
	return d.bus
}

// ReadBytes reads n consecutive registers starting at reg. It sets bit 7 of
// the sub-address, which the accelerometer requires for address
// auto-increment on multi-byte reads.
func (d *Dev) ReadBytes(reg byte, n int) ([]byte, error) {
	buf, err := regio.ReadBytes(d.bus, Address, reg|autoIncrement, n)
	if err != nil {
		return nil, fmt.Errorf("accel: could not read %d bytes at %#02x: %w", n, reg, err)
	}
	return buf, nil
}

// Raw returns one acceleration sample as signed 16-bit counts. Multiply by
// the configured Scale's Resolution to obtain g.
func (d *Dev) Raw() (x, y, z int16, err error) {
	buf, err := d.ReadBytes(RegOutXLow, 6)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("accel: could not read acceleration: %w", err)
	}
	x, y, z = Triple(buf)
	return x, y, z, nil
}

// Status returns the per-axis data-available and overrun flags.
func (d *Dev) Status() (Status, error) {
	return regio.Read[Status](d.bus)
}
