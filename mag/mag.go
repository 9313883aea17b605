// Package mag maps the magnetometer and thermometer half of the LSM303DLHC:
// its register catalog at device address 0b0011110 (registers 00h..0Ch and
// 31h..32h) and a session for reading field and temperature samples.
//
// Register values are typed bytes; see package accel for the shared codec
// conventions. Two catalog quirks matter to callers: the output registers
// come high byte first in X, Z, Y order, and the device powers up asleep.
package mag

import (
	"errors"
	"fmt"

	"periph.io/x/periph/conn/i2c"

	"github.com/sunsided/lsm303dlhc/regio"
)

// ErrNotDevice is returned by Identify when the identification registers do
// not read "H43".
var ErrNotDevice = errors.New("mag: identification registers do not match \"H43\"")

// Dev is a session with the magnetometer on a shared or exclusive bus.
type Dev struct {
	bus i2c.Bus
}

// New returns a magnetometer session on the given bus. The bus must already
// serialize concurrent access if it is shared; see regio.Share.
func New(bus i2c.Bus) *Dev {
	return &Dev{bus: bus}
}

// Bus returns the underlying bus, for use with the generic register
// operations in package regio.
func (d *Dev) Bus() i2c.Bus {
	return d.bus
}

// ReadBytes reads n consecutive registers starting at reg.
//
// The magnetometer increments its register pointer implicitly, but the
// pointer wraps within fixed segments: after OUT_Y_L_M (08h) it returns to
// OUT_X_H_M (03h), and on reaching IRA_REG_M (0Ah) it resets to CRA_REG_M
// (00h). A burst must stay within one segment; crossing a boundary yields
// bytes from the wrapped-to addresses, not an error.
func (d *Dev) ReadBytes(reg byte, n int) ([]byte, error) {
	buf, err := regio.ReadBytes(d.bus, Address, reg, n)
	if err != nil {
		return nil, fmt.Errorf("mag: could not read %d bytes at %#02x: %w", n, reg, err)
	}
	return buf, nil
}

// Raw returns one magnetic field sample as signed 16-bit counts in X, Y, Z
// order, reordered from the device's on-wire X, Z, Y layout. Divide by the
// configured Gain's LSB/Gauss factors to obtain Gauss.
func (d *Dev) Raw() (x, y, z int16, err error) {
	buf, err := d.ReadBytes(RegOutXHigh, 6)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("mag: could not read magnetic field: %w", err)
	}
	x, y, z = Triple(buf)
	return x, y, z, nil
}

// RawTemperature returns the 12-bit temperature reading in sensor counts,
// 8 LSB/°C. The temperature sensor must be enabled in ConfigA.
func (d *Dev) RawTemperature() (int16, error) {
	hi, err := regio.Read[TempOutHigh](d.bus)
	if err != nil {
		return 0, fmt.Errorf("mag: could not read temperature: %w", err)
	}
	lo, err := regio.Read[TempOutLow](d.bus)
	if err != nil {
		return 0, fmt.Errorf("mag: could not read temperature: %w", err)
	}
	return lo.Combine(hi), nil
}

// Status returns the data-ready and lock flags.
func (d *Dev) Status() (Status, error) {
	return regio.Read[Status](d.bus)
}

// Identify verifies the identification registers against their constant
// "H43" contents and returns ErrNotDevice on a mismatch.
func (d *Dev) Identify() error {
	buf, err := d.ReadBytes(RegIdentA, 3)
	if err != nil {
		return fmt.Errorf("mag: could not read identification registers: %w", err)
	}
	if buf[0] != IdentAValue || buf[1] != IdentBValue || buf[2] != IdentCValue {
		return ErrNotDevice
	}
	return nil
}
