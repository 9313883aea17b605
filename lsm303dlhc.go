// Package lsm303dlhc drives the STMicroelectronics LSM303DLHC e-compass, a
// two-part sensor package combining a 3-axis accelerometer with a 3-axis
// magnetometer and thermometer behind one I²C connector.
//
// The two halves answer at independent slave addresses and carry independent
// register maps, exposed as typed registers by the accel and mag
// subpackages. This package wires both halves over one shared bus and offers
// the common configuration and reading paths; anything it does not cover can
// be reached through regio.Read, regio.Write and regio.Modify on the typed
// registers directly.
package lsm303dlhc

import (
	"fmt"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"

	"github.com/sunsided/lsm303dlhc/accel"
	"github.com/sunsided/lsm303dlhc/mag"
	"github.com/sunsided/lsm303dlhc/regio"
)

// ErrNotDevice is returned when the magnetometer identification registers
// do not read "H43".
var ErrNotDevice = mag.ErrNotDevice

// Vec3 is one three-axis sample in sensor counts.
type Vec3 struct {
	X, Y, Z int16
}

// Device is an LSM303DLHC session. Accel and Mag expose the sub-device
// sessions for register-level work.
type Device struct {
	Accel *accel.Dev
	Mag   *mag.Dev

	bus    i2c.Bus
	closer i2c.BusCloser
}

// New returns a new LSM303DLHC device on the named I2C bus ("/dev/i2c-1",
// "I2C1", "1"; an empty name selects the first available bus). It verifies
// the magnetometer's identification registers, wakes the magnetometer into
// continuous conversion (the power-on default is asleep) and brings the
// accelerometer out of power-down at 100 Hz. Pass Options to override.
func New(busName string, opts ...Option) (*Device, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("lsm303dlhc: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("lsm303dlhc: could not open I2C bus: %w", err)
	}

	d, err := NewWithBus(bus, opts...)
	if err != nil {
		bus.Close()
		return nil, err
	}
	d.closer = bus

	return d, nil
}

// NewWithBus is New over a caller-supplied bus. The bus is wrapped so that
// the two sub-device sessions serialize their transactions; Close does not
// close a caller-supplied bus.
func NewWithBus(bus i2c.Bus, opts ...Option) (*Device, error) {
	shared := regio.Share(bus)
	d := &Device{
		Accel: accel.New(shared),
		Mag:   mag.New(shared),
		bus:   shared,
	}

	if err := d.Mag.Identify(); err != nil {
		return nil, fmt.Errorf("lsm303dlhc: %w", err)
	}

	defaults := []Option{
		AccelDataRate(accel.Odr100Hz),
		MagSleep(false),
	}
	if _, err := d.Options(append(defaults, opts...)...); err != nil {
		return nil, err
	}

	return d, nil
}

// Close parks the device (accelerometer power-down, magnetometer sleep)
// and, when New opened the bus, closes it.
func (d *Device) Close() error {
	_, parkErr := d.Options(
		AccelDataRate(accel.OdrPowerDown),
		MagSleep(true),
	)
	if d.closer != nil {
		if err := d.closer.Close(); err != nil {
			return fmt.Errorf("lsm303dlhc: could not close bus: %w", err)
		}
	}
	return parkErr
}

// Acceleration returns one raw acceleration sample in sensor counts.
func (d *Device) Acceleration() (Vec3, error) {
	x, y, z, err := d.Accel.Raw()
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{X: x, Y: y, Z: z}, nil
}

// AccelerationNorm returns one acceleration sample in g, scaled by the
// currently configured full-scale range.
func (d *Device) AccelerationNorm() (x, y, z float64, err error) {
	ctrl, err := regio.Read[accel.Control4](d.bus)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("lsm303dlhc: could not read full-scale configuration: %w", err)
	}
	res := ctrl.Scale().Resolution()

	v, err := d.Acceleration()
	if err != nil {
		return 0, 0, 0, err
	}
	return float64(v.X) * res, float64(v.Y) * res, float64(v.Z) * res, nil
}

// MagneticField returns one raw magnetic field sample in sensor counts,
// in X, Y, Z order.
func (d *Device) MagneticField() (Vec3, error) {
	x, y, z, err := d.Mag.Raw()
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{X: x, Y: y, Z: z}, nil
}

// MagneticFieldNorm returns one magnetic field sample in Gauss, applying
// the per-axis factors of the currently configured gain.
func (d *Device) MagneticFieldNorm() (x, y, z float64, err error) {
	cfg, err := regio.Read[mag.ConfigB](d.bus)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("lsm303dlhc: could not read gain configuration: %w", err)
	}
	gain := cfg.Gain()
	xy, zf := gain.LSBPerGaussXY(), gain.LSBPerGaussZ()
	if xy == 0 || zf == 0 {
		return 0, 0, 0, fmt.Errorf("lsm303dlhc: undocumented gain code %#03b", uint8(gain))
	}

	v, err := d.MagneticField()
	if err != nil {
		return 0, 0, 0, err
	}
	return float64(v.X) / xy, float64(v.Y) / xy, float64(v.Z) / zf, nil
}

// Temperature returns the die temperature in °C, enabling the temperature
// sensor first if it is off. The reading is uncalibrated; the device
// specifies 8 LSB/°C but no absolute offset.
func (d *Device) Temperature() (float64, error) {
	cfg, err := regio.Read[mag.ConfigA](d.bus)
	if err != nil {
		return 0, fmt.Errorf("lsm303dlhc: could not read temperature configuration: %w", err)
	}
	if !cfg.TempEnabled() {
		if err := regio.Write(d.bus, cfg.WithTempEnabled(true)); err != nil {
			return 0, fmt.Errorf("lsm303dlhc: could not enable temperature sensor: %w", err)
		}
	}

	raw, err := d.Mag.RawTemperature()
	if err != nil {
		return 0, err
	}
	return float64(raw) / 8.0, nil
}

// AccelStatus returns the accelerometer's overrun and data-available flags.
func (d *Device) AccelStatus() (accel.Status, error) {
	return d.Accel.Status()
}

// MagStatus returns the magnetometer's data-ready and lock flags.
func (d *Device) MagStatus() (mag.Status, error) {
	return d.Mag.Status()
}

// SampleRate returns the accelerometer's configured sample rate in Hz,
// accounting for the rate codes that differ between normal and low-power
// mode. A power-down device reports 0.
func (d *Device) SampleRate() (float64, error) {
	ctrl, err := regio.Read[accel.Control1](d.bus)
	if err != nil {
		return 0, fmt.Errorf("lsm303dlhc: could not read data rate: %w", err)
	}
	return ctrl.DataRate().Frequency(ctrl.LowPower()), nil
}
