package lsm303dlhc

import (
	"fmt"

	"github.com/sunsided/lsm303dlhc/accel"
	"github.com/sunsided/lsm303dlhc/mag"
	"github.com/sunsided/lsm303dlhc/regio"
)

// An Option configures a device and returns an Option that restores the
// previous setting. Options talk to the hardware; they are applied through
// Options or passed to New.
type Option func(d *Device) (Option, error)

// Options applies configuration options in order and returns the undo
// Option of the last one, so a temporary setting can be restored:
//
//	prev, err := d.Options(lsm303dlhc.AccelDataRate(accel.Odr400Hz))
//	...
//	_, err = d.Options(prev)
func (d *Device) Options(options ...Option) (Option, error) {
	var prev Option
	for _, opt := range options {
		p, err := opt(d)
		if err != nil {
			return nil, err
		}
		prev = p
	}
	return prev, nil
}

// AccelDataRate sets the accelerometer's output data rate.
// accel.OdrPowerDown stops the accelerometer.
func AccelDataRate(odr accel.Odr) Option {
	return func(d *Device) (Option, error) {
		var old accel.Odr
		_, err := regio.Modify(d.bus, func(r accel.Control1) accel.Control1 {
			old = r.DataRate()
			return r.WithDataRate(odr)
		})
		if err != nil {
			return nil, fmt.Errorf("lsm303dlhc: could not set accelerometer data rate: %w", err)
		}
		return AccelDataRate(old), nil
	}
}

// AccelScale sets the accelerometer's full-scale range.
func AccelScale(scale accel.Scale) Option {
	return func(d *Device) (Option, error) {
		var old accel.Scale
		_, err := regio.Modify(d.bus, func(r accel.Control4) accel.Control4 {
			old = r.Scale()
			return r.WithScale(scale)
		})
		if err != nil {
			return nil, fmt.Errorf("lsm303dlhc: could not set accelerometer scale: %w", err)
		}
		return AccelScale(old), nil
	}
}

// HighResolution enables or disables the accelerometer's high-resolution
// output mode. Mutually exclusive with LowPower.
func HighResolution(enabled bool) Option {
	return func(d *Device) (Option, error) {
		var old bool
		_, err := regio.Modify(d.bus, func(r accel.Control4) accel.Control4 {
			old = r.HighResolution()
			return r.WithHighResolution(enabled)
		})
		if err != nil {
			return nil, fmt.Errorf("lsm303dlhc: could not set high-resolution mode: %w", err)
		}
		return HighResolution(old), nil
	}
}

// LowPower enables or disables the accelerometer's low-power mode. The
// rate codes above 200 Hz change meaning in low-power mode; see accel.Odr.
func LowPower(enabled bool) Option {
	return func(d *Device) (Option, error) {
		var old bool
		_, err := regio.Modify(d.bus, func(r accel.Control1) accel.Control1 {
			old = r.LowPower()
			return r.WithLowPower(enabled)
		})
		if err != nil {
			return nil, fmt.Errorf("lsm303dlhc: could not set low-power mode: %w", err)
		}
		return LowPower(old), nil
	}
}

// BlockDataUpdate makes the accelerometer hold the output registers of a
// sample until both bytes have been read, preventing a burst from mixing
// two samples.
func BlockDataUpdate(enabled bool) Option {
	return func(d *Device) (Option, error) {
		var old bool
		_, err := regio.Modify(d.bus, func(r accel.Control4) accel.Control4 {
			old = r.BlockDataUpdate()
			return r.WithBlockDataUpdate(enabled)
		})
		if err != nil {
			return nil, fmt.Errorf("lsm303dlhc: could not set block data update: %w", err)
		}
		return BlockDataUpdate(old), nil
	}
}

// MagDataRate sets the magnetometer's output data rate for continuous
// conversion.
func MagDataRate(odr mag.Odr) Option {
	return func(d *Device) (Option, error) {
		var old mag.Odr
		_, err := regio.Modify(d.bus, func(r mag.ConfigA) mag.ConfigA {
			old = r.DataRate()
			return r.WithDataRate(odr)
		})
		if err != nil {
			return nil, fmt.Errorf("lsm303dlhc: could not set magnetometer data rate: %w", err)
		}
		return MagDataRate(old), nil
	}
}

// MagGain sets the magnetometer's gain, choosing the full-scale field
// range and the per-axis LSB/Gauss factors.
func MagGain(gain mag.Gain) Option {
	return func(d *Device) (Option, error) {
		var old mag.Gain
		_, err := regio.Modify(d.bus, func(r mag.ConfigB) mag.ConfigB {
			old = r.Gain()
			return r.WithGain(gain)
		})
		if err != nil {
			return nil, fmt.Errorf("lsm303dlhc: could not set magnetometer gain: %w", err)
		}
		return MagGain(old), nil
	}
}

// MagSleep puts the magnetometer to sleep or wakes it into continuous
// conversion. The device powers up asleep.
func MagSleep(asleep bool) Option {
	return func(d *Device) (Option, error) {
		var old bool
		_, err := regio.Modify(d.bus, func(r mag.Mode) mag.Mode {
			old = r.Sleep() || r.SingleConversion()
			return r.WithSleep(asleep).WithSingleConversion(asleep)
		})
		if err != nil {
			return nil, fmt.Errorf("lsm303dlhc: could not set magnetometer mode: %w", err)
		}
		return MagSleep(old), nil
	}
}

// TemperatureSensor enables or disables the temperature sensor.
// Temperature enables it on demand; this option exists to switch it off
// again or to enable it up front.
func TemperatureSensor(enabled bool) Option {
	return func(d *Device) (Option, error) {
		var old bool
		_, err := regio.Modify(d.bus, func(r mag.ConfigA) mag.ConfigA {
			old = r.TempEnabled()
			return r.WithTempEnabled(enabled)
		})
		if err != nil {
			return nil, fmt.Errorf("lsm303dlhc: could not set temperature sensor: %w", err)
		}
		return TemperatureSensor(old), nil
	}
}
