package lsm303dlhc

import (
	"errors"
	"math"
	"testing"

	"periph.io/x/periph/conn/physic"

	"github.com/sunsided/lsm303dlhc/accel"
	"github.com/sunsided/lsm303dlhc/mag"
)

// fakeBus emulates both halves of the sensor: a register file per device
// address, with the accelerometer's auto-increment bit stripped from
// sub-addresses.
type fakeBus struct {
	regs map[uint16]map[byte]byte
}

func newFakeBus() *fakeBus {
	return &fakeBus{regs: map[uint16]map[byte]byte{
		accel.Address: {
			accel.RegCtrl1: 0x07,
		},
		mag.Address: {
			mag.RegConfigA: 0x10,
			mag.RegConfigB: 0x20,
			mag.RegMode:    0x03,
			mag.RegIdentA:  mag.IdentAValue,
			mag.RegIdentB:  mag.IdentBValue,
			mag.RegIdentC:  mag.IdentCValue,
		},
	}}
}

func (f *fakeBus) String() string                  { return "fake" }
func (f *fakeBus) SetSpeed(physic.Frequency) error { return nil }

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	file, ok := f.regs[addr]
	if !ok {
		panic("transaction for a foreign device")
	}
	sub := w[0]
	if addr == accel.Address {
		sub &^= 0x80
	}
	if len(r) == 0 {
		for i, b := range w[1:] {
			file[sub+byte(i)] = b
		}
		return nil
	}
	for i := range r {
		r[i] = file[sub+byte(i)]
	}
	return nil
}

func TestNewWithBusWakesDevice(t *testing.T) {
	bus := newFakeBus()
	if _, err := NewWithBus(bus); err != nil {
		t.Fatalf("NewWithBus: %v", err)
	}

	if got := bus.regs[accel.Address][accel.RegCtrl1]; got != 0x57 {
		t.Errorf("CTRL_REG1_A = %#02x, want 0x57 (100 Hz, all axes)", got)
	}
	if got := bus.regs[mag.Address][mag.RegMode]; got != 0x00 {
		t.Errorf("MR_REG_M = %#02x, want 0x00 (continuous conversion)", got)
	}
}

func TestNewWithBusRejectsUnknownDevice(t *testing.T) {
	bus := newFakeBus()
	bus.regs[mag.Address][mag.RegIdentB] = 0xFF

	_, err := NewWithBus(bus)
	if !errors.Is(err, ErrNotDevice) {
		t.Fatalf("NewWithBus = %v, want ErrNotDevice", err)
	}
	// Nothing may be configured on an unidentified device.
	if got := bus.regs[accel.Address][accel.RegCtrl1]; got != 0x07 {
		t.Errorf("CTRL_REG1_A = %#02x, want untouched 0x07", got)
	}
}

func TestNewWithBusAppliesOptions(t *testing.T) {
	bus := newFakeBus()
	_, err := NewWithBus(bus,
		AccelDataRate(accel.Odr400Hz),
		AccelScale(accel.Scale8G),
		MagGain(mag.Gain4_0),
		MagDataRate(mag.Odr75Hz),
	)
	if err != nil {
		t.Fatalf("NewWithBus: %v", err)
	}

	if got := bus.regs[accel.Address][accel.RegCtrl1]; got != 0x77 {
		t.Errorf("CTRL_REG1_A = %#02x, want 0x77 (400 Hz, all axes)", got)
	}
	if got := bus.regs[accel.Address][accel.RegCtrl4]; got != 0b0010_0000 {
		t.Errorf("CTRL_REG4_A = %#08b, want FS = ±8g", got)
	}
	if got := bus.regs[mag.Address][mag.RegConfigB]; got != 0b1000_0000 {
		t.Errorf("CRB_REG_M = %#08b, want GN = ±4.0 Gauss", got)
	}
	if got := bus.regs[mag.Address][mag.RegConfigA]; got != 0b0001_1000 {
		t.Errorf("CRA_REG_M = %#08b, want DO = 75 Hz", got)
	}
}

func TestOptionsRestorePreviousSetting(t *testing.T) {
	bus := newFakeBus()
	d, err := NewWithBus(bus)
	if err != nil {
		t.Fatalf("NewWithBus: %v", err)
	}

	prev, err := d.Options(AccelDataRate(accel.Odr400Hz))
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if got := bus.regs[accel.Address][accel.RegCtrl1]; got != 0x77 {
		t.Fatalf("CTRL_REG1_A = %#02x, want 0x77", got)
	}

	if _, err := d.Options(prev); err != nil {
		t.Fatalf("Options(prev): %v", err)
	}
	if got := bus.regs[accel.Address][accel.RegCtrl1]; got != 0x57 {
		t.Errorf("CTRL_REG1_A = %#02x, want restored 0x57", got)
	}
}

func TestAccelerationNorm(t *testing.T) {
	bus := newFakeBus()
	d, err := NewWithBus(bus, AccelScale(accel.Scale4G))
	if err != nil {
		t.Fatalf("NewWithBus: %v", err)
	}

	// 16384 counts on Z at ±4 g full scale (16/65536 g per count).
	file := bus.regs[accel.Address]
	file[accel.RegOutZLow] = 0x00
	file[accel.RegOutZHigh] = 0x40

	x, y, z, err := d.AccelerationNorm()
	if err != nil {
		t.Fatalf("AccelerationNorm: %v", err)
	}
	if x != 0 || y != 0 {
		t.Errorf("(x, y) = (%g, %g), want (0, 0)", x, y)
	}
	if math.Abs(z-4.0) > 1e-9 {
		t.Errorf("z = %g g, want 4.0 g", z)
	}
}

func TestMagneticFieldNorm(t *testing.T) {
	bus := newFakeBus()
	d, err := NewWithBus(bus) // default gain ±1.3 Gauss: 1100 LSB/Gauss XY, 980 Z
	if err != nil {
		t.Fatalf("NewWithBus: %v", err)
	}

	file := bus.regs[mag.Address]
	file[mag.RegOutXHigh], file[mag.RegOutXLow] = 0x02, 0x26 // 550
	file[mag.RegOutZHigh], file[mag.RegOutZLow] = 0x03, 0xD4 // 980
	file[mag.RegOutYHigh], file[mag.RegOutYLow] = 0xFF, 0xFF // -1

	x, y, z, err := d.MagneticFieldNorm()
	if err != nil {
		t.Fatalf("MagneticFieldNorm: %v", err)
	}
	if math.Abs(x-0.5) > 1e-9 {
		t.Errorf("x = %g Gs, want 0.5 Gs", x)
	}
	if math.Abs(y-(-1.0/1100.0)) > 1e-9 {
		t.Errorf("y = %g Gs, want %g Gs", y, -1.0/1100.0)
	}
	if math.Abs(z-1.0) > 1e-9 {
		t.Errorf("z = %g Gs, want 1.0 Gs", z)
	}
}

func TestTemperatureEnablesSensor(t *testing.T) {
	bus := newFakeBus()
	d, err := NewWithBus(bus)
	if err != nil {
		t.Fatalf("NewWithBus: %v", err)
	}

	file := bus.regs[mag.Address]
	file[mag.RegTempOutHigh] = 0x01
	file[mag.RegTempOutLow] = 0x80 // 24 counts at 8 LSB/°C

	got, err := d.Temperature()
	if err != nil {
		t.Fatalf("Temperature: %v", err)
	}
	if math.Abs(got-3.0) > 1e-9 {
		t.Errorf("Temperature = %g °C, want 3.0 °C", got)
	}
	if file[mag.RegConfigA]&0x80 == 0 {
		t.Error("CRA_REG_M TEMP_EN not set after Temperature")
	}
}

func TestSampleRate(t *testing.T) {
	bus := newFakeBus()
	d, err := NewWithBus(bus, AccelDataRate(accel.Odr1344Hz))
	if err != nil {
		t.Fatalf("NewWithBus: %v", err)
	}

	hz, err := d.SampleRate()
	if err != nil {
		t.Fatalf("SampleRate: %v", err)
	}
	if hz != 1344 {
		t.Errorf("SampleRate = %g Hz, want 1344 Hz", hz)
	}

	// The same rate code means 5.376 kHz in low-power mode.
	if _, err := d.Options(LowPower(true)); err != nil {
		t.Fatalf("Options: %v", err)
	}
	hz, err = d.SampleRate()
	if err != nil {
		t.Fatalf("SampleRate: %v", err)
	}
	if hz != 5376 {
		t.Errorf("SampleRate = %g Hz, want 5376 Hz", hz)
	}
}

func TestCloseParksDevice(t *testing.T) {
	bus := newFakeBus()
	d, err := NewWithBus(bus)
	if err != nil {
		t.Fatalf("NewWithBus: %v", err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if got := bus.regs[accel.Address][accel.RegCtrl1]; got&0xF0 != 0 {
		t.Errorf("CTRL_REG1_A = %#02x, want power-down rate", got)
	}
	if got := bus.regs[mag.Address][mag.RegMode]; got != 0x03 {
		t.Errorf("MR_REG_M = %#02x, want 0x03 (sleep)", got)
	}
}
