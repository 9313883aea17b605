package accel

import (
	"errors"
	"testing"

	"github.com/sunsided/lsm303dlhc/bitfield"
)

func TestControl1KnownValue(t *testing.T) {
	// 400 Hz, low-power disabled, all axes enabled.
	reg := NewControl1().
		WithDataRate(Odr400Hz).
		WithLowPower(false).
		WithXEnabled(true).
		WithYEnabled(true).
		WithZEnabled(true)

	if byte(reg) != 0b0111_0111 {
		t.Errorf("Control1 = %#08b, want 0b01110111", byte(reg))
	}
}

func TestControl1Default(t *testing.T) {
	reg := NewControl1()
	if byte(reg) != 0x07 {
		t.Fatalf("default = %#02x, want 0x07", byte(reg))
	}
	if reg.DataRate() != OdrPowerDown {
		t.Errorf("default data rate = %v, want power-down", reg.DataRate())
	}
	if !reg.XEnabled() || !reg.YEnabled() || !reg.ZEnabled() {
		t.Error("default should enable all axes")
	}
}

func TestStatusKnownValue(t *testing.T) {
	reg := Status(0b1001_0010)

	checks := []struct {
		name string
		got  bool
		want bool
	}{
		{"Overrun", reg.Overrun(), true},
		{"OverrunZ", reg.OverrunZ(), false},
		{"OverrunY", reg.OverrunY(), false},
		{"OverrunX", reg.OverrunX(), true},
		{"DataAvailable", reg.DataAvailable(), false},
		{"DataAvailableZ", reg.DataAvailableZ(), false},
		{"DataAvailableY", reg.DataAvailableY(), true},
		{"DataAvailableX", reg.DataAvailableX(), false},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

// Re-writing every field with its decoded value must be the identity for
// every byte; reserved bits must pass through untouched.
func TestFieldRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		bits := uint8(b)

		r1 := Control1(bits)
		r1 = r1.WithDataRate(r1.DataRate()).
			WithLowPower(r1.LowPower()).
			WithZEnabled(r1.ZEnabled()).
			WithYEnabled(r1.YEnabled()).
			WithXEnabled(r1.XEnabled())
		if byte(r1) != bits {
			t.Fatalf("Control1 round trip of %#02x = %#02x", bits, byte(r1))
		}

		r4 := Control4(bits)
		r4 = r4.WithBlockDataUpdate(r4.BlockDataUpdate()).
			WithBigEndian(r4.BigEndian()).
			WithScale(r4.Scale()).
			WithHighResolution(r4.HighResolution()).
			WithSPI3Wire(r4.SPI3Wire())
		if byte(r4) != bits {
			t.Fatalf("Control4 round trip of %#02x = %#02x", bits, byte(r4))
		}

		fc := FifoControl(bits)
		fc = fc.WithMode(fc.Mode()).WithTriggerOnInt2(fc.TriggerOnInt2())
		fc, err := fc.WithWatermark(fc.Watermark())
		if err != nil {
			t.Fatalf("FifoControl watermark round trip of %#02x: %v", bits, err)
		}
		if byte(fc) != bits {
			t.Fatalf("FifoControl round trip of %#02x = %#02x", bits, byte(fc))
		}
	}
}

func TestOdrTotality(t *testing.T) {
	// Every 4-bit pattern must decode without a panic and describe itself.
	for v := 0; v < 16; v++ {
		o := Odr(v)
		_ = o.Frequency(false)
		_ = o.Frequency(true)
		if o.String() == "" {
			t.Errorf("Odr(%#04b).String() is empty", v)
		}
	}
	if got := Odr1344Hz.Frequency(true); got != 5376 {
		t.Errorf("Odr1344Hz low-power frequency = %g, want 5376", got)
	}
	if got := Odr1344Hz.Frequency(false); got != 1344 {
		t.Errorf("Odr1344Hz normal frequency = %g, want 1344", got)
	}
}

func TestScaleTotality(t *testing.T) {
	for v := 0; v < 4; v++ {
		s := Scale(v)
		if s.Resolution() <= 0 {
			t.Errorf("Scale(%#02b).Resolution() = %g, want > 0", v, s.Resolution())
		}
		if s.String() == "" {
			t.Errorf("Scale(%#02b).String() is empty", v)
		}
	}
}

func TestNumericFieldOverflow(t *testing.T) {
	if _, err := NewInt1Threshold().WithThreshold(0x80); !errors.Is(err, bitfield.ErrInvalidField) {
		t.Errorf("WithThreshold(0x80) = %v, want ErrInvalidField", err)
	}
	if _, err := NewFifoControl().WithWatermark(32); !errors.Is(err, bitfield.ErrInvalidField) {
		t.Errorf("WithWatermark(32) = %v, want ErrInvalidField", err)
	}
	if _, err := NewControl2().WithCutoff(4); !errors.Is(err, bitfield.ErrInvalidField) {
		t.Errorf("WithCutoff(4) = %v, want ErrInvalidField", err)
	}

	reg, err := NewFifoControl().WithWatermark(31)
	if err != nil {
		t.Fatalf("WithWatermark(31): %v", err)
	}
	if reg.Watermark() != 31 {
		t.Errorf("Watermark = %d, want 31", reg.Watermark())
	}
}

func TestRegisterAddresses(t *testing.T) {
	if Address != 0b0011001 {
		t.Fatalf("device address = %#07b, want 0b0011001", Address)
	}
	regs := []struct {
		name string
		got  byte
		want byte
	}{
		{"Control1", Control1(0).Addr(), 0x20},
		{"Control6", Control6(0).Addr(), 0x25},
		{"Status", Status(0).Addr(), 0x27},
		{"OutXLow", OutXLow(0).Addr(), 0x28},
		{"OutZHigh", OutZHigh(0).Addr(), 0x2D},
		{"FifoSource", FifoSource(0).Addr(), 0x2F},
		{"Int2Duration", Int2Duration(0).Addr(), 0x37},
		{"TimeWindow", TimeWindow(0).Addr(), 0x3D},
	}
	for _, r := range regs {
		if r.got != r.want {
			t.Errorf("%s.Addr() = %#02x, want %#02x", r.name, r.got, r.want)
		}
	}
}
