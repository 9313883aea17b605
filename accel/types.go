package accel

import "fmt"

// Odr selects the accelerometer output data rate (CTRL_REG1_A, ODR bits).
// The set of rate codes is closed; values without a named constant are
// undocumented by the device.
type Odr uint8

// Output data rate codes.
const (
	// OdrPowerDown disables the accelerometer (power-on default).
	OdrPowerDown Odr = 0b0000
	Odr1Hz       Odr = 0b0001
	Odr10Hz      Odr = 0b0010
	Odr25Hz      Odr = 0b0011
	Odr50Hz      Odr = 0b0100
	Odr100Hz     Odr = 0b0101
	Odr200Hz     Odr = 0b0110
	Odr400Hz     Odr = 0b0111
	// OdrLowPower1620Hz is 1.620 kHz, available in low-power mode only.
	OdrLowPower1620Hz Odr = 0b1000
	// Odr1344Hz is 1.344 kHz in normal mode and 5.376 kHz in low-power
	// mode.
	Odr1344Hz Odr = 0b1001
)

// Frequency returns the sample rate in Hz for the code, given the device's
// low-power setting. Undocumented codes report 0.
func (o Odr) Frequency(lowPower bool) float64 {
	switch o {
	case OdrPowerDown:
		return 0
	case Odr1Hz:
		return 1
	case Odr10Hz:
		return 10
	case Odr25Hz:
		return 25
	case Odr50Hz:
		return 50
	case Odr100Hz:
		return 100
	case Odr200Hz:
		return 200
	case Odr400Hz:
		return 400
	case OdrLowPower1620Hz:
		return 1620
	case Odr1344Hz:
		if lowPower {
			return 5376
		}
		return 1344
	}
	return 0
}

func (o Odr) String() string {
	switch o {
	case OdrPowerDown:
		return "power-down"
	case OdrLowPower1620Hz:
		return "1.620kHz (low-power)"
	case Odr1344Hz:
		return "1.344kHz/5.376kHz"
	case Odr1Hz, Odr10Hz, Odr25Hz, Odr50Hz, Odr100Hz, Odr200Hz, Odr400Hz:
		return fmt.Sprintf("%gHz", o.Frequency(false))
	}
	return fmt.Sprintf("Odr(%#04b)", uint8(o))
}

// Scale selects the full-scale measurement range (CTRL_REG4_A, FS bits).
type Scale uint8

// Full-scale codes.
const (
	Scale2G  Scale = 0b00 // ±2 g, 1 mg/LSB
	Scale4G  Scale = 0b01 // ±4 g, 2 mg/LSB
	Scale8G  Scale = 0b10 // ±8 g, 4 mg/LSB
	Scale16G Scale = 0b11 // ±16 g, 12 mg/LSB
)

// Resolution returns the scale factor in g per LSB of a 16-bit reading.
func (s Scale) Resolution() float64 {
	// magnitude / 2^16 * sensitivity (mg/LSB).
	switch s {
	case Scale2G:
		return 4.0 / 65536.0
	case Scale4G:
		return 8.0 / 65536.0 * 2
	case Scale8G:
		return 16.0 / 65536.0 * 4
	case Scale16G:
		return 32.0 / 65536.0 * 12
	}
	return 0
}

func (s Scale) String() string {
	switch s {
	case Scale2G:
		return "±2g"
	case Scale4G:
		return "±4g"
	case Scale8G:
		return "±8g"
	case Scale16G:
		return "±16g"
	}
	return fmt.Sprintf("Scale(%#02b)", uint8(s))
}

// FifoMode selects the FIFO behavior (FIFO_CTRL_REG_A, FM bits).
type FifoMode uint8

// FIFO mode codes.
const (
	// FifoBypass stores data directly in the output registers.
	FifoBypass  FifoMode = 0b00
	FifoEnabled FifoMode = 0b01
	FifoStream  FifoMode = 0b10
	FifoTrigger FifoMode = 0b11
)

func (m FifoMode) String() string {
	switch m {
	case FifoBypass:
		return "bypass"
	case FifoEnabled:
		return "fifo"
	case FifoStream:
		return "stream"
	case FifoTrigger:
		return "trigger"
	}
	return fmt.Sprintf("FifoMode(%#02b)", uint8(m))
}

// HighpassMode selects the high-pass filter mode (CTRL_REG2_A, HPM bits).
type HighpassMode uint8

// High-pass filter mode codes.
const (
	// HighpassNormalWithReset resets the filter by reading the reference
	// register.
	HighpassNormalWithReset HighpassMode = 0b00
	HighpassReference       HighpassMode = 0b01
	HighpassNormal          HighpassMode = 0b10
	HighpassAutoreset       HighpassMode = 0b11
)

func (m HighpassMode) String() string {
	switch m {
	case HighpassNormalWithReset:
		return "normal (reset by reading reference)"
	case HighpassReference:
		return "reference signal"
	case HighpassNormal:
		return "normal"
	case HighpassAutoreset:
		return "autoreset on interrupt"
	}
	return fmt.Sprintf("HighpassMode(%#02b)", uint8(m))
}
