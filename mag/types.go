package mag

import "fmt"

// Odr selects the rate at which the magnetometer writes all three data
// output registers (CRA_REG_M, DO bits).
type Odr uint8

// Data output rate codes.
//
// The datasheet is inconsistent about the power-on default: its prose says
// 15 Hz while the register table appears to be missing a zero. The bit
// pattern table is authoritative here, so the default is Odr15Hz (0b100).
const (
	Odr0_75Hz Odr = 0b000
	Odr1_5Hz  Odr = 0b001
	Odr3Hz    Odr = 0b010
	Odr7_5Hz  Odr = 0b011
	Odr15Hz   Odr = 0b100
	Odr30Hz   Odr = 0b101
	Odr75Hz   Odr = 0b110
	Odr220Hz  Odr = 0b111
)

// Frequency returns the output rate in Hz.
func (o Odr) Frequency() float64 {
	switch o {
	case Odr0_75Hz:
		return 0.75
	case Odr1_5Hz:
		return 1.5
	case Odr3Hz:
		return 3
	case Odr7_5Hz:
		return 7.5
	case Odr15Hz:
		return 15
	case Odr30Hz:
		return 30
	case Odr75Hz:
		return 75
	case Odr220Hz:
		return 220
	}
	return 0
}

func (o Odr) String() string {
	return fmt.Sprintf("%gHz", o.Frequency())
}

// Gain selects the magnetometer input field range (CRB_REG_M, GN bits).
// Code 0b000 is not documented by the device.
type Gain uint8

// Gain codes by sensor input field range in Gauss.
const (
	Gain1_3 Gain = 0b001 // ±1.3 Gauss (power-on default)
	Gain1_9 Gain = 0b010 // ±1.9 Gauss
	Gain2_5 Gain = 0b011 // ±2.5 Gauss
	Gain4_0 Gain = 0b100 // ±4.0 Gauss
	Gain4_7 Gain = 0b101 // ±4.7 Gauss
	Gain5_6 Gain = 0b110 // ±5.6 Gauss
	Gain8_1 Gain = 0b111 // ±8.1 Gauss
)

// Range returns the input field range in Gauss, or 0 for an undocumented
// code.
func (g Gain) Range() float64 {
	switch g {
	case Gain1_3:
		return 1.3
	case Gain1_9:
		return 1.9
	case Gain2_5:
		return 2.5
	case Gain4_0:
		return 4.0
	case Gain4_7:
		return 4.7
	case Gain5_6:
		return 5.6
	case Gain8_1:
		return 8.1
	}
	return 0
}

// LSBPerGaussXY returns the X and Y axis gain in LSB/Gauss, or 0 for an
// undocumented code.
func (g Gain) LSBPerGaussXY() float64 {
	switch g {
	case Gain1_3:
		return 1100
	case Gain1_9:
		return 855
	case Gain2_5:
		return 670
	case Gain4_0:
		return 450
	case Gain4_7:
		return 400
	case Gain5_6:
		return 330
	case Gain8_1:
		return 230
	}
	return 0
}

// LSBPerGaussZ returns the Z axis gain in LSB/Gauss, or 0 for an
// undocumented code. The Z axis is less sensitive than X and Y.
func (g Gain) LSBPerGaussZ() float64 {
	switch g {
	case Gain1_3:
		return 980
	case Gain1_9:
		return 760
	case Gain2_5:
		return 600
	case Gain4_0:
		return 400
	case Gain4_7:
		return 355
	case Gain5_6:
		return 295
	case Gain8_1:
		return 205
	}
	return 0
}

func (g Gain) String() string {
	if g.Range() == 0 {
		return fmt.Sprintf("Gain(%#03b)", uint8(g))
	}
	return fmt.Sprintf("±%.1fGs", g.Range())
}
