package mag

import "github.com/sunsided/lsm303dlhc/bitfield"

// Address is the magnetometer's factory 7-bit slave address.
const Address uint16 = 0b0011110

// Register addresses. The output registers sit in X, Z, Y order with the
// high byte first; do not "fix" this, it matches the silicon. The
// temperature registers live at 31h/32h, far from the rest of the map.
const (
	RegConfigA     = 0x00
	RegConfigB     = 0x01
	RegMode        = 0x02
	RegOutXHigh    = 0x03
	RegOutXLow     = 0x04
	RegOutZHigh    = 0x05
	RegOutZLow     = 0x06
	RegOutYHigh    = 0x07
	RegOutYLow     = 0x08
	RegStatus      = 0x09
	RegIdentA      = 0x0A
	RegIdentB      = 0x0B
	RegIdentC      = 0x0C
	RegTempOutHigh = 0x31
	RegTempOutLow  = 0x32
)

// Identification register contents: "H", "4", "3".
const (
	IdentAValue = 0x48
	IdentBValue = 0x34
	IdentCValue = 0x33
)

// ConfigA is CRA_REG_M (00h): temperature sensor enable and data output
// rate. Bits 6..5 and 1..0 must stay zero for correct operation.
type ConfigA uint8

var (
	craTempEnable = bitfield.Flag(0)
	craDataRate   = bitfield.Field{Offset: 3, Width: 3}
)

// NewConfigA returns the power-on default: temperature sensor disabled,
// 15 Hz output rate.
func NewConfigA() ConfigA { return 0b0001_0000 }

func (ConfigA) DevAddr() uint16 { return Address }
func (ConfigA) Addr() byte      { return RegConfigA }
func (ConfigA) Writable()       {}

func (r ConfigA) TempEnabled() bool { return craTempEnable.IsSet(uint8(r)) }
func (r ConfigA) DataRate() Odr     { return Odr(craDataRate.Get(uint8(r))) }

func (r ConfigA) WithTempEnabled(v bool) ConfigA {
	return ConfigA(craTempEnable.PutBool(uint8(r), v))
}
func (r ConfigA) WithDataRate(v Odr) ConfigA {
	return ConfigA(craDataRate.Put(uint8(r), uint8(v)))
}

// ConfigB is CRB_REG_M (01h): gain configuration. Bits 4..0 must stay zero.
type ConfigB uint8

var crbGain = bitfield.Field{Offset: 0, Width: 3}

// NewConfigB returns the power-on default: ±1.3 Gauss.
func NewConfigB() ConfigB { return 0b0010_0000 }

func (ConfigB) DevAddr() uint16 { return Address }
func (ConfigB) Addr() byte      { return RegConfigB }
func (ConfigB) Writable()       {}

func (r ConfigB) Gain() Gain { return Gain(crbGain.Get(uint8(r))) }

func (r ConfigB) WithGain(v Gain) ConfigB {
	return ConfigB(crbGain.Put(uint8(r), uint8(v)))
}

// Mode is MR_REG_M (02h): sleep and conversion mode. Bits 7..2 must stay
// zero.
//
// The device powers up asleep; a driver must clear the sleep bit (and
// usually single-conversion mode) before continuous readings arrive.
type Mode uint8

var (
	modeSleep  = bitfield.Flag(6)
	modeSingle = bitfield.Flag(7)
)

// NewMode returns the power-on default: asleep, single-conversion mode.
func NewMode() Mode { return 0b0000_0011 }

func (Mode) DevAddr() uint16 { return Address }
func (Mode) Addr() byte      { return RegMode }
func (Mode) Writable()       {}

func (r Mode) Sleep() bool { return modeSleep.IsSet(uint8(r)) }

// SingleConversion reports single-conversion mode; when false the device
// converts continuously.
func (r Mode) SingleConversion() bool { return modeSingle.IsSet(uint8(r)) }

func (r Mode) WithSleep(v bool) Mode {
	return Mode(modeSleep.PutBool(uint8(r), v))
}
func (r Mode) WithSingleConversion(v bool) Mode {
	return Mode(modeSingle.PutBool(uint8(r), v))
}

// Output registers (03h..08h), read-only: high byte first, X-Z-Y axis
// order. Each pair forms a 16-bit two's-complement value.

// OutXHigh is OUT_X_H_M (03h).
type OutXHigh uint8

func (OutXHigh) DevAddr() uint16 { return Address }
func (OutXHigh) Addr() byte      { return RegOutXHigh }

// OutXLow is OUT_X_L_M (04h).
type OutXLow uint8

func (OutXLow) DevAddr() uint16 { return Address }
func (OutXLow) Addr() byte      { return RegOutXLow }

// OutZHigh is OUT_Z_H_M (05h).
type OutZHigh uint8

func (OutZHigh) DevAddr() uint16 { return Address }
func (OutZHigh) Addr() byte      { return RegOutZHigh }

// OutZLow is OUT_Z_L_M (06h).
type OutZLow uint8

func (OutZLow) DevAddr() uint16 { return Address }
func (OutZLow) Addr() byte      { return RegOutZLow }

// OutYHigh is OUT_Y_H_M (07h).
type OutYHigh uint8

func (OutYHigh) DevAddr() uint16 { return Address }
func (OutYHigh) Addr() byte      { return RegOutYHigh }

// OutYLow is OUT_Y_L_M (08h).
type OutYLow uint8

func (OutYLow) DevAddr() uint16 { return Address }
func (OutYLow) Addr() byte      { return RegOutYLow }

// Status is SR_REG_M (09h): data-ready and output lock flags. Read-only.
type Status uint8

var (
	statusLock  = bitfield.Flag(6)
	statusReady = bitfield.Flag(7)
)

func (Status) DevAddr() uint16 { return Address }
func (Status) Addr() byte      { return RegStatus }

// Locked reports whether the output registers are locked because the first
// data register of a new measurement set has been read.
func (r Status) Locked() bool { return statusLock.IsSet(uint8(r)) }

// DataReady reports whether a new set of measurements is available.
func (r Status) DataReady() bool { return statusReady.IsSet(uint8(r)) }

// Identification registers (0Ah..0Ch), read-only, constant "H43".

// IdentA is IRA_REG_M (0Ah), always 0x48 ("H").
type IdentA uint8

func (IdentA) DevAddr() uint16 { return Address }
func (IdentA) Addr() byte      { return RegIdentA }

// IdentB is IRB_REG_M (0Bh), always 0x34 ("4").
type IdentB uint8

func (IdentB) DevAddr() uint16 { return Address }
func (IdentB) Addr() byte      { return RegIdentB }

// IdentC is IRC_REG_M (0Ch), always 0x33 ("3").
type IdentC uint8

func (IdentC) DevAddr() uint16 { return Address }
func (IdentC) Addr() byte      { return RegIdentC }

// TempOutHigh is TEMP_OUT_H_M (31h): the upper eight bits of the 12-bit
// temperature reading. Read-only.
type TempOutHigh uint8

func (TempOutHigh) DevAddr() uint16 { return Address }
func (TempOutHigh) Addr() byte      { return RegTempOutHigh }

// TempOutLow is TEMP_OUT_L_M (32h): the lower four bits of the temperature
// reading, in the byte's upper nibble. Read-only.
type TempOutLow uint8

var tempLowValue = bitfield.Field{Offset: 0, Width: 4}

func (TempOutLow) DevAddr() uint16 { return Address }
func (TempOutLow) Addr() byte      { return RegTempOutLow }

// Value returns the lower nibble of the temperature reading.
func (r TempOutLow) Value() uint8 { return tempLowValue.Get(uint8(r)) }
