package accel

import "github.com/sunsided/lsm303dlhc/bitfield"

// Address is the accelerometer's factory 7-bit slave address.
const Address uint16 = 0b0011001

// autoIncrement, ORed into the sub-address, makes the device increment the
// register pointer after every byte of a multi-byte read.
const autoIncrement = 0x80

// Register addresses.
const (
	RegCtrl1          = 0x20
	RegCtrl2          = 0x21
	RegCtrl3          = 0x22
	RegCtrl4          = 0x23
	RegCtrl5          = 0x24
	RegCtrl6          = 0x25
	RegReference      = 0x26
	RegStatus         = 0x27
	RegOutXLow        = 0x28
	RegOutXHigh       = 0x29
	RegOutYLow        = 0x2A
	RegOutYHigh       = 0x2B
	RegOutZLow        = 0x2C
	RegOutZHigh       = 0x2D
	RegFifoControl    = 0x2E
	RegFifoSource     = 0x2F
	RegInt1Config     = 0x30
	RegInt1Source     = 0x31
	RegInt1Threshold  = 0x32
	RegInt1Duration   = 0x33
	RegInt2Config     = 0x34
	RegInt2Source     = 0x35
	RegInt2Threshold  = 0x36
	RegInt2Duration   = 0x37
	RegClickConfig    = 0x38
	RegClickSource    = 0x39
	RegClickThreshold = 0x3A
	RegTimeLimit      = 0x3B
	RegTimeLatency    = 0x3C
	RegTimeWindow     = 0x3D
)

// Control1 is CTRL_REG1_A (20h): data rate, power mode and per-axis enable.
type Control1 uint8

var (
	ctrl1DataRate = bitfield.Field{Offset: 0, Width: 4}
	ctrl1LowPower = bitfield.Flag(4)
	ctrl1ZEnable  = bitfield.Flag(5)
	ctrl1YEnable  = bitfield.Flag(6)
	ctrl1XEnable  = bitfield.Flag(7)
)

// NewControl1 returns the power-on default: power-down, normal mode, all
// axes enabled.
func NewControl1() Control1 { return 0b0000_0111 }

func (Control1) DevAddr() uint16 { return Address }
func (Control1) Addr() byte      { return RegCtrl1 }
func (Control1) Writable()       {}

func (r Control1) DataRate() Odr  { return Odr(ctrl1DataRate.Get(uint8(r))) }
func (r Control1) LowPower() bool { return ctrl1LowPower.IsSet(uint8(r)) }
func (r Control1) ZEnabled() bool { return ctrl1ZEnable.IsSet(uint8(r)) }
func (r Control1) YEnabled() bool { return ctrl1YEnable.IsSet(uint8(r)) }
func (r Control1) XEnabled() bool { return ctrl1XEnable.IsSet(uint8(r)) }

func (r Control1) WithDataRate(v Odr) Control1 {
	return Control1(ctrl1DataRate.Put(uint8(r), uint8(v)))
}
func (r Control1) WithLowPower(v bool) Control1 {
	return Control1(ctrl1LowPower.PutBool(uint8(r), v))
}
func (r Control1) WithZEnabled(v bool) Control1 {
	return Control1(ctrl1ZEnable.PutBool(uint8(r), v))
}
func (r Control1) WithYEnabled(v bool) Control1 {
	return Control1(ctrl1YEnable.PutBool(uint8(r), v))
}
func (r Control1) WithXEnabled(v bool) Control1 {
	return Control1(ctrl1XEnable.PutBool(uint8(r), v))
}

// Control2 is CTRL_REG2_A (21h): high-pass filter configuration.
type Control2 uint8

var (
	ctrl2Mode     = bitfield.Field{Offset: 0, Width: 2}
	ctrl2Cutoff   = bitfield.Field{Offset: 2, Width: 2}
	ctrl2Filtered = bitfield.Flag(4)
	ctrl2Click    = bitfield.Flag(5)
	ctrl2AOIInt2  = bitfield.Flag(6)
	ctrl2AOIInt1  = bitfield.Flag(7)
)

// NewControl2 returns the power-on default (all zero).
func NewControl2() Control2 { return 0 }

func (Control2) DevAddr() uint16 { return Address }
func (Control2) Addr() byte      { return RegCtrl2 }
func (Control2) Writable()       {}

func (r Control2) Mode() HighpassMode { return HighpassMode(ctrl2Mode.Get(uint8(r))) }

// Cutoff returns the high-pass filter cutoff frequency code.
func (r Control2) Cutoff() uint8 { return ctrl2Cutoff.Get(uint8(r)) }

// FilteredData reports whether output data passes through the filter.
func (r Control2) FilteredData() bool { return ctrl2Filtered.IsSet(uint8(r)) }

// ClickFiltered reports whether the filter feeds the click function.
func (r Control2) ClickFiltered() bool { return ctrl2Click.IsSet(uint8(r)) }

// AOIInt2Filtered reports whether the filter feeds AOI on interrupt 2.
func (r Control2) AOIInt2Filtered() bool { return ctrl2AOIInt2.IsSet(uint8(r)) }

// AOIInt1Filtered reports whether the filter feeds AOI on interrupt 1.
func (r Control2) AOIInt1Filtered() bool { return ctrl2AOIInt1.IsSet(uint8(r)) }

func (r Control2) WithMode(v HighpassMode) Control2 {
	return Control2(ctrl2Mode.Put(uint8(r), uint8(v)))
}

// WithCutoff sets the 2-bit cutoff frequency code.
func (r Control2) WithCutoff(v uint8) (Control2, error) {
	if err := ctrl2Cutoff.Check(v); err != nil {
		return r, err
	}
	return Control2(ctrl2Cutoff.Put(uint8(r), v)), nil
}

func (r Control2) WithFilteredData(v bool) Control2 {
	return Control2(ctrl2Filtered.PutBool(uint8(r), v))
}
func (r Control2) WithClickFiltered(v bool) Control2 {
	return Control2(ctrl2Click.PutBool(uint8(r), v))
}
func (r Control2) WithAOIInt2Filtered(v bool) Control2 {
	return Control2(ctrl2AOIInt2.PutBool(uint8(r), v))
}
func (r Control2) WithAOIInt1Filtered(v bool) Control2 {
	return Control2(ctrl2AOIInt1.PutBool(uint8(r), v))
}

// Control3 is CTRL_REG3_A (22h): interrupt routing to INT1. Bit 0 is
// reserved.
type Control3 uint8

var (
	ctrl3Click   = bitfield.Flag(0)
	ctrl3AOI1    = bitfield.Flag(1)
	ctrl3AOI2    = bitfield.Flag(2)
	ctrl3DRDY1   = bitfield.Flag(3)
	ctrl3DRDY2   = bitfield.Flag(4)
	ctrl3WTM     = bitfield.Flag(5)
	ctrl3Overrun = bitfield.Flag(6)
)

// NewControl3 returns the power-on default (all interrupts off).
func NewControl3() Control3 { return 0 }

func (Control3) DevAddr() uint16 { return Address }
func (Control3) Addr() byte      { return RegCtrl3 }
func (Control3) Writable()       {}

func (r Control3) ClickOnInt1() bool     { return ctrl3Click.IsSet(uint8(r)) }
func (r Control3) AOI1OnInt1() bool      { return ctrl3AOI1.IsSet(uint8(r)) }
func (r Control3) AOI2OnInt1() bool      { return ctrl3AOI2.IsSet(uint8(r)) }
func (r Control3) DataReady1OnInt1() bool { return ctrl3DRDY1.IsSet(uint8(r)) }
func (r Control3) DataReady2OnInt1() bool { return ctrl3DRDY2.IsSet(uint8(r)) }
func (r Control3) WatermarkOnInt1() bool { return ctrl3WTM.IsSet(uint8(r)) }
func (r Control3) OverrunOnInt1() bool   { return ctrl3Overrun.IsSet(uint8(r)) }

func (r Control3) WithClickOnInt1(v bool) Control3 {
	return Control3(ctrl3Click.PutBool(uint8(r), v))
}
func (r Control3) WithAOI1OnInt1(v bool) Control3 {
	return Control3(ctrl3AOI1.PutBool(uint8(r), v))
}
func (r Control3) WithAOI2OnInt1(v bool) Control3 {
	return Control3(ctrl3AOI2.PutBool(uint8(r), v))
}
func (r Control3) WithDataReady1OnInt1(v bool) Control3 {
	return Control3(ctrl3DRDY1.PutBool(uint8(r), v))
}
func (r Control3) WithDataReady2OnInt1(v bool) Control3 {
	return Control3(ctrl3DRDY2.PutBool(uint8(r), v))
}
func (r Control3) WithWatermarkOnInt1(v bool) Control3 {
	return Control3(ctrl3WTM.PutBool(uint8(r), v))
}
func (r Control3) WithOverrunOnInt1(v bool) Control3 {
	return Control3(ctrl3Overrun.PutBool(uint8(r), v))
}

// Control4 is CTRL_REG4_A (23h): block data update, endianness, full scale
// and resolution. Bits 2..1 are reserved.
type Control4 uint8

var (
	ctrl4BDU       = bitfield.Flag(0)
	ctrl4BigEndian = bitfield.Flag(1)
	ctrl4Scale     = bitfield.Field{Offset: 2, Width: 2}
	ctrl4HighRes   = bitfield.Flag(4)
	ctrl4SPI3Wire  = bitfield.Flag(7)
)

// NewControl4 returns the power-on default: continuous update, little
// endian, ±2 g, low resolution.
func NewControl4() Control4 { return 0 }

func (Control4) DevAddr() uint16 { return Address }
func (Control4) Addr() byte      { return RegCtrl4 }
func (Control4) Writable()       {}

// BlockDataUpdate reports whether output registers are frozen between the
// reads of their low and high bytes, so both bytes belong to one sample.
func (r Control4) BlockDataUpdate() bool { return ctrl4BDU.IsSet(uint8(r)) }

// BigEndian reports whether the data MSB is at the lower address.
func (r Control4) BigEndian() bool       { return ctrl4BigEndian.IsSet(uint8(r)) }
func (r Control4) Scale() Scale          { return Scale(ctrl4Scale.Get(uint8(r))) }
func (r Control4) HighResolution() bool  { return ctrl4HighRes.IsSet(uint8(r)) }
func (r Control4) SPI3Wire() bool        { return ctrl4SPI3Wire.IsSet(uint8(r)) }

func (r Control4) WithBlockDataUpdate(v bool) Control4 {
	return Control4(ctrl4BDU.PutBool(uint8(r), v))
}
func (r Control4) WithBigEndian(v bool) Control4 {
	return Control4(ctrl4BigEndian.PutBool(uint8(r), v))
}
func (r Control4) WithScale(v Scale) Control4 {
	return Control4(ctrl4Scale.Put(uint8(r), uint8(v)))
}
func (r Control4) WithHighResolution(v bool) Control4 {
	return Control4(ctrl4HighRes.PutBool(uint8(r), v))
}
func (r Control4) WithSPI3Wire(v bool) Control4 {
	return Control4(ctrl4SPI3Wire.PutBool(uint8(r), v))
}

// Control5 is CTRL_REG5_A (24h): reboot, FIFO enable and interrupt
// latching. Bits 5..4 are reserved.
type Control5 uint8

var (
	ctrl5Boot      = bitfield.Flag(0)
	ctrl5Fifo      = bitfield.Flag(1)
	ctrl5LatchInt1 = bitfield.Flag(4)
	ctrl5D4DInt1   = bitfield.Flag(5)
	ctrl5LatchInt2 = bitfield.Flag(6)
	ctrl5D4DInt2   = bitfield.Flag(7)
)

// NewControl5 returns the power-on default (all zero).
func NewControl5() Control5 { return 0 }

func (Control5) DevAddr() uint16 { return Address }
func (Control5) Addr() byte      { return RegCtrl5 }
func (Control5) Writable()       {}

// Reboot reports whether a memory content reboot is requested.
func (r Control5) Reboot() bool      { return ctrl5Boot.IsSet(uint8(r)) }
func (r Control5) FifoEnabled() bool { return ctrl5Fifo.IsSet(uint8(r)) }

// LatchInt1 reports whether interrupt 1 requests latch until INT1_SRC_A is
// read.
func (r Control5) LatchInt1() bool { return ctrl5LatchInt1.IsSet(uint8(r)) }
func (r Control5) D4DInt1() bool   { return ctrl5D4DInt1.IsSet(uint8(r)) }
func (r Control5) LatchInt2() bool { return ctrl5LatchInt2.IsSet(uint8(r)) }
func (r Control5) D4DInt2() bool   { return ctrl5D4DInt2.IsSet(uint8(r)) }

func (r Control5) WithReboot(v bool) Control5 {
	return Control5(ctrl5Boot.PutBool(uint8(r), v))
}
func (r Control5) WithFifoEnabled(v bool) Control5 {
	return Control5(ctrl5Fifo.PutBool(uint8(r), v))
}
func (r Control5) WithLatchInt1(v bool) Control5 {
	return Control5(ctrl5LatchInt1.PutBool(uint8(r), v))
}
func (r Control5) WithD4DInt1(v bool) Control5 {
	return Control5(ctrl5D4DInt1.PutBool(uint8(r), v))
}
func (r Control5) WithLatchInt2(v bool) Control5 {
	return Control5(ctrl5LatchInt2.PutBool(uint8(r), v))
}
func (r Control5) WithD4DInt2(v bool) Control5 {
	return Control5(ctrl5D4DInt2.PutBool(uint8(r), v))
}

// Control6 is CTRL_REG6_A (25h): PAD2/INT2 pin routing and interrupt
// polarity. Bits 2 and 0 are reserved.
type Control6 uint8

var (
	ctrl6Click     = bitfield.Flag(0)
	ctrl6Int1      = bitfield.Flag(1)
	ctrl6Int2      = bitfield.Flag(2)
	ctrl6Boot      = bitfield.Flag(3)
	ctrl6Active    = bitfield.Flag(4)
	ctrl6ActiveLow = bitfield.Flag(6)
)

// NewControl6 returns the power-on default (all zero).
func NewControl6() Control6 { return 0 }

func (Control6) DevAddr() uint16 { return Address }
func (Control6) Addr() byte      { return RegCtrl6 }
func (Control6) Writable()       {}

func (r Control6) ClickOnPad2() bool  { return ctrl6Click.IsSet(uint8(r)) }
func (r Control6) Int1OnPad2() bool   { return ctrl6Int1.IsSet(uint8(r)) }
func (r Control6) Int2OnPad2() bool   { return ctrl6Int2.IsSet(uint8(r)) }
func (r Control6) BootOnPad2() bool   { return ctrl6Boot.IsSet(uint8(r)) }
func (r Control6) ActiveOnPad2() bool { return ctrl6Active.IsSet(uint8(r)) }

// ActiveLow reports whether interrupts are active low instead of high.
func (r Control6) ActiveLow() bool { return ctrl6ActiveLow.IsSet(uint8(r)) }

func (r Control6) WithClickOnPad2(v bool) Control6 {
	return Control6(ctrl6Click.PutBool(uint8(r), v))
}
func (r Control6) WithInt1OnPad2(v bool) Control6 {
	return Control6(ctrl6Int1.PutBool(uint8(r), v))
}
func (r Control6) WithInt2OnPad2(v bool) Control6 {
	return Control6(ctrl6Int2.PutBool(uint8(r), v))
}
func (r Control6) WithBootOnPad2(v bool) Control6 {
	return Control6(ctrl6Boot.PutBool(uint8(r), v))
}
func (r Control6) WithActiveOnPad2(v bool) Control6 {
	return Control6(ctrl6Active.PutBool(uint8(r), v))
}
func (r Control6) WithActiveLow(v bool) Control6 {
	return Control6(ctrl6ActiveLow.PutBool(uint8(r), v))
}

// Reference is REFERENCE_A (26h): the acceleration value taken as reference
// for the high-pass filter output.
type Reference uint8

// NewReference returns the power-on default (zero).
func NewReference() Reference { return 0 }

func (Reference) DevAddr() uint16 { return Address }
func (Reference) Addr() byte      { return RegReference }
func (Reference) Writable()       {}

func (r Reference) Value() uint8 { return uint8(r) }

func (r Reference) WithValue(v uint8) Reference { return Reference(v) }

// Status is STATUS_REG_A (27h): per-axis data-available and overrun flags.
// Read-only.
type Status uint8

var (
	statusOverrunAll   = bitfield.Flag(0)
	statusOverrunZ     = bitfield.Flag(1)
	statusOverrunY     = bitfield.Flag(2)
	statusOverrunX     = bitfield.Flag(3)
	statusAvailableAll = bitfield.Flag(4)
	statusAvailableZ   = bitfield.Flag(5)
	statusAvailableY   = bitfield.Flag(6)
	statusAvailableX   = bitfield.Flag(7)
)

func (Status) DevAddr() uint16 { return Address }
func (Status) Addr() byte      { return RegStatus }

// Overrun reports whether a new X, Y and Z sample overwrote the previous
// one before it was read.
func (r Status) Overrun() bool  { return statusOverrunAll.IsSet(uint8(r)) }
func (r Status) OverrunZ() bool { return statusOverrunZ.IsSet(uint8(r)) }
func (r Status) OverrunY() bool { return statusOverrunY.IsSet(uint8(r)) }
func (r Status) OverrunX() bool { return statusOverrunX.IsSet(uint8(r)) }

// DataAvailable reports whether a new X, Y and Z sample is ready.
func (r Status) DataAvailable() bool  { return statusAvailableAll.IsSet(uint8(r)) }
func (r Status) DataAvailableZ() bool { return statusAvailableZ.IsSet(uint8(r)) }
func (r Status) DataAvailableY() bool { return statusAvailableY.IsSet(uint8(r)) }
func (r Status) DataAvailableX() bool { return statusAvailableX.IsSet(uint8(r)) }

// Output registers (28h..2Dh), read-only. The acceleration registers are
// laid out low byte first, in X, Y, Z order; each pair forms a 16-bit
// two's-complement value.

// OutXLow is OUT_X_L_A (28h).
type OutXLow uint8

func (OutXLow) DevAddr() uint16 { return Address }
func (OutXLow) Addr() byte      { return RegOutXLow }

// OutXHigh is OUT_X_H_A (29h).
type OutXHigh uint8

func (OutXHigh) DevAddr() uint16 { return Address }
func (OutXHigh) Addr() byte      { return RegOutXHigh }

// OutYLow is OUT_Y_L_A (2Ah).
type OutYLow uint8

func (OutYLow) DevAddr() uint16 { return Address }
func (OutYLow) Addr() byte      { return RegOutYLow }

// OutYHigh is OUT_Y_H_A (2Bh).
type OutYHigh uint8

func (OutYHigh) DevAddr() uint16 { return Address }
func (OutYHigh) Addr() byte      { return RegOutYHigh }

// OutZLow is OUT_Z_L_A (2Ch).
type OutZLow uint8

func (OutZLow) DevAddr() uint16 { return Address }
func (OutZLow) Addr() byte      { return RegOutZLow }

// OutZHigh is OUT_Z_H_A (2Dh).
type OutZHigh uint8

func (OutZHigh) DevAddr() uint16 { return Address }
func (OutZHigh) Addr() byte      { return RegOutZHigh }

// FifoControl is FIFO_CTRL_REG_A (2Eh): FIFO mode, trigger pin and
// watermark threshold.
type FifoControl uint8

var (
	fifoCtrlMode      = bitfield.Field{Offset: 0, Width: 2}
	fifoCtrlTrigger   = bitfield.Flag(2)
	fifoCtrlWatermark = bitfield.Field{Offset: 3, Width: 5}
)

// NewFifoControl returns the power-on default: bypass mode, watermark zero.
func NewFifoControl() FifoControl { return 0 }

func (FifoControl) DevAddr() uint16 { return Address }
func (FifoControl) Addr() byte      { return RegFifoControl }
func (FifoControl) Writable()       {}

func (r FifoControl) Mode() FifoMode { return FifoMode(fifoCtrlMode.Get(uint8(r))) }

// TriggerOnInt2 reports whether the trigger event is linked to INT2 instead
// of INT1.
func (r FifoControl) TriggerOnInt2() bool { return fifoCtrlTrigger.IsSet(uint8(r)) }
func (r FifoControl) Watermark() uint8    { return fifoCtrlWatermark.Get(uint8(r)) }

func (r FifoControl) WithMode(v FifoMode) FifoControl {
	return FifoControl(fifoCtrlMode.Put(uint8(r), uint8(v)))
}
func (r FifoControl) WithTriggerOnInt2(v bool) FifoControl {
	return FifoControl(fifoCtrlTrigger.PutBool(uint8(r), v))
}

// WithWatermark sets the 5-bit FIFO watermark threshold.
func (r FifoControl) WithWatermark(v uint8) (FifoControl, error) {
	if err := fifoCtrlWatermark.Check(v); err != nil {
		return r, err
	}
	return FifoControl(fifoCtrlWatermark.Put(uint8(r), v)), nil
}

// FifoSource is FIFO_SRC_REG_A (2Fh): FIFO state. Read-only.
type FifoSource uint8

var (
	fifoSrcWatermark = bitfield.Flag(0)
	fifoSrcOverrun   = bitfield.Flag(1)
	fifoSrcEmpty     = bitfield.Flag(2)
	fifoSrcLevel     = bitfield.Field{Offset: 3, Width: 5}
)

func (FifoSource) DevAddr() uint16 { return Address }
func (FifoSource) Addr() byte      { return RegFifoSource }

func (r FifoSource) WatermarkReached() bool { return fifoSrcWatermark.IsSet(uint8(r)) }
func (r FifoSource) Overrun() bool          { return fifoSrcOverrun.IsSet(uint8(r)) }
func (r FifoSource) Empty() bool            { return fifoSrcEmpty.IsSet(uint8(r)) }

// Level returns the number of unread samples in the FIFO.
func (r FifoSource) Level() uint8 { return fifoSrcLevel.Get(uint8(r)) }

// Interrupt generator registers. INT1 and INT2 share one layout; the
// configuration selects the events, the source reports them, and threshold
// and duration bound the trigger condition.

var (
	intCfgAOI   = bitfield.Flag(0)
	intCfgSixD  = bitfield.Flag(1)
	intCfgZHigh = bitfield.Flag(2)
	intCfgZLow  = bitfield.Flag(3)
	intCfgYHigh = bitfield.Flag(4)
	intCfgYLow  = bitfield.Flag(5)
	intCfgXHigh = bitfield.Flag(6)
	intCfgXLow  = bitfield.Flag(7)

	intSrcActive = bitfield.Flag(1)
	intSrcZHigh  = bitfield.Flag(2)
	intSrcZLow   = bitfield.Flag(3)
	intSrcYHigh  = bitfield.Flag(4)
	intSrcYLow   = bitfield.Flag(5)
	intSrcXHigh  = bitfield.Flag(6)
	intSrcXLow   = bitfield.Flag(7)

	sevenBits = bitfield.Field{Offset: 1, Width: 7}
)

// Int1Config is INT1_CFG_A (30h): interrupt 1 event selection.
type Int1Config uint8

// NewInt1Config returns the power-on default (all events off).
func NewInt1Config() Int1Config { return 0 }

func (Int1Config) DevAddr() uint16 { return Address }
func (Int1Config) Addr() byte      { return RegInt1Config }
func (Int1Config) Writable()       {}

// AndCombination reports whether events combine with AND instead of OR.
func (r Int1Config) AndCombination() bool { return intCfgAOI.IsSet(uint8(r)) }

// SixDirection reports whether 6-direction detection is enabled.
func (r Int1Config) SixDirection() bool { return intCfgSixD.IsSet(uint8(r)) }
func (r Int1Config) ZHigh() bool        { return intCfgZHigh.IsSet(uint8(r)) }
func (r Int1Config) ZLow() bool         { return intCfgZLow.IsSet(uint8(r)) }
func (r Int1Config) YHigh() bool        { return intCfgYHigh.IsSet(uint8(r)) }
func (r Int1Config) YLow() bool         { return intCfgYLow.IsSet(uint8(r)) }
func (r Int1Config) XHigh() bool        { return intCfgXHigh.IsSet(uint8(r)) }
func (r Int1Config) XLow() bool         { return intCfgXLow.IsSet(uint8(r)) }

func (r Int1Config) WithAndCombination(v bool) Int1Config {
	return Int1Config(intCfgAOI.PutBool(uint8(r), v))
}
func (r Int1Config) WithSixDirection(v bool) Int1Config {
	return Int1Config(intCfgSixD.PutBool(uint8(r), v))
}
func (r Int1Config) WithZHigh(v bool) Int1Config {
	return Int1Config(intCfgZHigh.PutBool(uint8(r), v))
}
func (r Int1Config) WithZLow(v bool) Int1Config {
	return Int1Config(intCfgZLow.PutBool(uint8(r), v))
}
func (r Int1Config) WithYHigh(v bool) Int1Config {
	return Int1Config(intCfgYHigh.PutBool(uint8(r), v))
}
func (r Int1Config) WithYLow(v bool) Int1Config {
	return Int1Config(intCfgYLow.PutBool(uint8(r), v))
}
func (r Int1Config) WithXHigh(v bool) Int1Config {
	return Int1Config(intCfgXHigh.PutBool(uint8(r), v))
}
func (r Int1Config) WithXLow(v bool) Int1Config {
	return Int1Config(intCfgXLow.PutBool(uint8(r), v))
}

// Int1Source is INT1_SRC_A (31h): interrupt 1 event flags. Read-only;
// reading it clears a latched interrupt.
type Int1Source uint8

func (Int1Source) DevAddr() uint16 { return Address }
func (Int1Source) Addr() byte      { return RegInt1Source }

func (r Int1Source) Active() bool { return intSrcActive.IsSet(uint8(r)) }
func (r Int1Source) ZHigh() bool  { return intSrcZHigh.IsSet(uint8(r)) }
func (r Int1Source) ZLow() bool   { return intSrcZLow.IsSet(uint8(r)) }
func (r Int1Source) YHigh() bool  { return intSrcYHigh.IsSet(uint8(r)) }
func (r Int1Source) YLow() bool   { return intSrcYLow.IsSet(uint8(r)) }
func (r Int1Source) XHigh() bool  { return intSrcXHigh.IsSet(uint8(r)) }
func (r Int1Source) XLow() bool   { return intSrcXLow.IsSet(uint8(r)) }

// Int1Threshold is INT1_THS_A (32h): interrupt 1 threshold, 7 bits.
type Int1Threshold uint8

// NewInt1Threshold returns the power-on default (zero).
func NewInt1Threshold() Int1Threshold { return 0 }

func (Int1Threshold) DevAddr() uint16 { return Address }
func (Int1Threshold) Addr() byte      { return RegInt1Threshold }
func (Int1Threshold) Writable()       {}

func (r Int1Threshold) Threshold() uint8 { return sevenBits.Get(uint8(r)) }

func (r Int1Threshold) WithThreshold(v uint8) (Int1Threshold, error) {
	if err := sevenBits.Check(v); err != nil {
		return r, err
	}
	return Int1Threshold(sevenBits.Put(uint8(r), v)), nil
}

// Int1Duration is INT1_DURATION_A (33h): minimum event duration, 7 bits,
// in steps of 1/ODR.
type Int1Duration uint8

// NewInt1Duration returns the power-on default (zero).
func NewInt1Duration() Int1Duration { return 0 }

func (Int1Duration) DevAddr() uint16 { return Address }
func (Int1Duration) Addr() byte      { return RegInt1Duration }
func (Int1Duration) Writable()       {}

func (r Int1Duration) Duration() uint8 { return sevenBits.Get(uint8(r)) }

func (r Int1Duration) WithDuration(v uint8) (Int1Duration, error) {
	if err := sevenBits.Check(v); err != nil {
		return r, err
	}
	return Int1Duration(sevenBits.Put(uint8(r), v)), nil
}

// Int2Config is INT2_CFG_A (34h): interrupt 2 event selection.
type Int2Config uint8

// NewInt2Config returns the power-on default (all events off).
func NewInt2Config() Int2Config { return 0 }

func (Int2Config) DevAddr() uint16 { return Address }
func (Int2Config) Addr() byte      { return RegInt2Config }
func (Int2Config) Writable()       {}

func (r Int2Config) AndCombination() bool { return intCfgAOI.IsSet(uint8(r)) }
func (r Int2Config) SixDirection() bool   { return intCfgSixD.IsSet(uint8(r)) }
func (r Int2Config) ZHigh() bool          { return intCfgZHigh.IsSet(uint8(r)) }
func (r Int2Config) ZLow() bool           { return intCfgZLow.IsSet(uint8(r)) }
func (r Int2Config) YHigh() bool          { return intCfgYHigh.IsSet(uint8(r)) }
func (r Int2Config) YLow() bool           { return intCfgYLow.IsSet(uint8(r)) }
func (r Int2Config) XHigh() bool          { return intCfgXHigh.IsSet(uint8(r)) }
func (r Int2Config) XLow() bool           { return intCfgXLow.IsSet(uint8(r)) }

func (r Int2Config) WithAndCombination(v bool) Int2Config {
	return Int2Config(intCfgAOI.PutBool(uint8(r), v))
}
func (r Int2Config) WithSixDirection(v bool) Int2Config {
	return Int2Config(intCfgSixD.PutBool(uint8(r), v))
}
func (r Int2Config) WithZHigh(v bool) Int2Config {
	return Int2Config(intCfgZHigh.PutBool(uint8(r), v))
}
func (r Int2Config) WithZLow(v bool) Int2Config {
	return Int2Config(intCfgZLow.PutBool(uint8(r), v))
}
func (r Int2Config) WithYHigh(v bool) Int2Config {
	return Int2Config(intCfgYHigh.PutBool(uint8(r), v))
}
func (r Int2Config) WithYLow(v bool) Int2Config {
	return Int2Config(intCfgYLow.PutBool(uint8(r), v))
}
func (r Int2Config) WithXHigh(v bool) Int2Config {
	return Int2Config(intCfgXHigh.PutBool(uint8(r), v))
}
func (r Int2Config) WithXLow(v bool) Int2Config {
	return Int2Config(intCfgXLow.PutBool(uint8(r), v))
}

// Int2Source is INT2_SRC_A (35h): interrupt 2 event flags. Read-only.
type Int2Source uint8

func (Int2Source) DevAddr() uint16 { return Address }
func (Int2Source) Addr() byte      { return RegInt2Source }

func (r Int2Source) Active() bool { return intSrcActive.IsSet(uint8(r)) }
func (r Int2Source) ZHigh() bool  { return intSrcZHigh.IsSet(uint8(r)) }
func (r Int2Source) ZLow() bool   { return intSrcZLow.IsSet(uint8(r)) }
func (r Int2Source) YHigh() bool  { return intSrcYHigh.IsSet(uint8(r)) }
func (r Int2Source) YLow() bool   { return intSrcYLow.IsSet(uint8(r)) }
func (r Int2Source) XHigh() bool  { return intSrcXHigh.IsSet(uint8(r)) }
func (r Int2Source) XLow() bool   { return intSrcXLow.IsSet(uint8(r)) }

// Int2Threshold is INT2_THS_A (36h): interrupt 2 threshold, 7 bits.
type Int2Threshold uint8

// NewInt2Threshold returns the power-on default (zero).
func NewInt2Threshold() Int2Threshold { return 0 }

func (Int2Threshold) DevAddr() uint16 { return Address }
func (Int2Threshold) Addr() byte      { return RegInt2Threshold }
func (Int2Threshold) Writable()       {}

func (r Int2Threshold) Threshold() uint8 { return sevenBits.Get(uint8(r)) }

func (r Int2Threshold) WithThreshold(v uint8) (Int2Threshold, error) {
	if err := sevenBits.Check(v); err != nil {
		return r, err
	}
	return Int2Threshold(sevenBits.Put(uint8(r), v)), nil
}

// Int2Duration is INT2_DURATION_A (37h): minimum event duration, 7 bits.
type Int2Duration uint8

// NewInt2Duration returns the power-on default (zero).
func NewInt2Duration() Int2Duration { return 0 }

func (Int2Duration) DevAddr() uint16 { return Address }
func (Int2Duration) Addr() byte      { return RegInt2Duration }
func (Int2Duration) Writable()       {}

func (r Int2Duration) Duration() uint8 { return sevenBits.Get(uint8(r)) }

func (r Int2Duration) WithDuration(v uint8) (Int2Duration, error) {
	if err := sevenBits.Check(v); err != nil {
		return r, err
	}
	return Int2Duration(sevenBits.Put(uint8(r), v)), nil
}

// ClickConfig is CLICK_CFG_A (38h): single/double click detection per axis.
// Bits 7..6 are reserved.
type ClickConfig uint8

var (
	clickCfgZDouble = bitfield.Flag(2)
	clickCfgZSingle = bitfield.Flag(3)
	clickCfgYDouble = bitfield.Flag(4)
	clickCfgYSingle = bitfield.Flag(5)
	clickCfgXDouble = bitfield.Flag(6)
	clickCfgXSingle = bitfield.Flag(7)
)

// NewClickConfig returns the power-on default (click detection off).
func NewClickConfig() ClickConfig { return 0 }

func (ClickConfig) DevAddr() uint16 { return Address }
func (ClickConfig) Addr() byte      { return RegClickConfig }
func (ClickConfig) Writable()       {}

func (r ClickConfig) ZDouble() bool { return clickCfgZDouble.IsSet(uint8(r)) }
func (r ClickConfig) ZSingle() bool { return clickCfgZSingle.IsSet(uint8(r)) }
func (r ClickConfig) YDouble() bool { return clickCfgYDouble.IsSet(uint8(r)) }
func (r ClickConfig) YSingle() bool { return clickCfgYSingle.IsSet(uint8(r)) }
func (r ClickConfig) XDouble() bool { return clickCfgXDouble.IsSet(uint8(r)) }
func (r ClickConfig) XSingle() bool { return clickCfgXSingle.IsSet(uint8(r)) }

func (r ClickConfig) WithZDouble(v bool) ClickConfig {
	return ClickConfig(clickCfgZDouble.PutBool(uint8(r), v))
}
func (r ClickConfig) WithZSingle(v bool) ClickConfig {
	return ClickConfig(clickCfgZSingle.PutBool(uint8(r), v))
}
func (r ClickConfig) WithYDouble(v bool) ClickConfig {
	return ClickConfig(clickCfgYDouble.PutBool(uint8(r), v))
}
func (r ClickConfig) WithYSingle(v bool) ClickConfig {
	return ClickConfig(clickCfgYSingle.PutBool(uint8(r), v))
}
func (r ClickConfig) WithXDouble(v bool) ClickConfig {
	return ClickConfig(clickCfgXDouble.PutBool(uint8(r), v))
}
func (r ClickConfig) WithXSingle(v bool) ClickConfig {
	return ClickConfig(clickCfgXSingle.PutBool(uint8(r), v))
}

// ClickSource is CLICK_SRC_A (39h): click event flags. Read-only.
type ClickSource uint8

var (
	clickSrcActive   = bitfield.Flag(1)
	clickSrcDouble   = bitfield.Flag(2)
	clickSrcSingle   = bitfield.Flag(3)
	clickSrcNegative = bitfield.Flag(4)
	clickSrcZ        = bitfield.Flag(5)
	clickSrcY        = bitfield.Flag(6)
	clickSrcX        = bitfield.Flag(7)
)

func (ClickSource) DevAddr() uint16 { return Address }
func (ClickSource) Addr() byte      { return RegClickSource }

func (r ClickSource) Active() bool      { return clickSrcActive.IsSet(uint8(r)) }
func (r ClickSource) DoubleClick() bool { return clickSrcDouble.IsSet(uint8(r)) }
func (r ClickSource) SingleClick() bool { return clickSrcSingle.IsSet(uint8(r)) }

// Negative reports the sign of the click acceleration.
func (r ClickSource) Negative() bool { return clickSrcNegative.IsSet(uint8(r)) }
func (r ClickSource) Z() bool        { return clickSrcZ.IsSet(uint8(r)) }
func (r ClickSource) Y() bool        { return clickSrcY.IsSet(uint8(r)) }
func (r ClickSource) X() bool        { return clickSrcX.IsSet(uint8(r)) }

// ClickThreshold is CLICK_THS_A (3Ah): click threshold, 7 bits,
// 1 LSB = full-scale/128.
type ClickThreshold uint8

// NewClickThreshold returns the power-on default (zero).
func NewClickThreshold() ClickThreshold { return 0 }

func (ClickThreshold) DevAddr() uint16 { return Address }
func (ClickThreshold) Addr() byte      { return RegClickThreshold }
func (ClickThreshold) Writable()       {}

func (r ClickThreshold) Threshold() uint8 { return sevenBits.Get(uint8(r)) }

func (r ClickThreshold) WithThreshold(v uint8) (ClickThreshold, error) {
	if err := sevenBits.Check(v); err != nil {
		return r, err
	}
	return ClickThreshold(sevenBits.Put(uint8(r), v)), nil
}

// TimeLimit is TIME_LIMIT_A (3Bh): maximum click duration, 7 bits,
// 1 LSB = 1/ODR.
type TimeLimit uint8

// NewTimeLimit returns the power-on default (zero).
func NewTimeLimit() TimeLimit { return 0 }

func (TimeLimit) DevAddr() uint16 { return Address }
func (TimeLimit) Addr() byte      { return RegTimeLimit }
func (TimeLimit) Writable()       {}

func (r TimeLimit) Limit() uint8 { return sevenBits.Get(uint8(r)) }

func (r TimeLimit) WithLimit(v uint8) (TimeLimit, error) {
	if err := sevenBits.Check(v); err != nil {
		return r, err
	}
	return TimeLimit(sevenBits.Put(uint8(r), v)), nil
}

// TimeLatency is TIME_LATENCY_A (3Ch): double-click dead time after the
// first click, 1 LSB = 1/ODR.
type TimeLatency uint8

// NewTimeLatency returns the power-on default (zero).
func NewTimeLatency() TimeLatency { return 0 }

func (TimeLatency) DevAddr() uint16 { return Address }
func (TimeLatency) Addr() byte      { return RegTimeLatency }
func (TimeLatency) Writable()       {}

func (r TimeLatency) Latency() uint8 { return uint8(r) }

func (r TimeLatency) WithLatency(v uint8) TimeLatency { return TimeLatency(v) }

// TimeWindow is TIME_WINDOW_A (3Dh): window after the latency interval in
// which the second click may start, 1 LSB = 1/ODR.
type TimeWindow uint8

// NewTimeWindow returns the power-on default (zero).
func NewTimeWindow() TimeWindow { return 0 }

func (TimeWindow) DevAddr() uint16 { return Address }
func (TimeWindow) Addr() byte      { return RegTimeWindow }
func (TimeWindow) Writable()       {}

func (r TimeWindow) Window() uint8 { return uint8(r) }

func (r TimeWindow) WithWindow(v uint8) TimeWindow { return TimeWindow(v) }
