package mag

import "github.com/sunsided/lsm303dlhc/regio"

// Combine forms the signed X-axis sample from its register pair.
func (lo OutXLow) Combine(hi OutXHigh) int16 {
	return regio.Combine(byte(lo), byte(hi))
}

// Combine forms the signed Y-axis sample from its register pair.
func (lo OutYLow) Combine(hi OutYHigh) int16 {
	return regio.Combine(byte(lo), byte(hi))
}

// Combine forms the signed Z-axis sample from its register pair.
func (lo OutZLow) Combine(hi OutZHigh) int16 {
	return regio.Combine(byte(lo), byte(hi))
}

// Combine forms the signed 12-bit temperature reading from its register
// pair. Unlike the magnetic axes, the temperature value follows the
// accelerometer's byte convention; the reading is left-justified and
// shifted down with its sign preserved.
func (lo TempOutLow) Combine(hi TempOutHigh) int16 {
	return regio.Combine(byte(lo), byte(hi)) >> 4
}

// Triple assembles the six bytes of an output register burst, laid out high
// byte first in X, Z, Y order, into a signed (x, y, z) triple. buf must
// hold at least six bytes.
func Triple(buf []byte) (x, y, z int16) {
	_ = buf[5]
	x = regio.Combine(buf[1], buf[0])
	z = regio.Combine(buf[3], buf[2])
	y = regio.Combine(buf[5], buf[4])
	return x, y, z
}
