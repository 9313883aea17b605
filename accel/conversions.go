package accel

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

// Triple assembles the six bytes of an output register burst, laid out low
// byte first in X, Y, Z order, into a signed sample triple. buf must hold at
// least six bytes.
func Triple(buf []byte) (x, y, z int16) {
	_ = buf[5]
	x = regio.Combine(buf[0], buf[1])
	y = regio.Combine(buf[2], buf[3])
	z = regio.Combine(buf[4], buf[5])
	return x, y, z
}
