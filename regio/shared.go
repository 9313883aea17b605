package regio

import (
	"sync"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/physic"
)

// SharedBus wraps an i2c.Bus with a mutex so that independent device
// sessions can share one physical bus. Each transaction holds the lock for
// its full duration, which is the only guarantee the register layer needs
// from a shared transport.
//
// Note that this does not make read-modify-write sequences atomic; see
// Modify.
type SharedBus struct {
	mu  sync.Mutex
	bus i2c.Bus
}

// Share wraps bus for use by more than one device session.
func Share(bus i2c.Bus) *SharedBus {
	return &SharedBus{bus: bus}
}

// String implements i2c.Bus.
func (s *SharedBus) String() string {
	return s.bus.String()
}

// Tx implements i2c.Bus, serializing transactions on the wrapped bus.
func (s *SharedBus) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bus.Tx(addr, w, r)
}

// SetSpeed implements i2c.Bus.
func (s *SharedBus) SetSpeed(f physic.Frequency) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bus.SetSpeed(f)
}

var _ i2c.Bus = (*SharedBus)(nil)
