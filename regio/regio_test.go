package regio

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"periph.io/x/periph/conn/physic"
)

// ctrlReg is a read-write test register at 0x19/0x20.
type ctrlReg uint8

func (ctrlReg) DevAddr() uint16 { return 0x19 }
func (ctrlReg) Addr() byte      { return 0x20 }
func (ctrlReg) Writable()       {}

// statusReg is a read-only test register at 0x19/0x27. It has no Writable
// marker: Write[statusReg] and Modify[statusReg] do not compile, which is
// the write-rejection guarantee.
type statusReg uint8

func (statusReg) DevAddr() uint16 { return 0x19 }
func (statusReg) Addr() byte      { return 0x27 }

type busOp struct {
	addr uint16
	w    []byte
	r    int
}

// fakeBus is an in-memory i2c.Bus backed by a register file.
type fakeBus struct {
	regs   map[byte]byte
	ops    []busOp
	err    error
	writes int
}

func newFakeBus(regs map[byte]byte) *fakeBus {
	if regs == nil {
		regs = make(map[byte]byte)
	}
	return &fakeBus{regs: regs}
}

func (f *fakeBus) String() string                  { return "fake" }
func (f *fakeBus) SetSpeed(physic.Frequency) error { return nil }

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.ops = append(f.ops, busOp{addr: addr, w: append([]byte(nil), w...), r: len(r)})
	if f.err != nil {
		return f.err
	}
	if len(r) > 0 {
		for i := range r {
			r[i] = f.regs[w[0]+byte(i)]
		}
		return nil
	}
	f.writes++
	f.regs[w[0]] = w[1]
	return nil
}

func TestRead(t *testing.T) {
	bus := newFakeBus(map[byte]byte{0x27: 0x92})
	got, err := Read[statusReg](bus)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != 0x92 {
		t.Errorf("Read = %#02x, want 0x92", byte(got))
	}
	if len(bus.ops) != 1 || bus.ops[0].addr != 0x19 || bus.ops[0].w[0] != 0x27 || bus.ops[0].r != 1 {
		t.Errorf("unexpected bus transaction: %+v", bus.ops)
	}
}

func TestWrite(t *testing.T) {
	bus := newFakeBus(nil)
	if err := Write(bus, ctrlReg(0x77)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if bus.regs[0x20] != 0x77 {
		t.Errorf("register = %#02x, want 0x77", bus.regs[0x20])
	}
}

func TestModify(t *testing.T) {
	bus := newFakeBus(map[byte]byte{0x20: 0x07})
	got, err := Modify(bus, func(r ctrlReg) ctrlReg { return r | 0x70 })
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if got != 0x77 {
		t.Errorf("Modify = %#02x, want 0x77", byte(got))
	}
	if bus.regs[0x20] != 0x77 {
		t.Errorf("register = %#02x, want 0x77", bus.regs[0x20])
	}
	if len(bus.ops) != 2 {
		t.Errorf("got %d transactions, want read then write", len(bus.ops))
	}
}

func TestModifyFailedReadWritesNothing(t *testing.T) {
	bus := newFakeBus(nil)
	bus.err = errors.New("nack")
	if _, err := Modify(bus, func(r ctrlReg) ctrlReg { return r }); err == nil {
		t.Fatal("Modify: expected error")
	}
	if bus.writes != 0 {
		t.Errorf("bus saw %d writes after failed read, want 0", bus.writes)
	}
}

func TestBusErrorPassesThrough(t *testing.T) {
	sentinel := errors.New("arbitration lost")
	bus := newFakeBus(nil)
	bus.err = sentinel

	if _, err := Read[statusReg](bus); !errors.Is(err, sentinel) {
		t.Errorf("Read error = %v, want wrapped sentinel", err)
	}
	if err := Write(bus, ctrlReg(0)); !errors.Is(err, sentinel) {
		t.Errorf("Write error = %v, want wrapped sentinel", err)
	}
	if _, err := ReadBytes(bus, 0x19, 0x28, 6); !errors.Is(err, sentinel) {
		t.Errorf("ReadBytes error = %v, want wrapped sentinel", err)
	}
}

func TestReadBytes(t *testing.T) {
	bus := newFakeBus(map[byte]byte{0x28: 0x34, 0x29: 0x12, 0x2A: 0xFF, 0x2B: 0xFF})
	got, err := ReadBytes(bus, 0x19, 0x28, 4)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	want := []byte{0x34, 0x12, 0xFF, 0xFF}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ReadBytes = %#v, want %#v", got, want)
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		lo, hi byte
		want   int16
	}{
		{0x34, 0x12, 4660},
		{0xFF, 0xFF, -1},
		{0x00, 0x80, -32768},
		{0xFF, 0x7F, 32767},
		{0x00, 0x00, 0},
	}
	for _, tt := range tests {
		if got := Combine(tt.lo, tt.hi); got != tt.want {
			t.Errorf("Combine(%#02x, %#02x) = %d, want %d", tt.lo, tt.hi, got, tt.want)
		}
	}
}

// reentrantBus fails the test if two transactions overlap.
type reentrantBus struct {
	inFlight int32
	failed   int32
}

func (b *reentrantBus) String() string                  { return "reentrant" }
func (b *reentrantBus) SetSpeed(physic.Frequency) error { return nil }

func (b *reentrantBus) Tx(addr uint16, w, r []byte) error {
	if atomic.AddInt32(&b.inFlight, 1) != 1 {
		atomic.StoreInt32(&b.failed, 1)
	}
	for i := 0; i < 100; i++ {
		_ = i
	}
	atomic.AddInt32(&b.inFlight, -1)
	return nil
}

func TestSharedBusSerializesTransactions(t *testing.T) {
	inner := &reentrantBus{}
	bus := Share(inner)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = bus.Tx(0x19, []byte{0x20}, nil)
			}
		}()
	}
	wg.Wait()

	if atomic.LoadInt32(&inner.failed) != 0 {
		t.Error("observed overlapping transactions through SharedBus")
	}
}
