package lidarlite

import (
	"errors"
	"fmt"
)

var errInjected = errors.New("injected fault")

const (
	t_SELECT = iota
	t_WRITE
	t_READ
)

// busItem is a single recorded bus operation
type busItem struct {
	typ  int
	addr uint8
	b    []byte
}

func (i busItem) String() string {
	switch i.typ {
	case t_SELECT:
		return fmt.Sprintf("SELECT %#02x", i.addr)
	case t_WRITE:
		return fmt.Sprintf("WRITE @%#02x % x", i.addr, i.b)
	case t_READ:
		return fmt.Sprintf("READ @%#02x % x", i.addr, i.b)
	}

	return "unknown busItem typ"
}

// fakeBus is a register file that records every operation sent to it.  Reads
// return consecutive register contents from the last addressed register.
type fakeBus struct {
	addr uint8
	regs map[uint8]byte
	log  []busItem

	// pointer is the register addressed by the last single byte write
	pointer uint8

	// readHook, when set, supplies the data for a read of the given register
	readHook func(reg uint8, n int) ([]byte, error)

	// failWrite fails a two byte write to the given register when set
	failWrite    bool
	failWriteReg uint8

	failSelect bool

	// selectHook and writeHook, when set, may fail a select or a register
	// write.  writeHook sees the address the write is sent to.
	selectHook func(addr uint8) error
	writeHook  func(addr uint8, buf []byte) error
}

func newFakeBus() *fakeBus {
	return &fakeBus{
		addr: Address,
		regs: make(map[uint8]byte),
	}
}

// set stores data in consecutive registers starting at reg
func (f *fakeBus) set(reg uint8, data ...byte) {
	for i, b := range data {
		f.regs[reg+uint8(i)] = b
	}
}

func (f *fakeBus) Select(addr uint8) error {
	if f.failSelect {
		return errInjected
	}

	if f.selectHook != nil {
		if err := f.selectHook(addr); err != nil {
			return err
		}
	}

	f.addr = addr
	f.log = append(f.log, busItem{t_SELECT, addr, nil})
	return nil
}

func (f *fakeBus) WriteBytes(buf []byte) (int, error) {
	cp := append([]byte(nil), buf...)
	f.log = append(f.log, busItem{t_WRITE, f.addr, cp})

	if len(buf) == 1 {
		f.pointer = buf[0]
		return 1, nil
	}

	if f.failWrite && buf[0] == f.failWriteReg {
		return 0, errInjected
	}

	if f.writeHook != nil {
		if err := f.writeHook(f.addr, buf); err != nil {
			return 0, err
		}
	}

	f.set(buf[0], buf[1:]...)
	return len(buf), nil
}

func (f *fakeBus) ReadBytes(buf []byte) (int, error) {
	reg := f.pointer &^ AutoIncrement

	if f.readHook != nil {
		data, err := f.readHook(reg, len(buf))

		if err != nil {
			f.log = append(f.log, busItem{t_READ, f.addr, nil})
			return 0, err
		}

		n := copy(buf, data)
		f.log = append(f.log, busItem{t_READ, f.addr, append([]byte(nil), buf[:n]...)})
		return n, nil
	}

	for i := range buf {
		r := reg
		if f.pointer&AutoIncrement != 0 {
			r += uint8(i)
		}

		buf[i] = f.regs[r]
	}

	f.log = append(f.log, busItem{t_READ, f.addr, append([]byte(nil), buf...)})
	return len(buf), nil
}

// writes returns the register writes recorded, skipping register address
// writes that precede a read
func (f *fakeBus) writes() []busItem {
	var out []busItem

	for _, item := range f.log {
		if item.typ == t_WRITE && len(item.b) > 1 {
			out = append(out, item)
		}
	}

	return out
}

// count returns the number of recorded operations of the given type
func (f *fakeBus) count(typ int) int {
	n := 0

	for _, item := range f.log {
		if item.typ == typ {
			n++
		}
	}

	return n
}

func (f *fakeBus) reset() {
	f.log = nil
}
