package lidarlite

import (
	"fmt"

	"github.com/swdee/go-i2c"
)

// Bus is the transport the sensor is driven over.  Select designates the
// device address subsequent WriteBytes and ReadBytes calls are sent to.
type Bus interface {
	Select(addr uint8) error
	WriteBytes(buf []byte) (int, error)
	ReadBytes(buf []byte) (int, error)
}

// I2CBus implements Bus on a Linux I2C device node.  A connection is opened
// per device address the first time it is selected and reused afterwards.
type I2CBus struct {
	dev   string
	conns map[uint8]*i2c.Options
	cur   *i2c.Options
}

// NewI2CBus opens the I2C device node (eg: /dev/i2c-1) for the given address
// and selects it.
func NewI2CBus(dev string, addr uint8) (*I2CBus, error) {

	b := &I2CBus{
		dev:   dev,
		conns: make(map[uint8]*i2c.Options),
	}

	if err := b.Select(addr); err != nil {
		return nil, err
	}

	return b, nil
}

// Select makes addr the target of the following transfers, opening a new
// connection to it if needed
func (b *I2CBus) Select(addr uint8) error {

	if conn, ok := b.conns[addr]; ok {
		b.cur = conn
		return nil
	}

	conn, err := i2c.New(addr, b.dev)

	if err != nil {
		return fmt.Errorf("open 0x%02x on %s: %w", addr, b.dev, err)
	}

	b.conns[addr] = conn
	b.cur = conn
	return nil
}

// WriteBytes writes buf to the selected device
func (b *I2CBus) WriteBytes(buf []byte) (int, error) {

	if b.cur == nil {
		return 0, fmt.Errorf("%w: no device selected", ErrBusUnavailable)
	}

	return b.cur.WriteBytes(buf)
}

// ReadBytes reads len(buf) bytes from the selected device
func (b *I2CBus) ReadBytes(buf []byte) (int, error) {

	if b.cur == nil {
		return 0, fmt.Errorf("%w: no device selected", ErrBusUnavailable)
	}

	return b.cur.ReadBytes(buf)
}

// Dev returns the path of the I2C device node
func (b *I2CBus) Dev() string {
	return b.dev
}

// Close closes every connection opened by Select
func (b *I2CBus) Close() error {

	var firstErr error

	for addr, conn := range b.conns {
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}

		delete(b.conns, addr)
	}

	b.cur = nil
	return firstErr
}
