// go-lidarlite is an I2C driver for the Garmin LIDAR-Lite v3 optical
// rangefinder.
package lidarlite

import (
	"fmt"
	"io"
	"log"
	"time"
)

const (
	// Address is the default address of the sensor on I2C bus
	Address uint8 = 0x62
)

// Logger is the logging interface used for debug output. It is satisfied by
// *log.Logger and by logrus loggers and entries.
type Logger interface {
	Printf(format string, v ...interface{})
}

// LIDARLite represents a single LIDAR-Lite v3 sensor instance.  All device
// state lives in the sensor registers, the handle only remembers which bus
// address it currently targets.  A handle is not safe for concurrent use,
// callers sharing one must serialize access themselves.
type LIDARLite struct {
	// bus is the I2C interface
	bus Bus
	// addr is the bus address every transaction is sent to
	addr uint8

	// ioTimeout bounds WaitUntilIdle, zero polls without limit
	ioTimeout  time.Duration
	didTimeout bool

	// log logger for debugging
	log Logger
}

// New returns a new LIDAR-Lite sensor instance targeting the given bus
// address.
func New(bus Bus, addr uint8) (*LIDARLite, error) {

	v, err := new(bus, addr)

	if err != nil {
		return nil, err
	}

	// create null logger
	v.log = log.New(io.Discard, "", log.LstdFlags)

	return v, nil
}

// NewWithLog creates sensor instance with logger to be used for debugging
func NewWithLog(bus Bus, addr uint8, log Logger) (*LIDARLite, error) {

	v, err := new(bus, addr)

	if err != nil {
		return nil, err
	}

	// set logger
	v.log = log

	return v, nil
}

// new returns a new LIDAR-Lite sensor instance
func new(bus Bus, addr uint8) (*LIDARLite, error) {

	if bus == nil {
		return nil, fmt.Errorf("%w: I2C bus is not initiated", ErrBusUnavailable)
	}

	if err := checkAddr(addr); err != nil {
		return nil, err
	}

	v := &LIDARLite{
		bus:       bus,
		addr:      addr,
		ioTimeout: 0, // no timeout by default
	}

	return v, nil
}

// Address returns the bus address the handle currently targets
func (v *LIDARLite) Address() uint8 {
	return v.addr
}

// SetTarget points the handle at a different bus address without touching
// the device.  Use it after independently confirming which address the sensor
// answers on, for example following a failed SetSecondaryAddress.
func (v *LIDARLite) SetTarget(addr uint8) error {

	if err := checkAddr(addr); err != nil {
		return err
	}

	v.log.Printf("Retarget handle 0x%02x -> 0x%02x", v.addr, addr)
	v.addr = addr
	return nil
}

// checkAddr rejects addresses that do not fit the 7-bit bus address space
func checkAddr(addr uint8) error {

	if addr == 0 || addr > 0x7F {
		return fmt.Errorf("%w: 0x%02x", ErrInvalidAddress, addr)
	}

	return nil
}
