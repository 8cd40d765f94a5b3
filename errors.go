package lidarlite

import "errors"

var (
	// ErrBusUnavailable signals that the bus could not be opened or the
	// device address could not be selected.
	ErrBusUnavailable = errors.New("I2C bus unavailable")

	// ErrIO signals a failed register read or write transaction.
	ErrIO = errors.New("I2C transfer failed")

	// ErrTimeout signals that the sensor stayed busy longer than the timeout
	// set with SetTimeout.
	ErrTimeout = errors.New("timeout waiting for sensor")

	// ErrInvalidAddress signals a bus address outside the 7-bit range
	// 0x01..0x7f.
	ErrInvalidAddress = errors.New("invalid I2C address")

	// ErrInvalidCount signals a correlation record length outside
	// 0..MaxCorrelationSamples.
	ErrInvalidCount = errors.New("invalid correlation sample count")
)
