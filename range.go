package lidarlite

import (
	"context"
	"fmt"
	"time"
)

// Measurement holds the result of a single acquisition
type Measurement struct {
	// Distance in centimeters
	Distance       uint16
	SignalStrength uint16
}

// TakeRange triggers a distance acquisition.  It does not wait for the
// measurement to complete.
func (v *LIDARLite) TakeRange() error {

	// 0x04 is acquire with receiver bias correction
	return v.writeRegister(ACQ_CMD, 0x04)
}

// IsBusy reads the status register and reports whether an acquisition is in
// progress.  Every call is a fresh bus read.
func (v *LIDARLite) IsBusy() (bool, error) {

	buf, err := v.readRegister(STATUS, 1)

	if err != nil {
		return false, err
	}

	return buf[0]&0x01 != 0, nil
}

// SetTimeout bounds how long WaitUntilIdle polls.  Zero, the default, polls
// until the sensor is idle or the callers context is done.
func (v *LIDARLite) SetTimeout(timeout time.Duration) {
	v.ioTimeout = timeout
}

// TimeoutOccurred reports whether WaitUntilIdle gave up on the SetTimeout
// limit since the last call, and clears the flag
func (v *LIDARLite) TimeoutOccurred() bool {
	occurred := v.didTimeout
	v.didTimeout = false
	return occurred
}

// WaitUntilIdle polls the busy flag without delay until the sensor is idle.
// Polling stops early if ctx is done, returning its error, or when the
// timeout set with SetTimeout expires, returning ErrTimeout.  With no timeout
// and a context that is never cancelled it blocks until the sensor goes idle.
func (v *LIDARLite) WaitUntilIdle(ctx context.Context) error {

	pollCtx := ctx

	if v.ioTimeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, v.ioTimeout)
		defer cancel()
	}

	for {
		busy, err := v.IsBusy()

		if err != nil {
			return err
		}

		if !busy {
			return nil
		}

		if pollCtx.Err() == nil {
			continue
		}

		// the callers own cancellation or deadline wins over SetTimeout
		if err := ctx.Err(); err != nil {
			return err
		}

		v.didTimeout = true
		return fmt.Errorf("%w after %s", ErrTimeout, v.ioTimeout)
	}
}

// ReadDistance returns the distance in centimeters from the last completed
// acquisition
func (v *LIDARLite) ReadDistance() (uint16, error) {
	return v.readReg16Bit(DISTANCE)
}

// ReadSignalStrength returns the signal strength from the last completed
// acquisition.  The sensor reports it as a single byte.
func (v *LIDARLite) ReadSignalStrength() (uint16, error) {

	buf, err := v.readRegister(SIGNAL_STRENGTH, 1)

	if err != nil {
		return 0, err
	}

	return uint16(buf[0]), nil
}

// Read returns distance and signal strength of the last completed
// acquisition.  Called straight after TakeRange it returns the previous
// measurement while the new one is being taken.
func (v *LIDARLite) Read() (Measurement, error) {

	dist, err := v.ReadDistance()

	if err != nil {
		return Measurement{}, err
	}

	sig, err := v.ReadSignalStrength()

	if err != nil {
		return Measurement{}, err
	}

	return Measurement{Distance: dist, SignalStrength: sig}, nil
}

// ReadSingle performs a single-shot measurement, waiting for it to complete
func (v *LIDARLite) ReadSingle(ctx context.Context) (Measurement, error) {

	if err := v.TakeRange(); err != nil {
		return Measurement{}, err
	}

	if err := v.WaitUntilIdle(ctx); err != nil {
		return Measurement{}, err
	}

	return v.Read()
}
