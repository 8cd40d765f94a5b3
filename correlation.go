package lidarlite

import (
	"errors"
	"fmt"
)

// MaxCorrelationSamples is the length of the sensors correlation record
const MaxCorrelationSamples = 1024

// ReadCorrelationRecord reads count points of the correlation record the
// sensor used to calculate the last distance.  The record is a bipolar wave,
// the zero crossing marks the delay between reference and return signals.
//
// At least one distance acquisition must have completed before calling this,
// otherwise the sensor returns meaningless data.
func (v *LIDARLite) ReadCorrelationRecord(count int) (record []int16, err error) {

	if count < 0 || count > MaxCorrelationSamples {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	v.log.Printf("Read correlation record, %d samples", count)

	// select memory bank
	if err := v.writeRegister(ACQ_SETTINGS, 0xC0); err != nil {
		return nil, err
	}

	// never leave the sensor in test mode, even if the enable write reported
	// an error after reaching the device
	defer func() {
		if derr := v.writeRegister(COMMAND, 0x00); derr != nil {
			err = errors.Join(err, fmt.Errorf("test mode disable: %w", derr))
			record = nil
		}
	}()

	// test mode enable
	if err := v.writeRegister(COMMAND, 0x07); err != nil {
		return nil, fmt.Errorf("test mode enable: %w", err)
	}

	record = make([]int16, 0, count)

	for i := 0; i < count; i++ {
		buf, rerr := v.readRegister(CORR_DATA|AutoIncrement, 2)

		if rerr != nil {
			return nil, fmt.Errorf("correlation sample %d: %w", i, rerr)
		}

		record = append(record, DecodeCorrelationSample(buf[0], buf[1]))
	}

	return record, nil
}

// DecodeCorrelationSample assembles a correlation point from its magnitude
// byte and sign byte.  A nonzero sign byte sign extends the magnitude.
func DecodeCorrelationSample(magnitude, sign uint8) int16 {

	if sign != 0 {
		return int16(0xFF00 | uint16(magnitude))
	}

	return int16(magnitude)
}
