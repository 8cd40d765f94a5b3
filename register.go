package lidarlite

import "fmt"

const (
	// Acquisition command, write 0x04 to take a range measurement
	ACQ_CMD uint8 = 0x00
	// Status register, bit 0 is the busy flag
	STATUS uint8 = 0x01

	// Configuration registers written by Configure
	SIG_CNT_VAL   uint8 = 0x02
	ACQ_CONFIG    uint8 = 0x04
	REF_CNT_VAL   uint8 = 0x12
	THRESH_BYPASS uint8 = 0x1C

	// Measurement results
	SIGNAL_STRENGTH uint8 = 0x0E // single byte
	DISTANCE        uint8 = 0x0F // high byte, low byte at 0x10

	// Identity and secondary address registers
	UNIT_ID     uint8 = 0x16 // high byte, low byte at 0x17
	I2C_ID      uint8 = 0x18 // high byte, low byte at 0x19
	I2C_SEC_ADR uint8 = 0x1A
	I2C_CONFIG  uint8 = 0x1E

	// Test mode and correlation record access
	COMMAND      uint8 = 0x40
	CORR_DATA    uint8 = 0x52 // magnitude byte, sign byte at 0x53
	ACQ_SETTINGS uint8 = 0x5D

	// AutoIncrement is OR'ed into a register address so a multi byte read
	// advances through consecutive registers
	AutoIncrement uint8 = 0x80
)

// writeRegister writes data to consecutive registers starting at reg.  Each
// byte is sent as its own register write since the sensor does not accept
// block writes.  A zero length write is a no-op.
func (v *LIDARLite) writeRegister(reg uint8, data ...uint8) error {
	return v.writeRegisterAt(v.addr, reg, data...)
}

// writeRegisterAt is writeRegister sent to an explicit bus address
func (v *LIDARLite) writeRegisterAt(addr uint8, reg uint8, data ...uint8) error {

	if len(data) == 0 {
		return nil
	}

	if err := v.selectAddr(addr); err != nil {
		return err
	}

	for i, b := range data {
		buf := []byte{reg + uint8(i), b}

		if _, err := v.bus.WriteBytes(buf); err != nil {
			return fmt.Errorf("%w: write reg 0x%02x: %w", ErrIO, reg+uint8(i), err)
		}
	}

	return nil
}

// readRegister reads count bytes starting at reg.  Set AutoIncrement in reg to
// read across consecutive registers.
func (v *LIDARLite) readRegister(reg uint8, count int) ([]byte, error) {

	if err := v.selectAddr(v.addr); err != nil {
		return nil, err
	}

	// Write the register address.
	if _, err := v.bus.WriteBytes([]byte{reg}); err != nil {
		return nil, fmt.Errorf("%w: address reg 0x%02x: %w", ErrIO, reg, err)
	}

	buf := make([]byte, count)
	n, err := v.bus.ReadBytes(buf)

	if err != nil {
		return nil, fmt.Errorf("%w: read reg 0x%02x: %w", ErrIO, reg, err)
	}

	if n < count {
		return nil, fmt.Errorf("%w: read reg 0x%02x: insufficient data", ErrIO, reg)
	}

	return buf, nil
}

// readReg16Bit reads a big endian 16-bit value from a register pair
func (v *LIDARLite) readReg16Bit(reg uint8) (uint16, error) {

	buf, err := v.readRegister(reg|AutoIncrement, 2)

	if err != nil {
		return 0, err
	}

	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// selectAddr re-affirms the target address before a transaction, the bus may
// have been pointed elsewhere by other users in between
func (v *LIDARLite) selectAddr(addr uint8) error {

	if err := v.bus.Select(addr); err != nil {
		return fmt.Errorf("%w: select 0x%02x: %w", ErrBusUnavailable, addr, err)
	}

	return nil
}
