package lidarlite

import "fmt"

// disableDefaultAddr is set in I2C_CONFIG to stop the sensor answering on its
// default address
const disableDefaultAddr uint8 = 1 << 3

// SetSecondaryAddress makes the sensor listen on newAddr.  If disableDefault
// is true the sensor stops answering on its previous address.  On success the
// handle targets newAddr.
//
// The sequence is not atomic.  If it fails part way the sensor may answer on
// either address; confirm which one works and call SetTarget before retrying.
func (v *LIDARLite) SetSecondaryAddress(newAddr uint8, disableDefault bool) error {

	if err := checkAddr(newAddr); err != nil {
		return err
	}

	v.log.Printf("Set secondary address 0x%02x -> 0x%02x (disable default: %v)",
		v.addr, newAddr, disableDefault)

	// the sensor only accepts a new address after its serial number has been
	// copied into I2C_ID
	id, err := v.readRegister(UNIT_ID|AutoIncrement, 2)

	if err != nil {
		return fmt.Errorf("read unit id: %w", err)
	}

	if err := v.writeRegister(I2C_ID, id...); err != nil {
		return fmt.Errorf("write i2c id: %w", err)
	}

	if err := v.writeRegister(I2C_SEC_ADR, newAddr); err != nil {
		return fmt.Errorf("write secondary address: %w", err)
	}

	// enable the new address, still talking on the current one
	if err := v.writeRegister(I2C_CONFIG, 0x00); err != nil {
		return fmt.Errorf("enable secondary address: %w", err)
	}

	if disableDefault {
		if err := v.writeRegisterAt(newAddr, I2C_CONFIG, disableDefaultAddr); err != nil {
			return fmt.Errorf("disable default address: %w", err)
		}
	}

	v.addr = newAddr
	return nil
}
