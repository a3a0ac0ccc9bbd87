package fastboot

import "fmt"

// Slot names one of the two A/B boot partition sets.
type Slot string

const (
	SlotA Slot = "a"
	SlotB Slot = "b"
)

// Other returns the opposite slot. Only a and b are supported.
func (s Slot) Other() (Slot, error) {
	switch s {
	case SlotA:
		return SlotB, nil
	case SlotB:
		return SlotA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedSlot, string(s))
}

type RebootMode string

const (
	RebootRecovery   RebootMode = "recovery"
	RebootFastboot   RebootMode = "fastboot"
	RebootBootloader RebootMode = "bootloader"
)

// ParseRebootMode validates a user supplied reboot target.
func ParseRebootMode(mode string) (RebootMode, error) {
	switch m := RebootMode(mode); m {
	case RebootRecovery, RebootFastboot, RebootBootloader:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRebootMode, mode)
}
