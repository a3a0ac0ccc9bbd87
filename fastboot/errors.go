package fastboot

import (
	"errors"
	"fmt"
)

var (
	ErrTransport           = errors.New("fastboot transport error")
	ErrMalformedFrame      = errors.New("malformed response frame")
	ErrUnknownStatus       = errors.New("unknown response status")
	ErrProtocolViolation   = errors.New("protocol violation")
	ErrUnparseableResponse = errors.New("unparseable device response")
	ErrCommandFailed       = errors.New("command failed")
	ErrImageTooLarge       = errors.New("image exceeds 32 bit download size")
	ErrUnsupportedSlot     = errors.New("unsupported slot")
	ErrUnknownRebootMode   = errors.New("unknown reboot mode")
	ErrClosed              = errors.New("fastboot device closed")
)

// CommandError is returned when the device answers a command with FAIL.
type CommandError struct {
	Command string
	Text    string
}

func (e *CommandError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("command '%s' failed", e.Command)
	}
	return fmt.Sprintf("command '%s' failed: %s", e.Command, e.Text)
}

func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

// ProtocolError is returned when a terminal status is wrong for the
// operation in progress.
type ProtocolError struct {
	Command  string
	Expected Status
	Got      Frame
}

func (e *ProtocolError) Error() string {
	res := fmt.Sprintf("protocol violation on '%s': expected %s, got %s", e.Command, e.Expected, e.Got.Status)
	if e.Got.Text != "" {
		res += fmt.Sprintf(" (%s)", e.Got.Text)
	}
	return res
}

func (e *ProtocolError) Unwrap() error {
	return ErrProtocolViolation
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrTransport, op, err)
}
