package fastboot

import "fmt"

type Status byte

const (
	StatusInfo Status = iota
	StatusOkay
	StatusData
	StatusFail
)

// Tag returns the 4 byte ASCII wire tag of the status.
func (s Status) Tag() string {
	switch s {
	case StatusInfo:
		return "INFO"
	case StatusOkay:
		return "OKAY"
	case StatusData:
		return "DATA"
	case StatusFail:
		return "FAIL"
	}
	return ""
}

func (s Status) String() string {
	if tag := s.Tag(); tag != "" {
		return tag
	}
	return fmt.Sprintf("Unknown status %02x", byte(s))
}

// IsTerminal reports whether a frame with this status ends a response sequence.
func (s Status) IsTerminal() bool {
	return s != StatusInfo
}

func parseStatus(tag []byte) (Status, error) {
	switch string(tag) {
	case "INFO":
		return StatusInfo, nil
	case "OKAY":
		return StatusOkay, nil
	case "DATA":
		return StatusData, nil
	case "FAIL":
		return StatusFail, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, tag)
}
