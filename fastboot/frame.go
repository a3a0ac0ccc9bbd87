package fastboot

import (
	"fmt"
	"strconv"
)

// Protocol constants shared by the codec and the transfer engine.
const (
	// StatusTagLen is the length of the ASCII status tag heading every response frame
	StatusTagLen = 4
	// DataLengthLen is the number of hex digits a DATA frame carries
	DataLengthLen = 8
	// ReadBufferSize is the buffer size used for every response read
	ReadBufferSize = 4096
	// ChunkSize is the size of a single pipe write during the data phase
	ChunkSize = 0x80000
	// MaxDownloadSize is the largest payload a download: command can announce
	MaxDownloadSize = 0xFFFFFFFF
)

// Frame is one decoded response unit.
type Frame struct {
	Status Status
	// Text is the ASCII payload after the status tag. For DATA frames it
	// holds only the 8 digit length field.
	Text string
	// RawPayload holds the same bytes as Text, undecoded.
	RawPayload []byte
}

func (f Frame) String() string {
	return fmt.Sprintf("%s %q", f.Status, f.Text)
}

// DataLength parses the transfer length announced by a DATA frame.
func (f Frame) DataLength() (uint32, error) {
	if f.Status != StatusData {
		return 0, fmt.Errorf("%w: frame status is %s, not DATA", ErrProtocolViolation, f.Status)
	}
	l, err := strconv.ParseUint(f.Text, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid data length %q", ErrUnparseableResponse, f.Text)
	}
	return uint32(l), nil
}

// EncodeCommand converts a command to its wire form. The text is sent
// verbatim, without terminator or length prefix.
func EncodeCommand(cmd string) []byte {
	return []byte(cmd)
}

// DecodeFrame decodes the first n bytes of buf as a response frame.
func DecodeFrame(buf []byte, n int) (f Frame, err error) {
	if n > len(buf) {
		n = len(buf)
	}
	if n < StatusTagLen {
		return f, fmt.Errorf("%w: got %d bytes", ErrMalformedFrame, n)
	}

	f.Status, err = parseStatus(buf[:StatusTagLen])
	if err != nil {
		return Frame{}, err
	}

	end := n
	if f.Status == StatusData && end > StatusTagLen+DataLengthLen {
		end = StatusTagLen + DataLengthLen
	}

	f.RawPayload = make([]byte, end-StatusTagLen)
	copy(f.RawPayload, buf[StatusTagLen:end])
	f.Text = string(f.RawPayload)
	return f, nil
}
