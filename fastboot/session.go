package fastboot

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Send writes cmd to the device and collects its full response sequence.
// Every frame but the last has status INFO. On a transport or framing
// error no frames are returned.
func (d *Device) Send(cmd string) ([]Frame, error) {
	unlock, err := d.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	return d.send(cmd)
}

func (d *Device) send(cmd string) ([]Frame, error) {
	if err := d.write(EncodeCommand(cmd)); err != nil {
		return nil, err
	}

	var frames []Frame
	for {
		f, err := d.readFrame()
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
		if f.Status.IsTerminal() {
			return frames, nil
		}
	}
}

func (d *Device) write(p []byte) error {
	if d.showInOut {
		d.log.WithFields(log.Fields{"dir": "out", "len": len(p)}).Debugf("% x", p)
	}
	n, err := d.pipe.Write(p)
	if err != nil {
		return transportError("write", err)
	}
	if n != len(p) {
		return transportError("write", io.ErrShortWrite)
	}
	return nil
}

func (d *Device) readFrame() (Frame, error) {
	buf := make([]byte, ReadBufferSize)
	n, err := d.pipe.Read(buf)
	if err != nil {
		return Frame{}, transportError("read", err)
	}

	f, err := DecodeFrame(buf, n)
	if err != nil {
		return Frame{}, err
	}
	if d.showInOut {
		d.log.WithFields(log.Fields{"dir": "in", "status": f.Status}).Debug(f.Text)
	}
	return f, nil
}

// terminal returns the last frame of a response sequence.
func terminal(frames []Frame) Frame {
	return frames[len(frames)-1]
}

// expectOkay maps the terminal frame of a sequence to the command result.
func expectOkay(cmd string, frames []Frame) error {
	switch last := terminal(frames); last.Status {
	case StatusOkay:
		return nil
	case StatusFail:
		return &CommandError{Command: cmd, Text: last.Text}
	default:
		return &ProtocolError{Command: cmd, Expected: StatusOkay, Got: last}
	}
}
