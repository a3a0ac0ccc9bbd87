package fastboot

import (
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Device is a fastboot session on top of an exclusively owned Pipe.
// Only one command is ever outstanding; exported operations serialize on
// an internal lock and composite operations keep it for all their steps.
type Device struct {
	mu     sync.Mutex
	pipe   Pipe
	closed bool

	showInOut bool
	log       *log.Entry
}

// NewDevice takes ownership of pipe for the lifetime of the session.
func NewDevice(pipe Pipe) *Device {
	return &Device{
		pipe: pipe,
		log:  log.WithField("component", "fastboot"),
	}
}

// SetShowInOut toggles logging of every command sent and frame received.
func (d *Device) SetShowInOut(show bool) {
	d.mu.Lock()
	d.showInOut = show
	d.mu.Unlock()
}

// Close releases the pipe. Calling Close more than once is a no-op.
func (d *Device) Close() (err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	if c, ok := d.pipe.(io.Closer); ok {
		err = c.Close()
	}
	d.log.Debug("fastboot session closed")
	return err
}

// lock acquires the session for one operation. The returned func releases it.
func (d *Device) lock() (func(), error) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil, ErrClosed
	}
	return d.mu.Unlock, nil
}
