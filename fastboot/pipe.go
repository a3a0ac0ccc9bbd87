package fastboot

import "io"

// Pipe is a bidirectional byte link to a device in fastboot mode.
//
// Read must return the bytes of one physical transfer, so a short read
// marks a frame boundary. Write must write all of p or return an error.
// If the pipe also implements io.Closer, the Device owning it closes it.
type Pipe interface {
	io.Reader
	io.Writer
}
