package fastboot

import (
	"bytes"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Upload runs the download sub-protocol: it announces length with a
// download command, streams length bytes from src in ChunkSize writes and
// returns the device's final OKAY frame.
//
// If the device does not answer the announcement with DATA nothing is
// streamed. Once streaming started a failure leaves the device in an
// undefined state; the error carries whatever text the device sent.
func (d *Device) Upload(src io.Reader, length int64) (Frame, error) {
	unlock, err := d.lock()
	if err != nil {
		return Frame{}, err
	}
	defer unlock()

	return d.upload(src, length)
}

// UploadBytes uploads data as a single payload.
func (d *Device) UploadBytes(data []byte) (Frame, error) {
	return d.Upload(bytes.NewReader(data), int64(len(data)))
}

func downloadCommand(length int64) (string, error) {
	if length < 0 || length > MaxDownloadSize {
		return "", fmt.Errorf("%w: %d bytes", ErrImageTooLarge, length)
	}
	return fmt.Sprintf("download:%08X", uint32(length)), nil
}

func (d *Device) upload(src io.Reader, length int64) (Frame, error) {
	cmd, err := downloadCommand(length)
	if err != nil {
		return Frame{}, err
	}

	frames, err := d.send(cmd)
	if err != nil {
		return Frame{}, err
	}
	accept := terminal(frames)
	if accept.Status != StatusData {
		return accept, &ProtocolError{Command: cmd, Expected: StatusData, Got: accept}
	}
	if announced, err := accept.DataLength(); err == nil && int64(announced) != length {
		d.log.WithFields(log.Fields{"requested": length, "announced": announced}).Warn("device announced a different download size")
	}

	if err := d.stream(src, length); err != nil {
		return Frame{}, err
	}

	// the data phase never produces INFO lines, so exactly one frame follows
	last, err := d.readFrame()
	if err != nil {
		return Frame{}, err
	}
	if last.Status != StatusOkay {
		return last, &ProtocolError{Command: cmd, Expected: StatusOkay, Got: last}
	}
	return last, nil
}

func (d *Device) stream(src io.Reader, length int64) error {
	if length == 0 {
		return nil
	}

	bufSize := int64(ChunkSize)
	if length < bufSize {
		bufSize = length
	}
	buf := make([]byte, bufSize)

	var sent int64
	for remaining := length; remaining > 0; {
		chunk := buf
		if remaining < ChunkSize {
			chunk = buf[:remaining]
		}
		if _, err := io.ReadFull(src, chunk); err != nil {
			return fmt.Errorf("reading payload at offset %#x: %v", sent, err)
		}
		if err := d.writeChunk(chunk); err != nil {
			return err
		}
		sent += int64(len(chunk))
		remaining -= int64(len(chunk))
		d.log.WithFields(log.Fields{"sent": sent, "total": length}).Debug("chunk written")
	}
	return nil
}

func (d *Device) writeChunk(chunk []byte) error {
	n, err := d.pipe.Write(chunk)
	if err != nil {
		return transportError("data write", err)
	}
	if n != len(chunk) {
		return transportError("data write", io.ErrShortWrite)
	}
	return nil
}
