package fastboot

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/sigurn/crc16"
)

var crcTable = crc16.MakeTable(crc16.CRC16_CCITT_FALSE)

// Image is a boot or partition image held in memory, so its size is
// known before the download command is sent.
type Image struct {
	Path string
	Data []byte
	CRC  uint16
}

// LoadImage reads an image file from disk.
func LoadImage(path string) (img *Image, err error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading image file: %v", err)
	}
	return NewImage(path, data)
}

// NewImage wraps data as an image. Data larger than MaxDownloadSize is rejected.
func NewImage(name string, data []byte) (*Image, error) {
	if int64(len(data)) > MaxDownloadSize {
		return nil, fmt.Errorf("%w: '%s' has %d bytes", ErrImageTooLarge, name, len(data))
	}
	return &Image{
		Path: name,
		Data: data,
		CRC:  crc16.Checksum(data, crcTable),
	}, nil
}

func (i *Image) Size() int64 {
	return int64(len(i.Data))
}

// Reader returns a fresh reader over the image data.
func (i *Image) Reader() io.Reader {
	return bytes.NewReader(i.Data)
}

func (i *Image) String() string {
	return fmt.Sprintf("'%s' size %#x CRC %#04x", i.Path, len(i.Data), i.CRC)
}

// BootImage uploads img and boots it.
func (d *Device) BootImage(img *Image) error {
	d.log.WithField("image", img.String()).Info("booting image")
	return d.Boot(img.Reader(), img.Size())
}

// FlashImage uploads img and writes it to partition.
func (d *Device) FlashImage(partition string, img *Image) error {
	d.log.WithField("image", img.String()).Infof("flashing partition %s", partition)
	return d.Flash(partition, img.Reader(), img.Size())
}
