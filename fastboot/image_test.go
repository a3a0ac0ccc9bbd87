package fastboot

import (
	"bytes"
	"io"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newImageReader(s string) io.Reader {
	return bytes.NewReader([]byte(s))
}

func TestNewImageCRC(t *testing.T) {
	img, err := NewImage("check", []byte("123456789"))
	require.NoError(t, err)
	// CRC-16/CCITT-FALSE check value
	require.Equal(t, uint16(0x29B1), img.CRC)
	require.Equal(t, int64(9), img.Size())
	require.Contains(t, img.String(), "0x29b1")
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boot.img")
	require.NoError(t, ioutil.WriteFile(path, []byte("ANDROID!"), 0o600))

	img, err := LoadImage(path)
	require.NoError(t, err)
	require.Equal(t, path, img.Path)

	data, err := ioutil.ReadAll(img.Reader())
	require.NoError(t, err)
	require.Equal(t, []byte("ANDROID!"), data)

	// every reader starts at the beginning
	data, err = ioutil.ReadAll(img.Reader())
	require.NoError(t, err)
	require.Len(t, data, 8)
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.img"))
	require.Error(t, err)
}
