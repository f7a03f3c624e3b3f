package datauri

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestEncodeImageSniffsType(t *testing.T) {
	uri, err := EncodeImage(bytes.NewReader(pngPixel))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	mt, data, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mt)
	assert.Equal(t, pngPixel, data)
}

func TestEncodeRejectsEmptyAndNonImage(t *testing.T) {
	_, err := Encode(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = EncodeImage(strings.NewReader("just some text"))
	assert.ErrorIs(t, err, ErrNotImage)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestEncodeReadFailure(t *testing.T) {
	_, err := Encode(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"https://res.cloudinary.com/demo/image/upload/x.jpg",
		"data:image/png,plain",
		"data:image/png;base64",
		"data:image/png;base64,@@@",
	} {
		_, _, err := Decode(s)
		assert.ErrorIs(t, err, ErrNotDataURI, s)
	}
	assert.True(t, IsDataURI("data:image/jpeg;base64,AAAA"))
	assert.False(t, IsDataURI("blob:1234"))
}
