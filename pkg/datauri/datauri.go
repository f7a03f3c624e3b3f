// Package datauri encodes uploaded files as base64 data URIs and decodes them back.
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotDataURI = errors.New("not a base64 data URI")
	ErrEmpty      = errors.New("empty file")
	ErrNotImage   = errors.New("file is not an image")
)

// MaxBytes bounds a single encoded upload.
const MaxBytes = 10 << 20

// Encode reads r fully and returns "data:<mime>;base64,<payload>". The MIME
// type is sniffed from content; declared types are not trusted.
func Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	if len(data) == 0 {
		return "", ErrEmpty
	}
	if len(data) > MaxBytes {
		return "", fmt.Errorf("file exceeds %d bytes", MaxBytes)
	}
	return EncodeBytes(data), nil
}

// EncodeImage is Encode restricted to image content.
func EncodeImage(r io.Reader) (string, error) {
	uri, err := Encode(r)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(uri, "data:image/") {
		return "", ErrNotImage
	}
	return uri, nil
}

func EncodeBytes(data []byte) string {
	mt := mimetype.Detect(data).String()
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IsDataURI reports whether s looks like a base64 data URI.
func IsDataURI(s string) bool {
	_, _, err := split(s)
	return err == nil
}

// Decode returns the media type and raw bytes of a base64 data URI.
func Decode(s string) (mediaType string, data []byte, err error) {
	mediaType, payload, err := split(s)
	if err != nil {
		return "", nil, err
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrNotDataURI, err)
	}
	return mediaType, data, nil
}

func split(s string) (mediaType, payload string, err error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", "", ErrNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", ErrNotDataURI
	}
	mediaType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", "", ErrNotDataURI
	}
	return mediaType, payload, nil
}
