package editor

import (
	"bytes"
	"io"
	"mime/multipart"
)

// File is a user-selected upload. Open may be called more than once so a
// failed submit can be retried with the same staged files.
type File struct {
	Name string
	Open func() (io.ReadCloser, error)
}

func FileFromBytes(name string, data []byte) File {
	return File{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func FileFromHeader(fh *multipart.FileHeader) File {
	return File{
		Name: fh.Filename,
		Open: func() (io.ReadCloser, error) { return fh.Open() },
	}
}
