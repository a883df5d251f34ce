package archive

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zip"
)

// File is one entry written by Build
type File struct {
	Path   string
	Method uint16
	Data   []byte
}

// Build writes files into an in-memory zip archive in the given order.
// Paths ending in "/" become directory entries.
func Build(files []File) ([]byte, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)

	for _, f := range files {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: f.Path, Method: f.Method})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", f.Path, err)
		}

		if len(f.Data) == 0 {
			continue
		}

		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
