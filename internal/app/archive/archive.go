package archive

//go:generate mockgen -source=archive.go -destination=archive_mock.go -package=archive

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zip"

	"bootsplash/internal/app/errors"
)

// Compression methods reported by Entry.Method
const (
	MethodStore   = zip.Store
	MethodDeflate = zip.Deflate
)

// Entry is one file or directory listed in an archive
type Entry struct {
	Path   string
	Method uint16
	Size   uint64
	file   *zip.File
}

// Dir returns the parent directory of the entry, without a trailing slash
func (e Entry) Dir() string {
	p := strings.TrimSuffix(e.Path, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[:i]
	}

	return ""
}

// Leaf returns the file name part of the entry; directories have an empty leaf
func (e Entry) Leaf() string {
	if i := strings.LastIndexByte(e.Path, '/'); i >= 0 {
		return e.Path[i+1:]
	}

	return e.Path
}

// Stored reports whether the entry is kept without compression
func (e Entry) Stored() bool {
	return e.Method == MethodStore
}

// Reader lists and reads archive entries
type Reader interface {
	Path() string
	Entries() []Entry
	Find(name string) (Entry, bool)
	Read(entry Entry) ([]byte, error)
	Close() error
}

// reader implements the Reader interface over a zip archive
type reader struct {
	path    string
	zr      *zip.Reader
	closer  io.Closer
	entries []Entry
}

// Open opens the first archive that exists among paths
func Open(paths ...string) (Reader, error) {
	for _, path := range paths {
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("open archive %s: %w", path, err)
		}

		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("stat archive %s: %w", path, err)
		}

		r, err := newReader(f, info.Size(), path, f)
		if err != nil {
			f.Close()
			return nil, err
		}

		return r, nil
	}

	return nil, fmt.Errorf("%w: tried %s", errors.ErrArchiveNotFound, strings.Join(paths, ", "))
}

// NewReader wraps an in-memory or already opened archive
func NewReader(r io.ReaderAt, size int64, name string) (Reader, error) {
	return newReader(r, size, name, nil)
}

func newReader(r io.ReaderAt, size int64, name string, closer io.Closer) (*reader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("read archive %s: %w", name, err)
	}

	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		entries = append(entries, Entry{
			Path:   f.Name,
			Method: f.Method,
			Size:   f.UncompressedSize64,
			file:   f,
		})
	}

	return &reader{
		path:    name,
		zr:      zr,
		closer:  closer,
		entries: entries,
	}, nil
}

// Path returns the archive location
func (r *reader) Path() string {
	return r.path
}

// Entries returns every entry in central directory order
func (r *reader) Entries() []Entry {
	return r.entries
}

// Find returns the entry with the exact path
func (r *reader) Find(name string) (Entry, bool) {
	for _, e := range r.entries {
		if e.Path == name {
			return e, true
		}
	}

	return Entry{}, false
}

// Read returns the uncompressed contents of an entry
func (r *reader) Read(entry Entry) ([]byte, error) {
	if entry.file == nil {
		found, ok := r.Find(entry.Path)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errors.ErrEntryNotFound, entry.Path)
		}

		entry = found
	}

	rc, err := entry.file.Open()
	if err != nil {
		return nil, fmt.Errorf("open entry %s: %w", entry.Path, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read entry %s: %w", entry.Path, err)
	}

	return data, nil
}

// Close releases the underlying file, if any
func (r *reader) Close() error {
	if r.closer == nil {
		return nil
	}

	return r.closer.Close()
}
