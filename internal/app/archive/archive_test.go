package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootsplash/internal/app/errors"
)

func testArchive(t *testing.T) []byte {
	t.Helper()

	data, err := Build([]File{
		{Path: "desc.txt", Method: MethodStore, Data: []byte("480 800 30\np 1 0 part0\n")},
		{Path: "part0/", Method: MethodStore},
		{Path: "part0/0001.png", Method: MethodStore, Data: []byte("frame-1")},
		{Path: "part0/0002.png", Method: MethodDeflate, Data: bytes.Repeat([]byte("z"), 64)},
	})
	require.NoError(t, err)

	return data
}

func Test_NewReader_Entries(t *testing.T) {
	data := testArchive(t)

	r, err := NewReader(bytes.NewReader(data), int64(len(data)), "memory")
	require.NoError(t, err)
	defer r.Close()

	entries := r.Entries()
	require.Len(t, entries, 4)

	assert.Equal(t, "memory", r.Path())
	assert.Equal(t, "desc.txt", entries[0].Path)
	assert.Equal(t, "part0/", entries[1].Path)
	assert.True(t, entries[2].Stored())
	assert.False(t, entries[3].Stored())
	assert.Equal(t, uint64(64), entries[3].Size)
}

func Test_Entry_DirAndLeaf(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		expectedDir  string
		expectedLeaf string
	}{
		{name: "Frame", path: "part0/0001.png", expectedDir: "part0", expectedLeaf: "0001.png"},
		{name: "Directory", path: "part0/", expectedDir: "", expectedLeaf: ""},
		{name: "Nested frame", path: "a/b/c.png", expectedDir: "a/b", expectedLeaf: "c.png"},
		{name: "Top-level file", path: "desc.txt", expectedDir: "", expectedLeaf: "desc.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Path: tt.path}
			assert.Equal(t, tt.expectedDir, e.Dir())
			assert.Equal(t, tt.expectedLeaf, e.Leaf())
		})
	}
}

func Test_Reader_Read(t *testing.T) {
	data := testArchive(t)

	r, err := NewReader(bytes.NewReader(data), int64(len(data)), "memory")
	require.NoError(t, err)

	stored, err := r.Read(r.Entries()[2])
	require.NoError(t, err)
	assert.Equal(t, []byte("frame-1"), stored)

	deflated, err := r.Read(r.Entries()[3])
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte("z"), 64), deflated)
}

func Test_Reader_Find(t *testing.T) {
	data := testArchive(t)

	r, err := NewReader(bytes.NewReader(data), int64(len(data)), "memory")
	require.NoError(t, err)

	e, ok := r.Find("desc.txt")
	require.True(t, ok)

	content, err := r.Read(e)
	require.NoError(t, err)
	assert.Contains(t, string(content), "480 800 30")

	_, ok = r.Find("missing.txt")
	assert.False(t, ok)

	_, err = r.Read(Entry{Path: "missing.txt"})
	assert.ErrorIs(t, err, errors.ErrEntryNotFound)
}

func Test_NewReader_NotZip(t *testing.T) {
	data := []byte("definitely not a zip archive")

	_, err := NewReader(bytes.NewReader(data), int64(len(data)), "garbage")
	assert.Error(t, err)
}

func Test_Open_FallsBackToNextPath(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "system.zip")
	require.NoError(t, os.WriteFile(second, testArchive(t), 0o644))

	r, err := Open(filepath.Join(dir, "data.zip"), second)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, second, r.Path())
	assert.Len(t, r.Entries(), 4)
}

func Test_Open_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "a.zip"), filepath.Join(dir, "b.zip"))
	assert.ErrorIs(t, err, errors.ErrArchiveNotFound)
}

func Test_Open_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zip")
	require.NoError(t, os.WriteFile(path, []byte("broken"), 0o644))

	_, err := Open(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errors.ErrArchiveNotFound)
}
