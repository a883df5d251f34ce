package animation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bootsplash/internal/app/archive"
	"bootsplash/internal/app/errors"
	"bootsplash/internal/config"
	"bootsplash/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()
	mockLog.EXPECT().Debug().Return(nil).AnyTimes()
	mockLog.EXPECT().Info().Return(nil).AnyTimes()
	mockLog.EXPECT().Warn().Return(nil).AnyTimes()
	mockLog.EXPECT().Error().Return(nil).AnyTimes()

	return mockLog
}

func buildReader(t *testing.T, files []archive.File) archive.Reader {
	t.Helper()

	data, err := archive.Build(files)
	require.NoError(t, err)

	r, err := archive.NewReader(bytes.NewReader(data), int64(len(data)), "test.zip")
	require.NoError(t, err)

	return r
}

func stored(path, data string) archive.File {
	return archive.File{Path: path, Method: archive.MethodStore, Data: []byte(data)}
}

func frameNames(p Part) []string {
	var names []string
	for _, f := range p.Frames {
		names = append(names, f.Name)
	}

	return names
}

func Test_FromArchive(t *testing.T) {
	r := buildReader(t, []archive.File{
		stored("desc.txt", "480 800 30\np 1 0 part0\np 0 5 part1\n"),
		stored("part0/", ""),
		stored("part0/0001.png", "a1"),
		stored("part0/0002.png", "a2"),
		{Path: "part0/0003.png", Method: archive.MethodDeflate, Data: []byte("compressed")},
		stored("part1/0001.png", "b1"),
		stored("other/0001.png", "x"),
		stored("part1/nested/0001.png", "n"),
	})

	d, err := FromArchive(r, config.DescriptionFile)
	require.NoError(t, err)

	require.Len(t, d.Parts, 2)
	assert.Equal(t, []string{"0001.png", "0002.png"}, frameNames(d.Parts[0]))
	assert.Equal(t, []byte("a1"), d.Parts[0].Frames[0].Data)
	assert.Equal(t, []string{"0001.png"}, frameNames(d.Parts[1]))
	assert.Equal(t, []byte("b1"), d.Parts[1].Frames[0].Data)
	assert.Nil(t, d.Parts[0].Frames[0].Image)
}

func Test_FromArchive_ArchiveOrder(t *testing.T) {
	r := buildReader(t, []archive.File{
		stored("desc.txt", "10 10 5\np 1 0 p\n"),
		stored("p/b.png", "b"),
		stored("p/a.png", "a"),
		stored("p/c.png", "c"),
	})

	d, err := FromArchive(r, config.DescriptionFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.png", "a.png", "c.png"}, frameNames(d.Parts[0]))
}

func Test_FromArchive_PathListedTwice(t *testing.T) {
	r := buildReader(t, []archive.File{
		stored("desc.txt", "10 10 5\np 1 0 intro\np 0 0 intro\n"),
		stored("intro/1.png", "1"),
	})

	d, err := FromArchive(r, config.DescriptionFile)
	require.NoError(t, err)
	assert.Len(t, d.Parts[0].Frames, 1)
	assert.Len(t, d.Parts[1].Frames, 1)
}

func Test_FromArchive_Errors(t *testing.T) {
	tests := []struct {
		name     string
		files    []archive.File
		expected error
	}{
		{
			name:     "No description",
			files:    []archive.File{stored("part0/1.png", "x")},
			expected: errors.ErrDescriptionMissing,
		},
		{
			name:     "No header",
			files:    []archive.File{stored("desc.txt", "p 1 0 part0\n")},
			expected: errors.ErrMissingHeader,
		},
		{
			name:     "Zero fps",
			files:    []archive.File{stored("desc.txt", "480 800 0\np 1 0 part0\n")},
			expected: errors.ErrMissingHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromArchive(buildReader(t, tt.files), config.DescriptionFile)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func Test_FromArchive_FrameReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	desc := archive.Entry{Path: "desc.txt", Method: archive.MethodStore}
	frame := archive.Entry{Path: "part0/1.png", Method: archive.MethodStore}
	failure := errors.New("disk error")

	r := archive.NewMockReader(ctrl)
	r.EXPECT().Find("desc.txt").Return(desc, true)
	r.EXPECT().Read(desc).Return([]byte("10 10 5\np 1 0 part0\n"), nil)
	r.EXPECT().Entries().Return([]archive.Entry{desc, frame})
	r.EXPECT().Read(frame).Return(nil, failure)

	_, err := FromArchive(r, "desc.txt")
	assert.ErrorIs(t, err, failure)
}

func Test_Loader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.DefaultConfig()
	l := NewLoader(cfg, newTestLogger(ctrl)).(*loader)

	var opened []string

	l.open = func(paths ...string) (archive.Reader, error) {
		opened = paths
		return buildReader(t, []archive.File{
			stored("desc.txt", "480 800 30\np 0 0 part0\np 0 0 part1\n"),
			stored("part0/1.png", "1"),
			stored("part1/1.png", "2"),
		}), nil
	}

	d, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, cfg.Archive.Paths, opened)
	assert.Equal(t, 480, d.Width)
	assert.Equal(t, 1, d.Parts[0].PlayCount, "non-terminal infinite part is clamped")
	assert.True(t, d.Parts[1].Infinite())
}

func Test_Loader_FallsBack(t *testing.T) {
	tests := []struct {
		name string
		open func(paths ...string) (archive.Reader, error)
	}{
		{
			name: "Archive not found",
			open: func(paths ...string) (archive.Reader, error) {
				return nil, errors.ErrArchiveNotFound
			},
		},
		{
			name: "Archive unreadable",
			open: func(paths ...string) (archive.Reader, error) {
				return nil, errors.New("permission denied")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			l := NewLoader(config.DefaultConfig(), newTestLogger(ctrl)).(*loader)
			l.open = tt.open

			d, err := l.Load()
			require.NoError(t, err)
			assert.Equal(t, fallbackPath, d.Parts[0].Path)
		})
	}
}

func Test_Loader_FallsBackOnMissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := NewLoader(config.DefaultConfig(), newTestLogger(ctrl)).(*loader)
	l.open = func(paths ...string) (archive.Reader, error) {
		return buildReader(t, []archive.File{stored("desc.txt", "garbage\n")}), nil
	}

	d, err := l.Load()
	require.NoError(t, err)
	assert.True(t, d.Valid())
	assert.Equal(t, fallbackPath, d.Parts[0].Path)
}
