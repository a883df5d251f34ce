package animation

import (
	"fmt"

	"bootsplash/internal/app/archive"
	"bootsplash/internal/app/errors"
	"bootsplash/internal/config"
	"bootsplash/internal/config/logger"
)

// Loader produces the descriptor for the session
type Loader interface {
	Load() (*Descriptor, error)
}

// loader implements the Loader interface
type loader struct {
	paths       []string
	description string
	format      string
	open        func(paths ...string) (archive.Reader, error)
	log         logger.Logger
}

// NewLoader creates a Loader reading the configured archive paths
func NewLoader(cfg *config.Config, log logger.Logger) Loader {
	return &loader{
		paths:       cfg.Archive.Paths,
		description: cfg.Archive.Description,
		format:      cfg.Decoder.Format,
		open:        archive.Open,
		log:         log.WithComponent("ANIMATION"),
	}
}

// Load reads the first archive found; without a usable archive the built-in animation is used
func (l *loader) Load() (*Descriptor, error) {
	r, err := l.open(l.paths...)
	if err != nil {
		if !errors.Is(err, errors.ErrArchiveNotFound) {
			l.log.Warn().Err(err).Msg("Failed to open animation archive")
		}

		l.log.Info().Msg("Using built-in animation")

		return Fallback(l.format), nil
	}
	defer r.Close()

	d, err := FromArchive(r, l.description)
	if err != nil {
		l.log.Warn().Err(err).Msgf("Animation archive '%s' is unusable, using built-in animation", r.Path())
		return Fallback(l.format), nil
	}

	for _, i := range d.Normalize() {
		l.log.Warn().Msgf("Part %d ('%s') loops forever but is not the last part, playing it once", i, d.Parts[i].Path)
	}

	for _, p := range d.Parts {
		if len(p.Frames) == 0 {
			l.log.Warn().Msgf("Part '%s' has no stored frames", p.Path)
		}
	}

	l.log.Info().Msgf("Loaded '%s': %dx%d @ %d fps, %d part(s), %d frame(s)", r.Path(), d.Width, d.Height, d.FPS, len(d.Parts), d.FrameCount())

	return d, nil
}

// FromArchive parses the description entry and attaches the stored frames of every part
func FromArchive(r archive.Reader, description string) (*Descriptor, error) {
	entry, ok := r.Find(description)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrDescriptionMissing, description)
	}

	text, err := r.Read(entry)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrDescriptionMissing, err)
	}

	d, err := Parse(string(text))
	if err != nil {
		return d, err
	}

	if !d.Valid() {
		return d, fmt.Errorf("%w: %dx%d @ %d fps", errors.ErrMissingHeader, d.Width, d.Height, d.FPS)
	}

	if err := resolveFrames(r, d); err != nil {
		return d, err
	}

	return d, nil
}

// resolveFrames appends, in archive order, every stored leaf entry whose
// directory is a part's path; a path listed twice feeds both parts
func resolveFrames(r archive.Reader, d *Descriptor) error {
	for _, entry := range r.Entries() {
		leaf := entry.Leaf()
		if leaf == "" || !entry.Stored() {
			continue
		}

		dir := entry.Dir()

		var data []byte

		for i := range d.Parts {
			if d.Parts[i].Path != dir {
				continue
			}

			if data == nil {
				b, err := r.Read(entry)
				if err != nil {
					return fmt.Errorf("read frame %s: %w", entry.Path, err)
				}

				data = b
			}

			d.Parts[i].Frames = append(d.Parts[i].Frames, Frame{Name: leaf, Data: data})
		}
	}

	return nil
}
