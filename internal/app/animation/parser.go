package animation

import (
	"strconv"
	"strings"

	"bootsplash/internal/app/errors"
)

const partPrefix = "p"

// Parse reads an animation description. Lines are either "<width> <height> <fps>"
// (first one wins) or "p <count> <pause> <path>"; anything else is skipped.
// A description without a size line yields a zero descriptor and ErrMissingHeader.
func Parse(text string) (*Descriptor, error) {
	d := &Descriptor{}
	header := false

	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)

		if !header {
			if w, h, fps, ok := parseHeader(fields); ok {
				d.Width, d.Height, d.FPS = w, h, fps
				header = true

				continue
			}
		}

		if part, ok := parsePart(fields); ok {
			d.Parts = append(d.Parts, part)
		}
	}

	if !header {
		return d, errors.ErrMissingHeader
	}

	return d, nil
}

func parseHeader(fields []string) (int, int, int, bool) {
	if len(fields) < 3 {
		return 0, 0, 0, false
	}

	values, ok := parseInts(fields[:3])
	if !ok {
		return 0, 0, 0, false
	}

	return values[0], values[1], values[2], true
}

func parsePart(fields []string) (Part, bool) {
	if len(fields) < 4 || fields[0] != partPrefix {
		return Part{}, false
	}

	values, ok := parseInts(fields[1:3])
	if !ok || values[0] < 0 || values[1] < 0 {
		return Part{}, false
	}

	return Part{PlayCount: values[0], Pause: values[1], Path: fields[3]}, true
}

func parseInts(fields []string) ([]int, bool) {
	out := make([]int, len(fields))

	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, false
		}

		out[i] = v
	}

	return out, true
}
