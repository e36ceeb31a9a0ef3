// Package tabfmt renders the gmath binary angle lookup tables, either as the
// generated Go source compiled into gmath or as a human-readable listing.
package tabfmt

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognized name.
var ErrUnknownFormat = errors.New("tabfmt: unknown format")

// Format selects the output rendering.
type Format uint8

const (
	// FormatGo is gofmt'd Go source declaring quarterSine and byteToRadian.
	FormatGo Format = iota

	// FormatText lists every angle with its degrees, radians, sine and cosine.
	FormatText

	// formatCount is the number of formats (for internal use).
	formatCount
)

var formatNames = [formatCount]string{
	FormatGo:   "go",
	FormatText: "text",
}

// String returns the flag name of the format.
func (f Format) String() string {
	if f >= formatCount {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatNames[f]
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for f, name := range formatNames {
		if name == s {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, s)
}
