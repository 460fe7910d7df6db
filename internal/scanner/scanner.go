// Package scanner classifies single configuration lines: does the line carry
// a comment, and where does it start.
package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/inicfg/go-inicfg/document"
)

// DefaultDelimiters is the comment delimiter set used when none is
// configured.
var DefaultDelimiters = []rune{'#', ';', '\''}

const escape = '\\'

// Detector finds comment delimiters in already-trimmed, non-empty lines.
type Detector struct {
	delimiters string
}

// NewDetector returns a Detector for the given delimiter set. An empty set
// falls back to DefaultDelimiters.
func NewDetector(delimiters []rune) *Detector {
	if len(delimiters) == 0 {
		delimiters = DefaultDelimiters
	}
	return &Detector{delimiters: string(delimiters)}
}

// Delimiters returns the configured delimiter set.
func (d *Detector) Delimiters() []rune { return []rune(d.delimiters) }

// Detect reports whether line contains a comment. On a hit it returns the
// comment (delimiter plus trimmed trailing text) and the byte index of the
// delimiter within line. An index of zero means the whole line is a
// pre-comment.
//
// Two heuristics demote a matched delimiter to literal content, in which
// case the whole line passes through unmodified (the escape marker is not
// stripped):
//
//   - the delimiter is immediately preceded by a backslash;
//   - a double quote appears strictly before the delimiter and another at or
//     after it. This only checks presence on each side, not quote pairing,
//     and is kept deliberately approximate.
func (d *Detector) Detect(line string) (document.Comment, int, bool) {
	idx := strings.IndexAny(line, d.delimiters)
	if idx < 0 {
		return document.Comment{}, 0, false
	}
	if idx > 0 && line[idx-1] == escape {
		return document.Comment{}, 0, false
	}
	if strings.ContainsRune(line[:idx], '"') && strings.ContainsRune(line[idx:], '"') {
		return document.Comment{}, 0, false
	}
	// Delimiters are single-byte in practice, but a configured multi-byte
	// delimiter must still round-trip.
	delim, size := utf8.DecodeRuneInString(line[idx:])
	c := document.Comment{
		Delimiter: delim,
		Text:      strings.TrimSpace(line[idx+size:]),
	}
	return c, idx, true
}
