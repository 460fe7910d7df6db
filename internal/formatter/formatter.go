// Package formatter renders a document.Configuration back to canonical
// configuration text.
package formatter

import (
	"bytes"
	"io"
	"strings"

	"github.com/inicfg/go-inicfg/document"
	"github.com/inicfg/go-inicfg/internal/scanner"
)

// Config carries the serialization knobs resolved by the public API.
type Config struct {
	Delimiters []rune
	// DropPreComments restores the legacy behavior of not re-emitting
	// queued pre-comment lines. The default is to emit them.
	DropPreComments bool
}

// Formatter writes a configuration document to an output stream.
type Formatter struct {
	w   io.Writer
	cfg Config
}

// New returns a Formatter that writes to w.
func New(w io.Writer, cfg Config) *Formatter {
	if len(cfg.Delimiters) == 0 {
		cfg.Delimiters = scanner.DefaultDelimiters
	}
	return &Formatter{w: w, cfg: cfg}
}

// Format renders cfg section by section in declaration order. The implicit
// section's settings come first, without a header line. After the whole
// document is generated, any run of two consecutive blank lines collapses to
// one.
func (f *Formatter) Format(cfg *document.Configuration) error {
	var buf bytes.Buffer
	for _, sec := range cfg.Sections() {
		if sec.Implicit() && sec.Len() == 0 {
			continue
		}
		f.writeSection(&buf, sec)
	}
	_, err := f.w.Write(collapseBlankRuns(buf.Bytes()))
	return err
}

func (f *Formatter) writeSection(buf *bytes.Buffer, sec *document.Section) {
	if !sec.Implicit() {
		f.writePreComments(buf, sec.PreComments)
		buf.WriteString("[" + sec.Name() + "]")
		f.writeTrailing(buf, sec.Comment)
		buf.WriteByte('\n')
	}
	for _, st := range sec.Settings() {
		f.writePreComments(buf, st.PreComments)
		buf.WriteString(st.Name() + " = " + f.quote(st.Value()))
		// A trailing comment after a delimiter-bearing value cannot be
		// written unambiguously: the quote heuristic would demote the
		// comment delimiter on reparse and fold the whole tail into the
		// value. Comments may drop; values may not.
		if !strings.ContainsAny(st.Value(), string(f.cfg.Delimiters)) {
			f.writeTrailing(buf, st.Comment)
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
}

func (f *Formatter) writePreComments(buf *bytes.Buffer, comments []document.Comment) {
	if f.cfg.DropPreComments {
		return
	}
	for _, c := range comments {
		buf.WriteString(f.render(c))
		buf.WriteByte('\n')
	}
}

func (f *Formatter) writeTrailing(buf *bytes.Buffer, c *document.Comment) {
	if c == nil {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(f.render(*c))
}

// render rewrites a comment built with a delimiter outside the configured set
// to use the first configured delimiter; emitted verbatim it would produce a
// line the parser cannot read back.
func (f *Formatter) render(c document.Comment) string {
	if !strings.ContainsRune(string(f.cfg.Delimiters), c.Delimiter) {
		c.Delimiter = f.cfg.Delimiters[0]
	}
	return c.String()
}

// quote wraps v in double quotes when reparsing the bare value would change
// it: a comment delimiter inside the value, whitespace at either edge, or an
// existing outer quote pair that the value-trim step would strip.
func (f *Formatter) quote(v string) string {
	if strings.ContainsAny(v, string(f.cfg.Delimiters)) ||
		v != strings.TrimSpace(v) ||
		(len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"') {
		return `"` + v + `"`
	}
	return v
}

// collapseBlankRuns reduces every run of two consecutive blank lines to a
// single blank line. The last section's separator plus natural end-of-content
// would otherwise leave a trailing double blank.
func collapseBlankRuns(out []byte) []byte {
	for bytes.Contains(out, []byte("\n\n\n")) {
		out = bytes.ReplaceAll(out, []byte("\n\n\n"), []byte("\n\n"))
	}
	return out
}
