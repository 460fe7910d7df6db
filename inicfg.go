package inicfg

import (
	"bytes"

	"github.com/inicfg/go-inicfg/document"
	"github.com/inicfg/go-inicfg/internal/formatter"
	"github.com/inicfg/go-inicfg/internal/parser"
)

// Parse builds a document from configuration text. The whole input is read
// before structural parsing begins. Failures are *errors.ParseError values
// carrying the 1-based source line; the first failure aborts the parse.
func Parse(data []byte, opts ...Option) (*document.Configuration, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	p := parser.New(parser.Config{
		Delimiters:      o.delimiters,
		CaseInsensitive: o.caseInsensitive,
		ImplicitSection: o.implicitSection,
	})
	return p.Parse(data)
}

// ParseString is Parse for string input.
func ParseString(s string, opts ...Option) (*document.Configuration, error) {
	return Parse([]byte(s), opts...)
}

// Serialize renders cfg back to canonical configuration text. Values that
// would not survive a reparse (embedded comment delimiters, edge whitespace,
// an outer quote pair) are wrapped in double quotes, which makes
// Parse(Serialize(cfg)) preserve all section names, setting names and raw
// values. A trailing comment on a setting whose value contains a comment
// delimiter cannot be written unambiguously and is dropped.
func Serialize(cfg *document.Configuration, opts ...Option) ([]byte, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	f := formatter.New(&buf, formatter.Config{
		Delimiters:      o.delimiters,
		DropPreComments: o.dropPreComments,
	})
	if err := f.Format(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeString is Serialize returning a string.
func SerializeString(cfg *document.Configuration, opts ...Option) (string, error) {
	b, err := Serialize(cfg, opts...)
	return string(b), err
}
