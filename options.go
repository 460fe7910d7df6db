package inicfg

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/inicfg/go-inicfg/internal/scanner"
)

type options struct {
	delimiters      []rune
	caseInsensitive bool
	implicitSection bool
	dropPreComments bool
	encoding        encoding.Encoding
}

// Option configures a single parse, serialize, load or save call.
type Option func(*options) error

// CommentDelimiters replaces the default comment delimiter set (#, ; and ').
func CommentDelimiters(delims ...rune) Option {
	return func(o *options) error {
		if len(delims) == 0 {
			return fmt.Errorf("inicfg: comment delimiter set cannot be empty")
		}
		o.delimiters = delims
		return nil
	}
}

// CaseInsensitive makes name lookups, insertions and removals on the
// resulting document fold case.
func CaseInsensitive() Option {
	return func(o *options) error {
		o.caseInsensitive = true
		return nil
	}
}

// ImplicitSection enables the unnamed global section: settings declared
// before any section header are collected there instead of failing the
// parse.
func ImplicitSection() Option {
	return func(o *options) error {
		o.implicitSection = true
		return nil
	}
}

// DropPreComments makes the serializer skip standalone pre-comment lines,
// matching the legacy behavior. By default pre-comments are re-emitted
// before the entity they attach to.
func DropPreComments() Option {
	return func(o *options) error {
		o.dropPreComments = true
		return nil
	}
}

// Encoding selects the text encoding for Load and Save. The default is
// BOM-aware UTF-8.
func Encoding(enc encoding.Encoding) Option {
	return func(o *options) error {
		if enc == nil {
			return fmt.Errorf("inicfg: encoding cannot be nil")
		}
		o.encoding = enc
		return nil
	}
}

func resolveOptions(opts []Option) (options, error) {
	o := options{delimiters: scanner.DefaultDelimiters}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}
	return o, nil
}
