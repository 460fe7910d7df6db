package inicfg

import (
	"bytes"
	"io"

	"github.com/inicfg/go-inicfg/document"
	"github.com/inicfg/go-inicfg/internal/codec"
)

// EncodeBinary encodes cfg's section and setting names and raw values to the
// fixed binary layout. Comments are never persisted. The layout carries no
// version tag; callers must pin codec versions out-of-band.
func EncodeBinary(cfg *document.Configuration) ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.Encode(&buf, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteBinary writes the binary encoding of cfg to w.
func WriteBinary(w io.Writer, cfg *document.Configuration) error {
	return codec.Encode(w, cfg)
}

// DecodeBinary rebuilds a document from its binary encoding. A truncated or
// malformed stream fails with a *errors.DecodeError and no partial document.
// Only CaseInsensitive and ImplicitSection options apply.
func DecodeBinary(data []byte, opts ...Option) (*document.Configuration, error) {
	return ReadBinary(bytes.NewReader(data), opts...)
}

// ReadBinary is DecodeBinary for a stream.
func ReadBinary(r io.Reader, opts ...Option) (*document.Configuration, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	return codec.Decode(r, codec.Config{
		CaseInsensitive: o.caseInsensitive,
		ImplicitSection: o.implicitSection,
	})
}
