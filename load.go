package inicfg

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/inicfg/go-inicfg/document"
)

// Load reads configuration text from r and parses it. The stream is decoded
// with the configured Encoding, defaulting to BOM-aware UTF-8 (a UTF-8 or
// UTF-16 byte order mark switches the decoder accordingly).
func Load(r io.Reader, opts ...Option) (*document.Configuration, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	if o.encoding != nil {
		dec = o.encoding.NewDecoder()
	}
	data, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return nil, fmt.Errorf("inicfg: read: %w", err)
	}
	return Parse(data, opts...)
}

// LoadFile reads and parses the configuration file at path. The file handle
// is released on every path, including failure.
func LoadFile(path string, opts ...Option) (*document.Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("inicfg: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, opts...)
}

// Save serializes cfg and writes it to w, encoded with the configured
// Encoding (plain UTF-8 by default).
func Save(w io.Writer, cfg *document.Configuration, opts ...Option) error {
	o, err := resolveOptions(opts)
	if err != nil {
		return err
	}
	data, err := Serialize(cfg, opts...)
	if err != nil {
		return err
	}
	if o.encoding != nil {
		w = transform.NewWriter(w, o.encoding.NewEncoder())
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("inicfg: write: %w", err)
	}
	if tw, ok := w.(*transform.Writer); ok {
		if err := tw.Close(); err != nil {
			return fmt.Errorf("inicfg: write: %w", err)
		}
	}
	return nil
}

// SaveFile serializes cfg to the file at path, creating or truncating it.
// The handle is closed on every path and close errors are reported.
func SaveFile(path string, cfg *document.Configuration, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("inicfg: create %s: %w", path, err)
	}
	if err := Save(f, cfg, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("inicfg: close %s: %w", path, err)
	}
	return nil
}
