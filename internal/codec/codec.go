// Package codec implements the fixed binary layout for configuration
// documents: a little-endian int32 section count, then per section a
// length-prefixed name and an int32 setting count, then per setting a
// length-prefixed name and value. Strings carry an int32 byte length
// followed by UTF-8 bytes. Comments are never persisted and there is no
// version tag.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/inicfg/go-inicfg/document"
	inierr "github.com/inicfg/go-inicfg/errors"
)

// Config carries the decode-time knobs resolved by the public API.
type Config struct {
	CaseInsensitive bool
	ImplicitSection bool
}

// Encode writes cfg's sections and settings in declaration order. When the
// implicit section is enabled it participates as an empty-named section at
// position zero, even when empty, so the layout stays deterministic.
func Encode(w io.Writer, cfg *document.Configuration) error {
	secs := cfg.Sections()
	if err := writeCount(w, len(secs)); err != nil {
		return err
	}
	for _, sec := range secs {
		if err := writeString(w, sec.Name()); err != nil {
			return err
		}
		settings := sec.Settings()
		if err := writeCount(w, len(settings)); err != nil {
			return err
		}
		for _, st := range settings {
			if err := writeString(w, st.Name()); err != nil {
				return err
			}
			if err := writeString(w, st.Value()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Decode consumes exactly the layout produced by Encode. Any short read,
// negative count or malformed shape aborts with a *errors.DecodeError and no
// partial document.
func Decode(r io.Reader, c Config) (*document.Configuration, error) {
	var opts []document.Option
	if c.CaseInsensitive {
		opts = append(opts, document.CaseInsensitive())
	}
	if c.ImplicitSection {
		opts = append(opts, document.WithImplicitSection())
	}
	cfg := document.New(opts...)

	sections, err := readCount(r, "section count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < sections; i++ {
		if err := decodeSection(r, cfg, c); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeSection(r io.Reader, cfg *document.Configuration, c Config) error {
	name, err := readString(r, "section name")
	if err != nil {
		return err
	}

	var sec *document.Section
	switch {
	case name == "" && c.ImplicitSection:
		sec = cfg.Global()
	case name == "":
		return &inierr.DecodeError{Message: "unnamed section requires the implicit section option"}
	default:
		sec, err = document.NewSection(name)
		if err != nil {
			return &inierr.DecodeError{Message: fmt.Sprintf("section %q", name), Err: err}
		}
		if err := cfg.Add(sec); err != nil {
			return &inierr.DecodeError{Message: fmt.Sprintf("section %q", name), Err: err}
		}
	}

	settings, err := readCount(r, "setting count")
	if err != nil {
		return err
	}
	for i := 0; i < settings; i++ {
		sname, err := readString(r, "setting name")
		if err != nil {
			return err
		}
		value, err := readString(r, "setting value")
		if err != nil {
			return err
		}
		st, err := document.NewSetting(sname, value)
		if err != nil {
			return &inierr.DecodeError{Message: fmt.Sprintf("setting %q", sname), Err: err}
		}
		if err := sec.Add(st); err != nil {
			return &inierr.DecodeError{Message: fmt.Sprintf("setting %q", sname), Err: err}
		}
	}
	return nil
}

func writeCount(w io.Writer, n int) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("inicfg: count %d overflows int32", n)
	}
	return binary.Write(w, binary.LittleEndian, int32(n))
}

func writeString(w io.Writer, s string) error {
	if err := writeCount(w, len(s)); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readCount(r io.Reader, what string) (int, error) {
	var n int32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return 0, &inierr.DecodeError{Message: "short read of " + what, Err: eofErr(err)}
	}
	if n < 0 {
		return 0, &inierr.DecodeError{Message: fmt.Sprintf("negative %s %d", what, n)}
	}
	return int(n), nil
}

func readString(r io.Reader, what string) (string, error) {
	n, err := readCount(r, what+" length")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
		return "", &inierr.DecodeError{Message: "short read of " + what, Err: eofErr(err)}
	}
	return buf.String(), nil
}

// eofErr normalizes a bare EOF in the middle of a value to ErrUnexpectedEOF.
func eofErr(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
