// Package bind maps a section's ordered name-to-raw-value settings onto Go
// values without reflection. Hosts either declare an explicit Map from
// setting names to typed targets, or implement Binder and receive every
// setting in declaration order.
package bind

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/inicfg/go-inicfg/document"
)

// Target consumes one raw setting value.
type Target func(raw string, f Format) error

// Map declares which settings a host cares about and where each raw value
// lands.
type Map map[string]Target

// Binder is implemented by host types that want to consume settings
// themselves. BindSetting is called once per setting in declaration order.
type Binder interface {
	BindSetting(name, value string) error
}

// Format is the numeric-format context supplied by the caller. The zero
// value parses the Go default format.
type Format struct {
	// DecimalSeparator substitutes for '.' before float parsing when set.
	DecimalSeparator rune
}

// FieldError reports the setting whose value could not be coerced.
type FieldError struct {
	Setting string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("bind: setting %q: %v", e.Setting, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ErrUnknownSetting is wrapped by Apply in strict mode for settings that
// have no entry in the Map.
var ErrUnknownSetting = errors.New("no target for setting")

type applyOptions struct {
	caseInsensitive bool
	strict          bool
	format          Format
}

// Option configures a single Apply call.
type Option func(*applyOptions)

// CaseInsensitive matches Map keys against setting names folding case.
func CaseInsensitive() Option {
	return func(o *applyOptions) { o.caseInsensitive = true }
}

// Strict makes Apply fail on settings that have no Map entry instead of
// skipping them.
func Strict() Option {
	return func(o *applyOptions) { o.strict = true }
}

// WithFormat supplies the numeric-format context used by Float targets.
func WithFormat(f Format) Option {
	return func(o *applyOptions) { o.format = f }
}

// Apply walks sec's settings in declaration order and feeds each raw value
// to its Map target. Unmatched settings are skipped unless Strict is given;
// unmatched Map entries are left at their current values.
func Apply(sec *document.Section, m Map, opts ...Option) error {
	var o applyOptions
	for _, opt := range opts {
		opt(&o)
	}
	for _, st := range sec.Settings() {
		target, ok := lookup(m, st.Name(), o.caseInsensitive)
		if !ok {
			if o.strict {
				return &FieldError{Setting: st.Name(), Err: ErrUnknownSetting}
			}
			continue
		}
		if err := target(st.Value(), o.format); err != nil {
			return &FieldError{Setting: st.Name(), Err: err}
		}
	}
	return nil
}

// ApplyTo feeds every setting of sec to b in declaration order.
func ApplyTo(sec *document.Section, b Binder) error {
	for _, st := range sec.Settings() {
		if err := b.BindSetting(st.Name(), st.Value()); err != nil {
			return &FieldError{Setting: st.Name(), Err: err}
		}
	}
	return nil
}

func lookup(m Map, name string, fold bool) (Target, bool) {
	if t, ok := m[name]; ok {
		return t, true
	}
	if !fold {
		return nil, false
	}
	for k, t := range m {
		if strings.EqualFold(k, name) {
			return t, true
		}
	}
	return nil, false
}

// String stores the raw value unchanged.
func String(p *string) Target {
	return func(raw string, _ Format) error {
		*p = raw
		return nil
	}
}

// Int parses the raw value as a base-10 integer.
func Int(p *int) Target {
	return func(raw string, _ Format) error {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		*p = n
		return nil
	}
}

// Uint parses the raw value as a base-10 unsigned integer.
func Uint(p *uint64) Target {
	return func(raw string, _ Format) error {
		n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return err
		}
		*p = n
		return nil
	}
}

// Float parses the raw value as a float, honoring the Format's decimal
// separator.
func Float(p *float64) Target {
	return func(raw string, f Format) error {
		s := strings.TrimSpace(raw)
		if f.DecimalSeparator != 0 {
			s = strings.ReplaceAll(s, string(f.DecimalSeparator), ".")
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*p = n
		return nil
	}
}

// Bool parses the raw value with strconv.ParseBool.
func Bool(p *bool) Target {
	return func(raw string, _ Format) error {
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		*p = b
		return nil
	}
}

// Duration parses the raw value with time.ParseDuration.
func Duration(p *time.Duration) Target {
	return func(raw string, _ Format) error {
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return err
		}
		*p = d
		return nil
	}
}
