package document

import "strings"

// Setting is a name paired with a raw string value. Typing the value is an
// external concern; the parser stores exactly what the value-trim step
// produced and never touches it again.
type Setting struct {
	name  string
	value string

	Comment     *Comment
	PreComments []Comment
}

// NewSetting returns a standalone setting.
func NewSetting(name, value string) (*Setting, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Setting{name: name, value: value}, nil
}

// Name returns the setting name.
func (s *Setting) Name() string { return s.name }

// Value returns the raw string value.
func (s *Setting) Value() string { return s.value }

// SetValue replaces the raw string value.
func (s *Setting) SetValue(v string) { s.value = v }

func (s *Setting) String() string { return s.name + " = " + s.value }
