package document

import (
	"errors"
	"strings"
)

// Section is a named, ordered group of settings.
//
// Comment holds the trailing comment from the header line, PreComments the
// standalone comment lines that immediately preceded it.
type Section struct {
	name          string
	caseSensitive bool
	implicit      bool
	settings      []*Setting

	Comment     *Comment
	PreComments []Comment
}

// NewSection returns a standalone section. Its case policy is adopted from
// the Configuration it is later added to; until then it is case-sensitive.
func NewSection(name string) (*Section, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Section{name: name, caseSensitive: true}, nil
}

// Name returns the section name. The implicit section's name is empty.
func (s *Section) Name() string { return s.name }

// Implicit reports whether this is the protected global section.
func (s *Section) Implicit() bool { return s.implicit }

// Len returns the number of settings.
func (s *Section) Len() int { return len(s.settings) }

// Settings returns the settings in declaration order. The returned slice is
// a snapshot; the settings themselves are shared.
func (s *Section) Settings() []*Setting {
	out := make([]*Setting, len(s.settings))
	copy(out, s.settings)
	return out
}

// At returns the setting at position i.
func (s *Section) At(i int) (*Setting, error) {
	if i < 0 || i >= len(s.settings) {
		return nil, ErrOutOfRange
	}
	return s.settings[i], nil
}

// Get returns the setting with the given name under the active case policy.
func (s *Section) Get(name string) (*Setting, bool) {
	for _, st := range s.settings {
		if s.equal(st.name, name) {
			return st, true
		}
	}
	return nil, false
}

// GetOrCreate returns the setting with the given name, creating, appending
// and returning a new setting with an empty value if none exists. The
// returned setting is always stored before it is returned.
func (s *Section) GetOrCreate(name string) (*Setting, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if st, ok := s.Get(name); ok {
		return st, nil
	}
	st := &Setting{name: name}
	s.settings = append(s.settings, st)
	return st, nil
}

// Add appends a setting. It fails if the very same setting is already stored
// or a setting of that name exists under the active case policy.
func (s *Section) Add(st *Setting) error {
	if st == nil {
		return errors.New("document: setting is nil")
	}
	if st.name == "" {
		return ErrEmptyName
	}
	for _, held := range s.settings {
		if held == st {
			return ErrAlreadyHeld
		}
	}
	if _, ok := s.Get(st.name); ok {
		return ErrDuplicate
	}
	s.settings = append(s.settings, st)
	return nil
}

// Remove deletes the named setting, failing with ErrNotFound if no setting
// resolves under the active case policy.
func (s *Section) Remove(name string) error {
	for i, st := range s.settings {
		if s.equal(st.name, name) {
			s.settings = append(s.settings[:i], s.settings[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Clear removes all settings.
func (s *Section) Clear() { s.settings = s.settings[:0] }

// Set assigns value to the named setting. An existing setting is overwritten
// in place; otherwise a new setting carrying the supplied value is appended.
func (s *Section) Set(name, value string) (*Setting, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if st, ok := s.Get(name); ok {
		st.value = value
		return st, nil
	}
	st := &Setting{name: name, value: value}
	s.settings = append(s.settings, st)
	return st, nil
}

func (s *Section) equal(a, b string) bool {
	if s.caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}
