// Package document holds the in-memory model for an INI-like configuration:
// an ordered list of sections, each holding an ordered list of settings,
// with comments attached to both.
//
// Name lookups are governed by a per-Configuration case policy fixed at
// construction time. The default is case-sensitive; CaseInsensitive switches
// every lookup, insertion and removal on that instance to case folding.
package document

import (
	"errors"
	"strings"
)

// Errors reported by model operations that violate a precondition or a
// structural invariant.
var (
	ErrEmptyName   = errors.New("document: name is empty")
	ErrNotFound    = errors.New("document: no entity with that name")
	ErrDuplicate   = errors.New("document: an entity with that name already exists")
	ErrAlreadyHeld = errors.New("document: entity is already stored")
	ErrProtected   = errors.New("document: the implicit section cannot be removed")
	ErrOutOfRange  = errors.New("document: index out of range")
	ErrNoImplicit  = errors.New("document: no implicit section is enabled")
)

// Configuration is an ordered sequence of sections with unique names.
//
// When the implicit section is enabled, it occupies position zero, exists for
// the lifetime of the Configuration, and can be cleared but never removed.
type Configuration struct {
	caseSensitive bool
	sections      []*Section
	implicit      *Section
}

// Option configures a Configuration at construction time.
type Option func(*Configuration)

// CaseInsensitive makes all name comparisons on the Configuration (and the
// sections created through it) fold case.
func CaseInsensitive() Option {
	return func(c *Configuration) { c.caseSensitive = false }
}

// WithImplicitSection enables the unnamed global section that collects
// settings declared before any explicit section header.
func WithImplicitSection() Option {
	return func(c *Configuration) {
		c.implicit = &Section{caseSensitive: c.caseSensitive, implicit: true}
	}
}

// New returns an empty Configuration. The case policy defaults to sensitive.
func New(opts ...Option) *Configuration {
	c := &Configuration{caseSensitive: true}
	for _, opt := range opts {
		opt(c)
	}
	if c.implicit != nil {
		c.implicit.caseSensitive = c.caseSensitive
		c.sections = append(c.sections, c.implicit)
	}
	return c
}

// CaseSensitive reports the instance's name comparison policy.
func (c *Configuration) CaseSensitive() bool { return c.caseSensitive }

// Global returns the implicit section, or nil if it is not enabled.
func (c *Configuration) Global() *Section { return c.implicit }

// Len returns the number of sections, including the implicit one if enabled.
func (c *Configuration) Len() int { return len(c.sections) }

// Sections returns the sections in declaration order. The returned slice is
// a snapshot; the sections themselves are shared.
func (c *Configuration) Sections() []*Section {
	out := make([]*Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// At returns the section at position i.
func (c *Configuration) At(i int) (*Section, error) {
	if i < 0 || i >= len(c.sections) {
		return nil, ErrOutOfRange
	}
	return c.sections[i], nil
}

// Get returns the section with the given name under the active case policy.
// The empty name addresses the implicit section when one is enabled.
func (c *Configuration) Get(name string) (*Section, bool) {
	if name == "" {
		if c.implicit != nil {
			return c.implicit, true
		}
		return nil, false
	}
	for _, s := range c.sections {
		if !s.implicit && c.equal(s.name, name) {
			return s, true
		}
	}
	return nil, false
}

// GetOrCreate returns the section with the given name, creating, appending
// and returning a new empty section if none exists. The returned section is
// always stored before it is returned.
//
// The empty name is reserved for the implicit section: GetOrCreate("")
// returns it when enabled and nil otherwise.
func (c *Configuration) GetOrCreate(name string) *Section {
	if name == "" {
		return c.implicit
	}
	if s, ok := c.Get(name); ok {
		return s
	}
	s := &Section{name: name, caseSensitive: c.caseSensitive}
	c.sections = append(c.sections, s)
	return s
}

// Add appends a section. It fails if the very same section is already stored
// or a section of that name exists under the active case policy.
func (c *Configuration) Add(s *Section) error {
	if s == nil {
		return errors.New("document: section is nil")
	}
	if s.name == "" {
		return ErrEmptyName
	}
	for _, held := range c.sections {
		if held == s {
			return ErrAlreadyHeld
		}
	}
	if _, ok := c.Get(s.name); ok {
		return ErrDuplicate
	}
	s.caseSensitive = c.caseSensitive
	c.sections = append(c.sections, s)
	return nil
}

// Remove deletes the named section. Removing the implicit section always
// fails with ErrProtected; a name that resolves to nothing fails with
// ErrNotFound.
func (c *Configuration) Remove(name string) error {
	if name == "" {
		if c.implicit != nil {
			return ErrProtected
		}
		return ErrNotFound
	}
	for i, s := range c.sections {
		if s.implicit {
			continue
		}
		if c.equal(s.name, name) {
			c.sections = append(c.sections[:i], c.sections[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Clear removes every explicit section and empties the implicit one.
func (c *Configuration) Clear() {
	c.sections = c.sections[:0]
	if c.implicit != nil {
		c.implicit.Clear()
		c.sections = append(c.sections, c.implicit)
	}
}

// SetSetting assigns value to the named setting inside the named section,
// creating both on demand. The supplied value always wins: an existing
// setting is overwritten in place, otherwise a new setting carrying value is
// appended.
func (c *Configuration) SetSetting(section, name, value string) (*Setting, error) {
	sec := c.GetOrCreate(section)
	if sec == nil {
		return nil, ErrNoImplicit
	}
	return sec.Set(name, value)
}

func (c *Configuration) equal(a, b string) bool {
	if c.caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}
