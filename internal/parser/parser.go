// Package parser builds a document.Configuration from whole configuration
// text, one trimmed line at a time.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inicfg/go-inicfg/document"
	inierr "github.com/inicfg/go-inicfg/errors"
	"github.com/inicfg/go-inicfg/internal/scanner"
)

// Config carries the parse-time knobs resolved by the public API.
type Config struct {
	Delimiters      []rune
	CaseInsensitive bool
	ImplicitSection bool
}

// Parser is a line-oriented structural parser. The whole input is read
// before parsing begins; there is no streaming mode.
type Parser struct {
	det *scanner.Detector
	cfg Config
}

// New returns a Parser for the given configuration.
func New(cfg Config) *Parser {
	return &Parser{det: scanner.NewDetector(cfg.Delimiters), cfg: cfg}
}

// Parse consumes data and returns the resulting document. Every failure is a
// *errors.ParseError carrying the 1-based line number of the offending line;
// the first failure aborts the parse and no partial document escapes.
func (p *Parser) Parse(data []byte) (*document.Configuration, error) {
	var opts []document.Option
	if p.cfg.CaseInsensitive {
		opts = append(opts, document.CaseInsensitive())
	}
	if p.cfg.ImplicitSection {
		opts = append(opts, document.WithImplicitSection())
	}
	cfg := document.New(opts...)

	var pending []document.Comment
	current := cfg.Global() // nil unless the implicit section is enabled

	for i, raw := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		var trailing *document.Comment
		if c, idx, ok := p.det.Detect(line); ok {
			if idx == 0 {
				pending = append(pending, c)
				continue
			}
			line = strings.TrimSpace(line[:idx])
			trailing = &c
		}

		var err error
		if strings.HasPrefix(line, "[") {
			current, err = p.parseHeader(cfg, line, trailing, pending)
		} else {
			err = p.parseAssignment(current, line, trailing, pending)
		}
		if err != nil {
			return nil, &inierr.ParseError{Line: lineNo, Message: err.Error()}
		}
		pending = nil
	}

	return cfg, nil
}

func (p *Parser) parseHeader(cfg *document.Configuration, line string, trailing *document.Comment, pending []document.Comment) (*document.Section, error) {
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return nil, errors.New("section header has no closing ']'")
	}
	if rest := strings.TrimSpace(line[end+1:]); rest != "" {
		return nil, fmt.Errorf("unexpected %q after closing ']'", rest)
	}
	name := strings.TrimSpace(line[1:end])
	if name == "" {
		return nil, errors.New("section name is empty")
	}

	// Duplicate headers are a structural error regardless of the runtime
	// lookup policy, so the exact name is checked first.
	for _, s := range cfg.Sections() {
		if !s.Implicit() && s.Name() == name {
			return nil, fmt.Errorf("section %q is already declared", name)
		}
	}

	sec, err := document.NewSection(name)
	if err != nil {
		return nil, err
	}
	if err := cfg.Add(sec); err != nil {
		if errors.Is(err, document.ErrDuplicate) {
			return nil, fmt.Errorf("section %q is already declared", name)
		}
		return nil, err
	}
	sec.PreComments = append(sec.PreComments, pending...)
	sec.Comment = trailing
	return sec, nil
}

func (p *Parser) parseAssignment(current *document.Section, line string, trailing *document.Comment, pending []document.Comment) error {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return errors.New("expected '=' in setting assignment")
	}
	name := strings.TrimSpace(line[:eq])
	if name == "" {
		return errors.New("setting name is empty")
	}
	value := stripQuotes(strings.TrimSpace(line[eq+1:]))

	if current == nil {
		return fmt.Errorf("setting %q declared outside of any section", name)
	}
	for _, st := range current.Settings() {
		if st.Name() == name {
			return fmt.Errorf("setting %q is already declared in this section", name)
		}
	}

	st, err := document.NewSetting(name, value)
	if err != nil {
		return err
	}
	if err := current.Add(st); err != nil {
		if errors.Is(err, document.ErrDuplicate) {
			return fmt.Errorf("setting %q is already declared in this section", name)
		}
		return err
	}
	st.PreComments = append(st.PreComments, pending...)
	st.Comment = trailing
	return nil
}

// stripQuotes removes one pair of wrapping double quotes from the outer
// edges of v. It is neither escape-aware nor recursive.
func stripQuotes(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
