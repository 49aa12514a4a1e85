package textform

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidTemplate = errors.New("invalid template")
	ErrMismatch        = errors.New("value count does not match field count")
	ErrUnsupportedMode = errors.New("unsupported mode")
)

// Mode selects how values are distributed over fields.
type Mode string

const (
	// Wrap gives each field one value and word-wraps it to the field
	// width, repeating the template until every field is drained.
	Wrap Mode = "wrap"
	// Sequential places one value per field per pass, in order.
	Sequential Mode = "sequential"
)

var modes = []Mode{Wrap, Sequential}

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// Modes returns all supported modes.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// Options configure a [Template].
type Options struct {
	Mode Mode
	// TrimRight strips trailing whitespace from every rendered line.
	TrimRight bool
	// Strict requires exactly one value per field in Wrap mode.
	Strict bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Wrap mode with padding kept and missing values allowed.
func DefaultOptions() Options {
	return Options{Mode: Wrap}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn == nil {
			continue
		}
		fn(&o)
	}
	if o.Mode == "" {
		o.Mode = Wrap
	}
	return o
}

// WithMode selects how values are distributed over fields. Default: [Wrap].
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithTrimRight strips trailing whitespace from every rendered line.
func WithTrimRight(trim bool) Option {
	return func(o *Options) { o.TrimRight = trim }
}

// WithStrict makes Wrap mode reject any value count other than one per field.
func WithStrict(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// Template is a parsed template plus the options used to render it. A
// Template is immutable after Compile and safe for concurrent use.
type Template struct {
	source string
	tokens []Token
	opts   Options
}

// Compile parses template. It never fails: text that is not a field is
// kept as literal text.
func Compile(template string, opts ...Option) *Template {
	return &Template{
		source: template,
		tokens: Parse(template),
		opts:   NewOptions(opts...),
	}
}

// String returns the template source.
func (t *Template) String() string { return t.source }

// Tokens returns a copy of the parsed tokens.
func (t *Template) Tokens() []Token { return slices.Clone(t.tokens) }

// Fields returns the number of fields in the template.
func (t *Template) Fields() int { return Fields(t.tokens) }

// Options returns the options the template renders with.
func (t *Template) Options() Options { return t.opts }

// Lines renders values and returns one string per output line. An empty
// Mode, as in a zero Template, renders as [Wrap].
func (t *Template) Lines(values ...any) ([]string, error) {
	var (
		lines []string
		err   error
	)
	switch t.opts.Mode {
	case Wrap, "":
		lines, err = layoutWrapped(t.tokens, wrapTexts(values), t.opts.Strict)
	case Sequential:
		lines, err = layoutSequential(t.tokens, slotTexts(values))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, t.opts.Mode)
	}
	if err != nil {
		return nil, err
	}
	if t.opts.TrimRight {
		for i, l := range lines {
			lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
		}
	}
	return lines, nil
}

// Format renders values and joins the lines with "\n". There is no
// trailing newline.
func (t *Template) Format(values ...any) (string, error) {
	lines, err := t.Lines(values...)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Write renders values and writes each line, newline-terminated, to w.
func (t *Template) Write(w io.Writer, values ...any) error {
	lines, err := t.Lines(values...)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// Format compiles template with default options and renders values.
func Format(template string, values ...any) (string, error) {
	return Compile(template).Format(values...)
}

// Write compiles template with default options and writes the rendered
// values to w.
func Write(w io.Writer, template string, values ...any) error {
	return Compile(template).Write(w, values...)
}
