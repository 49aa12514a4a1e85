package textform

import (
	"fmt"
	"strings"
)

// Kind distinguishes literal text from field placeholders.
type Kind int

const (
	KindLiteral Kind = iota
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// Justify controls how a value is placed inside its field.
type Justify int

const (
	JustifyLeft   Justify = iota // @<<<
	JustifyRight                 // @>>>
	JustifyCenter                // @|||
)

func (j Justify) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyRight:
		return "right"
	case JustifyCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Marker returns the template character that selects j, or 0 for an
// unknown justification.
func (j Justify) Marker() byte {
	switch j {
	case JustifyLeft:
		return '<'
	case JustifyRight:
		return '>'
	case JustifyCenter:
		return '|'
	default:
		return 0
	}
}

func justifyOf(marker byte) (Justify, bool) {
	switch marker {
	case '<':
		return JustifyLeft, true
	case '>':
		return JustifyRight, true
	case '|':
		return JustifyCenter, true
	default:
		return 0, false
	}
}

// fieldStart introduces every field in a template.
const fieldStart = '@'

// Token is one element of a parsed template. Literal tokens carry Text;
// field tokens carry Justify and Width.
type Token struct {
	Kind    Kind
	Text    string
	Justify Justify
	Width   int
}

// Literal returns a literal token.
func Literal(text string) Token {
	return Token{Kind: KindLiteral, Text: text}
}

// Field returns a field token.
func Field(j Justify, width int) Token {
	return Token{Kind: KindField, Justify: j, Width: width}
}

// Source returns the template text the token was parsed from.
func (t Token) Source() string {
	if t.Kind != KindField {
		return t.Text
	}
	if t.Width < 1 {
		return ""
	}
	return string(fieldStart) + strings.Repeat(string(t.Justify.Marker()), t.Width-1)
}

// Parse splits a template into literal and field tokens. A field is '@'
// followed by a run of one marker character ('<', '>' or '|'); its width is
// the length of the whole run including the '@'. Anything else, including
// an '@' without a marker after it, is literal text. Parse never fails.
func Parse(template string) []Token {
	var (
		tokens []Token
		lit    strings.Builder
	)
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Literal(lit.String()))
			lit.Reset()
		}
	}
	for i := 0; i < len(template); {
		if n, j, ok := matchField(template[i:]); ok {
			flush()
			tokens = append(tokens, Field(j, n))
			i += n
			continue
		}
		lit.WriteByte(template[i])
		i++
	}
	flush()
	return tokens
}

// matchField reports the length and justification of a field at the start
// of s.
func matchField(s string) (int, Justify, bool) {
	if len(s) < 2 || s[0] != fieldStart {
		return 0, 0, false
	}
	j, ok := justifyOf(s[1])
	if !ok {
		return 0, 0, false
	}
	n := 2
	for n < len(s) && s[n] == s[1] {
		n++
	}
	return n, j, true
}

// Source concatenates the source text of tokens. For any template s,
// Source(Parse(s)) == s.
func Source(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteString(t.Source())
	}
	return sb.String()
}

// Fields returns the number of field tokens.
func Fields(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if t.Kind == KindField {
			n++
		}
	}
	return n
}

func validate(tokens []Token) error {
	for i, t := range tokens {
		switch t.Kind {
		case KindLiteral:
		case KindField:
			if t.Width < 1 {
				return fmt.Errorf("%w: token %d has field width %d", ErrInvalidTemplate, i, t.Width)
			}
			if t.Justify.Marker() == 0 {
				return fmt.Errorf("%w: token %d has justification %d", ErrInvalidTemplate, i, int(t.Justify))
			}
		default:
			return fmt.Errorf("%w: token %d has kind %d", ErrInvalidTemplate, i, int(t.Kind))
		}
	}
	return nil
}
