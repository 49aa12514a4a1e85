package textform

import (
	"fmt"
	"strings"
)

// Layout renders values through tokens one value per field per pass,
// repeating the whole token sequence until every value has been placed.
// Fields left over in the last pass are blank. A token sequence without
// fields is rendered exactly once. Lines are joined with "\n".
func Layout(tokens []Token, values []any) (string, error) {
	lines, err := LayoutLines(tokens, values)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// LayoutLines is like [Layout] but returns the lines unjoined.
func LayoutLines(tokens []Token, values []any) ([]string, error) {
	return layoutSequential(tokens, slotTexts(values))
}

// LayoutWrapped renders value i into field i, word-wrapping it to the
// field's width. Passes repeat until the deepest field is drained, so
// shorter fields go blank first. Fields without a value are blank; more
// values than fields is an [ErrMismatch].
func LayoutWrapped(tokens []Token, values []any) (string, error) {
	lines, err := LayoutWrappedLines(tokens, values)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// LayoutWrappedLines is like [LayoutWrapped] but returns the lines unjoined.
func LayoutWrappedLines(tokens []Token, values []any) ([]string, error) {
	return layoutWrapped(tokens, wrapTexts(values), false)
}

func layoutSequential(tokens []Token, vals []string) ([]string, error) {
	if err := validate(tokens); err != nil {
		return nil, err
	}
	fields := Fields(tokens)
	next := 0
	var lines []string
	for {
		lines = append(lines, renderPass(tokens, func() string {
			var s string
			if next < len(vals) {
				s = vals[next]
			}
			next++
			return s
		}))
		if fields == 0 || next >= len(vals) {
			return lines, nil
		}
	}
}

func layoutWrapped(tokens []Token, vals []string, strict bool) ([]string, error) {
	if err := validate(tokens); err != nil {
		return nil, err
	}
	fields := Fields(tokens)
	if len(vals) > fields || (strict && len(vals) != fields) {
		return nil, fmt.Errorf("%w: %d values for %d fields", ErrMismatch, len(vals), fields)
	}

	cols := make([][]string, 0, fields)
	depth := 1
	for _, t := range tokens {
		if t.Kind != KindField {
			continue
		}
		var col []string
		if i := len(cols); i < len(vals) {
			col = wrapText(vals[i], t.Width)
		}
		cols = append(cols, col)
		depth = max(depth, len(col))
	}

	lines := make([]string, depth)
	for pass := range depth {
		f := 0
		lines[pass] = renderPass(tokens, func() string {
			var s string
			if pass < len(cols[f]) {
				s = cols[f][pass]
			}
			f++
			return s
		})
	}
	return lines, nil
}

// renderPass renders one line, calling next once per field in order.
func renderPass(tokens []Token, next func() string) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.Kind == KindLiteral {
			sb.WriteString(t.Text)
			continue
		}
		sb.WriteString(fitCell(next(), t.Width, t.Justify))
	}
	return sb.String()
}
