package textform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// fitCell truncates s to width display columns and pads it according to j.
func fitCell(s string, width int, j Justify) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch j {
	case JustifyRight:
		return strings.Repeat(" ", pad) + s
	case JustifyCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// chunk is an unbreakable piece of wrapped text.
type chunk struct {
	text   string
	spaced bool // whitespace separates it from the previous chunk
}

// splitChunks cuts s into the pieces a line may break between: at
// whitespace, and right after a hyphen that follows a letter ("now-" "is-").
// "10-20" and "--flag" stay whole.
func splitChunks(s string) []chunk {
	var (
		out    []chunk
		cur    strings.Builder
		spaced bool
	)
	emit := func() {
		if cur.Len() > 0 {
			out = append(out, chunk{text: cur.String(), spaced: spaced})
			cur.Reset()
			spaced = false
		}
	}
	seg := words.FromString(s)
	for seg.Next() {
		w := seg.Value()
		if strings.TrimSpace(w) == "" {
			emit()
			spaced = len(out) > 0
			continue
		}
		if w == "-" {
			prev, _ := utf8.DecodeLastRuneInString(cur.String())
			cur.WriteString(w)
			if unicode.IsLetter(prev) {
				emit()
			}
			continue
		}
		cur.WriteString(w)
	}
	emit()
	return out
}

// wrapText greedily fills lines of at most width display columns. Chunks
// wider than a whole line are broken, using up the room left on the
// current line first. Empty input yields no lines.
func wrapText(s string, width int) []string {
	var (
		lines []string
		line  strings.Builder
		cur   int
	)
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		cur = 0
	}
	for _, c := range splitChunks(s) {
		text := c.text
		w := runewidth.StringWidth(text)
		sep := 0
		if c.spaced && cur > 0 {
			sep = 1
		}
		if cur+sep+w <= width {
			if sep == 1 {
				line.WriteByte(' ')
			}
			line.WriteString(text)
			cur += sep + w
			continue
		}
		if w <= width {
			flush()
			line.WriteString(text)
			cur = w
			continue
		}
		for text != "" {
			room := width - cur - sep
			if room <= 0 {
				flush()
				sep = 0
				continue
			}
			head := runewidth.Truncate(text, room, "")
			if head == "" {
				if cur > 0 {
					flush()
					sep = 0
					continue
				}
				// Safety: a single rune wider than the field still advances.
				_, size := utf8.DecodeRuneInString(text)
				head = text[:size]
			}
			if sep == 1 {
				line.WriteByte(' ')
			}
			line.WriteString(head)
			cur += sep + runewidth.StringWidth(head)
			sep = 0
			text = text[len(head):]
			if text != "" {
				flush()
			}
		}
	}
	if line.Len() > 0 {
		flush()
	}
	return lines
}
