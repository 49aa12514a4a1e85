package textform

import (
	"io"
	"iter"
)

// FormatIter collects values from seq and renders them with t. Output is
// produced only once seq is exhausted, since layout needs every value.
func FormatIter[T any](t *Template, seq iter.Seq[T]) (string, error) {
	return t.Format(collect(seq)...)
}

// FormatChan is a thin wrapper around [FormatIter] that drains ch.
func FormatChan[T any](t *Template, ch <-chan T) (string, error) {
	return FormatIter(t, chanToIter(ch))
}

// WriteIter collects values from seq and writes the rendered lines to w.
func WriteIter[T any](w io.Writer, t *Template, seq iter.Seq[T]) error {
	return t.Write(w, collect(seq)...)
}

func collect[T any](seq iter.Seq[T]) []any {
	var values []any
	seq(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}
