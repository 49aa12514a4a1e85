package textform

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"
)

// textOf converts a value to the text placed in a field. Nil values,
// including typed nil pointers, render as "".
func textOf(v any) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return ""
	}
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case encoding.TextMarshaler:
		if b, err := v.MarshalText(); err == nil {
			return string(b)
		}
	case error:
		return v.Error()
	}
	return fmt.Sprintf("%v", v)
}

// cleanText collapses whitespace runs to a single space and trims the ends.
// Wrap mode breaks lines at these spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// singleLine replaces line breaks with spaces and leaves all other
// whitespace alone.
func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

// wrapTexts converts values for Wrap mode.
func wrapTexts(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cleanText(textOf(v))
	}
	return out
}

// slotTexts converts values for Sequential mode, where each value fills
// one field as-is.
func slotTexts(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = singleLine(textOf(v))
	}
	return out
}
