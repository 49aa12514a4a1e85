// Package textform lays out values in fixed-width text columns described by
// a line-printer style template.
//
// A template is ordinary text with fields embedded in it. A field starts
// with '@' and continues with a run of one marker character:
//
//	@<<<<   left-justified, width 5
//	@>>>>   right-justified, width 5
//	@||||   centered, width 5
//
// The field width is the length of the whole run, '@' included. Any other
// text, including an '@' that is not followed by a marker, is copied through
// unchanged.
//
// # Formatting
//
// The central entry points are [Format] and [Write]. Each value is word-wrapped
// to the width of its field and the template is repeated until every field
// has been drained:
//
//	out, err := textform.Format("@<<<<<<<<:@|||||||:@>>>>>>>",
//		"now is the time for all",
//		"good men to come",
//		"to the aid of their party")
//
// produces
//
//	now is   :good men:  to the
//	the time :to come :  aid of
//	for all  :        :   their
//	         :        :   party
//
// Use [Compile] to reuse a template or to change how it renders:
//
//   - [WithMode] — [Wrap] (default) or [Sequential]
//   - [WithTrimRight] — strip trailing padding from each line
//   - [WithStrict] — require exactly one value per field in Wrap mode
//
// # Modes
//
// In [Wrap] mode value i belongs to field i. In [Sequential] mode the
// template consumes one value per field per pass, repeating until the values
// run out; the last pass leaves unused fields blank. The lower-level [Parse],
// [Layout] and [LayoutWrapped] functions expose the two steps separately.
//
// Text that does not fit a field is truncated to its width, measured in
// display columns, so columns always line up.
//
// # Values
//
// Values of any type are accepted. Strings are used as-is, [fmt.Stringer],
// [encoding.TextMarshaler] and error values are asked for their text, nil
// renders as a blank field and everything else goes through fmt's %v.
// Wrap mode collapses whitespace runs inside a value to a single space;
// Sequential mode keeps the text as-is apart from turning line breaks into
// spaces.
//
// # Configuration
//
// *[Template] implements [encoding.TextUnmarshaler] and yaml.Unmarshaler, so
// templates can live in JSON or YAML configuration. In YAML a template is a
// plain string or a mapping:
//
//	report:
//	  template: "@<<<<<<<< @>>>>>"
//	  mode: sequential
//	  trim: true
//
// # Errors
//
// Templates never fail to parse. The package exports sentinel errors for
// the remaining failures:
//
//   - [ErrInvalidTemplate] — a hand-built token has a width below 1 or an unknown kind
//   - [ErrMismatch] — more values than fields in Wrap mode, or any mismatch with [WithStrict]
//   - [ErrUnsupportedMode] — unknown mode name
package textform
