package textform

// MarshalText returns the template source.
func (t *Template) MarshalText() ([]byte, error) {
	return []byte(t.source), nil
}

// UnmarshalText parses text as a template, keeping the receiver's options.
// A zero Template gets the default options.
func (t *Template) UnmarshalText(text []byte) error {
	opts := t.opts
	if opts.Mode == "" {
		opts = DefaultOptions()
	}
	t.source = string(text)
	t.tokens = Parse(t.source)
	t.opts = opts
	return nil
}
