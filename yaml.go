package textform

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// templateDoc is the mapping form of a template in YAML.
type templateDoc struct {
	Template string `yaml:"template"`
	Mode     string `yaml:"mode,omitempty"`
	Trim     bool   `yaml:"trim,omitempty"`
	Strict   bool   `yaml:"strict,omitempty"`
}

// MarshalYAML emits the template source as a scalar, or a mapping when
// the options differ from the defaults.
func (t *Template) MarshalYAML() (any, error) {
	if t.opts == DefaultOptions() {
		return t.source, nil
	}
	return templateDoc{
		Template: t.source,
		Mode:     t.opts.Mode.String(),
		Trim:     t.opts.TrimRight,
		Strict:   t.opts.Strict,
	}, nil
}

// UnmarshalYAML accepts either a scalar template source or a mapping with
// template, mode, trim and strict keys.
func (t *Template) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*t = *Compile(s)
		return nil
	case yaml.MappingNode:
		var doc templateDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		opts := []Option{WithTrimRight(doc.Trim), WithStrict(doc.Strict)}
		if doc.Mode != "" {
			m, err := ParseMode(doc.Mode)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			opts = append(opts, WithMode(m))
		}
		*t = *Compile(doc.Template, opts...)
		return nil
	default:
		return fmt.Errorf("%w: line %d: expected a string or mapping", ErrInvalidTemplate, node.Line)
	}
}
