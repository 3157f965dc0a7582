package component

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Value holds a component so it can be embedded in structs that are encoded
// with encoding/json or yaml.v3, for example configuration files.
type Value struct {
	Component Component
}

var (
	_ json.Marshaler   = Value{}
	_ json.Unmarshaler = (*Value)(nil)

	_ yaml.Marshaler   = Value{}
	_ yaml.Unmarshaler = (*Value)(nil)
)

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Component == nil {
		return []byte("null"), nil
	}
	return Marshal(v.Component)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		v.Component = nil
		return nil
	}
	c, err := Unmarshal(data)
	if err != nil {
		return err
	}
	v.Component = c
	return nil
}

// MarshalYAML writes the canonical JSON form as a YAML string.
func (v Value) MarshalYAML() (any, error) {
	if v.Component == nil {
		return nil, nil
	}
	data, err := Marshal(v.Component)
	return string(data), err
}

// UnmarshalYAML accepts a scalar holding either JSON or plain text, or a YAML
// mapping or sequence shaped like the JSON form.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			v.Component = nil
			return nil
		}
		s := strings.TrimSpace(node.Value)
		if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
			err := v.UnmarshalJSON([]byte(s))
			var derr *DecodeError
			if !errors.As(err, &derr) || derr.Reason != ReasonInvalidJSON {
				return err
			}
		}
		// Text such as "[Server] hello" only looks like JSON.
		v.Component = NewText(node.Value)
		return nil
	case yaml.MappingNode, yaml.SequenceNode:
		var tree any
		if err := node.Decode(&tree); err != nil {
			return err
		}
		data, err := json.Marshal(tree)
		if err != nil {
			return fmt.Errorf("convert yaml component at line %d: %w", node.Line, err)
		}
		return v.UnmarshalJSON(data)
	}
	return fmt.Errorf("unsupported yaml node kind %d for component at line %d", node.Kind, node.Line)
}

func (t *Text) MarshalJSON() ([]byte, error)         { return Marshal(t) }
func (t *Translatable) MarshalJSON() ([]byte, error) { return Marshal(t) }
func (s *Score) MarshalJSON() ([]byte, error)        { return Marshal(s) }
func (s *Selector) MarshalJSON() ([]byte, error)     { return Marshal(s) }
func (k *Keybind) MarshalJSON() ([]byte, error)      { return Marshal(k) }
func (n *NBT) MarshalJSON() ([]byte, error)          { return Marshal(n) }
