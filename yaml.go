package cellref

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrNilNode = errors.New("cellref: nil yaml node")

var (
	_ yaml.Marshaler   = Cell[int]{}
	_ yaml.Marshaler   = (*Cell[int])(nil)
	_ yaml.Unmarshaler = (*Cell[int])(nil)
)

// MarshalYAML encodes the held value as if the cell were not there. The
// value receiver lets yaml find it on Cell fields stored by value.
func (c Cell[T]) MarshalYAML() (any, error) {
	var node yaml.Node
	err := WithTaken(&c, func(v *T) error {
		return node.Encode(*v)
	})
	if err != nil {
		return nil, fmt.Errorf("cellref: encode: %w", err)
	}
	return &node, nil
}

// UnmarshalYAML decodes node into a fresh T and stores it. On error the
// held value is left as it was.
func (c *Cell[T]) UnmarshalYAML(node *yaml.Node) error {
	if node == nil {
		return ErrNilNode
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("cellref: decode: %w", err)
	}
	c.Set(v)
	return nil
}
