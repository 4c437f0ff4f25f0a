// Package blocks reads tokenized command blocks from YAML or JSON.
//
// A stream holds one or more documents. Each document is either a sequence
// of {command, text} records or a mapping with such a sequence under
// "blocks". Text is passed through untouched.
package blocks

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/agentflare-ai/go-docrst/internal/rst"
)

type document struct {
	Blocks []rst.Block `yaml:"blocks"`
}

// Decode reads every block from r. name identifies the source in errors.
func Decode(r io.Reader, name string) ([]rst.Block, error) {
	dec := yaml.NewDecoder(r)
	var out []rst.Block
	for i := 0; ; i++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		blocks, err := decodeDocument(&node)
		if err != nil {
			return nil, fmt.Errorf("%s: document %d: %w", name, i+1, err)
		}
		out = append(out, blocks...)
	}
}

func decodeDocument(node *yaml.Node) ([]rst.Block, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	switch node.Kind {
	case yaml.SequenceNode:
		var blocks []rst.Block
		if err := node.Decode(&blocks); err != nil {
			return nil, err
		}
		return blocks, nil
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, err
		}
		return doc.Blocks, nil
	case 0:
		return nil, nil
	default:
		return nil, fmt.Errorf("line %d: expected a list of blocks or a mapping with a blocks key", node.Line)
	}
}
