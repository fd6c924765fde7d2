package workflow

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tracker-tv/actions-lint/models"
)

// ParseError means the text is not valid YAML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errMultipleDocuments = errors.New("expected a single document in the stream, but found more")

// Parse decodes a workflow document. A document whose root is not a mapping
// (empty, null, a scalar or a sequence) yields a nil workflow and no error.
// Values of an unexpected type inside the mapping are dropped, not reported;
// duplicate mapping keys and multi-document streams are parse errors.
func Parse(content string) (*models.Workflow, error) {
	dec := yaml.NewDecoder(strings.NewReader(content))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &ParseError{Err: err}
	}

	var next yaml.Node
	if err := dec.Decode(&next); err == nil {
		return nil, &ParseError{Err: errMultipleDocuments}
	} else if !errors.Is(err, io.EOF) {
		return nil, &ParseError{Err: err}
	}

	if err := checkDuplicateKeys(&root); err != nil {
		return nil, &ParseError{Err: err}
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, nil
	}

	var wf models.Workflow
	if err := doc.Decode(&wf); err != nil {
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return nil, &ParseError{Err: err}
		}
	}
	return &wf, nil
}

// checkDuplicateKeys walks every mapping of the tree. Merge keys (<<) may repeat.
func checkDuplicateKeys(node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			if err := checkDuplicateKeys(child); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		seen := make(map[string]int, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind == yaml.ScalarNode && key.Value != "<<" {
				if line, ok := seen[key.Value]; ok {
					return fmt.Errorf("line %d: mapping key %q already defined at line %d", key.Line, key.Value, line)
				}
				seen[key.Value] = key.Line
			}
			if err := checkDuplicateKeys(node.Content[i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}
