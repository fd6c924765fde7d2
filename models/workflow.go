package models

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// WorkflowFile is one candidate workflow read from disk or from a remote repository.
type WorkflowFile struct {
	Name    string
	Path    string
	Content string
}

// Workflow is the typed view of a workflow document. Absent keys stay at their
// zero value; a nil *Workflow means the document carried no mapping at all.
type Workflow struct {
	Name        string   `yaml:"name"`
	On          Triggers `yaml:"on"`
	Permissions Value    `yaml:"permissions"`
	Concurrency Value    `yaml:"concurrency"`
	Jobs        Jobs     `yaml:"jobs"`
}

type Job struct {
	Name           string `yaml:"-"`
	TimeoutMinutes Value  `yaml:"timeout-minutes"`
	Permissions    Value  `yaml:"permissions"`
	Steps          []Step `yaml:"steps"`
}

type Step struct {
	Name string           `yaml:"name"`
	Uses string           `yaml:"uses"`
	With map[string]Value `yaml:"with"`
	Run  string           `yaml:"run"`
}

// Action returns the part of uses before the ref, e.g. "actions/checkout".
func (s Step) Action() string {
	action, _, _ := strings.Cut(s.Uses, "@")
	return action
}

// Input returns the with.<key> value of the step.
func (s Step) Input(key string) Value {
	return s.With[key]
}

// Triggers holds the event names of the `on` key, whatever form it was written in.
type Triggers []string

func (t *Triggers) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = Triggers{node.Value}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind == yaml.ScalarNode {
				*t = append(*t, item.Value)
			}
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			*t = append(*t, node.Content[i].Value)
		}
	}
	return nil
}

func (t Triggers) Has(event string) bool {
	for _, name := range t {
		if name == event {
			return true
		}
	}
	return false
}

// Jobs keeps jobs in document order.
type Jobs []*Job

func (j *Jobs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		job := &Job{}
		if err := node.Content[i+1].Decode(job); err != nil && !isTypeError(err) {
			return err
		}
		job.Name = node.Content[i].Value
		*j = append(*j, job)
	}
	return nil
}

// Value is an optional, loosely typed YAML value.
type Value struct {
	node *yaml.Node
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	v.node = node
	return nil
}

// NewValue wraps a raw YAML node, mostly useful for building documents in tests.
func NewValue(node *yaml.Node) Value {
	return Value{node: node}
}

// IsSet reports whether the value is present and truthy: null, false, zero
// and the empty string count as unset.
func (v Value) IsSet() bool {
	n := v.resolve()
	if n == nil {
		return false
	}
	if n.Kind != yaml.ScalarNode {
		return true
	}

	switch n.ShortTag() {
	case "!!null":
		return false
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		return err != nil || b
	case "!!int", "!!float":
		f, ok := v.Float()
		return !ok || f != 0
	default:
		return n.Value != ""
	}
}

// Float returns the value of an int or float scalar. ok is false for any
// other value, including numeric text in a quoted string.
func (v Value) Float() (f float64, ok bool) {
	n := v.resolve()
	if n == nil || n.Kind != yaml.ScalarNode {
		return 0, false
	}
	switch n.ShortTag() {
	case "!!int", "!!float":
		if err := n.Decode(&f); err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// String returns the scalar text of the value, or "" for collections and absent values.
func (v Value) String() string {
	n := v.resolve()
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

func (v Value) resolve() *yaml.Node {
	n := v.node
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isTypeError(err error) bool {
	_, ok := err.(*yaml.TypeError)
	return ok
}
