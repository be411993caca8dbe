package viewml

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

var UndefinedNodeError = errors.New("node is undefined")

type Attr struct {
	Name  string
	Value string
}

// Attrs preserves attribute encounter order. Names are already
// normalized: a raw key containing a colon is reduced to the part
// after the first colon before it reaches an Attrs value.
type Attrs []Attr

func (attrs Attrs) Has(name string) bool {
	_, ok := attrs.Get(name)
	return ok
}

func (attrs Attrs) Get(name string) (string, bool) {
	for _, attr := range attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set overwrites the value of an existing name in place, keeping the
// position of its first occurrence, so a later colliding normalized
// key wins by value.
func (attrs *Attrs) Set(name, value string) {
	for idx := range *attrs {
		if (*attrs)[idx].Name == name {
			(*attrs)[idx].Value = value
			return
		}
	}
	*attrs = append(*attrs, Attr{Name: name, Value: value})
}

// MarshalJSON renders a JSON object with keys in encounter order,
// which map-backed marshalling would not preserve.
func (attrs Attrs) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for idx, attr := range attrs {
		if idx > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Node is one element of a parsed layout document. Nodes is nil for
// leaf elements, so the "children" key never appears for them.
type Node struct {
	Type  string  `json:"type"`
	Attrs Attrs   `json:"attributes,omitempty"`
	Nodes []*Node `json:"children,omitempty"`
}

func (node *Node) Copy(target *Node) {
	if target == nil {
		panic(UndefinedNodeError)
	}
	target.Type = node.Type
	target.Attrs = append(Attrs(nil), node.Attrs...)
	if node.Nodes == nil {
		target.Nodes = nil
		return
	}
	target.Nodes = make([]*Node, len(node.Nodes))
	for idx, current := range node.Nodes {
		target.Nodes[idx] = current.Clone()
	}
}

func (node *Node) Clone() *Node {
	copyNode := new(Node)
	node.Copy(copyNode)
	return copyNode
}

func (node *Node) FirstChildOfType(name string) *Node {
	for _, child := range node.Nodes {
		if child.Type == name {
			return child
		}
	}
	return nil
}

func (node *Node) ChildrenOfType(name string) []*Node {
	var result []*Node
	for _, child := range node.Nodes {
		if child.Type == name {
			result = append(result, child)
		}
	}
	return result
}

// EncodeJSON writes the tree as a JSON document. A positive indent
// selects pretty output, zero selects compact output.
func EncodeJSON(w io.Writer, node *Node, indent int) error {
	if node == nil {
		return errors.WithStack(UndefinedNodeError)
	}
	enc := json.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent("", spaces(indent))
	}
	return errors.WithStack(enc.Encode(node))
}

func spaces(n int) string {
	out := make([]byte, n)
	for idx := range out {
		out[idx] = ' '
	}
	return string(out)
}
