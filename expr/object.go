package expr

import (
	"reflect"
	"strings"

	"rowplan/schema"
)

// GetField is the derived path extracting the sub-location named by a record
// field from Input. Index is the field's position in declared order.
type GetField struct {
	Input Expression
	Name  string
	Index int
	Type  *schema.Descriptor
}

func (g *GetField) Children() []Expression { return []Expression{g.Input} }

func (g *GetField) String() string {
	return g.Input.String() + "." + g.Name
}

// NewInstance constructs the target record representation with Args in
// declared field order. A null argument stays a null argument; the
// construction step itself is not nullable.
type NewInstance struct {
	Target reflect.Type
	Args   []Expression
}

func (n *NewInstance) Children() []Expression { return n.Args }

func (n *NewInstance) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}

	return "new " + typeName(n.Target) + "(" + strings.Join(parts, ", ") + ")"
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "record"
	}

	return t.String()
}
