// Package expr defines the typed conversion-step expression nodes a
// deserialization plan produces. Plans only construct these trees; walking
// them against concrete input rows is the evaluation runtime's job.
//
// The input location a plan reads from (its path) is any Expression supplied
// by the caller. Plans never inspect a path beyond embedding it as a child,
// so callers are free to root plans at their own node types.
package expr

import (
	"strings"

	"rowplan/primitive"
	"rowplan/schema"
)

// Expression is one node of a conversion-step tree.
type Expression interface {
	// Children returns the direct child expressions in evaluation order.
	Children() []Expression
	String() string
}

// InputRef is a convenience root path naming an input location.
type InputRef struct {
	Name string
	Type *schema.Descriptor
}

func (r *InputRef) Children() []Expression { return nil }

func (r *InputRef) String() string { return r.Name }

// Format renders an expression tree one node per line, indented by depth.
func Format(e Expression) string {
	var b strings.Builder

	format(&b, e, 0)

	return b.String()
}

func format(b *strings.Builder, e Expression, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(label(e))
	b.WriteByte('\n')

	for _, c := range e.Children() {
		format(b, c, depth+1)
	}
}

// label is the single-node summary used by Format; leaf nodes fall back to
// their full String rendering.
func label(e Expression) string {
	switch n := e.(type) {
	case *Unbox:
		return "unbox_" + kindToken(n.Kind)
	case *DecodeText:
		return "decode_text"
	case *ToInstant:
		return "to_instant"
	case *WrapOptional:
		return "wrap_optional"
	case *AllowNull:
		return "allow_null"
	case *MapElements:
		return "map_elements " + n.Elem.Name
	case *Materialize:
		return "materialize " + n.Routine()
	case *MapEntries:
		return "map_entries " + n.KeyRef.Name + "/" + n.ValueRef.Name
	case *GetField:
		return "field " + n.Name
	case *NewInstance:
		return "new " + typeName(n.Target)
	default:
		return e.String()
	}
}

// kindToken maps KindEnum names (KindInt32) to lowercase type tokens (int32).
func kindToken(k primitive.KindEnum) string {
	return strings.ToLower(strings.TrimPrefix(k.String(), "Kind"))
}
