package plan

import (
	"rowplan/expr"
	"rowplan/schema"
)

// Plan describes how to convert data at one input location into a value of a
// specific target type. Plans are immutable once constructed: Build only
// reads fixed plan data and allocates new expression nodes, so a single plan
// may serve arbitrarily many concurrent executions.
type Plan interface {
	// InputType is the structural shape of input this plan expects at its path.
	InputType() *schema.Descriptor
	// Build produces the conversion expression tree rooted at path. It never
	// touches row data and never mutates path.
	Build(path expr.Expression) expr.Expression
}

// Field pairs a record field label with the plan for its component type.
// Order is significant; label uniqueness is assumed upstream.
type Field struct {
	Name string
	Plan Plan
}
