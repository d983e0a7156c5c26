package plan

import (
	"rowplan/expr"
	"rowplan/primitive"
	"rowplan/schema"
)

// primitivePlan decodes one atomic kind. Numeric and bool kinds unbox, text
// decodes directly, timestamps use the dedicated instant conversion. A
// primitive plan never accepts null; nullability is the Optional wrapper's job.
type primitivePlan struct {
	kind  primitive.KindEnum
	input *schema.Descriptor
}

func (p *primitivePlan) InputType() *schema.Descriptor { return p.input }

func (p *primitivePlan) Build(path expr.Expression) expr.Expression {
	switch p.kind {
	case primitive.KindString:
		return &expr.DecodeText{Input: path}
	case primitive.KindTime:
		return &expr.ToInstant{Input: path}
	default:
		return &expr.Unbox{Kind: p.kind, Input: path}
	}
}

// registry holds the built-in plan per atomic kind. Populated once at
// process start, read-only afterwards.
var registry map[primitive.KindEnum]Plan

func init() {
	registry = make(map[primitive.KindEnum]Plan, primitive.KindTotal)

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		registry[k] = &primitivePlan{kind: k, input: schema.Atomic(k)}
	}
}

// ForKind returns the built-in plan for an atomic kind.
// The second result is false for an unknown kind.
func ForKind(kind primitive.KindEnum) (Plan, bool) {
	p, ok := registry[kind]
	return p, ok
}
