package plan

import (
	"reflect"

	"rowplan/expr"
	"rowplan/primitive"
	"rowplan/schema"
)

// buildElementMapping is the generic per-element mapping step shared by the
// array, sequence, and set builders: bind an element ref, allow element
// nulls, and apply the element plan.
func buildElementMapping(elem Plan, path expr.Expression) *expr.MapElements {
	ref := expr.NewElementRef("elem", elem.InputType())

	return &expr.MapElements{
		Input: path,
		Elem:  ref,
		Body:  elem.Build(&expr.AllowNull{Input: ref}),
	}
}

// Array builds a plan over an element plan that materializes into a native
// array. Elements whose kind has a dedicated primitive routine skip boxing in
// the final representation; everything else lands in a generic object array.
func Array(elem Plan) Plan {
	var kind primitive.KindEnum
	if in := elem.InputType(); in.Kind == schema.DescriptorAtomic && in.Atomic.HasPrimitiveArray() {
		kind = in.Atomic
	}

	return &arrayPlan{
		elem:  elem,
		kind:  kind,
		input: schema.ArrayOf(elem.InputType()),
	}
}

type arrayPlan struct {
	elem  Plan
	kind  primitive.KindEnum
	input *schema.Descriptor
}

func (p *arrayPlan) InputType() *schema.Descriptor { return p.input }

func (p *arrayPlan) Build(path expr.Expression) expr.Expression {
	return &expr.Materialize{
		Container: expr.ContainerArray,
		ElemKind:  p.kind,
		Input:     buildElementMapping(p.elem, path),
	}
}

// Sequence builds a plan over an element plan that materializes into the
// target ordered-sequence container. No primitive unboxing shortcut.
func Sequence(elem Plan, target reflect.Type) Plan {
	return &sequencePlan{
		elem:   elem,
		target: target,
		input:  schema.ArrayOf(elem.InputType()),
	}
}

type sequencePlan struct {
	elem   Plan
	target reflect.Type
	input  *schema.Descriptor
}

func (p *sequencePlan) InputType() *schema.Descriptor { return p.input }

func (p *sequencePlan) Build(path expr.Expression) expr.Expression {
	return p.buildMaterialize(path)
}

func (p *sequencePlan) buildMaterialize(path expr.Expression) *expr.Materialize {
	return &expr.Materialize{
		Container: expr.ContainerSequence,
		Target:    p.target,
		Input:     buildElementMapping(p.elem, path),
	}
}

// Set builds a plan over an element plan that materializes into a set
// container. It reuses the sequence plan's mapping step and input path
// verbatim and retags only the materialization target, so a set plan and a
// sequence plan over the same element type share an identical input type.
func Set(elem Plan, target reflect.Type) Plan {
	return &setPlan{seq: &sequencePlan{
		elem:   elem,
		target: target,
		input:  schema.ArrayOf(elem.InputType()),
	}}
}

type setPlan struct {
	seq *sequencePlan
}

func (p *setPlan) InputType() *schema.Descriptor { return p.seq.InputType() }

func (p *setPlan) Build(path expr.Expression) expr.Expression {
	m := p.seq.buildMaterialize(path)
	m.Container = expr.ContainerSet

	return m
}
