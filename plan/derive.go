package plan

import (
	"errors"
	"fmt"

	"rowplan/shape"
)

var (
	ErrNilShape         = errors.New("cannot derive a plan for a nil shape")
	ErrUnsupportedShape = errors.New("no deserialization plan for shape")
	ErrNoPrimitivePlan  = errors.New("no registered plan for atomic kind")
	ErrCyclicShape      = errors.New("cyclic type reference in shape")
)

// Derive resolves a deserialization plan for the given type shape,
// recursively deriving plans for element, key/value, and field component
// shapes. Derivation is a one-time, synchronous, build-time computation; any
// unresolvable component aborts the whole enclosing plan.
func Derive(s *shape.Shape) (Plan, error) {
	d := &deriver{resolving: make(map[shape.TypeID]struct{})}

	return d.derive(s)
}

type deriver struct {
	// resolving tracks named shapes on the current resolution stack, so a
	// self-referential type fails fast instead of recursing forever.
	resolving map[shape.TypeID]struct{}
}

func (d *deriver) derive(s *shape.Shape) (Plan, error) {
	if s == nil {
		return nil, ErrNilShape
	}

	if !s.ID.IsZero() {
		if _, ok := d.resolving[s.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrCyclicShape, s.ID)
		}

		d.resolving[s.ID] = struct{}{}
		defer delete(d.resolving, s.ID)
	}

	switch s.Kind {
	case shape.ShapeAtomic:
		p, ok := ForKind(s.Atomic)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoPrimitivePlan, s.Atomic)
		}

		return p, nil

	case shape.ShapeOptional:
		inner, err := d.derive(s.Elem)
		if err != nil {
			return nil, err
		}

		return Optional(inner), nil

	case shape.ShapeArray:
		elem, err := d.derive(s.Elem)
		if err != nil {
			return nil, err
		}

		return Array(elem), nil

	case shape.ShapeSequence:
		elem, err := d.derive(s.Elem)
		if err != nil {
			return nil, err
		}

		return Sequence(elem, s.Runtime), nil

	case shape.ShapeSet:
		elem, err := d.derive(s.Elem)
		if err != nil {
			return nil, err
		}

		return Set(elem, s.Runtime), nil

	case shape.ShapeMap:
		key, err := d.derive(s.Key)
		if err != nil {
			return nil, err
		}

		value, err := d.derive(s.Value)
		if err != nil {
			return nil, err
		}

		return Map(key, value, s.Runtime), nil

	case shape.ShapeRecord:
		fields := make([]Field, len(s.Fields))

		for i, f := range s.Fields {
			p, err := d.derive(f.Shape)
			if err != nil {
				return nil, fmt.Errorf("record %s field %q: %w", recordName(s), f.Label, err)
			}

			fields[i] = Field{Name: f.Label, Plan: p}
		}

		return Record(s.Runtime, fields...), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, s.Kind)
	}
}

func recordName(s *shape.Shape) string {
	if !s.ID.IsZero() {
		return s.ID.String()
	}

	if s.Runtime != nil {
		return s.Runtime.String()
	}

	return "record"
}
