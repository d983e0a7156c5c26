package schemafile

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"rowplan/primitive"
	"rowplan/shape"
)

var (
	ErrUnknownType     = errors.New("unknown type")
	ErrCyclicReference = errors.New("cyclic type reference")
)

// Bindings maps named types to the runtime representation to instantiate.
// A record without a binding resolves with a nil runtime type.
type Bindings map[string]reflect.Type

// atomicKinds maps type expression atoms to their kinds.
var atomicKinds = map[string]primitive.KindEnum{
	"int8":    primitive.KindInt8,
	"int16":   primitive.KindInt16,
	"int32":   primitive.KindInt32,
	"int64":   primitive.KindInt64,
	"float32": primitive.KindFloat32,
	"float64": primitive.KindFloat64,
	"bool":    primitive.KindBool,
	"string":  primitive.KindString,
	"time":    primitive.KindTime,
}

// Resolve converts every named definition in the file into a shape.
func (f *File) Resolve(bindings Bindings) (map[string]*shape.Shape, error) {
	r := &resolver{
		file:      f,
		bindings:  bindings,
		resolving: make(map[string]struct{}),
		done:      make(map[string]*shape.Shape),
	}

	names := make([]string, 0, len(f.Types))
	for name := range f.Types {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if _, err := r.resolveName(name); err != nil {
			return nil, err
		}
	}

	return r.done, nil
}

type resolver struct {
	file      *File
	bindings  Bindings
	resolving map[string]struct{}
	done      map[string]*shape.Shape
}

func (r *resolver) resolveName(name string) (*shape.Shape, error) {
	if s, ok := r.done[name]; ok {
		return s, nil
	}

	if _, ok := r.resolving[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrCyclicReference, name)
	}

	def, ok := r.file.Types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}

	r.resolving[name] = struct{}{}
	defer delete(r.resolving, name)

	s, err := r.resolveDef(name, &def)
	if err != nil {
		return nil, err
	}

	r.done[name] = s

	return s, nil
}

func (r *resolver) resolveDef(name string, def *TypeDef) (*shape.Shape, error) {
	if def.Record != nil {
		fields := make([]shape.Field, len(def.Record.Fields))

		for i, fd := range def.Record.Fields {
			fs, err := r.resolveSource(fd.Type)
			if err != nil {
				return nil, fmt.Errorf("record %s field %q: %w", name, fd.Name, err)
			}

			fields[i] = shape.Field{Label: fd.Name, Shape: fs}
		}

		return shape.RecordOf(shape.TypeID{Name: name}, r.bindings[name], fields...), nil
	}

	return r.resolveSource(def.Type)
}

func (r *resolver) resolveSource(src string) (*shape.Shape, error) {
	expr, err := ParseTypeExpr(src)
	if err != nil {
		return nil, err
	}

	return r.resolveExpr(expr)
}

func (r *resolver) resolveExpr(expr *TypeExpr) (*shape.Shape, error) {
	if kind, ok := atomicKinds[expr.Name]; ok {
		if len(expr.Args) != 0 {
			return nil, fmt.Errorf("atomic type %s takes no arguments", expr.Name)
		}

		return shape.Atomic(kind), nil
	}

	switch expr.Name {
	case "optional":
		elem, err := r.singleArg(expr)
		if err != nil {
			return nil, err
		}

		return shape.Optional(elem), nil

	case "array":
		elem, err := r.singleArg(expr)
		if err != nil {
			return nil, err
		}

		return shape.ArrayOf(elem), nil

	case "seq":
		elem, err := r.singleArg(expr)
		if err != nil {
			return nil, err
		}

		return shape.SequenceOf(elem, sliceRuntime(elem)), nil

	case "set":
		elem, err := r.singleArg(expr)
		if err != nil {
			return nil, err
		}

		return shape.SetOf(elem, setRuntime(elem)), nil

	case "map":
		if len(expr.Args) != 2 {
			return nil, fmt.Errorf("map takes exactly two arguments, got %d", len(expr.Args))
		}

		key, err := r.resolveExpr(expr.Args[0])
		if err != nil {
			return nil, err
		}

		value, err := r.resolveExpr(expr.Args[1])
		if err != nil {
			return nil, err
		}

		return shape.MapOf(key, value, mapRuntime(key, value)), nil

	default:
		if len(expr.Args) != 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, expr.String())
		}

		return r.resolveName(expr.Name)
	}
}

func (r *resolver) singleArg(expr *TypeExpr) (*shape.Shape, error) {
	if len(expr.Args) != 1 {
		return nil, fmt.Errorf("%s takes exactly one argument, got %d", expr.Name, len(expr.Args))
	}

	return r.resolveExpr(expr.Args[0])
}

func sliceRuntime(elem *shape.Shape) reflect.Type {
	if elem == nil || elem.Runtime == nil {
		return nil
	}

	return reflect.SliceOf(elem.Runtime)
}

func setRuntime(elem *shape.Shape) reflect.Type {
	if elem == nil || elem.Runtime == nil {
		return nil
	}

	return reflect.MapOf(elem.Runtime, reflect.TypeOf(struct{}{}))
}

func mapRuntime(key, value *shape.Shape) reflect.Type {
	if key == nil || key.Runtime == nil || value == nil || value.Runtime == nil {
		return nil
	}

	return reflect.MapOf(key.Runtime, value.Runtime)
}
