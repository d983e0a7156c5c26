package shape

import (
	"errors"
	"fmt"
	"reflect"

	"rowplan/primitive"
)

var (
	ErrUnsupportedType = errors.New("type has no deserializable shape")
	ErrCyclicType      = errors.New("cyclic type reference")
)

// OfType derives the shape of a Go type:
//
//   - atomic Go types (int8..int64, float32/64, bool, string, time.Time)
//     classify as atomic kinds;
//   - pointers become optionals;
//   - slices and arrays become arrays;
//   - map[K]struct{} becomes a set of K, any other map a key/value map;
//   - structs become records over their exported fields in declared order,
//     labeled by json tag name when present.
//
// There is no Go container that maps to the sequence shape; sequence shapes
// are constructed explicitly or loaded from a schemafile. Self-referential
// struct types are rejected.
func OfType(rtype reflect.Type) (*Shape, error) {
	return ofType(rtype, make(map[reflect.Type]struct{}))
}

func ofType(rtype reflect.Type, visiting map[reflect.Type]struct{}) (*Shape, error) {
	if rtype == nil {
		return nil, fmt.Errorf("%w: nil type", ErrUnsupportedType)
	}

	if kind := primitive.FromReflectType(rtype); kind != 0 {
		return Atomic(kind), nil
	}

	switch rtype.Kind() {
	case reflect.Ptr:
		inner, err := ofType(rtype.Elem(), visiting)
		if err != nil {
			return nil, err
		}

		return Optional(inner), nil

	case reflect.Slice, reflect.Array:
		elem, err := ofType(rtype.Elem(), visiting)
		if err != nil {
			return nil, err
		}

		return ArrayOf(elem), nil

	case reflect.Map:
		key, err := ofType(rtype.Key(), visiting)
		if err != nil {
			return nil, err
		}

		if isEmptyStruct(rtype.Elem()) {
			return SetOf(key, rtype), nil
		}

		value, err := ofType(rtype.Elem(), visiting)
		if err != nil {
			return nil, err
		}

		return MapOf(key, value, rtype), nil

	case reflect.Struct:
		return structShape(rtype, visiting)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rtype)
	}
}

func structShape(rtype reflect.Type, visiting map[reflect.Type]struct{}) (*Shape, error) {
	if _, ok := visiting[rtype]; ok {
		return nil, fmt.Errorf("%w: %s", ErrCyclicType, rtype)
	}

	visiting[rtype] = struct{}{}
	defer delete(visiting, rtype)

	id := TypeID{PkgPath: rtype.PkgPath(), Name: rtype.Name()}

	var fields []Field

	for i := 0; i < rtype.NumField(); i++ {
		sf := rtype.Field(i)
		if !sf.IsExported() {
			continue
		}

		fs, err := ofType(sf.Type, visiting)
		if err != nil {
			return nil, fmt.Errorf("record %s field %q: %w", id, sf.Name, err)
		}

		fields = append(fields, Field{Label: fieldLabel(sf), Shape: fs})
	}

	return RecordOf(id, rtype, fields...), nil
}

// fieldLabel returns the json tag name if present, otherwise the field name.
func fieldLabel(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" || tag == "-" {
		return sf.Name
	}

	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i]
		}
	}

	return tag
}

func isEmptyStruct(rtype reflect.Type) bool {
	return rtype.Kind() == reflect.Struct && rtype.NumField() == 0
}
