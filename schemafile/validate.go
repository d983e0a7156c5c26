package schemafile

import (
	"sort"

	"rowplan/internal/common"
	"rowplan/internal/diagnostic"
)

// Validate checks the whole definition file and collects every problem
// before failing: unknown and cyclic type references are errors, duplicate
// field names and empty records are warnings (field-name uniqueness is
// assumed, not enforced, by plan derivation).
func (f *File) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	names := make([]string, 0, len(f.Types))
	for name := range f.Types {
		names = append(names, name)
	}

	sort.Strings(names)

	refs := make(map[string][]string, len(f.Types))

	for _, name := range names {
		def := f.Types[name]
		refs[name] = f.validateDef(name, &def, &diags)
	}

	f.checkCycles(names, refs, &diags)

	return diags
}

// validateDef validates a single definition and returns the named types it
// references.
func (f *File) validateDef(name string, def *TypeDef, diags *diagnostic.Diagnostics) []string {
	if def.Type == "" && def.Record == nil {
		diags.AddError("def_missing", "definition needs either a type expression or a record", name, "")
		return nil
	}

	if def.Type != "" && def.Record != nil {
		diags.AddError("def_conflict", "definition cannot be both a type expression and a record", name, "")
		return nil
	}

	if def.Record == nil {
		return f.validateExpr(name, "", def.Type, diags)
	}

	if common.IsEmpty(def.Record.Fields) {
		diags.AddWarning("empty_record", "record has no fields", name, "")
	}

	var refs []string

	seen := make(map[string]struct{}, len(def.Record.Fields))

	for _, fd := range def.Record.Fields {
		if fd.Name == "" {
			diags.AddError("field_unnamed", "record field has no name", name, "")
			continue
		}

		if _, dup := seen[fd.Name]; dup {
			diags.AddWarning("field_duplicate", "duplicate field name", name, fd.Name)
		}

		seen[fd.Name] = struct{}{}

		if fd.Type == "" {
			diags.AddError("field_untyped", "record field has no type", name, fd.Name)
			continue
		}

		refs = append(refs, f.validateExpr(name, fd.Name, fd.Type, diags)...)
	}

	return refs
}

// validateExpr parses a type expression, reports unknown references, and
// returns the named types it mentions.
func (f *File) validateExpr(typeName, field, src string, diags *diagnostic.Diagnostics) []string {
	expr, err := ParseTypeExpr(src)
	if err != nil {
		diags.AddError("expr_invalid", err.Error(), typeName, field)
		return nil
	}

	var refs []string

	var walk func(e *TypeExpr)
	walk = func(e *TypeExpr) {
		_, atomic := atomicKinds[e.Name]

		switch {
		case atomic:
		case e.Name == "optional", e.Name == "array", e.Name == "seq", e.Name == "set", e.Name == "map":
		default:
			if _, ok := f.Types[e.Name]; !ok {
				diags.AddError("ref_unknown", "reference to undefined type "+e.Name, typeName, field)
				return
			}

			refs = append(refs, e.Name)
		}

		for _, a := range e.Args {
			walk(a)
		}
	}

	walk(expr)

	return refs
}

// checkCycles rejects cyclic named references, mirroring the derivation
// driver's rule for self-referential shapes.
func (f *File) checkCycles(names []string, refs map[string][]string, diags *diagnostic.Diagnostics) {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(names))

	var visit func(name string) bool
	visit = func(name string) bool {
		switch color[name] {
		case gray:
			return true
		case black:
			return false
		}

		color[name] = gray

		for _, ref := range refs[name] {
			if visit(ref) {
				diags.AddError("ref_cyclic", "cyclic reference through "+ref, name, "")
			}
		}

		color[name] = black

		return false
	}

	for _, name := range names {
		visit(name)
	}
}
