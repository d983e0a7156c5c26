package schemafile

// File is the top-level shape definition document.
type File struct {
	Version string             `yaml:"version" json:"version"`
	Types   map[string]TypeDef `yaml:"types" json:"types"`
}

// TypeDef defines one named type: either a record or a type expression alias.
// Exactly one of Type and Record must be set.
type TypeDef struct {
	// Type is a type expression alias, e.g. "map<string, float64>".
	Type string `yaml:"type,omitempty" json:"type,omitempty"`
	// Record defines an ordered-field record type.
	Record *RecordDef `yaml:"record,omitempty" json:"record,omitempty"`
}

// RecordDef lists a record's fields. Order is significant and preserved.
type RecordDef struct {
	Fields []FieldDef `yaml:"fields" json:"fields"`
}

// FieldDef is one named, typed record field.
type FieldDef struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}
