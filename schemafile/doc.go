// Package schemafile provides YAML/JSON shape definition files: parsing,
// validation, and resolution into the shapes consumed by plan derivation.
//
// A definition file declares named types as either a record or a type
// expression alias:
//
//	version: "1"
//	types:
//	  Person:
//	    record:
//	      fields:
//	        - name: name
//	          type: string
//	        - name: age
//	          type: int32
//	        - name: tags
//	          type: set<string>
//	  Scores:
//	    type: map<string, float64>
//
// Type expressions cover the atomic names (int8, int16, int32, int64,
// float32, float64, bool, string, time), the containers optional<T>,
// array<T>, seq<T>, set<T>, map<K, V>, and references to named types
// declared in the same file. Cyclic named references are rejected, matching
// the derivation driver's rule.
//
// Resolution accepts an optional name-to-runtime-type binding table; unbound
// records resolve with a nil runtime representation, leaving instantiation
// to the evaluation runtime.
package schemafile
