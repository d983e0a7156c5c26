// Package plan derives reusable deserialization plans from static type
// shapes. A plan is an immutable tree of typed conversion steps that, handed
// a path expression, produces the expression tree an evaluation runtime walks
// against concrete input rows.
//
// Derivation pipeline:
//  1. Classify the target type shape (atomic/optional/array/sequence/set/map/record)
//  2. Atomic shapes resolve against the built-in primitive registry
//  3. Composite shapes recursively derive plans for their component shapes
//     and compose them with the matching builder
//  4. Named shapes encountered while already resolving fail as cyclic
//
// Plans never execute anything: Build has no side effects beyond expression
// node allocation, so constructed plans are safe to share across concurrent
// executions.
package plan
