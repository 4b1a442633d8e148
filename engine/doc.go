// Package engine defines the adapter contract between the oracle tooling and
// an external skeletal-animation engine.
//
// The engine is a black box: this package carries no animation logic, only the
// interfaces, closed enums, and value structs the interpreter, serializers,
// and introspector need to load data, mutate pose state, advance time, and
// enumerate the results. Concrete bindings live in separate modules and make
// themselves available through Register, in the manner of database/sql
// drivers.
//
// All enumerations here are closed sets: consumers switch over the tag and
// treat anything else as the explicit unknown variant, never as a crash.
package engine
