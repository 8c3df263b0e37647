// Package formspec defines the typed declaration tree the compiler pipeline
// consumes: Field leaves, Group wrappers, and Conditional wrappers arranged
// under a FormSpec root. Trees are built once through the fluent constructors
// (Text, Number, Enum, Array, Object, GroupOf, When, New) and are read-only
// afterwards; malformed declarations such as mixed enum option lists are
// rejected at construction time with a *ConfigurationError so downstream
// compilers only ever see well-formed trees. The package also houses the
// scope resolver shared by the structural validator and the UI schema
// compiler.
package formspec
