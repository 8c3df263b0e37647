// Package uischema compiles a declaration tree into the rendering schema a
// JSON-Forms style renderer consumes: a VerticalLayout root holding Control
// and Group nodes. Groups keep their nesting; conditionals disappear as
// structure and instead push SHOW rules onto every descendant control. The
// compiler never recurses into array or object fields; their controls point
// at the JSON Schema, which carries the nested shape.
package uischema
