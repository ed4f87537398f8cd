// Package types defines Candy's structural type representation and a
// default structural-subtyping oracle. The body-lowering core treats
// assignability as an external collaborator; this package is the
// concrete implementation the rest of the module wires in.
package types

import "strings"

// TypeKind classifies a Type's structural shape.
type TypeKind string

const (
	KindUnit         TypeKind = "UNIT"
	KindNever        TypeKind = "NEVER"
	KindBool         TypeKind = "BOOL"
	KindInt          TypeKind = "INT"
	KindFloat        TypeKind = "FLOAT"
	KindNumber       TypeKind = "NUMBER"
	KindString       TypeKind = "STRING"
	KindAny          TypeKind = "ANY"
	KindNamed        TypeKind = "NAMED"
	KindTuple        TypeKind = "TUPLE"
	KindFunction     TypeKind = "FUNCTION"
	KindUnion        TypeKind = "UNION"
	KindIntersection TypeKind = "INTERSECTION"
	KindTypeParam    TypeKind = "TYPE_PARAMETER"
	KindReflection   TypeKind = "REFLECTION"
	KindThis         TypeKind = "THIS"
)

// Type is any Candy structural type.
type Type interface {
	Kind() TypeKind
	String() string
}

type primitive struct {
	kind TypeKind
	name string
}

func (p primitive) Kind() TypeKind { return p.kind }
func (p primitive) String() string { return p.name }

// The eight primitive types. Never is the bottom type: assignable to
// everything, and the type of every diverging expression, notably return.
var (
	Unit   Type = primitive{KindUnit, "Unit"}
	Never  Type = primitive{KindNever, "Never"}
	Bool   Type = primitive{KindBool, "Bool"}
	Int    Type = primitive{KindInt, "Int"}
	Float  Type = primitive{KindFloat, "Float"}
	Number Type = primitive{KindNumber, "Number"}
	String Type = primitive{KindString, "String"}
	Any    Type = primitive{KindAny, "Any"}
)

// NamedType is a user-defined type reference, optionally parameterized
// and optionally qualified by its owning module.
type NamedType struct {
	Module    string
	Name      string
	Arguments []Type
}

func (t *NamedType) Kind() TypeKind { return KindNamed }
func (t *NamedType) String() string {
	if len(t.Arguments) == 0 {
		return t.Name
	}
	args := make([]string, len(t.Arguments))
	for i, a := range t.Arguments {
		args[i] = a.String()
	}
	return t.Name + "<" + strings.Join(args, ", ") + ">"
}

// TupleType is a fixed-arity product type.
type TupleType struct {
	Elements []Type
}

func (t *TupleType) Kind() TypeKind { return KindTuple }
func (t *TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FunctionType is a function/lambda signature, with an optional receiver
// type for bound methods.
type FunctionType struct {
	Receiver   Type // nil if unbound
	Parameters []Type
	Return     Type
}

func (t *FunctionType) Kind() TypeKind { return KindFunction }
func (t *FunctionType) String() string {
	params := make([]string, len(t.Parameters))
	for i, p := range t.Parameters {
		params[i] = p.String()
	}
	prefix := ""
	if t.Receiver != nil {
		prefix = t.Receiver.String() + "."
	}
	ret := "Unit"
	if t.Return != nil {
		ret = t.Return.String()
	}
	return prefix + "(" + strings.Join(params, ", ") + ") -> " + ret
}

// UnionType is a sum of alternative types.
type UnionType struct {
	Members []Type
}

func (t *UnionType) Kind() TypeKind { return KindUnion }
func (t *UnionType) String() string {
	parts := make([]string, len(t.Members))
	for i, m := range t.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

// IntersectionType requires all member types simultaneously.
type IntersectionType struct {
	Members []Type
}

func (t *IntersectionType) Kind() TypeKind { return KindIntersection }
func (t *IntersectionType) String() string {
	parts := make([]string, len(t.Members))
	for i, m := range t.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " & ")
}

// TypeParameterType is a reference to a generic type parameter.
type TypeParameterType struct {
	Name string
}

func (t *TypeParameterType) Kind() TypeKind { return KindTypeParam }
func (t *TypeParameterType) String() string { return t.Name }

// ReflectionType is the type of a reflection target (a compile-time
// handle to a declaration, e.g. `Foo.reflect()`).
type ReflectionType struct {
	DeclarationName string
}

func (t *ReflectionType) Kind() TypeKind { return KindReflection }
func (t *ReflectionType) String() string { return "Reflection<" + t.DeclarationName + ">" }

// ThisType is the `This` self-type, resolved relative to the enclosing
// class/trait.
type ThisType struct{}

func (ThisType) Kind() TypeKind { return KindThis }
func (ThisType) String() string { return "This" }
