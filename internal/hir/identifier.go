package hir

import (
	"github.com/quag/candy/internal/query"
	"github.com/quag/candy/internal/types"
)

// Identifier is a resolved binding: the result of resolving an identifier
// name, before it's wrapped in an IdentifierRef expression.
type Identifier interface {
	IdentifierType() types.Type
	hirIdentifierNode()
}

// ThisIdentifier is the receiver of a non-static member function/property.
type ThisIdentifier struct {
	Typ types.Type
}

func (i ThisIdentifier) IdentifierType() types.Type { return i.Typ }
func (ThisIdentifier) hirIdentifierNode()           {}

// SuperIdentifier is the receiver viewed as its parent type.
type SuperIdentifier struct {
	Typ types.Type
}

func (i SuperIdentifier) IdentifierType() types.Type { return i.Typ }
func (SuperIdentifier) hirIdentifierNode()           {}

// ParameterIdentifier is a reference to a function's value parameter.
type ParameterIdentifier struct {
	LocalID query.DeclarationLocalID
	Name    string
	Typ     types.Type
}

func (i ParameterIdentifier) IdentifierType() types.Type { return i.Typ }
func (ParameterIdentifier) hirIdentifierNode()           {}

// LocalPropertyIdentifier is a reference to a binding introduced inside
// the body itself (e.g. by a `let`-shaped sub-expression).
type LocalPropertyIdentifier struct {
	LocalID query.DeclarationLocalID
	Name    string
	Typ     types.Type
	Mutable bool
}

func (i LocalPropertyIdentifier) IdentifierType() types.Type { return i.Typ }
func (LocalPropertyIdentifier) hirIdentifierNode()           {}

// PropertyIdentifier is a reference to an outer property or function
// declaration, optionally through a receiver expression.
type PropertyIdentifier struct {
	Declaration query.DeclarationID
	Typ         types.Type
	Receiver    Expr // nil if unbound / static
}

func (i PropertyIdentifier) IdentifierType() types.Type { return i.Typ }
func (PropertyIdentifier) hirIdentifierNode()           {}

// ReflectionIdentifier is a reference to a declaration used as a
// compile-time reflection target.
type ReflectionIdentifier struct {
	Declaration query.DeclarationID
	Typ         types.Type
}

func (i ReflectionIdentifier) IdentifierType() types.Type { return i.Typ }
func (ReflectionIdentifier) hirIdentifierNode()           {}
