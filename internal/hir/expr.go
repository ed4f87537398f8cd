package hir

import (
	"github.com/quag/candy/internal/query"
	"github.com/quag/candy/internal/types"
)

// Expr is any HIR expression node. Every variant carries its own
// DeclarationLocalID, its resolved type, and (through its own fields)
// references to its sub-expressions by value.
type Expr interface {
	ID() query.DeclarationLocalID
	Type() types.Type
	hirExprNode()
}

// IntLiteral is a lowered integer literal.
type IntLiteral struct {
	LocalID query.DeclarationLocalID
	Value   int64
}

func (e *IntLiteral) ID() query.DeclarationLocalID { return e.LocalID }
func (e *IntLiteral) Type() types.Type             { return types.Int }
func (*IntLiteral) hirExprNode()                   {}

// BoolLiteral is a lowered boolean literal.
type BoolLiteral struct {
	LocalID query.DeclarationLocalID
	Value   bool
}

func (e *BoolLiteral) ID() query.DeclarationLocalID { return e.LocalID }
func (e *BoolLiteral) Type() types.Type             { return types.Bool }
func (*BoolLiteral) hirExprNode()                   {}

// StringPart is one piece of a lowered string literal.
type StringPart interface {
	hirStringPart()
}

// LiteralStringPart is a literal (non-interpolated) run of text.
type LiteralStringPart struct {
	Value string
}

func (LiteralStringPart) hirStringPart() {}

// InterpolatedStringPart is a `$expr` interpolation, already lowered.
type InterpolatedStringPart struct {
	Inner Expr
}

func (InterpolatedStringPart) hirStringPart() {}

// StringLiteral is a lowered, possibly-interpolated string literal.
type StringLiteral struct {
	LocalID query.DeclarationLocalID
	Parts   []StringPart
}

func (e *StringLiteral) ID() query.DeclarationLocalID { return e.LocalID }
func (e *StringLiteral) Type() types.Type             { return types.String }
func (*StringLiteral) hirExprNode()                   {}

// IdentifierRef is a lowered reference to a binding: a parameter, a
// local property, `this`/`super`, an outer property/function, or a
// reflection target.
type IdentifierRef struct {
	LocalID    query.DeclarationLocalID
	Identifier Identifier
}

func (e *IdentifierRef) ID() query.DeclarationLocalID { return e.LocalID }
func (e *IdentifierRef) Type() types.Type             { return e.Identifier.IdentifierType() }
func (*IdentifierRef) hirExprNode()                   {}

// Return is a lowered `return` expression: its type is always Never,
// so it never needs an assignability check itself.
type Return struct {
	LocalID query.DeclarationLocalID
	Scope   query.DeclarationLocalID
	Inner   Expr
}

func (e *Return) ID() query.DeclarationLocalID { return e.LocalID }
func (e *Return) Type() types.Type             { return types.Never }
func (*Return) hirExprNode()                   {}

// Argument is one lowered call argument, optionally named.
type Argument struct {
	Name  *string
	Value Expr
}

// Call is a lowered function/method call.
type Call struct {
	LocalID  query.DeclarationLocalID
	Target   Expr
	Args     []Argument
	ExprType types.Type
}

func (e *Call) ID() query.DeclarationLocalID { return e.LocalID }
func (e *Call) Type() types.Type             { return e.ExprType }
func (*Call) hirExprNode()                   {}

// The variants below are declared as part of the closed HIR tagged union
// that downstream passes and the dispatch switch must eventually handle
// exhaustively, but no lowering rule produces them yet (identifier and
// call are implemented; navigation, property-binding, control flow and
// assignment are not). They exist so adding their rules later is a
// matter of a new case, not a new type.

// Navigation is a lowered member access, e.g. `a.b`.
type Navigation struct {
	LocalID  query.DeclarationLocalID
	Receiver Expr
	Member   string
	ExprType types.Type
}

func (e *Navigation) ID() query.DeclarationLocalID { return e.LocalID }
func (e *Navigation) Type() types.Type             { return e.ExprType }
func (*Navigation) hirExprNode()                   {}

// PropertyBinding is a lowered property read/write site.
type PropertyBinding struct {
	LocalID  query.DeclarationLocalID
	Target   Identifier
	ExprType types.Type
}

func (e *PropertyBinding) ID() query.DeclarationLocalID { return e.LocalID }
func (e *PropertyBinding) Type() types.Type             { return e.ExprType }
func (*PropertyBinding) hirExprNode()                   {}

// If is a lowered conditional expression.
type If struct {
	LocalID   query.DeclarationLocalID
	Condition Expr
	Then      Expr
	Else      Expr
	ExprType  types.Type
}

func (e *If) ID() query.DeclarationLocalID { return e.LocalID }
func (e *If) Type() types.Type             { return e.ExprType }
func (*If) hirExprNode()                   {}

// Loop is a lowered unconditional loop.
type Loop struct {
	LocalID query.DeclarationLocalID
	Body    Expr
}

func (e *Loop) ID() query.DeclarationLocalID { return e.LocalID }
func (e *Loop) Type() types.Type             { return types.Never }
func (*Loop) hirExprNode()                   {}

// While is a lowered conditional loop.
type While struct {
	LocalID   query.DeclarationLocalID
	Condition Expr
	Body      Expr
}

func (e *While) ID() query.DeclarationLocalID { return e.LocalID }
func (e *While) Type() types.Type             { return types.Unit }
func (*While) hirExprNode()                   {}

// Break is a lowered loop-exit expression.
type Break struct {
	LocalID query.DeclarationLocalID
	Scope   query.DeclarationLocalID
}

func (e *Break) ID() query.DeclarationLocalID { return e.LocalID }
func (e *Break) Type() types.Type             { return types.Never }
func (*Break) hirExprNode()                   {}

// Continue is a lowered loop-continuation expression.
type Continue struct {
	LocalID query.DeclarationLocalID
	Scope   query.DeclarationLocalID
}

func (e *Continue) ID() query.DeclarationLocalID { return e.LocalID }
func (e *Continue) Type() types.Type             { return types.Never }
func (*Continue) hirExprNode()                   {}

// Assignment is a lowered `target := value` expression.
type Assignment struct {
	LocalID query.DeclarationLocalID
	Target  Identifier
	Value   Expr
}

func (e *Assignment) ID() query.DeclarationLocalID { return e.LocalID }
func (e *Assignment) Type() types.Type             { return types.Unit }
func (*Assignment) hirExprNode()                   {}
