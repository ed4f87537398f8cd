package ast

// TypeExpression is the surface syntax for a type annotation. Resolving
// one into a CandyType is the external type-resolution collaborator's
// job; this core only ever carries the AST shape around.
type TypeExpression interface {
	Node
	typeExpressionNode()
}

// NamedTypeExpression is a plain type name, e.g. `Int`, `String`, `Foo`.
type NamedTypeExpression struct {
	NodeID NodeID
	Span   Span
	Name   string
}

func (n *NamedTypeExpression) ID() NodeID        { return n.NodeID }
func (n *NamedTypeExpression) Pos() Span         { return n.Span }
func (n *NamedTypeExpression) String() string    { return n.Name }
func (*NamedTypeExpression) typeExpressionNode() {}

// FunctionAst is the parsed signature and body of a function declaration,
// as returned by the function-declaration-lookup collaborator.
type FunctionAst struct {
	Name       string
	Parameters []*ValueParameter
	ReturnType TypeExpression
	// Body is the expression-block body, or nil for a function without
	// a body (an abstract/external declaration): lowerBody returns
	// "absent" for those.
	Body *LambdaLiteral
}

// DeclKind classifies a DeclarationId.
type DeclKind int

const (
	DeclModule DeclKind = iota
	DeclTrait
	DeclClass
	DeclFunction
	DeclProperty
	DeclConstructor
)

func (k DeclKind) String() string {
	switch k {
	case DeclModule:
		return "module"
	case DeclTrait:
		return "trait"
	case DeclClass:
		return "class"
	case DeclFunction:
		return "function"
	case DeclProperty:
		return "property"
	case DeclConstructor:
		return "constructor"
	default:
		return "unknown"
	}
}
