package ast

import "strconv"

// Node is the base interface for every AST node the lowering core visits.
type Node interface {
	// ID is the node's parser-assigned identity, stable across repeated
	// visits of the same parse tree.
	ID() NodeID

	// String renders the node for debugging and snapshot tests.
	String() string

	// Pos reports where the node sits in the source text.
	Pos() Span
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// StringPart is one piece of a string literal: either a literal run of
// text, or an interpolated sub-expression.
type StringPart interface {
	stringPart()
}

// LiteralPart is a raw (non-interpolated) run of characters inside a
// string literal.
type LiteralPart struct {
	Value string
}

func (LiteralPart) stringPart() {}

// InterpolationPart is a `$expr`-style interpolation inside a string
// literal; Inner is lowered independently of the surrounding literal.
type InterpolationPart struct {
	Inner Expression
}

func (InterpolationPart) stringPart() {}

// IntegerLiteral is an integer literal token, e.g. `42`.
type IntegerLiteral struct {
	NodeID NodeID
	Span   Span
	Value  int64
}

func (n *IntegerLiteral) ID() NodeID     { return n.NodeID }
func (n *IntegerLiteral) Pos() Span      { return n.Span }
func (n *IntegerLiteral) String() string { return strconv.FormatInt(n.Value, 10) }
func (*IntegerLiteral) expressionNode()  {}

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	NodeID NodeID
	Span   Span
	Value  bool
}

func (n *BooleanLiteral) ID() NodeID { return n.NodeID }
func (n *BooleanLiteral) Pos() Span  { return n.Span }
func (n *BooleanLiteral) String() string {
	if n.Value {
		return "true"
	}
	return "false"
}
func (*BooleanLiteral) expressionNode() {}

// StringLiteral is a (possibly interpolated) string literal, e.g.
// `"v=$x"`, made of alternating literal and interpolation parts.
type StringLiteral struct {
	NodeID NodeID
	Span   Span
	Parts  []StringPart
}

func (n *StringLiteral) ID() NodeID { return n.NodeID }
func (n *StringLiteral) Pos() Span  { return n.Span }
func (n *StringLiteral) String() string {
	out := "\""
	for _, part := range n.Parts {
		switch p := part.(type) {
		case LiteralPart:
			out += p.Value
		case InterpolationPart:
			out += "$" + p.Inner.String()
		}
	}
	return out + "\""
}
func (*StringLiteral) expressionNode() {}

// Identifier is a bare name reference, e.g. `x`, `this`, `foo`.
type Identifier struct {
	NodeID NodeID
	Span   Span
	Name   string
}

func (n *Identifier) ID() NodeID     { return n.NodeID }
func (n *Identifier) Pos() Span      { return n.Span }
func (n *Identifier) String() string { return n.Name }
func (*Identifier) expressionNode()  {}

// Argument is one call argument, optionally named.
type Argument struct {
	Name  *string
	Value Expression
}

// CallExpression is a function/method call, e.g. `foo(1, bar: 2)`.
type CallExpression struct {
	NodeID NodeID
	Span   Span
	Target Expression
	Args   []Argument
}

func (n *CallExpression) ID() NodeID { return n.NodeID }
func (n *CallExpression) Pos() Span  { return n.Span }
func (n *CallExpression) String() string {
	out := n.Target.String() + "("
	for i, arg := range n.Args {
		if i > 0 {
			out += ", "
		}
		if arg.Name != nil {
			out += *arg.Name + ": "
		}
		out += arg.Value.String()
	}
	return out + ")"
}
func (*CallExpression) expressionNode() {}

// ReturnExpression is `return <value>`, optionally labeled for a named
// enclosing scope (the label channel is preserved per the core's
// labeled-return design even though no surface syntax feeds it yet).
type ReturnExpression struct {
	NodeID NodeID
	Span   Span
	Label  *string
	Value  Expression
}

func (n *ReturnExpression) ID() NodeID { return n.NodeID }
func (n *ReturnExpression) Pos() Span  { return n.Span }
func (n *ReturnExpression) String() string {
	if n.Label != nil {
		return "return@" + *n.Label + " " + n.Value.String()
	}
	return "return " + n.Value.String()
}
func (*ReturnExpression) expressionNode() {}

// ValueParameter is one parameter of a function or lambda declaration.
type ValueParameter struct {
	NodeID NodeID
	Span   Span
	Name   string
	Type   TypeExpression
}

func (n *ValueParameter) ID() NodeID     { return n.NodeID }
func (n *ValueParameter) Pos() Span      { return n.Span }
func (n *ValueParameter) String() string { return n.Name }

// LambdaLiteral is a `{ ... }` expression-block body: a sequence of
// top-level expressions, the last of which is the block's value.
type LambdaLiteral struct {
	NodeID      NodeID
	Span        Span
	Parameters  []*ValueParameter
	Expressions []Expression
}

func (n *LambdaLiteral) ID() NodeID     { return n.NodeID }
func (n *LambdaLiteral) Pos() Span      { return n.Span }
func (n *LambdaLiteral) String() string { return "{...}" }
func (*LambdaLiteral) expressionNode()  {}
