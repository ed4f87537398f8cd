package lowering

import (
	"github.com/quag/candy/internal/ast"
	"github.com/quag/candy/internal/diag"
	"github.com/quag/candy/internal/hir"
	"github.com/quag/candy/internal/types"
)

// Lower dispatches on the AST node's kind and returns every
// candidate HIR meaning that survives the context's expected-type filter.
// The list return type encodes overload-set semantics; in this
// implementation every rule ever produces at most one raw candidate, so
// the list is a singleton on success, but the shape is kept general so a
// future rule with real overload resolution (e.g. several callables
// matching a name) slots in without changing the dispatch contract.
func Lower(ctx Context, expr ast.Expression) Result[[]hir.Expr] {
	switch n := expr.(type) {
	case *ast.IntegerLiteral, *ast.BooleanLiteral:
		return lowerLiteral(ctx, expr)
	case *ast.StringLiteral:
		return lowerStringLiteral(ctx, n)
	case *ast.ReturnExpression:
		return lowerReturn(ctx, n)
	case *ast.Identifier:
		return lowerIdentifier(ctx, n)
	case *ast.CallExpression:
		return lowerCall(ctx, n)
	default:
		return Fail[[]hir.Expr](diag.New(diag.UnsupportedFeature, location(ctx, expr), "lowering does not yet support %T", expr))
	}
}

// LowerUnambiguous layers the single-candidate contract on top of Lower:
// zero candidates is a type error, more than one is ambiguous, exactly
// one is the answer.
func LowerUnambiguous(ctx Context, expr ast.Expression) Result[hir.Expr] {
	return selectUnambiguous(ctx, expr, Lower(ctx, expr))
}

// selectUnambiguous applies the zero/one/many candidate-count rule to an
// already-computed candidate list. Split out from LowerUnambiguous so the
// selection rule itself (notably the ambiguous-expression case, which no
// current rule's raw candidate list can reach) is directly testable
// without needing a rule that actually produces overloads.
func selectUnambiguous(ctx Context, expr ast.Expression, candidates Result[[]hir.Expr]) Result[hir.Expr] {
	if candidates.IsError() {
		return Result[hir.Expr]{Errors: candidates.Errors}
	}
	switch len(candidates.Value) {
	case 0:
		return Fail[hir.Expr](diag.New(diag.InvalidExpressionType, location(ctx, expr),
			"no lowering of this expression is assignable to the expected type %s", expectedTypeLabel(ctx)))
	case 1:
		return Ok(candidates.Value[0])
	default:
		return Fail[hir.Expr](diag.New(diag.AmbiguousExpression, location(ctx, expr),
			"expression has %d candidate lowerings after filtering by expected type", len(candidates.Value)))
	}
}

func location(ctx Context, node ast.Node) diag.Location {
	return diag.Location{Resource: ctx.ResourceID(), Span: node.Pos()}
}

func expectedTypeLabel(ctx Context) string {
	if t := ctx.ExpressionType(); t != nil {
		return t.String()
	}
	return "<unconstrained>"
}

// singleCandidate applies the validity predicate to one raw candidate and
// wraps it as the one-element success list Lower's callers expect, or an
// invalid-expression-type error if the candidate's type doesn't satisfy
// the context's expected type.
func singleCandidate(ctx Context, node ast.Node, candidate hir.Expr) Result[[]hir.Expr] {
	if !IsValidExpressionType(ctx, candidate.Type()) {
		return Fail[[]hir.Expr](diag.New(diag.InvalidExpressionType, location(ctx, node),
			"type %s is not assignable to expected type %s", candidate.Type(), expectedTypeLabel(ctx)))
	}
	return Ok([]hir.Expr{candidate})
}

// lowerLiteral handles Bool and Int literals: the token type determines
// the candidate HIR type directly, no resolution needed.
func lowerLiteral(ctx Context, expr ast.Expression) Result[[]hir.Expr] {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return singleCandidate(ctx, n, &hir.IntLiteral{LocalID: ctx.GetID(n), Value: n.Value})
	case *ast.BooleanLiteral:
		return singleCandidate(ctx, n, &hir.BoolLiteral{LocalID: ctx.GetID(n), Value: n.Value})
	default:
		return Fail[[]hir.Expr](diag.New(diag.InternalError, location(ctx, expr), "lowerLiteral called with %T", expr))
	}
}

// lowerStringLiteral lowers each part independently: raw runs become
// literal parts, interpolations lower their inner expression
// unambiguously in a fresh, non-forwarding child context.
func lowerStringLiteral(ctx Context, n *ast.StringLiteral) Result[[]hir.Expr] {
	// Allocated before visiting parts: id order follows pre-order visit,
	// parent before child.
	localID := ctx.GetID(n)

	partResults := make([]Result[hir.StringPart], len(n.Parts))
	for i, part := range n.Parts {
		switch p := part.(type) {
		case ast.LiteralPart:
			partResults[i] = Ok[hir.StringPart](hir.LiteralStringPart{Value: p.Value})
		case ast.InterpolationPart:
			inner := LowerUnambiguous(NewExpressionContext(ctx, nil, false), p.Inner)
			if inner.IsError() {
				partResults[i] = Fail[hir.StringPart](inner.Errors...)
				continue
			}
			partResults[i] = Ok[hir.StringPart](hir.InterpolatedStringPart{Inner: inner.Value})
		default:
			partResults[i] = Fail[hir.StringPart](diag.New(diag.InternalError, location(ctx, n), "unrecognized string part %T", part))
		}
	}

	merged := MergeAll(partResults)
	if merged.IsError() {
		return Result[[]hir.Expr]{Errors: merged.Errors}
	}
	return singleCandidate(ctx, n, &hir.StringLiteral{LocalID: localID, Parts: merged.Value})
}

// lowerReturn lowers a return expression. Its type is Never, the bottom
// type, so it is assignable to any expected type and never needs the
// validity check other rules run.
//
// The label channel is preserved on the AST/Context API (§9 "Labeled
// returns") but this rule always resolves against the absent label,
// matching the current core's documented behavior: labeled returns are
// specified, not yet emitted.
func lowerReturn(ctx Context, n *ast.ReturnExpression) Result[[]hir.Expr] {
	scope, ok := ctx.ResolveReturn(nil)
	if !ok {
		return Fail[[]hir.Expr](diag.New(diag.InvalidReturnLabel, location(ctx, n),
			"no enclosing return scope matches"))
	}

	// Allocated before lowering the inner expression: id order follows
	// pre-order visit, parent before child.
	localID := ctx.GetID(n)

	inner := LowerUnambiguous(NewExpressionContext(ctx, scope.ExpectedType, false), n.Value)
	if inner.IsError() {
		return Result[[]hir.Expr]{Errors: inner.Errors}
	}

	return Ok([]hir.Expr{&hir.Return{
		LocalID: localID,
		Scope:   scope.ScopeID,
		Inner:   inner.Value,
	}})
}

// lowerIdentifier resolves a bare name reference.
func lowerIdentifier(ctx Context, n *ast.Identifier) Result[[]hir.Expr] {
	identifier, ok := ctx.ResolveIdentifier(n.Name)
	if !ok {
		return Fail[[]hir.Expr](diag.New(diag.UndefinedIdentifier, location(ctx, n), "undefined identifier %q", n.Name))
	}
	return singleCandidate(ctx, n, &hir.IdentifierRef{LocalID: ctx.GetID(n), Identifier: identifier})
}

// lowerCall lowers a call expression: the target lowers with no expected
// type, then each argument lowers against the target's function-type
// parameter (when known) at the same position.
func lowerCall(ctx Context, n *ast.CallExpression) Result[[]hir.Expr] {
	// Allocated before visiting target/args: id order follows pre-order
	// visit, parent before child.
	localID := ctx.GetID(n)

	targetResult := LowerUnambiguous(NewExpressionContext(ctx, nil, false), n.Target)
	if targetResult.IsError() {
		return Result[[]hir.Expr]{Errors: targetResult.Errors}
	}
	target := targetResult.Value

	var fnType *types.FunctionType
	if ft, ok := target.Type().(*types.FunctionType); ok {
		fnType = ft
	}

	argResults := make([]Result[hir.Argument], len(n.Args))
	for i, arg := range n.Args {
		var expected types.Type
		if fnType != nil && i < len(fnType.Parameters) {
			expected = fnType.Parameters[i]
		}
		valueResult := LowerUnambiguous(NewExpressionContext(ctx, expected, false), arg.Value)
		if valueResult.IsError() {
			argResults[i] = Fail[hir.Argument](valueResult.Errors...)
			continue
		}
		argResults[i] = Ok(hir.Argument{Name: arg.Name, Value: valueResult.Value})
	}

	merged := MergeAll(argResults)
	if merged.IsError() {
		return Result[[]hir.Expr]{Errors: merged.Errors}
	}

	returnType := types.Any
	if fnType != nil && fnType.Return != nil {
		returnType = fnType.Return
	}

	return singleCandidate(ctx, n, &hir.Call{
		LocalID:  localID,
		Target:   target,
		Args:     merged.Value,
		ExprType: returnType,
	})
}
