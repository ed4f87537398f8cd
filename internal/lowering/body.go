package lowering

import (
	"github.com/quag/candy/internal/ast"
	"github.com/quag/candy/internal/diag"
	"github.com/quag/candy/internal/hir"
	"github.com/quag/candy/internal/query"
	"github.com/quag/candy/internal/types"
)

// LoweredBody is the pair a successful lowering produces: the top-level
// HIR expression sequence and the id map recording every AST<->HIR
// pairing made along the way.
type LoweredBody struct {
	Expressions []hir.Expr
	IDMap       *hir.BodyAstToHirIds
}

// LowerBody runs the body-lowering core for one declaration. present is
// false when the declaration has nothing to lower: a property
// (initializer lowering is left unimplemented) or a function declared
// without a body. errs is non-nil only when present is true and lowering
// failed; body is non-nil only on success.
func LowerBody(collaborators Collaborators, id query.DeclarationID) (body *LoweredBody, errs []*diag.Diagnostic, present bool) {
	if !id.IsFunction() {
		// Property initializers are left unimplemented: this core always
		// reports "absent" for them rather than guessing at unsupported
		// behavior.
		return nil, nil, false
	}

	fnAst, ok := collaborators.FunctionDeclarationAst(id)
	if !ok || fnAst.Body == nil {
		return nil, nil, false
	}

	fnHir, ok := collaborators.FunctionDeclarationHir(id)
	if !ok {
		loc := diag.Location{Resource: id.Resource()}
		return nil, []*diag.Diagnostic{diag.New(diag.InternalError, loc, "no resolved signature for function %s", id.SimpleName())}, true
	}

	var thisType types.Type
	if !fnHir.IsStatic && id.IsMember() {
		thisType = types.ThisType{}
	}

	root := NewRootContext(collaborators, id, id.Resource(), thisType)

	locals := make(map[string]hir.Identifier, len(fnAst.Parameters))
	for i, param := range fnAst.Parameters {
		paramType := types.Any
		if i < len(fnHir.Parameters) {
			paramType = fnHir.Parameters[i].Type
		}
		locals[param.Name] = hir.ParameterIdentifier{
			LocalID: root.GetID(param),
			Name:    param.Name,
			Typ:     paramType,
		}
	}

	// The body itself is never an emitted HIR node - it's a scope marker
	// referenced by Return.Scope - so its id is a sentinel outside the
	// allocator's counted range (-1) rather than one drawn from it; only
	// actual HIR nodes occupy the dense [0, n) range of allocated ids.
	bodyID := query.DeclarationLocalID{Declaration: id, Ordinal: -1}
	fn := NewFunctionContext(root, id.SimpleName(), bodyID, fnHir.ReturnType, locals)

	result := lowerFunctionBody(fn, fnAst.Body.Expressions)
	if result.IsError() {
		return nil, result.Errors, true
	}
	return &LoweredBody{Expressions: result.Value, IDMap: root.IDMap()}, nil, true
}

// lowerFunctionBody implements body sequencing: every expression but the
// last lowers with no expected type in a forwarding child context; the
// last (when the return type isn't Unit) lowers against the declared
// return type and is wrapped in a synthesized return if it isn't one
// already.
func lowerFunctionBody(fn *FunctionContext, exprs []ast.Expression) Result[[]hir.Expr] {
	returnsUnit := fn.ReturnType() != nil && fn.ReturnType().Kind() == types.KindUnit

	if !returnsUnit && len(exprs) == 0 {
		return Fail[[]hir.Expr](diag.New(diag.MissingReturn, declarationLocation(fn),
			"function with non-Unit return type %s has an empty body", fn.ReturnType()))
	}

	if len(exprs) == 0 {
		return Ok([]hir.Expr{})
	}

	nonLastCount := len(exprs)
	if !returnsUnit {
		nonLastCount--
	}

	results := make([]Result[hir.Expr], 0, len(exprs))
	for i := 0; i < nonLastCount; i++ {
		childCtx := NewExpressionContext(fn, nil, true)
		results = append(results, LowerUnambiguous(childCtx, exprs[i]))
	}

	if !returnsUnit {
		lastExpr := exprs[len(exprs)-1]
		childCtx := NewExpressionContext(fn, fn.ReturnType(), true)
		results = append(results, wrapFinalReturn(fn, LowerUnambiguous(childCtx, lastExpr)))
	}

	return MergeAll(results)
}

// wrapFinalReturn handles the tail expression of a function body: a
// final expression that's already a return is kept as-is; anything else
// is wrapped in a synthesized return over a fresh anonymous local id, so
// every non-Unit body ends in a return by construction.
func wrapFinalReturn(fn *FunctionContext, last Result[hir.Expr]) Result[hir.Expr] {
	if last.IsError() {
		return last
	}
	if ret, ok := last.Value.(*hir.Return); ok {
		return Ok[hir.Expr](ret)
	}
	return Ok[hir.Expr](&hir.Return{
		LocalID: fn.GetID(nil),
		Scope:   fn.BodyID(),
		Inner:   last.Value,
	})
}

func declarationLocation(ctx Context) diag.Location {
	loc := diag.Location{Resource: ctx.ResourceID()}
	if node, ok := ctx.Collaborators().DeclarationAst(ctx.DeclarationID()); ok {
		loc.Span = node.Pos()
	}
	return loc
}
