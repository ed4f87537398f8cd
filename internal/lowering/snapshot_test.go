package lowering

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/quag/candy/internal/ast"
	"github.com/quag/candy/internal/hir"
	"github.com/quag/candy/internal/types"
)

// snapshotLowering lowers one function and renders its HIR with hir.Print,
// handing a single rendered string to snaps.MatchSnapshot rather than
// asserting on the struct directly.
func snapshotLowering(t *testing.T, name string, collab *fakeCollaborators) {
	t.Helper()
	body, errs, present := LowerBody(collab, functionID(name))
	if !present {
		t.Fatalf("%s: expected a present body", name)
	}
	if errs != nil {
		t.Fatalf("%s: unexpected errors: %v", name, errs)
	}
	snaps.MatchSnapshot(t, fmt.Sprintf("%s_hir", name), hir.PrintAll(body.Expressions))
}

// fun f(): Int { 42 }
func TestSnapshotIntReturningFunction(t *testing.T) {
	collab := newFakeCollaborators()
	collab.registerFunction(functionID("f"),
		&ast.FunctionAst{Name: "f", Body: &ast.LambdaLiteral{Expressions: []ast.Expression{intLit(1, 42)}}},
		&FunctionHir{ReturnType: types.Int},
	)
	snapshotLowering(t, "f", collab)
}

// fun f(x: Int): String { "v=$x" }
func TestSnapshotStringInterpolationOfParameter(t *testing.T) {
	collab := newFakeCollaborators()
	param := valueParam(1, "x")
	interpolatedIdent := identExpr(3, "x")
	literal := stringLit(2, ast.LiteralPart{Value: "v="}, ast.InterpolationPart{Inner: interpolatedIdent})
	collab.registerFunction(functionID("f"),
		&ast.FunctionAst{
			Name:       "f",
			Parameters: []*ast.ValueParameter{param},
			Body:       &ast.LambdaLiteral{Expressions: []ast.Expression{literal}},
		},
		&FunctionHir{
			Parameters: []ParameterHir{{Name: "x", Type: types.Int}},
			ReturnType: types.String,
		},
	)
	snapshotLowering(t, "f", collab)
}

// fun f(): Int { 1 2 }
func TestSnapshotNonLastExpressionStatement(t *testing.T) {
	collab := newFakeCollaborators()
	collab.registerFunction(functionID("f"),
		&ast.FunctionAst{Name: "f", Body: &ast.LambdaLiteral{Expressions: []ast.Expression{intLit(1, 1), intLit(2, 2)}}},
		&FunctionHir{ReturnType: types.Int},
	)
	snapshotLowering(t, "f", collab)
}
