package lowering

import (
	"testing"

	"github.com/quag/candy/internal/ast"
	"github.com/quag/candy/internal/hir"
	"github.com/quag/candy/internal/query"
	"github.com/quag/candy/internal/types"
)

func TestRootContextResolvesThisOnlyForMembers(t *testing.T) {
	collab := newFakeCollaborators()
	classID := query.NewRootDeclarationID("test.candy", ast.DeclClass, "Foo")
	methodID := classID.Child(ast.DeclFunction, "bar")

	root := NewRootContext(collab, methodID, "test.candy", types.ThisType{})
	if _, ok := root.ResolveIdentifier("this"); !ok {
		t.Fatalf("expected `this` to resolve for a member function")
	}
	if _, ok := root.ResolveIdentifier("somethingElse"); ok {
		t.Fatalf("root context must not resolve arbitrary names: no globals")
	}

	staticRoot := NewRootContext(collab, methodID, "test.candy", nil)
	if _, ok := staticRoot.ResolveIdentifier("this"); ok {
		t.Fatalf("`this` must not resolve for a static/non-member declaration")
	}
}

func TestRootContextRejectsAddIdentifierAndJumps(t *testing.T) {
	collab := newFakeCollaborators()
	id := functionID("f")
	root := NewRootContext(collab, id, "test.candy", nil)

	if ok := root.AddIdentifier("x", hir.ThisIdentifier{}); ok {
		t.Fatalf("root is not a binding scope for locals")
	}
	if _, ok := root.ResolveReturn(nil); ok {
		t.Fatalf("root must not resolve a return target")
	}
	if _, ok := root.ResolveBreak(nil); ok {
		t.Fatalf("root must not resolve a break target")
	}
}

func TestFunctionContextResolvesParametersThenDelegatesToRoot(t *testing.T) {
	collab := newFakeCollaborators()
	id := functionID("f")
	root := NewRootContext(collab, id, "test.candy", types.ThisType{})

	locals := map[string]hir.Identifier{
		"x": hir.ParameterIdentifier{Name: "x", Typ: types.Int},
	}
	fn := NewFunctionContext(root, "f", query.DeclarationLocalID{Declaration: id, Ordinal: -1}, types.Int, locals)

	if id, ok := fn.ResolveIdentifier("x"); !ok || id.IdentifierType().Kind() != types.KindInt {
		t.Fatalf("expected parameter x to resolve to Int, got %v ok=%v", id, ok)
	}
	if _, ok := fn.ResolveIdentifier("this"); !ok {
		t.Fatalf("expected `this` to resolve by delegation to the root")
	}
}

func TestFunctionContextAddIdentifierShadowsPriorBinding(t *testing.T) {
	collab := newFakeCollaborators()
	id := functionID("f")
	root := NewRootContext(collab, id, "test.candy", nil)
	fn := NewFunctionContext(root, "f", query.DeclarationLocalID{Declaration: id, Ordinal: -1}, types.Unit, map[string]hir.Identifier{
		"x": hir.ParameterIdentifier{Name: "x", Typ: types.Int},
	})

	fn.AddIdentifier("x", hir.LocalPropertyIdentifier{Name: "x", Typ: types.Bool})
	resolved, ok := fn.ResolveIdentifier("x")
	if !ok || resolved.IdentifierType().Kind() != types.KindBool {
		t.Fatalf("expected the new binding to shadow the parameter, got %v", resolved)
	}
}

func TestFunctionContextResolveReturnMatchesLabelOrAbsent(t *testing.T) {
	collab := newFakeCollaborators()
	id := functionID("f")
	root := NewRootContext(collab, id, "test.candy", nil)
	bodyID := query.DeclarationLocalID{Declaration: id, Ordinal: -1}
	fn := NewFunctionContext(root, "f", bodyID, types.Int, nil)

	if scope, ok := fn.ResolveReturn(nil); !ok || scope.ScopeID != bodyID {
		t.Fatalf("expected an unlabeled return to resolve to the body scope")
	}
	matching := "f"
	if _, ok := fn.ResolveReturn(&matching); !ok {
		t.Fatalf("expected a label matching the function's simple name to resolve")
	}
	other := "g"
	if _, ok := fn.ResolveReturn(&other); ok {
		t.Fatalf("expected a mismatched label to fail resolution")
	}
}

func TestExpressionContextForwardingControlsBindingVisibility(t *testing.T) {
	collab := newFakeCollaborators()
	id := functionID("f")
	root := NewRootContext(collab, id, "test.candy", nil)
	fn := NewFunctionContext(root, "f", query.DeclarationLocalID{Declaration: id, Ordinal: -1}, types.Unit, nil)

	forwarding := NewExpressionContext(fn, nil, true)
	forwarding.AddIdentifier("y", hir.LocalPropertyIdentifier{Name: "y", Typ: types.Int})
	if _, ok := fn.ResolveIdentifier("y"); !ok {
		t.Fatalf("a forwarding child's bindings must become visible to the parent scope")
	}

	nonForwarding := NewExpressionContext(fn, nil, false)
	nonForwarding.AddIdentifier("z", hir.LocalPropertyIdentifier{Name: "z", Typ: types.Int})
	if _, ok := fn.ResolveIdentifier("z"); ok {
		t.Fatalf("a non-forwarding child's bindings must not leak to the parent scope")
	}
}

func TestIsValidExpressionTypeAcceptsAnythingWithNoExpectedType(t *testing.T) {
	collab := newFakeCollaborators()
	id := functionID("f")
	root := NewRootContext(collab, id, "test.candy", nil)
	if !IsValidExpressionType(root, types.Bool) {
		t.Fatalf("a context with no expected type must accept anything")
	}

	expr := NewExpressionContext(root, types.Int, false)
	if IsValidExpressionType(expr, types.Bool) {
		t.Fatalf("Bool must not satisfy an expected type of Int")
	}
	if !IsValidExpressionType(expr, types.Int) {
		t.Fatalf("Int must satisfy an expected type of Int")
	}
}
