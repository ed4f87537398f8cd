package lowering

import (
	"github.com/quag/candy/internal/ast"
	"github.com/quag/candy/internal/query"
	"github.com/quag/candy/internal/types"
)

// fakeCollaborators is an in-memory double for the Collaborators
// interface, built directly from test fixtures rather than a parser, so
// each test controls exactly the signature and body it wants lowered.
type fakeCollaborators struct {
	functions  map[string]*ast.FunctionAst
	signatures map[string]*FunctionHir
	decls      map[string]ast.Node
}

func newFakeCollaborators() *fakeCollaborators {
	return &fakeCollaborators{
		functions:  make(map[string]*ast.FunctionAst),
		signatures: make(map[string]*FunctionHir),
		decls:      make(map[string]ast.Node),
	}
}

func (f *fakeCollaborators) registerFunction(id query.DeclarationID, fn *ast.FunctionAst, sig *FunctionHir) {
	f.functions[id.String()] = fn
	f.signatures[id.String()] = sig
}

func (f *fakeCollaborators) FunctionDeclarationAst(id query.DeclarationID) (*ast.FunctionAst, bool) {
	v, ok := f.functions[id.String()]
	return v, ok
}

func (f *fakeCollaborators) FunctionDeclarationHir(id query.DeclarationID) (*FunctionHir, bool) {
	v, ok := f.signatures[id.String()]
	return v, ok
}

func (f *fakeCollaborators) PropertyDeclarationHir(query.DeclarationID) (*PropertyHir, bool) {
	return nil, false
}

func (f *fakeCollaborators) ModuleID(query.DeclarationID) ModuleID { return "test" }

func (f *fakeCollaborators) ResolveType(ModuleID, ast.TypeExpression) types.Type {
	return types.Any
}

func (f *fakeCollaborators) Oracle() types.Oracle { return types.StructuralOracle{} }

func (f *fakeCollaborators) DeclarationAst(id query.DeclarationID) (ast.Node, bool) {
	v, ok := f.decls[id.String()]
	return v, ok
}

var testSpan = ast.Span{Start: ast.Position{Line: 1, Column: 1, Offset: 0}, End: ast.Position{Line: 1, Column: 1, Offset: 0}}

func intLit(id ast.NodeID, value int64) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{NodeID: id, Span: testSpan, Value: value}
}

func boolLit(id ast.NodeID, value bool) *ast.BooleanLiteral {
	return &ast.BooleanLiteral{NodeID: id, Span: testSpan, Value: value}
}

func identExpr(id ast.NodeID, name string) *ast.Identifier {
	return &ast.Identifier{NodeID: id, Span: testSpan, Name: name}
}

func returnExpr(id ast.NodeID, label *string, value ast.Expression) *ast.ReturnExpression {
	return &ast.ReturnExpression{NodeID: id, Span: testSpan, Label: label, Value: value}
}

func stringLit(id ast.NodeID, parts ...ast.StringPart) *ast.StringLiteral {
	return &ast.StringLiteral{NodeID: id, Span: testSpan, Parts: parts}
}

func valueParam(id ast.NodeID, name string) *ast.ValueParameter {
	return &ast.ValueParameter{NodeID: id, Span: testSpan, Name: name, Type: &ast.NamedTypeExpression{Name: "Int"}}
}

func namedType(name string) *types.NamedType { return &types.NamedType{Name: name} }

func functionID(name string) query.DeclarationID {
	return query.NewRootDeclarationID(query.ResourceID("test.candy"), ast.DeclFunction, name)
}
