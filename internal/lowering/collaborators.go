package lowering

import (
	"github.com/quag/candy/internal/ast"
	"github.com/quag/candy/internal/query"
	"github.com/quag/candy/internal/types"
)

// ModuleID names the module a declaration lives in, as returned by
// Collaborators.ModuleID.
type ModuleID string

// FunctionHir is the resolved signature of a function declaration, as
// returned by Collaborators.FunctionDeclarationHir: parameter and return
// types already resolved to CandyType, plus whether the function is
// static.
type FunctionHir struct {
	Parameters []ParameterHir
	ReturnType types.Type
	IsStatic   bool
}

// ParameterHir is one resolved value parameter.
type ParameterHir struct {
	Name string
	Type types.Type
}

// PropertyHir is the resolved signature of a property declaration, as
// returned by Collaborators.PropertyDeclarationHir.
type PropertyHir struct {
	Type        types.Type
	IsStatic    bool
	Initializer ast.Expression
}

// Collaborators bundles every external dependency the lowering core
// consumes but does not itself implement: declaration lookups, type
// resolution, and the subtyping oracle. This core never performs
// top-level declaration discovery or subtyping itself - it calls out to
// whatever the rest of the compiler (or a test double) supplies here.
type Collaborators interface {
	// FunctionDeclarationAst returns the parsed signature and body of a
	// function declaration. ok is false if id does not name a function.
	FunctionDeclarationAst(id query.DeclarationID) (decl *ast.FunctionAst, ok bool)

	// FunctionDeclarationHir returns a function declaration's resolved
	// signature.
	FunctionDeclarationHir(id query.DeclarationID) (hir *FunctionHir, ok bool)

	// PropertyDeclarationHir returns a property declaration's resolved
	// signature.
	PropertyDeclarationHir(id query.DeclarationID) (hir *PropertyHir, ok bool)

	// ModuleID reports which module a declaration belongs to.
	ModuleID(id query.DeclarationID) ModuleID

	// ResolveType turns a surface type annotation into a CandyType,
	// relative to the module it appears in.
	ResolveType(module ModuleID, expr ast.TypeExpression) types.Type

	// Oracle is the subtyping/assignability collaborator.
	Oracle() types.Oracle

	// DeclarationAst returns a declaration's AST node, used only to
	// recover a span for diagnostics that have no more specific location.
	DeclarationAst(id query.DeclarationID) (node ast.Node, ok bool)
}
