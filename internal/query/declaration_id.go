// Package query holds declaration identity: the DeclarationID path of a
// declaration and the DeclarationLocalID pairs minted inside it. The
// memoizing query wrappers live in the lowering package's Engine.
package query

import (
	"strconv"
	"strings"

	"github.com/quag/candy/internal/ast"
)

// ResourceID identifies the source file a declaration lives in.
type ResourceID string

// DeclarationID is an opaque path identifying a top-level or nested
// declaration: a module, trait, class, function, property, or
// constructor.
type DeclarationID struct {
	resource ResourceID
	path     string // simple name components joined with "."
	kind     ast.DeclKind
	parent   *DeclarationID
}

// NewRootDeclarationID creates a top-level declaration id (no parent)
// inside the given resource.
func NewRootDeclarationID(resource ResourceID, kind ast.DeclKind, name string) DeclarationID {
	return DeclarationID{
		resource: resource,
		path:     name,
		kind:     kind,
	}
}

// Child creates a nested declaration id whose parent is id.
func (id DeclarationID) Child(kind ast.DeclKind, name string) DeclarationID {
	parent := id
	return DeclarationID{
		resource: id.resource,
		path:     id.path + "." + name,
		kind:     kind,
		parent:   &parent,
	}
}

// Parent returns the enclosing declaration id, and whether one exists.
func (id DeclarationID) Parent() (DeclarationID, bool) {
	if id.parent == nil {
		return DeclarationID{}, false
	}
	return *id.parent, true
}

// Resource returns the source file this declaration belongs to.
func (id DeclarationID) Resource() ResourceID { return id.resource }

// Kind reports what sort of declaration this id names.
func (id DeclarationID) Kind() ast.DeclKind { return id.kind }

// SimplePath returns the dotted path of simple name components from the
// outermost declaration down to this one.
func (id DeclarationID) SimplePath() []string {
	if id.path == "" {
		return nil
	}
	return strings.Split(id.path, ".")
}

// SimpleName is the last path component: this declaration's own name.
func (id DeclarationID) SimpleName() string {
	return id.path[strings.LastIndex(id.path, ".")+1:]
}

// IsFunction, IsProperty and IsConstructor are the kind predicates.
// LowerBody consults IsFunction to decide whether a declaration has a
// body to lower; `this` resolution uses IsMember.
func (id DeclarationID) IsFunction() bool    { return id.kind == ast.DeclFunction }
func (id DeclarationID) IsProperty() bool    { return id.kind == ast.DeclProperty }
func (id DeclarationID) IsConstructor() bool { return id.kind == ast.DeclConstructor }

// IsMember reports whether this declaration's parent is a class or trait,
// i.e. whether `this` resolves inside it.
func (id DeclarationID) IsMember() bool {
	parent, ok := id.Parent()
	if !ok {
		return false
	}
	return parent.kind == ast.DeclClass || parent.kind == ast.DeclTrait
}

// String renders a stable, comparable key for the declaration, used both
// for debugging and as the memoization/singleflight key.
func (id DeclarationID) String() string {
	var sb strings.Builder
	sb.WriteString(string(id.resource))
	sb.WriteByte(':')
	sb.WriteString(id.path)
	sb.WriteByte('[')
	sb.WriteString(id.kind.String())
	sb.WriteByte(']')
	return sb.String()
}

// DeclarationLocalID is a `(DeclarationId, integer)` pair, unique within
// its declaration and stable across a successful lowering. Ordinals
// minted by the allocator are nonnegative; the function body's scope id
// uses the sentinel ordinal -1.
type DeclarationLocalID struct {
	Declaration DeclarationID
	Ordinal     int
}

func (id DeclarationLocalID) String() string {
	return id.Declaration.String() + "#" + strconv.Itoa(id.Ordinal)
}
