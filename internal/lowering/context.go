package lowering

import (
	"github.com/quag/candy/internal/ast"
	"github.com/quag/candy/internal/hir"
	"github.com/quag/candy/internal/query"
	"github.com/quag/candy/internal/types"
)

// TargetScope is what resolveReturn/resolveBreak/resolveContinue hand
// back: the enclosing scope's local id plus the type an expression jumping
// to it must satisfy.
type TargetScope struct {
	ScopeID      query.DeclarationLocalID
	ExpectedType types.Type
}

// Context is the scope-frame interface every lowering level implements:
// a parent pointer, the expected type in force, identifier resolution
// and introduction, return/break/continue targets, and id allocation.
// Dispatch (lower/lowerUnambiguous) is implemented as free functions over
// this interface rather than as methods on every concrete frame, so the
// per-construct rules live in one place instead of being duplicated
// across RootContext/FunctionContext/ExpressionContext.
type Context interface {
	// DeclarationID identifies the declaration being lowered.
	DeclarationID() query.DeclarationID

	// ResourceID identifies the source file the declaration lives in.
	ResourceID() query.ResourceID

	// Parent returns the enclosing context, if any. The root context has
	// none.
	Parent() (Context, bool)

	// ExpressionType is the expected type this frame imposes, or nil for
	// "accept anything".
	ExpressionType() types.Type

	// GetID allocates or recalls a local id for an AST node (nil for a
	// synthesized node with none), delegating to the root allocator.
	GetID(node ast.Node) query.DeclarationLocalID

	// IDMap returns a snapshot (a copy) of the AST<->HIR id map built so
	// far; later allocations do not change it.
	IDMap() *hir.BodyAstToHirIds

	// ResolveIdentifier looks a name up innermost-first, delegating to the
	// parent on miss.
	ResolveIdentifier(name string) (hir.Identifier, bool)

	// AddIdentifier introduces a local binding visible to subsequent
	// expressions in this scope (or its forwarding target). ok is false
	// when the frame rejects new bindings outright (the root context).
	AddIdentifier(name string, identifier hir.Identifier) (ok bool)

	// ResolveReturn, ResolveBreak and ResolveContinue locate the enclosing
	// target scope for a (possibly labeled) jump.
	ResolveReturn(label *string) (TargetScope, bool)
	ResolveBreak(label *string) (TargetScope, bool)
	ResolveContinue(label *string) (TargetScope, bool)

	// Collaborators exposes the injected external dependencies.
	Collaborators() Collaborators
}

// IsValidExpressionType is the validity predicate: true when the context
// has no expected type, otherwise whether t is assignable to it per the
// subtyping oracle. This is the one place bidirectional checking
// attaches.
func IsValidExpressionType(ctx Context, t types.Type) bool {
	expected := ctx.ExpressionType()
	if expected == nil {
		return true
	}
	return ctx.Collaborators().Oracle().IsAssignableTo(t, expected)
}

// RootContext is the outermost scope bound to a declaration. It owns the
// id allocator and resolves only the reserved name `this`.
type RootContext struct {
	collaborators Collaborators
	declarationID query.DeclarationID
	resourceID    query.ResourceID
	allocator     *hir.Allocator
	thisType      types.Type // nil if `this` does not resolve here
}

// NewRootContext creates the root frame for lowering declarationID, whose
// source file is resourceID. thisType is nil unless declarationID names a
// non-static function/property whose parent is a class or trait.
func NewRootContext(collaborators Collaborators, declarationID query.DeclarationID, resourceID query.ResourceID, thisType types.Type) *RootContext {
	return &RootContext{
		collaborators: collaborators,
		declarationID: declarationID,
		resourceID:    resourceID,
		allocator:     hir.NewAllocator(declarationID),
		thisType:      thisType,
	}
}

func (c *RootContext) DeclarationID() query.DeclarationID { return c.declarationID }
func (c *RootContext) ResourceID() query.ResourceID       { return c.resourceID }
func (c *RootContext) Parent() (Context, bool)            { return nil, false }
func (c *RootContext) ExpressionType() types.Type         { return nil }
func (c *RootContext) Collaborators() Collaborators       { return c.collaborators }

func (c *RootContext) GetID(node ast.Node) query.DeclarationLocalID {
	return c.allocator.GetID(node)
}

func (c *RootContext) IDMap() *hir.BodyAstToHirIds { return c.allocator.Snapshot() }

// ResolveIdentifier handles only `this`; every other name is unresolved
// at the root - there are no globals at this level.
func (c *RootContext) ResolveIdentifier(name string) (hir.Identifier, bool) {
	if name == "this" && c.thisType != nil {
		return hir.ThisIdentifier{Typ: c.thisType}, true
	}
	return nil, false
}

// AddIdentifier always fails: the root is not a binding scope for locals.
func (c *RootContext) AddIdentifier(string, hir.Identifier) bool { return false }

func (c *RootContext) ResolveReturn(*string) (TargetScope, bool)   { return TargetScope{}, false }
func (c *RootContext) ResolveBreak(*string) (TargetScope, bool)    { return TargetScope{}, false }
func (c *RootContext) ResolveContinue(*string) (TargetScope, bool) { return TargetScope{}, false }

// FunctionContext is a child of a root context: it binds value
// parameters, remembers the declared return type, and owns the body
// sequencing rule (lowerFunctionBody, see body.go).
type FunctionContext struct {
	parent     Context
	simpleName string
	bodyID     query.DeclarationLocalID
	returnType types.Type
	locals     map[string]hir.Identifier
}

// NewFunctionContext builds a function frame. parameters have already had
// their local ids allocated by the caller (against the parameter AST
// nodes) and are seeded into the identifiers map under their own names.
func NewFunctionContext(parent Context, simpleName string, bodyID query.DeclarationLocalID, returnType types.Type, parameters map[string]hir.Identifier) *FunctionContext {
	locals := make(map[string]hir.Identifier, len(parameters))
	for name, id := range parameters {
		locals[name] = id
	}
	return &FunctionContext{
		parent:     parent,
		simpleName: simpleName,
		bodyID:     bodyID,
		returnType: returnType,
		locals:     locals,
	}
}

func (c *FunctionContext) DeclarationID() query.DeclarationID { return c.parent.DeclarationID() }
func (c *FunctionContext) ResourceID() query.ResourceID       { return c.parent.ResourceID() }
func (c *FunctionContext) Parent() (Context, bool)            { return c.parent, true }
func (c *FunctionContext) ExpressionType() types.Type         { return nil }
func (c *FunctionContext) Collaborators() Collaborators       { return c.parent.Collaborators() }
func (c *FunctionContext) GetID(node ast.Node) query.DeclarationLocalID {
	return c.parent.GetID(node)
}
func (c *FunctionContext) IDMap() *hir.BodyAstToHirIds { return c.parent.IDMap() }

// BodyID is the local id standing for the function body's own scope, used
// as the scope id of both its resolved returns and its synthesized one.
func (c *FunctionContext) BodyID() query.DeclarationLocalID { return c.bodyID }

// ReturnType is the function's declared return type.
func (c *FunctionContext) ReturnType() types.Type { return c.returnType }

func (c *FunctionContext) ResolveIdentifier(name string) (hir.Identifier, bool) {
	if id, ok := c.locals[name]; ok {
		return id, true
	}
	return c.parent.ResolveIdentifier(name)
}

// AddIdentifier inserts into the local identifiers map, shadowing any
// prior binding.
func (c *FunctionContext) AddIdentifier(name string, identifier hir.Identifier) bool {
	c.locals[name] = identifier
	return true
}

// ResolveReturn succeeds iff the label is absent or equals the function's
// simple name.
func (c *FunctionContext) ResolveReturn(label *string) (TargetScope, bool) {
	if label != nil && *label != c.simpleName {
		return TargetScope{}, false
	}
	return TargetScope{ScopeID: c.bodyID, ExpectedType: c.returnType}, true
}

func (c *FunctionContext) ResolveBreak(label *string) (TargetScope, bool) {
	return c.parent.ResolveBreak(label)
}

func (c *FunctionContext) ResolveContinue(label *string) (TargetScope, bool) {
	return c.parent.ResolveContinue(label)
}

// ExpressionContext is a lightweight child frame carrying a single
// expected type and a forwarding flag for new local bindings.
type ExpressionContext struct {
	parent              Context
	expectedType        types.Type
	forwardsIdentifiers bool
}

// NewExpressionContext creates a child frame. expectedType may be nil
// ("accept anything"); forwardsIdentifiers controls whether bindings
// introduced here leak to the parent scope (true for top-level body
// expressions, false for nested operand positions).
func NewExpressionContext(parent Context, expectedType types.Type, forwardsIdentifiers bool) *ExpressionContext {
	return &ExpressionContext{parent: parent, expectedType: expectedType, forwardsIdentifiers: forwardsIdentifiers}
}

func (c *ExpressionContext) DeclarationID() query.DeclarationID { return c.parent.DeclarationID() }
func (c *ExpressionContext) ResourceID() query.ResourceID       { return c.parent.ResourceID() }
func (c *ExpressionContext) Parent() (Context, bool)            { return c.parent, true }
func (c *ExpressionContext) ExpressionType() types.Type         { return c.expectedType }
func (c *ExpressionContext) Collaborators() Collaborators       { return c.parent.Collaborators() }
func (c *ExpressionContext) GetID(node ast.Node) query.DeclarationLocalID {
	return c.parent.GetID(node)
}
func (c *ExpressionContext) IDMap() *hir.BodyAstToHirIds { return c.parent.IDMap() }

func (c *ExpressionContext) ResolveIdentifier(name string) (hir.Identifier, bool) {
	return c.parent.ResolveIdentifier(name)
}

// AddIdentifier forwards to the parent iff forwardsIdentifiers; otherwise
// the binding is swallowed silently, invisible outside this expression.
func (c *ExpressionContext) AddIdentifier(name string, identifier hir.Identifier) bool {
	if c.forwardsIdentifiers {
		return c.parent.AddIdentifier(name, identifier)
	}
	return true
}

func (c *ExpressionContext) ResolveReturn(label *string) (TargetScope, bool) {
	return c.parent.ResolveReturn(label)
}

func (c *ExpressionContext) ResolveBreak(label *string) (TargetScope, bool) {
	return c.parent.ResolveBreak(label)
}

func (c *ExpressionContext) ResolveContinue(label *string) (TargetScope, bool) {
	return c.parent.ResolveContinue(label)
}
