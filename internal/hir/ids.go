// Package hir defines the desugared, type-resolved tree the lowering core
// produces, plus the id machinery that ties every HIR node back to the
// AST node it was lowered from. The two typed-id idioms below — a
// narrow allocator plus an explicit forward/backward id map — generalize
// the same shape used by a side table keyed on AST node identity rather
// than Go pointer identity, so re-lowering an equivalent tree produces
// comparable ids.
package hir

import (
	"github.com/quag/candy/internal/ast"
	"github.com/quag/candy/internal/query"
)

// Allocator mints DeclarationLocalIDs for one declaration's lowering. It
// is owned by the root context and mutated only by the rules of that
// lowering; nothing is shared across lowerings.
type Allocator struct {
	declaration query.DeclarationID
	next        int
	forward     map[ast.NodeID]query.DeclarationLocalID
	backward    map[query.DeclarationLocalID]ast.NodeID
}

// NewAllocator creates an id allocator for the given declaration, with the
// counter starting at 0.
func NewAllocator(declaration query.DeclarationID) *Allocator {
	return &Allocator{
		declaration: declaration,
		forward:     make(map[ast.NodeID]query.DeclarationLocalID),
		backward:    make(map[query.DeclarationLocalID]ast.NodeID),
	}
}

// GetID mints or recalls an id for an AST node: called with nil it mints
// a fresh, unrecorded id; called repeatedly with the same AST node it
// returns the same id every time; called with a never-seen node it
// allocates the next id and records the AST<->HIR pairing.
//
// Callers that have no AST node to assign (a synthesized return, for
// example) must pass the untyped nil literal, not a typed nil pointer
// boxed into the ast.Node interface - a boxed typed nil would compare
// unequal to nil here and crash on node.ID().
func (a *Allocator) GetID(node ast.Node) query.DeclarationLocalID {
	if node == nil {
		return a.allocateFresh()
	}
	if existing, ok := a.forward[node.ID()]; ok {
		return existing
	}
	id := a.allocateFresh()
	a.forward[node.ID()] = id
	a.backward[id] = node.ID()
	return id
}

func (a *Allocator) allocateFresh() query.DeclarationLocalID {
	id := query.DeclarationLocalID{Declaration: a.declaration, Ordinal: a.next}
	a.next++
	return id
}

// Snapshot returns the immutable AST<->HIR id map accumulated so far.
// Once a lowering succeeds this snapshot never changes again.
func (a *Allocator) Snapshot() *BodyAstToHirIds {
	forward := make(map[ast.NodeID]query.DeclarationLocalID, len(a.forward))
	backward := make(map[query.DeclarationLocalID]ast.NodeID, len(a.backward))
	for k, v := range a.forward {
		forward[k] = v
	}
	for k, v := range a.backward {
		backward[k] = v
	}
	return &BodyAstToHirIds{declaration: a.declaration, forward: forward, backward: backward}
}

// BodyAstToHirIds is an injective mapping between AST node identities and
// DeclarationLocalIds. It is append-only during a single lowering and
// immutable once that lowering succeeds.
type BodyAstToHirIds struct {
	declaration query.DeclarationID
	forward     map[ast.NodeID]query.DeclarationLocalID
	backward    map[query.DeclarationLocalID]ast.NodeID
}

// Lookup finds the local id assigned to an AST node, if any.
func (m *BodyAstToHirIds) Lookup(node ast.NodeID) (query.DeclarationLocalID, bool) {
	id, ok := m.forward[node]
	return id, ok
}

// ReverseLookup finds the AST node a local id was assigned to. Synthesized
// ids (e.g. a wrapping return with no AST counterpart) have none.
func (m *BodyAstToHirIds) ReverseLookup(id query.DeclarationLocalID) (ast.NodeID, bool) {
	node, ok := m.backward[id]
	return node, ok
}

// Len reports how many AST nodes have recorded ids.
func (m *BodyAstToHirIds) Len() int { return len(m.forward) }

// Range iterates the map's AST node -> local id entries. Iteration order
// is unspecified; callers that need determinism should sort first.
func (m *BodyAstToHirIds) Range(fn func(ast.NodeID, query.DeclarationLocalID) bool) {
	for k, v := range m.forward {
		if !fn(k, v) {
			return
		}
	}
}
