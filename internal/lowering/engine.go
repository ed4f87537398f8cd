// Package lowering implements the AST-to-HIR body-lowering core: the
// context hierarchy, the per-construct dispatch rules, the
// result-merging algebra, and the memoized query wrappers that sit on
// top of them.
package lowering

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/quag/candy/internal/diag"
	"github.com/quag/candy/internal/hir"
	"github.com/quag/candy/internal/query"
)

// Engine is the memoizing query engine: lowerBody is cached on
// DeclarationId.String() and computed at most once per id even under
// concurrent callers, rather than recomputing it for every caller.
// golang.org/x/sync/singleflight collapses concurrent lowerings of the
// same declaration into one computation instead of racing duplicate
// work.
type Engine struct {
	collaborators Collaborators
	group         singleflight.Group
	cache         sync.Map // query.DeclarationID.String() -> *loweringResult
}

// NewEngine creates a query engine backed by the given collaborators.
func NewEngine(collaborators Collaborators) *Engine {
	return &Engine{collaborators: collaborators}
}

type loweringResult struct {
	body    *LoweredBody
	errs    []*diag.Diagnostic
	present bool
}

// LowerBody is the memoized lowerBody query: each lowering is sequential
// from start to finish and is run at most once per declaration id,
// regardless of how many goroutines request it concurrently.
func (e *Engine) LowerBody(id query.DeclarationID) (*LoweredBody, []*diag.Diagnostic, bool) {
	key := id.String()
	if cached, ok := e.cache.Load(key); ok {
		r := cached.(*loweringResult)
		return r.body, r.errs, r.present
	}

	v, _, _ := e.group.Do(key, func() (any, error) {
		if cached, ok := e.cache.Load(key); ok {
			return cached, nil
		}
		body, errs, present := LowerBody(e.collaborators, id)
		r := &loweringResult{body: body, errs: errs, present: present}
		e.cache.Store(key, r)
		return r, nil
	})

	r := v.(*loweringResult)
	return r.body, r.errs, r.present
}

// GetBody is the getBody projection: the lowered expression sequence
// alone.
func (e *Engine) GetBody(id query.DeclarationID) ([]hir.Expr, bool) {
	body, _, present := e.LowerBody(id)
	if !present || body == nil {
		return nil, false
	}
	return body.Expressions, true
}

// GetBodyAstToHirIds is the getBodyAstToHirIds projection: the id map
// alone. It and GetBody always come from the same cached lowering, so
// their results stay coherent.
func (e *Engine) GetBodyAstToHirIds(id query.DeclarationID) (*hir.BodyAstToHirIds, bool) {
	body, _, present := e.LowerBody(id)
	if !present || body == nil {
		return nil, false
	}
	return body.IDMap, true
}

// Diagnostics returns the errors collected by the most recent LowerBody
// call for id, or nil if the lowering succeeded or is absent.
func (e *Engine) Diagnostics(id query.DeclarationID) []*diag.Diagnostic {
	_, errs, _ := e.LowerBody(id)
	return errs
}
