package neomodel

import (
	"context"
	"fmt"
	"sort"

	"github.com/dan-poling/neomodel/query"
)

// Search returns every persisted node of this type matching all of the
// given property constraints, resolved through the type's index. Each
// constrained property must be declared, indexed (uniquely or not), and
// given a value of its declared kind.
func (s *Schema) Search(ctx context.Context, constraints map[string]any) ([]*Node, error) {
	if len(constraints) == 0 {
		return nil, fmt.Errorf("neomodel: search %s: no constraints", s.name)
	}

	// Stable term order keeps the rendered query deterministic.
	names := make([]string, 0, len(constraints))
	for name := range constraints {
		names = append(names, name)
	}
	sort.Strings(names)

	exprs := make([]query.Expr, 0, len(names))
	for _, name := range names {
		desc, err := s.Property(name)
		if err != nil {
			return nil, err
		}
		if !desc.Indexed() {
			return nil, NewPropertyNotIndexedError(s.name, name)
		}
		if err := desc.Validate(constraints[name]); err != nil {
			return nil, err
		}
		exprs = append(exprs, query.EQ(name, constraints[name]))
	}
	return s.SearchExpr(ctx, query.And(exprs...))
}

// SearchExpr runs a raw index query expression against this type's
// index and hydrates the matches. Callers composing expressions by hand
// bypass the declaration checks Search performs.
func (s *Schema) SearchExpr(ctx context.Context, expr query.Expr) ([]*Node, error) {
	if expr.Empty() {
		return nil, fmt.Errorf("neomodel: search %s: empty expression", s.name)
	}
	recs, err := s.index.Query(ctx, expr)
	if err != nil {
		return nil, fmt.Errorf("neomodel: search %s: %w", s.name, err)
	}
	out := make([]*Node, 0, len(recs))
	for _, rec := range recs {
		n, err := s.hydrate(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Get returns the single node matching the constraints. No match fails
// with NotFoundError; more than one with NotSingularError.
func (s *Schema) Get(ctx context.Context, constraints map[string]any) (*Node, error) {
	nodes, err := s.Search(ctx, constraints)
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 0:
		return nil, NewNotFoundError(s.name)
	case 1:
		return nodes[0], nil
	default:
		return nil, NewNotSingularError(s.name, len(nodes))
	}
}
