package scenario

import (
	"errors"

	"github.com/permitlab/scenariosat/csp"
)

// Logic is the pure-Go backend. It instantiates the generic
// finite-domain solver from package csp with boolean domains: one
// variable per predicate with domain {true, false} and one constraint
// per clause, satisfied as soon as any literal matches its required
// polarity.
//
// Search order: variables ascending by identifier, true tried before
// false. The order is part of the backend's contract; changing it would
// change which scenario repeated solves return.
//
// The worst case visits all 2^n assignments, so Logic is significantly
// slower than Gini on large inputs. It exists so the engine works
// without the external solver, and as an oracle when testing.
type Logic struct{}

// Name implements Backend.
func (Logic) Name() string { return "logic" }

// Boolean domain values for the csp instantiation. True comes first in
// every domain so it is tried first.
const (
	boolFalse = 0
	boolTrue  = 1
)

// Solve implements Backend.
func (Logic) Solve(pb *Problem) (Assignment, error) {
	vars := make([]csp.Variable, len(pb.Vars))
	for i, id := range pb.Vars {
		vars[i] = csp.Variable{ID: id, Domain: []int{boolTrue, boolFalse}}
	}
	constraints := make([]csp.Constraint, len(pb.Clauses))
	for i, clause := range pb.Clauses {
		constraints[i] = clauseConstraint(clause)
	}
	solution, err := csp.NewSolver(vars, constraints).Solve()
	if err != nil {
		if errors.Is(err, csp.ErrNoSolution) {
			return nil, ErrUnsatisfiable
		}
		return nil, err
	}
	asn := make(Assignment, len(solution))
	for id, val := range solution {
		asn[id] = val == boolTrue
	}
	return asn, nil
}

// clauseConstraint builds the csp constraint for one clause. The
// constraint is satisfied once one literal's variable is bound to the
// polarity the literal demands, and violated only when every scoped
// variable is bound and none matches; with unbound variables left it
// stays undetermined rather than being judged violated prematurely.
func clauseConstraint(clause []int) csp.Constraint {
	return csp.Constraint{
		Scope: Vars([][]int{clause}),
		Check: func(binding map[int]int) csp.Status {
			unbound := false
			for _, lit := range clause {
				id, want := lit, boolTrue
				if lit < 0 {
					id, want = -lit, boolFalse
				}
				val, ok := binding[id]
				if !ok {
					unbound = true
					continue
				}
				if val == want {
					return csp.Satisfied
				}
			}
			if unbound {
				return csp.Undetermined
			}
			return csp.Violated
		},
	}
}
