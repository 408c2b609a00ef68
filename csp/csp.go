// Package csp implements a small solver for constraint satisfaction
// problems over finite integer domains.
//
// A problem is a set of variables, each with a finite ordered domain,
// and a set of constraints over subsets of those variables. The solver
// performs chronological backtracking: variables are bound in the order
// they were declared, domain values are tried in the order they appear
// in the domain, and a branch is abandoned as soon as a constraint
// reports it is violated. The search is deterministic: solving the same
// problem twice yields the same first solution.
//
// There is no constraint propagation and no learning. For the problem
// sizes this package targets (tens of variables), plain backtracking
// with early pruning is enough.
package csp

import (
	"errors"
	"fmt"
)

// ErrNoSolution is returned by Solve when no assignment satisfies every
// constraint.
var ErrNoSolution = errors.New("csp: no solution")

// Status is the state of a constraint under a partial assignment.
type Status byte

const (
	// Undetermined means the constraint cannot be decided yet because
	// some variable in its scope is unbound.
	Undetermined = Status(iota)
	// Satisfied means the constraint holds under the current bindings,
	// whatever the unbound variables end up being.
	Satisfied
	// Violated means the constraint cannot hold anymore.
	Violated
)

func (s Status) String() string {
	switch s {
	case Undetermined:
		return "UNDETERMINED"
	case Satisfied:
		return "SATISFIED"
	case Violated:
		return "VIOLATED"
	default:
		panic("invalid status")
	}
}

// A Variable has an identifier and a finite ordered domain. The solver
// tries domain values in the order they are listed, so the domain order
// is part of the search order contract.
type Variable struct {
	ID     int
	Domain []int
}

// A Constraint restricts the values a subset of variables may take.
// Scope lists the identifiers of the variables the constraint reads;
// the solver only re-checks a constraint when one of its scoped
// variables has just been bound. Check inspects the current bindings
// and reports the constraint status. Check must not report Violated
// while an unbound scoped variable could still satisfy the constraint.
type Constraint struct {
	Scope []int
	Check func(binding map[int]int) Status
}

// Stats reports search effort. Informational only.
type Stats struct {
	Decisions  int // value bindings tried
	Backtracks int // bindings undone after a dead end
}

// A Solver holds one problem and the state of one search. It is not
// safe for concurrent use; create one Solver per Solve call.
type Solver struct {
	Stats Stats

	vars        []Variable
	constraints []Constraint
	watch       map[int][]int // variable id -> indices of constraints scoping it
	binding     map[int]int
}

// NewSolver creates a solver for the given variables and constraints.
func NewSolver(vars []Variable, constraints []Constraint) *Solver {
	s := &Solver{
		vars:        vars,
		constraints: constraints,
		watch:       make(map[int][]int),
		binding:     make(map[int]int, len(vars)),
	}
	for i, c := range constraints {
		for _, id := range c.Scope {
			s.watch[id] = append(s.watch[id], i)
		}
	}
	return s
}

// Solve searches for an assignment binding every variable to a value of
// its domain such that no constraint is violated. It returns the first
// assignment found in the deterministic search order, or ErrNoSolution
// once the whole space has been exhausted. An ill-formed problem
// (duplicate variable, constraint scoping an unknown variable) is
// reported as an error distinct from ErrNoSolution.
func (s *Solver) Solve() (map[int]int, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	// Constraints with an empty scope are never reached through the
	// watch lists; decide them up front.
	for _, c := range s.constraints {
		if len(c.Scope) == 0 && c.Check(s.binding) == Violated {
			return nil, ErrNoSolution
		}
	}
	if !s.search(0) {
		return nil, ErrNoSolution
	}
	res := make(map[int]int, len(s.binding))
	for id, val := range s.binding {
		res[id] = val
	}
	return res, nil
}

func (s *Solver) validate() error {
	known := make(map[int]bool, len(s.vars))
	for _, v := range s.vars {
		if known[v.ID] {
			return fmt.Errorf("csp: duplicate variable %d", v.ID)
		}
		known[v.ID] = true
	}
	for i, c := range s.constraints {
		for _, id := range c.Scope {
			if !known[id] {
				return fmt.Errorf("csp: constraint %d references unknown variable %d", i, id)
			}
		}
	}
	return nil
}

func (s *Solver) search(i int) bool {
	if i == len(s.vars) {
		return true
	}
	v := s.vars[i]
	for _, val := range v.Domain {
		s.binding[v.ID] = val
		s.Stats.Decisions++
		if s.consistent(v.ID) && s.search(i+1) {
			return true
		}
		delete(s.binding, v.ID)
		s.Stats.Backtracks++
	}
	return false
}

// consistent reports whether no constraint scoping the just-bound
// variable is violated under the current bindings.
func (s *Solver) consistent(id int) bool {
	for _, ci := range s.watch[id] {
		if s.constraints[ci].Check(s.binding) == Violated {
			return false
		}
	}
	return true
}
