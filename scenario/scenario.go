package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ErrUnsatisfiable reports that no assignment satisfies every clause.
// It is a normal outcome, not a fault: callers typically map it to a
// deny decision.
var ErrUnsatisfiable = errors.New("scenario: unsatisfiable")

// ErrInvalidLiteral reports a caller contract violation: a zero literal
// inside a clause. Zero cannot encode a variable since the sign would
// be meaningless.
var ErrInvalidLiteral = errors.New("scenario: invalid literal")

// An Assignment maps variable identifiers to boolean bindings.
type Assignment map[int]bool

// A Problem is a validated clause set together with its derived
// variable universe.
type Problem struct {
	Clauses [][]int
	Vars    []int // distinct variable identifiers, ascending

	empty bool // the input contained an empty clause
}

// NewProblem validates the clause set and derives its variable
// universe. The only invalid input is a zero literal; an empty clause
// is well-formed and makes the problem trivially unsatisfiable.
func NewProblem(clauses [][]int) (*Problem, error) {
	pb := &Problem{Clauses: clauses}
	for i, clause := range clauses {
		if len(clause) == 0 {
			pb.empty = true
		}
		for j, lit := range clause {
			if lit == 0 {
				return nil, fmt.Errorf("%w: zero literal at clause %d, position %d", ErrInvalidLiteral, i, j)
			}
		}
	}
	pb.Vars = Vars(clauses)
	return pb, nil
}

// Vars returns the distinct variable identifiers referenced by the
// clause set, in ascending order. The universe is derived, never
// declared: a variable exists exactly when some literal mentions it.
// Zero literals are skipped; rejecting them is NewProblem's job.
func Vars(clauses [][]int) []int {
	seen := make(map[int]bool)
	var vars []int
	for _, clause := range clauses {
		for _, lit := range clause {
			if lit < 0 {
				lit = -lit
			}
			if lit != 0 && !seen[lit] {
				seen[lit] = true
				vars = append(vars, lit)
			}
		}
	}
	sort.Ints(vars)
	return vars
}

// Scenario translates a total assignment into the signed-integer
// scenario encoding: one literal per variable in ascending variable
// order, positive if the variable is bound true.
func (pb *Problem) Scenario(a Assignment) []int {
	scenario := make([]int, len(pb.Vars))
	for i, v := range pb.Vars {
		if a[v] {
			scenario[i] = v
		} else {
			scenario[i] = -v
		}
	}
	return scenario
}

// A Backend is a strategy for deciding satisfiability of a Problem.
// Implementations must be deterministic (solving the same problem twice
// returns the same assignment) and stateless across calls, so that a
// single backend value can serve concurrent solves.
type Backend interface {
	Name() string
	Solve(pb *Problem) (Assignment, error)
}

// An Engine solves clause sets with a fixed backend. Which backend to
// use is decided once, at construction; callers depend only on the
// Solve contract.
//
// An Engine is safe for concurrent use: every Solve call owns its
// search state exclusively and nothing is shared across calls.
type Engine struct {
	// Logger, if non-nil, receives debug records about each solve.
	Logger *slog.Logger

	backend Backend
}

// New creates an engine using the given backend.
func New(b Backend) *Engine {
	return &Engine{backend: b}
}

// Backend returns the backend the engine was built with.
func (e *Engine) Backend() Backend { return e.backend }

// Solve decides the clause set and returns a scenario satisfying every
// clause, or ErrUnsatisfiable. An empty clause set is vacuously
// satisfiable and yields an empty scenario. The result is
// deterministic: identical input yields an identical scenario.
func (e *Engine) Solve(clauses [][]int) ([]int, error) {
	pb, err := NewProblem(clauses)
	if err != nil {
		return nil, err
	}
	if pb.empty {
		e.log("unsatisfiable", "reason", "empty clause")
		return nil, ErrUnsatisfiable
	}
	asn, err := e.backend.Solve(pb)
	if err != nil {
		if errors.Is(err, ErrUnsatisfiable) {
			e.log("unsatisfiable", "vars", len(pb.Vars), "clauses", len(pb.Clauses))
		}
		return nil, err
	}
	e.log("satisfiable", "vars", len(pb.Vars), "clauses", len(pb.Clauses))
	return pb.Scenario(asn), nil
}

func (e *Engine) log(msg string, args ...any) {
	if e.Logger == nil {
		return
	}
	e.Logger.Debug(msg, append([]any{"backend", e.backend.Name()}, args...)...)
}
