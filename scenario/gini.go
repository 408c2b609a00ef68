package scenario

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Gini is the fast backend. It hands the clause set to the gini SAT
// solver and reads the model back. gini runs a full CDCL search, so
// this backend scales far beyond Logic; its results are deterministic
// for identical input but the scenario it finds generally differs from
// the one Logic finds.
type Gini struct{}

// Name implements Backend.
func (Gini) Name() string { return "gini" }

// Solve implements Backend. A fresh solver instance is built per call,
// so a single Gini value serves concurrent solves.
func (Gini) Solve(pb *Problem) (Assignment, error) {
	g := gini.New()
	for _, clause := range pb.Clauses {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(lit))
		}
		g.Add(z.LitNull)
	}
	if g.Solve() != 1 {
		return nil, ErrUnsatisfiable
	}
	asn := make(Assignment, len(pb.Vars))
	for _, id := range pb.Vars {
		asn[id] = g.Value(z.Dimacs2Lit(id))
	}
	return asn, nil
}
