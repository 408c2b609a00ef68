package formula

import (
	"sort"

	"github.com/permitlab/scenariosat/scenario"
)

// A CNF is a formula compiled to conjunctive normal form, ready for the
// scenario engine: a clause set over integer variables plus the mapping
// from predicate names to variable identifiers. Helper variables
// introduced during compilation hold identifiers above the named ones
// and carry no name.
type CNF struct {
	Clauses [][]int

	vocab *vocab
}

// Compile converts the formula to conjunctive normal form. The
// conversion first rewrites the formula into negation normal form,
// then distributes disjunctions over conjunctions, introducing one
// helper variable per nested conjunction so the clause count stays
// linear in the formula size.
func Compile(f Formula) *CNF {
	v := &vocab{ids: make(map[string]int)}
	clauses := clausesRec(f.nnf(), v)
	return &CNF{Clauses: clauses, vocab: v}
}

// ID returns the variable identifier compiled for the named predicate.
// It reports false for unknown predicates and for predicates the
// simplifier removed (a predicate only reachable under a constant
// subformula never makes it into a clause).
func (c *CNF) ID(name string) (int, bool) {
	id, ok := c.vocab.ids[name]
	return id, ok
}

// Names returns the named predicates appearing in the compiled clauses,
// sorted.
func (c *CNF) Names() []string {
	names := make([]string, 0, len(c.vocab.ids))
	for name := range c.vocab.ids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Solve compiles the formula and solves it with the given engine. On
// success it returns a model binding each compiled predicate name; on
// failure it returns the engine's error, scenario.ErrUnsatisfiable when
// the formula is contradictory.
func Solve(f Formula, e *scenario.Engine) (map[string]bool, error) {
	c := Compile(f)
	scen, err := e.Solve(c.Clauses)
	if err != nil {
		return nil, err
	}
	value := make(map[int]bool, len(scen))
	for _, l := range scen {
		if l > 0 {
			value[l] = true
		} else {
			value[-l] = false
		}
	}
	model := make(map[string]bool, len(c.vocab.ids))
	for name, id := range c.vocab.ids {
		model[name] = value[id]
	}
	return model, nil
}

// vocab assigns integer identifiers to predicates. Named predicates and
// helper variables draw from the same counter, so every identifier is
// distinct.
type vocab struct {
	ids  map[string]int
	next int
}

// lit returns the signed identifier for the literal, creating the
// variable on first reference.
func (v *vocab) lit(l lit) int {
	id, ok := v.ids[l.v.name]
	if !ok {
		v.next++
		id = v.next
		v.ids[l.v.name] = id
	}
	if l.neg {
		return -id
	}
	return id
}

// fresh allocates an unnamed helper variable.
func (v *vocab) fresh() int {
	v.next++
	return v.next
}

// clausesRec converts a formula in negation normal form to clauses.
// Disjunctions over nested conjunctions get a helper variable d with
// clauses (not d or conjunct) for every conjunct, and d stands in for
// the conjunction inside the disjunction.
func clausesRec(f Formula, v *vocab) [][]int {
	switch f := f.(type) {
	case lit:
		return [][]int{{v.lit(f)}}
	case and:
		var res [][]int
		for _, sub := range f {
			res = append(res, clausesRec(sub, v)...)
		}
		return res
	case or:
		var res [][]int
		var clause []int
		for _, sub := range f {
			switch sub := sub.(type) {
			case lit:
				clause = append(clause, v.lit(sub))
			case and:
				d := v.fresh()
				clause = append(clause, d)
				for _, conjunct := range sub {
					for _, cc := range clausesRec(conjunct, v) {
						res = append(res, append(cc, -d))
					}
				}
			default:
				panic("formula: disjunction over non-literal, non-conjunction after NNF")
			}
		}
		return append(res, clause)
	case trueConst:
		return nil
	case falseConst:
		// The empty clause: the engine reports it unsatisfiable.
		return [][]int{{}}
	default:
		panic("formula: formula not in NNF")
	}
}
