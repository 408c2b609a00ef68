// Package formula provides combinators for boolean formulas over named
// predicates and compiles them to the signed-integer clause sets the
// scenario engine consumes.
//
// The surrounding authorization layer talks about predicates by name
// ("owner", "admin", "published"); this package maps those names to
// variable identifiers, turns arbitrary formulas into conjunctive
// normal form, and translates solved scenarios back to name->bool
// models. Compilation may introduce unnamed helper variables to keep
// the clause count linear; these never appear in the returned models.
package formula

import (
	"fmt"
	"strings"
)

// A Formula is any boolean formula over named predicates, not
// necessarily in normal form.
type Formula interface {
	nnf() Formula
	String() string
	// Eval evaluates the formula under the given model. It panics if
	// the model lacks a binding for a referenced predicate.
	Eval(model map[string]bool) bool
}

// True is the constant denoting a tautology.
var True Formula = trueConst{}

type trueConst struct{}

func (trueConst) nnf() Formula              { return True }
func (trueConst) String() string            { return "true" }
func (trueConst) Eval(map[string]bool) bool { return true }

// False is the constant denoting a contradiction.
var False Formula = falseConst{}

type falseConst struct{}

func (falseConst) nnf() Formula              { return False }
func (falseConst) String() string            { return "false" }
func (falseConst) Eval(map[string]bool) bool { return false }

// Var builds a formula consisting of the single named predicate.
func Var(name string) Formula {
	return variable{name: name}
}

type variable struct {
	name string
}

func (v variable) nnf() Formula   { return lit{v: v} }
func (v variable) String() string { return v.name }

func (v variable) Eval(model map[string]bool) bool {
	b, ok := model[v.name]
	if !ok {
		panic(fmt.Sprintf("formula: model lacks binding for %q", v.name))
	}
	return b
}

// A lit is a predicate or its negation; formulas in negation normal
// form are built from lits, conjunctions and disjunctions only.
type lit struct {
	v   variable
	neg bool
}

func (l lit) nnf() Formula { return l }

func (l lit) String() string {
	if l.neg {
		return "not(" + l.v.name + ")"
	}
	return l.v.name
}

func (l lit) Eval(model map[string]bool) bool {
	b := l.v.Eval(model)
	if l.neg {
		return !b
	}
	return b
}

// Not negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) nnf() Formula {
	switch f := n[0].(type) {
	case variable:
		return lit{v: f, neg: true}
	case lit:
		f.neg = !f.neg
		return f
	case not:
		return f[0].nnf()
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}
		}
		return or(subs).nnf()
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = not{sub}
		}
		return and(subs).nnf()
	case trueConst:
		return False
	case falseConst:
		return True
	default:
		panic("formula: invalid formula type")
	}
}

func (n not) String() string {
	return "not(" + n[0].String() + ")"
}

func (n not) Eval(model map[string]bool) bool {
	return !n[0].Eval(model)
}

// And builds the conjunction of the subformulas. And() is True.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) nnf() Formula {
	var res and
	for _, s := range a {
		switch sub := s.nnf().(type) {
		case and: // flatten nested conjunctions
			res = append(res, sub...)
		case trueConst: // neutral element
		case falseConst:
			return False
		default:
			res = append(res, sub)
		}
	}
	switch len(res) {
	case 0:
		return True
	case 1:
		return res[0]
	}
	return res
}

func (a and) String() string {
	return junctionString("and", a)
}

func (a and) Eval(model map[string]bool) bool {
	res := true
	for _, s := range a {
		res = s.Eval(model) && res
	}
	return res
}

// Or builds the disjunction of the subformulas. Or() is False.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) nnf() Formula {
	var res or
	for _, s := range o {
		switch sub := s.nnf().(type) {
		case or: // flatten nested disjunctions
			res = append(res, sub...)
		case falseConst: // neutral element
		case trueConst:
			return True
		default:
			res = append(res, sub)
		}
	}
	switch len(res) {
	case 0:
		return False
	case 1:
		return res[0]
	}
	return res
}

func (o or) String() string {
	return junctionString("or", o)
}

func (o or) Eval(model map[string]bool) bool {
	res := false
	for _, s := range o {
		res = s.Eval(model) || res
	}
	return res
}

func junctionString(op string, subs []Formula) string {
	strs := make([]string, len(subs))
	for i, f := range subs {
		strs[i] = f.String()
	}
	return op + "(" + strings.Join(strs, ", ") + ")"
}

// Implies states that f1 being true forces f2 to be true.
func Implies(f1, f2 Formula) Formula {
	return or{not{f1}, f2}
}

// Eq states that f1 and f2 have the same truth value.
func Eq(f1, f2 Formula) Formula {
	return and{or{not{f1}, f2}, or{f1, not{f2}}}
}

// Xor states that exactly one of f1 and f2 is true.
func Xor(f1, f2 Formula) Formula {
	return and{or{not{f1}, not{f2}}, or{f1, f2}}
}

// AtMostOne states that no two of the named predicates are true at the
// same time, using the pairwise encoding. AtMostOne() is True.
func AtMostOne(names ...string) Formula {
	var res []Formula
	for i := 0; i < len(names)-1; i++ {
		for j := i + 1; j < len(names); j++ {
			res = append(res, Or(Not(Var(names[i])), Not(Var(names[j]))))
		}
	}
	return And(res...)
}

// ExactlyOne states that exactly one of the named predicates is true.
// ExactlyOne() is False: there is no predicate to be the true one.
func ExactlyOne(names ...string) Formula {
	forms := make([]Formula, len(names))
	for i, n := range names {
		forms[i] = Var(n)
	}
	return And(Or(forms...), AtMostOne(names...))
}
