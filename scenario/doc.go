// Package scenario decides whether a set of authorization conditions,
// expressed as boolean clauses over numbered predicates, admits a
// consistent truth assignment, and produces one such assignment (a
// scenario) when it does.
//
// Clauses use the usual signed-integer literal encoding: the magnitude
// of a literal identifies a variable, the sign its required polarity,
// so the clause [1, -2] reads "variable 1 is true or variable 2 is
// false". A clause is the disjunction of its literals and the clause
// set is the conjunction of its clauses. Scenarios reuse the same
// encoding, one literal per variable in ascending variable order, so a
// scenario can be negated and fed back as a clause to look for further
// scenarios; Enumerate does exactly that.
//
// Two interchangeable backends implement the search. Logic is a pure
// backtracking search built on the generic finite-domain solver from
// package csp; it is simple, dependency-free and fast enough for the
// variable counts authorization problems produce. Gini hands the
// problem to the external gini SAT solver and scales far beyond that.
// Both honor the same contract: a deterministic scenario, or
// ErrUnsatisfiable.
package scenario
