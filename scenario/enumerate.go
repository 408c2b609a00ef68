package scenario

import "errors"

// Enumerate finds every scenario of the clause set, in the backend's
// deterministic order, and returns how many there are. Each scenario
// found is blocked by appending its negation as a clause before
// searching again, so the cost grows with the number of scenarios.
//
// If models is non-nil, every scenario is sent on it as it is found;
// the channel is closed before Enumerate returns. Pass nil when only
// the count matters.
func (e *Engine) Enumerate(clauses [][]int, models chan<- []int) (int, error) {
	if models != nil {
		defer close(models)
	}
	working := make([][]int, len(clauses), len(clauses)+1)
	copy(working, clauses)
	count := 0
	for {
		scenario, err := e.Solve(working)
		if errors.Is(err, ErrUnsatisfiable) {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		count++
		if models != nil {
			models <- scenario
		}
		// The blocking clause demands that at least one variable flips.
		// For the empty scenario it is the empty clause, which correctly
		// ends the enumeration: the empty problem has exactly one model.
		blocking := make([]int, len(scenario))
		for i, lit := range scenario {
			blocking[i] = -lit
		}
		working = append(working, blocking)
	}
}
