// Package dimacs reads and writes clause sets in the DIMACS CNF
// format, the lingua franca of SAT tooling. Clauses are the signed
// integer slices the scenario engine consumes.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads a DIMACS CNF problem. A few common deviations from the
// strict format are accepted: comment lines may appear anywhere, the
// problem line may be missing, and the final clause may lack its zero
// terminator.
func Parse(r io.Reader) ([][]int, error) {
	var declaredVars, declaredClauses int
	sawHeader := false
	var clauses [][]int
	var clause []int
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if len(line) == 0 || line[0] == 'c' {
			continue
		}
		if line[0] == 'p' {
			if sawHeader {
				return nil, errors.New("dimacs: multiple problem lines")
			}
			if len(clauses) > 0 || len(clause) > 0 {
				return nil, errors.New("dimacs: problem line appears after clauses")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: malformed problem line %q", line)
			}
			var err error
			if declaredVars, err = strconv.Atoi(fields[2]); err != nil || declaredVars < 0 {
				return nil, fmt.Errorf("dimacs: bad variable count %q", fields[2])
			}
			if declaredClauses, err = strconv.Atoi(fields[3]); err != nil || declaredClauses < 0 {
				return nil, fmt.Errorf("dimacs: bad clause count %q", fields[3])
			}
			sawHeader = true
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("dimacs: invalid literal %q", field)
			}
			if n == 0 {
				clauses = append(clauses, clause)
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(clause) > 0 {
		clauses = append(clauses, clause)
	}
	if sawHeader {
		for _, cls := range clauses {
			for _, lit := range cls {
				if lit < 0 {
					lit = -lit
				}
				if lit > declaredVars {
					return nil, fmt.Errorf("dimacs: literal %d exceeds declared variable count %d", lit, declaredVars)
				}
			}
		}
		if len(clauses) != declaredClauses {
			return nil, fmt.Errorf("dimacs: problem line declares %d clauses, found %d", declaredClauses, len(clauses))
		}
	}
	return clauses, nil
}

// Write writes the clause set in DIMACS CNF format. The declared
// variable count is the largest magnitude appearing in any clause.
func Write(w io.Writer, clauses [][]int) error {
	maxVar := 0
	for _, clause := range clauses {
		for _, lit := range clause {
			if lit < 0 {
				lit = -lit
			}
			if lit > maxVar {
				maxVar = lit
			}
		}
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p cnf %d %d\n", maxVar, len(clauses))
	for _, clause := range clauses {
		for _, lit := range clause {
			fmt.Fprintf(bw, "%d ", lit)
		}
		fmt.Fprintln(bw, "0")
	}
	return bw.Flush()
}
