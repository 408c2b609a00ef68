package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]int
	}{
		{
			name: "standard",
			input: `c sample problem
p cnf 3 3
1 -2 0
2 -3 0
3 0
`,
			want: [][]int{{1, -2}, {2, -3}, {3}},
		},
		{
			name:  "no header",
			input: "1 2 0\n-1 0\n",
			want:  [][]int{{1, 2}, {-1}},
		},
		{
			name:  "missing final terminator",
			input: "p cnf 2 2\n1 2 0\n-1 -2\n",
			want:  [][]int{{1, 2}, {-1, -2}},
		},
		{
			name:  "clause across lines",
			input: "1 2\n3 0\n",
			want:  [][]int{{1, 2, 3}},
		},
		{
			name: "comment between clauses",
			input: `1 0
c forced
-2 0
`,
			want: [][]int{{1}, {-2}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("clause mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad literal", "1 x 0\n"},
		{"multiple headers", "p cnf 1 1\np cnf 1 1\n1 0\n"},
		{"header after clauses", "1 0\np cnf 1 1\n"},
		{"malformed header", "p cnf 1\n1 0\n"},
		{"wrong format", "p sat 1 1\n1 0\n"},
		{"clause count mismatch", "p cnf 1 2\n1 0\n"},
		{"literal out of range", "p cnf 1 1\n1 2 0\n"},
		{"negative counts", "p cnf -1 1\n1 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Fatalf("expected an error, got clauses %v", got)
			}
		})
	}
}

func TestWriteParseRoundTrip(t *testing.T) {
	clauses := [][]int{{1, -2}, {2, -3}, {3}, {-1, 4}}
	var b strings.Builder
	if err := Write(&b, clauses); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := Parse(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("could not parse written output %q: %v", b.String(), err)
	}
	if diff := cmp.Diff(clauses, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteHeader(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, [][]int{{7, -42}, {42}}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.HasPrefix(b.String(), "p cnf 42 2\n") {
		t.Errorf("unexpected header in %q", b.String())
	}
}
