package sat

import "testing"

// newFormula builds a formula over nVars variables from DIMACS-style
// clauses and returns the stored clause handles.
func newFormula(nVars int, clauses [][]int) (*Formula, []*Clause) {
	f := NewFormula()
	for i := 0; i < nVars; i++ {
		f.AddVariable()
	}
	stored := make([]*Clause, len(clauses))
	for i, c := range clauses {
		stored[i] = f.AddClause(NewClause(lits(c...)))
	}
	return f, stored
}

func TestPropagate_unitChainToFixpoint(t *testing.T) {
	f, clauses := newFormula(3, [][]int{{1}, {-1, 2}, {-2, 3}})
	trail := NewTrail(3)
	trail.SetDecisionLevel(0)

	if conflict := propagate(f, trail); conflict != nil {
		t.Fatalf("propagate(): want no conflict, got %s", conflict)
	}

	for v := 0; v < 3; v++ {
		if !trail.IsAssigned(v) || !trail.Value(PositiveLiteral(v)) {
			t.Errorf("propagate(): want variable %d assigned true", v+1)
		}
		if got := trail.Level(v); got != 0 {
			t.Errorf("propagate(): want variable %d at level 0, got %d", v+1, got)
		}
		if got := trail.Reason(v); got != clauses[v] {
			t.Errorf("propagate(): want variable %d forced by clause %s, got %v", v+1, clauses[v], got)
		}
	}
}

func TestPropagate_reportsConflictClause(t *testing.T) {
	f, clauses := newFormula(1, [][]int{{1}, {-1}})
	trail := NewTrail(1)
	trail.SetDecisionLevel(0)

	conflict := propagate(f, trail)

	if conflict != clauses[1] {
		t.Errorf("propagate(): want conflict on %s, got %v", clauses[1], conflict)
	}
}

func TestPropagate_agreeingClausesDoNotConflict(t *testing.T) {
	// Both (¬1 ∨ 2) and (¬3 ∨ 2) force variable 2 to true. The first one
	// wins; the second must evaluate as satisfied.
	f, _ := newFormula(3, [][]int{{1}, {3}, {-1, 2}, {-3, 2}})
	trail := NewTrail(3)
	trail.SetDecisionLevel(0)

	if conflict := propagate(f, trail); conflict != nil {
		t.Fatalf("propagate(): want no conflict, got %s", conflict)
	}
	if !trail.Value(PositiveLiteral(1)) {
		t.Error("propagate(): want variable 2 assigned true")
	}
}

func TestPropagate_opposingClausesConflict(t *testing.T) {
	// (¬1 ∨ 2) forces 2 to true, which turns (¬1 ∨ ¬2) into a conflict
	// within the same pass.
	f, clauses := newFormula(2, [][]int{{1}, {-1, 2}, {-1, -2}})
	trail := NewTrail(2)
	trail.SetDecisionLevel(0)

	conflict := propagate(f, trail)

	if conflict != clauses[2] {
		t.Errorf("propagate(): want conflict on %s, got %v", clauses[2], conflict)
	}
}

func TestPropagate_nothingToPropagate(t *testing.T) {
	f, _ := newFormula(2, [][]int{{1, 2}, {-1, -2}})
	trail := NewTrail(2)
	trail.SetDecisionLevel(0)

	if conflict := propagate(f, trail); conflict != nil {
		t.Fatalf("propagate(): want no conflict, got %s", conflict)
	}
	if got := trail.NumAssigned(); got != 0 {
		t.Errorf("propagate(): want no assignment, got %d", got)
	}
}
