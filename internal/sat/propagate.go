package sat

// propagate applies unit propagation until fixpoint. Each pass scans every
// clause of the formula in insertion order: an unsatisfied clause is
// returned as a conflict immediately, and every unit clause assigns its
// unassigned literal right away with the clause as antecedent, at the
// current decision level. Passes repeat as long as one of them assigned
// something. The scan order is stable, which makes propagation reproducible
// across runs on the same input.
//
// A nil return means the formula has no unsatisfied clause and no unit
// clause left under the trail.
func propagate(f *Formula, t *Trail) *Clause {
	for {
		assigned := false
		for _, c := range f.Clauses() {
			// Clauses are re-evaluated on the fly, so a clause made unit
			// or satisfied by an assignment earlier in this pass is seen
			// with its current status, never a stale one. Two clauses
			// forcing the same variable to the same value therefore do not
			// clash: the second one evaluates as satisfied. If they force
			// opposite values, the second one evaluates as unsatisfied and
			// is reported as the conflict.
			st, unit := c.Status(t)
			switch st {
			case Satisfied, Unresolved:
				continue
			case Unit:
				t.Assign(unit.VarID(), unit.IsPositive(), c)
				assigned = true
			case Unsatisfied:
				return c
			}
		}
		if !assigned {
			return nil
		}
	}
}
