package sat

import "log"

// analyze derives a learnt clause from a conflict by resolution and picks
// the level to backjump to. It returns (-1, nil) when the conflict occurred
// at level 0, in which case the formula is unsatisfiable.
//
// The learnt clause starts as the conflict clause and is repeatedly resolved
// with the antecedents of the variables forced at the current decision
// level, walking the trail backwards, until a single literal of the current
// level remains: the first unique implication point. The resolvent variable
// always appears with one polarity in the learnt clause and the opposite one
// in the antecedent; an antecedent violating that is a broken trail
// invariant, as is running out of forced variables with more than one
// current-level literal left, and both are fatal. The walk visits each
// forced variable at most once, so the resolution loop is bounded.
//
// The backjump level is the deepest decision level among the learnt clause's
// other literals (0 if there are none). Backtracking there leaves exactly
// the implication-point literal unassigned, so the learnt clause is unit and
// the next propagation forces the flipped literal, which guarantees search
// progress.
func analyze(t *Trail, conflict *Clause, seen *ResetSet) (int, *Clause) {
	d := t.DecisionLevel()
	if d <= 0 {
		return -1, nil
	}

	lits := map[Literal]struct{}{}
	seen.Clear()
	nCurrent := 0 // variables of level d present in lits

	add := func(l Literal) {
		if _, ok := lits[l]; ok {
			return
		}
		lits[l] = struct{}{}
		if v := l.VarID(); !seen.Contains(v) {
			seen.Add(v)
			if t.Level(v) == d {
				nCurrent++
			}
		}
	}
	for _, l := range conflict.Literals() {
		add(l)
	}

	forced := t.ForcedAtLevel(d)
	for i := len(forced) - 1; i >= 0 && nCurrent > 1; i-- {
		v := forced[i]
		pos, neg := PositiveLiteral(v), NegativeLiteral(v)

		resolvent := noLiteral
		if _, ok := lits[pos]; ok {
			resolvent = pos
		} else if _, ok := lits[neg]; ok {
			resolvent = neg
		} else {
			continue
		}

		antecedent := t.Reason(v)
		if !antecedent.Has(resolvent.Opposite()) {
			log.Fatalf("antecedent %s of variable %d has no resolvent with the learnt clause", antecedent, v+1)
		}

		// Resolve on v: merge the antecedent's literals and drop both
		// polarities of v.
		for _, l := range antecedent.Literals() {
			if l.VarID() != v {
				add(l)
			}
		}
		delete(lits, pos)
		delete(lits, neg)
		nCurrent--
	}
	if nCurrent != 1 {
		log.Fatalf("conflict analysis left %d literals at level %d", nCurrent, d)
	}

	learnt := make([]Literal, 0, len(lits))
	backtrackLevel := 0
	for l := range lits {
		learnt = append(learnt, l)
		if level := t.Level(l.VarID()); level != d && level > backtrackLevel {
			backtrackLevel = level
		}
	}

	return backtrackLevel, NewClause(learnt)
}
