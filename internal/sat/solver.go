package sat

import "time"

// Solver decides the satisfiability of a CNF formula using conflict-driven
// clause learning: unit propagation to fixpoint, branching on the smallest
// unassigned variable, conflict analysis by resolution, and
// non-chronological backtracking to the level where the learnt clause
// becomes unit.
type Solver struct {
	formula *Formula
	trail   *Trail
	order   *VarOrder

	// Shared by operations that need to put variables in a set and empty
	// that set efficiently.
	seen *ResetSet

	// Search statistics.
	TotalDecisions    int64
	TotalConflicts    int64
	TotalPropagations int64
	TotalLearnts      int64
	startTime         time.Time

	// Stop conditions.
	hasStopCond bool
	maxConflict int64
	timeout     time.Duration
}

type Options struct {
	// MaxConflicts stops the search after this many conflicts. Negative
	// means no limit.
	MaxConflicts int64

	// Timeout stops the search after this much time. Negative means no
	// limit. The timeout is only checked between driver iterations.
	Timeout time.Duration
}

var DefaultOptions = Options{
	MaxConflicts: -1,
	Timeout:      -1,
}

// NewDefaultSolver returns a solver configured with default options. This is
// equivalent to calling NewSolver with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

func NewSolver(ops Options) *Solver {
	s := &Solver{
		formula:     NewFormula(),
		trail:       NewTrail(0),
		order:       NewVarOrder(0),
		seen:        NewResetSet(0),
		maxConflict: -1,
		timeout:     -1,
	}

	if ops.MaxConflicts >= 0 {
		s.hasStopCond = true
		s.maxConflict = ops.MaxConflicts
	}
	if ops.Timeout >= 0 {
		s.hasStopCond = true
		s.timeout = ops.Timeout
	}

	return s
}

func (s *Solver) shouldStop() bool {
	if !s.hasStopCond {
		return false
	}
	if s.maxConflict >= 0 && s.maxConflict <= s.TotalConflicts {
		return true
	}
	if s.timeout >= 0 && s.timeout <= time.Since(s.startTime) {
		return true
	}

	return false
}

func (s *Solver) NumVariables() int {
	return s.formula.NumVariables()
}

// Formula returns the solver's formula, including any learnt clauses.
func (s *Solver) Formula() *Formula {
	return s.formula
}

// AddVariable declares a new variable and returns its ID.
func (s *Solver) AddVariable() int {
	v := s.formula.AddVariable()
	s.trail.Expand()
	s.order.AddVar()
	s.seen.Expand()
	return v
}

// AddClause adds a clause over the given literals, declaring any variable
// the clause mentions that has not been declared yet. Clauses added after a
// call to Solve take effect at the next call.
func (s *Solver) AddClause(literals []Literal) error {
	c := NewClause(literals)
	for _, l := range c.Literals() {
		for l.VarID() >= s.NumVariables() {
			s.AddVariable()
		}
	}
	s.formula.AddClause(c)
	return nil
}

// Solve decides the formula. It returns True (SAT, a model is available via
// Model), False (UNSAT), or Unknown if a stop condition interrupted the
// search. The search always starts from an empty trail; learnt clauses are
// kept across calls.
func (s *Solver) Solve() LBool {
	s.startTime = time.Now()
	s.trail.Clear()
	for v := 0; v < s.NumVariables(); v++ {
		s.order.Reinsert(v)
	}

	// Propagations implied without any decision live at level 0.
	s.trail.SetDecisionLevel(0)
	if conflict := s.propagate(); conflict != nil {
		return False
	}

	for s.trail.NumAssigned() < s.NumVariables() {
		if s.shouldStop() {
			return Unknown
		}

		lit := s.order.NextDecision(s.trail)
		s.TotalDecisions++
		s.trail.SetDecisionLevel(s.trail.DecisionLevel() + 1)
		s.trail.Assign(lit.VarID(), lit.IsPositive(), nil)

		for {
			conflict := s.propagate()
			if conflict == nil {
				break
			}
			s.TotalConflicts++

			level, learnt := analyze(s.trail, conflict, s.seen)
			if level < 0 {
				return False
			}

			s.formula.AddClause(learnt)
			s.TotalLearnts++
			for _, v := range s.trail.Backtrack(level) {
				s.order.Reinsert(v)
			}
			s.trail.SetDecisionLevel(level)
			// The learnt clause is unit at this level: the next propagation
			// forces its remaining literal before any new decision.
		}
	}

	return True
}

func (s *Solver) propagate() *Clause {
	before := s.trail.NumAssigned()
	conflict := propagate(s.formula, s.trail)
	s.TotalPropagations += int64(s.trail.NumAssigned() - before)
	return conflict
}

// Model returns the satisfying assignment found by the last successful
// Solve, keyed by external (1-based) variable identifiers.
func (s *Solver) Model() map[int]bool {
	model := make(map[int]bool, s.trail.NumAssigned())
	for v, value := range s.trail.Model() {
		model[v+1] = value
	}
	return model
}
