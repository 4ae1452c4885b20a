package sat

import (
	"log"

	"github.com/rhartert/yagh"
)

// VarOrder maintains the set of candidate decision variables as a min-heap
// keyed by variable ID, so the next decision is always the unassigned
// variable with the smallest identifier, assigned to true. Variables leave
// the heap when popped for a decision and come back via Reinsert when the
// solver unassigns them during backtracking.
type VarOrder struct {
	order   *yagh.IntMap[int]
	numVars int
}

// NewVarOrder returns a VarOrder over numVars candidate variables.
func NewVarOrder(numVars int) *VarOrder {
	vo := &VarOrder{order: yagh.New[int](0)}
	for v := 0; v < numVars; v++ {
		vo.AddVar()
	}
	return vo
}

// AddVar adds a new candidate variable.
func (vo *VarOrder) AddVar() {
	vo.order.GrowBy(1)
	vo.order.Put(vo.numVars, vo.numVars)
	vo.numVars++
}

// Reinsert adds variable v back to the set of candidates. This must be
// called by the solver when v is being unassigned.
func (vo *VarOrder) Reinsert(v int) {
	if !vo.order.Contains(v) {
		vo.order.Put(v, v)
	}
}

// NextDecision returns the next decision literal: the positive literal of
// the smallest unassigned variable. It must only be called while unassigned
// variables remain.
func (vo *VarOrder) NextDecision(t *Trail) Literal {
	for {
		next, ok := vo.order.Pop()
		if !ok {
			log.Fatalln("no unassigned variable left to decide on")
		}
		if t.IsAssigned(next.Elem) {
			continue // already assigned by propagation
		}
		return PositiveLiteral(next.Elem)
	}
}
