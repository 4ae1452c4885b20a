package sat

import (
	"sort"
	"strconv"
	"strings"
)

// Status classifies a clause under a partial assignment.
type Status uint8

const (
	// Satisfied means at least one literal evaluates to true.
	Satisfied Status = iota
	// Unsatisfied means all literals evaluate to false. An unsatisfied
	// clause is a conflict.
	Unsatisfied
	// Unit means exactly one literal is unassigned and all the others
	// evaluate to false.
	Unit
	// Unresolved covers everything else: at least two unassigned literals
	// and none true.
	Unresolved
)

func (st Status) String() string {
	switch st {
	case Satisfied:
		return "satisfied"
	case Unsatisfied:
		return "unsatisfied"
	case Unit:
		return "unit"
	default:
		return "unresolved"
	}
}

// noLiteral is returned as the unit literal of the non-unit statuses.
const noLiteral Literal = -1

// Clause is a disjunction of literals represented as a sorted slice without
// duplicates. Clauses are value objects: once created they are never
// mutated, which keeps them safe to share as trail antecedents. A literal
// and its opposite may both be present (tautology); every operation remains
// correct in that case.
type Clause struct {
	literals []Literal
}

// NewClause returns a clause over the given literals. The input slice is
// copied, sorted, and deduplicated.
func NewClause(literals []Literal) *Clause {
	lits := make([]Literal, len(literals))
	copy(lits, literals)
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })

	j := 0
	for i := 0; i < len(lits); i++ {
		if i > 0 && lits[i] == lits[i-1] {
			continue
		}
		lits[j] = lits[i]
		j++
	}

	return &Clause{literals: lits[:j]}
}

// Literals returns the clause's literals in sorted order. The returned slice
// must not be modified.
func (c *Clause) Literals() []Literal {
	return c.literals
}

// Size returns the number of literals in the clause.
func (c *Clause) Size() int {
	return len(c.literals)
}

// Has returns true if l is one of the clause's literals.
func (c *Clause) Has(l Literal) bool {
	i := sort.Search(len(c.literals), func(i int) bool {
		return c.literals[i] >= l
	})
	return i < len(c.literals) && c.literals[i] == l
}

// Status evaluates the clause under the given trail. The returned literal is
// the unique unassigned literal when the status is Unit and noLiteral
// otherwise.
func (c *Clause) Status(t *Trail) (Status, Literal) {
	nUnassigned := 0
	unit := noLiteral

	for _, l := range c.literals {
		if !t.IsAssigned(l.VarID()) {
			nUnassigned++
			unit = l
			continue
		}
		if t.Value(l) {
			return Satisfied, noLiteral
		}
	}

	switch nUnassigned {
	case 0:
		return Unsatisfied, noLiteral
	case 1:
		return Unit, unit
	default:
		return Unresolved, noLiteral
	}
}

// Compare defines a total order over clauses: shorter clauses first, ties
// broken lexicographically over the sorted literal slices. Two clauses are
// equal (Compare returns 0) if and only if they contain the same set of
// literals.
func (c *Clause) Compare(o *Clause) int {
	if d := len(c.literals) - len(o.literals); d != 0 {
		return d
	}
	for i, l := range c.literals {
		if d := int(l) - int(o.literals[i]); d != 0 {
			return d
		}
	}
	return 0
}

// Equal reports whether both clauses contain the same set of literals.
func (c *Clause) Equal(o *Clause) bool {
	return c.Compare(o) == 0
}

// key returns a canonical representation of the clause used by Formula to
// implement set semantics.
func (c *Clause) key() string {
	sb := strings.Builder{}
	for i, l := range c.literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(l)))
	}
	return sb.String()
}

func (c *Clause) String() string {
	sb := strings.Builder{}
	sb.WriteString("( ")
	for i, l := range c.literals {
		if i > 0 {
			sb.WriteString(" ∨ ")
		}
		sb.WriteString(l.String())
	}
	sb.WriteString(" )")
	return sb.String()
}
