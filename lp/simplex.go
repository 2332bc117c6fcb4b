package lp

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// maxIterations bounds pivoting in each phase. Bland's rule guarantees
// termination, so this is a defensive ceiling against a malformed
// Model rather than a tuning knob.
const maxIterations = 10000

// tableau is the augmented simplex tableau: m constraint rows over
// totalCols structural+slack+artificial columns, an RHS column, and a
// trailing objective row of reduced costs. basis[i] is the column
// index of the basic variable in row i.
type tableau struct {
	m, n  int // rows, non-RHS columns
	A     *mat.Dense
	rhs   []float64
	obj   []float64 // reduced costs, length n
	objZ  float64   // negated current objective value (for the active phase)
	basis []int
}

func newTableau(m, n int) *tableau {
	// gonum's mat.NewDense panics given a zero row count; an
	// unconstrained Model (no AddConstraint calls at all) legitimately
	// has m == 0, and every t.A access below is guarded by loops
	// bounded by t.m, so leaving A nil in that case is never observed.
	var a *mat.Dense
	if m > 0 {
		a = mat.NewDense(m, n, nil)
	}
	return &tableau{
		m:     m,
		n:     n,
		A:     a,
		rhs:   make([]float64, m),
		obj:   make([]float64, n),
		basis: make([]int, m),
	}
}

// pivot performs Gauss-Jordan elimination around (row, col), updating
// the objective row and RHS column in lock-step with the constraint
// rows, then records col as row's basic variable.
func (t *tableau) pivot(row, col int) {
	piv := t.A.At(row, col)
	// Normalize the pivot row so the pivot entry becomes 1.
	for j := 0; j < t.n; j++ {
		t.A.Set(row, j, t.A.At(row, j)/piv)
	}
	t.rhs[row] /= piv

	// Eliminate col from every other constraint row.
	for i := 0; i < t.m; i++ {
		if i == row {
			continue
		}
		factor := t.A.At(i, col)
		if factor == 0 {
			continue
		}
		for j := 0; j < t.n; j++ {
			t.A.Set(i, j, t.A.At(i, j)-factor*t.A.At(row, j))
		}
		t.rhs[i] -= factor * t.rhs[row]
	}

	// Eliminate col from the objective row.
	factor := t.obj[col]
	if factor != 0 {
		for j := 0; j < t.n; j++ {
			t.obj[j] -= factor * t.A.At(row, j)
		}
		t.objZ -= factor * t.rhs[row]
	}

	t.basis[row] = col
}

// run iterates simplex pivots to optimality using Bland's rule:
// lowest-index entering column with a negative reduced cost, ties in
// the minimum-ratio test broken by lowest basic-variable index.
func (t *tableau) run() error {
	for iter := 0; iter < maxIterations; iter++ {
		enter := -1
		for j := 0; j < t.n; j++ {
			if t.obj[j] < -Tolerance {
				enter = j
				break
			}
		}
		if enter == -1 {
			return nil // optimal
		}

		leave := -1
		bestRatio := math.Inf(1)
		for i := 0; i < t.m; i++ {
			a := t.A.At(i, enter)
			if a <= Tolerance {
				continue
			}
			ratio := t.rhs[i] / a
			switch {
			case ratio < bestRatio-Tolerance:
				bestRatio = ratio
				leave = i
			case ratio < bestRatio+Tolerance && (leave == -1 || t.basis[i] < t.basis[leave]):
				bestRatio = math.Min(bestRatio, ratio)
				leave = i
			}
		}
		if leave == -1 {
			return ErrUnbounded
		}
		t.pivot(leave, enter)
	}
	return ErrIterationLimit
}

// Solve runs the two-phase simplex method over m and returns the
// optimal Solution, or a Solution with Status == StatusInfeasible if
// phase 1 cannot zero out every artificial variable.
func Solve(m *Model) (Solution, error) {
	if m.NumVars == 0 {
		return Solution{}, ErrNoVariables
	}

	rows := len(m.Constraints)
	nStruct := m.NumVars

	// One slack column per Leq row (unused, i.e. all-zero, on Eq
	// rows); one artificial column per row that needs it.
	slackCol := make([]int, rows) // -1 if the row has no slack column
	nSlack := 0
	for i, c := range m.Constraints {
		if c.Sense == Leq {
			slackCol[i] = nStruct + nSlack
			nSlack++
		} else {
			slackCol[i] = -1
		}
	}

	needsArtificial := make([]bool, rows)
	rowRHS := make([]float64, rows)
	rowSign := make([]float64, rows) // +1 or -1, applied to the row to make RHS >= 0
	for i, c := range m.Constraints {
		rowRHS[i] = c.RHS
		rowSign[i] = 1
		if rowRHS[i] < 0 {
			rowSign[i] = -1
			rowRHS[i] = -rowRHS[i]
		}
		switch c.Sense {
		case Eq:
			needsArtificial[i] = true
		case Leq:
			// The slack's natural coefficient is +1; flipping the
			// row's sign (because RHS was negative) turns it into -1,
			// which can no longer serve as the row's initial basic
			// variable, so an artificial variable is required.
			needsArtificial[i] = rowSign[i] < 0
		}
	}

	artCol := make([]int, rows)
	nArt := 0
	base := nStruct + nSlack
	for i := range m.Constraints {
		if needsArtificial[i] {
			artCol[i] = base + nArt
			nArt++
		} else {
			artCol[i] = -1
		}
	}

	n := nStruct + nSlack + nArt
	t := newTableau(rows, n)

	for i, c := range m.Constraints {
		sign := rowSign[i]
		for j, v := range c.Coeffs {
			t.A.Set(i, j, sign*v)
		}
		if sc := slackCol[i]; sc >= 0 {
			t.A.Set(i, sc, sign)
		}
		t.rhs[i] = rowRHS[i]
		if ac := artCol[i]; ac >= 0 {
			t.A.Set(i, ac, 1)
			t.basis[i] = ac
		} else {
			t.basis[i] = slackCol[i]
		}
	}

	// --- Phase 1: minimize the sum of artificial variables. ---
	if nArt > 0 {
		for j := nStruct + nSlack; j < n; j++ {
			t.obj[j] = 1
		}
		// Reduce the objective row against the initial (artificial)
		// basis so it reports true reduced costs before pivoting.
		for i := 0; i < rows; i++ {
			if artCol[i] < 0 {
				continue
			}
			factor := t.obj[t.basis[i]]
			if factor == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				t.obj[j] -= factor * t.A.At(i, j)
			}
			t.objZ -= factor * t.rhs[i]
		}
		if err := t.run(); err != nil {
			return Solution{}, err
		}
		if -t.objZ > Tolerance {
			return Solution{Status: StatusInfeasible}, nil
		}
		// Drive any artificial variable still basic at zero level out
		// of the basis before phase 2, pivoting on any nonzero entry
		// among the structural/slack columns of its row.
		for i := 0; i < rows; i++ {
			if t.basis[i] < nStruct+nSlack {
				continue
			}
			for j := 0; j < nStruct+nSlack; j++ {
				if math.Abs(t.A.At(i, j)) > Tolerance {
					t.pivot(i, j)
					break
				}
			}
		}
	}

	// --- Phase 2: minimize the real objective over structural and
	// slack columns only; the objective row is rebuilt from scratch
	// and artificial columns are kept out of the basis below. ---
	for j := range t.obj {
		t.obj[j] = 0
	}
	t.objZ = 0
	for j, v := range m.Objective {
		t.obj[j] = v
	}
	for i := 0; i < rows; i++ {
		factor := t.obj[t.basis[i]]
		if factor == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			t.obj[j] -= factor * t.A.At(i, j)
		}
		t.objZ -= factor * t.rhs[i]
	}
	// Artificial columns must never re-enter phase 2's basis: pin
	// their reduced cost positive so Bland's rule never selects them,
	// and clear every nonbasic artificial column so no later pivot can
	// change that pinned reduced cost.
	for j := nStruct + nSlack; j < n; j++ {
		t.obj[j] = math.Abs(t.obj[j]) + 1
		for i := 0; i < rows; i++ {
			if t.basis[i] != j {
				t.A.Set(i, j, 0)
			}
		}
	}
	if err := t.run(); err != nil {
		return Solution{}, err
	}

	x := make([]float64, nStruct)
	for i := 0; i < rows; i++ {
		if b := t.basis[i]; b < nStruct {
			v := t.rhs[i]
			if math.Abs(v) < Tolerance {
				v = 0
			}
			x[b] = v
		}
	}

	slack := make([]float64, rows)
	for i, c := range m.Constraints {
		if c.Sense != Leq {
			continue
		}
		used := 0.0
		for j, coeff := range c.Coeffs {
			used += coeff * x[j]
		}
		s := c.RHS - used
		if math.Abs(s) < Tolerance {
			s = 0
		}
		slack[i] = s
	}

	return Solution{
		Status:    StatusOptimal,
		X:         x,
		Objective: -t.objZ,
		Slack:     slack,
	}, nil
}
