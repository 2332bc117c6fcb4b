package lp

// Sense is the relational operator of a Constraint.
type Sense int

const (
	// Eq requires the row to hold with equality.
	Eq Sense = iota
	// Leq requires the row's weighted sum to be at most RHS.
	Leq
)

// Constraint is one row of the model: Σ Coeffs[j]·x_j {=,≤} RHS.
// Coeffs is sparse (variable index → coefficient); omitted indices are
// zero. Label is a diagnostic name for the row (e.g.
// "machine:furnace", "raw:iron_ore"); it plays no role in solving and
// is not copied into the Solution, whose Slack is indexed by row.
type Constraint struct {
	Coeffs map[int]float64
	Sense  Sense
	RHS    float64
	Label  string
}

// Model is an arena of continuous variables x_j >= 0 plus the rows and
// objective built over them. Variables are referenced by their arena
// index; any name↔index bimap is the caller's responsibility to keep
// at its own I/O boundary.
type Model struct {
	NumVars     int
	Constraints []Constraint
	Objective   []float64 // length NumVars; minimized
}

// NewModel returns an empty Model with numVars variables and a
// zero objective.
func NewModel(numVars int) *Model {
	return &Model{
		NumVars:   numVars,
		Objective: make([]float64, numVars),
	}
}

// AddVar appends a fresh variable and returns its index.
func (m *Model) AddVar() int {
	m.NumVars++
	m.Objective = append(m.Objective, 0)
	return m.NumVars - 1
}

// AddConstraint appends a row to the model.
func (m *Model) AddConstraint(c Constraint) {
	m.Constraints = append(m.Constraints, c)
}

// SetObjective replaces the minimized objective coefficients. coeffs
// must have length NumVars.
func (m *Model) SetObjective(coeffs []float64) {
	m.Objective = append([]float64(nil), coeffs...)
}

// Status classifies the outcome of Solve.
type Status int

const (
	// StatusOptimal means phase 2 converged to a finite optimum.
	StatusOptimal Status = iota
	// StatusInfeasible means phase 1 could not drive every artificial
	// variable to zero — the Model's constraints admit no solution.
	StatusInfeasible
)

// Solution is the result of Solve.
type Solution struct {
	Status    Status
	X         []float64 // length NumVars, clamped to 0 below Tolerance
	Objective float64
	// Slack holds, per Constraint (same order as Model.Constraints),
	// the row's slack: RHS - Σ Coeffs[j]·x_j for Leq rows (0 at a
	// tight row), and exactly 0 for Eq rows.
	Slack []float64
}

// Tolerance is the absolute numeric tolerance used throughout the
// solver: pivot tests, feasibility checks, and the clamp applied to
// near-zero primal values before they are reported.
const Tolerance = 1e-9
