// Package factory implements the steady-state production planner: it
// parses a factory problem (items, machine classes, recipes, a target
// rate, and optional raw supply caps), builds the linear program that
// describes it, and solves it with the lp package's two-phase simplex.
//
// Parse converts the JSON envelope into a Problem whose items,
// machines, and recipes are addressed by arena index rather than by
// name: the name↔index bimap lives only in Problem, built once at the
// I/O boundary, and never leaks into the model builder or solver.
//
// Solve runs the model once; if the lp package's phase 1 finds the
// constraints infeasible, Solve rebuilds a fallback model (a free
// variable t replacing the target's fixed rate, maximized) and reports
// max_feasible_target plus bottleneck hints derived from which
// inequality rows are tight in that fallback solution.
package factory
