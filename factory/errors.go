package factory

import "errors"

// Sentinel errors returned by Parse. All of them indicate malformed
// input: the caller should exit nonzero with a one-line diagnostic
// rather than attempt to solve.
var (
	// ErrUnknownMachine is returned when a recipe names a machine
	// class absent from the input's "machines" map.
	ErrUnknownMachine = errors.New("factory: recipe references unknown machine class")

	// ErrTargetNotProduced is returned when the target item is not an
	// output of any recipe.
	ErrTargetNotProduced = errors.New("factory: target item is not produced by any recipe")

	// ErrNegativeCoefficient is returned when a recipe's input/output
	// map, the target rate, or a raw supply cap is negative.
	ErrNegativeCoefficient = errors.New("factory: negative rate or coefficient")

	// ErrNonPositiveTime is returned when a recipe's time_s is not
	// strictly positive.
	ErrNonPositiveTime = errors.New("factory: recipe time_s must be positive")

	// ErrNonPositiveCraftsPerMin is returned when a machine class's
	// crafts_per_min is not strictly positive.
	ErrNonPositiveCraftsPerMin = errors.New("factory: machine crafts_per_min must be positive")

	// ErrNegativeMaxMachines is returned when a machine class's
	// max_machines is present and negative.
	ErrNegativeMaxMachines = errors.New("factory: machine max_machines must be non-negative")

	// ErrInvalidModuleLoadout is returned when a recipe's module
	// loadout has speed < -1 or prod < 0.
	ErrInvalidModuleLoadout = errors.New("factory: module loadout requires speed >= -1 and prod >= 0")
)
