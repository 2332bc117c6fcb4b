package verify

import "errors"

// ErrViolation wraps every constraint failure this package detects; the
// verifier CLIs treat any error from Factory/Belts as a single
// diagnostic line and exit 2.
var ErrViolation = errors.New("constraint violation")
