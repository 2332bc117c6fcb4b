// Package verify re-checks a solver's output against the mathematical
// definitions of its problem, independent of solver internals: it
// reloads the input and output and recomputes every constraint from
// scratch. A violation is reported as an error; callers map that to
// the verifier CLI's exit code 2.
package verify
