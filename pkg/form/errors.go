package form

import "errors"

var (
	// ErrTooManyEnvVars is returned when adding past the env list limit.
	ErrTooManyEnvVars = errors.New("form: environment variable limit reached")
	// ErrLastEnvVar is returned when removing the only remaining env row.
	ErrLastEnvVar = errors.New("form: cannot remove the last environment variable")
	// ErrEnvIndex is returned for an out-of-range env row index.
	ErrEnvIndex = errors.New("form: environment variable index out of range")
	// ErrUnknownField is returned by Set for an unrecognised field name.
	ErrUnknownField = errors.New("form: unknown field")
)
