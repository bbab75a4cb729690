package form

import (
	"fmt"

	"github.com/goliatone/go-deploybutton/pkg/model"
	"github.com/goliatone/go-deploybutton/pkg/validation"
)

// Env returns a copy of the env rows.
func (f *Form) Env() []model.EnvVar {
	out := make([]model.EnvVar, len(f.env))
	copy(out, f.env)
	return out
}

// EnvError returns the list-level env message.
func (f *Form) EnvError() string {
	return f.envError
}

// EnvIndex returns the index of the row with id, or -1.
func (f *Form) EnvIndex(id string) int {
	for i, row := range f.env {
		if row.ID == id {
			return i
		}
	}
	return -1
}

// CanRemoveEnv reports whether a row may be removed.
func (f *Form) CanRemoveEnv() bool {
	return len(f.env) > 1
}

// CanAddEnv reports whether another row fits under the limit.
func (f *Form) CanAddEnv() bool {
	return len(f.env) < validation.MaxEnvVars
}

// AddEnv appends an empty row with a fresh id. At the limit the list-level
// message is set and ErrTooManyEnvVars returned.
func (f *Form) AddEnv() (model.EnvVar, error) {
	if !f.CanAddEnv() {
		f.envError = validation.MsgEnvLimit
		return model.EnvVar{}, ErrTooManyEnvVars
	}
	row := model.EnvVar{ID: f.newID()}
	f.edit(func() {
		f.env = append(f.env, row)
	})
	return row, nil
}

// RemoveEnv deletes the row at index.
func (f *Form) RemoveEnv(index int) error {
	if index < 0 || index >= len(f.env) {
		return fmt.Errorf("%w: %d", ErrEnvIndex, index)
	}
	if !f.CanRemoveEnv() {
		return ErrLastEnvVar
	}
	f.edit(func() {
		next := make([]model.EnvVar, 0, len(f.env)-1)
		next = append(next, f.env[:index]...)
		next = append(next, f.env[index+1:]...)
		f.env = next
	})
	return nil
}

// UpdateEnv stores value at index and returns the key validator's message.
// The value is kept even when invalid.
func (f *Form) UpdateEnv(index int, value string) (string, error) {
	if index < 0 || index >= len(f.env) {
		return "", fmt.Errorf("%w: %d", ErrEnvIndex, index)
	}
	msg := validation.EnvKey(value)
	f.edit(func() {
		f.env[index].Value = value
		f.env[index].Error = msg
	})
	return msg, nil
}

// SetEnv replaces the rows with keys, one row per key. An empty list leaves
// one blank row. Keys past the limit are dropped and reported through the
// list-level message.
func (f *Form) SetEnv(keys []string) error {
	if len(keys) == 0 {
		keys = []string{""}
	}
	var overflow error
	if len(keys) > validation.MaxEnvVars {
		keys = keys[:validation.MaxEnvVars]
		overflow = ErrTooManyEnvVars
	}
	f.edit(func() {
		rows := make([]model.EnvVar, len(keys))
		for i, key := range keys {
			rows[i] = model.EnvVar{ID: f.newID(), Value: key, Error: validation.EnvKey(key)}
		}
		f.env = rows
	})
	if overflow != nil {
		f.envError = validation.MsgEnvLimit
	}
	return overflow
}
