// Package apperr reúne los errores compartidos por todos los módulos de dominio,
// para que las consultas cruzadas (animals <-> shelters <-> parents) se comparen con errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicate    = errors.New("already exists")
	ErrConflict     = errors.New("conflict")
	ErrBadState     = errors.New("invalid state")
	ErrUnavailable  = errors.New("storage unavailable")
)

var known = []error{ErrNotFound, ErrInvalidInput, ErrDuplicate, ErrConflict, ErrBadState, ErrUnavailable}

// Storage normaliza un error que vino del repositorio:
// los sentinels de dominio pasan tal cual, cualquier otra cosa es "unavailable".
func Storage(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
