package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"pet-shelter/internal/domain/apperr"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// alias: handle de chat (ej. "tg:1001"); sin espacios ni vacío
	_ = v.RegisterValidation("alias", validateAlias)
	// notblank: no acepta strings que solo tienen espacios
	_ = v.RegisterValidation("notblank", validateNotBlank)

	return &Validator{validate: v}
}

var std = New()

// Struct valida i y devuelve un error que envuelve apperr.ErrInvalidInput.
func (v *Validator) Struct(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: field %s failed %q", apperr.ErrInvalidInput, strings.ToLower(f.Field()), f.Tag())
		}
		return fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	return nil
}

// DecodeJSON decodifica el body estricto (sin campos desconocidos) y valida con el validador por defecto.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json", apperr.ErrInvalidInput)
	}
	return std.Struct(dst)
}

func validateAlias(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.TrimSpace(s) == "" {
		return false
	}
	return !strings.ContainsAny(s, " \t\r\n/")
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
