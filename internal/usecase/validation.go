package usecase

import (
	"errors"
	"math"
	"reflect"
	"unicode"
	"unicode/utf8"

	"paint_quote/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		r, size := utf8.DecodeRuneInString(f.Name)
		return string(unicode.ToLower(r)) + f.Name[size:]
	})
	return v
}

// validateInput checks required fields and a positive, finite area. It returns an
// *entities.ValidationError naming every offending field.
func validateInput(in entities.QuotationInput) error {
	var fields []string
	if err := inputValidator.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
	}
	if (math.IsNaN(in.Area) || math.IsInf(in.Area, 0)) && !contains(fields, "area") {
		fields = append(fields, "area")
	}
	if len(fields) > 0 {
		return &entities.ValidationError{Fields: fields}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
