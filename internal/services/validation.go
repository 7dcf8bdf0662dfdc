package services

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
)

// FieldError describes why a single input field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a request payload fails validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64:
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		}
		return true
	})
	v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})
	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})

	return v
}

// validateStruct runs the struct tags of s and converts failures into a
// *ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
	}
	return ve
}

const nulMessage = "must not contain NUL characters"

// appendFieldError adds fe to the *ValidationError in err, creating one when
// err is nil. Other errors are returned unchanged.
func appendFieldError(err error, fe FieldError) error {
	if err == nil {
		return &ValidationError{Fields: []FieldError{fe}}
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		ve.Fields = append(ve.Fields, fe)
		return ve
	}
	return err
}

// fieldPath drops the struct name from a namespace such as
// "CreateDestinationInput.coordinates.lat".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "finite":
		return "must be a finite number"
	case "category":
		return "must be one of " + categoryList()
	case "nonul":
		return nulMessage
	}
	return "is invalid"
}

func categoryList() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
