package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"dietary-advisor/pkg/response"
	"dietary-advisor/pkg/validator"

	"github.com/gorilla/mux"
)

// parseID reads a positive integer path variable, writing 400 "Invalid ID" otherwise.
func parseID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		response.Error(w, http.StatusBadRequest, "Invalid ID", nil)
		return 0, false
	}
	return id, true
}

type normalizer interface {
	Normalize()
}

// bindJSON decodes, normalizes and validates a request body. Every violated field is
// reported in one 400 response, including fields whose JSON type did not match.
func bindJSON(w http.ResponseWriter, r *http.Request, cv *validator.CustomValidator, dst normalizer) bool {
	var fieldErrors []validator.FieldError

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			response.ValidationError(w, []validator.FieldError{{
				Field:   "body",
				Message: "Request body must be a valid JSON object",
			}})
			return false
		}
		// The decoder keeps filling the remaining fields after a type mismatch.
		fieldErrors = append(fieldErrors, validator.FieldError{
			Field:   typeErr.Field,
			Message: typeErr.Field + " must be " + describeJSONType(typeErr.Type),
		})
	}

	dst.Normalize()

	if err := cv.Validate(dst); err != nil {
		for _, fe := range cv.FormatValidationErrors(err) {
			if !hasFieldError(fieldErrors, fe.Field) {
				fieldErrors = append(fieldErrors, fe)
			}
		}
	}

	if len(fieldErrors) > 0 {
		response.ValidationError(w, fieldErrors)
		return false
	}
	return true
}

func hasFieldError(fieldErrors []validator.FieldError, field string) bool {
	for _, fe := range fieldErrors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func describeJSONType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Ptr:
		return describeJSONType(t.Elem())
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "a whole number"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	default:
		return "a valid value"
	}
}
