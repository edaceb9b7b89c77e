package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/immobilier_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	locBody  = "body"
	locQuery = "query"
)

var setupValidatorOnce sync.Once

// setupValidator makes validation errors report the json/form field name
// instead of the Go struct field name.
func setupValidator() {
	setupValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// abortWithValidationError answers 422 with one item per rejected field.
func abortWithValidationError(c *gin.Context, err error, source string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, toValidationErrorResponse(err, source))
}

func toValidationErrorResponse(err error, source string) dto.ValidationErrorResponse {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		items := make([]dto.ValidationErrorItem, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msg, typ := describeFieldError(fe)
			items = append(items, dto.ValidationErrorItem{Loc: []string{source, fe.Field()}, Msg: msg, Type: typ})
		}
		return dto.ValidationErrorResponse{Detail: items}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return dto.ValidationErrorResponse{Detail: []dto.ValidationErrorItem{{
			Loc:  []string{source, typeErr.Field},
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type.Kind()),
			Type: "type_error",
		}}}
	}

	if errors.Is(err, io.EOF) {
		return dto.ValidationErrorResponse{Detail: []dto.ValidationErrorItem{{
			Loc: []string{source}, Msg: "field required", Type: "value_error.missing",
		}}}
	}

	return dto.ValidationErrorResponse{Detail: []dto.ValidationErrorItem{{
		Loc: []string{source}, Msg: err.Error(), Type: "value_error",
	}}}
}

func describeFieldError(fe validator.FieldError) (string, string) {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "field required", "value_error.missing"
	case "email":
		return "value is not a valid email address", "value_error.email"
	case "max":
		if isString {
			return fmt.Sprintf("ensure this value has at most %s characters", fe.Param()), "value_error.any_str.max_length"
		}
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param()), "value_error.number.not_le"
	case "min":
		if isString {
			return fmt.Sprintf("ensure this value has at least %s characters", fe.Param()), "value_error.any_str.min_length"
		}
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param()), "value_error.number.not_ge"
	default:
		return fe.Error(), "value_error." + fe.Tag()
	}
}

func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, dto.ErrorResponse{Detail: detail})
}
