package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"sprintsync.app/retro/internal/model"
)

var registerOnce sync.Once

// RegisterValidators installs the retro_category rule on gin's validator and
// makes field errors report JSON names. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		err = v.RegisterValidation("retro_category", func(fl validator.FieldLevel) bool {
			return model.Category(fl.Field().String()).Valid()
		})
	})
	return err
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// BindingErrors turns a ShouldBindJSON error into field-level messages.
func BindingErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "malformed JSON body"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be a positive id"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "retro_category":
		return `must be one of "What Went Well", "What Didn't Go Well", "Suggestions"`
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
