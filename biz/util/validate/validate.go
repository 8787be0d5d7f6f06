package validate

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const tagName = "validate"

var (
	once sync.Once
	std  *Validator
)

// Validator adapts go-playground/validator to hertz's binding.StructValidator.
type Validator struct {
	v *validator.Validate
}

func Default() *Validator {
	once.Do(func() {
		v := validator.New()
		v.SetTagName(tagName)
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("maxbytes", maxBytes)
		_ = v.RegisterValidation("notblank", notBlank)
		std = &Validator{v: v}
	})
	return std
}

func (v *Validator) ValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	val := reflect.ValueOf(obj)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}
	return v.v.Struct(obj)
}

func (v *Validator) Engine() interface{} {
	return v.v
}

func (v *Validator) ValidateTag() string {
	return tagName
}

// Struct validates obj with the shared validator.
func Struct(obj interface{}) error {
	return Default().ValidateStruct(obj)
}

// Details flattens validation failures into field -> failed rule. Errors that
// are not validation failures yield nil.
func Details(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[fe.Field()] = rule
	}
	return details
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query", "path"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// maxBytes bounds the byte length of a string; max= counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	return len(f.String()) <= limit
}

func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(f.String()) != ""
}
