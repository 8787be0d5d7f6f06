package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=3"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, Struct(&sample{Email: "ann@x.com", Name: "Ann"}))
	assert.NoError(t, Struct(nil))
	assert.NoError(t, Struct((*sample)(nil)))

	err := Struct(&sample{Email: "not-an-email", Name: "Annabel"})
	assert.Error(t, err)

	details := Details(err)
	assert.Equal(t, "email", details["email"])
	assert.Equal(t, "max=3", details["name"])
}

func TestDetails_NotValidationError(t *testing.T) {
	assert.Nil(t, Details(errors.New("other")))
	assert.Nil(t, Details(nil))
}

func TestValidateTag(t *testing.T) {
	assert.Equal(t, "validate", Default().ValidateTag())
	assert.NotNil(t, Default().Engine())
}

type secret struct {
	Name     string `json:"name" validate:"required,notblank"`
	Password string `json:"password" validate:"required,maxbytes=8"`
}

func TestMaxBytes(t *testing.T) {
	assert.NoError(t, Struct(&secret{Name: "Ann", Password: "12345678"}))
	assert.NoError(t, Struct(&secret{Name: "Ann", Password: strings.Repeat("é", 4)}))

	err := Struct(&secret{Name: "Ann", Password: strings.Repeat("é", 5)})
	assert.Error(t, err)
	assert.Equal(t, "maxbytes=8", Details(err)["password"])
}

func TestNotBlank(t *testing.T) {
	err := Struct(&secret{Name: " \t ", Password: "p"})
	assert.Error(t, err)
	assert.Equal(t, "notblank", Details(err)["name"])
}
