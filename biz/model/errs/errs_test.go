package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorEqual(t *testing.T) {
	assert.True(t, ErrorEqual(nil, nil))
	assert.False(t, ErrorEqual(ServerError, nil))
	assert.True(t, ErrorEqual(ParamError, ParamError.SetMsg("name is required")))
	assert.False(t, ErrorEqual(InvalidCredentials, UserNotExist))
}

func TestSetDetails(t *testing.T) {
	e := ParamError.SetDetails(map[string]string{"email": "email"})
	assert.Equal(t, "email", e.Details()["email"])
	assert.Nil(t, ParamError.Details(), "package level error must stay untouched")

	e2 := e.SetMsg("bad")
	assert.Equal(t, "bad", e2.Msg())
	assert.Equal(t, e.Details(), e2.Details())
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  Error
		want int
	}{
		{nil, http.StatusOK},
		{ParamError, http.StatusBadRequest},
		{EmailDuplicated, http.StatusConflict},
		{InvalidCredentials, http.StatusUnauthorized},
		{Unauthorized, http.StatusUnauthorized},
		{UserNotExist, http.StatusNotFound},
		{ServerError.SetErr(errors.New("boom")), http.StatusInternalServerError},
		{New(9_9999, "unknown"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HTTPStatus(c.err))
	}
}

func TestIsDuplicatedErr(t *testing.T) {
	assert.False(t, IsDuplicatedErr(nil))
	assert.False(t, IsDuplicatedErr(errors.New("other")))
	assert.True(t, IsDuplicatedErr(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicatedErr(fmt.Errorf("create: %w", &mysql.MySQLError{Number: 1062})))
	assert.False(t, IsDuplicatedErr(&mysql.MySQLError{Number: 1045}))
	assert.True(t, IsDuplicatedErr(&pgconn.PgError{Code: "23505"}))
}
