package resp

import (
	"encoding/json"
	"net/http"
	"testing"

	"venue_tracker/be/biz/model/dto"
	"venue_tracker/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, c *app.RequestContext) dto.CommonResp {
	t.Helper()
	var r dto.CommonResp
	assert.NoError(t, json.Unmarshal(c.Response.Body(), &r))
	return r
}

func TestSuccessResp(t *testing.T) {
	c := app.NewContext(0)
	SuccessResp(c, map[string]string{"id": "u1"})
	assert.Equal(t, http.StatusOK, c.Response.StatusCode())
	r := decode(t, c)
	assert.True(t, r.Success)
	assert.Equal(t, 0, r.Code)
}

func TestCreatedResp(t *testing.T) {
	c := app.NewContext(0)
	CreatedResp(c, nil)
	assert.Equal(t, http.StatusCreated, c.Response.StatusCode())
}

func TestFailResp(t *testing.T) {
	c := app.NewContext(0)
	FailResp(c, errs.ParamError.SetDetails(map[string]string{"email": "email"}))
	assert.Equal(t, http.StatusBadRequest, c.Response.StatusCode())
	r := decode(t, c)
	assert.False(t, r.Success)
	assert.Equal(t, int(errs.ParamError.Code()), r.Code)
	assert.Equal(t, "email", r.Details["email"])

	c = app.NewContext(0)
	FailResp(c, errs.EmailDuplicated)
	assert.Equal(t, http.StatusConflict, c.Response.StatusCode())
}

func TestAbortWithErr(t *testing.T) {
	c := app.NewContext(0)
	AbortWithErr(c, errs.Unauthorized, http.StatusUnauthorized)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, c.Response.StatusCode())
	assert.Equal(t, int(errs.Unauthorized.Code()), decode(t, c).Code)
}
