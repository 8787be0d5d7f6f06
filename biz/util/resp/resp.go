package resp

import (
	"net/http"

	"venue_tracker/be/biz/model/dto"
	"venue_tracker/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

func respWithErr(c *app.RequestContext, httpCode int, data any, err error) {
	if err == nil {
		c.JSON(httpCode, &dto.CommonResp{
			Success: true,
			Code:    int(errs.Success.Code()),
			Message: errs.Success.Msg(),
			Data:    data,
		})
		return
	}

	if bizErr, ok := err.(errs.Error); ok {
		c.JSON(errs.HTTPStatus(bizErr), &dto.CommonResp{
			Success: false,
			Code:    int(bizErr.Code()),
			Message: bizErr.Msg(),
			Details: bizErr.Details(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, &dto.CommonResp{
		Success: false,
		Code:    int(errs.ServerError.Code()),
		Message: errs.ServerError.Msg(),
	})
}

func SuccessResp(c *app.RequestContext, data any) {
	respWithErr(c, http.StatusOK, data, nil)
}

func CreatedResp(c *app.RequestContext, data any) {
	respWithErr(c, http.StatusCreated, data, nil)
}

// FailResp answers with the status mapped from bizErr.
func FailResp(c *app.RequestContext, bizErr errs.Error) {
	respWithErr(c, 0, nil, bizErr)
}

func AbortWithErr(c *app.RequestContext, bizErr errs.Error, httpCode int) {
	c.AbortWithStatusJSON(httpCode, &dto.CommonResp{
		Success: false,
		Code:    int(bizErr.Code()),
		Message: bizErr.Msg(),
		Details: bizErr.Details(),
	})
}
