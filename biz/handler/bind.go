package handler

import (
	"context"

	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/util/resp"
	"venue_tracker/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// bind answers 400 and returns false when req cannot be bound or validated.
func bind(ctx context.Context, c *app.RequestContext, req any) bool {
	err := c.BindAndValidate(req)
	if err == nil {
		return true
	}

	hlog.CtxNoticef(ctx, "BindAndValidate err: %v", err)
	bizErr := errs.ParamError
	if details := validate.Details(err); details != nil {
		bizErr = bizErr.SetDetails(details)
	}
	resp.FailResp(c, bizErr)
	return false
}
