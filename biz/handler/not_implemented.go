package handler

import (
	"context"

	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// NotImplemented backs the resource routes that are reserved but not built yet.
func NotImplemented(ctx context.Context, c *app.RequestContext) {
	hlog.CtxInfof(ctx, "not implemented: %s %s", c.Method(), c.Path())
	resp.FailResp(c, errs.NotImplemented)
}

func Health(ctx context.Context, c *app.RequestContext) {
	resp.SuccessResp(c, map[string]string{"status": "ok"})
}
