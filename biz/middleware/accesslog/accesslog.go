package accesslog

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/logger/accesslog"
)

const format = "${status} ${latency} ${method} ${path} ${queryParams} ${ip}"

// New logs one line per request through hlog. Requests to skipPaths are
// served without an access log line.
func New(skipPaths ...string) app.HandlerFunc {
	logged := accesslog.New(
		accesslog.WithAccessLogFunc(hlog.CtxInfof),
		accesslog.WithFormat(format),
	)
	if len(skipPaths) == 0 {
		return logged
	}

	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return func(ctx context.Context, c *app.RequestContext) {
		if _, ok := skip[string(c.Path())]; ok {
			c.Next(ctx)
			return
		}
		logged(ctx, c)
	}
}
