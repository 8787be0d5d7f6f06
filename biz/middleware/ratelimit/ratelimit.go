package ratelimit

import (
	"context"
	"net/http"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/middleware/jwt"
	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/util/interceptor"
	"venue_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// DefaultPath marks the rule applied to paths that have no rule of their own.
const DefaultPath = "*"

type rule struct {
	interceptor *interceptor.Interceptor
	byUser      bool
}

// New builds the client ip limiter from the rules without by_user.
func New(confList []config.RateLimitConf, rdb redis.Scripter) app.HandlerFunc {
	return newLimiter(confList, rdb, false)
}

// NewByUser builds the limiter for by_user rules. It must run after the
// access guard so the user id is in ctx.
func NewByUser(confList []config.RateLimitConf, rdb redis.Scripter) app.HandlerFunc {
	return newLimiter(confList, rdb, true)
}

func newLimiter(confList []config.RateLimitConf, rdb redis.Scripter, byUser bool) app.HandlerFunc {
	rules := make(map[string]*rule)
	var defaultRule *rule
	for _, conf := range confList {
		if conf.ByUser != byUser || conf.Path == "" || conf.WindowSeconds <= 0 || conf.Limit <= 0 {
			continue
		}
		r := &rule{
			interceptor: interceptor.New(rdb, conf.WindowSeconds, conf.Limit),
			byUser:      conf.ByUser,
		}
		if conf.Path == DefaultPath {
			defaultRule = r
			continue
		}
		rules[conf.Path] = r
	}

	return func(ctx context.Context, c *app.RequestContext) {
		path := c.FullPath()
		r, ok := rules[path]
		if !ok {
			path = string(c.Request.URI().Path())
			r, ok = rules[path]
		}
		if !ok {
			r = defaultRule
		}
		if r == nil {
			c.Next(ctx)
			return
		}

		key := c.ClientIP()
		if r.byUser {
			if userID := jwt.GetUserID(ctx); userID != "" {
				key = "user:" + userID
			}
		}

		allowed, err := r.interceptor.Allow(ctx, path+":"+key)
		if err != nil {
			// fail open
			hlog.CtxErrorf(ctx, "rate limit error for key %s: %v", key, err)
			c.Next(ctx)
			return
		}

		if !allowed {
			hlog.CtxNoticef(ctx, "rate limited: %s %s", path, key)
			resp.AbortWithErr(c, errs.TooManyRequest, http.StatusTooManyRequests)
			return
		}

		c.Next(ctx)
	}
}
