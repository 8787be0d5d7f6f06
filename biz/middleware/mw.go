package middleware

import (
	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/middleware/accesslog"
	"venue_tracker/be/biz/middleware/cors"
	"venue_tracker/be/biz/middleware/ratelimit"
	"venue_tracker/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/redis/go-redis/v9"
)

func Suite(conf *config.ServiceConf, rdb redis.UniversalClient) []app.HandlerFunc {
	return []app.HandlerFunc{
		recovery.Recovery(),                  // panic handler
		trace.New(),                          // 链路ID
		accesslog.New("/health", "/metrics"), // 接口日志
		cors.New(conf.CORS),                  // 跨域请求
		ratelimit.New(conf.RateLimit, rdb),   // 限流
	}
}
