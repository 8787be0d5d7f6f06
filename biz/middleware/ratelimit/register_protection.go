package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/util/interceptor"
	"venue_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

const keyRegisterBlock = "register_block:"

// NewRegisterProtection blocks further registrations from an ip for a while
// after one succeeded.
func NewRegisterProtection(conf config.RegisterProtectionConf, rdb redis.UniversalClient) app.HandlerFunc {
	blockMinutes := conf.BlockMinutes
	if blockMinutes <= 0 {
		blockMinutes = 10
	}
	blockDuration := time.Duration(blockMinutes) * time.Minute

	return func(ctx context.Context, c *app.RequestContext) {
		ip := clientIP(c)
		key := interceptor.KeyPrefix + keyRegisterBlock + ip

		if n, _ := rdb.Exists(ctx, key).Result(); n > 0 {
			resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
				fmt.Sprintf("registration is temporarily blocked, please try again after %v minutes", blockMinutes)),
				http.StatusForbidden)
			return
		}

		c.Next(ctx)

		r, ok := parseResp(ctx, c)
		if !ok || !r.Success {
			return
		}
		if err := rdb.Set(ctx, key, "1", blockDuration).Err(); err != nil {
			hlog.CtxErrorf(ctx, "set register block key err: %v", err)
			return
		}
		hlog.CtxInfof(ctx, "register protection: ip %s blocked for %v", ip, blockDuration)
	}
}
