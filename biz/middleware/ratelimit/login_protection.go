package ratelimit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/model/dto"
	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/util/interceptor"
	"venue_tracker/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

const (
	keyLoginBlockHour   = "login_block_h:"
	keyLoginBlockMinute = "login_block_m:"
	keyLoginFailLvl     = "login_fail_level:"
	keyLoginFail        = "login_fail:"
)

// NewLoginProtection blocks a client ip after repeated InvalidCredentials
// answers. The first block lasts minutes; failing again while the level key
// is alive blocks for hours.
func NewLoginProtection(conf config.LoginProtectionConf, rdb redis.UniversalClient) app.HandlerFunc {
	window := conf.WindowSeconds
	if window <= 0 {
		window = 300
	}

	limit := conf.Limit
	if limit <= 0 {
		limit = 3
	}

	durationBlockMin := time.Duration(conf.BlockMinDuration) * time.Minute
	if durationBlockMin <= 0 {
		durationBlockMin = 5 * time.Minute
	}

	durationBlockHour := time.Duration(conf.BlockHourDuration) * time.Hour
	if durationBlockHour <= 0 {
		durationBlockHour = 24 * time.Hour
	}

	durationFailLvl := time.Duration(conf.LevelDuration) * time.Second
	if durationFailLvl <= 0 {
		durationFailLvl = 30 * time.Minute
	}

	// the interceptor denies when count > limit; block on the limit-th failure
	failInterceptor := interceptor.New(rdb, window, int64(limit-1))

	return func(ctx context.Context, c *app.RequestContext) {
		ip := clientIP(c)

		// 先校验小时拦截策略
		if n, _ := rdb.Exists(ctx, interceptor.KeyPrefix+keyLoginBlockHour+ip).Result(); n > 0 {
			resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
				fmt.Sprintf("too many login failures, please try again after %v hours", durationBlockHour.Hours())),
				http.StatusForbidden)
			return
		}

		// 再校验分钟拦截策略
		if n, _ := rdb.Exists(ctx, interceptor.KeyPrefix+keyLoginBlockMinute+ip).Result(); n > 0 {
			resp.AbortWithErr(c, errs.RequestBlocked.SetMsg(
				fmt.Sprintf("too many login failures, please try again after %v minutes", durationBlockMin.Minutes())),
				http.StatusForbidden)
			return
		}

		c.Next(ctx)

		r, ok := parseResp(ctx, c)
		if !ok || r.Success || int32(r.Code) != errs.InvalidCredentials.Code() {
			return
		}

		allowed, err := failInterceptor.Allow(ctx, keyLoginFail+ip)
		if err != nil {
			hlog.CtxErrorf(ctx, "login fail interceptor err: %v", err)
			return
		}
		if allowed {
			return
		}

		lvlExists, _ := rdb.Exists(ctx, keyLoginFailLvl+ip).Result()
		if lvlExists > 0 {
			if err := rdb.Set(ctx, interceptor.KeyPrefix+keyLoginBlockHour+ip, "1", durationBlockHour).Err(); err != nil {
				hlog.CtxErrorf(ctx, "set login block key err: %v", err)
			}
			hlog.CtxInfof(ctx, "login protection: ip %s blocked for %v (level 2)", ip, durationBlockHour)
			return
		}

		pipe := rdb.Pipeline()
		pipe.Set(ctx, interceptor.KeyPrefix+keyLoginBlockMinute+ip, "1", durationBlockMin)
		pipe.Set(ctx, keyLoginFailLvl+ip, "1", durationFailLvl)
		if _, err := pipe.Exec(ctx); err != nil {
			hlog.CtxErrorf(ctx, "set login block keys err: %v", err)
		}
		hlog.CtxInfof(ctx, "login protection: ip %s blocked for %v (level 1)", ip, durationBlockMin)
	}
}

func clientIP(c *app.RequestContext) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

func parseResp(ctx context.Context, c *app.RequestContext) (dto.CommonResp, bool) {
	var r dto.CommonResp
	if err := json.Unmarshal(c.Response.Body(), &r); err != nil {
		hlog.CtxErrorf(ctx, "parse response body err: %v", err)
		return r, false
	}
	return r, true
}
