package ratelimit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/model/dto"
	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/util/interceptor"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/stretchr/testify/assert"
)

func TestLoginProtection(t *testing.T) {
	mr, rdb := newTestRedis(t)
	mw := NewLoginProtection(config.LoginProtectionConf{}, rdb)
	ctx := context.Background()
	clientIP := "127.0.0.1"

	makeLoginReq := func(ip string, code int32) *app.RequestContext {
		c := app.NewContext(0)
		c.Request.SetRequestURI("/api/auth/login")
		c.Request.Header.Set("X-Forwarded-For", ip)
		body, _ := json.Marshal(dto.CommonResp{Success: code == errs.Success.Code(), Code: int(code)})
		c.Response.SetBody(body)
		return c
	}

	t.Run("success does not count", func(t *testing.T) {
		mr.FlushAll()
		for i := 0; i < 5; i++ {
			c := makeLoginReq(clientIP, errs.Success.Code())
			mw(ctx, c)
			assert.False(t, c.IsAborted())
		}
		exists, _ := rdb.Exists(ctx, interceptor.KeyPrefix+keyLoginBlockMinute+clientIP).Result()
		assert.Equal(t, int64(0), exists)
	})

	t.Run("other failures do not count", func(t *testing.T) {
		mr.FlushAll()
		for i := 0; i < 5; i++ {
			mw(ctx, makeLoginReq(clientIP, errs.ParamError.Code()))
		}
		exists, _ := rdb.Exists(ctx, interceptor.KeyPrefix+keyLoginBlockMinute+clientIP).Result()
		assert.Equal(t, int64(0), exists)
	})

	t.Run("block minutes", func(t *testing.T) {
		mr.FlushAll()
		for i := 0; i < 3; i++ {
			c := makeLoginReq(clientIP, errs.InvalidCredentials.Code())
			mw(ctx, c)
			assert.False(t, c.IsAborted())
		}

		exists, _ := rdb.Exists(ctx, interceptor.KeyPrefix+keyLoginBlockMinute+clientIP).Result()
		assert.Equal(t, int64(1), exists)
		exists, _ = rdb.Exists(ctx, keyLoginFailLvl+clientIP).Result()
		assert.Equal(t, int64(1), exists)

		c := makeLoginReq(clientIP, errs.Success.Code())
		mw(ctx, c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, consts.StatusForbidden, c.Response.StatusCode())
		assert.Contains(t, string(c.Response.Body()), "5 minutes")

		// other ips are unaffected
		c = makeLoginReq("10.0.0.2", errs.Success.Code())
		mw(ctx, c)
		assert.False(t, c.IsAborted())
	})

	t.Run("block hours", func(t *testing.T) {
		mr.FlushAll()
		rdb.Set(ctx, keyLoginFailLvl+clientIP, "1", time.Hour)

		for i := 0; i < 3; i++ {
			mw(ctx, makeLoginReq(clientIP, errs.InvalidCredentials.Code()))
		}

		exists, _ := rdb.Exists(ctx, interceptor.KeyPrefix+keyLoginBlockHour+clientIP).Result()
		assert.Equal(t, int64(1), exists)

		c := makeLoginReq(clientIP, errs.Success.Code())
		mw(ctx, c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, consts.StatusForbidden, c.Response.StatusCode())
		assert.Contains(t, string(c.Response.Body()), "24 hours")
	})

	t.Run("block expires", func(t *testing.T) {
		mr.FlushAll()
		for i := 0; i < 3; i++ {
			mw(ctx, makeLoginReq(clientIP, errs.InvalidCredentials.Code()))
		}
		mr.FastForward(6 * time.Minute)

		c := makeLoginReq(clientIP, errs.Success.Code())
		mw(ctx, c)
		assert.False(t, c.IsAborted())
	})
}
