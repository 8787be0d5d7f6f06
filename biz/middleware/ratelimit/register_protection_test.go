package ratelimit

import (
	"context"
	"encoding/json"
	"testing"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/model/dto"
	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/util/interceptor"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/stretchr/testify/assert"
)

func TestRegisterProtection(t *testing.T) {
	mr, rdb := newTestRedis(t)
	mw := NewRegisterProtection(config.RegisterProtectionConf{BlockMinutes: 10}, rdb)
	ctx := context.Background()
	clientIP := "127.0.0.1"

	makeRegisterReq := func(ip string, success bool) *app.RequestContext {
		c := app.NewContext(0)
		c.Request.SetRequestURI("/api/auth/register")
		c.Request.Header.Set("X-Forwarded-For", ip)
		r := dto.CommonResp{Success: true}
		if !success {
			r = dto.CommonResp{Success: false, Code: int(errs.EmailDuplicated.Code())}
		}
		body, _ := json.Marshal(r)
		c.Response.SetBody(body)
		return c
	}

	t.Run("block after success", func(t *testing.T) {
		mr.FlushAll()

		c := makeRegisterReq(clientIP, true)
		mw(ctx, c)
		assert.False(t, c.IsAborted())

		exists, _ := rdb.Exists(ctx, interceptor.KeyPrefix+keyRegisterBlock+clientIP).Result()
		assert.Equal(t, int64(1), exists)

		c = app.NewContext(0)
		c.Request.SetRequestURI("/api/auth/register")
		c.Request.Header.Set("X-Forwarded-For", clientIP)
		mw(ctx, c)
		assert.True(t, c.IsAborted())
		assert.Equal(t, consts.StatusForbidden, c.Response.StatusCode())
		assert.Contains(t, string(c.Response.Body()), "10 minutes")
	})

	t.Run("failure does not block", func(t *testing.T) {
		mr.FlushAll()

		mw(ctx, makeRegisterReq(clientIP, false))
		exists, _ := rdb.Exists(ctx, interceptor.KeyPrefix+keyRegisterBlock+clientIP).Result()
		assert.Equal(t, int64(0), exists)

		c := makeRegisterReq(clientIP, true)
		mw(ctx, c)
		assert.False(t, c.IsAborted())
	})

	t.Run("different ip", func(t *testing.T) {
		mr.FlushAll()

		mw(ctx, makeRegisterReq("1.1.1.1", true))
		c := makeRegisterReq("2.2.2.2", true)
		mw(ctx, c)
		assert.False(t, c.IsAborted())
	})
}
