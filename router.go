package be

import (
	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/handler"
	"venue_tracker/be/biz/middleware/jwt"
	"venue_tracker/be/biz/middleware/ratelimit"
	"venue_tracker/be/biz/util/metrics"
	_ "venue_tracker/be/docs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/hertz-contrib/swagger"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
)

type routes struct {
	conf     *config.ServiceConf
	rdb      redis.UniversalClient
	verifier jwt.Verifier
	user     *handler.UserHandler
	venue    *handler.VenueHandler
}

// reserved resources answer 501 until they are built
var reservedResources = []string{"contacts", "performances", "communications", "documents"}

func register(r *server.Hertz, rt routes) {
	r.GET("/health", handler.Health)
	r.GET("/metrics", adaptor.HertzHandler(metrics.Handler()))

	api := r.Group("/api")
	api.GET("/docs/*any", swagger.WrapHandler(swaggerFiles.Handler, swagger.URL("/api/docs/doc.json")))

	guard := []app.HandlerFunc{
		jwt.ValidateMW(rt.verifier),
		ratelimit.NewByUser(rt.conf.RateLimit, rt.rdb),
	}

	auth := api.Group("/auth")
	{
		auth.POST("/register", append(registerMW(rt), rt.user.Register)...)
		auth.POST("/login", append(loginMW(rt), rt.user.Login)...)
		auth.GET("/profile", append(guard, rt.user.GetProfile)...)
		auth.PUT("/password", append(guard, rt.user.ChangePassword)...)
	}

	venues := api.Group("/venues", guard...)
	{
		venues.GET("", rt.venue.List)
		venues.POST("", rt.venue.Create)
		venues.GET("/:id", rt.venue.Get)
		venues.PUT("/:id", rt.venue.Update)
		venues.DELETE("/:id", rt.venue.Delete)
	}

	for _, res := range reservedResources {
		g := api.Group("/"+res, guard...)
		g.Any("", handler.NotImplemented)
		g.Any("/*path", handler.NotImplemented)
	}
}

func loginMW(rt routes) []app.HandlerFunc {
	if !rt.conf.LoginProtection.Enabled {
		return nil
	}
	return []app.HandlerFunc{ratelimit.NewLoginProtection(rt.conf.LoginProtection, rt.rdb)}
}

func registerMW(rt routes) []app.HandlerFunc {
	if !rt.conf.RegisterProtection.Enabled {
		return nil
	}
	return []app.HandlerFunc{ratelimit.NewRegisterProtection(rt.conf.RegisterProtection, rt.rdb)}
}
