package cors

import (
	"time"

	"venue_tracker/be/biz/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

func New(corsConf config.CORSConf) app.HandlerFunc {
	return cors.New(build(corsConf))
}

func build(corsConf config.CORSConf) cors.Config {
	cfg := cors.Config{
		AllowMethods:     defaultIfEmpty(corsConf.AllowMethods, []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}),
		AllowHeaders:     defaultIfEmpty(corsConf.AllowHeaders, []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "X-Log-ID"}),
		ExposeHeaders:    []string{"X-Log-ID"},
		AllowCredentials: corsConf.AllowCredentials,
		MaxAge:           time.Duration(corsConf.MaxAge) * time.Second,
	}

	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 12 * time.Hour
	}

	switch {
	case len(corsConf.AllowOrigins) == 0, contains(corsConf.AllowOrigins, "*") && corsConf.AllowCredentials:
		// credentials forbid a literal "*", so echo the origin back
		cfg.AllowOriginFunc = func(origin string) bool {
			return true
		}
	case contains(corsConf.AllowOrigins, "*"):
		cfg.AllowAllOrigins = true
	default:
		cfg.AllowOrigins = corsConf.AllowOrigins
	}

	return cfg
}

func defaultIfEmpty(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}

func contains(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}
