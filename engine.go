package be

import (
	"fmt"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/dal/repo"
	"venue_tracker/be/biz/db"
	"venue_tracker/be/biz/handler"
	"venue_tracker/be/biz/middleware"
	"venue_tracker/be/biz/middleware/jwt"
	"venue_tracker/be/biz/service/user"
	"venue_tracker/be/biz/service/venue"
	"venue_tracker/be/biz/util/encode"
	"venue_tracker/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// NewEngine assembles the http server from loaded config and opened clients.
// Extra hertz options are appended after the defaults.
func NewEngine(conf *config.ServiceConf, clients *db.Clients, opts ...hertzconfig.Option) (*server.Hertz, error) {
	hasher, err := encode.NewBcryptHasher(conf.Password.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	jwtConf := conf.JWT
	if jwtConf.Secret == "" {
		if !conf.IsDevelopment() {
			return nil, config.ErrMissingJWTSecret
		}
		hlog.Warnf("jwt secret is not configured, using a random one; tokens will not survive a restart")
		jwtConf.Secret = jwt.RandomSecret()
	}
	issuer, err := jwt.NewIssuer(jwtConf)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w", err)
	}

	users := repo.NewUserRepositoryGorm(clients.DB, hasher)
	venues := repo.NewVenueRepositoryGorm(clients.DB)

	addr := conf.App.Addr
	if addr == "" {
		addr = ":5000"
	}
	h := server.New(append([]hertzconfig.Option{
		server.WithHostPorts(addr),
		server.WithCustomValidator(validate.Default()),
	}, opts...)...)
	h.Use(middleware.Suite(conf, clients.Redis)...)

	register(h, routes{
		conf:     conf,
		rdb:      clients.Redis,
		verifier: issuer,
		user:     handler.NewUserHandler(user.New(users, hasher, issuer)),
		venue:    handler.NewVenueHandler(venue.New(venues)),
	})

	return h, nil
}
