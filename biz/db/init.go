package db

import (
	"context"
	"errors"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/db/orm"
	rediscli "venue_tracker/be/biz/db/redis"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Clients struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func Init(ctx context.Context, conf *config.ServiceConf) (*Clients, error) {
	gdb, err := orm.Open(conf.Database, conf.IsDevelopment())
	if err != nil {
		return nil, err
	}
	if conf.App.AutoMigrate {
		if err := orm.Migrate(gdb); err != nil {
			return nil, err
		}
	}

	rdb := rediscli.New(conf.Redis)
	if err := rediscli.Ping(ctx, rdb); err != nil {
		return nil, err
	}

	return &Clients{DB: gdb, Redis: rdb}, nil
}

func (c *Clients) Close() error {
	var errList []error
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			errList = append(errList, sqlDB.Close())
		}
	}
	if c.Redis != nil {
		errList = append(errList, c.Redis.Close())
	}
	err := errors.Join(errList...)
	if err != nil {
		hlog.Errorf("close clients err: %v", err)
	}
	return err
}
