package orm

import (
	"fmt"
	"time"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects gorm with the dialect named in conf. Unique violations are
// translated to gorm.ErrDuplicatedKey.
func Open(conf config.DatabaseConf, debug bool) (*gorm.DB, error) {
	dialector, err := dialector(conf)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if debug {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(hlogWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName(conf), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(defaultInt(conf.MaxOpenConns, 25))
	sqlDB.SetMaxIdleConns(defaultInt(conf.MaxIdleConns, 25))
	sqlDB.SetConnMaxLifetime(time.Duration(defaultInt(conf.ConnMaxLifetime, 300)) * time.Second)

	return db, nil
}

// Migrate creates or updates the tables this service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&storage.UserRecord{}, &storage.VenueRecord{})
}

func dialector(conf config.DatabaseConf) (gorm.Dialector, error) {
	switch driverName(conf) {
	case "mysql":
		dsn := conf.DSN
		if dsn == "" {
			m := conf.MySQL
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				m.Username, m.Password, m.IP, m.Port, m.DBName)
		}
		return mysql.Open(dsn), nil
	case "postgres":
		return postgres.Open(conf.DSN), nil
	case "sqlite":
		dsn := conf.DSN
		if dsn == "" {
			dsn = "venue_tracker.db"
		}
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", conf.Driver)
}

func driverName(conf config.DatabaseConf) string {
	if conf.Driver == "" {
		return "mysql"
	}
	return conf.Driver
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

type hlogWriter struct{}

func (hlogWriter) Printf(format string, args ...interface{}) {
	hlog.Infof(format, args...)
}
