package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var ErrMissingJWTSecret = errors.New("jwt secret is required outside development")

// Load reads the yaml file at filepath, applies environment overrides and
// validates the result. A .env file next to the working directory is loaded
// first when present.
func Load(filepath string) (*ServiceConf, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		hlog.Warnf("load .env err: %v", err)
	}

	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filepath, err)
	}

	var conf ServiceConf
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filepath, err)
	}

	conf.applyEnv()
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	hlog.Debugf("config debug: env=%s db=%s redis=%s:%d", conf.App.Env, conf.Database.Driver, conf.Redis.IP, conf.Redis.Port)
	return &conf, nil
}

// MustLoad is Load for process startup.
func MustLoad(filepath string) *ServiceConf {
	conf, err := Load(filepath)
	if err != nil {
		panic(err)
	}
	return conf
}

func (c *ServiceConf) applyEnv() {
	if v := os.Getenv("APP_ENV"); v != "" {
		c.App.Env = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if c.App.Env == "" {
		c.App.Env = EnvDevelopment
	}
}

// Validate rejects configurations the service must not start with.
func (c *ServiceConf) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" && !c.IsDevelopment() {
		return ErrMissingJWTSecret
	}
	switch c.Database.Driver {
	case "", "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

func (c *ServiceConf) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}

type ServiceConf struct {
	App                AppConf                `yaml:"app"`
	Database           DatabaseConf           `yaml:"database"`
	Redis              RedisConf              `yaml:"redis"`
	JWT                JWTConf                `yaml:"jwt"`
	Password           PasswordConf           `yaml:"password"`
	CORS               CORSConf               `yaml:"cors"`
	RateLimit          []RateLimitConf        `yaml:"rate_limit"`
	Logger             LoggerConf             `yaml:"logger"`
	LoginProtection    LoginProtectionConf    `yaml:"login_protection"`
	RegisterProtection RegisterProtectionConf `yaml:"register_protection"`
}

type AppConf struct {
	Env         string `yaml:"env"`
	Addr        string `yaml:"addr"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

type LoginProtectionConf struct {
	Enabled           bool `yaml:"enabled"`
	WindowSeconds     int  `yaml:"window_seconds"`
	Limit             int  `yaml:"limit"`
	BlockMinDuration  int  `yaml:"block_min_duration"`
	BlockHourDuration int  `yaml:"block_hour_duration"`
	LevelDuration     int  `yaml:"level_duration"`
}

type RegisterProtectionConf struct {
	Enabled      bool `yaml:"enabled"`
	BlockMinutes int  `yaml:"block_minutes"`
}

// DatabaseConf selects the gorm dialect. DSN wins over the discrete MySQL
// fields when set.
type DatabaseConf struct {
	Driver string    `yaml:"driver"`
	DSN    string    `yaml:"dsn"`
	MySQL  MySQLConf `yaml:"mysql"`

	MaxOpenConns    int `yaml:"max_open_conns"`
	MaxIdleConns    int `yaml:"max_idle_conns"`
	ConnMaxLifetime int `yaml:"conn_max_lifetime"`
}

type MySQLConf struct {
	DBName   string `yaml:"db_name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConf struct {
	Issuer string `yaml:"issuer"`
	Secret string `yaml:"secret"`

	// seconds
	Expiration int `yaml:"expiration"`
}

type PasswordConf struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

type RateLimitConf struct {
	Path          string `yaml:"path"`
	WindowSeconds int    `yaml:"window_seconds"`
	Limit         int64  `yaml:"limit"`
	// ByUser keys the counter on the authenticated user instead of the client ip.
	ByUser bool `yaml:"by_user"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Stdout     bool   `yaml:"stdout"`
}
