package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageFile  = "file"
	StorageDB    = "db"
	StorageRedis = "redis"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Env        string `env:"HBNB_ENV" env-default:"development" env-description:"development, test or production"`
	LogLevel   string `env:"HBNB_LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Auth       Auth
	Storage    Storage
	Database   Database
	Cache      Cache
	Limiter    Limiter
	Metrics    Metrics
}

type HttpServer struct {
	Host           string        `env:"HBNB_API_HOST" env-default:"0.0.0.0"`
	Port           string        `env:"HBNB_API_PORT" env-default:"5000"`
	Timeout        time.Duration `env:"HBNB_API_TIMEOUT" env-default:"4s"`
	IdleTimeout    time.Duration `env:"HBNB_API_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HBNB_SWAGGER_ENABLED" env-default:"false"`
	CORSOrigins    []string      `env:"HBNB_CORS_ORIGINS" env-default:"*" env-description:"comma separated allowed origins"`
}

type Auth struct {
	PasswordSalt string `env:"HBNB_PASSWORD_SALT" env-default:"" env-description:"salt mixed into stored password hashes"`
}

type Storage struct {
	Type     string `env:"HBNB_TYPE_STORAGE" env-default:"file" env-description:"one of file/db/redis"`
	FilePath string `env:"HBNB_FILE_PATH" env-default:"file.json" env-description:"json file of the file storage, empty keeps it in memory"`
}

type Database struct {
	Driver             string        `env:"HBNB_DB_DRIVER" env-default:"mysql" env-description:"one of mysql/sqlite"`
	Net                string        `env:"HBNB_MYSQL_NET" env-default:"tcp"`
	Server             string        `env:"HBNB_MYSQL_HOST" env-default:"localhost:3306"`
	DBName             string        `env:"HBNB_MYSQL_DB" env-default:"hbnb_dev_db"`
	User               string        `env:"HBNB_MYSQL_USER" env-default:"hbnb_dev"`
	Password           string        `env:"HBNB_MYSQL_PWD"`
	TimeZone           string        `env:"HBNB_MYSQL_TIMEZONE"`
	SQLitePath         string        `env:"HBNB_SQLITE_PATH" env-default:"hbnb.db"`
	Timeout            time.Duration `env:"HBNB_DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"HBNB_DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"HBNB_DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
}

type Cache struct {
	Type   string `env:"HBNB_REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Prefix string `env:"HBNB_REDIS_PREFIX" env-default:"{hbnb}" env-description:"key prefix, braces keep every key in one cluster slot"`
	Redis  struct {
		Address  string `env:"HBNB_REDIS_ADDR" env-default:"localhost:6379" env-description:"redis host:port single instance"`
		Password string `env:"HBNB_REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		DB       int    `env:"HBNB_REDIS_DB" env-default:"0"`
		PoolSize int    `env:"HBNB_REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"HBNB_REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: 172.27.29.90:7000,172.27.29.91:7001"`
		Password  string   `env:"HBNB_REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"HBNB_REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

type Limiter struct {
	RPS   int           `env:"HBNB_LIMITER_RPS" env-default:"10"`
	Burst int           `env:"HBNB_LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"HBNB_LIMITER_TTL" env-default:"10m"`
}

type Metrics struct {
	Enabled   bool   `env:"HBNB_METRICS_ENABLED" env-default:"true"`
	Namespace string `env:"HBNB_METRICS_NAMESPACE" env-default:"hbnb"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return cfg
}
