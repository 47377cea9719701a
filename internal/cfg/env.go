package cfg

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ApiPort string

func (p ApiPort) String() string {
	s := string(p)
	if s != "" && !strings.Contains(s, ":") {
		return ":" + s
	}
	return s
}

type PlaceAPI struct {
	ApiKey          string        `env:"PLACE_API_KEY"`
	BaseURL         string        `env:"PLACE_API_BASE_URL" env-default:"https://places.googleapis.com"`
	LanguageCode    string        `env:"PLACE_LANGUAGE_CODE" env-default:"ja"`
	PhotoMaxWidthPx int           `env:"PLACE_PHOTO_MAX_WIDTH_PX" env-default:"1980"`
	Timeout         time.Duration `env:"PLACE_API_TIMEOUT" env-default:"30s"`
}

type ObjectStore struct {
	Driver string `env:"OBJECT_STORE_DRIVER" env-default:"redis"`
	Bucket string `env:"OBJECT_STORE_BUCKET" env-default:"caches"`
}

type PlaceCache struct {
	TTLSeconds  int `env:"CACHE_TTL_SECONDS" env-default:"2160000"`
	Concurrency int `env:"PLACE_CACHE_CONCURRENCY" env-default:"4"`
}

type ConfigDatabase struct {
	DbConn string `env:"DB_CONNECTION_STRING" env-default:"mongodb://localhost:27017"`
	DbName string `env:"DB_NAME" env-default:"placecache"`
}

type Cache struct {
	CacheAddr string `env:"CACHE_ADDR" env-default:"localhost:6379"`
}

type AsynqConfig struct {
	Concurrency int `env:"WQ_CONCURRENCY" env-default:"10"`
}

type Notify struct {
	WebhookURL string `env:"NOTIFY_WEBHOOK_URL"`
}

// Admin guards operator endpoints with basic auth. Empty user leaves them open.
type Admin struct {
	User     string `env:"ADMIN_USER"`
	Password string `env:"ADMIN_PASSWORD"`
}

func (a Admin) Enabled() bool {
	return a.User != ""
}

type Config struct {
	ApiPort ApiPort `env:"API_PORT" env-default:":8080"`
	// ApiWriteTimeout caps a whole response. Zero leaves batches bounded only by
	// the per-call upstream timeout.
	ApiWriteTimeout time.Duration `env:"API_WRITE_TIMEOUT" env-default:"0s"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	LogFormat       string        `env:"LOG_FORMAT" env-default:"json"`
	LogSource       bool          `env:"LOG_SOURCE" env-default:"false"`
	PlaceAPI       PlaceAPI
	ObjectStore    ObjectStore
	PlaceCache     PlaceCache
	ConfigDatabase ConfigDatabase
	Cache          Cache
	AsynqConfig    AsynqConfig
	Notify         Notify
	Admin          Admin
}

const (
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

func (c Config) Validate() error {
	switch c.ObjectStore.Driver {
	case DriverRedis, DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("invalid OBJECT_STORE_DRIVER %q", c.ObjectStore.Driver)
	}

	if c.ObjectStore.Bucket == "" {
		return fmt.Errorf("OBJECT_STORE_BUCKET is required")
	}

	if c.PlaceCache.TTLSeconds <= 0 {
		return fmt.Errorf("CACHE_TTL_SECONDS must be positive")
	}

	if c.PlaceCache.Concurrency <= 0 {
		return fmt.Errorf("PLACE_CACHE_CONCURRENCY must be positive")
	}

	if c.Admin.Enabled() && c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required when ADMIN_USER is set")
	}

	return nil
}

var (
	cfg     Config
	loaded  bool
	cfgLock sync.Mutex
)

// Load reads and validates the environment.
func Load() (Config, error) {
	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Get returns the process configuration, reading the environment once.
func Get() Config {
	cfgLock.Lock()
	defer cfgLock.Unlock()

	if loaded {
		return cfg
	}

	c, err := Load()
	if err != nil {
		panic(err)
	}

	cfg = c
	loaded = true
	return cfg
}

func SetConfig(c Config) {
	cfgLock.Lock()
	defer cfgLock.Unlock()

	cfg = c
	loaded = true
}
