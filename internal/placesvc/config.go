package placesvc

import (
	"fmt"
	"time"

	"github.com/IsaacDSC/placecache/internal/cfg"
)

const (
	DefaultTTLSeconds   = 2160000
	DefaultLanguageCode = "ja"
	DefaultConcurrency  = 4
	PlaceContentType    = "application/json"
)

// Config is everything the service reads; nothing is taken from the environment
// at call time.
type Config struct {
	PlaceApiKey       string
	ObjectStoreBucket string
	TTLSeconds        int
	LanguageCode      string
	Concurrency       int
}

func NewConfig(env cfg.Config) Config {
	return Config{
		PlaceApiKey:       env.PlaceAPI.ApiKey,
		ObjectStoreBucket: env.ObjectStore.Bucket,
		TTLSeconds:        env.PlaceCache.TTLSeconds,
		LanguageCode:      env.PlaceAPI.LanguageCode,
		Concurrency:       env.PlaceCache.Concurrency,
	}
}

func (c Config) withDefaults() Config {
	if c.TTLSeconds <= 0 {
		c.TTLSeconds = DefaultTTLSeconds
	}
	if c.LanguageCode == "" {
		c.LanguageCode = DefaultLanguageCode
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	return c
}

func (c Config) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// CacheControl is the response header sent with cached payloads.
func (c Config) CacheControl() string {
	return fmt.Sprintf("public, max-age=%d", c.TTLSeconds)
}
