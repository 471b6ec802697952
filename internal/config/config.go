package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ticket-claimer/internal/claims"
	"ticket-claimer/internal/eventer"
	"ticket-claimer/internal/model"
)

const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config is built once at startup and passed by value into each component.
type Config struct {
	Registrant model.Registrant

	Domain       string
	Seller       string
	PollInterval time.Duration
	HTTPTimeout  time.Duration

	ClaimStore  string
	ClaimDBPath string
	Redis       claims.RedisConfig

	LogLevel   string
	StatusAddr string
}

// Load reads the environment. Settings also come from the env-format file named
// by CONFIG_FILE, or else from an optional .env in the working directory.
func Load() (Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return LoadFile(path)
	}

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil && !notFound(err) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}
	return load(v)
}

func notFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, os.ErrNotExist)
}

// LoadFile reads settings from an env-format file at path, then the environment.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Registrant: model.Registrant{
			Name:        strings.TrimSpace(v.GetString("KNAME")),
			GovID:       strings.TrimSpace(v.GetString("KID")),
			Phone:       strings.TrimSpace(v.GetString("KPHONE")),
			Email:       strings.TrimSpace(v.GetString("KMAIL")),
			DateOfBirth: v.GetString("KBIRTHDATE"),
			Age:         v.GetInt("KAGE"),
		},
		Domain:       strings.TrimRight(v.GetString("EVENTER_DOMAIN"), "/"),
		Seller:       v.GetString("TARGET_SELLER"),
		PollInterval: v.GetDuration("POLL_INTERVAL"),
		HTTPTimeout:  v.GetDuration("HTTP_TIMEOUT"),
		ClaimStore:   strings.ToLower(v.GetString("CLAIM_STORE")),
		ClaimDBPath:  v.GetString("CLAIM_DB_PATH"),
		Redis: claims.RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Key:      v.GetString("REDIS_KEY"),
		},
		LogLevel:   v.GetString("LOG_LEVEL"),
		StatusAddr: v.GetString("STATUS_ADDR"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("KBIRTHDATE", "1999-04-14T21:00:00.000Z")
	v.SetDefault("KAGE", 24)
	v.SetDefault("EVENTER_DOMAIN", eventer.DefaultDomain)
	v.SetDefault("TARGET_SELLER", eventer.DefaultSeller)
	v.SetDefault("POLL_INTERVAL", "1h")
	v.SetDefault("HTTP_TIMEOUT", "30s")
	v.SetDefault("CLAIM_STORE", StoreFile)
	v.SetDefault("CLAIM_DB_PATH", "db.json")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY", claims.DefaultRedisKey)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STATUS_ADDR", "")
}

// Validate reports every missing or invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	required := []struct{ name, value string }{
		{"KNAME", c.Registrant.Name},
		{"KID", c.Registrant.GovID},
		{"KPHONE", c.Registrant.Phone},
		{"KMAIL", c.Registrant.Email},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s required", r.name))
		}
	}

	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("POLL_INTERVAL must be positive, got %v", c.PollInterval))
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.HTTPTimeout))
	}
	switch c.ClaimStore {
	case StoreFile:
		if c.ClaimDBPath == "" {
			errs = append(errs, errors.New("CLAIM_DB_PATH required"))
		}
	case StoreRedis:
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("REDIS_ADDR required"))
		}
	default:
		errs = append(errs, fmt.Errorf(`CLAIM_STORE must be "file" or "redis", got %q`, c.ClaimStore))
	}

	return errors.Join(errs...)
}
