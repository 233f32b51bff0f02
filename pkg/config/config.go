package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const DefaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
	loadErr  error
)

type Config struct {
}

// New loads ./configs/.env once per process. A missing file is not an error,
// values then come from the real environment only.
func New() (*Config, error) {
	once.Do(func() {
		instance, loadErr = Load(DefaultEnvFile)
	})
	return instance, loadErr
}

// Load reads envs from path without overriding variables that are already set.
func Load(path string) (*Config, error) {
	if path != "" {
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("loading envs error: " + err.Error())
		}
	}
	return &Config{}, nil
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, errors.New("parsing " + key + " error: " + err.Error())
	}
	return n, nil
}

func (c *Config) GetBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, errors.New("parsing " + key + " error: " + err.Error())
	}
	return b, nil
}

func (c *Config) GetDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def, errors.New("parsing " + key + " error: " + err.Error())
	}
	return d, nil
}
