package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Font    FontConfig
	Output  OutputConfig
	Log     LogConfig
	Storage StorageConfig

	// EnvFileLoaded reports whether the .env file was found and applied.
	EnvFileLoaded bool
}

type FontConfig struct {
	Path string
	Dirs []string
}

type OutputConfig struct {
	JPEGQuality int
}

type LogConfig struct {
	Level       string
	Development bool
}

type StorageConfig struct {
	MaxFileSize int64
}

// Load reads envFile (if present) into the process environment and builds a
// Config from it. A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	loaded := false
	if envFile != "" {
		if err := godotenv.Load(envFile); err == nil {
			loaded = true
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Font: FontConfig{
			Path: getEnv("WATERMARK_FONT_PATH", ""),
			Dirs: getEnvAsPathList("WATERMARK_FONT_DIRS"),
		},
		Output: OutputConfig{
			JPEGQuality: clamp(getEnvAsInt("JPEG_QUALITY", 95), 1, 100),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "warn"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 100*1024*1024), // 100MB
		},
		EnvFileLoaded: loaded,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Storage.MaxFileSize <= 0 {
		return errors.New("MAX_FILE_SIZE must be positive")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvAsPathList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, p := range filepath.SplitList(value) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
