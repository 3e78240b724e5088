package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override. BUDGET_REPORT_USER_ID sets
// report.user_id: only the first underscore after the prefix separates the
// section from the key.
const EnvPrefix = "BUDGET_"

const (
	CategorySourceFixture = "fixture"
	CategorySourcePlanner = "planner"
)

type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Backend    BackendConfig    `koanf:"backend"`
	Report     ReportConfig     `koanf:"report"`
	Categories CategoriesConfig `koanf:"categories"`
	Log        LogConfig        `koanf:"log"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type BackendConfig struct {
	Port    string `koanf:"port"`
	Workers int    `koanf:"workers"`
}

type ReportConfig struct {
	Endpoint string        `koanf:"endpoint"`
	UserID   string        `koanf:"user_id"`
	Timeout  time.Duration `koanf:"timeout"`
}

type CategoriesConfig struct {
	Source string `koanf:"source"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// In all cases the defaults should run the view API and the demo backend
// side by side on one machine.
var defaults = map[string]interface{}{
	"server.port":       "9446",
	"backend.port":      "8000",
	"backend.workers":   2,
	"report.endpoint":   "http://localhost:8000/generate_budget_plan",
	"report.user_id":    "demo_user",
	"report.timeout":    "0s",
	"categories.source": CategorySourceFixture,
	"log.level":         "info",
}

// Load layers defaults, the optional YAML file at path and BUDGET_*
// environment variables, in that order. A .env file in the working
// directory is read into the environment first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envKey(name string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_", ".", 1)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if err := validatePort(c.Server.Port); err != nil {
		errs = append(errs, fmt.Errorf("server.port: %w", err))
	}
	if err := validatePort(c.Backend.Port); err != nil {
		errs = append(errs, fmt.Errorf("backend.port: %w", err))
	}
	if c.Backend.Workers < 1 {
		errs = append(errs, fmt.Errorf("backend.workers: must be at least 1, got %d", c.Backend.Workers))
	}

	endpoint, err := url.Parse(c.Report.Endpoint)
	if err != nil || endpoint.Host == "" || (endpoint.Scheme != "http" && endpoint.Scheme != "https") {
		errs = append(errs, fmt.Errorf("report.endpoint: %q is not an http(s) URL", c.Report.Endpoint))
	}
	if c.Report.Timeout < 0 {
		errs = append(errs, errors.New("report.timeout: must not be negative"))
	}

	switch c.Categories.Source {
	case CategorySourceFixture, CategorySourcePlanner:
	default:
		errs = append(errs, fmt.Errorf("categories.source: unknown source %q", c.Categories.Source))
	}

	return errors.Join(errs...)
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%q is not a valid port", port)
	}
	return nil
}
