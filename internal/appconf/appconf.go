package appconf

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Environment is the operating environment the dashboard runs in.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// EnvPrefix is the prefix for environment variables read by Load, e.g. SPACEXDASH_PORT.
const EnvPrefix = "SPACEXDASH"

// Default settings. With none of them overridden the dashboard serves
// spacex_launch_dash.csv from the working directory on port 8050.
const (
	DefaultPort            = 8050
	DefaultDataPath        = "spacex_launch_dash.csv"
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds all the configuration settings for the Application.
type Config struct {
	Port            int
	Env             Environment
	DataPath        string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// EnvFlagToEnvironment maps a command-line or environment value to an Environment.
// Unknown values map to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}

// Load builds a Config from defaults, an optional config file, SPACEXDASH_*
// environment variables and finally overrides, in increasing precedence.
// Override keys are port, env, data_path, log_level and shutdown_timeout.
func Load(configFile string, overrides map[string]any) (Config, error) {
	v := viper.New()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("env", Development.String())
	v.SetDefault("data_path", DefaultDataPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("shutdown_timeout", DefaultShutdownTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	cfg := Config{
		Port:            v.GetInt("port"),
		Env:             EnvFlagToEnvironment(v.GetString("env")),
		DataPath:        v.GetString("data_path"),
		LogLevel:        v.GetString("log_level"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Port)
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return errors.New("data path cannot be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid shutdown timeout %s: must be positive", c.ShutdownTimeout)
	}
	return nil
}
