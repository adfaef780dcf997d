package env

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	Prefix         = "BOOKS"
	ConfigFileVar  = Prefix + "_CONFIG_FILE"
	DefaultPort    = 3000
	DefaultAddress = ""
)

type Env struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	Port            int    `mapstructure:"port"`
	Mode            string `mapstructure:"mode"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

var (
	serverModes = []string{"debug", "release", "test"}
	logFormats  = []string{"text", "json"}
	logLevels   = []string{"debug", "info", "warn", "error"}
)

// New returns a viper instance holding the defaults, reading BOOKS_* variables
// for every key (server.port -> BOOKS_SERVER_PORT).
func New() *viper.Viper {

	v := viper.New()

	v.SetDefault("server.address", DefaultAddress)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 5)
	v.SetDefault("log.format", "text")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(Prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// GetEnv reads configFile when given and decodes v into a validated Env.
func GetEnv(v *viper.Viper, configFile string) (*Env, error) {

	if configFile != "" {

		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	env.Log.Format = strings.ToLower(env.Log.Format)
	env.Log.Level = strings.ToLower(env.Log.Level)

	if err := env.validate(); err != nil {
		return nil, err
	}

	return &env, nil
}

func (e Env) validate() error {

	if e.Server.Port < 1 || e.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", e.Server.Port)
	}

	if !slices.Contains(serverModes, e.Server.Mode) {
		return fmt.Errorf("server.mode must be one of %v, got %q", serverModes, e.Server.Mode)
	}

	if e.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout can not be negative, got %d", e.Server.ShutdownTimeout)
	}

	if !slices.Contains(logFormats, e.Log.Format) {
		return fmt.Errorf("log.format must be one of %v, got %q", logFormats, e.Log.Format)
	}

	if !slices.Contains(logLevels, e.Log.Level) {
		return fmt.Errorf("log.level must be one of %v, got %q", logLevels, e.Log.Level)
	}

	return nil
}
