package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string            `mapstructure:"environment"`
	LogLevel    string            `mapstructure:"log_level"`
	Server      ServerConfig      `mapstructure:"server"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Ephemeris   EphemerisConfig   `mapstructure:"ephemeris"`
	Calculation CalculationConfig `mapstructure:"calculation"`
	Telemetry   TelemetryConfig   `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RedisConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Password        string `mapstructure:"password"`
	DB              int    `mapstructure:"db"`
	ReportTTLHours  int    `mapstructure:"report_ttl_hours"`
	Enabled         bool   `mapstructure:"enabled"`
}

type EphemerisConfig struct {
	CacheSize int `mapstructure:"cache_size"`
}

type CalculationConfig struct {
	DefaultHouseSystem string `mapstructure:"default_house_system"`
	DefaultAyanamsa    string `mapstructure:"default_ayanamsa"`
	DefaultDashaDepth  int    `mapstructure:"default_dasha_depth"`
	DefaultKPSubDepth  int    `mapstructure:"default_kp_sub_depth"`
}

type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	setDefaults()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Config file is optional; defaults plus environment suffice.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	config.Environment = strings.ToLower(config.Environment)

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return nil, fmt.Errorf("server port %d out of range", config.Server.Port)
	}
	if config.Ephemeris.CacheSize < 0 {
		return nil, fmt.Errorf("ephemeris cache size must be non-negative, got %d", config.Ephemeris.CacheSize)
	}
	if config.Redis.ReportTTLHours < 1 {
		return nil, fmt.Errorf("redis report TTL must be at least 1 hour, got %d", config.Redis.ReportTTLHours)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.report_ttl_hours", 24)
	viper.SetDefault("redis.enabled", true)

	viper.SetDefault("ephemeris.cache_size", 4096)

	viper.SetDefault("calculation.default_house_system", "PLACIDUS")
	viper.SetDefault("calculation.default_ayanamsa", "LAHIRI")
	viper.SetDefault("calculation.default_dasha_depth", 2)
	viper.SetDefault("calculation.default_kp_sub_depth", 2)

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.service_name", "astro-engine")
}

// RedisAddr is the host:port dial string.
func (r RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
