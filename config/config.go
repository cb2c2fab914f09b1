package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Signing    SigningConfig    `mapstructure:"signing"`
	Risk       RiskConfig       `mapstructure:"risk"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Ledger     LedgerConfig     `mapstructure:"ledger"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the listen address string.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type SigningConfig struct {
	Secret string `mapstructure:"secret"` // key for audit token HMAC
}

type RiskConfig struct {
	LowCeiling    int64  `mapstructure:"low_ceiling"`    // inclusive upper bound for LOW
	MediumCeiling int64  `mapstructure:"medium_ceiling"` // inclusive upper bound for MEDIUM
	BaseCurrency  string `mapstructure:"base_currency"`
}

type SettlementConfig struct {
	InstantCeiling int64         `mapstructure:"instant_ceiling"` // above this, deferred rail
	Timeout        time.Duration `mapstructure:"timeout"`
}

type LedgerConfig struct {
	MaxEvents int `mapstructure:"max_events"` // 0 = unbounded
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MGW_ (Mandate
// Gateway). Nested keys use underscore: MGW_SERVER_PORT,
// MGW_SIGNING_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("signing.secret", "demo_secret_key")
	v.SetDefault("risk.low_ceiling", 1000)
	v.SetDefault("risk.medium_ceiling", 10000)
	v.SetDefault("risk.base_currency", "AED")
	v.SetDefault("settlement.instant_ceiling", 25000)
	v.SetDefault("settlement.timeout", "5s")
	v.SetDefault("ledger.max_events", 100000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MGW_SETTLEMENT_TIMEOUT -> settlement.timeout
	v.SetEnvPrefix("MGW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
