// Package config loads hub settings from a TOML file and the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup.
type Config struct {
	Host           string
	Port           int
	Debug          bool
	MaxMessageSize int64
	SendBuffer     int
	AllowedOrigins []string
}

// Init wires viper: defaults first, then an optional config file, with
// CHATHUB_* environment variables overriding both (CHATHUB_MAX_MESSAGE_SIZE
// overrides max-message-size, and so on).
func Init(file string) error {
	viper.SetDefault("host", "0.0.0.0")
	viper.SetDefault("port", 8080)
	viper.SetDefault("debug", false)
	viper.SetDefault("max-message-size", 64*1024)
	viper.SetDefault("send-buffer", 128)
	viper.SetDefault("allowed-origins", []string{})

	viper.SetEnvPrefix("chathub")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if file == "" {
		return nil
	}
	viper.SetConfigFile(file)
	viper.SetConfigType("toml")
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", file, err)
	}
	return nil
}

// Load materializes the current viper state into a Config.
func Load() Config {
	return Config{
		Host:           viper.GetString("host"),
		Port:           viper.GetInt("port"),
		Debug:          viper.GetBool("debug"),
		MaxMessageSize: viper.GetInt64("max-message-size"),
		SendBuffer:     viper.GetInt("send-buffer"),
		AllowedOrigins: viper.GetStringSlice("allowed-origins"),
	}
}
