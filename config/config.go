package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env                string `mapstructure:"ENV"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	DefaultSlotMinutes int    `mapstructure:"DEFAULT_SLOT_MINUTES"`
	WeekStart          string `mapstructure:"WEEK_START"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or
// defaults. The core itself never requires it; callers that skip it get the
// same defaults through the accessors below.
func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DEFAULT_SLOT_MINUTES", 30)
	viper.SetDefault("WEEK_START", "Monday")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// GetEnv returns the application environment.
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}

// DefaultSlotMinutes returns the configured bookable-slot length, falling
// back to 30 minutes when configuration was never loaded.
func DefaultSlotMinutes() int {
	if AppConfig.DefaultSlotMinutes <= 0 {
		return 30
	}
	return AppConfig.DefaultSlotMinutes
}

// WeekStart returns the configured first day of the scheduling grid.
func WeekStart() string {
	if AppConfig.WeekStart == "" {
		return "Monday"
	}
	return AppConfig.WeekStart
}
