package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Reservation ReservationConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type ReservationConfig struct {
	// AllowOverbooking keeps reservation creation succeeding even when the
	// requested participants exceed the remaining spots. The shortfall is
	// still visible through the availability snapshot.
	AllowOverbooking        bool
	CancellationWindowHours int
	AvailabilityCacheTTLSec int
	EstimateCacheTTLSec     int
	CacheCapacity           int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("ALLOW_OVERBOOKING", true)
	viper.SetDefault("CANCELLATION_WINDOW_HOURS", 24)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("ESTIMATE_CACHE_TTL_SECONDS", 1800)
	viper.SetDefault("CACHE_CAPACITY", 500)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Reservation: ReservationConfig{
			AllowOverbooking:        viper.GetBool("ALLOW_OVERBOOKING"),
			CancellationWindowHours: viper.GetInt("CANCELLATION_WINDOW_HOURS"),
			AvailabilityCacheTTLSec: viper.GetInt("AVAILABILITY_CACHE_TTL_SECONDS"),
			EstimateCacheTTLSec:     viper.GetInt("ESTIMATE_CACHE_TTL_SECONDS"),
			CacheCapacity:           viper.GetInt("CACHE_CAPACITY"),
		},
	}

	return config, nil
}
