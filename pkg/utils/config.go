package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Booking BookingConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type BookingConfig struct {
	PricePerSeat int
}

// Deployed backend used when API_BASE_URL is not set
const DefaultBaseURL = "https://servermovie-j6nj.onrender.com/api"

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "movie-booking")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("API_BASE_URL", DefaultBaseURL)
	viper.SetDefault("API_TIMEOUT_SECONDS", 15)
	viper.SetDefault("PRICE_PER_SEAT", 250)

	// .env is optional for a client tool; env vars and defaults cover the rest
	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		API: APIConfig{
			BaseURL:        viper.GetString("API_BASE_URL"),
			TimeoutSeconds: viper.GetInt("API_TIMEOUT_SECONDS"),
		},
		Booking: BookingConfig{
			PricePerSeat: viper.GetInt("PRICE_PER_SEAT"),
		},
	}

	return config, nil
}
