package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/lyssadev/currency-converter/fetchers"
	"github.com/lyssadev/currency-converter/storage"
)

type Config struct {
	APIURL      string
	CacheFile   string
	HistoryFile string
	HTTPTimeout time.Duration
}

// getConfig resolves configuration from an optional config.yml in the
// working directory and CURRENCY_CONVERTER_* environment variables,
// falling back to the published defaults.
func getConfig() (*Config, error) {
	viper.SetDefault("api_url", fetchers.ExchangeRateAPIURL)
	viper.SetDefault("cache_file", storage.DefaultRatesCacheFile)
	viper.SetDefault("history_file", storage.DefaultHistoryFile)
	viper.SetDefault("http_timeout", fetchers.DefaultTimeout)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("CURRENCY_CONVERTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error while reading in the config file: %w", err)
		}
	}

	return &Config{
		APIURL:      viper.GetString("api_url"),
		CacheFile:   viper.GetString("cache_file"),
		HistoryFile: viper.GetString("history_file"),
		HTTPTimeout: viper.GetDuration("http_timeout"),
	}, nil
}
