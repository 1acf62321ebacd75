package main

import (
	"net/http"

	converter "github.com/lyssadev/currency-converter"
	"github.com/lyssadev/currency-converter/fetchers"
	"github.com/lyssadev/currency-converter/services"
	"github.com/lyssadev/currency-converter/storage"
)

func createConverter(config *Config) (converter.Converter, converter.HistoryStore) {
	history := storage.NewFileHistoryStore(config.HistoryFile)

	service := services.ConversionService{
		Provider: fetchers.ExchangeRateAPIFetcher{
			URL:    config.APIURL,
			Client: &http.Client{Timeout: config.HTTPTimeout},
		},
		Cache:   storage.NewFileRateCache(config.CacheFile),
		History: history,
	}

	return service, history
}
