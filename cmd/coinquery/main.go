package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-kit/log"
	"github.com/joho/godotenv"

	"coinquery/internal/cli"
	"coinquery/internal/coingecko"
	"coinquery/internal/config"
	"coinquery/internal/httpx"
	"coinquery/internal/quote"
)

func main() {
	// Optional .env for COINGECKO_API_KEY and friends.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.NewLogfmtLogger(os.Stderr).Log("msg", "config", "err", err)
		os.Exit(1)
	}

	logger := log.NewNopLogger()
	if cfg.Debug {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	}

	timeout := time.Duration(cfg.RequestTimeoutSec) * time.Second
	httpClient := httpx.New(timeout)

	client, err := coingecko.New(
		cfg.APIKey,
		coingecko.WithBaseURL(cfg.BaseURL),
		coingecko.WithHTTPClient(httpClient.HTTP),
		coingecko.WithHeader(http.Header{
			"User-Agent": []string{"coinquery/1.0"},
		}),
	)
	if err != nil {
		logger.Log("msg", "coingecko client", "err", err)
		os.Exit(1)
	}

	service := quote.NewLoggingService(logger, quote.NewService(client, cfg.VsCurrencies))

	os.Exit(cli.New(os.Stdout, os.Stderr, service).Run(context.Background(), os.Args[1:]))
}
