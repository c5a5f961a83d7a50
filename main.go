package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/cheng762/coin-search/common"
	"github.com/cheng762/coin-search/config"
	"github.com/cheng762/coin-search/logging"
	"github.com/cheng762/coin-search/service/data_adaptor"
	"github.com/cheng762/coin-search/service/search"
)

func main() {
	cmd := &cli.Command{
		Name:  "coin-search",
		Usage: "search the top 250 cryptocurrencies by market cap",
		Commands: []*cli.Command{{
			Name:   "start",
			Usage:  "start web service",
			Flags:  commonFlags(),
			Action: router,
		},
			{
				Name:   "console",
				Usage:  "search from the terminal",
				Flags:  commonFlags(),
				Action: terminal,
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a YAML config file",
		},
	}
}

// setup 加载配置、创建 logger 和 Presenter；调用方负责 Initialize
func setup(cmd *cli.Command, opts ...search.Option) (*config.Config, *zap.Logger, *search.Presenter, error) {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	tag, err := common.ParseLocale(cfg.Display.Locale)
	if err != nil {
		return nil, nil, nil, err
	}

	fetcher := data_adaptor.NewFetcher(data_adaptor.FetcherOptions{
		BaseURL:   cfg.CoinGecko.BaseURL,
		APIKey:    cfg.CoinGecko.APIKey,
		UserAgent: cfg.CoinGecko.UserAgent,
	}, logger)

	opts = append([]search.Option{search.WithLocale(tag)}, opts...)
	return cfg, logger, search.NewPresenter(fetcher, logger, opts...), nil
}
