package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/cheng762/coin-search/service/console"
	"github.com/cheng762/coin-search/service/search"
)

func terminal(ctx context.Context, cmd *cli.Command) error {
	term := console.New(os.Stdin, os.Stdout)
	_, logger, presenter, err := setup(cmd, search.WithRenderer(term.Render))
	if err != nil {
		return err
	}
	defer logger.Sync()

	go presenter.Initialize(ctx)
	defer presenter.Close()

	// 读 stdin 会一直阻塞，收到信号时直接返回
	errCh := make(chan error, 1)
	go func() { errCh <- term.Run(presenter) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return nil
	}
}
