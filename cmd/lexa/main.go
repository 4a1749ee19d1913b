// Command lexa is a terminal dictionary with a self-refreshing local
// dataset.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/openlexica/lexa-cli/internal/adapters/driven/config/file"
	"github.com/openlexica/lexa-cli/internal/adapters/driven/download"
	"github.com/openlexica/lexa-cli/internal/adapters/driven/netcheck"
	"github.com/openlexica/lexa-cli/internal/adapters/driven/storage/sqlite"
	"github.com/openlexica/lexa-cli/internal/adapters/driving/cli"
	"github.com/openlexica/lexa-cli/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *sqlite.Store

	cli.SetBootstrap(func(dataDir, configDir string) (cli.Services, error) {
		var err error
		store, err = sqlite.NewStore(dataDir)
		if err != nil {
			return cli.Services{}, fmt.Errorf("opening dictionary store: %w", err)
		}

		kv, err := file.NewKVStore(configDir)
		if err != nil {
			return cli.Services{}, fmt.Errorf("opening config store: %w", err)
		}

		// An empty override falls back to the canonical dataset URL.
		fetcher := download.NewFetcher(kv.GetString("dataset.url"))
		checker := netcheck.NewChecker(fetcher.Host())

		return cli.Services{
			Searcher:  services.NewSearchService(store),
			Freshness: services.NewFreshnessService(kv, checker, fetcher, store, nil),
			Importer:  store,
		}, nil
	})

	err := cli.ExecuteContext(ctx)
	if store != nil {
		store.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
