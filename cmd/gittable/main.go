// Command gittable turns GitHub image folders into gallery tables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/gittable/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gittable/internal/adapters/driven/desktop"
	"github.com/custodia-labs/gittable/internal/adapters/driven/imagedecode"
	"github.com/custodia-labs/gittable/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/gittable/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/gittable/internal/adapters/driving/cli"
	"github.com/custodia-labs/gittable/internal/connectors/github"
	"github.com/custodia-labs/gittable/internal/core/services"
	"github.com/custodia-labs/gittable/internal/logger"
	"github.com/custodia-labs/gittable/internal/renderers"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cli.SetBootstrap(wire)
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// wire builds every adapter and service once flags are known.
func wire(_ context.Context, opts cli.Options) (func(), error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("locating config directory: %w", err)
		}
		configDir = dir
	}
	logger.Debug("config dir: %s", configDir)

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	scanStore, err := sqlite.NewStore(filepath.Join(configDir, "data"))
	if err != nil {
		return nil, fmt.Errorf("opening scan history: %w", err)
	}

	files, err := filesystem.NewStore(opts.Root)
	if err != nil {
		_ = scanStore.Close()
		return nil, fmt.Errorf("opening storage root: %w", err)
	}
	logger.Debug("storage root: %s", files.Root())

	client := github.NewClient()
	fetcher := github.NewRawFetcher(nil)

	settingsService := services.NewSettingsService(configStore)
	// Reading settings registers the saved token for log redaction.
	if _, err := settingsService.Get(); err != nil {
		logger.Warn("read settings: %v", err)
	}
	scanService := services.NewScanService(client)
	historyService := services.NewHistoryService(scanStore)
	registry := renderers.Defaults()

	cli.SetServices(cli.Services{
		Scan:     scanService,
		Render:   services.NewRenderService(registry),
		Download: services.NewDownloadService(fetcher, files),
		Settings: settingsService,
		History:  historyService,
		Actions:  services.NewActionService(desktop.NewClipboard(), desktop.NewBrowser()),
		Preview:  services.NewPreviewService(fetcher, imagedecode.New()),
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		Curation: services.NewCurationService(scanService, settingsService, registry, historyService),
		Watcher:  configStore,
	})

	return func() {
		if err := scanStore.Close(); err != nil {
			logger.Warn("closing scan history: %v", err)
		}
		if err := files.Close(); err != nil {
			logger.Warn("closing storage root: %v", err)
		}
	}, nil
}
