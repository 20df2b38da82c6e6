// Command lightbar is a keyboard-driven quick launcher: one query bar
// across installed applications, recent files, system folders, notes,
// plugins, and the findexd file index.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lightbar-dev/lightbar/internal/adapters/driven/activate"
	"github.com/lightbar-dev/lightbar/internal/adapters/driven/catalog/apps"
	"github.com/lightbar-dev/lightbar/internal/adapters/driven/catalog/memory"
	"github.com/lightbar-dev/lightbar/internal/adapters/driven/catalog/sqlite"
	"github.com/lightbar-dev/lightbar/internal/adapters/driven/config/file"
	"github.com/lightbar-dev/lightbar/internal/adapters/driven/index/findexd"
	"github.com/lightbar-dev/lightbar/internal/adapters/driving/cli"
	"github.com/lightbar-dev/lightbar/internal/core/ports/driven"
	"github.com/lightbar-dev/lightbar/internal/core/services"
	"github.com/lightbar-dev/lightbar/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("opening catalog store: %w", err)
	}
	defer store.Close()

	appsDir := configStore.GetString(file.KeyAppsDir)
	if appsDir == "" {
		appsDir = apps.DefaultDir()
	}
	appCatalog, err := apps.New(appsDir)
	if err != nil {
		return fmt.Errorf("scanning applications: %w", err)
	}
	defer appCatalog.Close()

	var index driven.IndexService
	if file.IndexEnabled(configStore) {
		index = findexd.New(file.IndexURL(configStore))
	} else {
		logger.Info("File-index source disabled by configuration")
	}

	launcher, err := services.NewLauncher(index, services.Catalogs{
		Apps:    appCatalog,
		History: store.FileHistory(),
		Plugins: memory.NewPluginRegistry(),
		Folders: memory.NewSystemFolderCatalog(),
		Notes:   store.NoteStore(),
	}, file.LauncherConfig(configStore))
	if err != nil {
		return fmt.Errorf("starting launcher: %w", err)
	}
	defer launcher.Close()

	cli.SetServices(&cli.Services{
		Launcher:  launcher,
		Activator: activate.New(store.FileHistory()),
		Index:     index,
		Notes:     store.NoteStore(),
		History:   store.FileHistory(),
		Config:    configStore,
	})

	return cli.Execute(ctx)
}
