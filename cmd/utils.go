package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AlexSSD7/qargs/config"
	"github.com/AlexSSD7/qargs/host"
	"github.com/AlexSSD7/qargs/storage"
	"github.com/spf13/afero"
)

var osFs = afero.NewOsFs()

func createStoreOrExit() *storage.Storage {
	store, err := storage.NewStorage(slog.With("caller", "storage"), osFs, dataDirFlag)
	if err != nil {
		slog.Error("Failed to create Qargs data storage", "error", err.Error(), "data-dir", dataDirFlag)
		os.Exit(1)
	}

	return store
}

func loadConfigOrExit(path string) *config.Config {
	path = filepath.Clean(path)

	cfg, err := config.Load(osFs, path)
	if err != nil {
		slog.Error("Failed to load machine description", "error", err.Error(), "path", path)
		os.Exit(1)
	}

	slog.Debug("Loaded machine description", "name", cfg.Information.Name, "arch", cfg.System.Architecture, "machine", cfg.System.Target)

	return cfg
}

// detectHost never fails. Facts that could not be detected stay at their
// zero value, which the compiler treats as unknown.
func detectHost() host.Info {
	info, err := host.Detect(osFs)
	if err != nil {
		slog.Warn("Host detection incomplete", "error", err.Error())
	}

	return info
}
