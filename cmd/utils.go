package cmd

import (
	"fmt"

	"github.com/quimera-ai/quimera/pkg/config"
	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/storage"
)

// openEnvironment loads the configuration and opens the storage manager. The
// caller owns the manager and must close it.
func openEnvironment(configPath string) (*config.Config, *storage.Manager, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	registry := core.GetGlobalRegistry()
	manager := storage.NewManager(cfg.StorageDir, registry)
	return cfg, manager, nil
}

func closeManager(manager *storage.Manager) {
	if err := manager.Close(); err != nil {
		fmt.Printf("Warning: failed to close storage manager: %v\n", err)
	}
}

// registeredSites returns the site directory from the admin store.
func registeredSites(manager *storage.Manager) ([]storage.SiteInfo, error) {
	admin, err := manager.AdminStore()
	if err != nil {
		return nil, fmt.Errorf("opening admin store: %w", err)
	}
	return admin.ListSites()
}
