package storage

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/quimera-ai/quimera/pkg/core"
)

// Manager opens and caches per-site stores. Each site gets its own database
// file under the storage directory; stores are opened lazily on first use.
type Manager struct {
	storageDir string
	registry   *core.Registry
	stores     map[string]*SiteStore
	admin      *AdminStore
	mu         sync.RWMutex
}

func NewManager(storageDir string, registry *core.Registry) *Manager {
	return &Manager{
		storageDir: storageDir,
		registry:   registry,
		stores:     make(map[string]*SiteStore),
	}
}

func (m *Manager) GetStore(siteID string) (*SiteStore, error) {
	m.mu.RLock()
	store, exists := m.stores[siteID]
	m.mu.RUnlock()

	if exists {
		return store, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if store, exists := m.stores[siteID]; exists {
		return store, nil
	}

	dbPath := filepath.Join(m.storageDir, fmt.Sprintf("%s.db", siteID))
	store, err := NewSiteStore(dbPath, siteID, m.registry)
	if err != nil {
		return nil, fmt.Errorf("creating store for %s: %w", siteID, err)
	}

	m.stores[siteID] = store
	return store, nil
}

// AdminStore returns the shared super-admin store (tracking pixels, site
// directory), opened lazily like site stores.
func (m *Manager) AdminStore() (*AdminStore, error) {
	m.mu.RLock()
	admin := m.admin
	m.mu.RUnlock()
	if admin != nil {
		return admin, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.admin != nil {
		return m.admin, nil
	}

	admin, err := NewAdminStore(filepath.Join(m.storageDir, "admin.db"))
	if err != nil {
		return nil, fmt.Errorf("creating admin store: %w", err)
	}
	m.admin = admin
	return admin, nil
}

// Sites returns the ids of all currently opened site stores.
func (m *Manager) Sites() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sites := make([]string, 0, len(m.stores))
	for id := range m.stores {
		sites = append(sites, id)
	}
	return sites
}

// GetStats aggregates content counts across all open site stores.
func (m *Manager) GetStats() (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]any)
	totalSections := 0
	for siteID, store := range m.stores {
		siteStats, err := store.GetStats()
		if err != nil {
			return nil, fmt.Errorf("getting stats for %s: %w", siteID, err)
		}
		stats[siteID] = siteStats
		if n, ok := siteStats["sections"].(int); ok {
			totalSections += n
		}
	}
	stats["total_sections"] = totalSections
	stats["total_sites"] = len(m.stores)
	return stats, nil
}

// Optimize runs SQLite maintenance across every open store.
func (m *Manager) Optimize() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for siteID, store := range m.stores {
		if err := store.Optimize(); err != nil {
			return fmt.Errorf("optimizing %s: %w", siteID, err)
		}
	}
	return nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for siteID, store := range m.stores {
		if err := store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing store %s: %w", siteID, err))
		}
	}
	m.stores = make(map[string]*SiteStore)

	if m.admin != nil {
		if err := m.admin.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing admin store: %w", err))
		}
		m.admin = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing stores: %v", errs)
	}
	return nil
}
