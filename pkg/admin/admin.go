// Package admin exposes the super-admin operations that apply platform
// wide rather than per site: the global ad tracking pixels and the site
// directory.
package admin

import (
	"strings"

	"github.com/quimera-ai/quimera/pkg/log"
	"github.com/quimera-ai/quimera/pkg/storage"
)

type Service struct {
	manager *storage.Manager
	logger  *log.Logger
}

func NewService(manager *storage.Manager) *Service {
	return &Service{
		manager: manager,
		logger:  log.ForService("admin"),
	}
}

// SavePixels persists the global pixel configuration. Ids are accepted as
// free text after trimming: provider id formats change too often to
// validate strictly, and a wrong id fails loudly in the provider's own
// dashboard.
func (s *Service) SavePixels(p storage.AdPixels) (storage.AdPixels, error) {
	p.MetaPixelID = strings.TrimSpace(p.MetaPixelID)
	p.GoogleTagID = strings.TrimSpace(p.GoogleTagID)
	p.TikTokPixelID = strings.TrimSpace(p.TikTokPixelID)
	p.LinkedInTagID = strings.TrimSpace(p.LinkedInTagID)

	// A provider with no id cannot be enabled.
	if p.MetaPixelID == "" {
		p.MetaEnabled = false
	}
	if p.GoogleTagID == "" {
		p.GoogleEnabled = false
	}
	if p.TikTokPixelID == "" {
		p.TikTokEnabled = false
	}
	if p.LinkedInTagID == "" {
		p.LinkedInEnabled = false
	}

	store, err := s.manager.AdminStore()
	if err != nil {
		return storage.AdPixels{}, err
	}
	if err := store.SavePixels(p); err != nil {
		return storage.AdPixels{}, err
	}
	saved, err := store.GetPixels()
	if err != nil {
		return storage.AdPixels{}, err
	}
	s.logger.Debugf("pixel configuration updated")
	return saved, nil
}

func (s *Service) GetPixels() (storage.AdPixels, error) {
	store, err := s.manager.AdminStore()
	if err != nil {
		return storage.AdPixels{}, err
	}
	return store.GetPixels()
}

func (s *Service) RegisterSite(info storage.SiteInfo) error {
	store, err := s.manager.AdminStore()
	if err != nil {
		return err
	}
	return store.RegisterSite(info)
}

func (s *Service) ListSites() ([]storage.SiteInfo, error) {
	store, err := s.manager.AdminStore()
	if err != nil {
		return nil, err
	}
	return store.ListSites()
}
