// Package media manages the per-site asset library. Image selection in the
// editor pulls from three sources: previously uploaded files, fresh
// uploads, and generated images. The latter two are opaque contracts: this
// package stores whatever bytes or URL comes back and never interprets
// them.
package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/quimera-ai/quimera/pkg/log"
)

// Asset is one entry of a site's media library.
type Asset struct {
	ID       string    `json:"id"`
	SiteID   string    `json:"site_id"`
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Size     int64     `json:"size"`
	Uploaded time.Time `json:"uploaded"`
}

// Generator produces an image from a text prompt and returns a URL for it.
// The production implementation calls an external image service; what model
// or provider sits behind it is deliberately out of scope here.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Library stores uploaded assets on disk under one directory per site and
// serves them back by relative URL.
type Library struct {
	baseDir   string
	urlPrefix string
	generator Generator
	logger    *log.Logger
}

// NewLibrary creates a file-backed library. urlPrefix is the public path
// assets are served under, e.g. "/media". generator may be nil; Generate
// then reports an error instead of producing images.
func NewLibrary(baseDir, urlPrefix string, generator Generator) *Library {
	return &Library{
		baseDir:   baseDir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		generator: generator,
		logger:    log.ForService("media"),
	}
}

// Upload stores the given bytes and returns the created asset. The stored
// filename is prefixed with a random id so uploads never collide, while the
// original name survives for display. The filename doubles as the asset id:
// it is the one identifier both Upload and List can derive.
func (l *Library) Upload(siteID, name string, r io.Reader) (Asset, error) {
	safeName := sanitizeName(name)
	fileName := fmt.Sprintf("%s-%s", uuid.NewString()[:8], safeName)

	siteDir := filepath.Join(l.baseDir, siteID)
	if err := os.MkdirAll(siteDir, 0755); err != nil {
		return Asset{}, fmt.Errorf("creating media dir for %s: %w", siteID, err)
	}

	path := filepath.Join(siteDir, fileName)
	f, err := os.Create(path)
	if err != nil {
		return Asset{}, fmt.Errorf("creating asset file: %w", err)
	}
	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return Asset{}, fmt.Errorf("writing asset %s: %w", fileName, err)
	}

	asset := Asset{
		ID:       fileName,
		SiteID:   siteID,
		Name:     safeName,
		URL:      fmt.Sprintf("%s/%s/%s", l.urlPrefix, siteID, fileName),
		Size:     size,
		Uploaded: time.Now().UTC(),
	}
	l.logger.Debugf("stored asset %s (%d bytes) for site %s", fileName, size, siteID)
	return asset, nil
}

// List returns a site's assets, newest first.
func (l *Library) List(siteID string) ([]Asset, error) {
	siteDir := filepath.Join(l.baseDir, siteID)
	entries, err := os.ReadDir(siteDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading media dir for %s: %w", siteID, err)
	}

	var assets []Asset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		name := entry.Name()
		displayName := name
		if i := strings.IndexByte(name, '-'); i == 8 {
			displayName = name[i+1:]
		}
		assets = append(assets, Asset{
			ID:       name,
			SiteID:   siteID,
			Name:     displayName,
			URL:      fmt.Sprintf("%s/%s/%s", l.urlPrefix, siteID, name),
			Size:     info.Size(),
			Uploaded: info.ModTime().UTC(),
		})
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Uploaded.After(assets[j].Uploaded)
	})
	return assets, nil
}

// Open returns a reader for a stored asset file, for serving.
func (l *Library) Open(siteID, fileName string) (io.ReadCloser, error) {
	clean := filepath.Base(fileName)
	f, err := os.Open(filepath.Join(l.baseDir, siteID, clean))
	if err != nil {
		return nil, fmt.Errorf("opening asset %s: %w", clean, err)
	}
	return f, nil
}

// Dir returns the on-disk directory for a site's assets, for http.FileServer.
func (l *Library) Dir(siteID string) string {
	return filepath.Join(l.baseDir, siteID)
}

// Generate produces an image from a prompt through the configured
// generator.
func (l *Library) Generate(ctx context.Context, siteID, prompt string) (string, error) {
	if l.generator == nil {
		return "", fmt.Errorf("image generation is not configured")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt must not be empty")
	}
	url, err := l.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generating image: %w", err)
	}
	l.logger.Debugf("generated image for site %s", siteID)
	return url, nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
