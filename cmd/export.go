package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/palette"
	"github.com/quimera-ai/quimera/pkg/storage"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// siteArchive is the on-disk export format: one YAML document holding the
// full content of a site, zstd-compressed.
type siteArchive struct {
	Site     string          `yaml:"site"`
	Name     string          `yaml:"name,omitempty"`
	Exported time.Time       `yaml:"exported"`
	Pages    []core.Page     `yaml:"pages"`
	Sections []core.Section  `yaml:"sections"`
	News     []core.NewsItem `yaml:"news,omitempty"`
	Articles []core.Article  `yaml:"articles,omitempty"`
	Palette  []palette.Entry `yaml:"palette,omitempty"`
}

// ExportCommand creates the export command
func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export a site's content to a compressed archive",
		ArgsUsage: "<site>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file (defaults to <site>.quimera.zst)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("usage: quimera export <site>")
			}
			return exportSite(c.String("config"), c.Args().First(), c.String("output"))
		},
	}
}

func exportSite(configPath, siteID, output string) error {
	_, manager, err := openEnvironment(configPath)
	if err != nil {
		return err
	}
	defer closeManager(manager)

	store, err := manager.GetStore(siteID)
	if err != nil {
		return fmt.Errorf("opening site store: %w", err)
	}

	archive, err := buildArchive(siteID, store)
	if err != nil {
		return err
	}

	sites, err := registeredSites(manager)
	if err == nil {
		for _, site := range sites {
			if site.ID == siteID {
				archive.Name = site.Name
			}
		}
	}

	if output == "" {
		output = fmt.Sprintf("%s.quimera.zst", siteID)
	}
	if err := writeArchive(output, archive); err != nil {
		return err
	}

	fmt.Printf("Exported %d pages, %d sections, %d posts to %s\n",
		len(archive.Pages), len(archive.Sections), len(archive.News), output)
	return nil
}

func buildArchive(siteID string, store *storage.SiteStore) (*siteArchive, error) {
	archive := &siteArchive{Site: siteID, Exported: time.Now().UTC()}

	pages, err := store.ListPages()
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	archive.Pages = pages

	for _, page := range pages {
		sections, err := store.ListSections(page.ID)
		if err != nil {
			return nil, fmt.Errorf("listing sections of %s: %w", page.ID, err)
		}
		archive.Sections = append(archive.Sections, sections...)
	}

	news, err := store.ListNews("", 10000)
	if err != nil {
		return nil, fmt.Errorf("listing news: %w", err)
	}
	archive.News = news

	articles, err := store.ListArticles()
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	archive.Articles = articles

	history, err := store.LoadPaletteHistory()
	if err != nil {
		return nil, fmt.Errorf("loading palette history: %w", err)
	}
	archive.Palette = history

	return archive, nil
}

func writeArchive(path string, archive *siteArchive) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	compressor, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("creating compressor: %w", err)
	}

	encoder := yaml.NewEncoder(compressor)
	if err := encoder.Encode(archive); err != nil {
		return fmt.Errorf("encoding archive: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}
	if err := compressor.Close(); err != nil {
		return fmt.Errorf("finishing compression: %w", err)
	}
	return file.Close()
}
