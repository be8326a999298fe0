package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/quimera-ai/quimera/pkg/storage"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// ImportCommand creates the import command
func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import a site archive produced by export",
		ArgsUsage: "<archive>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "site",
				Usage: "Import under a different site id",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("usage: quimera import <archive>")
			}
			return importSite(c.String("config"), c.Args().First(), c.String("site"))
		},
	}
}

func importSite(configPath, archivePath, siteID string) error {
	archive, err := readArchive(archivePath)
	if err != nil {
		return err
	}
	if siteID == "" {
		siteID = archive.Site
	}
	if siteID == "" {
		return fmt.Errorf("archive carries no site id, pass --site")
	}

	_, manager, err := openEnvironment(configPath)
	if err != nil {
		return err
	}
	defer closeManager(manager)

	admin, err := manager.AdminStore()
	if err != nil {
		return fmt.Errorf("opening admin store: %w", err)
	}
	name := archive.Name
	if name == "" {
		name = siteID
	}
	if err := admin.RegisterSite(storage.SiteInfo{ID: siteID, Name: name, CreatedAt: time.Now().UTC()}); err != nil {
		return fmt.Errorf("registering site: %w", err)
	}

	store, err := manager.GetStore(siteID)
	if err != nil {
		return fmt.Errorf("opening site store: %w", err)
	}

	for _, page := range archive.Pages {
		page.SiteID = siteID
		if err := store.CreatePage(page); err != nil {
			return fmt.Errorf("importing page %s: %w", page.ID, err)
		}
	}
	for _, section := range archive.Sections {
		section.SiteID = siteID
		if err := store.AddSection(section); err != nil {
			return fmt.Errorf("importing section %s: %w", section.ID, err)
		}
	}
	for _, item := range archive.News {
		item.SiteID = siteID
		if err := store.SaveNews(item); err != nil {
			return fmt.Errorf("importing post %s: %w", item.ID, err)
		}
	}
	for _, article := range archive.Articles {
		article.SiteID = siteID
		if err := store.SaveArticle(article); err != nil {
			return fmt.Errorf("importing article %s: %w", article.ID, err)
		}
	}
	if len(archive.Palette) > 0 {
		if err := store.SavePaletteHistory(archive.Palette); err != nil {
			return fmt.Errorf("importing palette history: %w", err)
		}
	}

	fmt.Printf("Imported %d pages, %d sections, %d posts into %s\n",
		len(archive.Pages), len(archive.Sections), len(archive.News), siteID)
	return nil
}

func readArchive(path string) (*siteArchive, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	decompressor, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("creating decompressor: %w", err)
	}
	defer decompressor.Close()

	var archive siteArchive
	if err := yaml.NewDecoder(decompressor).Decode(&archive); err != nil {
		return nil, fmt.Errorf("decoding archive: %w", err)
	}
	return &archive, nil
}
