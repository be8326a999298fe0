package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/news"
	"github.com/quimera-ai/quimera/pkg/storage"
	"github.com/urfave/cli/v3"
)

// SitesCommand creates the sites command
func SitesCommand() *cli.Command {
	return &cli.Command{
		Name:  "sites",
		Usage: "Manage sites",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List registered sites",
				Action: func(ctx context.Context, c *cli.Command) error {
					return listSites(c.String("config"))
				},
			},
			{
				Name:      "create",
				Usage:     "Create a site with an empty home page",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "id",
						Usage: "Site identifier (defaults to a slug of the name)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("usage: quimera sites create <name>")
					}
					return createSite(c.String("config"), c.String("id"), c.Args().First())
				},
			},
		},
	}
}

func listSites(configPath string) error {
	_, manager, err := openEnvironment(configPath)
	if err != nil {
		return err
	}
	defer closeManager(manager)

	sites, err := registeredSites(manager)
	if err != nil {
		return err
	}
	printSites(sites)
	return nil
}

func createSite(configPath, id, name string) error {
	_, manager, err := openEnvironment(configPath)
	if err != nil {
		return err
	}
	defer closeManager(manager)

	if id == "" {
		id = news.Slugify(name)
	}
	if id == "" {
		return fmt.Errorf("site name %q produces an empty identifier", name)
	}

	admin, err := manager.AdminStore()
	if err != nil {
		return fmt.Errorf("opening admin store: %w", err)
	}
	if err := admin.RegisterSite(storage.SiteInfo{ID: id, Name: name, CreatedAt: time.Now().UTC()}); err != nil {
		return fmt.Errorf("registering site: %w", err)
	}

	store, err := manager.GetStore(id)
	if err != nil {
		return fmt.Errorf("opening site store: %w", err)
	}
	home := core.Page{ID: "home", SiteID: id, Name: "Home", Slug: "home", CreatedAt: time.Now().UTC()}
	if err := store.CreatePage(home); err != nil {
		return fmt.Errorf("creating home page: %w", err)
	}

	fmt.Printf("Site %s created with id %s\n", name, id)
	return nil
}
