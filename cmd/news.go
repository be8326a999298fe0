package cmd

import (
	"context"
	"fmt"

	"github.com/quimera-ai/quimera/pkg/news"
	"github.com/urfave/cli/v3"
)

// NewsCommand creates the news command
func NewsCommand() *cli.Command {
	return &cli.Command{
		Name:  "news",
		Usage: "Inspect news posts",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List news posts, optionally matching a search query",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "site",
						Usage:    "Site identifier",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "query",
						Usage: "Full-text search query",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of posts",
						Value: 50,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return listNews(c.String("config"), c.String("site"), c.String("query"), c.Int("limit"))
				},
			},
		},
	}
}

func listNews(configPath, siteID, query string, limit int) error {
	_, manager, err := openEnvironment(configPath)
	if err != nil {
		return err
	}
	defer closeManager(manager)

	service := news.NewService(manager)
	items, err := service.List(siteID, query, limit)
	if err != nil {
		return fmt.Errorf("listing news: %w", err)
	}

	printNews(items)
	return nil
}
