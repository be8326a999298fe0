package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// StatsCommand creates the stats command
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show content statistics",
		Action: func(ctx context.Context, c *cli.Command) error {
			return showStats(c.String("config"))
		},
	}
}

func showStats(configPath string) error {
	_, manager, err := openEnvironment(configPath)
	if err != nil {
		return err
	}
	defer closeManager(manager)

	// Open every registered site so the aggregate covers all of them, not
	// just stores already touched in this process.
	sites, err := registeredSites(manager)
	if err != nil {
		return err
	}
	for _, site := range sites {
		if _, err := manager.GetStore(site.ID); err != nil {
			return fmt.Errorf("opening store for %s: %w", site.ID, err)
		}
	}

	stats, err := manager.GetStats()
	if err != nil {
		return fmt.Errorf("getting stats: %w", err)
	}

	formatStats(stats)
	return nil
}
