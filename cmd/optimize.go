package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// OptimizeCommand creates the optimize command
func OptimizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "optimize",
		Usage: "Run database maintenance across all site stores",
		Action: func(ctx context.Context, c *cli.Command) error {
			return optimizeDatabases(c.String("config"))
		},
	}
}

func optimizeDatabases(configPath string) error {
	_, manager, err := openEnvironment(configPath)
	if err != nil {
		return err
	}
	defer closeManager(manager)

	sites, err := registeredSites(manager)
	if err != nil {
		return err
	}
	for _, site := range sites {
		if _, err := manager.GetStore(site.ID); err != nil {
			return fmt.Errorf("opening store for %s: %w", site.ID, err)
		}
	}

	if err := manager.Optimize(); err != nil {
		return fmt.Errorf("optimizing databases: %w", err)
	}

	fmt.Printf("Optimized %d site databases\n", len(sites))
	return nil
}
