package main

import (
	"context"
	"log"
	"os"

	"github.com/quimera-ai/quimera/cmd"
	"github.com/quimera-ai/quimera/pkg/config"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "quimera",
		Usage: "Multi-tenant website builder and content server",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
				Value: false,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: getDefaultConfigPathOrExit(),
			},
		},
		Commands: []*cli.Command{
			cmd.InitCommand(),
			cmd.ServeCommand(),
			cmd.SitesCommand(),
			cmd.SectionsCommand(),
			cmd.NewsCommand(),
			cmd.ExportCommand(),
			cmd.ImportCommand(),
			cmd.StatsCommand(),
			cmd.OptimizeCommand(),
			cmd.VersionCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func getDefaultConfigPathOrExit() string {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		log.Fatalf("Failed to get default config path: %v", err)
	}
	return path
}
