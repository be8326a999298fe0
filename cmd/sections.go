package cmd

import (
	"context"
	"fmt"

	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/urfave/cli/v3"
)

// SectionsCommand creates the sections command
func SectionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "sections",
		Usage: "Inspect page sections",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the sections of a page in display order",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "site",
						Usage:    "Site identifier",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "page",
						Usage: "Page id or slug",
						Value: "home",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return listSections(c.String("config"), c.String("site"), c.String("page"))
				},
			},
			{
				Name:  "types",
				Usage: "List the section types this build knows about",
				Action: func(ctx context.Context, c *cli.Command) error {
					return listSectionTypes()
				},
			},
		},
	}
}

func listSectionTypes() error {
	registry := core.GetGlobalRegistry()
	fmt.Println(titleStyle.Render("Section Types"))
	for _, typeName := range registry.Types() {
		handler := registry.Handler(typeName)
		meta := fmt.Sprintf("(%s", typeName)
		if variants := handler.Variants(); len(variants) > 0 {
			meta += fmt.Sprintf(", %d variants", len(variants))
		}
		meta += ")"
		fmt.Printf("%s %s\n", handler.Title(), metaStyle.Render(meta))
	}
	return nil
}

func listSections(configPath, siteID, pageID string) error {
	_, manager, err := openEnvironment(configPath)
	if err != nil {
		return err
	}
	defer closeManager(manager)

	store, err := manager.GetStore(siteID)
	if err != nil {
		return fmt.Errorf("opening site store: %w", err)
	}

	page, err := store.GetPage(pageID)
	if err != nil {
		return fmt.Errorf("getting page %s: %w", pageID, err)
	}

	sections, err := store.ListSections(page.ID)
	if err != nil {
		return fmt.Errorf("listing sections: %w", err)
	}

	printSections(page.Slug, sections)
	return nil
}
