package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/quimera-ai/quimera/pkg/core"
	"github.com/quimera-ai/quimera/pkg/storage"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Margin(1, 0, 0, 0)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	disabledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)
)

var titleCaser = cases.Title(language.English)

func printSites(sites []storage.SiteInfo) {
	fmt.Println(titleStyle.Render("Sites"))
	if len(sites) == 0 {
		fmt.Println(noDataStyle.Render("No sites registered. Create one with 'quimera sites create'."))
		return
	}
	for _, site := range sites {
		fmt.Printf("%s %s\n", headerStyle.Render(site.Name),
			metaStyle.Render(fmt.Sprintf("(%s, created %s)", site.ID, site.CreatedAt.Format("2006-01-02"))))
	}
}

func printSections(pageSlug string, sections []core.Section) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Sections of %s", pageSlug)))
	if len(sections) == 0 {
		fmt.Println(noDataStyle.Render("Page has no sections."))
		return
	}
	for _, section := range sections {
		name := titleCaser.String(strings.ReplaceAll(section.Type, "-", " "))
		line := fmt.Sprintf("%2d. %s %s", section.Order+1, name,
			metaStyle.Render(fmt.Sprintf("(%s)", section.ID)))
		if !section.Enabled {
			line = disabledStyle.Render(line)
		}
		fmt.Println(line)
	}
}

func printNews(items []core.NewsItem) {
	fmt.Println(titleStyle.Render("News"))
	if len(items) == 0 {
		fmt.Println(noDataStyle.Render("No posts found."))
		return
	}
	for _, item := range items {
		fmt.Printf("%s %s\n", headerStyle.Render(item.Title),
			metaStyle.Render(fmt.Sprintf("[%s] %s (%s)", item.Status, item.Slug, item.CreatedAt.Format("2006-01-02"))))
	}
}

func formatStats(stats map[string]any) {
	fmt.Println(titleStyle.Render("Storage Statistics"))

	keys := make([]string, 0, len(stats))
	for key := range stats {
		if !strings.HasPrefix(key, "total_") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Println(headerStyle.Render(key))
		siteStats, ok := stats[key].(map[string]any)
		if !ok {
			continue
		}
		innerKeys := make([]string, 0, len(siteStats))
		for k := range siteStats {
			innerKeys = append(innerKeys, k)
		}
		sort.Strings(innerKeys)
		for _, k := range innerKeys {
			fmt.Printf("  %s: %v\n", k, siteStats[k])
		}
	}

	fmt.Println()
	fmt.Printf("Total sites: %v\n", stats["total_sites"])
	fmt.Printf("Total sections: %v\n", stats["total_sections"])
}
