// Package landing provides the complete pages of the site.
package landing

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/jhrdina/pocketmesh-site/internal/website"
	"github.com/jhrdina/pocketmesh-site/internal/website/components"
)

// GettingStartedDoc is the doc the "Get started" button links to.
const GettingStartedDoc = "getting-started.html"

// HomeButtons returns the splash calls to action.
func HomeButtons(cfg website.SiteConfig, language string) []website.Button {
	return []website.Button{
		{Label: "Demo App", Href: cfg.DemoURL, Primary: true, Target: "_blank"},
		{Label: "Get started", Href: cfg.DocURL(GettingStartedDoc, language)},
	}
}

// HomeBlocks returns the homepage sections below the splash, in display order.
func HomeBlocks(cfg website.SiteConfig) []website.Block {
	return []website.Block{
		{
			Layout: website.LayoutThreeColumn,
			Contents: []website.ContentBlock{
				{
					Content:    "Open your webapp and edit your content offline, everything synchronizes as soon as you connect to the internet.",
					Image:      cfg.AssetURL("img/offline.svg"),
					ImageAlign: website.ImageTop,
					Title:      "Ready for offline",
				},
				{
					Content:    "Create your own private mesh and let your data sync between your devices via WebRTC. No need to trust to the Big Brother.",
					Image:      cfg.AssetURL("img/no_middleman.svg"),
					ImageAlign: website.ImageTop,
					Title:      "No need for a central storage",
				},
				{
					Content:    "Expressive types, pattern-matching, super-fast compile times and features of ECMAScript 2020 all at your fingertips.",
					Image:      cfg.AssetURL("img/reason-small.svg"),
					ImageAlign: website.ImageTop,
					Title:      "Written in Reason",
				},
			},
		},
		{
			Background: "light",
			Align:      "left",
			Contents: []website.ContentBlock{
				{
					Content:    "Friends-list, groups management, permissions settings... don't create the same GUI for every app again and again. Use our pre-built React components and rather spend time working on your shiny new editor!\n\n",
					Image:      cfg.AssetURL("img/gui_screens.png"),
					ImageAlign: website.ImageRight,
					Title:      "Pre-built GUI components",
				},
			},
		},
		{
			Background: "light",
			Align:      "left",
			Contents: []website.ContentBlock{
				{
					Title:      "Check-out our demo P2P editor",
					Content:    fmt.Sprintf("We've created a simple P2P mind-map editor with offline support, conflict resolution and much more. [**Try it out**](%s) or browse its [**source-code**](https://github.com/jhrdina/tree-burst) to learn more.", cfg.DemoURL),
					Image:      cfg.AssetURL("img/tree-burst.png"),
					ImageAlign: website.ImageLeft,
				},
			},
		},
	}
}

// RenderHome generates the homepage content: splash, then every block of
// HomeBlocks in order. It keeps no state; equal inputs give equal trees.
func RenderHome(cfg website.SiteConfig, language string) g.Node {
	md := website.MarkdownFor(cfg.Highlight)

	return Div(
		components.RenderSplash(cfg, components.SplashOptions{
			Buttons: HomeButtons(cfg, language),
		}),
		Div(Class("mainContainer"),
			g.Map(HomeBlocks(cfg), func(b website.Block) g.Node {
				return components.RenderBlock(md, b)
			}),
		),
	)
}

// RenderHomeDocument wraps RenderHome with the header, footer and document shell.
func RenderHomeDocument(cfg website.SiteConfig, language string) g.Node {
	return components.RenderDocument(cfg, language,
		components.RenderHeader(cfg, language),
		RenderHome(cfg, language),
		components.RenderFooter(cfg, language, components.FooterOptions{
			DocsLink: GettingStartedDoc,
		}),
	)
}
