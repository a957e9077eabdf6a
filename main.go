package main

import (
	"fmt"
	"os"

	"ghazal-tools/internal/analyze"
	"ghazal-tools/internal/fetch"
	"ghazal-tools/internal/stats"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "ghazal-tools",
		Usage: "download ghazals as plain text, then measure and scan them",
		Commands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "Download a numbered range of ghazal pages, one text file per index",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "start",
						Usage: "first ghazal index (inclusive)",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "end",
						Usage: "last ghazal index (inclusive)",
						Value: 250,
					},
					&cli.Float64Flag{
						Name:  "delay",
						Usage: "politeness delay between requests, in seconds",
						Value: 2,
					},
					&cli.StringFlag{
						Name:  "out-dir",
						Usage: "directory for the <index>.txt output files",
						Value: "ghazals",
					},
					&cli.StringFlag{
						Name:  "url-template",
						Usage: "page URL with {index} as the placeholder",
						Value: "https://ganjoor.net/hafez/ghazal/sh{index}/",
					},
					&cli.StringFlag{
						Name:  "selector",
						Usage: "CSS selector for the poem region; empty falls back to readability extraction",
						Value: ".b",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "summary output format: json or yaml",
						Value: "json",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: fetch.FetchAction,
			},
			{
				Name:  "stats",
				Usage: "Report couplet counts and distribution for downloaded ghazal files",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "dir",
						Usage: "directory of <index>.txt files (repeatable)",
						Value: cli.NewStringSlice("ghazals"),
					},
				},
				Action: stats.StatsAction,
			},
			{
				Name:  "analyze",
				Usage: "Assess the poetic meter of one downloaded ghazal file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "path of the poem text file",
						Required: true,
					},
				},
				Action: analyze.AnalyzeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
