// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// filterFlags are shared by every command that narrows the show collection.
func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "year",
			Usage: "Only shows from this year (clears --decade)",
		},
		&cli.StringFlag{
			Name:  "decade",
			Usage: "Only shows from this decade, e.g. 2010s (clears --year)",
		},
		&cli.StringFlag{
			Name:  "venue-type",
			Usage: "Only shows at this venue type (Arena, Theater/Hall, Festival, Park, Garden, Club/Bar, Other)",
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "Free-text match against venue, location, or date",
		},
		&cli.BoolFlag{
			Name:  "fuzzy",
			Usage: "Widen the free-text match with edit-distance venue matching",
		},
	}
}

// setupCommand initializes the config file, database, and schema.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Initialize configuration and the local show cache",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// searchCommand queries the archive for songs, shows, and users.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search songs, shows, and users",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Skip recording the search in the local history",
			},
		},
		Action: r.Search,
		Commands: []*cli.Command{
			{
				Name:  "history",
				Usage: "List recent search terms",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries to return",
						Value: 20,
					},
				},
				Action: r.SearchHistory,
			},
		},
	}
}

// showsCommand lists and filters the show collection.
func showsCommand(r *Runner) *cli.Command {
	flags := append(filterFlags(),
		&cli.BoolFlag{
			Name:  "cached",
			Usage: "Read from the local cache instead of the API",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
	)
	return &cli.Command{
		Name:   "shows",
		Usage:  "List shows with optional year, decade, venue type, and text filters",
		Flags:  flags,
		Action: r.Shows,
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Fetch a single show by date (YYYY-MM-DD)",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "date",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.Show,
			},
		},
	}
}

// performancesCommand lists every performance of a song.
func performancesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "performances",
		Aliases: []string{"perf"},
		Usage:   "List performances of a song, sortable by date, rating, or votes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "song",
				Aliases: []string{"s"},
				Usage:   "Song slug to look up",
			},
			&cli.StringFlag{
				Name:  "sort",
				Usage: "Ordering: recent, oldest, highest-rated, lowest-rated, most-voted",
				Value: "recent",
			},
			&cli.BoolFlag{
				Name:  "rated-only",
				Usage: "Only performances with at least one rating",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "csv",
				Usage: "Output CSV",
			},
		},
		Action: r.Performances,
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Export the history of multiple songs concurrently",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "songs",
						Usage:    "Comma-separated song slugs",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: json or csv",
						Value: "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent export workers (max 10)",
						Value: 5,
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Ordering applied before export",
						Value: "recent",
					},
					&cli.BoolFlag{
						Name:  "rated-only",
						Usage: "Only performances with at least one rating",
					},
				},
				Action: r.PerformancesExport,
			},
		},
	}
}

// venuesCommand lists known venues with their keyword classification.
func venuesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "venues",
		Usage: "List venues and their classified types",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Venues,
	}
}

// cacheCommand manages the local SQLite show cache.
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Manage the local show cache",
		Commands: []*cli.Command{
			{
				Name:   "shows",
				Usage:  "Refresh the cached show collection from the API",
				Action: r.CacheShows,
			},
			{
				Name:   "status",
				Usage:  "Report cache size and recent searches",
				Action: r.CacheStatus,
			},
		},
	}
}

// exportCommand writes the (optionally filtered) show collection to a file.
func exportCommand(r *Runner) *cli.Command {
	flags := append(filterFlags(),
		&cli.StringFlag{
			Name:  "format",
			Usage: "Export format: csv, markdown, or txt",
			Value: "csv",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path",
		},
		&cli.BoolFlag{
			Name:  "cached",
			Usage: "Read from the local cache instead of the API",
		},
	)
	return &cli.Command{
		Name:   "export",
		Usage:  "Export shows to CSV, Markdown, or plain text",
		Flags:  flags,
		Action: r.Export,
	}
}

// apiCommand handles direct API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the archive backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// serveCommand runs the local read-only proxy server.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve a local JSON proxy over the archive API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Bind address (overrides config)",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Bind port (overrides config)",
			},
		},
		Action: r.Serve,
	}
}

// authCommand manages the stored API token.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage API authentication",
		Commands: []*cli.Command{
			{
				Name:  "token",
				Usage: "Store an API bearer token in the config file",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "token",
					},
				},
				Flags:  []cli.Flag{configFlag()},
				Action: r.AuthToken,
			},
			{
				Name:   "status",
				Usage:  "Check connectivity to the archive API",
				Action: r.AuthStatus,
			},
		},
	}
}

// tuiCommand launches the interactive terminal UI.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive search and browse UI",
		Action: r.TUI,
	}
}
