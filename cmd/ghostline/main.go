// Package main is the entry point for the Ghostline CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	ghostcli "github.com/vmorelle/ghostline/internal/cli"
	"github.com/vmorelle/ghostline/pkg/version"
)

func main() {
	app := newApp()
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "ghostline",
		Usage:                 "AI command completion for interactive shells",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (default: XDG config location)",
				Sources: cli.EnvVars("GHOSTLINE_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("GHOSTLINE_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "complete",
				Usage:     "Complete a command line once and print the suggestion",
				ArgsUsage: "<buffer>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "cursor",
						Value: -1,
						Usage: "Cursor byte offset in the buffer (default: end)",
					},
					&cli.StringFlag{
						Name:  "cwd",
						Usage: "Working directory for context (default: current)",
					},
					&cli.StringFlag{
						Name:    "session",
						Usage:   "Session identifier for cache scoping",
						Sources: cli.EnvVars("GHOSTLINE_SESSION"),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() == 0 {
						return fmt.Errorf("buffer argument required")
					}
					return ghostcli.Complete(ghostcli.CompleteParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						Buffer:     cmd.Args().Get(0),
						Cursor:     int(cmd.Int("cursor")),
						CWD:        cmd.String("cwd"),
						SessionID:  cmd.String("session"),
					})
				},
			},
			{
				Name:  "watch",
				Usage: "Read buffers from stdin and suggest as the debounce fires",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  "delay-ms",
						Usage: "Debounce quiet period (default: from config)",
					},
					&cli.StringFlag{
						Name:  "cwd",
						Usage: "Working directory for context (default: current)",
					},
					&cli.StringFlag{
						Name:    "session",
						Usage:   "Session identifier for cache scoping",
						Sources: cli.EnvVars("GHOSTLINE_SESSION"),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ghostcli.Watch(ghostcli.WatchParams{
						ConfigPath: cmd.String("config"),
						LogLevel:   cmd.String("log-level"),
						DelayMS:    uint32(cmd.Uint("delay-ms")),
						CWD:        cmd.String("cwd"),
						SessionID:  cmd.String("session"),
					})
				},
			},
			{
				Name:  "doctor",
				Usage: "Show configuration and model health",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ghostcli.Doctor(cmd.String("config"), nil)
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a Ghostline configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := cmd.String("config")
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return ghostcli.Validate(configPath, nil)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for Ghostline configuration files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return ghostcli.Schema(outputPath)
				},
			},
		},
	}
}
