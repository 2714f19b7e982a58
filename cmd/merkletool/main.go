package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Layr-Labs/eigenx-merkletree-go/pkg/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "merkletool",
		Usage: "Build, update and compare merkle trees over directory contents",
		Description: `A tool for computing content-integrity merkle trees over the files of a directory.

This tool can:
- Print the root digest of a directory (files ordered by name)
- Render the full tree with every node digest
- Compare two directories with the same number of files and list the files that differ
- Apply a point update to one file's content and show the settled root`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvMerkleVerbose},
			},
			&cli.IntFlag{
				Name:    "max-items",
				Usage:   "Maximum number of files loaded per directory (0 for unlimited)",
				Value:   config.DefaultMaxItems,
				EnvVars: []string{config.EnvMerkleMaxItems},
			},
			&cli.BoolFlag{
				Name:    "include-hidden",
				Usage:   "Include dot-files when reading directories",
				EnvVars: []string{config.EnvMerkleIncludeHidden},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "root",
				Usage: "Print the root digest of a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "Directory whose files are the tree items",
						Required: true,
					},
				},
				Action: rootCommand,
			},
			{
				Name:  "show",
				Usage: "Render the tree of a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "Directory whose files are the tree items",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "full",
						Usage: "Print complete digests",
					},
				},
				Action: showCommand,
			},
			{
				Name:  "diff",
				Usage: "List the files that differ between two directories",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "left",
						Usage:    "First directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "right",
						Usage:    "Second directory",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "show",
						Usage: "Also print the left tree with differing leaves marked",
					},
				},
				Action: diffCommand,
			},
			{
				Name:  "update",
				Usage: "Replace the content of one item and print the settled root",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "Directory whose files are the tree items",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "index",
						Usage:    "Index of the item to update (files ordered by name)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "content",
						Usage: "New content of the item",
						Value: "",
					},
				},
				Action: updateCommand,
			},
			{
				Name:  "verify",
				Usage: "Build the tree of a directory and check every node digest",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "dir",
						Usage:    "Directory whose files are the tree items",
						Required: true,
					},
				},
				Action: verifyCommand,
			},
		},
	}
}

// parseToolConfig reads the global flags into a validated config
func parseToolConfig(c *cli.Context) (*config.MerkleToolConfig, error) {
	cfg := &config.MerkleToolConfig{
		Verbose:       c.Bool("verbose"),
		MaxItems:      c.Int("max-items"),
		IncludeHidden: c.Bool("include-hidden"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
