package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// A missing .env file is not an error
	godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "redpool",
		Usage: "run commands against Redis through a pooled client",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "host:port of the server (overrides the configuration)",
			},
		},
		Commands: []*cli.Command{
			doCommand,
			setCommand,
			getCommand,
			incrCommand,
			benchCommand,
		},
	}
}
