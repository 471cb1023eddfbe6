package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "dieselctl",
		Usage: "Run diesel consumption and efficiency reports against the report database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dsn",
				Usage:   "Postgres connection string",
				EnvVars: []string{"DIESEL_POSTGRES_DSN"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-query timeout",
				Value: defaultTimeout,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "warn",
			},
		},
		Commands: []*cli.Command{
			dashboardCommand(),
			consumptionCommand(),
			efficiencyCommand(),
			detailCommand(),
			productivityCommand(),
			citiesCommand(),
			tanksCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
