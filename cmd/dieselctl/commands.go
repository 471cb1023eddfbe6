package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"

	"github.com/yanqian/diesel-reports/internal/domain/catalog"
	"github.com/yanqian/diesel-reports/internal/domain/report"
	"github.com/yanqian/diesel-reports/internal/infra/catalogrepo"
	"github.com/yanqian/diesel-reports/internal/infra/catalogstore"
	"github.com/yanqian/diesel-reports/internal/infra/config"
	"github.com/yanqian/diesel-reports/internal/infra/postgres"
	"github.com/yanqian/diesel-reports/internal/infra/reportrepo"
	"github.com/yanqian/diesel-reports/pkg/logger"
)

const defaultTimeout = 15 * time.Second

func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Usage:    "Start date (YYYY-MM-DD)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "End date (YYYY-MM-DD)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "city",
			Usage: "City code, all cities when empty",
		},
		&cli.Int64Flag{
			Name:  "tank",
			Usage: "Tank id, all tanks when 0",
		},
	}
}

func dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Print dashboard KPIs, daily and tank series and top units",
		Flags: filterFlags(),
		Action: withReports(func(ctx context.Context, c *cli.Context, svc report.Service) (any, error) {
			return svc.Dashboard(ctx, requestFrom(c))
		}),
	}
}

func consumptionCommand() *cli.Command {
	return &cli.Command{
		Name:  "consumption",
		Usage: "Print consumption rows and totals",
		Flags: filterFlags(),
		Action: withReports(func(ctx context.Context, c *cli.Context, svc report.Service) (any, error) {
			return svc.Consumption(ctx, requestFrom(c))
		}),
	}
}

func efficiencyCommand() *cli.Command {
	return &cli.Command{
		Name:  "efficiency",
		Usage: "Print per-unit efficiency rows",
		Flags: filterFlags(),
		Action: withReports(func(ctx context.Context, c *cli.Context, svc report.Service) (any, error) {
			return svc.Efficiency(ctx, requestFrom(c))
		}),
	}
}

func detailCommand() *cli.Command {
	return &cli.Command{
		Name:  "detail",
		Usage: "Print the dispensing movements of one unit",
		Flags: append(filterFlags(), &cli.Int64Flag{
			Name:     "unit",
			Usage:    "Unit id",
			Required: true,
		}),
		Action: withReports(func(ctx context.Context, c *cli.Context, svc report.Service) (any, error) {
			return svc.EfficiencyDetail(ctx, report.DetailRequest{Request: requestFrom(c), UnitID: c.Int64("unit")})
		}),
	}
}

func productivityCommand() *cli.Command {
	return &cli.Command{
		Name:  "productivity",
		Usage: "Print productivity rows with cost and mechanical severity bands",
		Flags: filterFlags(),
		Action: withReports(func(ctx context.Context, c *cli.Context, svc report.Service) (any, error) {
			return svc.Productivity(ctx, requestFrom(c))
		}),
	}
}

func citiesCommand() *cli.Command {
	return &cli.Command{
		Name:  "cities",
		Usage: "List cities",
		Action: withCatalog(func(ctx context.Context, _ *cli.Context, svc catalog.Service) (any, error) {
			return svc.Cities(ctx)
		}),
	}
}

func tanksCommand() *cli.Command {
	return &cli.Command{
		Name:  "tanks",
		Usage: "List the tanks of a city",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "city",
				Usage:    "City code",
				Required: true,
			},
		},
		Action: withCatalog(func(ctx context.Context, c *cli.Context, svc catalog.Service) (any, error) {
			return svc.Tanks(ctx, c.String("city"))
		}),
	}
}

func requestFrom(c *cli.Context) report.Request {
	req := report.Request{
		DateFrom: c.String("from"),
		DateTo:   c.String("to"),
		CityCode: c.String("city"),
	}
	if tank := c.Int64("tank"); tank != 0 {
		req.TankID = &tank
	}
	return req
}

type reportAction func(ctx context.Context, c *cli.Context, svc report.Service) (any, error)

type catalogAction func(ctx context.Context, c *cli.Context, svc catalog.Service) (any, error)

func withReports(action reportAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		pool, log, err := connect(c)
		if err != nil {
			return err
		}
		defer pool.Close()

		client := reportrepo.NewPostgresClient(pool)
		svc := report.NewService(report.Config{QueryTimeout: c.Duration("timeout")}, client, log)
		out, err := action(c.Context, c, svc)
		if err != nil {
			return err
		}
		return printJSON(c.App.Writer, out)
	}
}

func withCatalog(action catalogAction) cli.ActionFunc {
	return func(c *cli.Context) error {
		pool, log, err := connect(c)
		if err != nil {
			return err
		}
		defer pool.Close()

		svc := catalog.NewService(catalog.Config{}, catalogrepo.NewPostgresRepository(pool), catalogstore.NewMemoryStore(), log)
		out, err := action(c.Context, c, svc)
		if err != nil {
			return err
		}
		return printJSON(c.App.Writer, out)
	}
}

func connect(c *cli.Context) (*pgxpool.Pool, *slog.Logger, error) {
	cfg := config.Default()
	cfg.Postgres.DSN = c.String("dsn")
	cfg.Log.Level = c.String("log-level")
	log := logger.NewWithWriter(cfg, c.App.ErrWriter)

	pool, err := postgres.Connect(c.Context, cfg.Postgres, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	return pool, log, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
