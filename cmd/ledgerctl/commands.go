package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	coreport "github.com/amirhossein-jamali/trade-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-ledger/internal/domain/reputation"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/trade-ledger/internal/infrastructure/bootstrap"
	"github.com/urfave/cli/v3"
)

// ErrUserIDRequired is returned when a command is missing its USER_ID argument
var ErrUserIDRequired = errors.New("USER_ID argument required")

func newRootCommand(open appOpener, logger coreport.Logger) *cli.Command {
	return &cli.Command{
		Name:  "ledgerctl",
		Usage: "Trade ledger operator tool",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Bring the database schema to the current version",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(ctx, open, logger, func(app *bootstrap.App) error {
						if err := app.Migrate(ctx); err != nil {
							return err
						}
						version, err := app.Database.MigrationManager().GetCurrentVersion(ctx)
						if err != nil {
							return err
						}
						_, err = fmt.Fprintf(c.Root().Writer, "schema at version %s\n", version)
						return err
					})
				},
			},
			{
				Name:  "award",
				Usage: "Compute the award for a rating without touching the database",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "rating", Aliases: []string{"r"}, Required: true, Usage: "rating given to the trade"},
					&cli.FloatFlag{Name: "total", Aliases: []string{"t"}, Value: 1, Usage: "user's total trades including this one"},
					&cli.FloatFlag{Name: "partner", Aliases: []string{"p"}, Value: 1, Usage: "trades with the partner including this one"},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					factors, err := reputation.Breakdown(reputation.AwardInput{
						Rating:            c.Float("rating"),
						TotalTradesUser:   c.Float("total"),
						TradesWithPartner: c.Float("partner"),
					})
					if err != nil {
						return err
					}
					return writeJSON(c.Root().Writer, factors)
				},
			},
			{
				Name:      "user",
				Usage:     "Show a user's reputation profile",
				ArgsUsage: "USER_ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					userID, err := userArg(c)
					if err != nil {
						return err
					}
					return withApp(ctx, open, logger, func(app *bootstrap.App) error {
						ctx, cancel := app.Database.WithTimeout(ctx)
						defer cancel()

						profile, err := app.Ledger.GetProfile(ctx, userID)
						if err != nil {
							return err
						}
						return writeJSON(c.Root().Writer, dto.NewProfileResponse(profile))
					})
				},
			},
			{
				Name:      "trades",
				Usage:     "List a user's trades split by role",
				ArgsUsage: "USER_ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					userID, err := userArg(c)
					if err != nil {
						return err
					}
					return withApp(ctx, open, logger, func(app *bootstrap.App) error {
						ctx, cancel := app.Database.WithTimeout(ctx)
						defer cancel()

						history, err := app.Ledger.GetTradeHistory(ctx, userID)
						if err != nil {
							return err
						}
						return writeJSON(c.Root().Writer, dto.NewTradeHistoryResponse(userID, history))
					})
				},
			},
			{
				Name:  "record",
				Usage: "Record a completed trade and score it",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "user", Required: true},
					&cli.StringFlag{Name: "partner", Required: true},
					&cli.StringFlag{Name: "type", Value: "give", Usage: "give or receive, from the user's side"},
					&cli.StringFlag{Name: "item", Required: true, Usage: "description of what changed hands"},
					&cli.FloatFlag{Name: "rating", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withApp(ctx, open, logger, func(app *bootstrap.App) error {
						result, err := app.Reputation.RecordAndScoreTrade(ctx, usecase.ScoreTradeRequest{
							RecordTradeRequest: usecase.RecordTradeRequest{
								UserID:    c.String("user"),
								PartnerID: c.String("partner"),
								Type:      c.String("type"),
								Item:      c.String("item"),
							},
							Rating: c.Float("rating"),
						})
						if err != nil {
							return err
						}
						return writeJSON(c.Root().Writer, dto.NewScoreResponse(result))
					})
				},
			},
			blockCommand("block", "Stop a user from starting trades", true, open, logger),
			blockCommand("unblock", "Allow a blocked user to trade again", false, open, logger),
		},
	}
}

func blockCommand(name, usage string, blocked bool, open appOpener, logger coreport.Logger) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "USER_ID",
		Action: func(ctx context.Context, c *cli.Command) error {
			userID, err := userArg(c)
			if err != nil {
				return err
			}
			return withApp(ctx, open, logger, func(app *bootstrap.App) error {
				user, err := app.Ledger.SetBlocked(ctx, userID, blocked)
				if err != nil {
					return err
				}
				logger.Info("Moderation flag updated", map[string]any{
					"user_id": user.ID,
					"blocked": user.Blocked,
				})
				_, err = fmt.Fprintf(c.Root().Writer, "%s blocked=%t\n", user.ID, user.Blocked)
				return err
			})
		},
	}
}

func userArg(c *cli.Command) (string, error) {
	if c.Args().Len() != 1 {
		return "", ErrUserIDRequired
	}
	return c.Args().First(), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
