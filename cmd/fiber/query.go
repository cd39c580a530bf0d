package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rayonlabs/fiber/internal/substrate"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

type queryRequest struct {
	module string
	item   string
	params []any
	block  *uint64
}

func queryCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Print a storage item, e.g. System Number or SubtensorModule SubnetworkN 1",
		ArgsUsage: "MODULE ITEM [KEY...]",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "block", Usage: "Block number to read at, defaults to the best block"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("expected MODULE ITEM [KEY...], got %d args", c.NArg())
			}
			req := queryRequest{module: c.Args().Get(0), item: c.Args().Get(1)}
			for _, arg := range c.Args().Slice()[2:] {
				var key uint64
				if _, err := fmt.Sscan(arg, &key); err != nil {
					return fmt.Errorf("invalid key %q: %w", arg, err)
				}
				req.params = append(req.params, key)
			}
			if c.IsSet("block") {
				block := c.Uint64("block")
				req.block = &block
			}

			var (
				factory substrate.Factory
				session substrate.Session
			)
			app := fx.New(
				fx.Supply(e.cfg, e.log),
				chainModule,
				fx.Populate(&factory, &session),
			)
			if err := app.Start(c.Context); err != nil {
				return err
			}
			defer app.Stop(context.Background())

			return runQuery(c.Context, c.App.Writer, factory, session, req)
		},
	}
}

func runQuery(ctx context.Context, w io.Writer, factory substrate.Factory, session substrate.Session, req queryRequest) error {
	used, value, err := substrate.QueryWithReconnect(ctx, factory, session, req.module, req.item, req.params, req.block)
	if used != session {
		defer used.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to query %s.%s: %w", req.module, req.item, err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Module string  `json:"module"`
		Item   string  `json:"item"`
		Block  *uint64 `json:"block,omitempty"`
		Value  any     `json:"value"`
	}{req.module, req.item, req.block, value})
}
