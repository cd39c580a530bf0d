package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/rayonlabs/fiber/internal/nodes"
	"github.com/rayonlabs/fiber/internal/registry"
	"github.com/rayonlabs/fiber/internal/stats"
	"github.com/rayonlabs/fiber/internal/substrate"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

type nodesRequest struct {
	netuid  uint16
	block   *uint64
	output  string
	summary bool
}

func nodesCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "nodes",
		Usage: "Print the nodes registered on a subnet",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "netuid", Usage: "Subnet id", Required: true},
			&cli.Uint64Flag{Name: "block", Usage: "Block number to read at, defaults to the best block"},
			&cli.StringFlag{Name: "schema", Usage: "metagraph or neurons-lite, overrides chain.schema"},
			&cli.StringFlag{Name: "output", Value: "json", Usage: "json or table"},
			&cli.BoolFlag{Name: "summary", Usage: "Include stake statistics"},
		},
		Action: func(c *cli.Context) error {
			netuid, err := netuidFlag(c)
			if err != nil {
				return err
			}
			req := nodesRequest{netuid: netuid, output: c.String("output"), summary: c.Bool("summary")}
			if req.output != "json" && req.output != "table" {
				return fmt.Errorf("unsupported output %q", req.output)
			}
			if c.IsSet("block") {
				block := c.Uint64("block")
				req.block = &block
			}
			if c.IsSet("schema") {
				e.cfg.Chain.Schema = c.String("schema")
				if err := e.cfg.Validate(); err != nil {
					return err
				}
			}

			var (
				fetcher *nodes.Fetcher
				session substrate.Session
			)
			app := fx.New(
				fx.Supply(e.cfg, e.log),
				chainModule,
				fx.Populate(&fetcher, &session),
			)
			if err := app.Start(c.Context); err != nil {
				return err
			}
			defer app.Stop(context.Background())

			return runNodes(c.Context, c.App.Writer, fetcher, session, req)
		},
	}
}

func netuidFlag(c *cli.Context) (uint16, error) {
	netuid := c.Uint("netuid")
	if netuid > math.MaxUint16 {
		return 0, fmt.Errorf("netuid %d out of range", netuid)
	}
	return uint16(netuid), nil
}

func runNodes(ctx context.Context, w io.Writer, fetcher registry.NodeFetcher, session substrate.Session, req nodesRequest) error {
	found, err := fetcher.FetchNodes(ctx, session, req.netuid, req.block)
	if err != nil {
		return fmt.Errorf("failed to fetch nodes for netuid %d: %w", req.netuid, err)
	}

	var summary *stats.Summary
	if req.summary {
		s := stats.Summarize(found)
		summary = &s
	}

	if req.output == "table" {
		return writeTable(w, found, summary)
	}
	return writeJSON(w, found, summary)
}

func writeJSON(w io.Writer, found []nodes.Node, summary *stats.Summary) error {
	if found == nil {
		found = []nodes.Node{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if summary == nil {
		return enc.Encode(found)
	}
	return enc.Encode(struct {
		Nodes   []nodes.Node   `json:"nodes"`
		Summary *stats.Summary `json:"summary"`
	}{found, summary})
}

func writeTable(w io.Writer, found []nodes.Node, summary *stats.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE_ID\tHOTKEY\tCOLDKEY\tSTAKE\tINCENTIVE\tTRUST\tVTRUST\tLAST_UPDATED\tENDPOINT")
	for _, n := range found {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.4f\t%g\t%g\t%g\t%.0f\t%s:%d\n",
			n.NodeID, n.Hotkey, n.Coldkey, n.Stake, n.Incentive, n.Trust, n.VTrust, n.LastUpdated, n.IP, n.Port)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if summary == nil {
		return nil
	}

	_, err := fmt.Fprintf(w, "\nnodes: %d  serving: %d  total stake: %.4f  mean: %.4f  median: %.4f  stddev: %.4f  max: %.4f\n",
		summary.Count, summary.Serving, summary.TotalStake, summary.MeanStake, summary.MedianStake, summary.StdDevStake, summary.MaxStake)
	return err
}
