package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rayonlabs/fiber/internal/config"
	"github.com/rayonlabs/fiber/internal/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// env is filled in by the app's Before hook and read by command actions.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func main() {
	e := &env{}

	app := &cli.App{
		Name:    "fiber",
		Usage:   "Read subnet node registries from a substrate chain",
		Version: version,
		Flags:   globalFlags(),
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			zapLogger, err := logger.New(cfg.Logger.Verbosity, cfg.Logger.Encoding)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = zapLogger.Named("cli")
			return nil
		},
		After: func(c *cli.Context) error {
			if e.log != nil {
				_ = e.log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			nodesCommand(e),
			queryCommand(e),
			watchCommand(e),
			versionCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		if e.log != nil {
			e.log.Fatal("failed to run app", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Value:   "config.yaml",
			Usage:   "Path to the config file",
			EnvVars: []string{"FIBER_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "endpoint",
			Usage: "Chain RPC endpoint, overrides chain.endpoint",
		},
		&cli.StringFlag{
			Name:  "verbosity",
			Usage: "Log level, overrides logger.verbosity",
		},
	}
}

// loadConfig reads the config file and applies flag overrides. A missing
// config.yaml is fine unless --config was given explicitly.
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	if !c.IsSet("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if c.IsSet("endpoint") {
		cfg.Chain.Endpoint = c.String("endpoint")
	}
	if c.IsSet("verbosity") {
		cfg.Logger.Verbosity = c.String("verbosity")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
