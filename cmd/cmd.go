package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/flowpro/tnc-gateway/config"
)

const (
	ServiceName      = "tnc-gateway"
	ServiceNamespace = "flowpro"
)

var (
	version        = "0.0.0"
	commit         = "hash"
	commitDate     = time.Now().String()
	branch         = "branch"
	buildTimestamp = ""
)

func Run() error {
	app := &cli.App{
		Name:  ServiceName,
		Usage: "Per-agent gateway bridging the Routing, Communication, Lifecycle and Consensus surfaces onto the agent's message bus",
		Commands: []*cli.Command{
			serverCmd(),
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "Print version information and exit",
			},
			&cli.BoolFlag{
				Name:    "assets",
				Aliases: []string{"a"},
				Usage:   "Write the .proto service contract files into the current working directory and exit",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				printVersion()
				return nil
			}
			if c.Bool("assets") {
				return writeAssets(".")
			}
			return cli.ShowAppHelp(c)
		},
	}

	return app.Run(os.Args)
}

func printVersion() {
	fmt.Printf("%s version %s (commit %s, branch %s, built %s)\n", ServiceName, version, commit, branch, buildTimestamp)
}

func serverCmd() *cli.Command {
	return &cli.Command{
		Name:    "server",
		Aliases: []string{"s"},
		Usage:   "Run the gRPC gateway server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config_file",
				Usage: "Path to the configuration file",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(pflag.CommandLine, c.String("config_file"))
			if err != nil {
				return err
			}
			app := NewApp(cfg)

			if err := app.Start(c.Context); err != nil {
				return err
			}

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			<-stop

			slog.Info("Shutting down...")
			return app.Stop(context.Background())
		},
	}
}
