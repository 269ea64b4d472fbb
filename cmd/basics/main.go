package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rhino1998/basics/pkg/config"
	"github.com/rhino1998/basics/pkg/integrity"
	"github.com/rhino1998/basics/pkg/numeric"
	"github.com/rhino1998/basics/pkg/rule"
	"github.com/rhino1998/basics/pkg/variable"
	"github.com/rhino1998/basics/pkg/vector"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:  "basics",
		Usage: "Evaluate variable, condition and operation documents",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "trace every condition and operation",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Check a document for missing variables and unknown operators",
				ArgsUsage: "FILE",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("must provide exactly one document as argument")
					}

					logger := newLogger(c.Bool("debug"))

					_, _, err := load(logger, c.Args().First())
					if err != nil {
						return err
					}

					fmt.Println("ok")
					return nil
				},
			},
			{
				Name:      "run",
				Usage:     "Run every rule of a document and print the resulting variables",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "iterations",
						Aliases: []string{"n"},
						Value:   1,
						Usage:   "number of passes over the rules",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() != 1 {
						return fmt.Errorf("must provide exactly one document as argument")
					}

					logger := newLogger(c.Bool("debug"))

					store, rules, err := load(logger, c.Args().First())
					if err != nil {
						return err
					}

					err = store.ResetAll()
					if err != nil {
						return err
					}

					watch(logger, store)

					for i := range c.Int("iterations") {
						if ctx.Err() != nil {
							return ctx.Err()
						}

						fired, err := rule.RunAll(rules)
						if err != nil {
							return fmt.Errorf("iteration %d: %w", i, err)
						}

						logger.Debug("iteration finished", slog.Int64("iteration", int64(i)), slog.Int("fired", fired))
					}

					for _, cell := range store.Cells() {
						fmt.Printf("%s = %s\n", cell.Name(), cell)
					}

					return nil
				},
			},
		},
	}

	err := cmd.Run(ctx, os.Args)
	if err != nil {
		log.Fatalln(err)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func load(logger *slog.Logger, path string) (*variable.Store, []*rule.Rule, error) {
	doc, err := config.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	store, rules, err := doc.Build(logger)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid document %s:\n%w", path, err)
	}

	errs := integrity.NewErrorSet()
	errs.Add(integrity.At("variables", store.ValidateIntegrity()))
	errs.Add(integrity.Check("rules", rules))

	err = errs.Defer(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("integrity check failed for %s:\n%w", path, err)
	}

	return store, rules, nil
}

// watch logs every value raised by an operation.
func watch(logger *slog.Logger, store *variable.Store) {
	for _, cell := range store.Cells() {
		name := cell.Name()
		switch cell := cell.(type) {
		case *variable.Bool:
			cell.Changed.Subscribe(func(v bool) {
				logger.Info("variable raised", slog.String("variable", name), slog.Bool("value", v))
			})
		case *variable.Number:
			cell.Changed.Subscribe(func(v numeric.Number) {
				logger.Info("variable raised", slog.String("variable", name), slog.String("value", v.String()))
			})
		case *variable.Vector:
			cell.Changed.Subscribe(func(v vector.Vector) {
				logger.Info("variable raised", slog.String("variable", name), slog.String("value", v.String()))
			})
		}
	}
}
