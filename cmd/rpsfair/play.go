package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/rpsfair/cmd/rpsfair/shared"
	"github.com/lox/rpsfair/internal/fairness"
	"github.com/lox/rpsfair/internal/moveset"
	"github.com/lox/rpsfair/internal/randutil"
	"github.com/lox/rpsfair/internal/session"
)

type PlayCmd struct {
	Moves   []string `arg:"" optional:"" name:"move" help:"Move names in cycle order (odd count, at least three, no repeats). Put moves after -- when one starts with - or is named play or verify"`
	Debug   bool     `help:"Enable debug logging"`
	LogFile string   `type:"path" help:"Write diagnostic logs to this file instead of stderr"`
	NoColor bool     `help:"Disable colors and text styling"`
	Seed    int64    `help:"Seed for the computer's move choice, 0 for random (the key is always random)"`
}

func (c *PlayCmd) Run() error {
	logger, closeLog, err := c.logger()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	return c.run(ctx, logger, os.Stdin, os.Stdout)
}

func (c *PlayCmd) run(ctx context.Context, logger *log.Logger, in io.Reader, out io.Writer) error {
	ms, err := moveset.Validate(c.Moves)
	if err != nil {
		logger.Debug("Invalid moves", "moves", c.Moves, "error", err)
		return err
	}

	seed := c.Seed
	if seed == 0 {
		_, seed = randutil.NewFromTime()
		logger.Debug("Using random seed for move selection", "seed", seed)
	} else {
		logger.Debug("Using fixed seed for move selection", "seed", seed)
	}
	commit, err := fairness.NewCommitment(ms, fairness.WithRNG(randutil.New(seed)))
	if err != nil {
		return fmt.Errorf("failed to create commitment: %w", err)
	}

	s := session.New(ms, commit, in, out,
		session.WithLogger(logger),
		session.WithStyles(session.NewStyles(out, c.NoColor)),
	)
	defer func() {
		if err := s.Close(); err != nil {
			logger.Error("Failed to close session", "error", err)
		}
	}()

	res, err := s.Run(ctx)
	if err != nil {
		return err
	}
	logger.Debug("Session finished", "result", res)
	return nil
}

func (c *PlayCmd) logger() (*log.Logger, func() error, error) {
	if c.LogFile == "" {
		return shared.SetupLogger(c.Debug), func() error { return nil }, nil
	}
	return shared.SetupFileLogger(c.LogFile, c.Debug)
}
