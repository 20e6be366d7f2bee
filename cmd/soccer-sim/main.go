package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"

	"github.com/hakunamta00700/soccer-sim-game/internal/config"
	"github.com/hakunamta00700/soccer-sim-game/internal/game"
	"github.com/hakunamta00700/soccer-sim-game/internal/logging"
	"github.com/hakunamta00700/soccer-sim-game/internal/report"
	"github.com/hakunamta00700/soccer-sim-game/internal/teamfile"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(fs *pflag.FlagSet, w io.Writer) func() {
	return func() {
		fmt.Fprintf(w, "usage: soccer-sim HOME_TEAM AWAY_TEAM [flags]\n\n")
		fmt.Fprintf(w, "Team files may be JSON, YAML or TOML.\n\nflags:\n")
		fs.SetOutput(w)
		fs.PrintDefaults()
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("soccer-sim", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	fs.Usage = usage(fs, stderr)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		fs.Usage()
		return exitUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintf(stderr, "error: expected HOME_TEAM and AWAY_TEAM, got %d argument(s)\n", fs.NArg())
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}

	var logFile io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "error: open log file: %v\n", err)
			return exitError
		}
		defer f.Close()
		logFile = f
	}
	logger := logging.New(logging.Options{
		Console: stderr,
		File:    logFile,
		Level:   cfg.EffectiveLogLevel(),
		Quiet:   cfg.Quiet,
	})

	home, err := teamfile.Load(fs.Arg(0))
	if err != nil {
		logger.Error("load home team", "path", fs.Arg(0), "error", err)
		return exitError
	}
	away, err := teamfile.Load(fs.Arg(1))
	if err != nil {
		logger.Error("load away team", "path", fs.Arg(1), "error", err)
		return exitError
	}
	logger.Info("teams loaded",
		"home", home.Name, "home_formation", home.Formation,
		"away", away.Name, "away_formation", away.Formation)

	seed := cfg.Seed
	if !cfg.HasSeed {
		if seed, err = game.NewSeed(); err != nil {
			logger.Error("generate seed", "error", err)
			return exitError
		}
	}

	opts := []game.Option{game.WithSeed(seed), game.WithLogger(logger)}
	if cfg.Live {
		opts = append(opts, game.WithObserver(report.NewCommentary(stdout, report.WithPacing(cfg.Duration))))
	}
	sim, err := game.NewSimulator(opts...)
	if err != nil {
		logger.Error("create simulator", "error", err)
		return exitError
	}

	m, err := sim.Simulate(home, away)
	if err != nil {
		logger.Error("simulate", "error", err)
		return exitError
	}
	logger.Info("match finished", "match", m.ID, "seed", seed,
		"score", fmt.Sprintf("%d-%d", m.Home.Score, m.Away.Score), "winner", m.Winner)

	var out bytes.Buffer
	switch cfg.Format {
	case "json":
		err = report.ExportJSON(&out, m)
	default:
		if cfg.Live {
			out.WriteString("\n")
		}
		err = report.Write(&out, m)
		fmt.Fprintf(&out, "seed: %d\n", seed)
	}
	if err != nil {
		logger.Error("render report", "error", err)
		return exitError
	}
	if _, err := stdout.Write(out.Bytes()); err != nil {
		return exitError
	}

	if cfg.Copy {
		if err := writeClipboard(out.String()); err != nil {
			logger.Warn("copy report to clipboard", "error", err)
		} else {
			logger.Info("report copied to clipboard")
		}
	}
	return exitOK
}
