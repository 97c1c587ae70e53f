package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"zonevator/src/config"
	"zonevator/src/logger"
	"zonevator/src/population"
	"zonevator/src/report"
	"zonevator/src/sim"
)

type options struct {
	configPath string
	envFile    string
	seed       uint64
	step       bool
	quiet      bool
	parallel   bool
	logLevel   string
	logFile    string
}

func main() {
	os.Exit(start(os.Args[1:], os.Stdout, os.Stderr))
}

// start runs the program and returns its exit code, so deferred cleanup
// happens before the process exits.
func start(args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := flag.NewFlagSet("zonevator", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configPath, "config", "", "YAML config file, defaults are used if empty")
	flags.StringVar(&opts.envFile, "env", ".env", "dotenv file with ZONEVATOR_* overrides")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 keeps the configured seed or picks one")
	flags.BoolVar(&opts.step, "step", false, "wait for a key press after every tick")
	flags.BoolVar(&opts.quiet, "quiet", false, "print only the final summary")
	flags.BoolVar(&opts.parallel, "parallel", false, "step elevators concurrently")
	flags.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	flags.StringVar(&opts.logFile, "log-file", "", "also write the log to this file")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		logger.Init(slog.LevelInfo, stderr)
		slog.Error("Bad flag", "error", err)
		return 2
	}
	if opts.logFile != "" {
		closeLog, err := logger.InitWithFile(level, stderr, opts.logFile)
		if err != nil {
			logger.Init(level, stderr)
			slog.Error("Could not open log file", "error", err)
			return 1
		}
		defer closeLog()
	} else {
		logger.Init(level, stderr)
	}

	if err := run(opts, stdout); err != nil {
		if errors.Is(err, report.ErrQuit) {
			slog.Info("Stopped by user")
			return 0
		}
		slog.Error("Simulation failed", "error", err)
		return 1
	}
	return 0
}

func run(opts options, stdout io.Writer) error {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(&cfg, opts.envFile); err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	cfg.Parallel = cfg.Parallel || opts.parallel
	if err := cfg.Validate(); err != nil {
		return err
	}
	slog.Info("Configuration loaded", "seed", cfg.Seed, "config", opts.configPath)

	fleet, err := population.NewFleet(cfg)
	if err != nil {
		return err
	}
	pop, err := population.NewPopulation(cfg, rand.New(rand.NewPCG(cfg.Seed, 0)))
	if err != nil {
		return err
	}
	state := sim.NewState(fleet, pop, cfg.Seed)

	var rep report.Reporter = &report.Console{Out: stdout, Verbose: !opts.quiet}
	if opts.step {
		rep = report.NewStepper(rep)
	}
	return sim.Run(state, cfg, rep)
}
