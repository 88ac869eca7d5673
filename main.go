package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cpusched/internal/config"
	"cpusched/internal/loader"
	"cpusched/internal/log"
	"cpusched/internal/render"
	"cpusched/internal/sched"
)

var ErrInvalidArgs = errors.New("invalid args")

type options struct {
	config.Config
	Interactive bool
	Priority    bool
	// AskQuantum prompts for the Round-robin time slice in interactive mode.
	AskQuantum bool
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.BuildLogger(opts.LogLevel)

	// Load and parse processes
	processes, err := loadProcesses(&opts, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("Error loading processes", log.ErrAttr(err))
		os.Exit(1)
	}

	if err := simulate(os.Stdout, logger, opts, processes); err != nil {
		logger.Error("Error running simulation", log.ErrAttr(err))
		os.Exit(1)
	}
}

// parseArgs builds the run options. Values from -config are applied first
// and explicitly set flags override them.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("cpusched", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stderr, "usage: cpusched [flags] [processes-file]")
		fs.PrintDefaults()
	}

	var (
		configPath  = fs.String("config", "", "JSON configuration file")
		policies    = fs.String("policy", "", "comma separated policies to run (default all)")
		quantum     = fs.Int64("quantum", config.DefaultQuantum, "round-robin time quantum")
		logLevel    = fs.String("log-level", "info", "log level: debug, info, warn or error")
		interactive = fs.Bool("interactive", false, "prompt for processes instead of reading a file")
		priority    = fs.Bool("priority", false, "prompt for priorities in interactive mode")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	opts := options{Config: config.Default()}
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return options{}, err
		}
		opts.Config = cfg
	}

	quantumSet := *configPath != ""
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "policy":
			opts.Policies = strings.Split(*policies, ",")
		case "quantum":
			opts.Quantum = *quantum
			quantumSet = true
		case "log-level":
			opts.LogLevel = *logLevel
		}
	})
	opts.Interactive = *interactive
	opts.Priority = *priority
	opts.AskQuantum = opts.Interactive && !quantumSet

	switch {
	case fs.NArg() > 1:
		return options{}, fmt.Errorf("%w: at most one scheduling file may be given", ErrInvalidArgs)
	case fs.NArg() == 1:
		opts.Input = fs.Arg(0)
	}
	if opts.Input == "" && !opts.Interactive {
		return options{}, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}

	return opts, nil
}

// loadProcesses reads the processes from the input file or, in interactive
// mode, from in. Interactive runs that include Round-robin also ask for the
// time slice unless one was configured.
func loadProcesses(opts *options, in io.Reader, out io.Writer) ([]sched.Process, error) {
	if !opts.Interactive {
		return loader.LoadFile(opts.Input)
	}

	prompter := loader.NewPrompter(in, out)
	processes, err := prompter.Processes(opts.Priority)
	if err != nil {
		return nil, err
	}

	policies, err := opts.SelectedPolicies()
	if err != nil {
		return nil, err
	}
	if opts.AskQuantum && runsRoundRobin(policies) {
		if opts.Quantum, err = prompter.Quantum(); err != nil {
			return nil, err
		}
	}

	return processes, nil
}

func runsRoundRobin(policies []sched.Policy) bool {
	for _, p := range policies {
		if p.Kind() == sched.Quantum {
			return true
		}
	}
	return false
}

// simulate runs every selected policy over its own copy of processes and
// renders each result. Priority policies are skipped when the processes
// carry no priorities. Invalid input is rejected before anything is written.
func simulate(w io.Writer, logger *slog.Logger, opts options, processes []sched.Process) error {
	policies, err := opts.SelectedPolicies()
	if err != nil {
		return err
	}
	if err := sched.Validate(processes); err != nil {
		return err
	}
	if runsRoundRobin(policies) {
		if err := sched.ValidateQuantum(opts.Quantum); err != nil {
			return err
		}
	}

	for _, policy := range policies {
		res, err := sched.Run(policy, processes, sched.Options{Quantum: opts.Quantum})
		if errors.Is(err, sched.ErrMissingPriority) {
			logger.Warn("Skipping policy", slog.String("policy", policy.String()), log.ErrAttr(err))
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", policy, err)
		}

		logger.Debug("Simulation finished",
			slog.String("policy", policy.String()),
			slog.Int("entries", len(res.Timeline)),
			slog.Int64("makespan", res.Makespan),
		)
		render.Report(w, policy.Title(), res)
	}

	return nil
}
