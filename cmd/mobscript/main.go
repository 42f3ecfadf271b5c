// mobscript runs mobject operation scripts and prints diagnostics dumps.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/mobject/internal/config"
	"github.com/Faultbox/mobject/internal/logger"
	"github.com/Faultbox/mobject/internal/script"
	"github.com/Faultbox/mobject/pkg/mobject"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "run":
		os.Exit(cmdRun(args))
	case "check":
		os.Exit(cmdCheck(args))
	case "config":
		os.Exit(cmdConfig(args))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mobscript - mobject scene-graph script runner

Usage:
  mobscript [flags] <command> [args]

Commands:
  run <script.yaml>       Run a script and print its dumps
  check <script.yaml>     Validate a script without running it
  config [path]           Write the effective config (default: user config dir)

Flags:
  --config <file>         Config file (default: ./mobscript.yaml, then user config dir)
  --debug                 Debug logging
  --log-file <file>       Also log to a rotated file
  --max-depth <n>         Propagation depth cap
  --visit-guard           Update each mobject at most once per transform
  --dump-each             Dump every mobject after each step

Examples:
  mobscript check scenes/hierarchy.yaml
  mobscript --debug --max-depth 10 run scenes/hierarchy.yaml`)
}

func loadConfig() (*config.Config, bool) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, false
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing logger: %v\n", err)
		return nil, false
	}
	return cfg, true
}

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mobscript run <script.yaml>")
		return 1
	}
	cfg, ok := loadConfig()
	if !ok {
		return 1
	}
	defer logger.Sync()

	s, err := script.Load(args[0])
	if err != nil {
		logger.Error("loading script", zap.String("path", args[0]), zap.Error(err))
		return 1
	}
	if err := s.Check(); err != nil {
		logger.Error("invalid script", zap.String("path", args[0]), zap.Error(err))
		return 1
	}

	opts := cfg.SceneOptions()
	opts.Logger = logger.Named("registry")
	reg := mobject.NewFromOptions(opts)

	runner := script.NewRunner(reg, os.Stdout, logger.Named("script"))
	runner.SetDumpEach(cfg.Output.DumpAfterEach)
	if err := runner.Run(s); err != nil {
		return 1
	}

	logger.Info("script finished",
		zap.String("name", s.Name),
		zap.Int("mobjects", reg.Len()),
	)
	return 0
}

func cmdCheck(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mobscript check <script.yaml>")
		return 1
	}
	s, err := script.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := s.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("%s: %d steps OK\n", s.Name, len(s.Steps))
	return 0
}

func cmdConfig(args []string) int {
	cfg, ok := loadConfig()
	if !ok {
		return 1
	}
	defer logger.Sync()

	var err error
	if len(args) > 0 {
		err = cfg.SaveTo(args[0])
	} else {
		err = cfg.Save()
	}
	if err != nil {
		logger.Error("saving config", zap.Error(err))
		return 1
	}
	return 0
}
