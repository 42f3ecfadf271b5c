package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file as well")
	flagMaxDepth   = flag.Int("max-depth", -1, "Propagation depth cap")
	flagVisitGuard = flag.Bool("visit-guard", false, "Update each mobject at most once per transform")
	flagDumpEach   = flag.Bool("dump-each", false, "Dump every mobject after each step")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagMaxDepth >= 0 {
		cfg.Scene.MaxDepth = *flagMaxDepth
	}
	if *flagVisitGuard {
		cfg.Scene.VisitGuard = true
	}
	if *flagDumpEach {
		cfg.Output.DumpAfterEach = true
	}
}
