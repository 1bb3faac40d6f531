package app

import "flag"

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	Verbose  bool
	LogDir   string
	Preset   string
	DemoFeed bool
}

// ParseCLIArgs parses the command-line flags and returns a populated CLIArgs struct.
func ParseCLIArgs() *CLIArgs {
	args := &CLIArgs{}

	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose startup logging.")
	flag.StringVar(&args.LogDir, "log-dir", ".", "Specifies the directory to store log files.")
	flag.StringVar(&args.Preset, "preset", "", "Apply a theme preset file (JSON5) at startup.")
	flag.BoolVar(&args.DemoFeed, "demo", false, "Emit demo trace events from background workers.")
	flag.Parse()

	return args
}
