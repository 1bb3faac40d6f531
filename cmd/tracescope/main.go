package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tracescope/tracescope/app"
	"github.com/tracescope/tracescope/app/logging"
	"github.com/tracescope/tracescope/app/settings"
	"github.com/tracescope/tracescope/app/theme"
)

func settingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "tracescope", "tracescope.ini"), nil
}

func main() {
	cliArgs := app.ParseCLIArgs()

	// 1. Set up logging first. The main goroutine owns the aggregator
	// and will also run the UI event loop.
	log := logging.New()
	if err := os.MkdirAll(cliArgs.LogDir, 0755); err != nil {
		os.Stderr.WriteString(fmt.Sprintf("Failed to create log directory: %v\n", err))
		os.Exit(1)
	}
	logFileName := fmt.Sprintf("tracescope-%s.log", time.Now().Format("2006-01-02_15-04-05"))
	logFile, err := os.OpenFile(filepath.Join(cliArgs.LogDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetWriter(logFile)

	// 2. Durable settings.
	path, err := settingsPath()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	store, err := settings.Open(path)
	if err != nil {
		os.Stderr.WriteString("Failed to open settings: " + err.Error() + "\n")
		os.Exit(1)
	}

	if cliArgs.Verbose {
		if wd, err := os.Getwd(); err == nil {
			log.Logf("Main: working directory: %s", wd)
		}
		log.Logf("Main: settings file: %s", path)
	}

	a := app.New(log, store)

	if cliArgs.Preset != "" {
		if preset, err := theme.LoadPreset(cliArgs.Preset); err != nil {
			log.Logf("WARN: preset: %v", err)
		} else {
			for _, skip := range preset.Apply(a.Theme()) {
				log.Logf("WARN: preset %q: %s", preset.Name, skip)
			}
			log.Logf("Applied theme preset %q", preset.Name)
		}
	}

	if cliArgs.DemoFeed {
		startDemoFeed(log)
	}

	runErr := a.Run()
	if err := a.Shutdown(); err != nil {
		os.Stderr.WriteString("Failed to persist settings: " + err.Error() + "\n")
	}
	if runErr != nil {
		os.Stderr.WriteString("Application error: " + runErr.Error() + "\n")
		os.Exit(1)
	}
}

// startDemoFeed spawns background workers that emit tagged events, so
// the cross-goroutine log path can be watched live.
func startDemoFeed(log *logging.Aggregator) {
	for worker := 0; worker < 4; worker++ {
		go func(worker int) {
			for i := 0; ; i++ {
				log.Logf("worker %d: event %d (%s)", worker, i,
					theme.FromHash(uint32(worker*31+i), 0.9, 1.0).Hex())
				time.Sleep(250 * time.Millisecond)
			}
		}(worker)
	}
}
