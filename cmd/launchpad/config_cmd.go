package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattjoyce/launchpad/internal/config"
	"github.com/mattjoyce/launchpad/internal/countdown"
	"github.com/mattjoyce/launchpad/internal/page"
)

func runConfigNoun(args []string) int {
	if len(args) < 1 {
		printConfigNounHelp(os.Stderr)
		return 1
	}
	if isHelpToken(args[0]) {
		printConfigNounHelp(os.Stdout)
		return 0
	}

	action := args[0]
	actionArgs := args[1:]

	switch action {
	case "check":
		if hasHelpFlag(actionArgs) {
			printConfigCheckHelp()
			return 0
		}
		return runConfigCheck(actionArgs)
	case "lock":
		if hasHelpFlag(actionArgs) {
			printConfigLockHelp()
			return 0
		}
		return runConfigLock(actionArgs)
	default:
		fmt.Fprintf(os.Stderr, "Unknown config action: %s\n", action)
		return 1
	}
}

func printConfigNounHelp(w *os.File) {
	fmt.Fprintln(w, "Usage: launchpad config <action> [flags]")
	fmt.Fprintln(w, "Actions: check, lock")
}

func printConfigCheckHelp() {
	fmt.Println("Usage: launchpad config check [--config PATH] [--json]")
	fmt.Println("Validate configuration syntax, event target and integrity.")
}

func printConfigLockHelp() {
	fmt.Println("Usage: launchpad config lock [--config PATH] [-v|--verbose] [--dry-run]")
	fmt.Println("Authorize the current config file by regenerating its integrity hash.")
}

// checkResult is the machine-readable outcome of config check.
type checkResult struct {
	Valid    bool      `json:"valid"`
	Source   string    `json:"source"`
	Event    string    `json:"event,omitempty"`
	Target   time.Time `json:"target,omitzero"`
	Variant  string    `json:"variant,omitempty"`
	Expired  bool      `json:"expired"`
	Errors   []string  `json:"errors,omitempty"`
	Warnings []string  `json:"warnings,omitempty"`
}

func runConfigCheck(args []string) int {
	var configPath string
	var jsonOut bool

	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "Path to configuration")
	fs.BoolVar(&jsonOut, "json", false, "Output in JSON")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	result := checkConfig(configPath, time.Now())

	if jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "JSON format error: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
	} else {
		printCheckResult(result)
	}

	if !result.Valid {
		return 1
	}
	return 0
}

func checkConfig(configPath string, now time.Time) checkResult {
	cfg, source, err := loadConfig(configPath)
	if err != nil {
		return checkResult{Source: configPath, Errors: []string{err.Error()}}
	}

	result := checkResult{
		Valid:   true,
		Source:  source,
		Event:   cfg.Event.Name,
		Variant: cfg.Page.Variant,
	}
	target, err := cfg.TargetTime()
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Target = target
	result.Expired = countdown.New(target).Expired(now)

	if _, ok := page.Lookup(cfg.Page.Variant); !ok {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("page.variant %q is unknown; %q will be served", cfg.Page.Variant, page.DefaultVariant))
	}
	if result.Expired {
		result.Warnings = append(result.Warnings, "event.target is in the past; the countdown shows zeros")
	}
	if cfg.HTTP.VideoDir != "" {
		if st, err := os.Stat(cfg.HTTP.VideoDir); err != nil || !st.IsDir() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("http.video_dir %s is not a directory; hero videos will 404", cfg.HTTP.VideoDir))
		}
	}
	return result
}

func printCheckResult(r checkResult) {
	if !r.Valid {
		fmt.Println("Configuration INVALID")
		for _, e := range r.Errors {
			fmt.Printf("  ERROR %s\n", e)
		}
		return
	}
	fmt.Printf("Configuration OK (%s)\n", r.Source)
	fmt.Printf("  event:   %s\n", r.Event)
	fmt.Printf("  target:  %s\n", r.Target.Format(time.RFC3339))
	fmt.Printf("  variant: %s\n", r.Variant)
	for _, w := range r.Warnings {
		fmt.Printf("  WARN %s\n", w)
	}
}

func runConfigLock(args []string) int {
	var configPath string
	var verbose, verboseShort, dryRun bool

	fs := flag.NewFlagSet("lock", flag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "Path to configuration")
	fs.BoolVar(&verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&verboseShort, "v", false, "Verbose output")
	fs.BoolVar(&dryRun, "dry-run", false, "Dry run")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	isVerbose := verbose || verboseShort

	if configPath == "" {
		discovered, err := config.Discover()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to discover config: %v\n", err)
			return 1
		}
		if discovered == "" {
			fmt.Fprintln(os.Stderr, "No config file found; pass --config")
			return 1
		}
		configPath = discovered
	}

	report, err := config.Lock(configPath, dryRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to lock config: %v\n", err)
		return 1
	}

	if isVerbose {
		fmt.Printf("Processing directory: %s\n", report.ConfigDir)
		fmt.Printf("  HASH %s: %s\n", report.File, report.Hash)
		if report.Written {
			fmt.Printf("  WROTE %s: %s\n", config.ChecksumFile, report.ChecksumPath)
		} else {
			fmt.Printf("  DRY-RUN %s: %s (not written)\n", config.ChecksumFile, report.ChecksumPath)
		}
	}

	if dryRun {
		fmt.Println("Dry run completed; no files were written.")
		return 0
	}
	fmt.Println("Successfully locked configuration.")
	return 0
}
