package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattjoyce/launchpad/internal/config"
	"github.com/mattjoyce/launchpad/internal/countdown"
	"github.com/mattjoyce/launchpad/internal/log"
	"github.com/mattjoyce/launchpad/internal/page"
	"github.com/mattjoyce/launchpad/internal/tui/watch"
	"github.com/mattjoyce/launchpad/internal/web"
)

var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	os.Exit(runCLI(os.Args[1:]))
}

func runCLI(cliArgs []string) int {
	if len(cliArgs) < 1 {
		printUsage()
		return 1
	}

	cmd := cliArgs[0]
	args := cliArgs[1:]

	switch cmd {
	case "serve":
		if hasHelpFlag(args) {
			printServeHelp()
			return 0
		}
		return runServe(args)
	case "watch":
		if hasHelpFlag(args) {
			printWatchHelp()
			return 0
		}
		return runWatch(args)
	case "config":
		return runConfigNoun(args)
	case "version", "--version":
		return runVersion(args)
	case "help", "--help", "-h":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		return 1
	}
}

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

func runVersion(args []string) int {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "Output version metadata as JSON")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Usage: launchpad version [--json]")
		return 1
	}

	info := currentVersionInfo()

	if *jsonOut {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to render version JSON: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	fmt.Printf("launchpad %s\n", info.Version)
	fmt.Printf("commit: %s\n", info.Commit)
	fmt.Printf("built_at: %s\n", info.BuildTime)
	return 0
}

func currentVersionInfo() versionInfo {
	info := versionInfo{
		Version:   strings.TrimSpace(version),
		Commit:    "unknown",
		BuildTime: "unknown",
	}
	if info.Version == "" {
		info.Version = "0.0.0-dev"
	}

	commit := strings.TrimSpace(gitCommit)
	if commit == "" || commit == "unknown" {
		commit = strings.TrimSpace(readBuildSetting("vcs.revision"))
	}
	if commit != "" {
		info.Commit = shortenCommit(commit)
	}

	built := strings.TrimSpace(buildDate)
	if built == "" || built == "unknown" {
		built = strings.TrimSpace(readBuildSetting("vcs.time"))
	}
	if normalized, ok := normalizeBuildTimeUTC(built); ok {
		info.BuildTime = normalized
	}
	return info
}

func shortenCommit(commit string) string {
	if len(commit) <= 12 {
		return commit
	}
	return commit[:12]
}

func normalizeBuildTimeUTC(raw string) (string, bool) {
	if raw == "" || raw == "unknown" {
		return "", false
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return "", false
	}
	return t.UTC().Format(time.RFC3339), true
}

func readBuildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

func printUsage() {
	fmt.Printf(`launchpad - "Coming soon" countdown landing page

Usage:
  launchpad <command> [flags]

Commands:
  serve             Serve the landing page and its live countdown stream
  watch             Show the countdown in the terminal
  config check      Validate configuration and integrity
  config lock       Authorize current config (write .checksums)
  version           Show version information
  help              Show this help message

Page variants: %s

Config is read from --config, $LAUNCHPAD_CONFIG,
~/.config/launchpad/config.yaml or ./config.yaml, in that order.
Built-in defaults are used when none exists.
`, strings.Join(page.Names(), ", "))
}

func printServeHelp() {
	fmt.Println("Usage: launchpad serve [--config PATH] [--listen ADDR] [--variant NAME]")
	fmt.Println("Serve the landing page in the foreground until interrupted.")
}

func printWatchHelp() {
	fmt.Println("Usage: launchpad watch [--config PATH] [--log-file PATH]")
	fmt.Println()
	fmt.Println("Show the countdown in the terminal.")
	fmt.Println()
	fmt.Println("Keybindings:")
	fmt.Println("  q, Esc, Ctrl+C   Quit")
}

func isHelpToken(token string) bool {
	return token == "help" || token == "--help" || token == "-h"
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// loadConfig resolves and loads configuration. An empty path falls back to
// discovery and then to built-in defaults. The second return names the source.
func loadConfig(configPath string) (*config.Config, string, error) {
	if configPath == "" {
		discovered, err := config.Discover()
		if err != nil {
			return nil, "", fmt.Errorf("failed to discover config: %w", err)
		}
		configPath = discovered
	}
	if configPath == "" {
		return config.Defaults(), "defaults", nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, "", err
	}
	return cfg, configPath, nil
}

func newEngine(cfg *config.Config) (*countdown.Engine, error) {
	target, err := cfg.TargetTime()
	if err != nil {
		return nil, err
	}
	return countdown.New(target), nil
}

// --- ACTION IMPLEMENTATIONS ---

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file or directory")
	listen := fs.String("listen", "", "Override http.listen")
	variant := fs.String("variant", "", "Override page.variant")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse flags: %v\n", err)
		return 1
	}

	cfg, source, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *listen != "" {
		cfg.HTTP.Listen = *listen
	}
	if *variant != "" {
		cfg.Page.Variant = *variant
	}

	log.Setup(cfg.Service.LogLevel)
	logger := log.WithComponent("main")
	logger.Info("launchpad starting", "version", version, "config", source)

	engine, err := newEngine(cfg)
	if err != nil {
		logger.Error("invalid event target", "error", err)
		return 1
	}

	srv := web.New(web.Config{
		Listen:       cfg.HTTP.Listen,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		VideoDir:     cfg.HTTP.VideoDir,
		Variant:      cfg.Page.Variant,
		TickInterval: cfg.Service.TickInterval,
		StreamBuffer: cfg.Page.StreamBuffer,
	}, engine, page.Content{
		EventName:   cfg.Event.Name,
		Tagline:     cfg.Event.Tagline,
		Organizer:   cfg.Event.Organizer,
		RegisterURL: cfg.Event.RegisterURL,
	}, log.WithEvent(cfg.Event.Name))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	logger.Info("launchpad running (press Ctrl+C to stop)", "target", engine.Target())

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("shutdown failed", "error", err)
			return 1
		}
	case err := <-errCh:
		logger.Error("web server failed", "error", err)
		return 1
	}

	logger.Info("launchpad stopped")
	return 0
}

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to configuration file or directory")
	logFile := fs.String("log-file", "", "Write logs to this file (default: discard)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Flag error: %v\n", err)
		return 1
	}

	cfg, source, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Log records would corrupt the alternate screen.
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	log.SetupWriter(cfg.Service.LogLevel, logOut)

	engine, err := newEngine(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid event target: %v\n", err)
		return 1
	}
	log.WithComponent("watch").Info("watch starting", "config", source, "target", engine.Target())

	m := watch.New(engine, watch.Info{Name: cfg.Event.Name, Tagline: cfg.Event.Tagline}, nil)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		return 1
	}
	return 0
}
