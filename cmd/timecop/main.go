package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/wilbur182/timecop/internal/app"
	"github.com/wilbur182/timecop/internal/config"
	"github.com/wilbur182/timecop/internal/events"
	"github.com/wilbur182/timecop/internal/forge"
	"github.com/wilbur182/timecop/internal/gitrepo"
	"github.com/wilbur182/timecop/internal/logging"
)

// Version is set at build time via ldflags.
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("timecop version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "timecop: too many arguments")
		flag.Usage()
		os.Exit(2)
	}

	if *debugFlag {
		os.Setenv("TIMECOP_LOG", "debug")
	}
	logger := logging.Init()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "timecop: stdout is not a terminal")
		os.Exit(1)
	}

	workDir := "."
	if flag.NArg() == 1 {
		workDir = flag.Arg(0)
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "timecop: resolving path: %v\n", err)
		os.Exit(1)
	}

	repo, err := gitrepo.Open(workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "timecop: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "timecop: loading config: %v\n", err)
		os.Exit(1)
	}
	gitrepo.TruncationCeiling = cfg.Diff.MaxLines

	fg := forge.NewAdapter(workDir)
	if !fg.Available() {
		logger.Warn("forge CLI not available, pull request features disabled")
	}

	model := app.New(cfg, repo, fg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	model.SetProgram(p)

	watcher, err := events.Watch(workDir, p)
	if err != nil {
		logger.Warn("file watcher unavailable", "err", err)
	} else {
		model.SetWatcher(watcher)
		defer watcher.Close()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "timecop: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, falling back to build info
// embedded by the Go toolchain when Version was not set via ldflags.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}
	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: timecop [PATH]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal code review workstation for a Git branch and its pull request.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
