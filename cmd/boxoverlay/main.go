package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/1broseidon/boxoverlay/internal/config"
	"github.com/1broseidon/boxoverlay/internal/overlay"
	"github.com/1broseidon/boxoverlay/internal/platform"
	"github.com/1broseidon/boxoverlay/internal/windowstate"
	"gopkg.in/yaml.v3"
)

const windowClass = "boxoverlay"

func main() {
	if len(os.Args) < 2 {
		os.Exit(runOverlay(nil))
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runOverlay(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		if strings.HasPrefix(os.Args[1], "-") {
			os.Exit(runOverlay(os.Args[1:]))
		}
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: boxoverlay [command] [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Open the overlay window (default)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  config explain      Explain a config value")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  help                Show this help")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Controls:")
	fmt.Fprintln(w, "  Left drag           Move (center) or resize (edges and corners)")
	fmt.Fprintln(w, "  Right drag          Change opacity (up: more opaque, down: less)")
	fmt.Fprintln(w, "  Middle click        Toggle cursor auto-hide")
	fmt.Fprintln(w, "  Escape, q           Quit")
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.LoadWithSources()
	}
	return config.LoadFromPath(path)
}

func runOverlay(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/boxoverlay/config.yaml)")
	verbose := fs.Bool("v", false, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		return 2
	}

	res, err := loadConfig(*path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := res.Config

	level := parseLevel(cfg.LogLevel)
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	fill, err := cfg.FillColor()
	if err != nil {
		log.Fatalf("Invalid fill colour: %v", err)
	}

	spec := platform.WindowSpec{
		Title:       cfg.Window.Title,
		Class:       windowClass,
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		MinWidth:    cfg.Window.MinWidth,
		MinHeight:   cfg.Window.MinHeight,
		AlwaysOnTop: cfg.Window.AlwaysOnTop,
		Transparent: cfg.Window.Transparent,
	}

	var store *windowstate.Store
	if cfg.Window.RememberGeometry {
		store = openWindowStore(logger)
		if store != nil {
			spec.Placement = restorePlacement(store, cfg, logger)
		}
	}

	backend, err := platform.NewLinuxBackend(cfg.Display, spec, cfg.Input.DragThreshold, logger)
	if err != nil {
		log.Fatalf("Failed to open overlay window: %v", err)
	}
	defer backend.Disconnect()

	app := overlay.New(overlay.Options{
		BaseColor: fill,
		Alpha:     cfg.Appearance.Alpha,
		Opacity: overlay.OpacityScale{
			MinAlpha: cfg.Opacity.Min,
			MaxAlpha: cfg.Opacity.Max,
			Length:   cfg.Opacity.DragRange,
		},
		HideAfter:   cfg.HideAfter(),
		StartHidden: cfg.Cursor.StartHidden,
		QuitKeys:    cfg.Keys.Quit,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("boxoverlay started (%dx%d, alpha %.2f)", spec.Width, spec.Height, app.Alpha())
	if err := backend.Run(ctx, app); err != nil {
		log.Printf("Overlay stopped with error: %v", err)
	}

	if store != nil {
		saveGeometry(store, backend, logger)
	}
	log.Println("boxoverlay closed")
	return 0
}

func openWindowStore(logger *slog.Logger) *windowstate.Store {
	store, err := windowstate.DefaultStore()
	if err != nil {
		logger.Warn("window memory disabled", "err", err)
		return nil
	}
	return store
}

func restorePlacement(store *windowstate.Store, cfg *config.Config, logger *slog.Logger) *platform.Rect {
	g, ok, err := store.Load()
	if err != nil {
		logger.Warn("ignoring window memory", "path", store.Path(), "err", err)
		return nil
	}
	if !ok || !g.Valid(cfg.Window.MinWidth, cfg.Window.MinHeight) {
		return nil
	}
	logger.Debug("restoring window geometry", "x", g.X, "y", g.Y, "width", g.Width, "height", g.Height)
	return &platform.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
}

func saveGeometry(store *windowstate.Store, backend platform.Backend, logger *slog.Logger) {
	r, err := backend.Geometry()
	if err != nil {
		logger.Warn("window geometry not saved", "err", err)
		return
	}
	g := windowstate.Geometry{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	if err := store.Save(g); err != nil {
		logger.Warn("window geometry not saved", "path", store.Path(), "err", err)
		return
	}
	logger.Debug("window geometry saved", "path", store.Path())
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  boxoverlay config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  boxoverlay config print [--path PATH] [--defaults]")
		fmt.Fprintln(os.Stderr, "  boxoverlay config explain [--path PATH] <yaml.path>")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/boxoverlay/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		if _, err := loadConfig(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/boxoverlay/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, err := loadConfig(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			if res.File != "" {
				fmt.Printf("# file: %s\n", res.File)
			}
			cfg = res.Config
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	case "explain":
		fs := flag.NewFlagSet("explain", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/boxoverlay/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() < 1 {
			fmt.Fprintln(os.Stderr, "explain requires <yaml.path>")
			fmt.Fprintf(os.Stderr, "known paths: %s\n", strings.Join(config.ExplainPaths(), ", "))
			return 2
		}
		queryPath := fs.Arg(0)

		res, err := loadConfig(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		value, src, err := config.Explain(res, queryPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		out, err := yaml.Marshal(value)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		fmt.Printf("path: %s\n", queryPath)
		fmt.Printf("source: %s\n", formatSource(src))
		fmt.Printf("value:\n%s", string(out))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func formatSource(src config.Source) string {
	switch src.Kind {
	case config.SourceFile:
		if src.File == "" {
			return "file"
		}
		if src.Line > 0 {
			return fmt.Sprintf("file:%s:%d:%d", src.File, src.Line, src.Column)
		}
		return "file:" + src.File
	default:
		return "default"
	}
}
