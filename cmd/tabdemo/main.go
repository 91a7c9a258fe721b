package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tabdemo/internal/config"
	"tabdemo/internal/trace"
	"tabdemo/internal/ui"
)

// flags holds the parsed command line.
type flags struct {
	configPath string
	debug      bool
	logPath    string
}

func parseFlags() flags {
	var f flags

	flag.StringVar(&f.configPath, "config", "", "path to a TOML config file (default $HOME/.config/tabdemo/config.toml)")
	flag.BoolVar(&f.debug, "debug", false, "write a debug log")
	flag.StringVar(&f.logPath, "log", "", "debug log path (implies -debug)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tabdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "A three-tab terminal demo: Home, Profile and Settings.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return f
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.debug {
		cfg.Log.Debug = true
	}
	if f.logPath != "" {
		cfg.Log.Debug = true
		cfg.Log.Path = f.logPath
	}

	if cfg.Log.Debug {
		logFile, err := tea.LogToFile(cfg.Log.Path, "tabdemo")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracer, err := trace.NewOTLPTracer(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := tracer.Shutdown(context.Background()); err != nil {
			log.Printf("trace shutdown: %v", err)
		}
	}()

	app := ui.NewAppModel(ui.Options{
		Profile:       cfg.Profile,
		ClockInterval: cfg.Clock.Interval,
		ClockLayout:   cfg.Clock.Layout,
		Tracer:        tracer,
	})
	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())

	if err := app.Mount(ctx, p.Send); err != nil {
		return err
	}
	defer app.Unmount()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
