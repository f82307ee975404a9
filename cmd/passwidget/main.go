package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"passwidget/internal/config"
	"passwidget/internal/platform"
	"passwidget/internal/ui"
	"passwidget/internal/utils"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	length := flag.Int("length", 0, "password length (6-100), overrides the saved setting")
	digits := flag.Bool("digits", false, "include digits, overrides the saved setting")
	symbols := flag.Bool("symbols", false, "include symbols, overrides the saved setting")
	printOnly := flag.Bool("print", false, "print one password and exit")
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		return
	}

	if *printOnly {
		printPassword(os.Stdout, applyFlags(config.Load(), flagsSet(), *length, *digits, *symbols))
		return
	}

	cfg := config.LoadOrInit()
	cfg = applyFlags(cfg, flagsSet(), *length, *digits, *symbols)

	logFile, err := openLog(config.LogPath())
	if err != nil {
		panic(err)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))
	slog.Info("starting", "version", version, "length", cfg.Length,
		"digits", cfg.IncludeDigits, "symbols", cfg.IncludeSymbols)

	h, err := ui.NewApp(cfg, platform.NewSystemClipboard())
	if err != nil {
		panic(err)
	}
	if err := h.Run(); err != nil {
		panic(err)
	}

	if err := config.Save(cfg.WithGenerator(h.Settings())); err != nil {
		slog.Warn("saving settings failed", "err", err)
	}
}

func flagsSet() map[string]bool {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags overrides saved preferences with the flags given on the command
// line. Unset flags keep the saved values.
func applyFlags(cfg config.AppConfig, set map[string]bool, length int, digits, symbols bool) config.AppConfig {
	if set["length"] {
		cfg.Length = utils.ClampLength(length)
	}
	if set["digits"] {
		cfg.IncludeDigits = digits
	}
	if set["symbols"] {
		cfg.IncludeSymbols = symbols
	}
	return cfg
}

// printPassword writes one password for cfg. It never saves cfg.
func printPassword(w io.Writer, cfg config.AppConfig) {
	fmt.Fprintln(w, utils.GeneratePassword(cfg.Generator()))
}

func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}
