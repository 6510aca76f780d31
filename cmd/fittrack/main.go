package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/meltforce/fittrack/internal/training"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type sensorPackage struct {
	workoutType string
	data        []float64
}

var packages = []sensorPackage{
	{"SWM", []float64{720, 1, 80, 25, 40}},
	{"RUN", []float64{15000, 1, 75}},
	{"WLK", []float64{9000, 1, 75, 180}},
}

func main() {
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fittrack", Version)
		return
	}

	// stdout carries the report; logs go to stderr
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(os.Stdout, packages); err != nil {
		log.Error("reading sensor package failed", "error", err)
		os.Exit(1)
	}
}

// run prints one summary line per package and stops at the first bad package.
func run(w io.Writer, pkgs []sensorPackage) error {
	for _, p := range pkgs {
		t, err := training.ReadPackage(p.workoutType, p.data)
		if err != nil {
			return fmt.Errorf("package %s: %w", p.workoutType, err)
		}
		if _, err := fmt.Fprintln(w, training.ShowTrainingInfo(t).Message()); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}
