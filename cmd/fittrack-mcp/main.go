package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/fittrack/internal/client"
	"github.com/meltforce/fittrack/internal/mcp"
	"github.com/meltforce/fittrack/internal/summary"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "fittrack server URL; empty computes locally")
	apiKey := flag.String("api-key", os.Getenv("FITTRACK_AUTH_API_KEY"), "API key for the remote server")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fittrack-mcp", Version)
		return
	}

	// stdout is the MCP transport
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var calc mcp.Calculator
	if *serverURL != "" {
		calc = client.New(*serverURL, *apiKey)
		log.Info("remote mode", "server", *serverURL)
	} else {
		calc = summary.NewService(log)
		log.Info("local mode")
	}

	if err := server.ServeStdio(mcp.New(calc, Version, log)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
