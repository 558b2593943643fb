package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/torrench"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Searcher   torrench.Searcher
	Downloader torrench.Downloader

	// History is nil when history is disabled.
	History torrench.HistoryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL     string        `name:"base-url" env:"TORRENCH_BASE_URL" default:"https://nyaa.si" help:"Index base URL"`
	DownloadDir string        `name:"download-dir" env:"TORRENCH_DOWNLOADS" help:"Directory .torrent files are saved to (default ~/Downloads/torrench)"`
	DB          string        `name:"db" env:"TORRENCH_DB" help:"History database path (default ~/.torrench/torrench.db)"`
	Timeout     time.Duration `default:"10s" help:"HTTP request timeout"`
	Debug       bool          `help:"Log requests and timings to stderr"`
	NoHistory   bool          `name:"no-history" help:"Do not record searches and downloads"`

	Search     SearchCmd     `cmd:"" help:"Search the index and download results"`
	Categories CategoriesCmd `cmd:"" help:"List categories"`
	History    HistoryCmd    `cmd:"" help:"Show recorded searches or downloads"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query       []string `arg:"" help:"Search terms"`
	Category    string   `short:"c" help:"Category name or code (prompts when omitted)"`
	Page        int      `default:"1" help:"First results page"`
	Pages       int      `short:"p" default:"1" help:"Number of results pages to fetch"`
	Concurrency int      `default:"2" help:"Concurrent page fetch limit"`
	Extractor   string   `short:"e" enum:"row,positional,feed" default:"row" help:"Listing extractor (row, positional, feed)"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Downloads bool   `short:"d" help:"Show downloads instead of searches"`
	Query     string `short:"q" help:"Only show entries with this exact query (or name for downloads)"`
	Limit     int    `short:"n" default:"20" help:"Maximum entries to show"`
	ID        string `name:"id" help:"Show details of the download with this ID"`
}
