package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/artcrawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Fetcher artcrawl.Fetcher
	Parser  artcrawl.Parser
	Pacer   artcrawl.Pacer
	Store   artcrawl.ArticleStore
}

// CLI defines the command-line interface structure for Kong.
// Every flag can also be set through its environment variable.
type CLI struct {
	Seeds       string        `short:"s" required:"" env:"ARTCRAWL_SEEDS" help:"File with one seed URL per line"`
	Output      string        `short:"o" default:"data/clean/articles.json" env:"ARTCRAWL_OUTPUT" help:"Path of the JSON document to write"`
	Timeout     time.Duration `short:"t" default:"10s" env:"ARTCRAWL_TIMEOUT" help:"Timeout per request"`
	Delay       time.Duration `short:"d" default:"100ms" env:"ARTCRAWL_DELAY" help:"Pause after every request"`
	Quota       int           `short:"q" default:"1000" env:"ARTCRAWL_QUOTA" help:"Stop after this many accepted articles (0 for no limit)"`
	Concurrency int           `short:"c" default:"1" env:"ARTCRAWL_CONCURRENCY" help:"Links fetched in parallel per seed"`
	UserAgent   string        `name:"user-agent" env:"ARTCRAWL_USER_AGENT" help:"User-Agent header sent with every request"`
	Print       bool          `short:"p" env:"ARTCRAWL_PRINT" help:"Print the written document after reading it back"`
	Verbose     bool          `short:"v" env:"ARTCRAWL_VERBOSE" help:"Log every fetch and discovered link"`
}

