package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/crawl"
	"github.com/fwojciec/ciagent/knowledge"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config

	Collections ciagent.CollectionService
	Crawls      ciagent.CrawlService
	Crawler     *crawl.Crawler
	Builder     *knowledge.Builder
	Asker       ciagent.Asker

	// NewPageStore creates the export target for build --export.
	NewPageStore func(dir, name string) ciagent.PageStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"CIAGENT_DB" help:"Database path"`
	Config  string `name:"config" env:"CIAGENT_CONFIG" help:"Config file path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Build  BuildCmd  `cmd:"" help:"Crawl a company website and build its knowledge base"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about a company"`
	Chat   ChatCmd   `cmd:"" help:"Chat about a company interactively"`
	Pages  PagesCmd  `cmd:"" help:"List pages visited by the latest crawl of a company"`
	List   ListCmd   `cmd:"" help:"List all knowledge bases"`
	Delete DeleteCmd `cmd:"" help:"Delete a company's knowledge base and crawl history"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	URL       string `arg:"" help:"Company website URL"`
	MaxPages  int    `short:"n" default:"10" help:"Maximum pages to crawl (1-50)"`
	Force     bool   `short:"f" help:"Replace an existing knowledge base"`
	Export    string `help:"Also write extracted page text to this directory" type:"path"`
	Extractor string `default:"trafilatura" enum:"trafilatura,readability" help:"Text extractor (trafilatura, readability)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Company     string `arg:"" help:"Company URL or identifier"`
	Question    string `arg:"" help:"Question to ask"`
	K           int    `short:"k" help:"Number of passages to retrieve"`
	ShowContext bool   `help:"Print the retrieved passages"`
	Raw         bool   `help:"Print the answer without markdown rendering"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Company string `arg:"" help:"Company URL or identifier"`
	Raw     bool   `help:"Print answers without markdown rendering"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Company string `arg:"" help:"Company URL or identifier"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Company string `arg:"" help:"Company URL or identifier"`
	Force   bool   `help:"Confirm deletion"`
}
