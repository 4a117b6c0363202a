package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/wikimd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Articles wikimd.ArticleService
	Searcher wikimd.Searcher
	Writer   wikimd.ArticleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Get     GetCmd     `cmd:"" help:"Fetch Wikipedia articles as Markdown"`
	History HistoryCmd `cmd:"" help:"List saved articles"`
	Show    ShowCmd    `cmd:"" help:"Print a saved article"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved article"`
}

const (
	engineWalk           = "walk"
	engineHTMLToMarkdown = "html-to-markdown"
)

// GetCmd is the "get" subcommand.
type GetCmd struct {
	Queries     []string      `arg:"" name:"query" help:"Article titles to fetch"`
	Lang        string        `short:"l" env:"WIKIMD_LANG" default:"en" help:"Wikipedia language code"`
	JSON        bool          `name:"json" help:"Print a JSON result per query"`
	Out         string        `short:"o" type:"path" help:"Also write articles below this directory"`
	Save        bool          `help:"Save articles to the history database"`
	Engine      string        `enum:"walk,html-to-markdown" default:"walk" help:"Conversion engine (walk, html-to-markdown)"`
	Outline     bool          `help:"Print the heading outline instead of the article"`
	DedupeMath  bool          `name:"dedupe-math" help:"Emit math spans only as $$ blocks"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent fetch limit"`
	Interval    time.Duration `default:"100ms" help:"Minimum delay between requests to Wikipedia"`
	Timeout     time.Duration `short:"t" default:"30s" help:"Per-request timeout (0 disables)"`
	Verbose     bool          `short:"v" help:"Log requests to stderr"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Lang  string `short:"l" help:"Only show articles in this language"`
	Limit int    `short:"n" default:"20" help:"Maximum number of articles (0 for all)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID      string `arg:"" help:"Article ID"`
	Outline bool   `help:"Print the heading outline instead of the article"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Article ID"`
}
