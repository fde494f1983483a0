package main

import (
	"context"
	"io"

	"github.com/esoxjem/luego"
	"github.com/esoxjem/luego/batch"
	"github.com/esoxjem/luego/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Articles  luego.ArticleService
	Extractor luego.Extractor
	Saver     *batch.Saver
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch  FetchCmd  `cmd:"" help:"Extract an article and print it as Markdown"`
	Save   SaveCmd   `cmd:"" help:"Extract articles and save them to the reading list"`
	List   ListCmd   `cmd:"" help:"List saved articles"`
	Show   ShowCmd   `cmd:"" help:"Show a saved article"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved article"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL          string `arg:"" help:"Article URL"`
	Engine       string `short:"e" default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Extraction engine"`
	MetadataOnly bool   `short:"m" help:"Print metadata without the article body"`
	Verbose      bool   `short:"v" help:"Log extraction steps to stderr"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URLs        []string `arg:"" help:"Article URLs"`
	Engine      string   `short:"e" default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Extraction engine"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64  `default:"1" help:"Max requests per second per domain"`
	Verbose     bool     `short:"v" help:"Log extraction steps to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit  int `help:"Maximum number of articles to list"`
	Offset int `help:"Number of articles to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Article ID"`
	Full bool   `help:"Show full article content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article ID"`
	Force bool   `help:"Confirm deletion"`
}
