package main

import (
	"context"
	"io"

	"github.com/fwojciec/stash"
	"github.com/fwojciec/stash/save"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	UserID     string
	Saves      stash.SaveService
	Fetcher    stash.Fetcher
	Extractor  stash.Extractor
	Prefetcher stash.Prefetcher
	Saver      *save.Saver
	Importer   *save.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	User    string `short:"u" env:"STASH_USER" default:"local" help:"User that owns the saves"`
	Config  string `type:"path" help:"YAML file overriding extraction settings"`
	Parser  string `enum:"readability,trafilatura,none" default:"readability" help:"Article parser for the first extraction tier (readability, trafilatura, none)"`
	Format  string `enum:"text,markdown" default:"text" help:"Render parsed articles as plain text or markdown"`
	Verbose bool   `short:"v" help:"Log fetches, extractions and writes to stderr"`

	Save    SaveCmd    `cmd:"" help:"Fetch, extract and store pages"`
	Extract ExtractCmd `cmd:"" help:"Print the article extracted from a page without storing it"`
	Import  ImportCmd  `cmd:"" help:"Import highlights from a JSON file"`
	List    ListCmd    `cmd:"" help:"List saves"`
	Show    ShowCmd    `cmd:"" help:"Show a save"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a save"`
	Export  ExportCmd  `cmd:"" help:"Export saves as Markdown files"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs"`
	Highlight   string   `help:"Store this highlight instead of the page content"`
	Source      string   `default:"cli" enum:"api,extension,bookmarklet,kindle,cli" help:"Recorded save source"`
	Browser     bool     `short:"b" help:"Render pages in a headless browser"`
	Archive     string   `type:"path" help:"Also write each save as Markdown under this directory"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64  `default:"1" help:"Fetches per second to each site (0 disables pacing)"`
	Burst       int      `default:"1" help:"Fetches allowed back to back per site"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL     string `arg:"" optional:"" help:"Page URL"`
	File    string `short:"f" type:"path" help:"Read HTML from a file instead of fetching the URL"`
	Browser bool   `short:"b" help:"Render the page in a headless browser"`
	Client  bool   `help:"Use client-side extraction"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File string `arg:"" type:"existingfile" help:"JSON array of {title, author, highlight} objects"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Highlights bool `help:"Only list highlights"`
	Pages      bool `help:"Only list pages"`
	Limit      int  `short:"n" default:"50" help:"Maximum number of saves"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Save ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Save ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" type:"path" help:"Target directory, replaced on success"`
}
