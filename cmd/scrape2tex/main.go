package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ourgreenway/scrape2tex"
	"github.com/ourgreenway/scrape2tex/fs"
	"github.com/ourgreenway/scrape2tex/goquery"
	s2thttp "github.com/ourgreenway/scrape2tex/http"
	"github.com/ourgreenway/scrape2tex/rod"
	"github.com/ourgreenway/scrape2tex/scrape"
	s2tslog "github.com/ourgreenway/scrape2tex/slog"
	"github.com/ourgreenway/scrape2tex/yaml"
)

// Defaults applied when neither a flag nor the config file sets a value.
const (
	DefaultOut     = "output.tex"
	DefaultImages  = "images"
	DefaultHeader  = "Research Brief"
	DefaultTimeout = 20 * time.Second

	// DateLayout formats the default date, e.g. "January 02, 2006".
	DateLayout = "January 02, 2006"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", describe(err))
		os.Exit(1)
	}
}

// describe returns the message of an application error and the full error
// text otherwise.
func describe(err error) string {
	if scrape2tex.ErrorCode(err) == scrape2tex.EINTERNAL {
		return err.Error()
	}
	return scrape2tex.ErrorMessage(err)
}

// Main represents the program.
type Main struct {
	// Now returns the current time; used for the default date.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// CLI defines the command-line interface structure for Kong.
// Flags without a kong default are resolved against the config file first.
type CLI struct {
	URL        string        `arg:"" help:"Article URL to convert"`
	Out        string        `short:"o" help:"Path of the .tex file to write (default: output.tex)"`
	Images     string        `short:"i" help:"Directory for downloaded images (default: images)"`
	Header     string        `help:"Header label text (default: Research Brief)"`
	Date       string        `help:"Date text (default: today)"`
	Timeout    time.Duration `short:"t" help:"Timeout per request (default: 20s)"`
	Render     bool          `help:"Render the page in a headless browser before extracting"`
	NoDownload bool          `name:"no-download" help:"Keep remote image URLs instead of downloading images"`
	Config     string        `short:"c" type:"existingfile" help:"YAML config file"`
	Verbose    bool          `short:"v" help:"Log every request"`
}

// Options are the resolved settings for one run.
type Options struct {
	URL           string
	Out           string
	Images        string
	Header        string
	Date          string
	Timeout       time.Duration
	Render        bool
	Download      bool
	DocumentClass string
	UserAgent     string
	Verbose       bool
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scrape2tex"),
		kong.Description("Convert a research brief web page into a LaTeX document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return scrape2tex.Errorf(scrape2tex.EINVALID, "no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return scrape2tex.Errorf(scrape2tex.EINVALID, "%v", err)
	}

	opts, err := m.resolve(cli)
	if err != nil {
		return err
	}

	return m.convert(ctx, opts, stdout, stderr)
}

// resolve merges flags over the config file over defaults.
func (m *Main) resolve(cli *CLI) (*Options, error) {
	cfg := &yaml.Config{}
	if cli.Config != "" {
		var err error
		if cfg, err = yaml.LoadConfig(cli.Config); err != nil {
			return nil, err
		}
	}

	now := time.Now
	if m.Now != nil {
		now = m.Now
	}

	opts := &Options{
		URL:           cli.URL,
		Out:           first(cli.Out, cfg.Out, DefaultOut),
		Images:        first(cli.Images, cfg.Images, DefaultImages),
		Header:        first(cli.Header, cfg.Header, DefaultHeader),
		Date:          cli.Date,
		Timeout:       cli.Timeout,
		Render:        cli.Render,
		Download:      !cli.NoDownload,
		DocumentClass: first(cfg.DocumentClass, scrape2tex.DefaultDocumentClass),
		UserAgent:     first(cfg.UserAgent, s2thttp.DefaultUserAgent),
		Verbose:       cli.Verbose,
	}
	if opts.Date == "" {
		opts.Date = now().Format(DateLayout)
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Duration(cfg.Timeout)
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Timeout < 0 {
		return nil, scrape2tex.Errorf(scrape2tex.EINVALID, "timeout must be positive")
	}
	return opts, nil
}

// convert wires the pipeline for opts and runs it.
func (m *Main) convert(ctx context.Context, opts *Options, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	httpFetcher := s2thttp.NewFetcher(
		s2thttp.WithTimeout(opts.Timeout),
		s2thttp.WithUserAgent(opts.UserAgent),
	)

	var fetcher scrape2tex.Fetcher = httpFetcher
	if opts.Render {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(opts.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return scrape2tex.Errorf(scrape2tex.EFETCH, "failed to start browser: %v", err)
		}
		fetcher = rodFetcher
	}
	defer fetcher.Close()

	s := &scrape.Scraper{
		Fetcher:   s2tslog.NewLoggingFetcher(fetcher, logger),
		Extractor: s2tslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Renderer:  &scrape2tex.Renderer{DocumentClass: opts.DocumentClass},
		Output:    fs.NewWriter(),
		Logger:    logger,
	}
	if opts.Download {
		s.Downloader = s2tslog.NewLoggingDownloader(httpFetcher, logger)
		s.Images = s2tslog.NewLoggingImageStore(fs.NewImageStore(opts.Images), logger)
	}

	result, err := s.Run(ctx, scrape.Request{
		URL:         opts.URL,
		OutputPath:  opts.Out,
		HeaderLabel: opts.Header,
		DateText:    opts.Date,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s (%d images, %d skipped)\n", opts.Out, result.Images, result.Skipped)
	return nil
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
