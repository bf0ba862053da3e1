package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/ciagent"
	"github.com/fwojciec/ciagent/crawl"
	"github.com/fwojciec/ciagent/fs"
	"github.com/fwojciec/ciagent/gemini"
	"github.com/fwojciec/ciagent/goquery"
	"github.com/fwojciec/ciagent/htmltomarkdown"
	cihttp "github.com/fwojciec/ciagent/http"
	"github.com/fwojciec/ciagent/knowledge"
	"github.com/fwojciec/ciagent/readability"
	cislog "github.com/fwojciec/ciagent/slog"
	"github.com/fwojciec/ciagent/sqlite"
	"github.com/fwojciec/ciagent/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and config paths. Set before calling Run(); the --db and
	// --config flags take precedence.
	DBPath     string
	ConfigPath string

	// Stdin is read by the chat command.
	Stdin io.Reader

	// APIKey authenticates Gemini requests. BaseURL overrides the Gemini
	// endpoint when set.
	APIKey  string
	BaseURL string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CollectionService ciagent.CollectionService
	ChunkService      ciagent.ChunkService
	CrawlService      ciagent.CrawlService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
		Stdin:      os.Stdin,
		APIKey:     os.Getenv("GEMINI_API_KEY"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ciagent"),
		kong.Description("Crawl company websites and ask questions about them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ciagent --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.Config != "" {
		m.ConfigPath = cli.Config
	}
	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return err
	}
	deps.Config = cfg

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CIAGENT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CollectionService = sqlite.NewCollectionService(m.DB)
	m.ChunkService = cislog.NewLoggingChunkService(sqlite.NewChunkService(m.DB), deps.Logger)
	m.CrawlService = sqlite.NewCrawlService(m.DB)
	deps.Collections = m.CollectionService
	deps.Crawls = m.CrawlService
	deps.NewPageStore = func(dir, name string) ciagent.PageStore {
		return fs.NewFileStore(dir, name)
	}

	cmd := kongCtx.Command()
	needsGemini := cmd == "build <url>" || cmd == "ask <company> <question>" || cmd == "chat <company>"

	var client *genai.Client
	if needsGemini {
		if m.APIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return ciagent.Errorf(ciagent.EUNAVAILABLE, "GEMINI_API_KEY not set")
		}
		client, err = gemini.NewClient(ctx, m.APIKey, m.BaseURL)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
	}

	var embedder ciagent.Embedder
	if client != nil {
		embedder = cislog.NewLoggingEmbedder(gemini.NewEmbedder(client,
			gemini.WithEmbeddingModel(cfg.EmbeddingModel),
			gemini.WithDimensions(cfg.EmbeddingDimensions),
		), deps.Logger)
	}

	switch cmd {
	case "build <url>":
		fetcher := cihttp.NewFetcher(
			cihttp.WithTimeout(cfg.FetchTimeout),
			cihttp.WithUserAgent(cfg.UserAgent),
		)
		defer fetcher.Close()

		var extractor ciagent.Extractor = trafilatura.NewExtractor()
		if cli.Build.Extractor == "readability" {
			extractor = readability.NewExtractor(htmltomarkdown.NewTextConverter())
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:                cislog.NewLoggingFetcher(fetcher, deps.Logger),
			Extractor:              extractor,
			Links:                  goquery.NewLinkExtractor(),
			RateLimiter:            crawl.NewDelayLimiter(cfg.CrawlDelay),
			ExcludeEmptyFromBudget: cfg.ExcludeEmptyFromBudget,
		}

		deps.Builder = &knowledge.Builder{
			Collections:  m.CollectionService,
			Chunks:       m.ChunkService,
			Embedder:     embedder,
			ChunkSize:    cfg.ChunkSize,
			ChunkOverlap: cfg.ChunkOverlap,
			BatchSize:    cfg.EmbedBatchSize,
			Concurrency:  cfg.EmbedConcurrency,
		}
		if cfg.CountTokens {
			if tc, err := gemini.NewTokenCounter(tokenizerModel); err == nil {
				deps.Builder.TokenCounter = tc
			} else {
				deps.Logger.Debug("token counting disabled", "err", err)
			}
		}

	case "ask <company> <question>", "chat <company>":
		k := cfg.TopK
		if cli.Ask.K > 0 {
			k = cli.Ask.K
		}
		deps.Asker = &knowledge.Asker{
			Retriever: &knowledge.Retriever{
				Collections: m.CollectionService,
				Chunks:      m.ChunkService,
				Embedder:    embedder,
			},
			Answerer: cislog.NewLoggingAnswerer(gemini.NewAnswerer(client,
				gemini.WithModel(cfg.AnswerModel),
				gemini.WithMaxOutputTokens(cfg.MaxOutputTokens),
				gemini.WithTemperature(cfg.Temperature),
			), deps.Logger),
			TopK: k,
		}
	}

	return kongCtx.Run(deps)
}

// newLogger returns a leveled terminal logger. Service operations are
// logged at info level and only shown with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := log.Options{Level: log.WarnLevel}
	if verbose {
		opts = log.Options{Level: log.DebugLevel, ReportTimestamp: true}
	}
	return slog.New(log.NewWithOptions(w, opts))
}

// tokenizerModel is used for local token counting.
const tokenizerModel = "gemini-2.5-flash"
