// finsight turns provider payloads into analysis summaries.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/seenimoa/finsight/api"
	"github.com/seenimoa/finsight/internal/analysis/sentiment"
	"github.com/seenimoa/finsight/internal/config"
	"github.com/seenimoa/finsight/internal/datasource"
	"github.com/seenimoa/finsight/internal/logging"
	"github.com/seenimoa/finsight/internal/summary"
	"github.com/seenimoa/finsight/internal/synthesis"
	"github.com/seenimoa/finsight/pkg/models"
	"github.com/seenimoa/finsight/pkg/utils"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "finsight",
	Short: "Analysis summaries for financial data payloads",
	Long: `finsight turns raw market data payloads (price series, financial
statements, news sentiment, insider transactions and analyst
recommendations) into compact per-type analysis summaries, ready to be
handed to a narrative synthesizer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		if err := logging.Setup(cfg.Logging); err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "finsight %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

// --- Summarize Command ---

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file|-]",
	Short: "Summarize every payload of a multi-type data envelope",
	Long: `Read a data envelope (a JSON object mapping data-type tags to
{category, description, data} entries plus optional metadata) and print
the summary map. With --question, or when the envelope metadata carries a
question, print the synthesis request instead.`,
	Example: `  finsight summarize response.json
  cat response.json | finsight summarize --format yaml
  finsight summarize response.json --news-rss feed.xml --question "Should I buy ACME?"
  finsight summarize response.json --prompt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}
		env, err := models.ParseEnvelope(data)
		if err != nil {
			return err
		}

		if rssPath, _ := cmd.Flags().GetString("news-rss"); rssPath != "" {
			source, _ := cmd.Flags().GetString("news-source")
			feed, err := datasource.NewNewsFeed(source).ParseFile(rssPath)
			if err != nil {
				return err
			}
			feed = datasource.FilterByTicker(feed, env.Ticker())
			if len(feed.Feed) == 0 {
				log.Warn().Str("file", rssPath).Str("ticker", env.Ticker()).Msg("No RSS articles mention the ticker")
			} else if err := addNewsFeed(env, feed); err != nil {
				return err
			}
		}

		if cmd.Flags().Changed("concurrency") {
			cfg.Analysis.Concurrency, _ = cmd.Flags().GetInt("concurrency")
		}
		summaries := newCollector().Collect(env)

		question, _ := cmd.Flags().GetString("question")
		if question == "" {
			question = env.Question()
		}
		wantPrompt, _ := cmd.Flags().GetBool("prompt")
		if question == "" && !wantPrompt {
			return writeOutput(cmd, summaries)
		}

		req, err := synthesis.NewRequest(question, summaries)
		if err != nil {
			return err
		}
		if wantPrompt {
			prompt, err := req.Prompt()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		}
		return writeOutput(cmd, req)
	},
}

func init() {
	summarizeCmd.Flags().String("question", "", "original user question; prints the synthesis request")
	summarizeCmd.Flags().Bool("prompt", false, "print the synthesizer prompt text instead of JSON")
	summarizeCmd.Flags().String("format", "", "output format: json or yaml (default from config)")
	summarizeCmd.Flags().Int("concurrency", 1, "number of analyzers to run in parallel")
	summarizeCmd.Flags().String("news-rss", "", "RSS/Atom file to analyze as the news sentiment payload (filtered by the detected ticker)")
	summarizeCmd.Flags().String("news-source", "", "source name for RSS articles (default: feed title)")
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze <data-type> [file|-]",
	Short: "Summarize a single raw provider payload",
	Example: `  finsight analyze yf_price prices.json --ticker ACME
  curl -s .../income | finsight analyze av_income_statement -`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dt, ok := models.ParseDataType(args[0])
		if !ok {
			return fmt.Errorf("%w: %q (run `finsight types`)", models.ErrUnknownDataType, args[0])
		}
		data, err := readInput(args[1:], cmd.InOrStdin())
		if err != nil {
			return err
		}

		ticker, _ := cmd.Flags().GetString("ticker")
		sum := newDispatcher().Summarize(dt.String(), json.RawMessage(data), utils.NormalizeTicker(ticker))
		if sum == nil {
			return errors.New("no summary could be produced from the payload")
		}
		return writeOutput(cmd, models.SummaryEntry{Type: string(dt.Category()), Summary: sum})
	},
}

func init() {
	analyzeCmd.Flags().String("ticker", "", "ticker symbol to stamp on the summary")
	analyzeCmd.Flags().String("format", "", "output format: json or yaml (default from config)")
}

// --- Types Command ---

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported data types",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "DATA TYPE\tCATEGORY\tPROVIDER\tDESCRIPTION")
		for _, info := range models.AllDataTypes() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Category, info.Provider, info.Description)
		}
		return tw.Flush()
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.API.Port, _ = cmd.Flags().GetInt("port")
		}
		srv := api.NewServer(cfg, version)
		return srv.ListenAndServe(cmd.Context(), cfg.API.Addr())
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on (default from config)")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and supported data types",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintln(out, "  finsight: System Status")
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintf(out, "  Version:       %s (%s)\n", version, commit)
		fmt.Fprintf(out, "  Data types:    %d supported\n", len(models.AllDataTypes()))
		fmt.Fprintf(out, "  API Server:    %s\n", cfg.API.Addr())
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  Settings:")
		for _, s := range config.CheckSettings(cfg) {
			fmt.Fprintf(out, "    %-25s %-10s (%s: %s)\n", s.Key+":", s.Value, s.Source, s.EnvVar)
		}

		fmt.Fprintln(out, "═══════════════════════════════════════")
		return nil
	},
}

// --- Helpers ---

func newDispatcher() *summary.Dispatcher {
	return summary.NewDispatcher(
		summary.WithNewsOptions(sentiment.NewsOptions{ExcerptLength: cfg.Analysis.ExcerptLength}),
	)
}

func newCollector() *summary.Collector {
	return summary.NewCollector(newDispatcher(), cfg.Analysis.Concurrency)
}

func writeOutput(cmd *cobra.Command, v any) error {
	format := cfg.Output.Format
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = f
	}
	return render(cmd.OutOrStdout(), v, format, cfg.Output.Indent)
}
