package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cybersherlock/cybersherlock/internal/cli"
	"github.com/cybersherlock/cybersherlock/internal/config"
	"github.com/cybersherlock/cybersherlock/internal/httpx"
	"github.com/cybersherlock/cybersherlock/internal/platform"
	"github.com/cybersherlock/cybersherlock/internal/report"
	"github.com/cybersherlock/cybersherlock/internal/scan"
	"github.com/cybersherlock/cybersherlock/internal/ui"
)

// maxJitter spreads the initial probe burst; see scan.Config.
const maxJitter = 120 * time.Millisecond

func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	defaults := config.Load()

	opts, err := cli.Parse(args, defaults, stdout, stderr)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	color.NoColor = opts.NoColor
	ui.SetNoColor(opts.NoColor)

	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(config.ParseLogLevel(defaults.LogLevel))
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	registry, err := platform.Load()
	if err != nil {
		fmt.Fprintf(stderr, "platform catalog error: %v\n", err)
		return 1
	}

	client, err := httpx.NewClient(httpx.ClientConfig{ProxyURL: opts.ProxyURL})
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize HTTP client: %v\n", err)
		return 1
	}

	stdin := bufio.NewReader(os.Stdin)
	username := opts.Username

	for {
		if username == "" {
			if opts.Once {
				fmt.Fprintln(stderr, "no username provided")
				return 2
			}
			entered, err := ui.PromptUsername(stdout, stdin)
			if err != nil {
				// Stdin is gone; there is nobody left to ask.
				return 0
			}
			username = entered
		}
		if err := cli.ValidateUsername(username); err != nil {
			if opts.Once {
				fmt.Fprintf(stderr, "invalid username: %v\n", err)
				return 2
			}
			fmt.Fprintf(stdout, "invalid username: %v\n", err)
			username = ""
			continue
		}

		code, done := runOnce(ctx, client, logger, registry, opts, username, stdout, stderr)
		if done {
			return code
		}

		if opts.Once {
			return 0
		}

		switch ui.PromptMenu(stdout, stdin) {
		case ui.MenuQuit:
			return 0
		case ui.MenuModify:
			modifyOptions(stdout, stdin, &opts)
			username = ""
		default:
			username = ""
		}
	}
}

// runOnce performs a single scan end to end. done is true when the process
// should exit with code instead of looping.
func runOnce(
	ctx context.Context,
	client httpx.Doer,
	logger *logrus.Logger,
	registry *platform.Registry,
	opts cli.Options,
	username string,
	stdout, stderr io.Writer,
) (code int, done bool) {
	targets := registry.Filter(opts.Only)
	specs := targets.All()

	exportDir := ""
	if !opts.NoExport {
		dir, err := report.EnsureWritableDir(opts.SaveDir)
		if err != nil {
			logger.WithError(err).Warn("no writable export directory; reports disabled for this run")
		} else {
			exportDir = dir
		}
	}

	ui.Banner(stdout)
	ui.Rule(stdout, "configuration")
	ui.ScanConfig(stdout, len(specs), opts.Concurrency, opts.Timeout, strings.Join(opts.Only, ","), exportDir)
	ui.Rule(stdout, "scan")

	scanner := scan.NewScanner(client, scan.Config{
		UserAgent:   opts.UserAgent,
		Concurrency: opts.Concurrency,
		Timeout:     opts.Timeout,
		MaxJitter:   maxJitter,
	}, logger)

	printer := ui.NewPrinter(stdout, opts.NoColor, opts.Verbose)
	collector := report.NewCollector(specs)

	logger.WithFields(logrus.Fields{
		"run_id":   collector.RunID(),
		"username": username,
		"targets":  len(specs),
	}).Debug("scan started")

	for res := range scanner.Scan(ctx, username, specs) {
		printer.Result(res)
		collector.Add(res)
	}
	summary := collector.Summary(username)

	ui.Rule(stdout, "summary")
	printer.Summary(summary)

	cancelled := ctx.Err() != nil
	if cancelled && summary.Total() == 0 {
		fmt.Fprintln(stderr, "scan cancelled before any platform completed")
		return 130, true
	}

	if exportDir != "" {
		jsonPath, err := report.WriteJSON(exportDir, summary)
		if err != nil {
			logger.WithError(err).Warn("failed to write JSON report")
		} else {
			fmt.Fprintf(stdout, "report saved: %s\n", jsonPath)
		}
		mdPath, err := report.WriteMarkdown(exportDir, summary)
		if err != nil {
			logger.WithError(err).Warn("failed to write Markdown report")
		} else {
			fmt.Fprintf(stdout, "report saved: %s\n", mdPath)
		}
	}

	if cancelled {
		// Partial results were delivered and exported; not a failure.
		return 0, true
	}
	return 0, false
}

// modifyOptions lets the interactive loop tweak scan knobs between runs.
// Invalid input keeps the current value.
func modifyOptions(w io.Writer, r *bufio.Reader, opts *cli.Options) {
	if in := ui.PromptLine(w, r, "Threads", strconv.Itoa(opts.Concurrency)); in != "" {
		if n, err := strconv.Atoi(in); err == nil && n > 0 {
			opts.Concurrency = n
		}
	}
	if in := ui.PromptLine(w, r, "Timeout seconds", strconv.Itoa(int(opts.Timeout/time.Second))); in != "" {
		if n, err := strconv.Atoi(in); err == nil && n > 0 {
			opts.Timeout = time.Duration(n) * time.Second
		}
	}

	current := strings.Join(opts.Only, ",")
	if current == "" {
		current = "none"
	}
	in := ui.PromptLine(w, r, "Platform filter", current)
	switch in {
	case "none":
		opts.Only = nil
	default:
		opts.Only = nil
		for _, k := range strings.Split(in, ",") {
			if k = strings.TrimSpace(k); k != "" {
				opts.Only = append(opts.Only, k)
			}
		}
	}

	opts.SaveDir = ui.PromptLine(w, r, "Export directory", opts.SaveDir)
}
