package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/cybersherlock/cybersherlock/internal/config"
)

var ErrHelp = errors.New("help requested")

type Options struct {
	Username string
	Once     bool

	NoColor  bool
	NoExport bool
	Verbose  bool

	Concurrency int
	Timeout     time.Duration
	Only        []string
	SaveDir     string
	UserAgent   string
	ProxyURL    string
}

const usageText = `
usage:
  cybersherlock [flags]
  cybersherlock -u USERNAME --once

flags:
  -h, --help            show this help message and exit
  -u, --username NAME   username to investigate (prompted when omitted)
  --once                run a single scan and exit instead of the interactive loop
  --no-color            disable colored output
  --no-export           skip writing JSON/Markdown reports
  -v, --verbose         show not-found lines and debug logging

options:
  --concurrency N       max concurrent probes (default: 40)
  --timeout SECONDS     per-request timeout (default: 12)
  --only K1,K2,...      filter platforms by name or category keyword
  --save-dir DIR        report output directory (default: reports)
  --user-agent UA       custom User-Agent header
  --proxy URL           SOCKS proxy for all probes (e.g. socks5://127.0.0.1:9050)

Environment defaults: CYBERSHERLOCK_CONCURRENCY, CYBERSHERLOCK_TIMEOUT,
CYBERSHERLOCK_USER_AGENT, CYBERSHERLOCK_SAVE_DIR, CYBERSHERLOCK_PROXY,
CYBERSHERLOCK_LOG_LEVEL. A .env file in the working directory is honored.
`

// Parse merges flags over environment defaults. Precedence: flag > env >
// built-in default. Non-positive concurrency or timeout is a hard error;
// a scan must never start with a broken budget.
func Parse(args []string, defaults config.Config, stdout, stderr io.Writer) (Options, error) {
	var (
		opts     Options
		help     bool
		onlyCSV  string
		timeoutS int
	)

	fs := flag.NewFlagSet("cybersherlock", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprint(stdout, usageText)
	}

	fs.BoolVar(&help, "h", false, "show help")
	fs.BoolVar(&help, "help", false, "show help")

	fs.StringVar(&opts.Username, "u", "", "username to investigate")
	fs.StringVar(&opts.Username, "username", "", "username to investigate")
	fs.BoolVar(&opts.Once, "once", false, "single scan, no interactive loop")
	fs.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&opts.NoExport, "no-export", false, "skip report files")
	fs.BoolVar(&opts.Verbose, "v", false, "verbose output")
	fs.BoolVar(&opts.Verbose, "verbose", false, "verbose output")

	fs.IntVar(&opts.Concurrency, "concurrency", defaults.Concurrency, "max concurrent probes")
	fs.IntVar(&timeoutS, "timeout", defaults.TimeoutSeconds, "per-request timeout in seconds")
	fs.StringVar(&onlyCSV, "only", "", "comma-separated platform keywords")
	fs.StringVar(&opts.SaveDir, "save-dir", defaults.SaveDir, "report output directory")
	fs.StringVar(&opts.UserAgent, "user-agent", defaults.UserAgent, "custom User-Agent")
	fs.StringVar(&opts.ProxyURL, "proxy", defaults.ProxyURL, "SOCKS proxy URL")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if help {
		fs.Usage()
		return Options{}, ErrHelp
	}

	if opts.Concurrency <= 0 {
		return Options{}, errors.Errorf("invalid --concurrency %d: must be positive", opts.Concurrency)
	}
	if timeoutS <= 0 {
		return Options{}, errors.Errorf("invalid --timeout %d: must be positive", timeoutS)
	}
	opts.Timeout = time.Duration(timeoutS) * time.Second

	if onlyCSV != "" {
		for _, k := range strings.Split(onlyCSV, ",") {
			if k = strings.TrimSpace(k); k != "" {
				opts.Only = append(opts.Only, k)
			}
		}
	}

	if extra := fs.Args(); len(extra) > 0 && opts.Username == "" {
		// Back-compat: a bare positional argument is the username.
		opts.Username = extra[0]
	}

	return opts, nil
}

// ValidateUsername rejects input that would break URL templating before any
// network call is made.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username must not be empty")
	}
	if len(username) > 64 {
		return errors.New("username too long (max 64 characters)")
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return errors.Errorf("username contains unsupported character %q", r)
		}
	}
	return nil
}
