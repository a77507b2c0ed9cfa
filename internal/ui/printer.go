package ui

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/fatih/color"

	"github.com/cybersherlock/cybersherlock/internal/report"
	"github.com/cybersherlock/cybersherlock/internal/scan"
)

const timeRound = 100 * time.Millisecond

// Printer streams probe results to the terminal as they complete.
type Printer struct {
	noColor bool
	verbose bool
	logger  *log.Logger
}

func NewPrinter(stdout io.Writer, noColor, verbose bool) *Printer {
	out := stdout
	if !noColor {
		out = color.Output
	}
	return &Printer{
		noColor: noColor,
		verbose: verbose,
		logger:  log.New(out, "", 0),
	}
}

// Result prints one line per completed probe. Misses are only shown in
// verbose mode; hits, errors and unknowns always print.
func (p *Printer) Result(r scan.Result) {
	latency := fmt.Sprintf("%d ms", r.Elapsed.Milliseconds())

	switch r.Outcome {
	case scan.OutcomeFound:
		if p.noColor {
			p.logger.Printf("[+] %s: %s (%s)", r.Platform, r.URL, latency)
		} else {
			p.logger.Printf("[%s] %s: %s %s",
				color.HiGreenString("+"),
				color.HiWhiteString(r.Platform),
				r.URL,
				color.HiBlackString("("+latency+")"),
			)
		}

	case scan.OutcomeError:
		if p.noColor {
			p.logger.Printf("[!] %s: ERROR: %s", r.Platform, r.ErrorDetail)
		} else {
			p.logger.Printf("[%s] %s: %s: %s",
				color.HiRedString("!"),
				r.Platform,
				color.HiMagentaString("ERROR"),
				color.HiRedString(r.ErrorDetail),
			)
		}

	case scan.OutcomeUnknown:
		if p.noColor {
			p.logger.Printf("[?] %s: unknown (HTTP %d)", r.Platform, r.HTTPStatus)
		} else {
			p.logger.Printf("[%s] %s: %s",
				color.HiYellowString("?"),
				r.Platform,
				color.HiYellowString(fmt.Sprintf("unknown (HTTP %d)", r.HTTPStatus)),
			)
		}

	default:
		if !p.verbose {
			return
		}
		if p.noColor {
			p.logger.Printf("[-] %s: Not found", r.Platform)
		} else {
			p.logger.Printf("[%s] %s: %s",
				color.HiRedString("-"),
				r.Platform,
				color.HiYellowString("Not found"),
			)
		}
	}
}

// Summary prints the per-run totals after all results are in.
func (p *Printer) Summary(s report.Summary) {
	found, notFound, unknown, errored := s.Counts()

	if p.noColor {
		p.logger.Printf("found: %d  unknown: %d  errors: %d  not found: %d  (%d platforms in %s)",
			found, unknown, errored, notFound, s.Total(), s.FinishedAt.Sub(s.StartedAt).Round(timeRound))
		if s.Incomplete {
			p.logger.Printf("scan interrupted; results are partial")
		}
		return
	}

	p.logger.Printf("%s %d   %s %d   %s %d   %s %d   %s",
		color.HiGreenString("found:"), found,
		color.HiYellowString("unknown:"), unknown,
		color.HiRedString("errors:"), errored,
		color.HiBlackString("not found:"), notFound,
		color.HiBlackString(fmt.Sprintf("(%d platforms in %s)", s.Total(), s.FinishedAt.Sub(s.StartedAt).Round(timeRound))),
	)
	if s.Incomplete {
		p.logger.Printf("%s", color.HiYellowString("scan interrupted; results are partial"))
	}
}
