package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cybersherlock/cybersherlock/internal/report"
	"github.com/cybersherlock/cybersherlock/internal/scan"
)

func TestPrinterStreamsOutcomes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Result(scan.Result{Platform: "Alpha", Outcome: scan.OutcomeFound, URL: "https://alpha/hydra", Elapsed: 120 * time.Millisecond})
	p.Result(scan.Result{Platform: "Beta", Outcome: scan.OutcomeError, ErrorDetail: "connection refused"})
	p.Result(scan.Result{Platform: "Gamma", Outcome: scan.OutcomeUnknown, HTTPStatus: 503})
	p.Result(scan.Result{Platform: "Delta", Outcome: scan.OutcomeNotFound})

	out := buf.String()
	assert.Contains(t, out, "[+] Alpha: https://alpha/hydra")
	assert.Contains(t, out, "[!] Beta: ERROR: connection refused")
	assert.Contains(t, out, "[?] Gamma: unknown (HTTP 503)")
	// Misses are hidden unless verbose.
	assert.NotContains(t, out, "Delta")
}

func TestPrinterVerboseShowsMisses(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, true)

	p.Result(scan.Result{Platform: "Delta", Outcome: scan.OutcomeNotFound})
	assert.Contains(t, buf.String(), "[-] Delta: Not found")
}

func TestPrinterSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	started := time.Now()
	s := report.Summary{
		Username:   "hydra",
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Second),
		Results: []scan.Result{
			{Platform: "Alpha", Outcome: scan.OutcomeFound},
			{Platform: "Beta", Outcome: scan.OutcomeNotFound},
		},
		Incomplete: true,
	}
	p.Summary(s)

	out := buf.String()
	assert.Contains(t, out, "found: 1")
	assert.Contains(t, out, "not found: 1")
	assert.True(t, strings.Contains(out, "interrupted"))
}
