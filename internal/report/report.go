package report

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cybersherlock/cybersherlock/internal/platform"
	"github.com/cybersherlock/cybersherlock/internal/scan"
)

// Summary is the terminal artifact of one scan invocation. Results are in
// catalog order regardless of completion order; Incomplete marks a cancelled
// scan that still carries valid partial results.
type Summary struct {
	RunID      string
	Username   string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []scan.Result
	Incomplete bool
}

func (s Summary) Total() int {
	return len(s.Results)
}

// Counts derives the per-outcome totals. They always sum to Total.
func (s Summary) Counts() (found, notFound, unknown, errored int) {
	for _, r := range s.Results {
		switch r.Outcome {
		case scan.OutcomeFound:
			found++
		case scan.OutcomeNotFound:
			notFound++
		case scan.OutcomeUnknown:
			unknown++
		case scan.OutcomeError:
			errored++
		}
	}
	return
}

// Collector accumulates streamed probe results and packages them into a
// Summary. It performs no I/O.
type Collector struct {
	runID   string
	started time.Time
	order   map[string]int
	results []scan.Result
}

func NewCollector(specs []platform.Spec) *Collector {
	order := make(map[string]int, len(specs))
	for i, s := range specs {
		order[s.Name] = i
	}
	return &Collector{
		runID:   uuid.New().String(),
		started: time.Now(),
		order:   order,
		results: make([]scan.Result, 0, len(specs)),
	}
}

func (c *Collector) RunID() string {
	return c.runID
}

func (c *Collector) Add(r scan.Result) {
	c.results = append(c.results, r)
}

// Summary restores catalog order and seals the run. Fewer results than
// platforms means the scan was cancelled partway.
func (c *Collector) Summary(username string) Summary {
	results := make([]scan.Result, len(c.results))
	copy(results, c.results)
	sort.SliceStable(results, func(i, j int) bool {
		return c.order[results[i].Platform] < c.order[results[j].Platform]
	})

	return Summary{
		RunID:      c.runID,
		Username:   username,
		StartedAt:  c.started,
		FinishedAt: time.Now(),
		Results:    results,
		Incomplete: len(results) < len(c.order),
	}
}

// DisplayOrder returns a copy sorted for human reading: hits first, then
// ambiguous outcomes, misses last, alphabetical within each band.
func DisplayOrder(results []scan.Result) []scan.Result {
	out := make([]scan.Result, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := outcomeRank(out[i].Outcome), outcomeRank(out[j].Outcome)
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(out[i].Platform) < strings.ToLower(out[j].Platform)
	})
	return out
}

func outcomeRank(o scan.Outcome) int {
	switch o {
	case scan.OutcomeFound:
		return 0
	case scan.OutcomeUnknown:
		return 1
	case scan.OutcomeError:
		return 2
	default:
		return 3
	}
}
