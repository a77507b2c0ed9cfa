package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybersherlock/cybersherlock/internal/platform"
	"github.com/cybersherlock/cybersherlock/internal/scan"
)

func testSpecs() []platform.Spec {
	return []platform.Spec{
		{Name: "Alpha", URLTemplate: "https://alpha/{}"},
		{Name: "Beta", URLTemplate: "https://beta/{}"},
		{Name: "Gamma", URLTemplate: "https://gamma/{}"},
	}
}

func TestCollectorRestoresCatalogOrder(t *testing.T) {
	c := NewCollector(testSpecs())

	// Completion order differs from catalog order.
	c.Add(scan.Result{Platform: "Gamma", Outcome: scan.OutcomeFound})
	c.Add(scan.Result{Platform: "Alpha", Outcome: scan.OutcomeNotFound})
	c.Add(scan.Result{Platform: "Beta", Outcome: scan.OutcomeError, ErrorDetail: "boom"})

	s := c.Summary("hydra")

	require.Len(t, s.Results, 3)
	assert.Equal(t, "Alpha", s.Results[0].Platform)
	assert.Equal(t, "Beta", s.Results[1].Platform)
	assert.Equal(t, "Gamma", s.Results[2].Platform)
	assert.False(t, s.Incomplete)
	assert.Equal(t, "hydra", s.Username)
	assert.NotEmpty(t, s.RunID)
	assert.False(t, s.FinishedAt.Before(s.StartedAt))
}

func TestCollectorMarksPartialRuns(t *testing.T) {
	c := NewCollector(testSpecs())
	c.Add(scan.Result{Platform: "Alpha", Outcome: scan.OutcomeFound})
	c.Add(scan.Result{Platform: "Beta", Outcome: scan.OutcomeFound})

	s := c.Summary("hydra")

	assert.True(t, s.Incomplete)
	assert.Equal(t, 2, s.Total())
}

func TestCountsAlwaysSumToTotal(t *testing.T) {
	c := NewCollector(testSpecs())
	c.Add(scan.Result{Platform: "Alpha", Outcome: scan.OutcomeFound})
	c.Add(scan.Result{Platform: "Beta", Outcome: scan.OutcomeUnknown})
	c.Add(scan.Result{Platform: "Gamma", Outcome: scan.OutcomeError})

	s := c.Summary("hydra")
	found, notFound, unknown, errored := s.Counts()

	assert.Equal(t, 1, found)
	assert.Equal(t, 0, notFound)
	assert.Equal(t, 1, unknown)
	assert.Equal(t, 1, errored)
	assert.Equal(t, s.Total(), found+notFound+unknown+errored)
}

func TestDisplayOrder(t *testing.T) {
	results := []scan.Result{
		{Platform: "Zeta", Outcome: scan.OutcomeNotFound},
		{Platform: "Beta", Outcome: scan.OutcomeFound},
		{Platform: "Echo", Outcome: scan.OutcomeError},
		{Platform: "Alpha", Outcome: scan.OutcomeFound},
		{Platform: "Delta", Outcome: scan.OutcomeUnknown},
	}

	ordered := DisplayOrder(results)

	names := make([]string, len(ordered))
	for i, r := range ordered {
		names[i] = r.Platform
	}
	assert.Equal(t, []string{"Alpha", "Beta", "Delta", "Echo", "Zeta"}, names)

	// Input slice is left untouched.
	assert.Equal(t, "Zeta", results[0].Platform)
}
