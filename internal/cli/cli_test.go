package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybersherlock/cybersherlock/internal/config"
)

func defaults() config.Config {
	return config.Config{
		Concurrency:    40,
		TimeoutSeconds: 12,
		SaveDir:        "reports",
		LogLevel:       "info",
	}
}

func parse(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return Parse(args, defaults(), &stdout, &stderr)
}

func TestParseDefaults(t *testing.T) {
	opts, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, 40, opts.Concurrency)
	assert.Equal(t, 12*time.Second, opts.Timeout)
	assert.Equal(t, "reports", opts.SaveDir)
	assert.Empty(t, opts.Username)
	assert.False(t, opts.Once)
}

func TestParseFlagsOverrideEnvDefaults(t *testing.T) {
	opts, err := parse(t,
		"-u", "hydra",
		"--concurrency", "8",
		"--timeout", "3",
		"--only", "dev, music ,",
		"--save-dir", "/tmp/out",
		"--once",
		"--no-color",
	)
	require.NoError(t, err)

	assert.Equal(t, "hydra", opts.Username)
	assert.Equal(t, 8, opts.Concurrency)
	assert.Equal(t, 3*time.Second, opts.Timeout)
	assert.Equal(t, []string{"dev", "music"}, opts.Only)
	assert.Equal(t, "/tmp/out", opts.SaveDir)
	assert.True(t, opts.Once)
	assert.True(t, opts.NoColor)
}

func TestParsePositionalUsername(t *testing.T) {
	opts, err := parse(t, "hydra")
	require.NoError(t, err)
	assert.Equal(t, "hydra", opts.Username)
}

func TestParseRejectsBrokenBudgets(t *testing.T) {
	_, err := parse(t, "--concurrency", "0")
	assert.Error(t, err)

	_, err = parse(t, "--concurrency", "-3")
	assert.Error(t, err)

	_, err = parse(t, "--timeout", "0")
	assert.Error(t, err)
}

func TestParseHelp(t *testing.T) {
	_, err := parse(t, "--help")
	assert.True(t, errors.Is(err, ErrHelp))
}

func TestValidateUsername(t *testing.T) {
	for _, ok := range []string{"hydra", "a", "user_name", "user-name", "user.name", "User123"} {
		assert.NoError(t, ValidateUsername(ok), ok)
	}

	bad := []string{
		"",
		"has space",
		"slash/name",
		"query?name",
		"hash#name",
		"perc%name",
		"brace{name",
		"ünïcode",
	}
	for _, b := range bad {
		assert.Error(t, ValidateUsername(b), "%q should be rejected", b)
	}

	tooLong := make([]byte, 65)
	for i := range tooLong {
		tooLong[i] = 'a'
	}
	assert.Error(t, ValidateUsername(string(tooLong)))
}
