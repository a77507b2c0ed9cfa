package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/cybersherlock/cybersherlock/internal/scan"
)

const fallbackDirName = "CyberSherlock"

// jsonRecord mirrors one probe in the export file.
type jsonRecord struct {
	PlatformName string `json:"platform_name"`
	Outcome      string `json:"outcome"`
	HTTPStatus   *int   `json:"http_status,omitempty"`
	FinalURL     string `json:"final_url"`
	ElapsedMS    int64  `json:"elapsed_ms"`
	ErrorDetail  string `json:"error_detail,omitempty"`
}

type jsonReport struct {
	RunID      string       `json:"run_id"`
	Username   string       `json:"username"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Incomplete bool         `json:"incomplete,omitempty"`
	Found      int          `json:"found"`
	NotFound   int          `json:"not_found"`
	Unknown    int          `json:"unknown"`
	Errors     int          `json:"errors"`
	Results    []jsonRecord `json:"results"`
}

// EnsureWritableDir picks the first report directory that accepts a write
// probe: the requested directory, then a folder under the user's home, then
// one under the system temp dir. Keeps exports working from read-only
// working directories.
func EnsureWritableDir(dir string) (string, error) {
	for _, candidate := range fallbackCandidates(dir) {
		if err := os.MkdirAll(candidate, 0o755); err != nil {
			continue
		}
		probe := filepath.Join(candidate, ".probe_write")
		if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
			continue
		}
		_ = os.Remove(probe)
		return candidate, nil
	}
	return "", errors.Errorf("no writable report directory found (tried %q and fallbacks)", dir)
}

func fallbackCandidates(dir string) []string {
	if dir == "" {
		dir = "reports"
	}
	dir = os.ExpandEnv(dir)
	if strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
		}
	}

	candidates := []string{dir}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, fallbackDirName, "reports"))
	}
	candidates = append(candidates, filepath.Join(os.TempDir(), fallbackDirName, "reports"))
	return candidates
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SafeUsername makes a username usable inside a filename.
func SafeUsername(username string) string {
	s := unsafeFilenameChars.ReplaceAllString(username, "_")
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

func basePath(dir string, s Summary) string {
	ts := s.FinishedAt.Format("20060102_150405")
	return filepath.Join(dir, fmt.Sprintf("cybersherlock_%s_%s", SafeUsername(s.Username), ts))
}

// WriteJSON writes the machine-readable report and returns its path.
func WriteJSON(dir string, s Summary) (string, error) {
	found, notFound, unknown, errored := s.Counts()
	rep := jsonReport{
		RunID:      s.RunID,
		Username:   s.Username,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
		Incomplete: s.Incomplete,
		Found:      found,
		NotFound:   notFound,
		Unknown:    unknown,
		Errors:     errored,
		Results:    make([]jsonRecord, 0, len(s.Results)),
	}
	for _, r := range s.Results {
		rec := jsonRecord{
			PlatformName: r.Platform,
			Outcome:      r.Outcome.String(),
			FinalURL:     r.URL,
			ElapsedMS:    r.Elapsed.Milliseconds(),
			ErrorDetail:  r.ErrorDetail,
		}
		if r.HTTPStatus != 0 {
			status := r.HTTPStatus
			rec.HTTPStatus = &status
		}
		rep.Results = append(rep.Results, rec)
	}

	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshal report")
	}

	path := basePath(dir, s) + ".json"
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}

// WriteMarkdown writes the human-readable report and returns its path.
// Rows are in display order (hits first); the JSON export keeps catalog order.
func WriteMarkdown(dir string, s Summary) (string, error) {
	found, notFound, unknown, errored := s.Counts()

	var b strings.Builder
	fmt.Fprintf(&b, "# CyberSherlock report — %s\n\n", s.Username)
	fmt.Fprintf(&b, "Run `%s`, started %s, finished %s.\n\n",
		s.RunID,
		s.StartedAt.Format(time.RFC3339),
		s.FinishedAt.Format(time.RFC3339),
	)
	if s.Incomplete {
		b.WriteString("**Scan was interrupted; results below are partial.**\n\n")
	}
	fmt.Fprintf(&b, "**Found:** %d • **Not found:** %d • **Unknown:** %d • **Errors:** %d\n\n",
		found, notFound, unknown, errored)

	b.WriteString("| Platform | Outcome | HTTP | Latency | URL / Detail |\n")
	b.WriteString("|---|---|---:|---:|---|\n")
	for _, r := range DisplayOrder(s.Results) {
		status := "-"
		if r.HTTPStatus != 0 {
			status = fmt.Sprintf("%d", r.HTTPStatus)
		}
		detail := r.URL
		if r.Outcome == scan.OutcomeError && r.ErrorDetail != "" {
			detail = r.ErrorDetail
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %d ms | %s |\n",
			r.Platform, r.Outcome.String(), status, r.Elapsed.Milliseconds(), detail)
	}

	path := basePath(dir, s) + ".md"
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}
