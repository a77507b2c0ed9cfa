package scan

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/cybersherlock/cybersherlock/internal/httpx"
	"github.com/cybersherlock/cybersherlock/internal/platform"
)

// Scanner probes platforms for a username under a fixed concurrency ceiling.
// It performs network requests only; rendering and persistence belong to the
// caller.
type Scanner struct {
	client httpx.Doer
	cfg    Config
	log    *logrus.Logger
}

func NewScanner(client httpx.Doer, cfg Config, log *logrus.Logger) *Scanner {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 40
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 12 * time.Second
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = httpx.DefaultUserAgent
	}
	if cfg.MaxJitter < 0 {
		cfg.MaxJitter = 0
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Scanner{
		client: client,
		cfg:    cfg,
		log:    log,
	}
}

// Scan fans out one probe per spec and streams results as probes finish.
// The channel closes once every admitted probe has completed; completion
// order is unspecified. Cancelling ctx stops admitting new probes and
// abandons in-flight ones without emitting partial records, so everything
// already received stays valid.
func (s *Scanner) Scan(ctx context.Context, username string, specs []platform.Spec) <-chan Result {
	workers := min(s.cfg.Concurrency, len(specs))
	out := make(chan Result, workers)
	if workers == 0 {
		close(out)
		return out
	}

	jobs := make(chan platform.Spec)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for spec := range jobs {
				res, completed := s.probe(ctx, username, spec)
				if !completed {
					continue
				}
				out <- res
			}
		}()
	}

	go func() {
		defer close(out)
		wg.Wait()
	}()

	// Feed in catalog order so queued platforms are admitted FIFO.
	go func() {
		defer close(jobs)
		for _, spec := range specs {
			select {
			case <-ctx.Done():
				return
			case jobs <- spec:
			}
		}
	}()

	return out
}

// probe runs a single request and classifies its response. The second return
// is false when the batch was cancelled mid-flight and the probe should be
// treated as never attempted.
func (s *Scanner) probe(ctx context.Context, username string, spec platform.Spec) (Result, bool) {
	if s.cfg.MaxJitter > 0 {
		select {
		case <-ctx.Done():
			return Result{}, false
		case <-time.After(time.Duration(rand.Int63n(int64(s.cfg.MaxJitter)))):
		}
	}

	profileURL := spec.ProfileURL(username)
	res := Result{
		Platform: spec.Name,
		URL:      profileURL,
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	req, err := httpx.NewRequest(reqCtx, http.MethodGet, profileURL, nil, s.cfg.UserAgent)
	if err != nil {
		res.Elapsed = time.Since(start)
		res.Outcome = OutcomeError
		res.ErrorDetail = err.Error()
		return res, true
	}

	resp, err := s.client.Do(req)
	res.Elapsed = time.Since(start)
	if err != nil {
		if ctx.Err() != nil {
			// Whole-batch cancellation, not a platform failure.
			return Result{}, false
		}
		res.Outcome = OutcomeError
		res.ErrorDetail = errorDetail(err, s.cfg.Timeout)
		s.log.WithFields(logrus.Fields{
			"platform": spec.Name,
			"url":      profileURL,
			"error":    res.ErrorDetail,
		}).Debug("probe failed")
		return res, true
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, s.cfg.MaxBodyBytes))
	if readErr != nil {
		if ctx.Err() != nil {
			return Result{}, false
		}
		res.HTTPStatus = resp.StatusCode
		res.Outcome = OutcomeError
		res.ErrorDetail = errorDetail(readErr, s.cfg.Timeout)
		s.log.WithFields(logrus.Fields{
			"platform": spec.Name,
			"url":      profileURL,
			"error":    res.ErrorDetail,
		}).Debug("probe body read failed")
		return res, true
	}
	body, decoded := decodeBody(resp.Header.Get("Content-Type"), raw)

	finalURL := profileURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	res.HTTPStatus = resp.StatusCode
	res.URL = finalURL
	res.Outcome = Classify(Exchange{
		StatusCode:   resp.StatusCode,
		Body:         body,
		BodyDecoded:  decoded,
		RequestedURL: profileURL,
		FinalURL:     finalURL,
	}, spec)

	s.log.WithFields(logrus.Fields{
		"platform": spec.Name,
		"status":   resp.StatusCode,
		"outcome":  res.Outcome.String(),
		"elapsed":  res.Elapsed.Milliseconds(),
	}).Debug("probe classified")

	return res, true
}

// errorDetail flattens transport errors into a short human-readable reason.
func errorDetail(err error, timeout time.Duration) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout after " + timeout.String()
	}
	return err.Error()
}

// decodeBody returns the body as text when the response plausibly is text.
// Truncation at MaxBodyBytes may split a multi-byte rune, so a few trailing
// bytes are forgiven before declaring the body undecodable.
func decodeBody(contentType string, raw []byte) (string, bool) {
	if contentType != "" {
		mt, _, err := mime.ParseMediaType(contentType)
		if err == nil && !textMediaType(mt) {
			return "", false
		}
	}

	trimmed := raw
	for i := 0; i < 3 && len(trimmed) > 0 && !utf8.Valid(trimmed); i++ {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if !utf8.Valid(trimmed) {
		return "", false
	}
	return string(trimmed), true
}

func textMediaType(mt string) bool {
	if strings.HasPrefix(mt, "text/") {
		return true
	}
	switch mt {
	case "application/json", "application/xml", "application/xhtml+xml",
		"application/javascript", "application/rss+xml", "application/atom+xml":
		return true
	}
	return strings.HasSuffix(mt, "+json") || strings.HasSuffix(mt, "+xml")
}
