package scan

import (
	"net/http"
	"strings"
	"sync"

	"github.com/dlclark/regexp2"

	"github.com/cybersherlock/cybersherlock/internal/platform"
)

// Exchange is a completed HTTP conversation, reduced to what classification
// needs. Body is truncated by the executor before it gets here.
type Exchange struct {
	StatusCode   int
	Body         string
	BodyDecoded  bool
	RequestedURL string
	FinalURL     string
}

// Cache compiled markers per pattern. Markers come from the static catalog,
// so the cache is bounded by the catalog size.
var (
	markerCache    sync.Map // pattern -> *regexp2.Regexp
	markerErrCache sync.Map // pattern -> error
)

// Classify decides the outcome of a completed exchange under the platform's
// recipe. It never panics: an internally inconsistent recipe degrades to
// OutcomeUnknown so one bad catalog entry cannot abort a scan.
func Classify(ex Exchange, spec platform.Spec) Outcome {
	// Ambiguous evidence is never reported as found or not found.
	if !ex.BodyDecoded {
		return OutcomeUnknown
	}
	if ex.StatusCode >= 500 {
		return OutcomeUnknown
	}
	switch ex.StatusCode {
	case http.StatusUnauthorized, http.StatusPaymentRequired, http.StatusForbidden,
		http.StatusMethodNotAllowed, http.StatusTooManyRequests:
		// Auth walls, blocks and rate limits say nothing about the username.
		return OutcomeUnknown
	}

	switch spec.Mode {
	case platform.ModeStatusCode:
		want := spec.ExpectedStatus
		if want == 0 {
			want = http.StatusOK
		}
		if ex.StatusCode == want {
			return OutcomeFound
		}
		return OutcomeNotFound

	case platform.ModeBodyAbsentMarker:
		present, ok := markerMatches(spec.Marker, ex.Body)
		if !ok {
			return OutcomeUnknown
		}
		if present {
			return OutcomeNotFound
		}
		return OutcomeFound

	case platform.ModeBodyPresentMarker:
		present, ok := markerMatches(spec.Marker, ex.Body)
		if !ok {
			return OutcomeUnknown
		}
		if present {
			return OutcomeFound
		}
		return OutcomeNotFound

	case platform.ModeRedirectCheck:
		// A request that did not land on a real page (404 and friends)
		// cannot claim the profile exists, redirected or not.
		if ex.StatusCode < 200 || ex.StatusCode >= 400 {
			return OutcomeNotFound
		}
		if spec.NotFoundRedirect != "" {
			if strings.HasPrefix(ex.FinalURL, spec.NotFoundRedirect) {
				return OutcomeNotFound
			}
			return OutcomeFound
		}
		// No explicit target configured: being redirected away from the
		// profile URL is the not-found signal.
		if ex.FinalURL == ex.RequestedURL {
			return OutcomeFound
		}
		return OutcomeNotFound

	default:
		return OutcomeUnknown
	}
}

// markerMatches reports whether the marker pattern occurs in body. The second
// return is false when the recipe is unusable (empty or invalid pattern).
func markerMatches(pattern, body string) (present, ok bool) {
	if pattern == "" {
		return false, false
	}
	re, err := markerRegex(pattern)
	if err != nil {
		return false, false
	}
	m, err := re.MatchString(body)
	if err != nil {
		// regexp2 aborts pathological matches with a timeout error.
		return false, false
	}
	return m, true
}

func markerRegex(pattern string) (*regexp2.Regexp, error) {
	if v, ok := markerCache.Load(pattern); ok {
		return v.(*regexp2.Regexp), nil
	}
	if v, ok := markerErrCache.Load(pattern); ok {
		return nil, v.(error)
	}

	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	if err != nil {
		markerErrCache.Store(pattern, err)
		return nil, err
	}
	markerCache.Store(pattern, re)
	return re, nil
}
