package platform

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Placeholder is the username slot inside a URL template.
const Placeholder = "{}"

// Category tags a platform for filtering and display. Informational only.
type Category string

const (
	CategoryDev       Category = "dev"
	CategorySocial    Category = "social"
	CategoryGaming    Category = "gaming"
	CategoryArt       Category = "art"
	CategoryMusic     Category = "music"
	CategoryMedia     Category = "media"
	CategoryBooks     Category = "books"
	CategoryCommerce  Category = "commerce"
	CategorySecurity  Category = "security"
	CategoryKnowledge Category = "knowledge"
)

// DetectionMode selects which classification rule applies to a platform's
// response. It is a closed set: the classifier switches exhaustively over it.
type DetectionMode int

const (
	// ModeStatusCode treats a specific status code as proof of existence.
	ModeStatusCode DetectionMode = iota
	// ModeBodyAbsentMarker reports found unless the marker appears in the body.
	ModeBodyAbsentMarker
	// ModeBodyPresentMarker reports found only if the marker appears in the body.
	ModeBodyPresentMarker
	// ModeRedirectCheck decides by the final URL after redirects.
	ModeRedirectCheck
)

func (m DetectionMode) String() string {
	switch m {
	case ModeStatusCode:
		return "status_code"
	case ModeBodyAbsentMarker:
		return "body_contains_absent_marker"
	case ModeBodyPresentMarker:
		return "body_contains_present_marker"
	case ModeRedirectCheck:
		return "redirect_check"
	default:
		return fmt.Sprintf("detection_mode(%d)", int(m))
	}
}

// Spec describes one platform's probe recipe. Specs are immutable after the
// registry is loaded.
type Spec struct {
	Name        string
	URLTemplate string
	Category    Category

	Mode DetectionMode

	// Marker is a case-insensitive pattern used by the body-based modes.
	Marker string

	// ExpectedStatus is the status that counts as found in status_code mode.
	// Zero means 200.
	ExpectedStatus int

	// NotFoundRedirect is a URL prefix that redirect_check treats as the
	// platform's "no such user" landing page. When empty, being redirected
	// anywhere away from the profile URL counts as not found.
	NotFoundRedirect string
}

// ProfileURL substitutes the username into the platform's URL template.
func (s Spec) ProfileURL(username string) string {
	return strings.Replace(s.URLTemplate, Placeholder, username, 1)
}

// Registry is an ordered, read-only view of the platform catalog.
type Registry struct {
	specs  []Spec
	byName map[string]int
}

// Load builds the registry from the embedded catalog and validates it.
// A malformed catalog is a programming error and aborts startup before any
// network activity.
func Load() (*Registry, error) {
	return newRegistry(catalog)
}

func newRegistry(specs []Spec) (*Registry, error) {
	r := &Registry{
		specs:  specs,
		byName: make(map[string]int, len(specs)),
	}
	for i, s := range specs {
		if s.Name == "" {
			return nil, errors.Errorf("catalog entry %d: empty name", i)
		}
		if _, dup := r.byName[s.Name]; dup {
			return nil, errors.Errorf("catalog entry %q: duplicate name", s.Name)
		}
		if strings.Count(s.URLTemplate, Placeholder) != 1 {
			return nil, errors.Errorf("catalog entry %q: url template must contain exactly one %q", s.Name, Placeholder)
		}
		r.byName[s.Name] = i
	}
	return r, nil
}

// All returns the specs in catalog order. Callers must not mutate the slice.
func (r *Registry) All() []Spec {
	return r.specs
}

func (r *Registry) Len() int {
	return len(r.specs)
}

// Get looks up a platform by exact name.
func (r *Registry) Get(name string) (Spec, error) {
	i, ok := r.byName[name]
	if !ok {
		return Spec{}, errors.Errorf("unknown platform %q", name)
	}
	return r.specs[i], nil
}

// Filter returns a sub-registry whose entries match any of the keywords by
// case-insensitive substring on the platform name or category, preserving
// catalog order. No match falls back to the full registry.
func (r *Registry) Filter(keywords []string) *Registry {
	keys := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return r
	}

	var matched []Spec
	for _, s := range r.specs {
		name := strings.ToLower(s.Name)
		cat := string(s.Category)
		for _, k := range keys {
			if strings.Contains(name, k) || strings.Contains(cat, k) {
				matched = append(matched, s)
				break
			}
		}
	}
	if len(matched) == 0 {
		return r
	}

	// The parent registry already validated these entries.
	sub, _ := newRegistry(matched)
	return sub
}
