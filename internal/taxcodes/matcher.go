package taxcodes

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// categoryKeywords pairs a category name with its trigger keywords.
// Order matters: the first category whose keyword appears in the
// description wins.
type categoryKeywords struct {
	Category string
	Keywords []string
}

var categories = []categoryKeywords{
	{"Transportation", []string{"fuel", "car", "vehicle", "mileage", "parking", "toll"}},
	{"Office", []string{"supplies", "paper", "printer", "desk", "chair", "computer"}},
	{"Marketing", []string{"advertising", "promotion", "campaign", "marketing"}},
	{"Travel", []string{"hotel", "flight", "accommodation", "travel"}},
	{"Equipment", []string{"machine", "equipment", "tool", "hardware"}},
	{"Services", []string{"consulting", "service", "subscription", "software"}},
}

// MatchCategory returns the first category whose keyword appears in the
// description (case-insensitive substring), or "" when none match.
func MatchCategory(description string) string {
	lower := strings.ToLower(description)
	for _, ck := range categories {
		for _, kw := range ck.Keywords {
			if strings.Contains(lower, kw) {
				return ck.Category
			}
		}
	}
	return ""
}

// Match is a matcher outcome. CodeID is empty when the description
// matched no category or the category has no tax code row.
type Match struct {
	CodeID   string
	Code     string
	Category string
}

// Matcher resolves descriptions to tax codes, caching category lookups
// for the duration of the matcher instance (one per analysis run).
type Matcher struct {
	repo Repo

	mu    sync.Mutex
	cache map[string]*TaxCode // category -> code (nil = known missing)
}

// NewMatcher constructs a Matcher over the given repo.
func NewMatcher(repo Repo) *Matcher {
	return &Matcher{repo: repo, cache: make(map[string]*TaxCode)}
}

// Match maps a transaction description to a tax code. A description
// without a keyword hit, or a category without a tax_codes row, yields
// an empty CodeID rather than an error; only storage failures propagate.
func (m *Matcher) Match(ctx context.Context, description string) (Match, error) {
	category := MatchCategory(description)
	if category == "" {
		return Match{}, nil
	}

	m.mu.Lock()
	cached, ok := m.cache[category]
	m.mu.Unlock()
	if ok {
		if cached == nil {
			return Match{Category: category}, nil
		}
		return Match{CodeID: cached.ID, Code: cached.Code, Category: category}, nil
	}

	tc, err := m.repo.GetByCategory(ctx, category)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			m.mu.Lock()
			m.cache[category] = nil
			m.mu.Unlock()
			return Match{Category: category}, nil
		}
		return Match{}, err
	}

	m.mu.Lock()
	m.cache[category] = &tc
	m.mu.Unlock()
	return Match{CodeID: tc.ID, Code: tc.Code, Category: category}, nil
}
