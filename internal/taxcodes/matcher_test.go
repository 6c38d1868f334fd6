package taxcodes

import (
	"context"
	"sync/atomic"
	"testing"
)

func seededRepo() *MemoryRepo {
	repo := NewMemoryRepo()
	for _, tc := range Defaults() {
		repo.Put(tc)
	}
	return repo
}

func TestMatchCategoryFirstMatchWins(t *testing.T) {
	// "car" (Transportation) and "supplies" (Office) both appear;
	// Transportation is checked first.
	got := MatchCategory("Car supplies for the delivery run")
	if got != "Transportation" {
		t.Fatalf("category = %q, want Transportation", got)
	}
}

func TestMatchCategoryCaseInsensitive(t *testing.T) {
	if got := MatchCategory("HOTEL booking for conference"); got != "Travel" {
		t.Fatalf("category = %q, want Travel", got)
	}
}

func TestMatchCategoryNoKeyword(t *testing.T) {
	if got := MatchCategory("miscellaneous line item"); got != "" {
		t.Fatalf("category = %q, want empty", got)
	}
}

func TestMatcherResolvesCode(t *testing.T) {
	m := NewMatcher(seededRepo())
	match, err := m.Match(context.Background(), "fuel for the van")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if match.CodeID != "tc-transportation" || match.Code != "TRANS-100" {
		t.Fatalf("unexpected match: %+v", match)
	}
}

func TestMatcherMissingRowYieldsNoCode(t *testing.T) {
	repo := NewMemoryRepo() // empty: every category lookup misses
	m := NewMatcher(repo)
	match, err := m.Match(context.Background(), "software subscription")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if match.CodeID != "" {
		t.Fatalf("code id = %q, want empty", match.CodeID)
	}
	if match.Category != "Services" {
		t.Fatalf("category = %q, want Services", match.Category)
	}
}

type countingRepo struct {
	*MemoryRepo
	categoryCalls atomic.Int64
}

func (r *countingRepo) GetByCategory(ctx context.Context, category string) (TaxCode, error) {
	r.categoryCalls.Add(1)
	return r.MemoryRepo.GetByCategory(ctx, category)
}

func TestMatcherCachesCategoryLookups(t *testing.T) {
	repo := &countingRepo{MemoryRepo: seededRepo()}
	m := NewMatcher(repo)
	for i := 0; i < 3; i++ {
		if _, err := m.Match(context.Background(), "parking fee downtown"); err != nil {
			t.Fatalf("match: %v", err)
		}
	}
	if calls := repo.categoryCalls.Load(); calls != 1 {
		t.Fatalf("repo calls = %d, want 1", calls)
	}
}
