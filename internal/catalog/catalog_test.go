package catalog

import (
	"testing"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/storage/memory"
)

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	t.Parallel()

	products := memory.SeedProducts()
	filtered := Filter(products, "")
	if len(filtered) != len(products) {
		t.Fatalf("expected %d products, got %d", len(products), len(filtered))
	}
}

func TestFilter_MatchesNameDescriptionCategory(t *testing.T) {
	t.Parallel()

	products := memory.SeedProducts()

	byName := Filter(products, "冻梨")
	if len(byName) == 0 {
		t.Fatal("expected at least one match by name")
	}
	for _, p := range byName {
		if p.Name != "正宗东北冻梨" {
			t.Fatalf("unexpected product in name match: %q", p.Name)
		}
	}

	byCategory := Filter(products, "熏酱")
	if len(byCategory) == 0 {
		t.Fatal("expected matches by category")
	}
	for _, p := range byCategory {
		if p.Category != "经典熏酱" {
			t.Fatalf("unexpected category: %q", p.Category)
		}
	}
}

func TestFilter_NoMatches(t *testing.T) {
	t.Parallel()

	filtered := Filter(memory.SeedProducts(), "没有这种东西")
	if len(filtered) != 0 {
		t.Fatalf("expected no matches, got %d", len(filtered))
	}
}

func TestFilter_CaseSensitive(t *testing.T) {
	t.Parallel()

	products := []domain.Product{
		{ID: 1, Name: "Apple", Category: "fruit"},
	}
	if got := Filter(products, "apple"); len(got) != 0 {
		t.Fatalf("expected case-sensitive miss, got %d matches", len(got))
	}
	if got := Filter(products, "Apple"); len(got) != 1 {
		t.Fatalf("expected exact-case match, got %d", len(got))
	}
}

func TestGroupByCategory_FirstSeenOrder(t *testing.T) {
	t.Parallel()

	products := memory.SeedProducts()
	groups := GroupByCategory(products)

	if len(groups) == 0 {
		t.Fatal("expected at least one group")
	}
	if groups[0].Category != products[0].Category {
		t.Fatalf("expected first group %q, got %q", products[0].Category, groups[0].Category)
	}

	total := 0
	seen := map[string]struct{}{}
	for _, group := range groups {
		if len(group.Products) == 0 {
			t.Fatalf("group %q is empty", group.Category)
		}
		if _, ok := seen[group.Category]; ok {
			t.Fatalf("duplicate group %q", group.Category)
		}
		seen[group.Category] = struct{}{}
		total += len(group.Products)
	}
	if total != len(products) {
		t.Fatalf("groups cover %d products, expected %d", total, len(products))
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	t.Parallel()

	if groups := GroupByCategory(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}
