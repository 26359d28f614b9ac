package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/storage/memory"
)

func newCart(t *testing.T) domain.CartRepository {
	t.Helper()
	return memory.NewCartRepository(memory.NewCatalogRepository())
}

func TestCartRepository_AddAndList(t *testing.T) {
	repo := newCart(t)

	if err := repo.Add(memory.DefaultUserID, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, err := repo.List(memory.DefaultUserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	if items[0].Name == "" {
		t.Fatal("expected joined product fields to be populated")
	}
}

func TestCartRepository_AddIncrementsExistingLine(t *testing.T) {
	repo := newCart(t)

	if err := repo.Add(memory.DefaultUserID, 1, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.Add(memory.DefaultUserID, 1, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, err := repo.List(memory.DefaultUserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected a single upserted line, got %d", len(items))
	}
	if items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", items[0].Quantity)
	}
}

func TestCartRepository_NegativeDeltaDecrements(t *testing.T) {
	repo := newCart(t)

	if err := repo.Add(memory.DefaultUserID, 1, 3); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := repo.Add(memory.DefaultUserID, 1, -1); err != nil {
		t.Fatalf("decrement failed: %v", err)
	}

	items, err := repo.List(memory.DefaultUserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 after decrement, got %d", items[0].Quantity)
	}
}

func TestCartRepository_AddUnknownProduct(t *testing.T) {
	repo := newCart(t)

	if err := repo.Add(memory.DefaultUserID, 9999, 1); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartRepository_RemoveIsIdempotent(t *testing.T) {
	repo := newCart(t)

	if err := repo.Add(memory.DefaultUserID, 2, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	items, err := repo.List(memory.DefaultUserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if err := repo.Remove(items[0].CartID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := repo.Remove(items[0].CartID); err != nil {
		t.Fatalf("second remove must be a no-op, got %v", err)
	}

	items, err = repo.List(memory.DefaultUserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestCartRepository_Clear(t *testing.T) {
	repo := newCart(t)

	for _, id := range []int64{1, 2, 3} {
		if err := repo.Add(memory.DefaultUserID, id, 1); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	if err := repo.Clear(memory.DefaultUserID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	items, err := repo.List(memory.DefaultUserID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected cleared cart, got %d lines", len(items))
	}
}

func TestCatalogRepository_SeedOrder(t *testing.T) {
	repo := memory.NewCatalogRepository()

	products, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 12 {
		t.Fatalf("expected 12 seeded products, got %d", len(products))
	}
	if products[0].Name != "正宗东北冻梨" {
		t.Fatalf("unexpected first product: %s", products[0].Name)
	}
	if !products[8].Price.Equal(decimal.RequireFromString("128.0")) {
		t.Fatalf("unexpected rice price: %s", products[8].Price)
	}
}

func TestCatalogRepository_GetMissing(t *testing.T) {
	repo := memory.NewCatalogRepository()

	if _, err := repo.Get(404); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
