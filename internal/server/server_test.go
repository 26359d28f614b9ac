package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/storage/memory"
)

type capturedEvent struct {
	Topic string
	Key   string
	Event interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (p *fakePublisher) PublishEvent(topic, key string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, capturedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *fakePublisher) Events() []capturedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]capturedEvent(nil), p.events...)
}

type testEnv struct {
	server    *httptest.Server
	orders    domain.OrderRepository
	publisher *fakePublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog := memory.NewCatalogRepository()
	cart := memory.NewCartRepository(catalog)
	orders := memory.NewOrderRepository()
	users := memory.NewUserRepository()
	publisher := &fakePublisher{}

	srv := New(Dependencies{
		Catalog:   catalog,
		Cart:      cart,
		Orders:    orders,
		Users:     users,
		Publisher: publisher,
	})

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testEnv{server: ts, orders: orders, publisher: publisher}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, buf.Bytes()
}

func decodeJSON(t *testing.T, payload []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(payload, v); err != nil {
		t.Fatalf("decode %s: %v", payload, err)
	}
}

func TestServer_ListProducts(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/api/products", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var products []domain.Product
	decodeJSON(t, body, &products)
	if len(products) != 12 {
		t.Fatalf("expected 12 seeded products, got %d", len(products))
	}

	// Цены сериализуются числами.
	if strings.Contains(string(body), `"price":"`) {
		t.Fatalf("price should be a JSON number: %s", body)
	}
}

func TestServer_GetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/api/products/999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var detail detailResponse
	decodeJSON(t, body, &detail)
	if detail.Detail != "商品不存在" {
		t.Fatalf("unexpected detail: %q", detail.Detail)
	}
}

func TestServer_AddToCartUpserts(t *testing.T) {
	env := newTestEnv(t)

	for range 2 {
		resp, _ := env.request(t, http.MethodPost, "/api/cart", addToCartRequest{ProductID: 1, Quantity: 1})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("add status = %d, want 200", resp.StatusCode)
		}
	}

	resp, body := env.request(t, http.MethodGet, "/api/cart", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("cart status = %d, want 200", resp.StatusCode)
	}

	var items []domain.CartItem
	decodeJSON(t, body, &items)
	if len(items) != 1 {
		t.Fatalf("expected single upserted line, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2 after two adds, got %d", items[0].Quantity)
	}

	events := env.publisher.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 cart events, got %d", len(events))
	}
}

func TestServer_AddUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodPost, "/api/cart", addToCartRequest{ProductID: 999, Quantity: 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var detail detailResponse
	decodeJSON(t, body, &detail)
	if detail.Detail != "商品不存在" {
		t.Fatalf("unexpected detail: %q", detail.Detail)
	}
}

func TestServer_RemoveFromCartIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodDelete, "/api/cart/12345", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var msg messageResponse
	decodeJSON(t, body, &msg)
	if msg.Message != "已移除" {
		t.Fatalf("unexpected message: %q", msg.Message)
	}
}

func TestServer_CheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodPost, "/api/orders/checkout", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var detail detailResponse
	decodeJSON(t, body, &detail)
	if detail.Detail != "购物车为空" {
		t.Fatalf("unexpected detail: %q", detail.Detail)
	}

	orders, err := env.orders.ListByUser(1, 10)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("empty checkout must not create orders, got %d", len(orders))
	}
}

func TestServer_CheckoutComputesTotalAndClearsCart(t *testing.T) {
	env := newTestEnv(t)

	// 冻梨 35.0 ×3 и 丹东草莓 88.0 ×1.
	env.request(t, http.MethodPost, "/api/cart", addToCartRequest{ProductID: 1, Quantity: 3})
	env.request(t, http.MethodPost, "/api/cart", addToCartRequest{ProductID: 3, Quantity: 1})

	resp, body := env.request(t, http.MethodPost, "/api/orders/checkout", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
	}

	var result checkoutResponse
	decodeJSON(t, body, &result)
	if result.OrderID == 0 {
		t.Fatal("expected non-zero order id")
	}
	if result.Message != "下单成功" {
		t.Fatalf("unexpected message: %q", result.Message)
	}

	orders, err := env.orders.ListByUser(1, 10)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	want := decimal.RequireFromString("35.0").Mul(decimal.NewFromInt(3)).
		Add(decimal.RequireFromString("88.0"))
	if !orders[0].Total.Equal(want) {
		t.Fatalf("order total = %s, want %s", orders[0].Total, want)
	}
	if len(orders[0].Items) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(orders[0].Items))
	}

	_, cartBody := env.request(t, http.MethodGet, "/api/cart", nil)
	var items []domain.CartItem
	decodeJSON(t, cartBody, &items)
	if len(items) != 0 {
		t.Fatalf("checkout must clear the cart, got %d lines", len(items))
	}
}

func TestServer_UserRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodGet, "/api/user", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var profile domain.UserProfile
	decodeJSON(t, body, &profile)
	if profile.Name != "东北老铁" {
		t.Fatalf("unexpected seeded name: %q", profile.Name)
	}

	profile.Address = "吉林省延边朝鲜族自治州"
	resp, body = env.request(t, http.MethodPut, "/api/user", profile)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d, want 200: %s", resp.StatusCode, body)
	}

	var msg messageResponse
	decodeJSON(t, body, &msg)
	if msg.Message != "信息已更新" {
		t.Fatalf("unexpected message: %q", msg.Message)
	}

	_, body = env.request(t, http.MethodGet, "/api/user", nil)
	var updated domain.UserProfile
	decodeJSON(t, body, &updated)
	if updated.Address != profile.Address {
		t.Fatalf("address was not persisted: %q", updated.Address)
	}
}

func TestServer_UpdateUserValidation(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.request(t, http.MethodPut, "/api/user", domain.UserProfile{Phone: "13800000000"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var detail detailResponse
	decodeJSON(t, body, &detail)
	if !strings.Contains(detail.Detail, "profile name is required") {
		t.Fatalf("detail must name the missing field, got %q", detail.Detail)
	}

	// Пустой профиль нарушает сразу два инварианта: в ответе оба.
	resp, body = env.request(t, http.MethodPut, "/api/user", domain.UserProfile{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	decodeJSON(t, body, &detail)
	if !strings.Contains(detail.Detail, "profile name is required") ||
		!strings.Contains(detail.Detail, "profile phone is required") {
		t.Fatalf("detail must list every violated invariant, got %q", detail.Detail)
	}
}
