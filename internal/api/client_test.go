package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/storage/memory"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/version"
)

func TestClient_ProductsAndProduct(t *testing.T) {
	t.Parallel()

	seed := memory.SeedProducts()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			writeJSON(t, w, http.StatusOK, seed)
		case "/api/products/3":
			writeJSON(t, w, http.StatusOK, seed[2])
		default:
			writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "商品不存在"})
		}
	}))
	defer srv.Close()

	client := New(srv.URL)

	products, err := client.Products(context.Background())
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != len(seed) {
		t.Fatalf("expected %d products, got %d", len(seed), len(products))
	}

	product, err := client.Product(context.Background(), 3)
	if err != nil {
		t.Fatalf("Product failed: %v", err)
	}
	if product.Name != seed[2].Name {
		t.Fatalf("expected product %q, got %q", seed[2].Name, product.Name)
	}
}

func TestClient_ProductNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "商品不存在"})
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.Product(context.Background(), 999)
	if err == nil {
		t.Fatal("expected error for missing product")
	}

	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %T: %v", err, err)
	}
	if !remoteErr.IsNotFound() {
		t.Fatalf("expected 404, got %d", remoteErr.Status)
	}
	if remoteErr.Detail != "商品不存在" {
		t.Fatalf("unexpected detail: %q", remoteErr.Detail)
	}
}

func TestClient_AddToCartSendsBody(t *testing.T) {
	t.Parallel()

	var got addToCartRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/cart" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %q", ct)
		}
		if ua := r.Header.Get("User-Agent"); ua != version.UserAgent() {
			t.Errorf("unexpected user agent: %q", ua)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "已添加到购物车"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	if err := client.AddToCart(context.Background(), 7, 2); err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	if got.ProductID != 7 || got.Quantity != 2 {
		t.Fatalf("unexpected request body: %+v", got)
	}
}

func TestClient_CheckoutEmptyCart(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]string{"detail": "购物车为空"})
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.Checkout(context.Background())
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError, got %T: %v", err, err)
	}
	if remoteErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", remoteErr.Status)
	}
}

func TestClient_UserRoundTrip(t *testing.T) {
	t.Parallel()

	stored := memory.SeedUser()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(t, w, http.StatusOK, stored)
		case http.MethodPut:
			if err := json.NewDecoder(r.Body).Decode(&stored); err != nil {
				t.Errorf("decode profile: %v", err)
			}
			writeJSON(t, w, http.StatusOK, map[string]string{"message": "保存成功"})
		}
	}))
	defer srv.Close()

	client := New(srv.URL)

	profile, err := client.User(context.Background())
	if err != nil {
		t.Fatalf("User failed: %v", err)
	}
	if profile.Name != "东北老铁" {
		t.Fatalf("unexpected profile name: %q", profile.Name)
	}

	profile.Address = "吉林省长春市南关区"
	if err := client.UpdateUser(context.Background(), profile); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if stored.Address != profile.Address {
		t.Fatalf("profile was not updated on the server: %+v", stored)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := New(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Cart(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}
