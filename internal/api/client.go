// Package api содержит типизированный HTTP-клиент витрины к сервису магазина.
// Базовый адрес резолвится один раз при создании клиента: страницы не имеют
// права хардкодить хосты по месту вызова.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/version"
)

const defaultRequestTimeout = 10 * time.Second

// Client — HTTP-клиент к REST API магазина.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Entry
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет транспорт (для тестов и нестандартных таймаутов).
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// WithLogger задаёт logger клиента.
func WithLogger(logger *log.Entry) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New создаёт клиент с единственным базовым адресом.
func New(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultRequestTimeout},
		logger:  log.WithField("component", "api-client"),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// BaseURL возвращает сконфигурированный базовый адрес.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Products возвращает весь каталог.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product возвращает один товар по идентификатору.
func (c *Client) Product(ctx context.Context, id int64) (domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, &product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// Cart возвращает строки корзины, соединённые с товарами.
func (c *Client) Cart(ctx context.Context) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// AddToCart добавляет товар в корзину либо увеличивает количество
// существующей строки.
func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) error {
	return c.do(ctx, http.MethodPost, "/api/cart", addToCartRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// RemoveCartLine удаляет строку корзины.
func (c *Client) RemoveCartLine(ctx context.Context, cartID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", cartID), nil, nil)
}

// CheckoutResult — ответ сервиса на оформление заказа.
type CheckoutResult struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

// Checkout оформляет заказ по текущей корзине. Тело запроса пустое:
// сервис сам читает корзину и очищает её.
func (c *Client) Checkout(ctx context.Context) (CheckoutResult, error) {
	var result CheckoutResult
	if err := c.do(ctx, http.MethodPost, "/api/orders/checkout", nil, &result); err != nil {
		return CheckoutResult{}, err
	}
	return result, nil
}

// User возвращает профиль покупателя.
func (c *Client) User(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/user", nil, &profile); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// UpdateUser целиком заменяет поля профиля.
func (c *Client) UpdateUser(ctx context.Context, profile domain.UserProfile) error {
	return c.do(ctx, http.MethodPut, "/api/user", profile, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remoteErr := newRemoteError(resp)
		c.logger.WithFields(log.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Debug("remote call failed")
		return remoteErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, path, err)
	}
	return nil
}
