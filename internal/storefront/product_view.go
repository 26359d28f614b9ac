package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/api"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

const alertDetailAddFailed = "添加失败，请检查后端服务是否开启"

// ProductDetailView — карточка товара: выбор количества, добавление в
// корзину, «купить сейчас» и переключение избранного.
type ProductDetailView struct {
	shell  *Shell
	client *api.Client

	mu       sync.Mutex
	product  domain.Product
	loaded   bool
	quantity int
}

// NewProductDetailView создаёт экран карточки товара.
func NewProductDetailView(shell *Shell, client *api.Client) *ProductDetailView {
	return &ProductDetailView{shell: shell, client: client, quantity: 1}
}

// Load загружает товар по идентификатору. Несуществующий товар приходит
// как *api.RemoteError со статусом 404.
func (v *ProductDetailView) Load(ctx context.Context, productID int64) error {
	product, err := v.client.Product(ctx, productID)
	if err != nil {
		v.shell.recordRemoteFailure()
		return fmt.Errorf("load product %d: %w", productID, err)
	}

	v.mu.Lock()
	v.product = product
	v.loaded = true
	v.quantity = 1
	v.mu.Unlock()
	return nil
}

// Product возвращает загруженный товар; второй результат false, пока
// Load не выполнен.
func (v *ProductDetailView) Product() (domain.Product, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.product, v.loaded
}

// Quantity возвращает выбранное количество.
func (v *ProductDetailView) Quantity() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.quantity
}

// IncrementQuantity увеличивает выбранное количество на единицу.
func (v *ProductDetailView) IncrementQuantity() {
	v.mu.Lock()
	v.quantity++
	v.mu.Unlock()
}

// DecrementQuantity уменьшает количество, но не ниже единицы.
func (v *ProductDetailView) DecrementQuantity() {
	v.mu.Lock()
	if v.quantity > 1 {
		v.quantity--
	}
	v.mu.Unlock()
}

// ToggleFavorite переключает избранность открытого товара.
func (v *ProductDetailView) ToggleFavorite() error {
	v.mu.Lock()
	id := v.product.ID
	loaded := v.loaded
	v.mu.Unlock()

	if !loaded {
		return domain.ErrProductNotFound
	}
	return v.shell.ToggleFavorite(id)
}

// AddToCart добавляет выбранное количество в корзину. При ошибке
// возвращает текст блокирующего сообщения вторым значением ошибки.
func (v *ProductDetailView) AddToCart(ctx context.Context) (string, error) {
	v.mu.Lock()
	id := v.product.ID
	quantity := v.quantity
	loaded := v.loaded
	v.mu.Unlock()

	if !loaded {
		return alertDetailAddFailed, domain.ErrProductNotFound
	}
	if err := v.client.AddToCart(ctx, id, quantity); err != nil {
		v.shell.recordRemoteFailure()
		return alertDetailAddFailed, fmt.Errorf("add product %d to cart: %w", id, err)
	}
	return "", nil
}

// BuyNow добавляет товар в корзину и сразу переводит на страницу корзины,
// не дожидаясь подтверждения добавления. Возвращает итоговый маршрут.
func (v *ProductDetailView) BuyNow(ctx context.Context) string {
	if _, err := v.AddToCart(ctx); err != nil {
		v.shell.logger.WithError(err).Warn("buy now: add to cart failed")
	}
	return v.shell.Navigate("/cart")
}

// Purchase оформляет имитируемый заказ на открытый товар с выбранным
// количеством.
func (v *ProductDetailView) Purchase() (domain.SimulatedOrder, error) {
	v.mu.Lock()
	product := v.product
	quantity := v.quantity
	loaded := v.loaded
	v.mu.Unlock()

	if !loaded {
		return domain.SimulatedOrder{}, domain.ErrProductNotFound
	}
	return v.shell.Purchase(product, quantity), nil
}
