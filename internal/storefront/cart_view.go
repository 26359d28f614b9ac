package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/api"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

const (
	alertCheckoutOK     = "✅ 支付成功！东北的美味正在打包中..."
	alertCheckoutFailed = "结算异常，请稍后重试"
)

// CartView — страница корзины. Модель пессимистичная: каждая мутация
// уходит на сервис и завершается полной перечиткой корзины.
type CartView struct {
	shell  *Shell
	client *api.Client

	mu    sync.Mutex
	items []domain.CartItem
}

// NewCartView создаёт экран корзины.
func NewCartView(shell *Shell, client *api.Client) *CartView {
	return &CartView{shell: shell, client: client}
}

// Load перечитывает корзину с сервиса целиком.
func (v *CartView) Load(ctx context.Context) error {
	items, err := v.client.Cart(ctx)
	if err != nil {
		v.shell.recordRemoteFailure()
		return fmt.Errorf("load cart: %w", err)
	}

	v.mu.Lock()
	v.items = items
	v.mu.Unlock()
	return nil
}

// Items возвращает копию строк корзины.
func (v *CartView) Items() []domain.CartItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.CartItem(nil), v.items...)
}

// Total возвращает сумму корзины как Σ цена×количество.
func (v *CartView) Total() decimal.Decimal {
	v.mu.Lock()
	defer v.mu.Unlock()
	return domain.CartTotal(v.items)
}

// ChangeQuantity меняет количество строки на delta через upsert-добавление
// той же позиции. Попытка опустить количество ниже единицы молча
// игнорируется и на сервис не уходит.
func (v *CartView) ChangeQuantity(ctx context.Context, cartID int64, delta int) error {
	v.mu.Lock()
	var line *domain.CartItem
	for i := range v.items {
		if v.items[i].CartID == cartID {
			line = &v.items[i]
			break
		}
	}
	if line == nil {
		v.mu.Unlock()
		return domain.ErrCartLineNotFound
	}
	productID := line.ID
	newQuantity := line.Quantity + delta
	v.mu.Unlock()

	if newQuantity < 1 {
		return nil
	}

	if err := v.client.AddToCart(ctx, productID, delta); err != nil {
		v.shell.recordRemoteFailure()
		return fmt.Errorf("change quantity of cart line %d: %w", cartID, err)
	}
	return v.Load(ctx)
}

// Remove удаляет строку корзины и перечитывает её.
func (v *CartView) Remove(ctx context.Context, cartID int64) error {
	if err := v.client.RemoveCartLine(ctx, cartID); err != nil {
		v.shell.recordRemoteFailure()
		return fmt.Errorf("remove cart line %d: %w", cartID, err)
	}
	return v.Load(ctx)
}

// Checkout оформляет заказ. Успех переводит на страницу профиля и не
// трогает локальное состояние: корзину уже очистил сервис. Неудача
// возвращает текст блокирующего сообщения, корзина остаётся как была.
// Пустая корзина — локальный no-op без похода на сервис.
func (v *CartView) Checkout(ctx context.Context) (string, error) {
	v.mu.Lock()
	empty := len(v.items) == 0
	v.mu.Unlock()
	if empty {
		return "", nil
	}

	if _, err := v.client.Checkout(ctx); err != nil {
		v.shell.recordRemoteFailure()
		return alertCheckoutFailed, fmt.Errorf("checkout: %w", err)
	}

	v.shell.Navigate("/profile")
	return alertCheckoutOK, nil
}
