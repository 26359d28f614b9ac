package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/api"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/catalog"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

const (
	alertQuickAddOK     = "已成功加入购物车！"
	alertQuickAddFailed = "加购失败"
)

// CatalogView — главная страница витрины: полный каталог, поиск по
// подстроке и быстрое добавление в корзину одной штукой.
type CatalogView struct {
	shell  *Shell
	client *api.Client

	mu       sync.Mutex
	products []domain.Product
	query    string
}

// NewCatalogView создаёт экран каталога.
func NewCatalogView(shell *Shell, client *api.Client) *CatalogView {
	return &CatalogView{shell: shell, client: client}
}

// Load перечитывает каталог с сервиса целиком.
func (v *CatalogView) Load(ctx context.Context) error {
	products, err := v.client.Products(ctx)
	if err != nil {
		v.shell.recordRemoteFailure()
		return fmt.Errorf("load catalog: %w", err)
	}

	v.mu.Lock()
	v.products = products
	v.mu.Unlock()
	return nil
}

// SetQuery задаёт поисковый запрос. Фильтрация локальная, сервис не
// дёргается.
func (v *CatalogView) SetQuery(query string) {
	v.mu.Lock()
	v.query = query
	v.mu.Unlock()
}

// Query возвращает текущий поисковый запрос.
func (v *CatalogView) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// Visible возвращает товары, подходящие под текущий запрос.
func (v *CatalogView) Visible() []domain.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return catalog.Filter(v.products, v.query)
}

// Groups возвращает видимые товары, разбитые по категориям в порядке
// первого появления.
func (v *CatalogView) Groups() []catalog.CategoryGroup {
	return catalog.GroupByCategory(v.Visible())
}

// QuickAdd кладёт одну штуку товара в корзину прямо с карточки каталога.
// Возвращает текст всплывающего сообщения; при ошибке повторных попыток
// не делается.
func (v *CatalogView) QuickAdd(ctx context.Context, productID int64) (string, error) {
	if err := v.client.AddToCart(ctx, productID, 1); err != nil {
		v.shell.recordRemoteFailure()
		return alertQuickAddFailed, fmt.Errorf("quick add product %d: %w", productID, err)
	}
	return alertQuickAddOK, nil
}
