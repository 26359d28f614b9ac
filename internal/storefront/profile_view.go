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
	alertProfileSaved      = "✅ 资料已同步至云端"
	alertProfileSaveFailed = "同步失败"
)

// ProfileTab — вкладка личного кабинета. Переключение чисто клиентское.
type ProfileTab string

const (
	TabOrders    ProfileTab = "orders"
	TabWallet    ProfileTab = "wallet"
	TabFavorites ProfileTab = "favs"
	TabMessages  ProfileTab = "msg"
	TabAccount   ProfileTab = "account"
)

// Wallet — витринные цифры кошелька. Значения фиксированные, никакой
// бухгалтерии за ними нет.
type Wallet struct {
	Balance decimal.Decimal
	Points  int
	Coupons int
}

// ProfileView — личный кабинет: заказы, кошелёк, избранное, сообщения и
// редактирование учётных данных.
type ProfileView struct {
	shell  *Shell
	client *api.Client

	mu        sync.Mutex
	activeTab ProfileTab
	form      domain.UserProfile
	products  []domain.Product
	editing   bool
}

// NewProfileView создаёт личный кабинет на вкладке учётных данных.
func NewProfileView(shell *Shell, client *api.Client) *ProfileView {
	return &ProfileView{shell: shell, client: client, activeTab: TabAccount}
}

// Load загружает профиль и полный каталог (каталог нужен вкладке
// избранного).
func (v *ProfileView) Load(ctx context.Context) error {
	profile, err := v.client.User(ctx)
	if err != nil {
		v.shell.recordRemoteFailure()
		return fmt.Errorf("load profile: %w", err)
	}
	products, err := v.client.Products(ctx)
	if err != nil {
		v.shell.recordRemoteFailure()
		return fmt.Errorf("load products for favorites: %w", err)
	}

	v.mu.Lock()
	v.form = profile
	v.products = products
	v.mu.Unlock()
	return nil
}

// ActiveTab возвращает открытую вкладку.
func (v *ProfileView) ActiveTab() ProfileTab {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activeTab
}

// SetActiveTab переключает вкладку без походов на сервис.
func (v *ProfileView) SetActiveTab(tab ProfileTab) {
	v.mu.Lock()
	v.activeTab = tab
	v.mu.Unlock()
}

// Form возвращает текущее (возможно, отредактированное) содержимое формы.
func (v *ProfileView) Form() domain.UserProfile {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.form
}

// Editing сообщает, открыт ли режим редактирования.
func (v *ProfileView) Editing() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.editing
}

// BeginEdit открывает режим редактирования.
func (v *ProfileView) BeginEdit() {
	v.mu.Lock()
	v.editing = true
	v.mu.Unlock()
}

// SetField меняет поле формы локально, без записи на сервис.
func (v *ProfileView) SetField(field, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch field {
	case "name":
		v.form.Name = value
	case "phone":
		v.form.Phone = value
	case "address":
		v.form.Address = value
	case "email":
		v.form.Email = value
	default:
		return fmt.Errorf("unknown profile field %q", field)
	}
	return nil
}

// Save отправляет форму на сервис и закрывает режим редактирования.
// Возвращает текст всплывающего сообщения.
func (v *ProfileView) Save(ctx context.Context) (string, error) {
	v.mu.Lock()
	form := v.form
	v.mu.Unlock()

	if err := v.client.UpdateUser(ctx, form); err != nil {
		v.shell.recordRemoteFailure()
		return alertProfileSaveFailed, fmt.Errorf("save profile: %w", err)
	}

	v.mu.Lock()
	v.editing = false
	v.mu.Unlock()
	return alertProfileSaved, nil
}

// CancelEdit закрывает режим редактирования. Уже введённые значения
// остаются в форме до следующего Load.
func (v *ProfileView) CancelEdit() {
	v.mu.Lock()
	v.editing = false
	v.mu.Unlock()
}

// FavoriteProducts возвращает товары из избранного, сверенные со свежим
// каталогом: идентификаторы без товара в каталоге пропускаются.
func (v *ProfileView) FavoriteProducts() []domain.Product {
	favorites := v.shell.Favorites()

	v.mu.Lock()
	defer v.mu.Unlock()

	byID := make(map[int64]domain.Product, len(v.products))
	for _, product := range v.products {
		byID[product.ID] = product
	}

	result := make([]domain.Product, 0, len(favorites))
	for _, id := range favorites {
		if product, ok := byID[id]; ok {
			result = append(result, product)
		}
	}
	return result
}

// SimulatedOrders возвращает имитируемые заказы витрины, новые первыми.
func (v *ProfileView) SimulatedOrders() []domain.SimulatedOrder {
	return v.shell.Orders()
}

// Notifications возвращает ленту уведомлений для вкладки сообщений.
func (v *ProfileView) Notifications() []domain.Notification {
	return v.shell.Notifications()
}

// Wallet возвращает фиксированные витринные цифры кошелька.
func (v *ProfileView) Wallet() Wallet {
	return Wallet{
		Balance: decimal.RequireFromString("8888.66"),
		Points:  12450,
		Coupons: 5,
	}
}

// Logout выходит из сессии, очищая весь локальный стор настроек.
func (v *ProfileView) Logout() error {
	return v.shell.Logout()
}
