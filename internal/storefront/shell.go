// Package storefront реализует клиентский движок витрины: сессию
// покупателя, избранное, имитацию заказов с автодоставкой, ленту
// уведомлений и экраны каталога, товара, корзины и профиля.
package storefront

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/metrics"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/prefs"
)

const (
	// dispatchDelay — пауза между оплатой и «автоотгрузкой» заказа.
	defaultDispatchDelay = 4 * time.Second

	// loginDisplayName — фиксированное имя, под которым входит покупатель.
	loginDisplayName = "尊贵的东北老铁"

	locationPreparing = "商家准备出库"
	locationInTransit = "哈尔滨顺丰分拨中心"

	notificationTitleSystem    = "系统通知"
	notificationTitleLogistics = "物流提醒"
	notificationTimeJustNow    = "刚才"

	welcomeNotificationBody  = "欢迎加入东北味道！新老铁下单享8折优惠。"
	dispatchNotificationBody = "老铁！您的包裹 [%s] 已发货，正从哈尔滨极速赶来！"
)

// Shell — верхний уровень витрины. Владеет сессией, избранным,
// имитируемыми заказами, уведомлениями и всеми отложенными таймерами.
// Безопасен для конкурентного использования.
type Shell struct {
	mu            sync.Mutex
	prefs         *prefs.Store
	metrics       *metrics.StorefrontMetrics
	dispatchDelay time.Duration

	route         string
	orders        []domain.SimulatedOrder
	notifications []domain.Notification

	timers          map[*time.Timer]struct{}
	closed          bool
	lastOrderMillis int64
	notificationSeq int64

	logger *log.Entry
}

// ShellOption настраивает Shell.
type ShellOption func(*Shell)

// WithDispatchDelay задаёт задержку автоотгрузки (в тестах — почти ноль).
func WithDispatchDelay(delay time.Duration) ShellOption {
	return func(s *Shell) {
		s.dispatchDelay = delay
	}
}

// WithMetrics подключает метрики витрины.
func WithMetrics(m *metrics.StorefrontMetrics) ShellOption {
	return func(s *Shell) {
		s.metrics = m
	}
}

// NewShell создаёт движок витрины поверх локального хранилища настроек.
// В ленту сразу кладётся приветственное системное уведомление.
func NewShell(prefsStore *prefs.Store, options ...ShellOption) *Shell {
	s := &Shell{
		prefs:         prefsStore,
		dispatchDelay: defaultDispatchDelay,
		route:         "/",
		timers:        make(map[*time.Timer]struct{}),
		logger:        log.WithField("component", "storefront-shell"),
	}
	for _, option := range options {
		option(s)
	}

	s.notifications = []domain.Notification{{
		ID:        s.nextNotificationID(),
		Title:     notificationTitleSystem,
		Body:      welcomeNotificationBody,
		TimeLabel: notificationTimeJustNow,
		Kind:      domain.NotificationKindSystem,
	}}
	return s
}

// --- Сессия и маршрутизация ---

// Login отмечает вход в сессию и переводит на страницу профиля.
// provider влияет только на внешний вид формы, имя всегда одно.
func (s *Shell) Login(provider string) error {
	if err := s.prefs.SetLogin(true, loginDisplayName); err != nil {
		return fmt.Errorf("persist login: %w", err)
	}

	s.mu.Lock()
	s.route = "/profile"
	s.mu.Unlock()

	s.logger.WithField("provider", provider).Info("user logged in")
	return nil
}

// Logout полностью очищает локальные настройки (включая избранное)
// и возвращает на главную.
func (s *Shell) Logout() error {
	if err := s.prefs.Clear(); err != nil {
		return fmt.Errorf("clear prefs: %w", err)
	}

	s.mu.Lock()
	s.route = "/"
	s.mu.Unlock()

	s.logger.Info("user logged out")
	return nil
}

// IsLoggedIn сообщает, выполнен ли вход.
func (s *Shell) IsLoggedIn() bool {
	return s.prefs.Snapshot().IsLoggedIn
}

// UserName возвращает отображаемое имя из настроек.
func (s *Shell) UserName() string {
	return s.prefs.Snapshot().UserName
}

// ResolveRoute применяет охрану маршрутов: профиль без входа ведёт на
// страницу входа. Остальные маршруты возвращаются как есть.
func (s *Shell) ResolveRoute(route string) string {
	if route == "/profile" && !s.IsLoggedIn() {
		return "/login"
	}
	return route
}

// Navigate переводит витрину на маршрут с учётом охраны.
func (s *Shell) Navigate(route string) string {
	resolved := s.ResolveRoute(route)
	s.mu.Lock()
	s.route = resolved
	s.mu.Unlock()
	return resolved
}

// Route возвращает текущий маршрут.
func (s *Shell) Route() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

// --- Избранное ---

// ToggleFavorite добавляет товар в избранное либо убирает его оттуда.
// Порядок добавления сохраняется; изменение сразу пишется на диск.
func (s *Shell) ToggleFavorite(productID int64) error {
	state := s.prefs.Snapshot()

	favorites := make([]int64, 0, len(state.Favorites)+1)
	found := false
	for _, id := range state.Favorites {
		if id == productID {
			found = true
			continue
		}
		favorites = append(favorites, id)
	}
	if !found {
		favorites = append(favorites, productID)
	}

	if err := s.prefs.SetFavorites(favorites); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}
	if s.metrics != nil {
		s.metrics.RecordFavoriteToggle()
	}
	return nil
}

// Favorites возвращает копию списка избранного в порядке добавления.
func (s *Shell) Favorites() []int64 {
	return s.prefs.Snapshot().Favorites
}

// IsFavorite сообщает, помечен ли товар как избранный.
func (s *Shell) IsFavorite(productID int64) bool {
	for _, id := range s.prefs.Snapshot().Favorites {
		if id == productID {
			return true
		}
	}
	return false
}

// --- Имитация заказов ---

// Purchase мгновенно оформляет «оплаченный» заказ и планирует его
// автоотгрузку через фиксированную задержку. Заказ живёт только в памяти
// витрины и на сервис не уходит.
func (s *Shell) Purchase(product domain.Product, quantity int) domain.SimulatedOrder {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := domain.SimulatedOrder{
		ID:        s.nextOrderIDLocked(),
		Name:      product.Name,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  quantity,
		Status:    domain.SimulatedOrderStatusPaid,
		Location:  locationPreparing,
		CreatedAt: time.Now(),
	}
	s.orders = append([]domain.SimulatedOrder{order}, s.orders...)

	if s.metrics != nil {
		s.metrics.RecordPurchase()
	}
	s.logger.WithFields(log.Fields{
		"order_id": order.ID,
		"product":  product.Name,
		"quantity": quantity,
	}).Info("simulated purchase placed")

	if !s.closed {
		s.scheduleLocked(s.dispatchDelay, func() {
			s.dispatchOrder(order.ID, product.Name)
		})
	}
	return order
}

// dispatchOrder переводит заказ в доставку и кладёт логистическое
// уведомление первым в ленту.
func (s *Shell) dispatchOrder(orderID, productName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		s.orders[i].Status = domain.SimulatedOrderStatusInTransit
		s.orders[i].Location = locationInTransit

		s.notifications = append([]domain.Notification{{
			ID:        s.nextNotificationID(),
			Title:     notificationTitleLogistics,
			Body:      fmt.Sprintf(dispatchNotificationBody, productName),
			TimeLabel: notificationTimeJustNow,
			Kind:      domain.NotificationKindLogistics,
		}}, s.notifications...)

		if s.metrics != nil {
			s.metrics.RecordDispatchTransition()
			s.metrics.RecordNotification()
		}
		s.logger.WithField("order_id", orderID).Info("simulated order dispatched")
		return
	}
}

// nextOrderIDLocked выдаёт идентификатор вида DB<millis>. При двух покупках
// в одну миллисекунду счётчик сдвигается вперёд, чтобы идентификаторы
// оставались уникальными и растущими.
func (s *Shell) nextOrderIDLocked() string {
	millis := time.Now().UnixMilli()
	if millis <= s.lastOrderMillis {
		millis = s.lastOrderMillis + 1
	}
	s.lastOrderMillis = millis
	return fmt.Sprintf("DB%d", millis)
}

func (s *Shell) nextNotificationID() string {
	s.notificationSeq++
	return fmt.Sprintf("N%d", s.notificationSeq)
}

// PushNotification добавляет уведомление первым в ленту.
func (s *Shell) PushNotification(title, body string, kind domain.NotificationKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append([]domain.Notification{{
		ID:        s.nextNotificationID(),
		Title:     title,
		Body:      body,
		TimeLabel: notificationTimeJustNow,
		Kind:      kind,
	}}, s.notifications...)

	if s.metrics != nil {
		s.metrics.RecordNotification()
	}
}

// Orders возвращает копию списка имитируемых заказов, новые первыми.
func (s *Shell) Orders() []domain.SimulatedOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.SimulatedOrder(nil), s.orders...)
}

// Notifications возвращает копию ленты уведомлений, новые первыми.
func (s *Shell) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.notifications...)
}

// recordRemoteFailure отмечает неудачный вызов API в метриках.
func (s *Shell) recordRemoteFailure() {
	if s.metrics != nil {
		s.metrics.RecordRemoteFailure()
	}
}

// --- Таймеры ---

// scheduleLocked ставит одноразовый таймер, принадлежащий Shell.
// Вызывается под мьютексом.
func (s *Shell) scheduleLocked(delay time.Duration, fn func()) {
	if s.metrics != nil {
		s.metrics.RecordTimerScheduled()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		_, pending := s.timers[timer]
		delete(s.timers, timer)
		closed := s.closed
		s.mu.Unlock()

		if s.metrics != nil {
			s.metrics.RecordTimerFinished()
		}
		if !pending || closed {
			return
		}
		fn()
	})
	s.timers[timer] = struct{}{}
}

// Close останавливает все отложенные таймеры. Уже оформленные заказы
// остаются в том состоянии, в котором их застал Close.
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for timer := range s.timers {
		if timer.Stop() && s.metrics != nil {
			s.metrics.RecordTimerFinished()
		}
	}
	s.timers = make(map[*time.Timer]struct{})
}
