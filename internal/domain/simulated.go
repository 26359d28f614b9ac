package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SimulatedOrderStatus описывает жизненный цикл имитируемого заказа на витрине.
type SimulatedOrderStatus string

const (
	// SimulatedOrderStatusPaid — покупка оформлена, ждёт «отгрузки».
	SimulatedOrderStatusPaid SimulatedOrderStatus = "paid"
	// SimulatedOrderStatusInTransit — заказ «отгружен» по таймеру диспетчеризации.
	SimulatedOrderStatusInTransit SimulatedOrderStatus = "in-transit"
)

// SimulatedOrder — клиентский заказ-имитация. Живёт только в памяти витрины,
// на сервис не синхронизируется и теряется при перезапуске.
type SimulatedOrder struct {
	ID        string
	Name      string
	Image     string
	Price     decimal.Decimal
	Quantity  int
	Status    SimulatedOrderStatus
	Location  string
	CreatedAt time.Time
}

// NotificationKind — категория уведомления.
type NotificationKind string

const (
	NotificationKindSystem    NotificationKind = "system"
	NotificationKindLogistics NotificationKind = "logistics"
)

// Notification — запись в центре уведомлений витрины. Список append-only,
// новые записи идут первыми, ничего не вычищается.
type Notification struct {
	ID        string
	Title     string
	Body      string
	TimeLabel string
	Kind      NotificationKind
}
