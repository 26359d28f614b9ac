package kafka

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType определяет тип события
type EventType string

const (
	// Cart события
	EventTypeCartItemAdded   EventType = "cart.item_added"
	EventTypeCartItemRemoved EventType = "cart.item_removed"

	// Order события
	EventTypeOrderCheckedOut EventType = "order.checked_out"
)

// Topics для Kafka
const (
	TopicCartEvents  = "mall.cart.events"
	TopicOrderEvents = "mall.order.events"
)

// CartEvent представляет событие изменения корзины
type CartEvent struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id,omitempty"`
	CartID    int64     `json:"cart_id,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderCheckedOutEvent представляет событие оформления заказа
type OrderCheckedOutEvent struct {
	EventID   string          `json:"event_id"`
	EventType EventType       `json:"event_type"`
	OrderID   int64           `json:"order_id"`
	UserID    int64           `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewCartItemAddedEvent создает событие добавления товара в корзину
func NewCartItemAddedEvent(userID, productID int64, quantity int) CartEvent {
	return CartEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeCartItemAdded,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Timestamp: time.Now().UTC(),
	}
}

// NewCartItemRemovedEvent создает событие удаления строки корзины
func NewCartItemRemovedEvent(userID, cartID int64) CartEvent {
	return CartEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeCartItemRemoved,
		UserID:    userID,
		CartID:    cartID,
		Timestamp: time.Now().UTC(),
	}
}

// NewOrderCheckedOutEvent создает событие оформленного заказа
func NewOrderCheckedOutEvent(orderID, userID int64, total decimal.Decimal, itemCount int) OrderCheckedOutEvent {
	return OrderCheckedOutEvent{
		EventID:   uuid.NewString(),
		EventType: EventTypeOrderCheckedOut,
		OrderID:   orderID,
		UserID:    userID,
		Total:     total,
		ItemCount: itemCount,
		Timestamp: time.Now().UTC(),
	}
}
