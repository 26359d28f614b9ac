package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus описывает статус оформленного заказа на стороне сервиса.
type OrderStatus string

const (
	// OrderStatusPendingPayment — заказ создан, ожидает оплаты.
	// Значение намеренно совпадает с тем, что пишет в базу оригинальный бэкенд.
	OrderStatusPendingPayment OrderStatus = "待付款"
)

// Order — заказ, созданный чекаутом корзины.
type Order struct {
	ID        int64
	UserID    int64
	Total     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
	Items     []OrderItem
}

// OrderItem — позиция заказа с зафиксированной на момент покупки ценой.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

// ValidateInvariants проверяет согласованность заказа и его позиций.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID <= 0 {
		errs = append(errs, ErrUserIDRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrOrderItemsRequired)
	}
	if o.Total.IsNegative() {
		errs = append(errs, ErrTotalNegative)
	}

	// Сверяем итог заказа с суммой позиций: qty * price.
	calc := decimal.Zero
	for _, item := range o.Items {
		if item.Quantity < 1 {
			errs = append(errs, ErrQuantityInvalid)
		}
		if item.Price.IsNegative() {
			errs = append(errs, ErrItemPriceInvalid)
		}
		calc = calc.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !calc.Equal(o.Total) {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}
