package domain

import "github.com/shopspring/decimal"

// Product — товар каталога. С точки зрения клиента товар неизменяем:
// каталог владеет данными, витрина их только читает.
type Product struct {
	ID          int64           `json:"id"`
	Category    string          `json:"category"`
	Name        string          `json:"name"`
	Subtitle    string          `json:"subtitle"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Tags        string          `json:"tags"`
}

// CartLine — строка корзины: ссылка на товар и количество.
type CartLine struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
}

// ValidateInvariants проверяет базовые инварианты строки корзины.
func (l *CartLine) ValidateInvariants() []error {
	var errs []error

	if l.ProductID <= 0 {
		errs = append(errs, ErrProductIDRequired)
	}
	if l.Quantity < 1 {
		errs = append(errs, ErrQuantityInvalid)
	}

	return errs
}

// CartItem — строка корзины, уже соединённая с товаром. Именно в таком
// виде её отдаёт API: cart_id + quantity + все поля товара.
type CartItem struct {
	CartID   int64 `json:"cart_id"`
	Quantity int   `json:"quantity"`
	Product
}

// LineTotal возвращает стоимость строки: цена × количество.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartTotal суммирует стоимость всех строк корзины.
// Это единственный итог, который видит покупатель.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
