package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора товара в строке корзины.
	ErrProductIDRequired = errors.New("product_id is required")
	// Ошибка количества меньше единицы.
	ErrQuantityInvalid = errors.New("quantity must be at least one")
	// Ошибка отсутствующего идентификатора пользователя.
	ErrUserIDRequired = errors.New("user_id is required")
	// Ошибка заказа без позиций.
	ErrOrderItemsRequired = errors.New("order must contain at least one item")
	// Ошибка отрицательного итога заказа.
	ErrTotalNegative = errors.New("order total must be non-negative")
	// Ошибка отрицательной цены позиции.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка несоответствия итога заказа сумме позиций.
	ErrTotalMismatch = errors.New("order total does not match items sum")
	// Ошибка обязательного имени в профиле.
	ErrProfileNameRequired = errors.New("profile name is required")
	// Ошибка обязательного телефона в профиле.
	ErrProfilePhoneRequired = errors.New("profile phone is required")
	// ErrProductNotFound возвращается, если товара нет в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrCartLineNotFound возвращается, если строки корзины не существует.
	ErrCartLineNotFound = errors.New("cart line not found")
	// ErrCartEmpty — чекаут пустой корзины.
	ErrCartEmpty = errors.New("cart is empty")
	// ErrUserNotFound возвращается, если профиль не найден.
	ErrUserNotFound = errors.New("user not found")
)

// IsNotFound проверяет, относится ли ошибка к классу «не найдено».
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCartLineNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
