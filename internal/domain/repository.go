package domain

// CatalogRepository отдаёт товары каталога.
type CatalogRepository interface {
	// List возвращает весь каталог в порядке загрузки.
	List() ([]Product, error)
	// Get возвращает товар или ErrProductNotFound.
	Get(id int64) (Product, error)
}

// CartRepository управляет строками корзины пользователя.
type CartRepository interface {
	// List возвращает строки корзины, соединённые с товарами.
	List(userID int64) ([]CartItem, error)
	// Add увеличивает количество существующей строки или создаёт новую.
	Add(userID, productID int64, quantity int) error
	// Remove удаляет строку; отсутствующая строка не считается ошибкой.
	Remove(cartID int64) error
	// Clear удаляет все строки пользователя.
	Clear(userID int64) error
}

// OrderRepository сохраняет оформленные заказы.
type OrderRepository interface {
	// Create сохраняет заказ вместе с позициями и возвращает его идентификатор.
	Create(order Order) (int64, error)
	// ListByUser возвращает заказы пользователя, новые первыми.
	ListByUser(userID int64, limit int) ([]Order, error)
}

// UserRepository хранит профили покупателей.
type UserRepository interface {
	// Get возвращает профиль или ErrUserNotFound.
	Get(id int64) (UserProfile, error)
	// Update целиком заменяет поля профиля.
	Update(id int64, profile UserProfile) error
}
