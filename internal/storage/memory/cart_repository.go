package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

// cartRepositoryInMemory — in-memory реализация CartRepository поверх каталога.
type cartRepositoryInMemory struct {
	mu      sync.RWMutex
	catalog domain.CatalogRepository
	nextID  int64
	lines   map[int64]domain.CartLine
}

// NewCartRepository возвращает пустую корзину, соединяющую строки с каталогом.
func NewCartRepository(catalog domain.CatalogRepository) domain.CartRepository {
	return &cartRepositoryInMemory{
		catalog: catalog,
		nextID:  1,
		lines:   make(map[int64]domain.CartLine),
	}
}

// List возвращает строки корзины пользователя, соединённые с товарами,
// в порядке добавления.
func (r *cartRepositoryInMemory) List(userID int64) ([]domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]domain.CartLine, 0, len(r.lines))
	for _, line := range r.lines {
		if line.UserID != userID {
			continue
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })

	result := make([]domain.CartItem, 0, len(lines))
	for _, line := range lines {
		product, err := r.catalog.Get(line.ProductID)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.CartItem{
			CartID:   line.ID,
			Quantity: line.Quantity,
			Product:  product,
		})
	}
	return result, nil
}

// Add прибавляет quantity к существующей строке или создаёт новую.
// Отрицательное значение уменьшает количество: так клиент убавляет
// товар в корзине.
func (r *cartRepositoryInMemory) Add(userID, productID int64, quantity int) error {
	if _, err := r.catalog.Get(productID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for id, line := range r.lines {
		if line.UserID == userID && line.ProductID == productID {
			line.Quantity += quantity
			r.lines[id] = line
			return nil
		}
	}

	line := domain.CartLine{
		ID:        r.nextID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	r.nextID++
	r.lines[line.ID] = line
	return nil
}

// Remove удаляет строку корзины. Отсутствие строки не считается ошибкой:
// повторное удаление идемпотентно.
func (r *cartRepositoryInMemory) Remove(cartID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lines, cartID)
	return nil
}

// Clear удаляет все строки пользователя.
func (r *cartRepositoryInMemory) Clear(userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, line := range r.lines {
		if line.UserID == userID {
			delete(r.lines, id)
		}
	}
	return nil
}

var _ domain.CartRepository = (*cartRepositoryInMemory)(nil)
