package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

// orderRepositoryInMemory — in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu         sync.RWMutex
	nextID     int64
	nextItemID int64
	items      map[int64]domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		nextID:     1,
		nextItemID: 1,
		items:      make(map[int64]domain.Order),
	}
}

// Create сохраняет заказ вместе с позициями и возвращает присвоенный идентификатор.
func (r *orderRepositoryInMemory) Create(order domain.Order) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++

	// Сохраняем копию позиций, чтобы избежать непредсказуемых мутаций извне.
	items := make([]domain.OrderItem, len(order.Items))
	copy(items, order.Items)
	for i := range items {
		items[i].ID = r.nextItemID
		items[i].OrderID = order.ID
		r.nextItemID++
	}
	order.Items = items

	r.items[order.ID] = order
	return order.ID, nil
}

// ListByUser возвращает заказы пользователя, новые первыми.
func (r *orderRepositoryInMemory) ListByUser(userID int64, limit int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if order.UserID != userID {
			continue
		}
		result = append(result, order)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
