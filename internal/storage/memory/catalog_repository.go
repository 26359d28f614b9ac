package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

// catalogRepositoryInMemory — простая in-memory реализация CatalogRepository.
type catalogRepositoryInMemory struct {
	mu    sync.RWMutex
	order []int64
	items map[int64]domain.Product
}

// NewCatalogRepository возвращает каталог, заполненный стартовыми товарами.
func NewCatalogRepository() domain.CatalogRepository {
	return NewCatalogRepositoryWith(SeedProducts())
}

// NewCatalogRepositoryWith возвращает каталог с произвольным набором товаров,
// сохраняя порядок загрузки. Удобно для тестов.
func NewCatalogRepositoryWith(products []domain.Product) domain.CatalogRepository {
	repo := &catalogRepositoryInMemory{
		order: make([]int64, 0, len(products)),
		items: make(map[int64]domain.Product, len(products)),
	}
	for _, p := range products {
		repo.order = append(repo.order, p.ID)
		repo.items[p.ID] = p
	}
	return repo
}

// List возвращает копию каталога в порядке загрузки.
func (r *catalogRepositoryInMemory) List() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id])
	}
	return result, nil
}

// Get возвращает товар или ErrProductNotFound.
func (r *catalogRepositoryInMemory) Get(id int64) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

var _ domain.CatalogRepository = (*catalogRepositoryInMemory)(nil)
