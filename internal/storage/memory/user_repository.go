package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

// userRepositoryInMemory — in-memory реализация UserRepository.
type userRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[int64]domain.UserProfile
}

// NewUserRepository возвращает репозиторий с предзаполненным тестовым пользователем.
func NewUserRepository() domain.UserRepository {
	return &userRepositoryInMemory{
		items: map[int64]domain.UserProfile{
			DefaultUserID: SeedUser(),
		},
	}
}

// Get возвращает профиль или ErrUserNotFound.
func (r *userRepositoryInMemory) Get(id int64) (domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.items[id]
	if !ok {
		return domain.UserProfile{}, domain.ErrUserNotFound
	}
	return profile, nil
}

// Update целиком заменяет поля профиля существующего пользователя.
func (r *userRepositoryInMemory) Update(id int64, profile domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrUserNotFound
	}
	profile.ID = id
	r.items[id] = profile
	return nil
}

var _ domain.UserRepository = (*userRepositoryInMemory)(nil)
