// Package catalog содержит чистые операции над списком товаров:
// поиск и группировка для главной страницы витрины.
package catalog

import (
	"strings"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

// Filter возвращает товары, у которых имя, описание или категория
// содержит подстроку query. Сравнение чувствительно к регистру.
// Пустой запрос возвращает исходный список целиком.
func Filter(products []domain.Product, query string) []domain.Product {
	if query == "" {
		return products
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(product.Name, query) ||
			strings.Contains(product.Description, query) ||
			strings.Contains(product.Category, query) {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// CategoryGroup — одна категория и её товары в исходном порядке каталога.
type CategoryGroup struct {
	Category string
	Products []domain.Product
}

// GroupByCategory разбивает товары по категориям. Порядок категорий —
// порядок первого появления в списке; пустых групп не бывает.
func GroupByCategory(products []domain.Product) []CategoryGroup {
	index := make(map[string]int, len(products))
	groups := make([]CategoryGroup, 0)

	for _, product := range products {
		i, ok := index[product.Category]
		if !ok {
			i = len(groups)
			index[product.Category] = i
			groups = append(groups, CategoryGroup{Category: product.Category})
		}
		groups[i].Products = append(groups[i].Products, product)
	}
	return groups
}
