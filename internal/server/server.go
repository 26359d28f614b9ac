// Package server реализует REST API магазина: каталог, корзина,
// оформление заказа и профиль покупателя. Сервис обслуживает одного
// демо-покупателя, аутентификации нет.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/metrics"
)

// defaultUserID — единственный покупатель демо-магазина.
const defaultUserID int64 = 1

func init() {
	// Цены в JSON отдаются числами, а не строками.
	decimal.MarshalJSONWithoutQuotes = true
}

// EventPublisher публикует доменные события магазина. Реализуется
// kafka-продьюсером; nil означает, что события никуда не уходят.
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}

// Dependencies — зависимости HTTP-сервера.
type Dependencies struct {
	Catalog   domain.CatalogRepository
	Cart      domain.CartRepository
	Orders    domain.OrderRepository
	Users     domain.UserRepository
	Publisher EventPublisher
	Metrics   *metrics.HTTPMetrics
}

// Server — HTTP-сервер REST API магазина.
type Server struct {
	catalog   domain.CatalogRepository
	cart      domain.CartRepository
	orders    domain.OrderRepository
	users     domain.UserRepository
	publisher EventPublisher
	metrics   *metrics.HTTPMetrics
	router    chi.Router
	logger    *log.Entry
}

// New создаёт сервер и собирает маршруты.
func New(deps Dependencies) *Server {
	s := &Server{
		catalog:   deps.Catalog,
		cart:      deps.Cart,
		orders:    deps.Orders,
		users:     deps.Users,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		logger:    log.WithField("component", "http-server"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(s.recordMetrics)
	r.Use(middleware.Recoverer)
	r.Use(allowAllCORS)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", s.handleListProducts)
		r.Get("/products/{productID}", s.handleGetProduct)
		r.Get("/cart", s.handleGetCart)
		r.Post("/cart", s.handleAddToCart)
		r.Delete("/cart/{cartID}", s.handleRemoveFromCart)
		r.Post("/orders/checkout", s.handleCheckout)
		r.Get("/user", s.handleGetUser)
		r.Put("/user", s.handleUpdateUser)
	})

	s.router = r
	return s
}

// Handler возвращает корневой http.Handler сервера.
func (s *Server) Handler() http.Handler {
	return s.router
}

// publish отправляет событие, если продьюсер подключён. Ошибка публикации
// не роняет запрос, только логируется.
func (s *Server) publish(topic, key string, event interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(topic, key, event); err != nil {
		s.logger.WithError(err).WithField("topic", topic).Error("failed to publish event")
	}
}
