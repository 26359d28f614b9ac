package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
	"github.com/vladislavdragonenkov/dongbei-mall/internal/messaging/kafka"
)

type messageResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type checkoutResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

type addToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.List()
	if err != nil {
		s.internalError(w, "list products", err)
		return
	}
	s.respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		s.respondDetail(w, http.StatusBadRequest, "商品不存在")
		return
	}

	product, err := s.catalog.Get(id)
	if err != nil {
		if domain.IsNotFound(err) {
			s.respondDetail(w, http.StatusNotFound, "商品不存在")
			return
		}
		s.internalError(w, "get product", err)
		return
	}
	s.respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	items, err := s.cart.List(defaultUserID)
	if err != nil {
		s.internalError(w, "list cart", err)
		return
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	req := addToCartRequest{Quantity: 1}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "请求格式错误")
		return
	}

	if err := s.cart.Add(defaultUserID, req.ProductID, req.Quantity); err != nil {
		if domain.IsNotFound(err) {
			s.respondDetail(w, http.StatusNotFound, "商品不存在")
			return
		}
		s.internalError(w, "add to cart", err)
		return
	}

	s.publish(kafka.TopicCartEvents, strconv.FormatInt(defaultUserID, 10),
		kafka.NewCartItemAddedEvent(defaultUserID, req.ProductID, req.Quantity))

	s.respondJSON(w, http.StatusOK, messageResponse{Message: "已加入购物车"})
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	cartID, err := strconv.ParseInt(chi.URLParam(r, "cartID"), 10, 64)
	if err != nil {
		s.respondDetail(w, http.StatusBadRequest, "请求格式错误")
		return
	}

	// Удаление идемпотентно: несуществующая строка тоже "已移除".
	if err := s.cart.Remove(cartID); err != nil {
		s.internalError(w, "remove from cart", err)
		return
	}

	s.publish(kafka.TopicCartEvents, strconv.FormatInt(defaultUserID, 10),
		kafka.NewCartItemRemovedEvent(defaultUserID, cartID))

	s.respondJSON(w, http.StatusOK, messageResponse{Message: "已移除"})
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	items, err := s.cart.List(defaultUserID)
	if err != nil {
		s.internalError(w, "list cart for checkout", err)
		return
	}
	if len(items) == 0 {
		s.respondDetail(w, http.StatusBadRequest, "购物车为空")
		return
	}

	order := domain.Order{
		UserID:    defaultUserID,
		Total:     domain.CartTotal(items),
		Status:    domain.OrderStatusPendingPayment,
		CreatedAt: time.Now().UTC(),
	}
	for _, item := range items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	orderID, err := s.orders.Create(order)
	if err != nil {
		s.internalError(w, "create order", err)
		return
	}
	if err := s.cart.Clear(defaultUserID); err != nil {
		s.internalError(w, "clear cart", err)
		return
	}

	s.publish(kafka.TopicOrderEvents, strconv.FormatInt(orderID, 10),
		kafka.NewOrderCheckedOutEvent(orderID, defaultUserID, order.Total, len(items)))

	s.respondJSON(w, http.StatusOK, checkoutResponse{OrderID: orderID, Message: "下单成功"})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	profile, err := s.users.Get(defaultUserID)
	if err != nil {
		if domain.IsNotFound(err) {
			s.respondDetail(w, http.StatusNotFound, "用户不存在")
			return
		}
		s.internalError(w, "get user", err)
		return
	}
	s.respondJSON(w, http.StatusOK, profile)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var profile domain.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.respondDetail(w, http.StatusBadRequest, "请求格式错误")
		return
	}
	if errs := profile.ValidateInvariants(); len(errs) != 0 {
		s.respondDetail(w, http.StatusBadRequest, errors.Join(errs...).Error())
		return
	}

	if err := s.users.Update(defaultUserID, profile); err != nil {
		if domain.IsNotFound(err) {
			s.respondDetail(w, http.StatusNotFound, "用户不存在")
			return
		}
		s.internalError(w, "update user", err)
		return
	}
	s.respondJSON(w, http.StatusOK, messageResponse{Message: "信息已更新"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) respondDetail(w http.ResponseWriter, status int, detail string) {
	s.respondJSON(w, status, detailResponse{Detail: detail})
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.WithError(err).Errorf("%s failed", op)
	s.respondDetail(w, http.StatusInternalServerError, "服务器内部错误")
}
