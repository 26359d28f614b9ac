package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics содержит метрики клиентского движка витрины.
type StorefrontMetrics struct {
	// Счётчики пользовательских операций
	purchases           prometheus.Counter
	dispatchTransitions prometheus.Counter
	notifications       prometheus.Counter
	favoriteToggles     prometheus.Counter
	remoteFailures      prometheus.Counter

	// Ответы чат-бота по типу
	chatReplies *prometheus.CounterVec

	// Gauge отложенных таймеров (доставка, ответы бота)
	pendingTimers prometheus.Gauge
}

// NewStorefrontMetrics создаёт метрики витрины в регистре по умолчанию.
func NewStorefrontMetrics() *StorefrontMetrics {
	return newStorefrontMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newStorefrontMetricsWithRegisterer(registerer prometheus.Registerer) *StorefrontMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &StorefrontMetrics{
		purchases: registerCounter(registerer, prometheus.CounterOpts{
			Name: "mall_storefront_purchases_total",
			Help: "Total number of simulated purchases placed",
		}),
		dispatchTransitions: registerCounter(registerer, prometheus.CounterOpts{
			Name: "mall_storefront_dispatch_transitions_total",
			Help: "Total number of simulated orders moved to in-transit",
		}),
		notifications: registerCounter(registerer, prometheus.CounterOpts{
			Name: "mall_storefront_notifications_total",
			Help: "Total number of notifications delivered to the feed",
		}),
		favoriteToggles: registerCounter(registerer, prometheus.CounterOpts{
			Name: "mall_storefront_favorite_toggles_total",
			Help: "Total number of favorite toggle operations",
		}),
		remoteFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "mall_storefront_remote_failures_total",
			Help: "Total number of failed calls to the mall API",
		}),
		chatReplies: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "mall_storefront_chat_replies_total",
			Help: "Total number of chat bot replies by kind",
		}, []string{"kind"}),
		pendingTimers: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "mall_storefront_pending_timers",
			Help: "Number of currently scheduled storefront timers",
		}),
	}
}

// RecordPurchase увеличивает счётчик оформленных покупок.
func (m *StorefrontMetrics) RecordPurchase() {
	m.purchases.Inc()
}

// RecordDispatchTransition увеличивает счётчик переходов заказа в доставку.
func (m *StorefrontMetrics) RecordDispatchTransition() {
	m.dispatchTransitions.Inc()
}

// RecordNotification увеличивает счётчик доставленных уведомлений.
func (m *StorefrontMetrics) RecordNotification() {
	m.notifications.Inc()
}

// RecordFavoriteToggle увеличивает счётчик переключений избранного.
func (m *StorefrontMetrics) RecordFavoriteToggle() {
	m.favoriteToggles.Inc()
}

// RecordRemoteFailure увеличивает счётчик неудачных вызовов API.
func (m *StorefrontMetrics) RecordRemoteFailure() {
	m.remoteFailures.Inc()
}

// RecordChatReply увеличивает счётчик ответов бота. scripted=false — это
// запасной ответ с переводом на оператора.
func (m *StorefrontMetrics) RecordChatReply(scripted bool) {
	kind := "scripted"
	if !scripted {
		kind = "fallback"
	}
	m.chatReplies.WithLabelValues(kind).Inc()
}

// RecordTimerScheduled увеличивает gauge отложенных таймеров.
func (m *StorefrontMetrics) RecordTimerScheduled() {
	m.pendingTimers.Inc()
}

// RecordTimerFinished уменьшает gauge отложенных таймеров.
func (m *StorefrontMetrics) RecordTimerFinished() {
	m.pendingTimers.Dec()
}
