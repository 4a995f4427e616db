package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics covers the order lifecycle and the broadcast fan-out.
type OrderMetrics struct {
	OrdersCreatedTotal   prometheus.CounterVec
	OrdersPaidTotal      prometheus.CounterVec
	OrdersCompletedTotal prometheus.CounterVec
	OrdersCancelledTotal prometheus.CounterVec

	OrdersCreatedAmountTotal prometheus.CounterVec

	WalletPoolMisses prometheus.Counter

	OrderErrorsTotal prometheus.CounterVec

	MailingDeliveredTotal prometheus.CounterVec
	MailingDuration       prometheus.Histogram
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders created, by network",
			},
			[]string{"network"},
		),

		OrdersPaidTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_paid_total",
				Help: "Orders moved to awaiting confirmation",
			},
			[]string{"network"},
		),

		OrdersCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_completed_total",
				Help: "Orders completed by an administrator",
			},
			[]string{"network"},
		),

		OrdersCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_cancelled_total",
				Help: "Orders cancelled, by cancelling role",
			},
			[]string{"network", "cancelled_by"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_usdt_total",
				Help: "Total created order volume in USDT",
			},
			[]string{"network"},
		),

		WalletPoolMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wallet_pool_misses_total",
				Help: "Order attempts rejected because no wallet matched the network",
			},
		),

		OrderErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_errors_total",
				Help: "Order operation failures, by operation",
			},
			[]string{"operation"},
		),

		MailingDeliveredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mailing_delivered_total",
				Help: "Broadcast deliveries, by result",
			},
			[]string{"result"},
		),

		MailingDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mailing_duration_seconds",
				Help:    "Broadcast fan-out duration",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}
