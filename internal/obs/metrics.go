package obs

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the inventory collectors and the registry they live in.
// Each Metrics owns its registry so several services can coexist in tests.
type Metrics struct {
	Registry *prometheus.Registry

	stockLevel      *prometheus.GaugeVec
	transactions    *prometheus.CounterVec
	rejections      *prometheus.CounterVec
	lowStockAlerts  prometheus.Counter
	productsTracked prometheus.Gauge
}

// NewMetrics creates and registers the inventory collectors under namespace.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		stockLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stock_level",
			Help:      "Current on-hand units per product",
		}, []string{"sku", "name"}),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Accepted stock transactions by kind",
		}, []string{"kind"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Rejected stock operations by reason",
		}, []string{"reason"}),
		lowStockAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "low_stock_alerts_total",
			Help:      "Low stock alerts emitted after accepted updates",
		}),
		productsTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "products",
			Help:      "Number of products in the store",
		}),
	}
	m.Registry.MustRegister(m.stockLevel, m.transactions, m.rejections, m.lowStockAlerts, m.productsTracked)
	return m
}

// SetStock records the current stock of a product.
func (m *Metrics) SetStock(sku int, name string, stock int) {
	m.stockLevel.WithLabelValues(strconv.Itoa(sku), name).Set(float64(stock))
}

// SetProducts records the store size.
func (m *Metrics) SetProducts(n int) { m.productsTracked.Set(float64(n)) }

// Transaction counts an accepted transaction.
func (m *Metrics) Transaction(kind string) { m.transactions.WithLabelValues(kind).Inc() }

// Rejection counts a rejected operation.
func (m *Metrics) Rejection(reason string) { m.rejections.WithLabelValues(reason).Inc() }

// LowStockAlert counts an emitted low stock alert.
func (m *Metrics) LowStockAlert() { m.lowStockAlerts.Inc() }

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
