// Package inventory implements the product operations over the ordered store
// and the transaction ledger.
package inventory

import (
	"fmt"
	"math"
	"sync"

	"github.com/fairyhunter13/inventory-tracker/internal/ledger"
	"github.com/fairyhunter13/inventory-tracker/internal/model"
	"github.com/fairyhunter13/inventory-tracker/internal/obs"
	"github.com/fairyhunter13/inventory-tracker/internal/store"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is the stock level below which an accepted update
// raises a low stock alert.
const DefaultLowStockThreshold = 50

// Alert describes a product whose stock dropped below the threshold.
type Alert struct {
	SKU       int
	Name      string
	Stock     int
	Threshold int
}

// StockUpdate is the result of an accepted stock change.
type StockUpdate struct {
	Product     model.Product
	Transaction model.Transaction
	LowStock    bool
}

// Option configures a Service.
type Option func(*Service)

// WithLowStockThreshold overrides DefaultLowStockThreshold.
func WithLowStockThreshold(n int) Option {
	return func(s *Service) { s.threshold = n }
}

// WithMetrics records into m instead of a private registry.
func WithMetrics(m *obs.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithAlertHandler registers fn to observe low stock alerts. fn runs while
// the service lock is held and must not call back into the service.
func WithAlertHandler(fn func(Alert)) Option {
	return func(s *Service) { s.onAlert = fn }
}

// Service owns the product tree and the ledger. Every operation holds one
// exclusive lock over both for its whole duration.
type Service struct {
	mu        sync.Mutex
	tree      *store.Tree
	ledger    *ledger.Ledger
	threshold int
	metrics   *obs.Metrics
	onAlert   func(Alert)
}

// New returns an empty Service.
func New(opts ...Option) *Service {
	s := &Service{
		tree:      store.New(),
		ledger:    ledger.New(),
		threshold: DefaultLowStockThreshold,
	}
	for _, o := range opts {
		o(s)
	}
	if s.metrics == nil {
		s.metrics = obs.NewMetrics("inventory")
	}
	return s
}

// LowStockThreshold returns the alert threshold. It is fixed at construction
// and safe to read while a sales pass holds the lock.
func (s *Service) LowStockThreshold() int { return s.threshold }

// Metrics returns the collectors the service records into.
func (s *Service) Metrics() *obs.Metrics { return s.metrics }

// AddProduct inserts a new product with no units sold. It reports false when
// the SKU already exists; the existing product is left as it was.
func (s *Service) AddProduct(name string, sku, stock int, unitCost, unitPrice decimal.Decimal) (bool, error) {
	if stock < 0 {
		return false, fmt.Errorf("%w: stock %d is negative", ErrInvalidProduct, stock)
	}
	if unitCost.IsNegative() || unitPrice.IsNegative() {
		return false, fmt.Errorf("%w: unit cost and unit price must not be negative", ErrInvalidProduct)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tree.Insert(model.NewProduct(name, sku, stock, unitCost, unitPrice)) {
		obs.Logger.Info("product_duplicate_ignored", "sku", sku)
		return false, nil
	}
	s.metrics.SetStock(sku, name, stock)
	s.metrics.SetProducts(s.tree.Len())
	obs.Logger.Info("product_added", "sku", sku, "name", name, "stock", stock)
	return true, nil
}

// Seed adds the default catalogue.
func (s *Service) Seed() {
	for _, p := range SeedProducts() {
		_, _ = s.AddProduct(p.Name, p.SKU, p.Stock, p.UnitCost, p.UnitPrice)
	}
}

// SeedProducts returns the default catalogue loaded at startup.
func SeedProducts() []model.Product {
	return []model.Product{
		model.NewProduct("Laptop", 1001, 50, decimal.NewFromFloat(800.0), decimal.NewFromFloat(700.0)),
		model.NewProduct("Smartphone", 1002, 30, decimal.NewFromFloat(400.0), decimal.NewFromFloat(350.0)),
		model.NewProduct("Tablet", 1003, 20, decimal.NewFromFloat(300.0), decimal.NewFromFloat(250.0)),
	}
}

// UpdateStock applies delta to the stock of sku and records a transaction.
// A negative delta larger than the current stock is rejected with
// ErrStockUnderflow and a positive delta that would push stock past
// math.MaxInt with ErrStockOverflow; in both cases nothing changes.
func (s *Service) UpdateStock(sku, delta int) (StockUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var updated model.Product
	err := s.tree.Update(sku, func(p *model.Product) error {
		if delta < 0 && p.Stock+delta < 0 {
			return fmt.Errorf("%w: sku %d has %d, delta %d", ErrStockUnderflow, sku, p.Stock, delta)
		}
		if delta > 0 && p.Stock > math.MaxInt-delta {
			return fmt.Errorf("%w: sku %d has %d, delta %d", ErrStockOverflow, sku, p.Stock, delta)
		}
		p.Stock += delta
		updated = *p
		return nil
	})
	if err != nil {
		return StockUpdate{}, s.reject("stock_update_rejected", sku, wrapNotFound(sku, err))
	}
	return s.commit(updated, delta, model.KindAdjustment), nil
}

// Product returns the current state of sku.
func (s *Service) Product(sku int) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.tree.Find(sku)
	if !ok {
		return model.Product{}, wrapNotFound(sku, ErrNotFound)
	}
	return p, nil
}

// Products returns every product in ascending SKU order.
func (s *Service) Products() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, s.tree.Len())
	for p := range s.tree.InOrder() {
		out = append(out, p)
	}
	return out
}

// TransactionHistory returns the ledger, oldest first.
func (s *Service) TransactionHistory() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Entries()
}

// Stats summarizes the store for diagnostics.
type Stats struct {
	Products     int `json:"products"`
	TreeHeight   int `json:"tree_height"`
	Transactions int `json:"transactions"`
}

// Stats returns current store and ledger sizes.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Products:     s.tree.Len(),
		TreeHeight:   s.tree.Height(),
		Transactions: s.ledger.Len(),
	}
}

// commit records an accepted change of p's stock by delta. Callers hold mu.
func (s *Service) commit(p model.Product, delta int, kind model.TransactionKind) StockUpdate {
	tx := s.ledger.Append(p.SKU, delta, kind)
	s.metrics.Transaction(string(kind))
	s.metrics.SetStock(p.SKU, p.Name, p.Stock)
	obs.Logger.Info("stock_updated", "sku", p.SKU, "delta", delta, "stock", p.Stock, "kind", kind, "seq", tx.Seq)

	up := StockUpdate{Product: p, Transaction: tx}
	if p.Stock < s.threshold {
		up.LowStock = true
		s.metrics.LowStockAlert()
		obs.Logger.Warn("low_stock_alert", "sku", p.SKU, "name", p.Name, "stock", p.Stock, "threshold", s.threshold)
		if s.onAlert != nil {
			s.onAlert(Alert{SKU: p.SKU, Name: p.Name, Stock: p.Stock, Threshold: s.threshold})
		}
	}
	return up
}

func (s *Service) reject(event string, sku int, err error) error {
	reason := rejectionReason(err)
	s.metrics.Rejection(reason)
	obs.Logger.Warn(event, "sku", sku, "reason", reason, "error", err)
	return err
}

func wrapNotFound(sku int, err error) error {
	if err == ErrNotFound {
		return fmt.Errorf("product with SKU %d: %w", sku, ErrNotFound)
	}
	return err
}
