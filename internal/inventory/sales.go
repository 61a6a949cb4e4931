package inventory

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fairyhunter13/inventory-tracker/internal/model"
)

// SalesSupplier returns the units sold for p in the current pass. Returning
// ok == false skips the product.
type SalesSupplier func(p model.Product) (units int, ok bool)

// SaleOutcome is the result of one product's sale within a pass.
type SaleOutcome struct {
	SKU    int
	Name   string
	Units  int
	Update *StockUpdate
	Err    error
}

// Accepted reports whether the sale was applied.
func (o SaleOutcome) Accepted() bool { return o.Err == nil }

// RecordSales visits every product in ascending SKU order, asks supply for
// the units sold and applies each sale independently. A rejected sale leaves
// its product untouched and the pass continues.
func (s *Service) RecordSales(supply SalesSupplier) []SaleOutcome {
	var outcomes []SaleOutcome
	s.RecordSalesEach(supply, func(o SaleOutcome) {
		outcomes = append(outcomes, o)
	})
	return outcomes
}

// RecordSalesEach is RecordSales reporting each outcome to each as soon as
// it is known. The whole pass runs under the service lock, so neither supply
// nor each may call back into the service.
func (s *Service) RecordSalesEach(supply SalesSupplier, each func(SaleOutcome)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for p := range s.tree.InOrder() {
		units, ok := supply(p)
		if !ok {
			continue
		}
		o := SaleOutcome{SKU: p.SKU, Name: p.Name, Units: units}
		up, err := s.sell(p.SKU, units)
		if err != nil {
			o.Err = err
		} else {
			o.Update = &up
		}
		each(o)
	}
}

// RecordSalesBatch runs RecordSales with a precomputed SKU to units mapping.
// Products missing from units are skipped. SKUs in units that are not in the
// store follow the pass as ErrNotFound outcomes, in ascending order.
func (s *Service) RecordSalesBatch(units map[int]int) []SaleOutcome {
	visited := make(map[int]bool, len(units))
	outcomes := s.RecordSales(func(p model.Product) (int, bool) {
		n, ok := units[p.SKU]
		if ok {
			visited[p.SKU] = true
		}
		return n, ok
	})
	for _, sku := range slices.Sorted(maps.Keys(units)) {
		if visited[sku] {
			continue
		}
		outcomes = append(outcomes, SaleOutcome{
			SKU:   sku,
			Units: units[sku],
			Err:   s.reject("sale_rejected", sku, wrapNotFound(sku, ErrNotFound)),
		})
	}
	return outcomes
}

// sell applies one sale. Callers hold mu.
func (s *Service) sell(sku, units int) (StockUpdate, error) {
	if units < 0 {
		return StockUpdate{}, s.reject("sale_rejected", sku, fmt.Errorf("%w: sku %d, units %d", ErrInvalidQuantity, sku, units))
	}
	var updated model.Product
	err := s.tree.Update(sku, func(p *model.Product) error {
		if units > p.Stock {
			return fmt.Errorf("%w: sku %d has %d, sold %d", ErrSalesExceedStock, sku, p.Stock, units)
		}
		p.UnitsSold += units
		p.Stock -= units
		updated = *p
		return nil
	})
	if err != nil {
		return StockUpdate{}, s.reject("sale_rejected", sku, wrapNotFound(sku, err))
	}
	return s.commit(updated, -units, model.KindSale), nil
}
