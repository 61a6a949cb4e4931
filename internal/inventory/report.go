package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AdviceKind classifies a recommendation.
type AdviceKind string

const (
	AdviceStockMore   AdviceKind = "stock_more"
	AdviceStockLess   AdviceKind = "stock_less"
	AdviceSellingWell AdviceKind = "selling_well"
	AdviceLowerSales  AdviceKind = "lower_sales"
)

// Advice is one recommendation line for a product.
type Advice struct {
	SKU     int        `json:"sku"`
	Name    string     `json:"name"`
	Kind    AdviceKind `json:"kind"`
	Message string     `json:"message"`
}

var (
	stockMoreAbove = decimal.NewFromInt(1000)
	stockLessBelow = decimal.NewFromInt(4500)
)

const (
	sellingWellAbove = 50
	lowerSalesBelow  = 10
)

// Recommend returns stock and sales advice for every product in ascending SKU
// order. The revenue rule checks "> 1000" before "< 4500", so any revenue
// above 1000 gets "stock more" and only revenue up to 1000 gets "stock less".
// TODO: confirm the intended revenue thresholds with the product owner; the
// second branch reads as inverted.
func (s *Service) Recommend() []Advice {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Advice
	for p := range s.tree.InOrder() {
		revenue := p.Revenue()
		switch {
		case revenue.GreaterThan(stockMoreAbove):
			out = append(out, Advice{p.SKU, p.Name, AdviceStockMore,
				fmt.Sprintf("Recommend stocking more of %s. Revenue: $%s", p.Name, revenue)})
		case revenue.LessThan(stockLessBelow):
			out = append(out, Advice{p.SKU, p.Name, AdviceStockLess,
				fmt.Sprintf("Recommend stocking less of %s. Revenue: $%s", p.Name, revenue)})
		}
		switch {
		case p.UnitsSold > sellingWellAbove:
			out = append(out, Advice{p.SKU, p.Name, AdviceSellingWell,
				fmt.Sprintf("Product %s is selling well. Consider promoting it.", p.Name)})
		case p.UnitsSold < lowerSalesBelow:
			out = append(out, Advice{p.SKU, p.Name, AdviceLowerSales,
				fmt.Sprintf("Product %s has lower sales. Evaluate marketing strategies.", p.Name)})
		}
	}
	return out
}

// DisplayProducts returns one formatted line per product in ascending SKU
// order.
func (s *Service) DisplayProducts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, s.tree.Len())
	for p := range s.tree.InOrder() {
		lines = append(lines, fmt.Sprintf(
			"Name: %s\tSKU: %d\tStock: %d\tCost Price: $%s\tCost: $%s\tUnits Sold: %d\tRevenue: $%s\tProfitability: $%s",
			p.Name, p.SKU, p.Stock, p.UnitPrice, p.UnitCost, p.UnitsSold, p.Revenue(), p.Profitability(),
		))
	}
	return lines
}
