// Package model defines domain types used by the service.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents the current state of one inventory item.
//
// SKU is the identity of the product and never changes after creation.
type Product struct {
	Name      string          `json:"name"`
	SKU       int             `json:"sku"`
	Stock     int             `json:"stock"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UnitsSold int             `json:"units_sold"`
}

// NewProduct returns a product that has not sold any units yet.
func NewProduct(name string, sku, stock int, unitCost, unitPrice decimal.Decimal) Product {
	return Product{
		Name:      name,
		SKU:       sku,
		Stock:     stock,
		UnitCost:  unitCost,
		UnitPrice: unitPrice,
	}
}

// Revenue is units sold multiplied by unit price.
func (p Product) Revenue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.UnitsSold)))
}

// Profitability is the realized margin on sold units plus the acquisition
// value of the remaining stock.
func (p Product) Profitability() decimal.Decimal {
	margin := p.UnitPrice.Sub(p.UnitCost).Mul(decimal.NewFromInt(int64(p.UnitsSold)))
	held := p.UnitCost.Mul(decimal.NewFromInt(int64(p.Stock)))
	return margin.Add(held)
}

// TransactionKind tells what produced a ledger entry.
type TransactionKind string

const (
	KindAdjustment TransactionKind = "adjustment"
	KindSale       TransactionKind = "sale"
)

// Transaction is an immutable record of a stock delta applied to a SKU.
type Transaction struct {
	Seq      uint64          `json:"seq"`
	ID       string          `json:"id"`
	SKU      int             `json:"sku"`
	Quantity int             `json:"quantity"`
	Kind     TransactionKind `json:"kind"`
	At       time.Time       `json:"at"`
}
