package inventory

import (
	"errors"

	"github.com/fairyhunter13/inventory-tracker/internal/store"
)

// Errors reported by the service. Returned errors wrap these with the SKU
// and quantities involved; match them with errors.Is.
var (
	ErrNotFound         = store.ErrNotFound
	ErrStockUnderflow   = errors.New("stock underflow: cannot decrease stock below 0")
	ErrStockOverflow    = errors.New("stock overflow: increase exceeds the largest stock level")
	ErrSalesExceedStock = errors.New("units sold cannot exceed available stock")
	ErrInvalidQuantity  = errors.New("units sold cannot be negative")
	ErrInvalidProduct   = errors.New("invalid product")
)

// rejectionReason labels an error for metrics and logs.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrStockUnderflow):
		return "stock_underflow"
	case errors.Is(err, ErrStockOverflow):
		return "stock_overflow"
	case errors.Is(err, ErrSalesExceedStock):
		return "sales_exceed_stock"
	case errors.Is(err, ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, ErrInvalidProduct):
		return "invalid_product"
	default:
		return "other"
	}
}
