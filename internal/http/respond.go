// Package httpapi exposes the inventory over a JSON HTTP API.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fairyhunter13/inventory-tracker/internal/inventory"
)

// jsonError represents a JSON error payload.
type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSONError writes a JSON error payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, jsonError{Error: message, Details: details})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON enforces a JSON content type and rejects unknown fields. It
// writes the error response itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func pathSKU(w http.ResponseWriter, r *http.Request) (int, bool) {
	sku, err := strconv.Atoi(r.PathValue("sku"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_sku", "sku must be an integer")
		return 0, false
	}
	return sku, true
}

// writeServiceError maps inventory errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, inventory.ErrStockUnderflow):
		WriteJSONError(w, http.StatusConflict, "stock_underflow", err.Error())
	case errors.Is(err, inventory.ErrStockOverflow):
		WriteJSONError(w, http.StatusConflict, "stock_overflow", err.Error())
	case errors.Is(err, inventory.ErrSalesExceedStock):
		WriteJSONError(w, http.StatusConflict, "sales_exceed_stock", err.Error())
	case errors.Is(err, inventory.ErrInvalidProduct), errors.Is(err, inventory.ErrInvalidQuantity):
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}
