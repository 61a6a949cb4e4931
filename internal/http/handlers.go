package httpapi

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/fairyhunter13/inventory-tracker/internal/config"
	httpopenapi "github.com/fairyhunter13/inventory-tracker/internal/http/openapi"
	"github.com/fairyhunter13/inventory-tracker/internal/inventory"
	"github.com/fairyhunter13/inventory-tracker/internal/model"
	"github.com/shopspring/decimal"
)

type App struct {
	Cfg       config.Config
	Inventory *inventory.Service
	closing   atomic.Bool
	started   time.Time
}

func NewApp(cfg config.Config, inv *inventory.Service) *App {
	return &App{Cfg: cfg, Inventory: inv, started: time.Now()}
}

// StartShutdown makes mutating endpoints answer 503.
func (a *App) StartShutdown() {
	a.closing.Store(true)
}

type productView struct {
	model.Product
	Revenue       decimal.Decimal `json:"revenue"`
	Profitability decimal.Decimal `json:"profitability"`
}

func viewOf(p model.Product) productView {
	return productView{Product: p, Revenue: p.Revenue(), Profitability: p.Profitability()}
}

type addProductRequest struct {
	Name      string           `json:"name"`
	SKU       *int             `json:"sku"`
	Stock     int              `json:"stock"`
	UnitCost  *decimal.Decimal `json:"unit_cost"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type stockRequest struct {
	Delta *int `json:"delta"`
}

type salesRequest struct {
	Units map[int]int `json:"units"`
}

type saleResult struct {
	SKU      int    `json:"sku"`
	Name     string `json:"name"`
	Units    int    `json:"units"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Stock    *int   `json:"stock,omitempty"`
	LowStock bool   `json:"low_stock,omitempty"`
}

type stockResult struct {
	Product     productView       `json:"product"`
	Transaction model.Transaction `json:"transaction"`
	LowStock    bool              `json:"low_stock"`
}

func (a *App) rejectIfClosing(w http.ResponseWriter) bool {
	if a.closing.Load() {
		WriteJSONError(w, http.StatusServiceUnavailable, "shutting_down", "")
		return true
	}
	return false
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	products := a.Inventory.Products()
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, viewOf(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": views})
}

func (a *App) postProductHandler(w http.ResponseWriter, r *http.Request) {
	if a.rejectIfClosing(w) {
		return
	}
	var req addProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "name is required")
		return
	}
	if req.SKU == nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "sku is required")
		return
	}
	if req.UnitCost == nil || req.UnitPrice == nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "unit_cost and unit_price are required")
		return
	}
	added, err := a.Inventory.AddProduct(req.Name, *req.SKU, req.Stock, *req.UnitCost, *req.UnitPrice)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	p, err := a.Inventory.Product(*req.SKU)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !added {
		writeJSON(w, http.StatusOK, map[string]any{"status": "duplicate_ignored", "product": viewOf(p)})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"status": "added", "product": viewOf(p)})
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	sku, ok := pathSKU(w, r)
	if !ok {
		return
	}
	p, err := a.Inventory.Product(sku)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(p))
}

func (a *App) postStockHandler(w http.ResponseWriter, r *http.Request) {
	if a.rejectIfClosing(w) {
		return
	}
	sku, ok := pathSKU(w, r)
	if !ok {
		return
	}
	var req stockRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Delta == nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "delta is required")
		return
	}
	up, err := a.Inventory.UpdateStock(sku, *req.Delta)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stockResult{
		Product:     viewOf(up.Product),
		Transaction: up.Transaction,
		LowStock:    up.LowStock,
	})
}

func (a *App) postSalesHandler(w http.ResponseWriter, r *http.Request) {
	if a.rejectIfClosing(w) {
		return
	}
	var req salesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Units) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "units is required")
		return
	}
	outcomes := a.Inventory.RecordSalesBatch(req.Units)
	results := make([]saleResult, 0, len(outcomes))
	for _, o := range outcomes {
		res := saleResult{SKU: o.SKU, Name: o.Name, Units: o.Units, Status: "accepted"}
		if o.Err != nil {
			res.Status = "rejected"
			if errors.Is(o.Err, inventory.ErrNotFound) {
				res.Status = "not_found"
			}
			res.Error = o.Err.Error()
		} else {
			stock := o.Update.Product.Stock
			res.Stock = &stock
			res.LowStock = o.Update.LowStock
		}
		results = append(results, res)
	}
	writeJSON(w, http.StatusOK, map[string]any{"outcomes": results})
}

func (a *App) recommendationsHandler(w http.ResponseWriter, r *http.Request) {
	advice := a.Inventory.Recommend()
	if advice == nil {
		advice = []inventory.Advice{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"recommendations": advice})
}

func (a *App) transactionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"transactions": a.Inventory.TransactionHistory()})
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	st := a.Inventory.Stats()
	m := map[string]any{
		"products":     st.Products,
		"tree_height":  st.TreeHeight,
		"transactions": st.Transactions,
		"uptime_sec":   time.Since(a.started).Seconds(),
	}
	writeJSON(w, http.StatusOK, m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(httpopenapi.DocsHTML)
}
