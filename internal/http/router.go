package httpapi

import (
	"expvar"
	"net/http"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", app.listProductsHandler)
	mux.HandleFunc("POST /products", app.postProductHandler)
	mux.HandleFunc("GET /products/{sku}", app.getProductHandler)
	mux.HandleFunc("POST /products/{sku}/stock", app.postStockHandler)
	mux.HandleFunc("POST /sales", app.postSalesHandler)
	mux.HandleFunc("GET /recommendations", app.recommendationsHandler)
	mux.HandleFunc("GET /transactions", app.transactionsHandler)
	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.Handle("GET /metrics", app.Inventory.Metrics().Handler())
	mux.HandleFunc("GET /debug/metrics", app.metricsHandler)
	mux.Handle("GET /debug/vars", expvar.Handler())
	mux.HandleFunc("GET /openapi.yaml", app.openapiHandler)
	mux.HandleFunc("GET /docs", app.docsHandler)
	return WithRequestID(WithLogging(WithRecover(mux)))
}
