package obs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitLoggerToFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "warn")
	Logger.Info("hidden")
	Logger.Warn("low_stock_alert", "sku", 1001)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered: %s", out)
	}
	if !strings.Contains(out, `"msg":"low_stock_alert"`) || !strings.Contains(out, `"sku":1001`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestMetricsCollectors(t *testing.T) {
	m := NewMetrics("test")
	m.SetStock(1001, "Laptop", 40)
	m.Transaction("sale")
	m.Transaction("sale")
	m.Rejection("stock_underflow")
	m.LowStockAlert()
	m.SetProducts(3)

	if got := testutil.ToFloat64(m.stockLevel.WithLabelValues("1001", "Laptop")); got != 40 {
		t.Fatalf("stock gauge: %v", got)
	}
	if got := testutil.ToFloat64(m.transactions.WithLabelValues("sale")); got != 2 {
		t.Fatalf("transactions: %v", got)
	}
	if got := testutil.ToFloat64(m.rejections.WithLabelValues("stock_underflow")); got != 1 {
		t.Fatalf("rejections: %v", got)
	}
	if got := testutil.ToFloat64(m.lowStockAlerts); got != 1 {
		t.Fatalf("alerts: %v", got)
	}
	if got := testutil.ToFloat64(m.productsTracked); got != 3 {
		t.Fatalf("products: %v", got)
	}
}
