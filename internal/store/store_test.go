package store

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/fairyhunter13/inventory-tracker/internal/model"
	"github.com/shopspring/decimal"
)

func product(name string, sku, stock int) model.Product {
	return model.NewProduct(name, sku, stock, decimal.NewFromInt(10), decimal.NewFromInt(12))
}

func TestTreeInsertThenFind(t *testing.T) {
	tr := New()
	for _, sku := range []int{50, 30, 70, 20, 40, 60, 80} {
		if !tr.Insert(product("p", sku, sku)) {
			t.Fatalf("insert %d reported duplicate", sku)
		}
	}
	for _, sku := range []int{50, 30, 70, 20, 40, 60, 80} {
		got, ok := tr.Find(sku)
		if !ok {
			t.Fatalf("sku %d not found", sku)
		}
		if got.SKU != sku || got.Stock != sku {
			t.Fatalf("unexpected: %+v", got)
		}
	}
	if _, ok := tr.Find(99); ok {
		t.Fatalf("expected 99 to be absent")
	}
	if tr.Len() != 7 || tr.Height() != 3 {
		t.Fatalf("expected len 7 height 3, got %d %d", tr.Len(), tr.Height())
	}
}

func TestTreeDuplicateInsertIsNoop(t *testing.T) {
	tr := New()
	tr.Insert(product("first", 1, 5))
	if tr.Insert(product("second", 1, 99)) {
		t.Fatalf("expected duplicate insert to report false")
	}
	got, _ := tr.Find(1)
	if got.Name != "first" || got.Stock != 5 {
		t.Fatalf("duplicate insert overwrote product: %+v", got)
	}
	if tr.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", tr.Len())
	}
}

func TestTreeInOrderSorted(t *testing.T) {
	tr := New()
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		tr.Insert(product("p", r.Intn(1000), 1))
	}
	prev := -1
	n := 0
	for p := range tr.InOrder() {
		if p.SKU <= prev {
			t.Fatalf("not strictly ascending: %d after %d", p.SKU, prev)
		}
		prev = p.SKU
		n++
	}
	if n != tr.Len() {
		t.Fatalf("traversal yielded %d of %d", n, tr.Len())
	}
}

func TestTreeInOrderDegenerate(t *testing.T) {
	tr := New()
	const n = 5000
	for sku := 1; sku <= n; sku++ {
		tr.Insert(product("p", sku, 0))
	}
	if tr.Height() != n {
		t.Fatalf("expected list-shaped tree of height %d, got %d", n, tr.Height())
	}
	want := 1
	for p := range tr.InOrder() {
		if p.SKU != want {
			t.Fatalf("expected %d, got %d", want, p.SKU)
		}
		want++
	}
	if want != n+1 {
		t.Fatalf("walk stopped at %d", want)
	}
}

func TestTreeInOrderRestartableAndStoppable(t *testing.T) {
	tr := New()
	for _, sku := range []int{3, 1, 2} {
		tr.Insert(product("p", sku, 0))
	}
	for range 2 {
		var got []int
		for p := range tr.InOrder() {
			got = append(got, p.SKU)
		}
		if len(got) != 3 || got[0] != 1 || got[2] != 3 {
			t.Fatalf("unexpected walk: %v", got)
		}
	}
	count := 0
	for range tr.InOrder() {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("expected early stop")
	}
	if New().Height() != 0 {
		t.Fatalf("empty tree height")
	}
	for range New().InOrder() {
		t.Fatalf("empty tree yielded a product")
	}
}

func TestTreeUpdate(t *testing.T) {
	tr := New()
	tr.Insert(product("p", 10, 5))
	err := tr.Update(10, func(p *model.Product) error {
		p.Stock += 3
		return nil
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := tr.Find(10)
	if got.Stock != 8 {
		t.Fatalf("expected 8, got %d", got.Stock)
	}

	errReject := errors.New("rejected")
	if err := tr.Update(10, func(p *model.Product) error { return errReject }); !errors.Is(err, errReject) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if err := tr.Update(11, func(p *model.Product) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
