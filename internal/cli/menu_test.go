package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fairyhunter13/inventory-tracker/internal/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) (*inventory.Service, string) {
	t.Helper()
	inv := inventory.New()
	inv.Seed()
	var out bytes.Buffer
	require.NoError(t, New(inv, strings.NewReader(input), &out).Run())
	return inv, out.String()
}

func TestMenuExit(t *testing.T) {
	_, out := run(t, "7\n")
	assert.Contains(t, out, "Enter your choice: ")
	assert.True(t, strings.HasSuffix(out, "Exiting program.\n"))
}

func TestMenuEOFEndsLoop(t *testing.T) {
	_, out := run(t, "2\n")
	assert.Contains(t, out, "Product List (Sorted by SKU):")
}

func TestMenuInvalidChoice(t *testing.T) {
	_, out := run(t, "9\nabc\n7\n")
	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Try again."))
}

func TestMenuDisplayProducts(t *testing.T) {
	_, out := run(t, "2\n7\n")
	assert.Contains(t, out, "Name: Laptop\tSKU: 1001\tStock: 50\tCost Price: $700\tCost: $800")
	assert.Less(t, strings.Index(out, "SKU: 1001"), strings.Index(out, "SKU: 1003"))
}

func TestMenuAddProduct(t *testing.T) {
	inv, out := run(t, "1\nGaming Mouse\n1500\n80\n20.5\n35\n1\nDup\n1500\n1\n1\n1\n7\n")
	assert.Contains(t, out, "Product added successfully.")
	assert.Contains(t, out, "SKU 1500 already exists; product not changed.")
	p, err := inv.Product(1500)
	require.NoError(t, err)
	assert.Equal(t, "Gaming Mouse", p.Name)
	assert.Equal(t, 80, p.Stock)
	assert.Equal(t, "20.5", p.UnitCost.String())
}

func TestMenuAddProductBadNumber(t *testing.T) {
	inv, out := run(t, "1\nThing\nnope\n7\n")
	assert.Contains(t, out, `Invalid number: "nope"`)
	assert.Len(t, inv.Products(), 3)
}

func TestMenuUpdateStockOutcomes(t *testing.T) {
	inv, out := run(t, "3\n1001\n-10\n3\n1002\n-40\n3\n9999\n5\n3\n1003\n9223372036854775807\n7\n")
	assert.Contains(t, out, "Alert: Stock for Laptop is below 50. Current stock: 40\nStock updated successfully.")
	assert.Contains(t, out, "Error: Stock underflow. Cannot decrease stock below 0.")
	assert.Contains(t, out, "Product with SKU 9999 not found.")
	assert.Contains(t, out, "Error: Stock overflow. Quantity is too large.")
	tablet, err := inv.Product(1003)
	require.NoError(t, err)
	assert.Equal(t, 20, tablet.Stock)
}

func TestMenuRecordSales(t *testing.T) {
	inv, out := run(t, "5\n10\n0\n25\n6\n4\n7\n")
	assert.Contains(t, out, "Enter units sold for product Laptop (SKU: 1001): ")
	assert.Contains(t, out, "Enter units sold for product Tablet (SKU: 1003): ")
	assert.Contains(t, out, "Error: Units sold cannot exceed available stock.")
	assert.Contains(t, out, "Transaction History:\nSKU: 1001\tQuantity: -10\nSKU: 1002\tQuantity: 0\n"+rule)
	assert.Contains(t, out, "Recommend stocking more of Laptop. Revenue: $7000")

	tablet, err := inv.Product(1003)
	require.NoError(t, err)
	assert.Equal(t, 20, tablet.Stock)
	assert.Zero(t, tablet.UnitsSold)
}

func TestMenuRecordSalesInputEndsEarly(t *testing.T) {
	inv, _ := run(t, "5\n3\n")
	assert.Len(t, inv.TransactionHistory(), 1)
}
