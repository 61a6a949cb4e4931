// Package cli is the interactive text menu over the inventory.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fairyhunter13/inventory-tracker/internal/inventory"
	"github.com/fairyhunter13/inventory-tracker/internal/model"
	"github.com/fairyhunter13/inventory-tracker/internal/obs"
	"github.com/shopspring/decimal"
)

const rule = "-----------------"

const menuText = `1. Add Product
2. Display Products
3. Update Stock
4. Recommend Stock Adjustments
5. Record Sales
6. View Transaction History
7. Exit
Enter your choice: `

// errEOF ends the menu loop when input runs out.
var errEOF = errors.New("end of input")

// Menu reads one answer per line from in and writes prompts and results to
// out.
type Menu struct {
	inv *inventory.Service
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Menu over inv.
func New(inv *inventory.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{inv: inv, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		choice, err := m.ask(menuText)
		if errors.Is(err, errEOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = m.addProduct()
		case "2":
			m.displayProducts()
		case "3":
			err = m.updateStock()
		case "4":
			m.recommend()
		case "5":
			err = m.recordSales()
		case "6":
			m.history()
		case "7":
			m.printf("Exiting program.\n")
			return nil
		default:
			m.printf("Invalid choice. Try again.\n")
		}
		if errors.Is(err, errEOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) ask(prompt string) (string, error) {
	m.printf("%s", prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) askInt(prompt string) (int, bool, error) {
	s, err := m.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(s)
	if convErr != nil {
		m.printf("Invalid number: %q\n", s)
		return 0, false, nil
	}
	return n, true, nil
}

func (m *Menu) askMoney(prompt string) (decimal.Decimal, bool, error) {
	s, err := m.ask(prompt)
	if err != nil {
		return decimal.Zero, false, err
	}
	d, convErr := decimal.NewFromString(s)
	if convErr != nil {
		m.printf("Invalid amount: %q\n", s)
		return decimal.Zero, false, nil
	}
	return d, true, nil
}

func (m *Menu) addProduct() error {
	name, err := m.ask("Enter product name: ")
	if err != nil {
		return err
	}
	sku, ok, err := m.askInt("Enter SKU: ")
	if err != nil || !ok {
		return err
	}
	stock, ok, err := m.askInt("Enter initial stock: ")
	if err != nil || !ok {
		return err
	}
	cost, ok, err := m.askMoney("Enter cost per unit: $")
	if err != nil || !ok {
		return err
	}
	price, ok, err := m.askMoney("Enter cost price: $")
	if err != nil || !ok {
		return err
	}
	added, addErr := m.inv.AddProduct(name, sku, stock, cost, price)
	switch {
	case addErr != nil:
		m.printf("Error: %v\n", addErr)
	case !added:
		m.printf("SKU %d already exists; product not changed.\n", sku)
	default:
		m.printf("Product added successfully.\n")
	}
	return nil
}

func (m *Menu) displayProducts() {
	m.printf("Product List (Sorted by SKU):\n")
	for _, line := range m.inv.DisplayProducts() {
		m.printf("%s\n", line)
	}
	m.printf("%s\n", rule)
}

func (m *Menu) updateStock() error {
	sku, ok, err := m.askInt("Enter SKU for stock update: ")
	if err != nil || !ok {
		return err
	}
	qty, ok, err := m.askInt("Enter quantity for stock update: ")
	if err != nil || !ok {
		return err
	}
	up, upErr := m.inv.UpdateStock(sku, qty)
	m.report(sku, up, upErr)
	return nil
}

// report prints the outcome of a stock change the way every menu entry does.
func (m *Menu) report(sku int, up inventory.StockUpdate, err error) {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		m.printf("Product with SKU %d not found.\n", sku)
	case errors.Is(err, inventory.ErrStockUnderflow):
		m.printf("Error: Stock underflow. Cannot decrease stock below 0.\n")
	case errors.Is(err, inventory.ErrStockOverflow):
		m.printf("Error: Stock overflow. Quantity is too large.\n")
	case errors.Is(err, inventory.ErrSalesExceedStock):
		m.printf("Error: Units sold cannot exceed available stock.\n")
	case errors.Is(err, inventory.ErrInvalidQuantity):
		m.printf("Error: Units sold cannot be negative.\n")
	case err != nil:
		m.printf("Error: %v\n", err)
	default:
		if up.LowStock {
			m.printf("Alert: Stock for %s is below %d. Current stock: %d\n",
				up.Product.Name, m.inv.LowStockThreshold(), up.Product.Stock)
		}
		m.printf("Stock updated successfully.\n")
	}
}

func (m *Menu) recommend() {
	m.printf("Stock Recommendations:\n")
	for _, a := range m.inv.Recommend() {
		m.printf("%s\n", a.Message)
	}
	m.printf("%s\n", rule)
}

func (m *Menu) recordSales() error {
	var readErr error
	supply := func(p model.Product) (int, bool) {
		if readErr != nil {
			return 0, false
		}
		units, ok, err := m.askInt(fmt.Sprintf("Enter units sold for product %s (SKU: %d): ", p.Name, p.SKU))
		if err != nil {
			readErr = err
			return 0, false
		}
		return units, ok
	}
	m.inv.RecordSalesEach(supply, func(o inventory.SaleOutcome) {
		var up inventory.StockUpdate
		if o.Update != nil {
			up = *o.Update
		}
		m.report(o.SKU, up, o.Err)
	})
	if readErr != nil && !errors.Is(readErr, errEOF) {
		obs.Logger.Error("sales_input_failed", "error", readErr)
	}
	return readErr
}

func (m *Menu) history() {
	m.printf("Transaction History:\n")
	for _, tx := range m.inv.TransactionHistory() {
		m.printf("SKU: %d\tQuantity: %d\n", tx.SKU, tx.Quantity)
	}
	m.printf("%s\n", rule)
}
