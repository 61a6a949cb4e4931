// Package store keeps products in an ordered tree keyed by SKU.
//
// The tree is an unbalanced binary search tree: its shape follows the order
// in which SKUs were inserted. Nodes live in an arena and link to their
// children by index. Tree is not safe for concurrent use; callers serialize
// access.
package store

import (
	"errors"
	"iter"

	"github.com/fairyhunter13/inventory-tracker/internal/model"
)

// ErrNotFound is returned when no product carries the requested SKU.
var ErrNotFound = errors.New("product not found")

const nilNode = -1

type node struct {
	p     model.Product
	left  int
	right int
}

// Tree is the ordered product store.
type Tree struct {
	nodes []node
	root  int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: nilNode}
}

// Insert places p at its ordered position. Inserting a SKU that is already
// present leaves the existing product untouched and reports false.
func (t *Tree) Insert(p model.Product) bool {
	idx := len(t.nodes)
	fresh := node{p: p, left: nilNode, right: nilNode}
	if t.root == nilNode {
		t.nodes = append(t.nodes, fresh)
		t.root = idx
		return true
	}
	i := t.root
	for {
		n := &t.nodes[i]
		var link *int
		switch {
		case p.SKU < n.p.SKU:
			link = &n.left
		case p.SKU > n.p.SKU:
			link = &n.right
		default:
			return false
		}
		if *link == nilNode {
			// link points into the old backing array; append copies it over.
			*link = idx
			t.nodes = append(t.nodes, fresh)
			return true
		}
		i = *link
	}
}

func (t *Tree) locate(sku int) int {
	i := t.root
	for i != nilNode {
		n := &t.nodes[i]
		switch {
		case sku < n.p.SKU:
			i = n.left
		case sku > n.p.SKU:
			i = n.right
		default:
			return i
		}
	}
	return nilNode
}

// Find returns a copy of the product stored under sku.
func (t *Tree) Find(sku int) (model.Product, bool) {
	i := t.locate(sku)
	if i == nilNode {
		return model.Product{}, false
	}
	return t.nodes[i].p, true
}

// Update hands the stored product to fn for in-place mutation. fn must
// validate before it mutates: a non-nil error from fn is returned as is and
// the product is expected to be unchanged.
func (t *Tree) Update(sku int, fn func(p *model.Product) error) error {
	i := t.locate(sku)
	if i == nilNode {
		return ErrNotFound
	}
	n := &t.nodes[i]
	if err := fn(&n.p); err != nil {
		return err
	}
	// SKU is the key; keep it stable whatever fn did.
	n.p.SKU = sku
	return nil
}

// InOrder yields products in ascending SKU order. The walk uses an explicit
// stack so degenerate (list-shaped) trees do not grow the call stack.
func (t *Tree) InOrder() iter.Seq[model.Product] {
	return func(yield func(model.Product) bool) {
		var stack []int
		i := t.root
		for i != nilNode || len(stack) > 0 {
			for i != nilNode {
				stack = append(stack, i)
				i = t.nodes[i].left
			}
			i = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(t.nodes[i].p) {
				return
			}
			i = t.nodes[i].right
		}
	}
}

// Len returns the number of stored products.
func (t *Tree) Len() int { return len(t.nodes) }

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree) Height() int {
	if t.root == nilNode {
		return 0
	}
	height := 0
	level := []int{t.root}
	for len(level) > 0 {
		height++
		var next []int
		for _, i := range level {
			if l := t.nodes[i].left; l != nilNode {
				next = append(next, l)
			}
			if r := t.nodes[i].right; r != nilNode {
				next = append(next, r)
			}
		}
		level = next
	}
	return height
}
