package menu

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"
)

// Item is a single menu entry.
type Item struct {
	Name  string
	Price decimal.Decimal
}

// Menu is an immutable mapping from canonical item name to unit price. The
// zero value is an empty menu.
type Menu struct {
	prices map[string]decimal.Decimal
	items  []Item // sorted by name
}

var (
	// ErrEmptyName is returned when an item has no name.
	ErrEmptyName = errors.New("menu item name cannot be empty")
	// ErrDuplicateItem is returned when two items share a name.
	ErrDuplicateItem = errors.New("duplicate menu item")
	// ErrNotCanonical is returned when an item name is not in title case.
	ErrNotCanonical = errors.New("menu item name is not title-cased")
	// ErrNegativePrice is returned when an item costs less than zero.
	ErrNegativePrice = errors.New("menu item price cannot be negative")
)

// New builds a Menu from items. Every name must already be in the form
// Normalize produces, since lookups only ever see normalized input.
func New(items ...Item) (*Menu, error) {
	m := &Menu{
		prices: make(map[string]decimal.Decimal, len(items)),
		items:  make([]Item, 0, len(items)),
	}
	for _, it := range items {
		if it.Name == "" {
			return nil, ErrEmptyName
		}
		if Normalize(it.Name) != it.Name {
			return nil, fmt.Errorf("%w: %q (want %q)", ErrNotCanonical, it.Name, Normalize(it.Name))
		}
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("%w: %q costs %s", ErrNegativePrice, it.Name, it.Price)
		}
		if _, exists := m.prices[it.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItem, it.Name)
		}
		m.prices[it.Name] = it.Price
		m.items = append(m.items, it)
	}
	sort.Slice(m.items, func(i, j int) bool { return m.items[i].Name < m.items[j].Name })
	return m, nil
}

// Default returns the built-in taqueria menu.
func Default() *Menu {
	m, err := New(
		Item{Name: "Baja Taco", Price: decimal.RequireFromString("4.25")},
		Item{Name: "Burrito", Price: decimal.RequireFromString("7.50")},
		Item{Name: "Bowl", Price: decimal.RequireFromString("8.50")},
		Item{Name: "Nachos", Price: decimal.RequireFromString("11.00")},
		Item{Name: "Quesadilla", Price: decimal.RequireFromString("8.50")},
		Item{Name: "Super Burrito", Price: decimal.RequireFromString("8.50")},
		Item{Name: "Super Quesadilla", Price: decimal.RequireFromString("9.50")},
		Item{Name: "Taco", Price: decimal.RequireFromString("3.00")},
		Item{Name: "Tortilla Salad", Price: decimal.RequireFromString("8.00")},
	)
	if err != nil {
		// The literal above is fixed; failing here is a programmer error.
		panic(fmt.Errorf("built-in menu is invalid: %w", err))
	}
	return m
}

// Lookup returns the price of the item with exactly the given name.
func (m *Menu) Lookup(name string) (decimal.Decimal, bool) {
	if m == nil {
		return decimal.Zero, false
	}
	price, ok := m.prices[name]
	return price, ok
}

// Items returns a copy of the entries, sorted by name.
func (m *Menu) Items() []Item {
	if m == nil {
		return nil
	}
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Len reports the number of entries.
func (m *Menu) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// Fprint writes the menu to w as an aligned two-column listing.
func (m *Menu) Fprint(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, it := range m.Items() {
		if _, err := fmt.Fprintf(tw, "%s\t$%s\n", it.Name, it.Price.StringFixedBank(2)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
