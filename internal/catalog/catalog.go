package catalog

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Catalog holds the fixed product list and lookup indexes. It is built
// once at startup and never mutated afterwards.
type Catalog struct {
	products []Product
	byID     map[string]Product
	byName   map[string]Product
}

func New(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]Product, len(products)),
		byName:   make(map[string]Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
		c.byName[p.Name] = p
	}
	return c
}

// Default returns the catalog with the storefront's product list.
func Default() *Catalog {
	return New(storefrontProducts)
}

// Products returns the full list in menu order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByCategory returns products in the given category, preserving menu order.
func (c *Catalog) ByCategory(category string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) GetByID(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

func (c *Catalog) GetByName(name string) (Product, error) {
	p, ok := c.byName[name]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}

// PriceOf looks up the current unit price by product name.
func (c *Catalog) PriceOf(name string) (int, bool) {
	p, ok := c.byName[name]
	if !ok {
		return 0, false
	}
	return p.Price, true
}
