package catalog

// DefaultMaxDailyQty caps how many units of a product can be sold per
// day when the product does not carry its own limit.
const DefaultMaxDailyQty = 20

// Product is immutable reference data seeded at startup.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	MaxDailyQty int    `json:"max_daily_qty,omitempty"`
}

// DailyCap returns the per-day sellable limit for the product.
func (p Product) DailyCap() int {
	if p.MaxDailyQty > 0 {
		return p.MaxDailyQty
	}
	return DefaultMaxDailyQty
}

// Product categories as printed on the storefront.
const (
	CategoryBread   = "bread"
	CategoryToast   = "toast"
	CategoryDessert = "dessert"
	CategoryCookie  = "cookie"
	CategoryDrink   = "drink"
)
