package domain

import "time"

// Product is the snapshot of a catalog entry the stores capture when an
// item is added. Display attributes beyond the priced fields ride along
// opaquely in Attrs and are never interpreted.
type Product struct {
	ID              string         `json:"uid"`
	Title           string         `json:"title,omitempty"`
	UnitPrice       float64        `json:"price"`
	DiscountPercent float64        `json:"discount_percentage,omitempty"`
	Attrs           map[string]any `json:"attributes,omitempty"`
}

// LineItem is one cart row: a product snapshot plus a quantity.
// There is exactly one line item per distinct product id and its
// quantity is always >= 1.
type LineItem struct {
	ID              string         `json:"uid"`
	Title           string         `json:"title,omitempty"`
	UnitPrice       float64        `json:"price"`
	DiscountPercent float64        `json:"discount_percentage,omitempty"`
	Quantity        int            `json:"quantity"`
	Attrs           map[string]any `json:"attributes,omitempty"`
}

// WishlistItem is a saved product. DateAdded is set at insertion and
// never mutated afterwards.
type WishlistItem struct {
	ID              string         `json:"uid"`
	Title           string         `json:"title,omitempty"`
	UnitPrice       float64        `json:"price"`
	DiscountPercent float64        `json:"discount_percentage,omitempty"`
	DateAdded       time.Time      `json:"date_added"`
	Attrs           map[string]any `json:"attributes,omitempty"`
}

// reserved product fields that map onto the typed snapshot rather than
// the opaque attribute bag
var pricedFields = map[string]bool{
	"uid":                 true,
	"title":               true,
	"price":               true,
	"discount_percentage": true,
}

// ProductFromRecord lifts a CMS record into a Product. Only the priced
// fields are interpreted; everything else is carried as-is.
func ProductFromRecord(r Record) Product {
	p := Product{
		ID:              r.String("uid"),
		Title:           r.String("title"),
		UnitPrice:       r.Float("price"),
		DiscountPercent: r.Float("discount_percentage"),
	}
	for k, v := range r {
		if pricedFields[k] {
			continue
		}
		if p.Attrs == nil {
			p.Attrs = make(map[string]any)
		}
		p.Attrs[k] = v
	}
	return p
}

// Line starts a cart row for the product with the given quantity.
func (p Product) Line(quantity int) LineItem {
	return LineItem{
		ID:              p.ID,
		Title:           p.Title,
		UnitPrice:       p.UnitPrice,
		DiscountPercent: p.DiscountPercent,
		Quantity:        quantity,
		Attrs:           p.Attrs,
	}
}

// Saved turns the product into a wishlist entry stamped with now.
func (p Product) Saved(now time.Time) WishlistItem {
	return WishlistItem{
		ID:              p.ID,
		Title:           p.Title,
		UnitPrice:       p.UnitPrice,
		DiscountPercent: p.DiscountPercent,
		DateAdded:       now,
		Attrs:           p.Attrs,
	}
}
