package domain

import "math"

// DiscountedUnitPrice applies the discount percentage to the unit price.
// When a discount applies the result is rounded to the nearest whole
// currency unit; fractional subunits are deliberately not retained.
// Undiscounted prices pass through untouched.
func DiscountedUnitPrice(unitPrice, discountPercent float64) float64 {
	if discountPercent > 0 {
		return math.Round(unitPrice - unitPrice*discountPercent/100)
	}
	return unitPrice
}

// LineTotal is the discounted unit price times the quantity.
func LineTotal(item LineItem) float64 {
	return DiscountedUnitPrice(item.UnitPrice, item.DiscountPercent) * float64(item.Quantity)
}

// OrderTotal sums line totals across the collection.
func OrderTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += LineTotal(item)
	}
	return total
}
