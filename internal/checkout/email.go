package checkout

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
	"github.com/bhushankhairnar-QA/giftshop/internal/form"
)

// orderEmailHTML renders the confirmation body: an order table with
// discounted prices, the total, and the customer's submitted fields.
func orderEmailHTML(order *domain.Order, fields []form.Field, symbol, name string) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">`)
	b.WriteString(`<h2>Order Confirmation</h2>`)
	fmt.Fprintf(&b, `<p><strong>Dear %s,</strong></p>`, html.EscapeString(name))
	b.WriteString(`<p>Thank you for your order! Your order has been placed successfully and is being processed.</p>`)
	fmt.Fprintf(&b, `<p>Order ID: %s<br>Order Date: %s</p>`,
		html.EscapeString(order.ID), order.PlacedAt.Format("Jan 2, 2006 15:04"))

	b.WriteString(`<h3>Order Details</h3>`)
	b.WriteString(`<table style="width: 100%; border-collapse: collapse;">`)
	b.WriteString(`<thead><tr><th align="left">Product</th><th align="center">Qty</th><th align="right">Price</th><th align="right">Total</th></tr></thead><tbody>`)
	for _, item := range order.Items {
		unit := domain.DiscountedUnitPrice(item.UnitPrice, item.DiscountPercent)
		fmt.Fprintf(&b,
			`<tr><td>%s</td><td align="center">%d</td><td align="right">%s%s</td><td align="right">%s%s</td></tr>`,
			html.EscapeString(item.Title), item.Quantity,
			symbol, formatAmount(unit),
			symbol, formatAmount(domain.LineTotal(item)))
	}
	b.WriteString(`</tbody><tfoot>`)
	fmt.Fprintf(&b,
		`<tr><td colspan="3" align="right"><strong>Total Amount:</strong></td><td align="right"><strong>%s%s</strong></td></tr>`,
		symbol, formatAmount(order.TotalPrice))
	b.WriteString(`</tfoot></table>`)

	b.WriteString(`<h3>Customer Information</h3>`)
	for _, field := range fields {
		fmt.Fprintf(&b, `<p><strong>%s:</strong> %s</p>`,
			html.EscapeString(field.Label), html.EscapeString(order.Customer[field.Key]))
	}

	b.WriteString(`<p style="font-size: 12px; color: #94a3b8;">This is an automated confirmation email. Please keep this for your records.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}

// formatAmount prints whole amounts without a decimal tail and keeps
// fractional ones as-is.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
