package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bhushankhairnar-QA/giftshop/internal/cart"
	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
	"github.com/bhushankhairnar-QA/giftshop/internal/form"
)

// ErrEmptyCart rejects a submit when there is nothing to order.
var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// ValidationError carries the per-field messages of a failed submit.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed for %d field(s)", len(e.Fields))
}

// Mailer delivers the order-confirmation email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Service runs the checkout transaction: validate the form, assemble the
// order, fire the confirmation email, clear the cart. The email is a
// side effect whose failure never blocks the order.
type Service struct {
	cart   *cart.Store
	mailer Mailer

	mu     sync.Mutex
	status Status
}

func NewService(cartStore *cart.Store, mailer Mailer) *Service {
	return &Service{cart: cartStore, mailer: mailer, status: StatusReady}
}

// Status returns where the current visit stands.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Submit validates the form and places the order. On validation failure
// the visit returns to READY with field errors; on success the
// confirmation email is launched fire-and-forget, the cart is cleared,
// and the order is returned with status SUBMITTED.
func (s *Service) Submit(ctx context.Context, eng *form.Engine) (*domain.Order, error) {
	if s.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	s.setStatus(StatusValidating)
	if !eng.Validate() {
		s.setStatus(StatusReady)
		return nil, &ValidationError{Fields: eng.Errors()}
	}

	s.setStatus(StatusSubmitting)
	items := s.cart.Items()
	order := &domain.Order{
		ID:         uuid.NewString(),
		Items:      items,
		ItemCount:  s.cart.ItemCount(),
		TotalPrice: s.cart.TotalPrice(),
		Customer:   eng.Values(),
		PlacedAt:   time.Now(),
	}

	s.sendConfirmation(order, eng)

	s.cart.Clear(ctx)
	s.setStatus(StatusSubmitted)
	return order, nil
}

// sendConfirmation launches the email without blocking the transaction.
// A missing recipient degrades silently; a send failure is logged only.
func (s *Service) sendConfirmation(order *domain.Order, eng *form.Engine) {
	to := recipientEmail(eng)
	if to == "" {
		log.Printf("no email field found in checkout form, skipping confirmation for order %s", order.ID)
		return
	}

	symbol := currencySymbol(order.Items)
	subject := fmt.Sprintf("Order Confirmation - %d Item(s) - %s%s",
		order.ItemCount, symbol, formatAmount(order.TotalPrice))
	body := orderEmailHTML(order, eng.Fields(), symbol, customerName(eng))

	go func() {
		if err := s.mailer.Send(context.Background(), to, subject, body); err != nil {
			log.Printf("order confirmation email failed (non-critical): %v", err)
		}
	}()
}

func (s *Service) setStatus(status Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// recipientEmail picks the first field whose key mentions email.
func recipientEmail(eng *form.Engine) string {
	for _, key := range eng.FieldOrder() {
		if strings.Contains(strings.ToLower(key), "email") {
			return eng.Value(key)
		}
	}
	return ""
}

// customerName picks the first name-ish field, defaulting to "Customer".
func customerName(eng *form.Engine) string {
	for _, key := range eng.FieldOrder() {
		lower := strings.ToLower(key)
		if strings.Contains(lower, "name") && !strings.Contains(lower, "email") {
			if v := eng.Value(key); v != "" {
				return v
			}
		}
	}
	return "Customer"
}

// currencySymbol reads the symbol off the first item's currency
// attribute, falling back to dollars like the catalog views do.
func currencySymbol(items []domain.LineItem) string {
	if len(items) == 0 {
		return "$"
	}
	if currency, ok := items[0].Attrs["currency"].(map[string]any); ok {
		if symbol, ok := currency["symbol"].(string); ok && symbol != "" {
			return symbol
		}
	}
	return "$"
}
