package checkout

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bhushankhairnar-QA/giftshop/internal/cart"
	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
	"github.com/bhushankhairnar-QA/giftshop/internal/form"
	"github.com/bhushankhairnar-QA/giftshop/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMailer struct {
	m       sync.Mutex
	to      string
	subject string
	body    string
	sent    int
	err     error
}

func (m *mockMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.to = to
	m.subject = subject
	m.body = htmlBody
	m.sent++
	return m.err
}

func (m *mockMailer) sentCount() int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.sent
}

func (m *mockMailer) lastSend() (string, string, string) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.to, m.subject, m.body
}

func newFixture(t *testing.T) (*Service, *cart.Store, *mockMailer) {
	t.Helper()
	cartStore := cart.New(context.Background(), storage.NewMemoryStore(), "")
	mailer := &mockMailer{}
	return NewService(cartStore, mailer), cartStore, mailer
}

func checkoutForm() *form.Engine {
	eng := form.New(domain.Record{"full_name": "", "email": ""})
	eng.SetValues(map[string]string{
		"full_name": "Jane Doe",
		"email":     "jane@example.com",
	})
	return eng
}

func TestSubmit_EmptyCart(t *testing.T) {
	sut, _, mailer := newFixture(t)

	_, err := sut.Submit(context.Background(), checkoutForm())
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, mailer.sentCount())
}

func TestSubmit_InvalidFormBlocksOrder(t *testing.T) {
	ctx := context.Background()
	sut, cartStore, mailer := newFixture(t)
	cartStore.AddItem(ctx, domain.Product{ID: "p1", Title: "Mug", UnitPrice: 100})

	eng := form.New(domain.Record{"full_name": "", "email": ""})
	eng.SetValue("email", "jane@example.com") // full_name left empty

	_, err := sut.Submit(ctx, eng)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "full_name")
	assert.NotContains(t, verr.Fields, "email")

	// the cart is untouched and the visit is back to READY
	assert.False(t, cartStore.IsEmpty())
	assert.Equal(t, StatusReady, sut.Status())
	assert.Zero(t, mailer.sentCount())
}

func TestSubmit_CorrectedFormSubmitsOnce(t *testing.T) {
	ctx := context.Background()
	sut, cartStore, mailer := newFixture(t)
	cartStore.AddItem(ctx, domain.Product{ID: "p1", Title: "Mug", UnitPrice: 100, DiscountPercent: 20})
	cartStore.AddItem(ctx, domain.Product{ID: "p1", Title: "Mug", UnitPrice: 100, DiscountPercent: 20})

	eng := form.New(domain.Record{"full_name": "", "email": ""})
	eng.SetValue("email", "jane@example.com")

	_, err := sut.Submit(ctx, eng)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	eng.SetValue("full_name", "Jane Doe")
	order, err := sut.Submit(ctx, eng)
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 2, order.ItemCount)
	assert.Equal(t, float64(160), order.TotalPrice)
	assert.Equal(t, "Jane Doe", order.Customer["full_name"])
	assert.WithinDuration(t, time.Now(), order.PlacedAt, time.Minute)

	assert.True(t, cartStore.IsEmpty())
	assert.Equal(t, StatusSubmitted, sut.Status())
	assert.True(t, sut.Status().IsTerminal())

	require.Eventually(t, func() bool {
		return mailer.sentCount() == 1
	}, time.Second, 10*time.Millisecond, "confirmation email was not sent")

	to, subject, body := mailer.lastSend()
	assert.Equal(t, "jane@example.com", to)
	assert.Equal(t, "Order Confirmation - 2 Item(s) - $160", subject)
	assert.Contains(t, body, "Dear Jane Doe")
	assert.Contains(t, body, "Mug")
	assert.Contains(t, body, "$80") // discounted unit price
	assert.Contains(t, body, "Full Name")
}

func TestSubmit_MailerFailureDoesNotBlockOrder(t *testing.T) {
	ctx := context.Background()
	sut, cartStore, mailer := newFixture(t)
	mailer.err = fmt.Errorf("webhook down")
	cartStore.AddItem(ctx, domain.Product{ID: "p1", Title: "Mug", UnitPrice: 100})

	order, err := sut.Submit(ctx, checkoutForm())
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.True(t, cartStore.IsEmpty())
	assert.Equal(t, StatusSubmitted, sut.Status())
}

func TestSubmit_NoEmailFieldDegradesSilently(t *testing.T) {
	ctx := context.Background()
	sut, cartStore, mailer := newFixture(t)
	cartStore.AddItem(ctx, domain.Product{ID: "p1", Title: "Mug", UnitPrice: 100})

	eng := form.New(domain.Record{"full_name": ""})
	eng.SetValue("full_name", "Jane Doe")

	order, err := sut.Submit(ctx, eng)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.True(t, cartStore.IsEmpty())
	assert.Zero(t, mailer.sentCount())
}

func TestSubmit_CurrencySymbolFromItemAttrs(t *testing.T) {
	ctx := context.Background()
	sut, cartStore, mailer := newFixture(t)
	cartStore.AddItem(ctx, domain.Product{
		ID: "p1", Title: "Mug", UnitPrice: 100,
		Attrs: map[string]any{"currency": map[string]any{"symbol": "₹"}},
	})

	_, err := sut.Submit(ctx, checkoutForm())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return mailer.sentCount() == 1
	}, time.Second, 10*time.Millisecond)

	_, subject, _ := mailer.lastSend()
	assert.Equal(t, "Order Confirmation - 1 Item(s) - ₹100", subject)
}
