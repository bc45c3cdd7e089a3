package notify

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// sendTimeout bounds the outbound call; past it the request is
// abandoned, never retried.
const sendTimeout = 10 * time.Second

// WebhookMailer posts order-confirmation emails to an external
// automation webhook. An unconfigured URL degrades silently: the mailer
// becomes a no-op and the order still completes.
type WebhookMailer struct {
	webhookURL string
	httpClient *http.Client
}

func NewWebhookMailer(webhookURL string) *WebhookMailer {
	return &WebhookMailer{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout:   sendTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Send posts the message as to/subject/body query parameters, matching
// the automation API's trigger shape. The response status is logged and
// not surfaced further.
func (m *WebhookMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.webhookURL == "" {
		log.Printf("email webhook URL not configured, skipping confirmation to %s", to)
		return nil
	}

	params := url.Values{}
	params.Set("to", to)
	params.Set("subject", subject)
	params.Set("body", htmlBody)
	endpoint := m.webhookURL + "?" + params.Encode()

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email webhook call failed: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("email webhook responded with status %d for %s", resp.StatusCode, to)
	if resp.StatusCode >= 400 {
		return fmt.Errorf("email webhook returned status %d", resp.StatusCode)
	}
	return nil
}
