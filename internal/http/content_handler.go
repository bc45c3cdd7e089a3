package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bhushankhairnar-QA/giftshop/internal/content"
	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
)

// ContentFetcher is what the handlers need from the content provider
// facade. Consumers define this interface, not the delivery-API client.
type ContentFetcher interface {
	FetchCollection(ctx context.Context, name string) ([]domain.Record, error)
	FetchEntry(ctx context.Context, name, uid string) (domain.Record, error)
	FetchSingle(ctx context.Context, name string) (domain.Record, error)
}

type ContentHandler struct {
	fetcher ContentFetcher
	timeout time.Duration
}

func NewContentHandler(fetcher ContentFetcher, timeout time.Duration) *ContentHandler {
	return &ContentHandler{fetcher: fetcher, timeout: timeout}
}

// GET /api/v1/products
func (h *ContentHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	records, err := h.fetcher.FetchCollection(ctx, "products")
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"products": records})
}

// GET /api/v1/products/{uid}
func (h *ContentHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	uid := chi.URLParam(r, "uid")
	record, err := h.fetcher.FetchEntry(ctx, "products", uid)
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// GET /api/v1/categories
func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	records, err := h.fetcher.FetchCollection(ctx, "categories")
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"categories": records})
}

// GET /api/v1/content/{name} - single-entry pages (homepage, about, ...)
func (h *ContentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	name := chi.URLParam(r, "name")
	record, err := h.fetcher.FetchSingle(ctx, name)
	if err != nil {
		handleContentError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, record)
}

// handleContentError maps facade errors onto HTTP statuses. The core
// takes no recovery action; the error string is surfaced for the UI.
func handleContentError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, content.ErrUnknownContent):
		respondError(w, http.StatusNotFound, "unknown_content", err.Error())
	case errors.Is(err, content.ErrEntryNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		log.Printf("content fetch error (request %s): %v", getRequestID(r.Context()), err)
		respondError(w, http.StatusBadGateway, "content_unavailable", err.Error())
	}
}
