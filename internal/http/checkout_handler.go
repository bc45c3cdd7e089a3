package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bhushankhairnar-QA/giftshop/internal/checkout"
	"github.com/bhushankhairnar-QA/giftshop/internal/form"
)

type CheckoutHandler struct {
	service *checkout.Service
	fetcher ContentFetcher
	timeout time.Duration
}

func NewCheckoutHandler(service *checkout.Service, fetcher ContentFetcher, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{service: service, fetcher: fetcher, timeout: timeout}
}

type CheckoutFormResponseDTO struct {
	Fields []form.Field `json:"fields"`
	Status string       `json:"status"`
}

type SubmitCheckoutRequestDTO struct {
	Values map[string]string `json:"values"`
}

type ValidationFailedResponseDTO struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GET /api/v1/checkout/form - the derived field descriptors
func (h *CheckoutHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	eng, ok := h.buildForm(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, CheckoutFormResponseDTO{
		Fields: eng.Fields(),
		Status: h.service.Status().String(),
	})
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitCheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	eng, ok := h.buildForm(w, r)
	if !ok {
		return
	}
	eng.SetValues(req.Values)

	order, err := h.service.Submit(r.Context(), eng)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			respondJSON(w, http.StatusUnprocessableEntity, ValidationFailedResponseDTO{
				Error:  "validation_failed",
				Fields: verr.Fields,
			})
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(w, http.StatusConflict, "empty_cart", err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "checkout_failed", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// buildForm derives a fresh engine from the customer_info record; each
// visit gets its own engine, nothing survives the request.
func (h *CheckoutHandler) buildForm(w http.ResponseWriter, r *http.Request) (*form.Engine, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	record, err := h.fetcher.FetchSingle(ctx, "customer_info")
	if err != nil {
		handleContentError(w, r, err)
		return nil, false
	}
	return form.New(record), true
}
