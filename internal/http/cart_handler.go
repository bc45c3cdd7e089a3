package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bhushankhairnar-QA/giftshop/internal/cart"
	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
)

type CartHandler struct {
	cart *cart.Store
}

func NewCartHandler(cartStore *cart.Store) *CartHandler {
	return &CartHandler{cart: cartStore}
}

type CartResponseDTO struct {
	Items        []domain.LineItem `json:"items"`
	ItemCount    int               `json:"item_count"`
	TotalPrice   float64           `json:"total_price"`
	Notification cart.Notification `json:"notification"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// POST /api/v1/cart/items - body is the product record being added
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var record domain.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product := domain.ProductFromRecord(record)
	if product.ID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product", "product uid is required")
		return
	}

	h.cart.AddItem(r.Context(), product)
	respondJSON(w, http.StatusCreated, h.cartResponse())
}

// PUT /api/v1/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.cart.SetQuantity(r.Context(), chi.URLParam(r, "id"), req.Quantity)
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// DELETE /api/v1/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.cart.RemoveItem(r.Context(), chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// DELETE /api/v1/cart/notification
func (h *CartHandler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	h.cart.DismissNotification()
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() CartResponseDTO {
	return CartResponseDTO{
		Items:        h.cart.Items(),
		ItemCount:    h.cart.ItemCount(),
		TotalPrice:   h.cart.TotalPrice(),
		Notification: h.cart.Notification(),
	}
}
