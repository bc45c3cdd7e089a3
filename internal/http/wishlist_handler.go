package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
	"github.com/bhushankhairnar-QA/giftshop/internal/wishlist"
)

type WishlistHandler struct {
	wishlist *wishlist.Store
}

func NewWishlistHandler(wishlistStore *wishlist.Store) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlistStore}
}

type WishlistResponseDTO struct {
	Items     []domain.WishlistItem `json:"items"`
	ItemCount int                   `json:"item_count"`
	IsEmpty   bool                  `json:"is_empty"`
}

type ToggleResponseDTO struct {
	Added bool `json:"added"`
}

// GET /api/v1/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.wishlistResponse())
}

// POST /api/v1/wishlist/items
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	h.wishlist.AddItem(r.Context(), product)
	respondJSON(w, http.StatusCreated, h.wishlistResponse())
}

// POST /api/v1/wishlist/toggle
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}
	added := h.wishlist.Toggle(r.Context(), product)
	respondJSON(w, http.StatusOK, ToggleResponseDTO{Added: added})
}

// DELETE /api/v1/wishlist/items/{id}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.wishlist.RemoveItem(r.Context(), chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, h.wishlistResponse())
}

// DELETE /api/v1/wishlist
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.wishlist.Clear(r.Context())
	respondJSON(w, http.StatusOK, h.wishlistResponse())
}

func (h *WishlistHandler) wishlistResponse() WishlistResponseDTO {
	return WishlistResponseDTO{
		Items:     h.wishlist.Items(),
		ItemCount: h.wishlist.ItemCount(),
		IsEmpty:   h.wishlist.IsEmpty(),
	}
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (domain.Product, bool) {
	var record domain.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return domain.Product{}, false
	}

	product := domain.ProductFromRecord(record)
	if product.ID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product", "product uid is required")
		return domain.Product{}, false
	}
	return product, true
}
