package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"gharBack/internal/models"
	"gharBack/internal/services"
)

type APIHandler struct {
	Service *services.ListingService
}

// ListListings serves GET /api/listings/: projections of published
// listings, filtered by city, state, bedrooms, price, q and type.
func (h *APIHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	projections, err := h.Service.GetProjections(r.Context(), apiFilter(r.URL.Query()))
	if err != nil {
		log.Printf("API ListListings: %v", err)
		http.Error(w, "Failed to fetch listings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projections)
}

// GetListing serves GET /api/listings/:id/. Unpublished listings are
// indistinguishable from absent ones.
func (h *APIHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid listing ID", http.StatusBadRequest)
		return
	}

	projection, err := h.Service.GetProjection(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}
		log.Printf("API GetListing: %v", err)
		http.Error(w, "Failed to fetch listing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projection)
}
