package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"gharBack/internal/models"
	"gharBack/internal/services"
)

type ContactHandler struct {
	Service *services.ContactService
}

// SubmitInquiry records a visitor's interest in one listing. Only form
// POSTs are accepted; anything else bounces to the listing index.
func (h *ContactHandler) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/listings/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	listingID, err := strconv.Atoi(r.PostForm.Get("listing_id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	contact := models.Contact{
		ListingID: listingID,
		Name:      strings.TrimSpace(r.PostForm.Get("name")),
		Email:     strings.TrimSpace(r.PostForm.Get("email")),
		Phone:     strings.TrimSpace(r.PostForm.Get("phone")),
		Message:   strings.TrimSpace(r.PostForm.Get("message")),
	}
	if userID, ok := userIDFromContext(r.Context()); ok {
		contact.UserID = &userID
	}

	listing, err := h.Service.SubmitInquiry(r.Context(), contact)
	detailURL := fmt.Sprintf("/listings/%d/", listing.ID)

	switch {
	case errors.Is(err, models.ErrListingNotFound):
		http.NotFound(w, r)
	case errors.Is(err, models.ErrDuplicateInquiry):
		setFlashError(w, "You already submitted an inquiry for this property.")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
	case err != nil:
		log.Printf("SubmitInquiry: %v", err)
		setFlashError(w, "Failed to send your inquiry. Please try again.")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
	default:
		setFlash(w, "Your inquiry has been sent! A realtor will contact you soon.")
		http.Redirect(w, r, detailURL, http.StatusSeeOther)
	}
}
