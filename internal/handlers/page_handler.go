package handlers

import (
	"log"
	"net/http"

	"gharBack/internal/models"
	"gharBack/internal/render"
	"gharBack/internal/services"
)

type PageHandler struct {
	Listings *services.ListingService
	Realtors *services.RealtorService
	Contacts *services.ContactService
	Users    *services.UserService
	Render   *render.Engine
}

// Home shows the six newest published listings, the top three realtors and
// the sale/rent counters.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	listings, err := h.Listings.LatestListings(r.Context(), 6)
	if err != nil {
		log.Printf("Home: failed to fetch listings: %v", err)
		http.Error(w, "Failed to load listings", http.StatusInternalServerError)
		return
	}

	realtors, err := h.Realtors.GetRealtors(r.Context(), 3)
	if err != nil {
		log.Printf("Home: failed to fetch realtors: %v", err)
		http.Error(w, "Failed to load realtors", http.StatusInternalServerError)
		return
	}

	forSale, forRent, err := h.Listings.CountByType(r.Context())
	if err != nil {
		log.Printf("Home: failed to count listings: %v", err)
		http.Error(w, "Failed to load listings", http.StatusInternalServerError)
		return
	}

	data := pageData(w, r, h.Users.GetUserByID)
	data.Page["Listings"] = listings
	data.Page["Realtors"] = realtors
	data.Page["ForSaleCount"] = forSale
	data.Page["ForRentCount"] = forRent

	if err := h.Render.Render(w, http.StatusOK, "home.page.tmpl", data); err != nil {
		log.Printf("Home: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	realtors, err := h.Realtors.GetRealtors(r.Context(), 0)
	if err != nil {
		log.Printf("About: failed to fetch realtors: %v", err)
		http.Error(w, "Failed to load realtors", http.StatusInternalServerError)
		return
	}

	data := pageData(w, r, h.Users.GetUserByID)
	data.Page["Realtors"] = realtors

	if err := h.Render.Render(w, http.StatusOK, "about.page.tmpl", data); err != nil {
		log.Printf("About: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// Dashboard shows the requester's inquiries and their own listings,
// unpublished ones included. Auth is enforced by the route chain.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}

	contacts, err := h.Contacts.GetContactsByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Dashboard: failed to fetch contacts: %v", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	listings, err := h.Listings.GetListingsByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("Dashboard: failed to fetch listings: %v", err)
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	var received []models.Contact
	for _, listing := range listings {
		inquiries, err := h.Contacts.GetContactsByListingID(r.Context(), listing.ID)
		if err != nil {
			log.Printf("Dashboard: failed to fetch inquiries for listing %d: %v", listing.ID, err)
			http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
			return
		}
		for i := range inquiries {
			inquiries[i].ListingTitle = listing.Title
		}
		received = append(received, inquiries...)
	}

	data := pageData(w, r, h.Users.GetUserByID)
	data.Page["Contacts"] = contacts
	data.Page["MyListings"] = listings
	data.Page["ReceivedContacts"] = received

	if err := h.Render.Render(w, http.StatusOK, "dashboard.page.tmpl", data); err != nil {
		log.Printf("Dashboard: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
