package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gharBack/internal/models"
	"gharBack/internal/render"
	"gharBack/internal/services"
	"gharBack/utils"
)

type ListingHandler struct {
	Service *services.ListingService
	Users   *services.UserService
	Render  *render.Engine
	Storage *utils.Storage
}

// ListListings serves the paginated browse page, optionally narrowed by
// ?type=sale|rent. Unknown type values show everything.
func (h *ListingHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	listingType := r.URL.Query().Get("type")
	page := permissiveInt(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	listings, totalPages, err := h.Service.BrowseListings(r.Context(), listingType, page)
	if err != nil {
		log.Printf("ListListings: %v", err)
		http.Error(w, "Failed to fetch listings", http.StatusInternalServerError)
		return
	}

	currentType := "all"
	if models.ValidListingType(listingType) {
		currentType = listingType
	}

	data := pageData(w, r, h.Users.GetUserByID)
	data.Page["Listings"] = listings
	data.Page["CurrentType"] = currentType
	data.Page["PageNum"] = page
	data.Page["TotalPages"] = totalPages
	data.Page["PrevPage"] = page - 1
	data.Page["NextPage"] = page + 1

	if err := h.Render.Render(w, http.StatusOK, "listings.page.tmpl", data); err != nil {
		log.Printf("ListListings: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// ListingDetail shows one published listing. Unpublished listings 404 here
// for everyone, owners included; they appear on the dashboard instead.
func (h *ListingHandler) ListingDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	listing, err := h.Service.GetPublishedListing(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrListingNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("ListingDetail: %v", err)
		http.Error(w, "Failed to fetch listing", http.StatusInternalServerError)
		return
	}

	data := pageData(w, r, h.Users.GetUserByID)
	data.Page["Listing"] = listing

	if err := h.Render.Render(w, http.StatusOK, "listing.page.tmpl", data); err != nil {
		log.Printf("ListingDetail: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// Search applies the full filter set over published listings. Numeric
// filters are permissive: junk input imposes no constraint.
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter := searchFilter(r.URL.Query())

	listings, err := h.Service.SearchListings(r.Context(), filter)
	if err != nil {
		log.Printf("Search: %v", err)
		http.Error(w, "Failed to search listings", http.StatusInternalServerError)
		return
	}

	data := pageData(w, r, h.Users.GetUserByID)
	data.Form = r.URL.Query()
	data.Page["Listings"] = listings

	if err := h.Render.Render(w, http.StatusOK, "search.page.tmpl", data); err != nil {
		log.Printf("Search: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func (h *ListingHandler) PostListingForm(w http.ResponseWriter, r *http.Request) {
	data := pageData(w, r, h.Users.GetUserByID)
	if err := h.Render.Render(w, http.StatusOK, "post_listing.page.tmpl", data); err != nil {
		log.Printf("PostListingForm: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// PostListing validates and persists a submitted listing with up to three
// photos. On a storage failure the form is shown again with the submitted
// values and nothing is committed.
func (h *ListingHandler) PostListing(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login/", http.StatusSeeOther)
		return
	}

	listing := buildListingFromForm(r.PostForm)
	listing.UserID = &userID

	photos, err := saveListingPhotos(r, h.Storage)
	if err != nil {
		log.Printf("PostListing: photo upload failed: %v", err)
		h.redisplayForm(w, r, "Failed to store uploaded photos. Please try again.")
		return
	}
	listing.PhotoMain = photos["photo_main"]
	listing.Photo1 = photos["photo_1"]
	listing.Photo2 = photos["photo_2"]

	if _, err := h.Service.SubmitListing(r.Context(), listing); err != nil {
		log.Printf("PostListing: %v", err)
		h.redisplayForm(w, r, "Failed to save your listing. Please try again.")
		return
	}

	setFlash(w, "Your listing has been submitted! It will go live after admin review.")
	http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
}

func (h *ListingHandler) redisplayForm(w http.ResponseWriter, r *http.Request, message string) {
	data := pageData(w, r, h.Users.GetUserByID)
	data.FlashError = message
	data.Form = r.PostForm

	if err := h.Render.Render(w, http.StatusOK, "post_listing.page.tmpl", data); err != nil {
		log.Printf("PostListing: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
