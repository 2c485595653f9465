package services

import (
	"context"
	"testing"
	"time"

	"gharBack/internal/models"
)

type fakeListingStore struct {
	listings   map[int]models.Listing
	nextID     int
	total      int
	lastFilter models.ListingFilter
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{listings: map[int]models.Listing{}, nextID: 1}
}

func (f *fakeListingStore) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	listing.ID = f.nextID
	f.nextID++
	f.listings[listing.ID] = listing
	return listing, nil
}

func (f *fakeListingStore) GetListingByID(ctx context.Context, id int) (models.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return models.Listing{}, models.ErrListingNotFound
	}
	return listing, nil
}

func (f *fakeListingStore) GetPublishedListingByID(ctx context.Context, id int) (models.Listing, error) {
	listing, ok := f.listings[id]
	if !ok || !listing.IsPublished {
		return models.Listing{}, models.ErrListingNotFound
	}
	return listing, nil
}

func (f *fakeListingStore) GetListingsWithFilters(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	f.lastFilter = filter
	var out []models.Listing
	for _, l := range f.listings {
		if l.IsPublished {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListingStore) CountListingsWithFilters(ctx context.Context, filter models.ListingFilter) (int, error) {
	return f.total, nil
}

func (f *fakeListingStore) CountPublishedByType(ctx context.Context, listingType string) (int, error) {
	count := 0
	for _, l := range f.listings {
		if l.IsPublished && l.ListingType == listingType {
			count++
		}
	}
	return count, nil
}

func (f *fakeListingStore) GetListingsByUserID(ctx context.Context, userID int) ([]models.Listing, error) {
	var out []models.Listing
	for _, l := range f.listings {
		if l.UserID != nil && *l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListingStore) DeleteListing(ctx context.Context, id int) error {
	if _, ok := f.listings[id]; !ok {
		return models.ErrListingNotFound
	}
	delete(f.listings, id)
	return nil
}

func (f *fakeListingStore) SetPublished(ctx context.Context, id int, published bool) error {
	listing, ok := f.listings[id]
	if !ok {
		return models.ErrListingNotFound
	}
	listing.IsPublished = published
	f.listings[id] = listing
	return nil
}

type fakeImageRemover struct {
	removed []string
}

func (f *fakeImageRemover) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

func TestSanitizeFilter(t *testing.T) {
	filter := SanitizeFilter(models.ListingFilter{
		ListingType:  "lease",
		PropertyType: "castle",
		Bedrooms:     -3,
		MaxPrice:     -100,
		Page:         0,
	})

	if filter.ListingType != "" || filter.PropertyType != "" {
		t.Errorf("invalid enums survived: %q/%q", filter.ListingType, filter.PropertyType)
	}
	if filter.Bedrooms != 0 || filter.MaxPrice != 0 {
		t.Errorf("negative numerics survived: %d/%d", filter.Bedrooms, filter.MaxPrice)
	}
	if filter.Page != 1 {
		t.Errorf("Page = %d, want 1", filter.Page)
	}
}

func TestSubmitListingStartsUnpublished(t *testing.T) {
	store := newFakeListingStore()
	svc := &ListingService{ListingRepo: store}

	created, err := svc.SubmitListing(context.Background(), models.Listing{
		Title:       "Sea-facing flat",
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("SubmitListing: %v", err)
	}

	if created.IsPublished {
		t.Error("submitted listing must start unpublished regardless of input")
	}
	if created.ListDate.IsZero() {
		t.Error("ListDate must be stamped on submission")
	}
}

func TestBrowseListingsClampsPage(t *testing.T) {
	store := newFakeListingStore()
	store.total = 13 // three pages at six per page
	svc := &ListingService{ListingRepo: store}

	_, totalPages, err := svc.BrowseListings(context.Background(), "sale", 99)
	if err != nil {
		t.Fatalf("BrowseListings: %v", err)
	}

	if totalPages != 3 {
		t.Errorf("totalPages = %d, want 3", totalPages)
	}
	if store.lastFilter.Page != 3 {
		t.Errorf("requested page = %d, want clamped to 3", store.lastFilter.Page)
	}
}

func TestBrowseListingsEmptyStillOnePage(t *testing.T) {
	store := newFakeListingStore()
	svc := &ListingService{ListingRepo: store}

	_, totalPages, err := svc.BrowseListings(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("BrowseListings: %v", err)
	}
	if totalPages != 1 {
		t.Errorf("totalPages = %d, want 1 for an empty result", totalPages)
	}
}

func TestSearchListingsIgnoresInvalidType(t *testing.T) {
	store := newFakeListingStore()
	svc := &ListingService{ListingRepo: store}

	if _, err := svc.SearchListings(context.Background(), models.ListingFilter{ListingType: "lease"}); err != nil {
		t.Fatalf("SearchListings: %v", err)
	}
	if store.lastFilter.ListingType != "" {
		t.Errorf("invalid type reached the store: %q", store.lastFilter.ListingType)
	}
}

func TestDeleteListingRemovesImages(t *testing.T) {
	store := newFakeListingStore()
	images := &fakeImageRemover{}
	svc := &ListingService{ListingRepo: store, Images: images}

	created, _ := store.CreateListing(context.Background(), models.Listing{
		Title:     "Demolish me",
		PhotoMain: "/uploads/listings/a.jpg",
		Photo1:    "/uploads/listings/b.jpg",
	})

	if err := svc.DeleteListing(context.Background(), created.ID); err != nil {
		t.Fatalf("DeleteListing: %v", err)
	}

	if _, err := store.GetListingByID(context.Background(), created.ID); err == nil {
		t.Error("listing row survived the delete")
	}
	if len(images.removed) != 2 {
		t.Fatalf("removed %d images, want 2", len(images.removed))
	}
}

func TestProjectListing(t *testing.T) {
	beds := 3
	listing := models.Listing{
		ID:          7,
		Title:       "Garden bungalow",
		City:        "Jaipur",
		State:       "Rajasthan",
		Price:       7500000,
		Bedrooms:    &beds,
		ListingType: "sale",
		IsPublished: true,
		ListDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	p := ProjectListing(listing)

	if p.PriceINR != "₹75,00,000" {
		t.Errorf("PriceINR = %q, want %q", p.PriceINR, "₹75,00,000")
	}
	if p.ListingTypeDisplay != "For Sale" {
		t.Errorf("ListingTypeDisplay = %q", p.ListingTypeDisplay)
	}
	// Listings without an assigned realtor project an empty name, not null.
	if p.RealtorName != "" {
		t.Errorf("RealtorName = %q, want empty", p.RealtorName)
	}
	if p.Bedrooms == nil || *p.Bedrooms != 3 {
		t.Errorf("Bedrooms = %v, want 3", p.Bedrooms)
	}
}

func TestGetProjectionsWithoutCache(t *testing.T) {
	store := newFakeListingStore()
	store.CreateListing(context.Background(), models.Listing{Title: "Visible", IsPublished: true})
	svc := &ListingService{ListingRepo: store}

	projections, err := svc.GetProjections(context.Background(), models.ListingFilter{})
	if err != nil {
		t.Fatalf("GetProjections: %v", err)
	}
	if len(projections) != 1 {
		t.Fatalf("got %d projections, want 1", len(projections))
	}
	if projections[0].Title != "Visible" {
		t.Errorf("Title = %q", projections[0].Title)
	}
}
