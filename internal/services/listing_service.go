package services

import (
	"context"
	"time"

	"gharBack/internal/cache"
	"gharBack/internal/models"
)

// Listings paginate six to a page on the browse view.
const ListingsPageSize = 6

// ListingStore is the subset of the listing repository the service needs.
// Kept as an interface so tests can substitute a fake.
type ListingStore interface {
	CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error)
	GetListingByID(ctx context.Context, id int) (models.Listing, error)
	GetPublishedListingByID(ctx context.Context, id int) (models.Listing, error)
	GetListingsWithFilters(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	CountListingsWithFilters(ctx context.Context, filter models.ListingFilter) (int, error)
	CountPublishedByType(ctx context.Context, listingType string) (int, error)
	GetListingsByUserID(ctx context.Context, userID int) ([]models.Listing, error)
	DeleteListing(ctx context.Context, id int) error
	SetPublished(ctx context.Context, id int, published bool) error
}

// ImageRemover releases stored image files. Best effort on deletes.
type ImageRemover interface {
	Remove(path string) error
}

type ListingService struct {
	ListingRepo ListingStore
	Cache       *cache.ListingCache
	Images      ImageRemover
}

// SanitizeFilter normalizes a raw filter: invalid enum values are dropped
// and negative numerics are treated as absent. Unparseable numeric input
// never reaches this point as anything but zero, so junk filters degrade to
// no-ops instead of errors.
func SanitizeFilter(filter models.ListingFilter) models.ListingFilter {
	if !models.ValidListingType(filter.ListingType) {
		filter.ListingType = ""
	}
	if !models.ValidPropertyType(filter.PropertyType) {
		filter.PropertyType = ""
	}
	if filter.Bedrooms < 0 {
		filter.Bedrooms = 0
	}
	if filter.MaxPrice < 0 {
		filter.MaxPrice = 0
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 0 {
		filter.Limit = 0
	}
	return filter
}

// SearchListings returns every published listing matching the filter,
// newest first, without pagination.
func (s *ListingService) SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	filter = SanitizeFilter(filter)
	filter.Limit = 0
	return s.ListingRepo.GetListingsWithFilters(ctx, filter)
}

// BrowseListings serves the paginated /listings/ page, optionally narrowed
// to one listing type. Returns the page of listings and the total page count.
func (s *ListingService) BrowseListings(ctx context.Context, listingType string, page int) ([]models.Listing, int, error) {
	filter := SanitizeFilter(models.ListingFilter{
		ListingType: listingType,
		Page:        page,
		Limit:       ListingsPageSize,
	})

	total, err := s.ListingRepo.CountListingsWithFilters(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	totalPages := (total + ListingsPageSize - 1) / ListingsPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if filter.Page > totalPages {
		filter.Page = totalPages
	}

	listings, err := s.ListingRepo.GetListingsWithFilters(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return listings, totalPages, nil
}

func (s *ListingService) GetPublishedListing(ctx context.Context, id int) (models.Listing, error) {
	return s.ListingRepo.GetPublishedListingByID(ctx, id)
}

func (s *ListingService) GetListing(ctx context.Context, id int) (models.Listing, error) {
	return s.ListingRepo.GetListingByID(ctx, id)
}

// LatestListings returns the newest published listings for the index page.
func (s *ListingService) LatestListings(ctx context.Context, limit int) ([]models.Listing, error) {
	return s.ListingRepo.GetListingsWithFilters(ctx, models.ListingFilter{Page: 1, Limit: limit})
}

func (s *ListingService) CountByType(ctx context.Context) (forSale, forRent int, err error) {
	forSale, err = s.ListingRepo.CountPublishedByType(ctx, models.ListingTypeSale)
	if err != nil {
		return 0, 0, err
	}
	forRent, err = s.ListingRepo.CountPublishedByType(ctx, models.ListingTypeRent)
	if err != nil {
		return 0, 0, err
	}
	return forSale, forRent, nil
}

// SubmitListing persists a user-submitted listing. New listings always start
// unpublished and go live after admin review, whatever the caller set.
func (s *ListingService) SubmitListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	listing.IsPublished = false
	if listing.ListDate.IsZero() {
		listing.ListDate = time.Now()
	}
	return s.ListingRepo.CreateListing(ctx, listing)
}

func (s *ListingService) GetListingsByUserID(ctx context.Context, userID int) ([]models.Listing, error) {
	return s.ListingRepo.GetListingsByUserID(ctx, userID)
}

// DeleteListing removes the listing row (contacts cascade with it) and then
// releases its image files. File removal failures are ignored: the row is
// gone and orphaned files are harmless.
func (s *ListingService) DeleteListing(ctx context.Context, id int) error {
	listing, err := s.ListingRepo.GetListingByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ListingRepo.DeleteListing(ctx, id); err != nil {
		return err
	}
	if s.Images != nil {
		for _, path := range []string{listing.PhotoMain, listing.Photo1, listing.Photo2} {
			if path != "" {
				_ = s.Images.Remove(path)
			}
		}
	}
	return nil
}

func (s *ListingService) PublishListing(ctx context.Context, id int, published bool) error {
	return s.ListingRepo.SetPublished(ctx, id, published)
}

// ProjectListing maps a listing to its public JSON shape.
func ProjectListing(listing models.Listing) models.ListingProjection {
	return models.ListingProjection{
		ID:                 listing.ID,
		Title:              listing.Title,
		Address:            listing.Address,
		City:               listing.City,
		State:              listing.State,
		Price:              listing.Price,
		PriceINR:           listing.PriceINR(),
		Bedrooms:           listing.Bedrooms,
		Bathrooms:          listing.Bathrooms,
		Sqft:               listing.Sqft,
		PhotoMain:          listing.PhotoMain,
		ListingType:        listing.ListingType,
		ListingTypeDisplay: listing.TypeLabel(),
		IsPublished:        listing.IsPublished,
		ListDate:           listing.ListDate,
		RealtorName:        listing.RealtorName,
	}
}

// GetProjections serves the JSON API list, consulting the short-lived Redis
// cache first. Cache errors are invisible to the caller.
func (s *ListingService) GetProjections(ctx context.Context, filter models.ListingFilter) ([]models.ListingProjection, error) {
	filter = SanitizeFilter(filter)
	filter.Limit = 0

	key := cache.FilterKey(filter)
	if projections, ok := s.Cache.GetProjections(ctx, key); ok {
		return projections, nil
	}

	listings, err := s.ListingRepo.GetListingsWithFilters(ctx, filter)
	if err != nil {
		return nil, err
	}

	projections := make([]models.ListingProjection, 0, len(listings))
	for _, listing := range listings {
		projections = append(projections, ProjectListing(listing))
	}
	s.Cache.SetProjections(ctx, key, projections)
	return projections, nil
}

func (s *ListingService) GetProjection(ctx context.Context, id int) (models.ListingProjection, error) {
	listing, err := s.ListingRepo.GetPublishedListingByID(ctx, id)
	if err != nil {
		return models.ListingProjection{}, err
	}
	return ProjectListing(listing), nil
}
