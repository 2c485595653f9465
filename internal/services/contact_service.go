package services

import (
	"context"
	"time"

	"gharBack/internal/models"
)

type ContactStore interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ExistsForListingAndUser(ctx context.Context, listingID, userID int) (bool, error)
	GetContactsByUserID(ctx context.Context, userID int) ([]models.Contact, error)
	GetContactsByListingID(ctx context.Context, listingID int) ([]models.Contact, error)
}

type ListingGetter interface {
	GetListingByID(ctx context.Context, id int) (models.Listing, error)
}

type ContactService struct {
	ContactRepo ContactStore
	ListingRepo ListingGetter
}

// SubmitInquiry records an inquiry for the listing. An authenticated user may
// inquire about a listing once; the pre-check catches the common case and the
// storage uniqueness constraint catches the race, both surfacing as
// ErrDuplicateInquiry. Anonymous inquiries are unconstrained.
func (s *ContactService) SubmitInquiry(ctx context.Context, contact models.Contact) (models.Listing, error) {
	listing, err := s.ListingRepo.GetListingByID(ctx, contact.ListingID)
	if err != nil {
		return models.Listing{}, err
	}

	if contact.UserID != nil {
		exists, err := s.ContactRepo.ExistsForListingAndUser(ctx, contact.ListingID, *contact.UserID)
		if err != nil {
			return models.Listing{}, err
		}
		if exists {
			return listing, models.ErrDuplicateInquiry
		}
	}

	if contact.ContactDate.IsZero() {
		contact.ContactDate = time.Now()
	}

	if _, err := s.ContactRepo.CreateContact(ctx, contact); err != nil {
		return listing, err
	}
	return listing, nil
}

func (s *ContactService) GetContactsByUserID(ctx context.Context, userID int) ([]models.Contact, error) {
	return s.ContactRepo.GetContactsByUserID(ctx, userID)
}

func (s *ContactService) GetContactsByListingID(ctx context.Context, listingID int) ([]models.Contact, error) {
	return s.ContactRepo.GetContactsByListingID(ctx, listingID)
}
