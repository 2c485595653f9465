package services

import (
	"context"
	"errors"
	"testing"

	"gharBack/internal/models"
)

type fakeContactStore struct {
	contacts  []models.Contact
	createErr error
}

func (f *fakeContactStore) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if f.createErr != nil {
		return models.Contact{}, f.createErr
	}
	contact.ID = len(f.contacts) + 1
	f.contacts = append(f.contacts, contact)
	return contact, nil
}

func (f *fakeContactStore) ExistsForListingAndUser(ctx context.Context, listingID, userID int) (bool, error) {
	for _, c := range f.contacts {
		if c.ListingID == listingID && c.UserID != nil && *c.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeContactStore) GetContactsByUserID(ctx context.Context, userID int) ([]models.Contact, error) {
	var out []models.Contact
	for _, c := range f.contacts {
		if c.UserID != nil && *c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContactStore) GetContactsByListingID(ctx context.Context, listingID int) ([]models.Contact, error) {
	var out []models.Contact
	for _, c := range f.contacts {
		if c.ListingID == listingID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeListingGetter struct {
	listings map[int]models.Listing
}

func (f *fakeListingGetter) GetListingByID(ctx context.Context, id int) (models.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return models.Listing{}, models.ErrListingNotFound
	}
	return listing, nil
}

func newContactService(store *fakeContactStore) *ContactService {
	return &ContactService{
		ContactRepo: store,
		ListingRepo: &fakeListingGetter{listings: map[int]models.Listing{
			10: {ID: 10, Title: "Lakeview flat", IsPublished: true},
		}},
	}
}

func TestSubmitInquiry(t *testing.T) {
	store := &fakeContactStore{}
	svc := newContactService(store)

	listing, err := svc.SubmitInquiry(context.Background(), models.Contact{
		ListingID: 10,
		Name:      "Asha",
		Email:     "asha@example.com",
		Message:   "Is it still available?",
	})
	if err != nil {
		t.Fatalf("SubmitInquiry: %v", err)
	}
	if listing.ID != 10 {
		t.Errorf("returned listing ID = %d, want 10", listing.ID)
	}
	if len(store.contacts) != 1 {
		t.Fatalf("stored %d contacts, want 1", len(store.contacts))
	}
	if store.contacts[0].ContactDate.IsZero() {
		t.Error("ContactDate must be stamped")
	}
}

func TestSubmitInquiryUnknownListing(t *testing.T) {
	svc := newContactService(&fakeContactStore{})

	_, err := svc.SubmitInquiry(context.Background(), models.Contact{ListingID: 404})
	if !errors.Is(err, models.ErrListingNotFound) {
		t.Errorf("err = %v, want ErrListingNotFound", err)
	}
}

// A signed-in user gets one inquiry per listing. The second attempt is
// rejected before anything is written.
func TestSubmitInquiryDuplicateRejected(t *testing.T) {
	store := &fakeContactStore{}
	svc := newContactService(store)
	userID := 5

	if _, err := svc.SubmitInquiry(context.Background(), models.Contact{ListingID: 10, UserID: &userID}); err != nil {
		t.Fatalf("first inquiry: %v", err)
	}

	_, err := svc.SubmitInquiry(context.Background(), models.Contact{ListingID: 10, UserID: &userID})
	if !errors.Is(err, models.ErrDuplicateInquiry) {
		t.Errorf("second inquiry err = %v, want ErrDuplicateInquiry", err)
	}
	if len(store.contacts) != 1 {
		t.Errorf("stored %d contacts, want 1", len(store.contacts))
	}
}

// The storage layer surfaces its uniqueness violation as the same error, so
// a race between the pre-check and the insert is indistinguishable from the
// common path.
func TestSubmitInquiryDuplicateFromStore(t *testing.T) {
	store := &fakeContactStore{createErr: models.ErrDuplicateInquiry}
	svc := newContactService(store)
	userID := 5

	_, err := svc.SubmitInquiry(context.Background(), models.Contact{ListingID: 10, UserID: &userID})
	if !errors.Is(err, models.ErrDuplicateInquiry) {
		t.Errorf("err = %v, want ErrDuplicateInquiry", err)
	}
}

func TestAnonymousInquiriesUnconstrained(t *testing.T) {
	store := &fakeContactStore{}
	svc := newContactService(store)

	for i := 0; i < 2; i++ {
		if _, err := svc.SubmitInquiry(context.Background(), models.Contact{ListingID: 10, Email: "anon@example.com"}); err != nil {
			t.Fatalf("anonymous inquiry %d: %v", i+1, err)
		}
	}
	if len(store.contacts) != 2 {
		t.Errorf("stored %d contacts, want 2", len(store.contacts))
	}
}
