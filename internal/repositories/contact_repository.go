package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"gharBack/internal/models"
)

type ContactRepository struct {
	DB *sql.DB
}

// CreateContact inserts the inquiry. The contacts table carries a UNIQUE
// (listing_id, user_id) index, so a concurrent duplicate from the same user
// loses the race here and comes back as ErrDuplicateInquiry. Anonymous
// inquiries have NULL user_id and never collide.
func (r *ContactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	query := `
    INSERT INTO contacts (listing_id, user_id, name, email, phone, message, contact_date)
    VALUES (?, ?, ?, ?, ?, ?, ?)
    `

	var userID interface{}
	if contact.UserID != nil {
		userID = *contact.UserID
	}

	result, err := r.DB.ExecContext(ctx, query,
		contact.ListingID,
		userID,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Message,
		contact.ContactDate,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return models.Contact{}, models.ErrDuplicateInquiry
		}
		if isForeignKeyConstraintError(err) {
			return models.Contact{}, models.ErrListingNotFound
		}
		return models.Contact{}, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Contact{}, err
	}
	contact.ID = int(lastID)
	return contact, nil
}

func (r *ContactRepository) ExistsForListingAndUser(ctx context.Context, listingID, userID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM contacts WHERE listing_id = ? AND user_id = ?)`,
		listingID, userID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *ContactRepository) GetContactsByUserID(ctx context.Context, userID int) ([]models.Contact, error) {
	query := `
       SELECT c.id, c.listing_id, c.user_id, c.name, c.email, c.phone, c.message, c.contact_date, l.title
       FROM contacts c
       JOIN listings l ON c.listing_id = l.id
       WHERE c.user_id = ?
       ORDER BY c.contact_date DESC, c.id DESC
    `

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var contact models.Contact
		var uid sql.NullInt64
		err := rows.Scan(
			&contact.ID, &contact.ListingID, &uid, &contact.Name, &contact.Email,
			&contact.Phone, &contact.Message, &contact.ContactDate, &contact.ListingTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		if uid.Valid {
			v := int(uid.Int64)
			contact.UserID = &v
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) GetContactsByListingID(ctx context.Context, listingID int) ([]models.Contact, error) {
	query := `
       SELECT id, listing_id, user_id, name, email, phone, message, contact_date
       FROM contacts
       WHERE listing_id = ?
       ORDER BY contact_date DESC, id DESC
    `

	rows, err := r.DB.QueryContext(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var contact models.Contact
		var uid sql.NullInt64
		err := rows.Scan(
			&contact.ID, &contact.ListingID, &uid, &contact.Name, &contact.Email,
			&contact.Phone, &contact.Message, &contact.ContactDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		if uid.Valid {
			v := int(uid.Int64)
			contact.UserID = &v
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}
