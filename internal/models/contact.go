package models

import (
	"time"
)

type Contact struct {
	ID          int       `json:"id"`
	ListingID   int       `json:"listing_id"`
	UserID      *int      `json:"user_id,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	ContactDate time.Time `json:"contact_date"`

	// Joined for the dashboard view, not a column of contacts.
	ListingTitle string `json:"listing_title,omitempty"`
}
