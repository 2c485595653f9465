package models

import (
	"strconv"
	"strings"
	"time"
)

const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"
)

const (
	PropertyTypeApartment  = "apartment"
	PropertyTypeHouse      = "house"
	PropertyTypeVilla      = "villa"
	PropertyTypeLand       = "land"
	PropertyTypeCommercial = "commercial"
)

type Listing struct {
	ID           int       `json:"id"`
	RealtorID    *int      `json:"realtor_id,omitempty"`
	RealtorName  string    `json:"realtor_name"`
	UserID       *int      `json:"user_id,omitempty"`
	ListingType  string    `json:"listing_type"`
	PropertyType string    `json:"property_type"`
	Title        string    `json:"title"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Price        int       `json:"price"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *float64  `json:"bathrooms"`
	Sqft         *int      `json:"sqft"`
	Description  string    `json:"description"`
	PhotoMain    string    `json:"photo_main"`
	Photo1       string    `json:"photo_1"`
	Photo2       string    `json:"photo_2"`
	IsPublished  bool      `json:"is_published"`
	ListDate     time.Time `json:"list_date"`
}

// PriceINR formats the price with Indian digit grouping: the last three
// digits form one group, every group above that has two digits.
// 1000000 -> "₹10,00,000".
func (l Listing) PriceINR() string {
	return FormatINR(l.Price)
}

func (l Listing) TypeLabel() string {
	if l.ListingType == ListingTypeRent {
		return "For Rent"
	}
	return "For Sale"
}

func (l Listing) PropertyTypeIcon() string {
	icons := map[string]string{
		PropertyTypeApartment:  "fas fa-building",
		PropertyTypeHouse:      "fas fa-home",
		PropertyTypeVilla:      "fas fa-landmark",
		PropertyTypeLand:       "fas fa-mountain",
		PropertyTypeCommercial: "fas fa-store",
	}
	if icon, ok := icons[l.PropertyType]; ok {
		return icon
	}
	return "fas fa-home"
}

func FormatINR(price int) string {
	sign := ""
	if price < 0 {
		sign = "-"
		price = -price
	}
	digits := strconv.Itoa(price)
	if len(digits) <= 3 {
		return sign + "₹" + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + "₹" + strings.Join(groups, ",") + "," + tail
}

func ValidListingType(s string) bool {
	return s == ListingTypeSale || s == ListingTypeRent
}

func ValidPropertyType(s string) bool {
	switch s {
	case PropertyTypeApartment, PropertyTypeHouse, PropertyTypeVilla, PropertyTypeLand, PropertyTypeCommercial:
		return true
	}
	return false
}

// ListingFilter carries the optional search constraints. Zero values impose
// no constraint; invalid enum values are dropped during sanitization.
type ListingFilter struct {
	Keywords     string `json:"keywords"`
	City         string `json:"city"`
	State        string `json:"state"`
	Bedrooms     int    `json:"bedrooms"`
	MaxPrice     int    `json:"price"`
	ListingType  string `json:"listing_type"`
	PropertyType string `json:"property_type"`
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
}

type ListingProjection struct {
	ID                 int       `json:"id"`
	Title              string    `json:"title"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Price              int       `json:"price"`
	PriceINR           string    `json:"price_inr"`
	Bedrooms           *int      `json:"bedrooms"`
	Bathrooms          *float64  `json:"bathrooms"`
	Sqft               *int      `json:"sqft"`
	PhotoMain          string    `json:"photo_main"`
	ListingType        string    `json:"listing_type"`
	ListingTypeDisplay string    `json:"listing_type_display"`
	IsPublished        bool      `json:"is_published"`
	ListDate           time.Time `json:"list_date"`
	RealtorName        string    `json:"realtor_name"`
}
