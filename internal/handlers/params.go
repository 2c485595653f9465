package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"gharBack/internal/models"
)

// permissiveInt converts a form value the way the submission workflow
// expects: anything that does not parse becomes zero, never an error.
func permissiveInt(input string) int {
	val, _ := strconv.Atoi(strings.TrimSpace(input))
	return val
}

// parseOptionalInt returns nil for blank or unparseable input. Used for the
// fields that are meaningless on land/commercial listings.
func parseOptionalInt(input string) *int {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	val, err := strconv.Atoi(input)
	if err != nil {
		return nil
	}
	return &val
}

func parseOptionalFloat(input string) *float64 {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	val, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return nil
	}
	return &val
}

// searchFilter maps the /search/ query parameters onto a filter. Numeric
// values go through the permissive parser, so junk input degrades to an
// absent filter instead of an error.
func searchFilter(query url.Values) models.ListingFilter {
	return models.ListingFilter{
		Keywords:     strings.TrimSpace(query.Get("keywords")),
		City:         strings.TrimSpace(query.Get("city")),
		State:        strings.TrimSpace(query.Get("state")),
		Bedrooms:     permissiveInt(query.Get("bedrooms")),
		MaxPrice:     permissiveInt(query.Get("price")),
		ListingType:  query.Get("listing_type"),
		PropertyType: query.Get("property_type"),
	}
}

// apiFilter maps the JSON API query parameters, which use shorter names
// (q, type) but carry the same semantics as the search page.
func apiFilter(query url.Values) models.ListingFilter {
	return models.ListingFilter{
		Keywords:    strings.TrimSpace(query.Get("q")),
		City:        strings.TrimSpace(query.Get("city")),
		State:       strings.TrimSpace(query.Get("state")),
		Bedrooms:    permissiveInt(query.Get("bedrooms")),
		MaxPrice:    permissiveInt(query.Get("price")),
		ListingType: query.Get("type"),
	}
}

// buildListingFromForm maps the post-listing form onto a listing draft with
// the documented defaulting rules: enums fall back to sale/apartment, text
// fields are trimmed, price defaults to 0 and the optional numerics to null.
func buildListingFromForm(form url.Values) models.Listing {
	listingType := form.Get("listing_type")
	if !models.ValidListingType(listingType) {
		listingType = models.ListingTypeSale
	}
	propertyType := form.Get("property_type")
	if !models.ValidPropertyType(propertyType) {
		propertyType = models.PropertyTypeApartment
	}

	return models.Listing{
		ListingType:  listingType,
		PropertyType: propertyType,
		Title:        strings.TrimSpace(form.Get("title")),
		Address:      strings.TrimSpace(form.Get("address")),
		City:         strings.TrimSpace(form.Get("city")),
		State:        strings.TrimSpace(form.Get("state")),
		Price:        permissiveInt(form.Get("price")),
		Bedrooms:     parseOptionalInt(form.Get("bedrooms")),
		Bathrooms:    parseOptionalFloat(form.Get("bathrooms")),
		Sqft:         parseOptionalInt(form.Get("sqft")),
		Description:  strings.TrimSpace(form.Get("description")),
	}
}
