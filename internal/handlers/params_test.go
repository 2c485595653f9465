package handlers

import (
	"net/url"
	"testing"
)

func TestPermissiveInt(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"42", 42},
		{" 42 ", 42},
		{"", 0},
		{"abc", 0},
		{"12.5", 0},
		{"-7", -7},
	}
	for _, c := range cases {
		if got := permissiveInt(c.input); got != c.want {
			t.Errorf("permissiveInt(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestParseOptionalNumerics(t *testing.T) {
	if got := parseOptionalInt(""); got != nil {
		t.Errorf("blank int = %v, want nil", got)
	}
	if got := parseOptionalInt("junk"); got != nil {
		t.Errorf("junk int = %v, want nil", got)
	}
	if got := parseOptionalInt("3"); got == nil || *got != 3 {
		t.Errorf("parseOptionalInt(\"3\") = %v, want 3", got)
	}
	if got := parseOptionalFloat("2.5"); got == nil || *got != 2.5 {
		t.Errorf("parseOptionalFloat(\"2.5\") = %v, want 2.5", got)
	}
	if got := parseOptionalFloat("two"); got != nil {
		t.Errorf("junk float = %v, want nil", got)
	}
}

// Junk numeric input on the search page imposes no constraint instead of
// erroring out.
func TestSearchFiltersTolerateJunkNumbers(t *testing.T) {
	query := url.Values{
		"keywords": {"  pool  "},
		"bedrooms": {"many"},
		"price":    {"cheap"},
	}

	filter := searchFilter(query)

	if filter.Keywords != "pool" {
		t.Errorf("Keywords = %q, want %q", filter.Keywords, "pool")
	}
	if filter.Bedrooms != 0 {
		t.Errorf("Bedrooms = %d, want 0", filter.Bedrooms)
	}
	if filter.MaxPrice != 0 {
		t.Errorf("MaxPrice = %d, want 0", filter.MaxPrice)
	}
}

func TestAPIFilterUsesShortNames(t *testing.T) {
	query := url.Values{
		"q":    {"garden"},
		"type": {"rent"},
	}

	filter := apiFilter(query)

	if filter.Keywords != "garden" {
		t.Errorf("Keywords = %q, want %q", filter.Keywords, "garden")
	}
	if filter.ListingType != "rent" {
		t.Errorf("ListingType = %q, want %q", filter.ListingType, "rent")
	}
}

func TestBuildListingFromForm(t *testing.T) {
	form := url.Values{
		"title":         {"  Sunny 2BHK  "},
		"address":       {"12 MG Road"},
		"city":          {"Pune"},
		"state":         {"Maharashtra"},
		"price":         {"4500000"},
		"listing_type":  {"rent"},
		"property_type": {"villa"},
		"bedrooms":      {"2"},
		"bathrooms":     {"1.5"},
		"sqft":          {""},
	}

	listing := buildListingFromForm(form)

	if listing.Title != "Sunny 2BHK" {
		t.Errorf("Title = %q, want trimmed value", listing.Title)
	}
	if listing.Price != 4500000 {
		t.Errorf("Price = %d, want 4500000", listing.Price)
	}
	if listing.ListingType != "rent" || listing.PropertyType != "villa" {
		t.Errorf("enums = %q/%q, want rent/villa", listing.ListingType, listing.PropertyType)
	}
	if listing.Bedrooms == nil || *listing.Bedrooms != 2 {
		t.Errorf("Bedrooms = %v, want 2", listing.Bedrooms)
	}
	if listing.Bathrooms == nil || *listing.Bathrooms != 1.5 {
		t.Errorf("Bathrooms = %v, want 1.5", listing.Bathrooms)
	}
	if listing.Sqft != nil {
		t.Errorf("Sqft = %v, want nil for blank input", listing.Sqft)
	}
}

func TestBuildListingFromFormDefaults(t *testing.T) {
	form := url.Values{
		"title":         {"Plot near highway"},
		"listing_type":  {"lease"},
		"property_type": {"castle"},
		"price":         {"not a number"},
	}

	listing := buildListingFromForm(form)

	if listing.ListingType != "sale" {
		t.Errorf("ListingType = %q, want fallback %q", listing.ListingType, "sale")
	}
	if listing.PropertyType != "apartment" {
		t.Errorf("PropertyType = %q, want fallback %q", listing.PropertyType, "apartment")
	}
	if listing.Price != 0 {
		t.Errorf("Price = %d, want 0", listing.Price)
	}
}
