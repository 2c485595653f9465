package repositories

import (
	"reflect"
	"strings"
	"testing"

	"gharBack/internal/models"
)

func TestBuildFilterConditionsEmpty(t *testing.T) {
	conditions, params := buildFilterConditions(models.ListingFilter{})

	if !reflect.DeepEqual(conditions, []string{"l.is_published = 1"}) {
		t.Errorf("conditions = %v, want only the published guard", conditions)
	}
	if len(params) != 0 {
		t.Errorf("params = %v, want none", params)
	}
}

func TestBuildFilterConditionsFull(t *testing.T) {
	conditions, params := buildFilterConditions(models.ListingFilter{
		Keywords:     "Pool",
		City:         "Pune",
		State:        "Maharashtra",
		Bedrooms:     2,
		MaxPrice:     9000000,
		ListingType:  "sale",
		PropertyType: "villa",
	})

	want := []string{
		"l.is_published = 1",
		"LOWER(l.title) LIKE ?",
		"LOWER(l.city) LIKE ?",
		"LOWER(l.state) = LOWER(?)",
		"l.bedrooms >= ?",
		"l.price <= ?",
		"l.listing_type = ?",
		"l.property_type = ?",
	}
	if !reflect.DeepEqual(conditions, want) {
		t.Errorf("conditions = %v, want %v", conditions, want)
	}

	wantParams := []interface{}{"%pool%", "%pune%", "Maharashtra", 2, 9000000, "sale", "villa"}
	if !reflect.DeepEqual(params, wantParams) {
		t.Errorf("params = %v, want %v", params, wantParams)
	}
}

// Keyword search matches the title and nothing else. A listing whose
// description happens to contain the keyword must not turn up.
func TestBuildFilterConditionsKeywordsMatchTitleOnly(t *testing.T) {
	conditions, params := buildFilterConditions(models.ListingFilter{Keywords: "pool"})

	var keywordConditions []string
	for _, c := range conditions {
		if strings.Contains(c, "LIKE") {
			keywordConditions = append(keywordConditions, c)
		}
	}
	if len(keywordConditions) != 1 {
		t.Fatalf("keyword conditions = %v, want exactly one", keywordConditions)
	}
	if keywordConditions[0] != "LOWER(l.title) LIKE ?" {
		t.Errorf("keyword condition = %q, want title-only match", keywordConditions[0])
	}
	for _, c := range conditions {
		if strings.Contains(c, "description") {
			t.Errorf("condition %q reaches beyond the title", c)
		}
	}
	if len(params) != 1 || params[0] != "%pool%" {
		t.Errorf("params = %v, want just the title pattern", params)
	}
}

// Zero numerics and invalid enum values impose no constraint at all.
func TestBuildFilterConditionsSkipsAbsentFilters(t *testing.T) {
	conditions, params := buildFilterConditions(models.ListingFilter{
		Bedrooms:     0,
		MaxPrice:     0,
		ListingType:  "lease",
		PropertyType: "castle",
	})

	if len(conditions) != 1 {
		t.Errorf("conditions = %v, want only the published guard", conditions)
	}
	if len(params) != 0 {
		t.Errorf("params = %v, want none", params)
	}
}
