package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"gharBack/internal/models"
)

type ListingRepository struct {
	DB *sql.DB
}

const listingColumns = `
       l.id, l.realtor_id, COALESCE(r.name, ''), l.user_id, l.listing_type, l.property_type,
       l.title, l.address, l.city, l.state, l.price, l.bedrooms, l.bathrooms, l.sqft,
       l.description, l.photo_main, l.photo_1, l.photo_2, l.is_published, l.list_date`

const listingFrom = `
       FROM listings l
       LEFT JOIN realtors r ON l.realtor_id = r.id`

func scanListing(row interface{ Scan(...interface{}) error }) (models.Listing, error) {
	var (
		l                 models.Listing
		realtorID, userID sql.NullInt64
		bedrooms, sqft    sql.NullInt64
		bathrooms         sql.NullFloat64
		photoMain, p1, p2 sql.NullString
	)

	err := row.Scan(
		&l.ID, &realtorID, &l.RealtorName, &userID, &l.ListingType, &l.PropertyType,
		&l.Title, &l.Address, &l.City, &l.State, &l.Price, &bedrooms, &bathrooms, &sqft,
		&l.Description, &photoMain, &p1, &p2, &l.IsPublished, &l.ListDate,
	)
	if err != nil {
		return models.Listing{}, err
	}

	if realtorID.Valid {
		v := int(realtorID.Int64)
		l.RealtorID = &v
	}
	if userID.Valid {
		v := int(userID.Int64)
		l.UserID = &v
	}
	if bedrooms.Valid {
		v := int(bedrooms.Int64)
		l.Bedrooms = &v
	}
	if bathrooms.Valid {
		v := bathrooms.Float64
		l.Bathrooms = &v
	}
	if sqft.Valid {
		v := int(sqft.Int64)
		l.Sqft = &v
	}
	if photoMain.Valid {
		l.PhotoMain = photoMain.String
	}
	if p1.Valid {
		l.Photo1 = p1.String
	}
	if p2.Valid {
		l.Photo2 = p2.String
	}
	return l, nil
}

func (r *ListingRepository) CreateListing(ctx context.Context, listing models.Listing) (models.Listing, error) {
	query := `
    INSERT INTO listings (realtor_id, user_id, listing_type, property_type, title, address, city, state, price, bedrooms, bathrooms, sqft, description, photo_main, photo_1, photo_2, is_published, list_date)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	var realtorID, userID, bedrooms, sqft interface{}
	var bathrooms interface{}
	if listing.RealtorID != nil {
		realtorID = *listing.RealtorID
	}
	if listing.UserID != nil {
		userID = *listing.UserID
	}
	if listing.Bedrooms != nil {
		bedrooms = *listing.Bedrooms
	}
	if listing.Bathrooms != nil {
		bathrooms = *listing.Bathrooms
	}
	if listing.Sqft != nil {
		sqft = *listing.Sqft
	}

	result, err := r.DB.ExecContext(ctx, query,
		realtorID,
		userID,
		listing.ListingType,
		listing.PropertyType,
		listing.Title,
		listing.Address,
		listing.City,
		listing.State,
		listing.Price,
		bedrooms,
		bathrooms,
		sqft,
		listing.Description,
		listing.PhotoMain,
		listing.Photo1,
		listing.Photo2,
		listing.IsPublished,
		listing.ListDate,
	)
	if err != nil {
		return models.Listing{}, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Listing{}, err
	}
	listing.ID = int(lastID)
	return listing, nil
}

func (r *ListingRepository) GetListingByID(ctx context.Context, id int) (models.Listing, error) {
	query := `SELECT` + listingColumns + listingFrom + ` WHERE l.id = ?`

	listing, err := scanListing(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Listing{}, models.ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, err
	}
	return listing, nil
}

func (r *ListingRepository) GetPublishedListingByID(ctx context.Context, id int) (models.Listing, error) {
	query := `SELECT` + listingColumns + listingFrom + ` WHERE l.id = ? AND l.is_published = 1`

	listing, err := scanListing(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Listing{}, models.ErrListingNotFound
	}
	if err != nil {
		return models.Listing{}, err
	}
	return listing, nil
}

// buildFilterConditions translates the optional filter values into WHERE
// fragments. Zero values and invalid enum values contribute nothing, so a
// junk numeric filter silently becomes a no-op.
func buildFilterConditions(filter models.ListingFilter) ([]string, []interface{}) {
	conditions := []string{"l.is_published = 1"}
	var params []interface{}

	if filter.Keywords != "" {
		conditions = append(conditions, "LOWER(l.title) LIKE ?")
		params = append(params, "%"+strings.ToLower(filter.Keywords)+"%")
	}
	if filter.City != "" {
		conditions = append(conditions, "LOWER(l.city) LIKE ?")
		params = append(params, "%"+strings.ToLower(filter.City)+"%")
	}
	if filter.State != "" {
		conditions = append(conditions, "LOWER(l.state) = LOWER(?)")
		params = append(params, filter.State)
	}
	if filter.Bedrooms > 0 {
		conditions = append(conditions, "l.bedrooms >= ?")
		params = append(params, filter.Bedrooms)
	}
	if filter.MaxPrice > 0 {
		conditions = append(conditions, "l.price <= ?")
		params = append(params, filter.MaxPrice)
	}
	if models.ValidListingType(filter.ListingType) {
		conditions = append(conditions, "l.listing_type = ?")
		params = append(params, filter.ListingType)
	}
	if models.ValidPropertyType(filter.PropertyType) {
		conditions = append(conditions, "l.property_type = ?")
		params = append(params, filter.PropertyType)
	}

	return conditions, params
}

func (r *ListingRepository) GetListingsWithFilters(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	conditions, params := buildFilterConditions(filter)

	query := `SELECT` + listingColumns + listingFrom +
		" WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY l.list_date DESC, l.id DESC"

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += " LIMIT ? OFFSET ?"
		params = append(params, filter.Limit, (page-1)*filter.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) CountListingsWithFilters(ctx context.Context, filter models.ListingFilter) (int, error) {
	conditions, params := buildFilterConditions(filter)

	query := `SELECT COUNT(*)` + listingFrom + " WHERE " + strings.Join(conditions, " AND ")

	var count int
	if err := r.DB.QueryRowContext(ctx, query, params...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ListingRepository) CountPublishedByType(ctx context.Context, listingType string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM listings WHERE is_published = 1 AND listing_type = ?`,
		listingType,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetListingsByUserID returns everything the user posted, unpublished
// included, newest first. Dashboard only.
func (r *ListingRepository) GetListingsByUserID(ctx context.Context, userID int) ([]models.Listing, error) {
	query := `SELECT` + listingColumns + listingFrom +
		` WHERE l.user_id = ? ORDER BY l.list_date DESC, l.id DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

// DeleteListing removes the row; contacts go with it through the FK cascade.
// Image files are the caller's concern.
func (r *ListingRepository) DeleteListing(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) SetPublished(ctx context.Context, id int, published bool) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE listings SET is_published = ? WHERE id = ?`, published, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrListingNotFound
	}
	return nil
}
