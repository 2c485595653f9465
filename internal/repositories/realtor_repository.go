package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"gharBack/internal/models"
)

type RealtorRepository struct {
	DB *sql.DB
}

func (r *RealtorRepository) CreateRealtor(ctx context.Context, realtor models.Realtor) (models.Realtor, error) {
	query := `
    INSERT INTO realtors (name, photo, description, phone, email, is_mvp, hire_date)
    VALUES (?, ?, ?, ?, ?, ?, ?)
    `

	var photo interface{}
	if realtor.Photo != nil {
		photo = *realtor.Photo
	}

	result, err := r.DB.ExecContext(ctx, query,
		realtor.Name,
		photo,
		realtor.Description,
		realtor.Phone,
		realtor.Email,
		realtor.IsMVP,
		realtor.HireDate,
	)
	if err != nil {
		return models.Realtor{}, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return models.Realtor{}, err
	}
	realtor.ID = int(lastID)
	return realtor, nil
}

func (r *RealtorRepository) GetRealtorByID(ctx context.Context, id int) (models.Realtor, error) {
	query := `
       SELECT id, name, photo, description, phone, email, is_mvp, hire_date
       FROM realtors
       WHERE id = ?
    `

	var realtor models.Realtor
	var photo sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&realtor.ID, &realtor.Name, &photo, &realtor.Description,
		&realtor.Phone, &realtor.Email, &realtor.IsMVP, &realtor.HireDate,
	)
	if err == sql.ErrNoRows {
		return models.Realtor{}, models.ErrRealtorNotFound
	}
	if err != nil {
		return models.Realtor{}, err
	}
	if photo.Valid {
		realtor.Photo = &photo.String
	}
	return realtor, nil
}

// GetRealtors returns all realtors, MVPs first, then by most recent hire.
// Pass limit <= 0 for no limit.
func (r *RealtorRepository) GetRealtors(ctx context.Context, limit int) ([]models.Realtor, error) {
	query := `
       SELECT id, name, photo, description, phone, email, is_mvp, hire_date
       FROM realtors
       ORDER BY is_mvp DESC, hire_date DESC
    `
	var params []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		params = append(params, limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var realtors []models.Realtor
	for rows.Next() {
		var realtor models.Realtor
		var photo sql.NullString
		err := rows.Scan(
			&realtor.ID, &realtor.Name, &photo, &realtor.Description,
			&realtor.Phone, &realtor.Email, &realtor.IsMVP, &realtor.HireDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		if photo.Valid {
			realtor.Photo = &photo.String
		}
		realtors = append(realtors, realtor)
	}
	return realtors, rows.Err()
}

func (r *RealtorRepository) UpdateRealtor(ctx context.Context, realtor models.Realtor) (models.Realtor, error) {
	query := `
    UPDATE realtors
    SET name = ?, photo = ?, description = ?, phone = ?, email = ?, is_mvp = ?
    WHERE id = ?
    `

	var photo interface{}
	if realtor.Photo != nil {
		photo = *realtor.Photo
	}

	result, err := r.DB.ExecContext(ctx, query,
		realtor.Name, photo, realtor.Description, realtor.Phone,
		realtor.Email, realtor.IsMVP, realtor.ID,
	)
	if err != nil {
		return models.Realtor{}, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return models.Realtor{}, err
	}
	if rowsAffected == 0 {
		return models.Realtor{}, models.ErrRealtorNotFound
	}
	return realtor, nil
}

// DeleteRealtor removes the realtor. Listings referencing it keep existing:
// the FK is ON DELETE SET NULL, so their realtor_id goes empty.
func (r *RealtorRepository) DeleteRealtor(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM realtors WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrRealtorNotFound
	}
	return nil
}
