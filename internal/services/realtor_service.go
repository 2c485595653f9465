package services

import (
	"context"
	"time"

	"gharBack/internal/models"
)

type RealtorStore interface {
	CreateRealtor(ctx context.Context, realtor models.Realtor) (models.Realtor, error)
	GetRealtorByID(ctx context.Context, id int) (models.Realtor, error)
	GetRealtors(ctx context.Context, limit int) ([]models.Realtor, error)
	UpdateRealtor(ctx context.Context, realtor models.Realtor) (models.Realtor, error)
	DeleteRealtor(ctx context.Context, id int) error
}

type RealtorService struct {
	RealtorRepo RealtorStore
	Images      ImageRemover
}

func (s *RealtorService) CreateRealtor(ctx context.Context, realtor models.Realtor) (models.Realtor, error) {
	if realtor.HireDate.IsZero() {
		realtor.HireDate = time.Now()
	}
	return s.RealtorRepo.CreateRealtor(ctx, realtor)
}

func (s *RealtorService) GetRealtorByID(ctx context.Context, id int) (models.Realtor, error) {
	return s.RealtorRepo.GetRealtorByID(ctx, id)
}

// GetRealtors lists realtors with MVPs first, newest hires next.
func (s *RealtorService) GetRealtors(ctx context.Context, limit int) ([]models.Realtor, error) {
	return s.RealtorRepo.GetRealtors(ctx, limit)
}

func (s *RealtorService) UpdateRealtor(ctx context.Context, realtor models.Realtor) (models.Realtor, error) {
	return s.RealtorRepo.UpdateRealtor(ctx, realtor)
}

// DeleteRealtor removes the realtor profile and its photo. Listings that
// referenced it survive with an empty realtor reference.
func (s *RealtorService) DeleteRealtor(ctx context.Context, id int) error {
	realtor, err := s.RealtorRepo.GetRealtorByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.RealtorRepo.DeleteRealtor(ctx, id); err != nil {
		return err
	}
	if s.Images != nil && realtor.Photo != nil && *realtor.Photo != "" {
		_ = s.Images.Remove(*realtor.Photo)
	}
	return nil
}
