package service

import (
	"context"

	"medal_stats/internal/models"
	"medal_stats/internal/repository"
)

type SportService struct {
	sportRepo repository.SportRepository
}

func NewSportService(sportRepo repository.SportRepository) *SportService {
	return &SportService{sportRepo: sportRepo}
}

// List 回傳所有運動類別，順序不保證
func (s *SportService) List(ctx context.Context) ([]models.Sport, error) {
	return s.sportRepo.FindAll(ctx)
}
