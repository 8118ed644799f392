package service

import (
	"context"
	"fmt"

	"medal_stats/internal/models"
	"medal_stats/internal/repository"
)

type AthleteService struct {
	athleteRepo repository.AthleteRepository
}

func NewAthleteService(athleteRepo repository.AthleteRepository) *AthleteService {
	return &AthleteService{athleteRepo: athleteRepo}
}

// ByCountry 回傳某國的運動員名單，沒有任何運動員時回傳 ErrNotFound
func (s *AthleteService) ByCountry(ctx context.Context, code string) ([]models.AthleteRow, error) {
	rows, err := s.athleteRepo.FindByNOC(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("athletes of NOC %q: %w", code, ErrNotFound)
	}
	return rows, nil
}
