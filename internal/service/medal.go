package service

import (
	"context"
	"fmt"
	"sort"

	"medal_stats/internal/models"
	"medal_stats/internal/repository"
)

// RatioMinTotal 只有獎牌總數大於這個值的國家才會出現在金牌比例排行
const RatioMinTotal = 10

type MedalService struct {
	medalRepo repository.MedalRepository
}

func NewMedalService(medalRepo repository.MedalRepository) *MedalService {
	return &MedalService{medalRepo: medalRepo}
}

// Ranking 回傳所有國家的獎牌榜
func (s *MedalService) Ranking(ctx context.Context) ([]models.MedalTally, error) {
	return s.medalRepo.Tally(ctx)
}

// Country 回傳單一國家的獎牌統計
func (s *MedalService) Country(ctx context.Context, code string) (*models.CountryMedals, error) {
	rows, err := s.medalRepo.TallyByCountry(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("NOC %q: %w", code, ErrNotFound)
	}

	row := rows[0]
	return &models.CountryMedals{
		Nome:   row.Nome,
		Ouro:   row.Ouro,
		Prata:  row.Prata,
		Bronze: row.Bronze,
	}, nil
}

// Top 回傳前 n 名，呼叫端負責確認 n > 0
func (s *MedalService) Top(ctx context.Context, n int) ([]models.TopTally, error) {
	return s.medalRepo.Top(ctx, n)
}

// Ratio 計算金牌佔總數的比例並由高到低排序。
// 比例在這裡計算和排序，不依賴資料庫的整數除法。
func (s *MedalService) Ratio(ctx context.Context) ([]models.RatioTally, error) {
	rows, err := s.medalRepo.TallyAboveTotal(ctx, RatioMinTotal)
	if err != nil {
		return nil, err
	}

	result := make([]models.RatioTally, 0, len(rows))
	for _, row := range rows {
		total := row.Total()
		if total <= RatioMinTotal {
			continue
		}
		result = append(result, models.RatioTally{
			MedalTally: row,
			Ratio:      float64(row.Ouro) / float64(total),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Ratio != result[j].Ratio {
			return result[i].Ratio > result[j].Ratio
		}
		return result[i].Codigo < result[j].Codigo
	})
	return result, nil
}

// ByCategory 回傳某個運動類別的獎牌榜
func (s *MedalService) ByCategory(ctx context.Context, sportID string) ([]models.MedalTally, error) {
	return s.medalRepo.TallyBySport(ctx, sportID)
}
