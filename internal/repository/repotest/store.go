// Package repotest 提供記憶體中的資料集，實作 repository 的所有介面，供 service 和 handler 測試使用。
package repotest

import (
	"context"
	"sort"
	"strconv"

	"medal_stats/internal/models"
	"medal_stats/internal/repository"
)

// Store 以和 SQL 查詢相同的語意在記憶體中做彙總
type Store struct {
	NOCs     []models.NOC
	Athletes []models.Athlete
	Medals   []models.Medal
	Events   []models.Event
	Sports   []models.Sport

	// Err 不為 nil 時所有查詢都回傳它
	Err error
}

// Repositories 把 Store 包成 repository.Repositories
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{Medal: s, Athlete: s, Sport: s}
}

func (s *Store) Tally(ctx context.Context) ([]models.MedalTally, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.tally(func(models.Medal) bool { return true }), nil
}

func (s *Store) TallyByCountry(ctx context.Context, code string) ([]models.MedalTally, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	rows := []models.MedalTally{}
	for _, row := range s.tally(func(models.Medal) bool { return true }) {
		if row.Codigo == code {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *Store) Top(ctx context.Context, n int) ([]models.TopTally, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	athletes := map[string]int64{}
	for _, a := range s.Athletes {
		athletes[a.NOC]++
	}

	rows := []models.TopTally{}
	for _, row := range s.tally(func(models.Medal) bool { return true }) {
		if len(rows) == n {
			break
		}
		rows = append(rows, models.TopTally{MedalTally: row, TotalAtletas: athletes[row.Codigo]})
	}
	return rows, nil
}

func (s *Store) TallyAboveTotal(ctx context.Context, minTotal int) ([]models.MedalTally, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	rows := []models.MedalTally{}
	for _, row := range s.tally(func(models.Medal) bool { return true }) {
		if row.Total() > int64(minTotal) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *Store) TallyBySport(ctx context.Context, sportID string) ([]models.MedalTally, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	sportOf := map[int64]int64{}
	for _, e := range s.Events {
		sportOf[e.ID] = e.Esporte
	}
	return s.tally(func(m models.Medal) bool {
		sport, ok := sportOf[m.Evento]
		return ok && strconv.FormatInt(sport, 10) == sportID
	}), nil
}

func (s *Store) FindByNOC(ctx context.Context, code string) ([]models.AthleteRow, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	rows := []models.AthleteRow{}
	for _, a := range s.Athletes {
		if a.NOC == code {
			rows = append(rows, models.AthleteRow{Athlete: a})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	for i := range rows {
		rows[i].TotalAthletes = int64(len(rows))
	}
	return rows, nil
}

func (s *Store) FindAll(ctx context.Context) ([]models.Sport, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]models.Sport{}, s.Sports...), nil
}

// tally 對符合 keep 的獎牌做 noc ⋈ atleta ⋈ medalha 彙總，並依排行規則排序
func (s *Store) tally(keep func(models.Medal) bool) []models.MedalTally {
	nocOf := map[int64]string{}
	for _, a := range s.Athletes {
		nocOf[a.ID] = a.NOC
	}

	byCode := map[string]*models.MedalTally{}
	for _, n := range s.NOCs {
		byCode[n.Codigo] = &models.MedalTally{Codigo: n.Codigo, Nome: n.Nome}
	}

	seen := map[string]bool{}
	for _, m := range s.Medals {
		if !keep(m) {
			continue
		}
		row, ok := byCode[nocOf[m.Atleta]]
		if !ok {
			continue
		}
		seen[row.Codigo] = true
		switch m.Tipo {
		case models.MedalGold:
			row.Ouro++
		case models.MedalSilver:
			row.Prata++
		case models.MedalBronze:
			row.Bronze++
		}
	}

	rows := []models.MedalTally{}
	for code := range seen {
		rows = append(rows, *byCode[code])
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Ouro != b.Ouro {
			return a.Ouro > b.Ouro
		}
		if a.Prata != b.Prata {
			return a.Prata > b.Prata
		}
		if a.Bronze != b.Bronze {
			return a.Bronze > b.Bronze
		}
		return a.Codigo < b.Codigo
	})
	return rows
}
